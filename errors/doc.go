// Package errors provides structured error types for the bitfield library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Definition-time errors (PhaseDefine) mean the layout or an
// access configuration is malformed and have no recovery path; set-time
// errors (PhaseSet) are the recoverable "value does not fit" outcomes of the
// Strict and Panic assignment strategies.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.Overflow("direction", 2, 7, 8)
//	err := errors.InvalidBits("channel", uint8(0xff))
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
