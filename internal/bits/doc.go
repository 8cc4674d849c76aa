// Package bits provides the low-level mask and bit-run movement primitives
// used by the bitfield package.
//
// All offsets are LSB-relative. A bit run is identified by a count and an
// offset within a fixed-width unsigned value; Extract moves a run between two
// values of possibly different widths, choosing the shift order so that no
// bits are truncated before they reach their final position.
//
// # Contents
//
//   - bits.go: Width, Mask, and Extract
//
// Callers are responsible for span preconditions (count > 0 and
// offset+count within the value's width); the bitfield package validates
// them at definition time before any value flows through this package.
//
// This package is internal to bitfield.
package bits
