// Package bitfield declares named, non-overlapping runs of bits inside a
// fixed-width unsigned storage unit and reads or writes each run as a
// strongly-typed value.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	bitfield/            Root package: fields, layouts, records, configuration
//	├── errors/          Structured error types for definition and assignment
//	├── internal/bits/   Mask construction and bit-run movement primitives
//	└── cmd/inspect/     Register inspector CLI and interactive TUI
//
// # Layout Declaration
//
// A Builder assigns each field a bit span in declaration order, starting at
// the least significant bit. Reordering declarations changes the resulting
// layout; this mirrors real register and protocol definitions.
//
//	b := bitfield.NewBuilder[uint8]()
//	address := b.Field("address", 5)
//	channel := b.Field("channel", 2)
//	direction := b.Field("direction", 1)
//	layout, err := b.Layout()
//
// The builder is the definition boundary: malformed layouts (overflow, zero
// widths, duplicate names, unusable strategies) are rejected here, never at a
// later get or set call.
//
// # Field Access
//
// Fields do not own storage; they are applied to caller-supplied values:
//
//	var control uint8
//	if err := channel.Set(&control, 3); err != nil { ... }
//	v := channel.Get(control)
//
// The generic forms move bits between different unsigned types, including
// named enum-style types:
//
//	type Channel uint8
//	ch := bitfield.Get[Channel](channel, control)
//
// # Assignment Strategies
//
// A strategy dictates what happens when a value being written has bits set
// outside the field's span:
//
//	Unchecked  merge as-is; stray bits can corrupt neighboring fields
//	Mask       silently clear stray bits, always succeed (the default)
//	Strict     return an error and leave storage untouched
//	Panic      like Strict, but panic instead of returning
//
// The strategy, the result offset, and the value type resolve through three
// layers: the call-site Config, the field's declared default, and the
// process-wide default (SetDefaultStrategy).
//
// # Records
//
// A Layout plus a concrete storage value form a Record with name-addressed
// accessors:
//
//	rec := layout.NewRecord()
//	_ = rec.Set("channel", 1)
//	v, _ := rec.Get("address")
//
// # Thread Safety
//
// Layouts and fields are immutable after Layout() and safe for concurrent
// reads. Records and builders are not goroutine-safe; callers sharing a
// record across goroutines must synchronize externally.
package bitfield
