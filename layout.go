package bitfield

import (
	"strings"

	"github.com/vexingcodes/bitfield/internal/bits"
)

// Layout is the frozen output of a Builder: an ordered set of
// non-overlapping fields within a storage unit of type S. Immutable and safe
// for concurrent use.
type Layout[S Uint] struct {
	fields []*Field[S]
	index  map[string]*Field[S]
	used   uint
}

// Fields returns the layout's fields in declaration order.
func (l *Layout[S]) Fields() []*Field[S] {
	out := make([]*Field[S], len(l.fields))
	copy(out, l.fields)
	return out
}

// Lookup returns the named field.
func (l *Layout[S]) Lookup(name string) (*Field[S], bool) {
	f, ok := l.index[name]
	return f, ok
}

// Width returns the storage unit's width in bits.
func (l *Layout[S]) Width() uint { return bits.Width[S]() }

// Used returns the number of allocated bits, padding included.
func (l *Layout[S]) Used() uint { return l.used }

// Complete reports whether the layout fills the storage unit exactly.
func (l *Layout[S]) Complete() bool { return l.used == bits.Width[S]() }

// String renders the layout as a compact span list, most significant field
// first:
//
//	direction[7:7] channel[6:5] address[4:0]
func (l *Layout[S]) String() string {
	parts := make([]string, 0, len(l.fields))
	for i := len(l.fields) - 1; i >= 0; i-- {
		parts = append(parts, l.fields[i].String())
	}
	return strings.Join(parts, " ")
}

// NewRecord returns a record over this layout with zero-initialized storage.
func (l *Layout[S]) NewRecord() *Record[S] {
	return &Record[S]{layout: l}
}
