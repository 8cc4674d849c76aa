package bitfield

import (
	"fmt"

	"github.com/vexingcodes/bitfield/errors"
	"github.com/vexingcodes/bitfield/internal/bits"
)

// Field is a single named bit span within a storage unit of type S, bound to
// a default configuration. A Field is immutable once declared and does not
// own storage; get and set apply it to caller-supplied values.
type Field[S Uint] struct {
	name   string
	width  uint
	offset uint
	cfg    Config
}

// Name returns the field's declared name.
func (f *Field[S]) Name() string { return f.name }

// Width returns the number of bits in the field's span.
func (f *Field[S]) Width() uint { return f.width }

// Offset returns the LSB-relative position of the span in the storage unit.
func (f *Field[S]) Offset() uint { return f.offset }

// Mask returns the storage-typed mask covering exactly the field's span.
func (f *Field[S]) Mask() S { return bits.Mask[S](f.offset, f.width) }

// DefaultConfig returns the field-level default configuration, already
// merged with the builder default it was declared under.
func (f *Field[S]) DefaultConfig() Config { return f.cfg }

// String renders the field as name[hi:lo].
func (f *Field[S]) String() string {
	return fmt.Sprintf("%s[%d:%d]", f.name, f.offset+f.width-1, f.offset)
}

// effectiveOffset resolves the result offset through the configuration
// layers: call site, then field default, then 0. The NoShift sentinel
// resolves to the field's own storage offset at whichever layer it appears.
func (f *Field[S]) effectiveOffset(call Offset) uint {
	if !call.set {
		fd := f.cfg.Offset
		switch {
		case !fd.set:
			return 0
		case fd.noShift:
			return f.offset
		default:
			return fd.bits
		}
	}
	if call.noShift {
		return f.offset
	}
	return call.bits
}

// effectiveStrategy resolves the assignment strategy through the
// configuration layers, terminating at the process-wide default, which is
// never inherit.
func (f *Field[S]) effectiveStrategy(call Strategy) Strategy {
	if call != StrategyInherit {
		return call
	}
	if f.cfg.Strategy != StrategyInherit {
		return f.cfg.Strategy
	}
	return DefaultStrategy()
}

// Get extracts the field's span from storage and returns it in the storage
// type. An optional Config overrides the field's default result offset.
func (f *Field[S]) Get(storage S, cfgs ...Config) S {
	return Get[S](f, storage, cfgs...)
}

// Set resolves the effective strategy and merges value's bits into storage
// at the field's span. See the package documentation for the failure
// semantics of each strategy; Unchecked and Mask never return an error.
func (f *Field[S]) Set(storage *S, value S, cfgs ...Config) error {
	return Set(f, storage, value, cfgs...)
}

// Get extracts f's span from storage into a value of type R, placed at the
// resolved result offset and zero-filled elsewhere. R defaults to nothing:
// it must be named or inferred, and is how call sites override the result
// type.
//
// Strategy has no meaning for reads; a call config carrying one is a
// contract violation and panics. A resolved offset that places the span
// outside R's width is a definition error and also panics.
func Get[R Uint, S Uint](f *Field[S], storage S, cfgs ...Config) R {
	cfg := callConfig(cfgs)
	if cfg.Strategy != StrategyInherit {
		panic(errors.InvalidStrategy(errors.PhaseGet, f.name, "strategy override has no meaning on get"))
	}
	eff := f.effectiveOffset(cfg.Offset)
	if eff+f.width > bits.Width[R]() {
		panic(errors.OffsetRange(errors.PhaseGet, f.name, eff, f.width, bits.Width[R]()))
	}
	return bits.Extract[R](storage, f.width, f.offset, eff, false)
}

// Set merges value's bits into storage at f's span under the resolved
// strategy. The value type V is the call site's value-type override; it
// defaults to the storage type through the Field.Set method.
//
// All strategies that mutate do so with a read-modify-write that preserves
// every bit outside the field's span.
func Set[S Uint, V Uint](f *Field[S], storage *S, value V, cfgs ...Config) error {
	cfg := callConfig(cfgs)
	strat := f.effectiveStrategy(cfg.Strategy)
	eff := f.effectiveOffset(cfg.Offset)
	if eff+f.width > bits.Width[V]() {
		return errors.OffsetRange(errors.PhaseDefine, f.name, eff, f.width, bits.Width[V]())
	}

	switch strat {
	case Unchecked:
		merge(f, storage, value, eff, true)
		return nil
	case Mask:
		merge(f, storage, value, eff, false)
		return nil
	case Strict, Panic:
		if strat == Panic && !PanicAllowed() {
			return errors.InvalidStrategy(errors.PhaseDefine, f.name, "panic strategy is disabled")
		}
		// Validity is checked against the effective offset: a value the
		// caller expressed pre-shifted must itself occupy only the
		// expected span.
		if value&^bits.Mask[V](eff, f.width) != 0 {
			err := errors.InvalidBits(f.name, value)
			if strat == Panic {
				panic(err)
			}
			return err
		}
		merge(f, storage, value, eff, true)
		return nil
	default:
		return errors.InvalidStrategy(errors.PhaseSet, f.name, "unknown assignment strategy "+strat.String())
	}
}

// merge is the one read-modify-write shared by every mutating strategy. The
// source mask inside Extract is skipped unless the strategy is Mask: Strict
// and Panic have already proven the value clean, and Unchecked never masks.
func merge[S Uint, V Uint](f *Field[S], storage *S, value V, eff uint, skipMask bool) {
	*storage = (*storage &^ f.Mask()) | bits.Extract[S](value, f.width, eff, f.offset, skipMask)
}
