package bitfield

import "fmt"

// Offset selects the LSB-relative position the extracted bits occupy in the
// result (on get) or occupy in the incoming value (on set). The zero value
// is unset and defers to the next configuration layer. NoShift means "use
// the field's own storage offset", so no bit movement happens at all.
type Offset struct {
	bits    uint
	set     bool
	noShift bool
}

// At returns an Offset placing bits at the given LSB-relative position.
func At(bit uint) Offset {
	return Offset{bits: bit, set: true}
}

// NoShift resolves to the field's own storage offset, whichever field the
// configuration ends up applied to.
var NoShift = Offset{set: true, noShift: true}

func (o Offset) String() string {
	switch {
	case !o.set:
		return "inherit"
	case o.noShift:
		return "no-shift"
	default:
		return fmt.Sprintf("@%d", o.bits)
	}
}

// Config carries the per-call and per-field overridable settings of a field:
// the result offset and the assignment strategy. Zero-valued members defer
// to the next outer layer. The result type is the third overridable setting;
// in Go it is chosen statically by the type argument of Get and Set, with
// the field's storage type as the default.
type Config struct {
	Offset   Offset
	Strategy Strategy
}

// merge layers c over outer: wherever c carries an explicit setting it wins,
// otherwise the outer layer's setting is kept. Sentinel offsets (NoShift)
// are explicit settings and pass through unresolved; they are interpreted
// against a concrete field only at access time.
func (c Config) merge(outer Config) Config {
	out := c
	if !out.Offset.set {
		out.Offset = outer.Offset
	}
	if out.Strategy == StrategyInherit {
		out.Strategy = outer.Strategy
	}
	return out
}
