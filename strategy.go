package bitfield

import (
	"sync"

	"github.com/vexingcodes/bitfield/errors"
)

// Strategy dictates how a set call responds when the value being written has
// bits set outside the field's span. The zero value defers to the next
// configuration layer: call-site config falls through to the field default,
// which falls through to the process-wide default.
type Strategy uint8

const (
	// StrategyInherit is not a strategy of its own; it means "use the
	// default for the current context".
	StrategyInherit Strategy = iota

	// Unchecked merges the value as-is. Stray bits, misplaced by a buggy
	// offset, can corrupt neighboring fields.
	Unchecked

	// Mask silently clears any bits outside the field's span before
	// merging. Always succeeds. This is the initial process-wide default.
	Mask

	// Strict returns an error from set and leaves storage untouched when
	// stray bits are present.
	Strict

	// Panic performs the same check as Strict but panics on failure. The
	// capability can be revoked with SetPanicAllowed for hosts that must
	// not raise.
	Panic
)

var strategyNames = [...]string{
	StrategyInherit: "inherit",
	Unchecked:       "unchecked",
	Mask:            "mask",
	Strict:          "strict",
	Panic:           "panic",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "unknown"
}

// valid reports whether s is a concrete strategy (not inherit, not out of
// range).
func (s Strategy) valid() bool {
	return s > StrategyInherit && s <= Panic
}

// ParseStrategy converts a strategy name to its value. Inherit is not
// accepted; it is a sentinel, not a selectable strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s := Unchecked; s <= Panic; s++ {
		if strategyNames[s] == name {
			return s, nil
		}
	}
	return StrategyInherit, errors.InvalidStrategy(errors.PhaseParse, "", "unknown strategy "+name)
}

// Process-wide defaults. Definition is a single-threaded activity, but the
// accessors are still guarded so a misbehaving host cannot tear a read.
var (
	globalMu        sync.RWMutex
	defaultStrategy = Mask
	panicAllowed    = true
)

// DefaultStrategy returns the process-wide default assignment strategy used
// when neither the call site nor the field declares one.
func DefaultStrategy() Strategy {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return defaultStrategy
}

// SetDefaultStrategy changes the process-wide default assignment strategy.
// Inherit is rejected; Panic is rejected while the panic capability is
// revoked.
func SetDefaultStrategy(s Strategy) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if !s.valid() {
		return errors.InvalidStrategy(errors.PhaseDefine, "", "default strategy must be concrete")
	}
	if s == Panic && !panicAllowed {
		return errors.InvalidStrategy(errors.PhaseDefine, "", "panic strategy is disabled")
	}
	defaultStrategy = s
	return nil
}

// PanicAllowed reports whether the Panic strategy may be selected.
func PanicAllowed() bool {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return panicAllowed
}

// SetPanicAllowed toggles the Panic strategy capability. Revoking it while
// the process-wide default is Panic is rejected.
func SetPanicAllowed(allowed bool) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if !allowed && defaultStrategy == Panic {
		return errors.InvalidStrategy(errors.PhaseDefine, "", "default strategy is panic; change it first")
	}
	panicAllowed = allowed
	return nil
}
