package bitfield

import "github.com/vexingcodes/bitfield/errors"

// Record is a layout applied to a concrete storage value. All mutation goes
// through named field setters; bits the layout does not cover are preserved
// untouched. Records are not goroutine-safe.
type Record[S Uint] struct {
	layout *Layout[S]
	raw    S
}

// Layout returns the record's layout.
func (r *Record[S]) Layout() *Layout[S] { return r.layout }

// Raw returns the storage value.
func (r *Record[S]) Raw() S { return r.raw }

// SetRaw replaces the storage value wholesale, reserved bits included.
func (r *Record[S]) SetRaw(v S) { r.raw = v }

// Get extracts the named field in the storage type.
func (r *Record[S]) Get(name string, cfgs ...Config) (S, error) {
	return GetNamed[S](r, name, cfgs...)
}

// Set merges value into the named field under its resolved strategy.
func (r *Record[S]) Set(name string, value S, cfgs ...Config) error {
	return SetNamed(r, name, value, cfgs...)
}

// GetNamed extracts the named field of r into a value of type R, the call
// site's result-type override.
func GetNamed[R Uint, S Uint](r *Record[S], name string, cfgs ...Config) (R, error) {
	f, ok := r.layout.Lookup(name)
	if !ok {
		var zero R
		return zero, errors.UnknownField(errors.PhaseGet, name)
	}
	return Get[R](f, r.raw, cfgs...), nil
}

// SetNamed merges a value of type V into the named field of r.
func SetNamed[S Uint, V Uint](r *Record[S], name string, value V, cfgs ...Config) error {
	f, ok := r.layout.Lookup(name)
	if !ok {
		return errors.UnknownField(errors.PhaseSet, name)
	}
	return Set(f, &r.raw, value, cfgs...)
}
