package bitfield

import (
	"go.uber.org/zap"

	"github.com/vexingcodes/bitfield/errors"
	"github.com/vexingcodes/bitfield/internal/bits"
)

// Builder allocates non-overlapping fields within a storage unit of type S,
// in declaration order, with a running bit cursor starting at 0. There is no
// reordering and no gaps other than explicit padding.
//
// Definition-time errors are sticky: the first one is kept, later
// declarations are ignored, and Layout returns it. A failed Field call
// returns nil before any field is produced.
type Builder[S Uint] struct {
	fields   []*Field[S]
	index    map[string]*Field[S]
	cursor   uint
	defaults Config
	err      error
	frozen   bool
}

// NewBuilder returns an empty builder for a storage unit of type S.
func NewBuilder[S Uint]() *Builder[S] {
	return &Builder[S]{index: make(map[string]*Field[S])}
}

// Defaults sets the builder-level default configuration merged into every
// subsequently declared field's config. It must precede the first field or
// padding declaration.
func (b *Builder[S]) Defaults(cfg Config) *Builder[S] {
	if b.err != nil {
		return b
	}
	if len(b.fields) > 0 || b.cursor > 0 {
		b.fail(&errors.Error{
			Phase:  errors.PhaseDefine,
			Kind:   errors.KindInvalidData,
			Detail: "defaults must precede field declarations",
		})
		return b
	}
	if err := b.checkStrategy("", cfg.Strategy); err != nil {
		b.fail(err)
		return b
	}
	b.defaults = cfg
	return b
}

// Field declares a field of the given width at the current cursor and
// advances the cursor. The optional config is merged over the builder
// defaults and becomes the field's default configuration. Returns nil if the
// declaration is rejected.
func (b *Builder[S]) Field(name string, width uint, cfgs ...Config) *Field[S] {
	if b.err != nil {
		return nil
	}
	if b.frozen {
		b.fail(errors.Frozen(name))
		return nil
	}
	if name == "" {
		b.fail(&errors.Error{
			Phase:  errors.PhaseDefine,
			Kind:   errors.KindInvalidData,
			Detail: "field name required",
		})
		return nil
	}
	if width == 0 {
		b.fail(errors.ZeroWidth(name))
		return nil
	}
	if _, exists := b.index[name]; exists {
		b.fail(errors.DuplicateField(name))
		return nil
	}
	cfg := callConfig(cfgs).merge(b.defaults)
	if err := b.checkStrategy(name, cfg.Strategy); err != nil {
		b.fail(err)
		return nil
	}
	if b.cursor+width > bits.Width[S]() {
		b.fail(errors.Overflow(name, width, b.cursor, bits.Width[S]()))
		return nil
	}

	f := &Field[S]{name: name, width: width, offset: b.cursor, cfg: cfg}
	b.fields = append(b.fields, f)
	b.index[name] = f
	b.cursor += width
	Logger().Debug("field allocated",
		zap.String("field", name),
		zap.Uint("width", width),
		zap.Uint("offset", f.offset))
	return f
}

// Pad advances the cursor by width bits without producing a field,
// representing reserved or unused bits.
func (b *Builder[S]) Pad(width uint) *Builder[S] {
	if b.err != nil {
		return b
	}
	if b.frozen {
		b.fail(errors.Frozen("padding"))
		return b
	}
	if width == 0 {
		b.fail(errors.ZeroWidth("padding"))
		return b
	}
	if b.cursor+width > bits.Width[S]() {
		b.fail(errors.Overflow("padding", width, b.cursor, bits.Width[S]()))
		return b
	}
	b.cursor += width
	Logger().Debug("padding allocated",
		zap.Uint("width", width),
		zap.Uint("offset", b.cursor-width))
	return b
}

// Used returns the number of bits consumed so far.
func (b *Builder[S]) Used() uint { return b.cursor }

// Remaining returns the number of unallocated bits.
func (b *Builder[S]) Remaining() uint { return bits.Width[S]() - b.cursor }

// Complete reports whether every bit of the storage unit has been allocated.
// A layout is never required to be complete; trailing bits are simply
// reserved.
func (b *Builder[S]) Complete() bool { return b.cursor == bits.Width[S]() }

// Err returns the first definition error, if any.
func (b *Builder[S]) Err() error { return b.err }

// Layout freezes the builder and returns the resulting layout. Further
// declarations fail. Layout may be called on an incomplete builder.
func (b *Builder[S]) Layout() (*Layout[S], error) {
	if b.err != nil {
		return nil, b.err
	}
	b.frozen = true
	return &Layout[S]{fields: b.fields, index: b.index, used: b.cursor}, nil
}

// MustLayout is Layout, panicking on a definition error. Intended for
// layouts declared at package init, where a malformed definition is fatal.
func (b *Builder[S]) MustLayout() *Layout[S] {
	l, err := b.Layout()
	if err != nil {
		panic(err)
	}
	return l
}

// checkStrategy validates a declared strategy value. Inherit is always
// acceptable at declaration; Panic requires the capability.
func (b *Builder[S]) checkStrategy(field string, s Strategy) error {
	if s == StrategyInherit {
		return nil
	}
	if !s.valid() {
		return errors.InvalidStrategy(errors.PhaseDefine, field, "unknown assignment strategy")
	}
	if s == Panic && !PanicAllowed() {
		return errors.InvalidStrategy(errors.PhaseDefine, field, "panic strategy is disabled")
	}
	return nil
}

func (b *Builder[S]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
