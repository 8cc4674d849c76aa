package bitfield

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/vexingcodes/bitfield/errors"
)

// Parse declares a layout from a compact text form, for tools that receive
// layouts at runtime rather than in code. Entries are separated by commas or
// whitespace:
//
//	address:5 channel:2 direction:1
//
// Each entry is name:width with an optional :strategy suffix
// (unchecked, mask, strict, panic) as the field's default. The name "_"
// declares padding. Fields are allocated in entry order from the least
// significant bit, exactly as with a Builder.
func Parse[S Uint](spec string) (*Layout[S], error) {
	b := NewBuilder[S]()
	sep := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }

	for _, entry := range strings.FieldsFunc(spec, sep) {
		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, errors.ParseFailed("entry "+strconv.Quote(entry)+" is not name:width[:strategy]", nil)
		}

		width, err := strconv.ParseUint(parts[1], 10, 8)
		if err != nil {
			return nil, errors.ParseFailed("width in entry "+strconv.Quote(entry), err)
		}

		if parts[0] == "_" {
			if len(parts) == 3 {
				return nil, errors.ParseFailed("padding entry "+strconv.Quote(entry)+" cannot carry a strategy", nil)
			}
			b.Pad(uint(width))
			continue
		}

		var cfgs []Config
		if len(parts) == 3 {
			strat, err := ParseStrategy(parts[2])
			if err != nil {
				return nil, errors.ParseFailed("strategy in entry "+strconv.Quote(entry), err)
			}
			cfgs = append(cfgs, Config{Strategy: strat})
		}
		b.Field(parts[0], uint(width), cfgs...)
	}

	return b.Layout()
}
