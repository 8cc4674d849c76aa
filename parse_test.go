package bitfield

import (
	stderrors "errors"
	"testing"

	"github.com/vexingcodes/bitfield/errors"
)

func TestParse(t *testing.T) {
	l, err := Parse[uint8]("address:5 channel:2 direction:1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !l.Complete() {
		t.Error("layout not complete")
	}

	f, ok := l.Lookup("channel")
	if !ok {
		t.Fatal("channel not found")
	}
	if f.Offset() != 5 || f.Width() != 2 {
		t.Errorf("channel span: got %d@%d, want 2@5", f.Width(), f.Offset())
	}
}

func TestParseSeparatorsAndPadding(t *testing.T) {
	l, err := Parse[uint16]("flags:4, _:8, kind:3,_:1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !l.Complete() {
		t.Error("layout not complete")
	}
	if len(l.Fields()) != 2 {
		t.Errorf("fields: got %d, want 2", len(l.Fields()))
	}

	kind, _ := l.Lookup("kind")
	if kind == nil || kind.Offset() != 12 {
		t.Errorf("kind offset: got %v", kind)
	}
}

func TestParseStrategySuffix(t *testing.T) {
	l, err := Parse[uint8]("mode:3:strict rest:5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	mode, _ := l.Lookup("mode")
	if got := mode.DefaultConfig().Strategy; got != Strict {
		t.Errorf("mode strategy: got %v, want strict", got)
	}

	var storage uint8
	if err := mode.Set(&storage, 0b1111); err == nil {
		t.Error("strict field accepted stray bits")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"missing width", "address"},
		{"bad width", "address:five"},
		{"too many parts", "a:1:mask:extra"},
		{"unknown strategy", "a:1:never"},
		{"padding with strategy", "_:1:mask"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse[uint8](tc.spec); err == nil {
				t.Errorf("Parse(%q): expected error", tc.spec)
			}
		})
	}
}

// Builder rejections surface through Parse unchanged.
func TestParsePropagatesDefinitionErrors(t *testing.T) {
	_, err := Parse[uint8]("a:5 b:4")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDefine, Kind: errors.KindOverflow}) {
		t.Errorf("err: got %v", err)
	}

	_, err = Parse[uint8]("a:1 a:1")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDefine, Kind: errors.KindDuplicateField}) {
		t.Errorf("err: got %v", err)
	}
}
