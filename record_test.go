package bitfield

import (
	stderrors "errors"
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/vexingcodes/bitfield/errors"
)

type direction uint8

const (
	dirWrite direction = 0
	dirRead  direction = 1
)

// The IO-Link M-sequence control byte: a 5-bit address, a 2-bit
// communication channel, and a 1-bit transmission direction.
func mSequenceControl(t *testing.T) *Layout[uint8] {
	t.Helper()
	b := NewBuilder[uint8]()
	b.Field("address", 5)
	b.Field("channel", 2)
	b.Field("direction", 1)
	l, err := b.Layout()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !l.Complete() {
		t.Fatal("control byte layout incomplete")
	}
	return l
}

func TestRecordGet(t *testing.T) {
	rec := mSequenceControl(t).NewRecord()
	rec.SetRaw(0b01100001)

	addr, err := rec.Get("address")
	td.CmpNoError(t, err)
	td.Cmp(t, addr, uint8(1))

	ch, err := GetNamed[testChannel](rec, "channel")
	td.CmpNoError(t, err)
	td.Cmp(t, ch, chISDU)

	dir, err := GetNamed[direction](rec, "direction")
	td.CmpNoError(t, err)
	td.Cmp(t, dir, dirWrite)
}

func TestRecordSet(t *testing.T) {
	rec := mSequenceControl(t).NewRecord()

	td.CmpNoError(t, SetNamed(rec, "channel", chPage))
	td.Cmp(t, rec.Raw(), uint8(0b00100000))

	td.CmpNoError(t, rec.Set("address", 31))
	td.Cmp(t, rec.Raw(), uint8(0b00111111))

	td.CmpNoError(t, SetNamed(rec, "direction", dirRead))
	td.Cmp(t, rec.Raw(), uint8(0b10111111))

	// Each set touched only its own span.
	ch, err := GetNamed[testChannel](rec, "channel")
	td.CmpNoError(t, err)
	td.Cmp(t, ch, chPage)
}

func TestRecordUnknownField(t *testing.T) {
	rec := mSequenceControl(t).NewRecord()

	_, err := rec.Get("nope")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseGet, Kind: errors.KindUnknownField}) {
		t.Errorf("get err: got %v", err)
	}

	err = rec.Set("nope", 1)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseSet, Kind: errors.KindUnknownField}) {
		t.Errorf("set err: got %v", err)
	}
}

func TestRecordStrictSetRejectsWideValue(t *testing.T) {
	b := NewBuilder[uint8]()
	b.Field("address", 5)
	b.Field("channel", 2, Config{Strategy: Strict})
	b.Field("direction", 1)
	rec := b.MustLayout().NewRecord()

	err := rec.Set("channel", 0b100)
	td.CmpError(t, err)
	td.Cmp(t, rec.Raw(), uint8(0))
}

func TestRecordSetRawPreservesReservedBits(t *testing.T) {
	b := NewBuilder[uint8]()
	b.Field("low", 3)
	// Upper five bits deliberately reserved.
	rec := b.MustLayout().NewRecord()

	rec.SetRaw(0b10110000)
	td.CmpNoError(t, rec.Set("low", 0b101))
	td.Cmp(t, rec.Raw(), uint8(0b10110101))
}
