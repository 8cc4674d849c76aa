package bits

import (
	"math/bits"
	"testing"
)

func TestWidth(t *testing.T) {
	if w := Width[uint8](); w != 8 {
		t.Errorf("uint8 width: got %d, want 8", w)
	}
	if w := Width[uint16](); w != 16 {
		t.Errorf("uint16 width: got %d, want 16", w)
	}
	if w := Width[uint32](); w != 32 {
		t.Errorf("uint32 width: got %d, want 32", w)
	}
	if w := Width[uint64](); w != 64 {
		t.Errorf("uint64 width: got %d, want 64", w)
	}
}

func TestMask8(t *testing.T) {
	tests := []struct {
		name         string
		start, count uint
		want         uint8
	}{
		{"bit0", 0, 1, 0b00000001},
		{"low2", 0, 2, 0b00000011},
		{"low3", 0, 3, 0b00000111},
		{"mid3", 2, 3, 0b00011100},
		{"top1", 7, 1, 0b10000000},
		{"full", 0, 8, 0b11111111},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mask[uint8](tc.start, tc.count); got != tc.want {
				t.Errorf("Mask[uint8](%d, %d): got %08b, want %08b", tc.start, tc.count, got, tc.want)
			}
		})
	}
}

// Every span within the width yields exactly count set bits, all inside the
// span.
func TestMaskProperties(t *testing.T) {
	for start := uint(0); start < 64; start++ {
		for count := uint(1); start+count <= 64; count++ {
			m := Mask[uint64](start, count)
			if got := uint(bits.OnesCount64(m)); got != count {
				t.Fatalf("Mask[uint64](%d, %d): %d set bits, want %d", start, count, got, count)
			}
			if m>>start<<start != m {
				t.Fatalf("Mask[uint64](%d, %d): bits below start", start, count)
			}
			if start+count < 64 && m>>(start+count) != 0 {
				t.Fatalf("Mask[uint64](%d, %d): bits above span", start, count)
			}
		}
	}
}

func TestExtractSameWidth(t *testing.T) {
	tests := []struct {
		name           string
		src            uint8
		count          uint
		srcOff, dstOff uint
		want           uint8
	}{
		{"zero", 0b00000000, 1, 0, 0, 0b0},
		{"one", 0b00000001, 1, 0, 0, 0b1},
		{"mid_00", 0b11111000, 2, 1, 0, 0b00},
		{"mid_01", 0b11111010, 2, 1, 0, 0b01},
		{"mid_10", 0b11111100, 2, 1, 0, 0b10},
		{"mid_11", 0b11111110, 2, 1, 0, 0b11},
		{"high_00", 0b00111111, 2, 6, 0, 0b00},
		{"high_01", 0b01111111, 2, 6, 0, 0b01},
		{"high_10", 0b10111111, 2, 6, 0, 0b10},
		{"high_11", 0b11111111, 2, 6, 0, 0b11},
		{"place_at_2", 0b11111110, 2, 1, 2, 0b1100},
		{"place_at_3", 0b11111110, 2, 1, 3, 0b11000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract[uint8](tc.src, tc.count, tc.srcOff, tc.dstOff, false)
			if got != tc.want {
				t.Errorf("Extract(%08b, %d, %d, %d): got %08b, want %08b",
					tc.src, tc.count, tc.srcOff, tc.dstOff, got, tc.want)
			}
		})
	}
}

// Right shifts must happen in the source width before narrowing, otherwise
// high bits would be truncated before they reach their destination position.
func TestExtractNarrowing(t *testing.T) {
	var src uint16 = 0b1100_0000_0000_0000
	got := Extract[uint8](src, 2, 14, 0, false)
	if got != 0b11 {
		t.Errorf("narrowing extract: got %08b, want 11", got)
	}

	// Run entirely above the destination width still lands correctly.
	src = 0b0000_0011_0000_0000
	if got := Extract[uint8](src, 2, 8, 1, false); got != 0b110 {
		t.Errorf("narrowing extract above dest width: got %08b, want 110", got)
	}
}

// Left shifts must happen after widening to the destination width, otherwise
// bits would be shifted out of the source width before widening.
func TestExtractWidening(t *testing.T) {
	var src uint8 = 0b1100_0000
	got := Extract[uint16](src, 2, 6, 14, false)
	if got != 0b1100_0000_0000_0000 {
		t.Errorf("widening extract: got %016b, want bits at [15:14]", got)
	}
}

func TestExtractSkipMask(t *testing.T) {
	// With masking, stray source bits are cleared.
	got := Extract[uint8](uint8(0b11111010), 2, 1, 3, false)
	if got != 0b01000 {
		t.Errorf("masked: got %08b, want 01000", got)
	}

	// Without masking, every source bit participates in the shift.
	tests := []struct {
		src  uint8
		want uint8
	}{
		{0b11111000, 0b11100000},
		{0b11111010, 0b11101000},
		{0b11111100, 0b11110000},
		{0b11111110, 0b11111000},
	}
	for _, tc := range tests {
		if got := Extract[uint8](tc.src, 2, 1, 3, true); got != tc.want {
			t.Errorf("skip mask %08b: got %08b, want %08b", tc.src, got, tc.want)
		}
	}
}

// Named types over unsigned integers behave like their underlying type.
func TestExtractNamedTypes(t *testing.T) {
	type channel uint8

	got := Extract[channel](uint8(0b01100001), 2, 5, 0, false)
	if got != 3 {
		t.Errorf("extract into named type: got %d, want 3", got)
	}

	back := Extract[uint8](channel(0b11), 2, 0, 5, false)
	if back != 0b01100000 {
		t.Errorf("extract from named type: got %08b, want 01100000", back)
	}
}
