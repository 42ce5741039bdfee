package ssd1306

import "testing"

func TestDoubleColumnDuplicatesSingleColumnBits(t *testing.T) {
	for i := range font6x8 {
		for j := 0; j < glyphColumns; j++ {
			single := fontSingle[i][j]
			double := fontDouble[i][j]
			for r := uint(0); r < 8; r++ {
				want := uint16(single >> r & 1)
				lo := double >> (r * 2) & 1
				hi := double >> (r*2 + 1) & 1
				if lo != want || hi != want {
					t.Fatalf("glyph %d column %d row %d: double bits (%d, %d), want both %d",
						i, j, r, lo, hi, want)
				}
			}
		}
	}
}

func TestGlyphSeparatorColumnIsBlank(t *testing.T) {
	// Column 0 of every glyph is the separator between adjacent
	// characters and must never carry pixels.
	for i := range font6x8 {
		if fontSingle[i][0] != 0 {
			t.Errorf("glyph %d column 0 = %#x, want 0", i, fontSingle[i][0])
		}
	}
}

func TestSingleColumnGathersRowBits(t *testing.T) {
	// A synthetic glyph with only row 3 fully lit: every output column
	// must have exactly bit 3 set.
	var c charData
	c[3] = 0b111111
	for j := 0; j < glyphColumns; j++ {
		if got := singleColumn(c, j); got != 1<<3 {
			t.Errorf("singleColumn(column %d) = %#x, want %#x", j, got, 1<<3)
		}
	}
}

func TestGlyphIndexIsTotal(t *testing.T) {
	placeholder := len(font6x8) - 1
	tests := []struct {
		name string
		ch   byte
		want int
	}{
		{"space", ' ', 0},
		{"uppercase A", 'A', 'A' - ' '},
		{"tilde", '~', '~' - ' '},
		{"block at 0x80", 0x80, placeholder},
		{"0xFF remaps to block", 0xFF, placeholder},
		{"control char falls back", 0x07, placeholder},
		{"above table falls back", 0x90, placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := glyphIndex(tt.ch); got != tt.want {
				t.Errorf("glyphIndex(%#x) = %d, want %d", tt.ch, got, tt.want)
			}
		})
	}
}
