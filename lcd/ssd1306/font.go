package ssd1306

// The SSD1306 stores pixel data in vertical columns, but the source font is
// stored as rows. The column-wise tables below are derived from font6x8 once
// at package init; lookups after that are pure and allocation free.

// glyphColumns is the width of every glyph, including the separator column.
const glyphColumns = 6

// singleGlyph is one character as 6 column bytes, bit 0 = top row.
type singleGlyph [glyphColumns]uint8

// doubleGlyph is the vertically doubled form: each source row occupies two
// adjacent bits of a 16-bit column.
type doubleGlyph [glyphColumns]uint16

var (
	fontSingle [len(font6x8)]singleGlyph
	fontDouble [len(font6x8)]doubleGlyph
)

func init() {
	for i, c := range font6x8 {
		for j := 0; j < glyphColumns; j++ {
			fontSingle[i][j] = singleColumn(c, j)
			fontDouble[i][j] = doubleColumn(c, j)
		}
	}
}

// singleColumn gathers bit (5-n) of each of the 8 source rows into one
// column byte, row 0 landing in bit 0.
func singleColumn(c charData, n int) uint8 {
	bit := 5 - n
	var column uint8
	for i := 0; i < 8; i++ {
		column |= (c[i] >> bit & 1) << i
	}
	return column
}

// doubleColumn duplicates every bit of the single-height column into two
// adjacent bit positions, doubling the glyph height.
func doubleColumn(c charData, n int) uint16 {
	single := singleColumn(c, n)
	var column uint16
	for i := 0; i < 8; i++ {
		bit := uint16(single >> i & 1)
		column |= bit<<(i*2) | bit<<(i*2+1)
	}
	return column
}

// glyphIndex maps a character to its font table index. Characters outside
// the supported range fall back to the full-block placeholder, so lookups
// are total.
func glyphIndex(ch byte) int {
	// 0xFF is used by some status screens as a block character; the table
	// keeps its block glyph at 0x80.
	if ch == 0xFF {
		ch = 0x80
	}
	i := int(ch) - ' '
	if i < 0 || i >= len(font6x8) {
		return len(font6x8) - 1
	}
	return i
}
