package ssd1306

// The SSD1306 organizes its display RAM as height/8 pages of 128 bytes.
// Each byte covers a vertical strip of 8 pixels within one page, least
// significant bit on top. frameBuffer mirrors that layout byte for byte,
// prefixed with the I2C data-mode control byte so the whole buffer can be
// transmitted in a single bus write.

const (
	// i2cCtrlCommand prefixes a single command byte on the bus.
	i2cCtrlCommand = 0x80
	// i2cCtrlData marks the remainder of a transaction as display data.
	i2cCtrlData = 0x40
)

// frameBuffer is a plain byte slice of length height*16+1. Byte 0 is always
// i2cCtrlData; bytes 1..end are display RAM.
type frameBuffer []byte

func newFrameBuffer(height int) frameBuffer {
	f := make(frameBuffer, height*16+1)
	f[0] = i2cCtrlData
	return f
}

// pixelOffset maps a pixel coordinate onto a buffer offset and bit position.
// x wraps at 128 and y at 64 by masking; out-of-range coordinates are never
// rejected.
func pixelOffset(x, y int) (offset int, bit uint) {
	x &= 0x7F
	y &= 0x3F
	return (y&0xF8)<<4 + x + 1, uint(y & 7)
}

// SetPixel turns on the pixel at (x, y).
func (f frameBuffer) SetPixel(x, y int) {
	offset, bit := pixelOffset(x, y)
	f[offset] |= 1 << bit
}

// ClearPixel turns off the pixel at (x, y).
func (f frameBuffer) ClearPixel(x, y int) {
	offset, bit := pixelOffset(x, y)
	f[offset] &^= 1 << bit
}

// clear zero-fills the drawable region, leaving the control byte intact.
func (f frameBuffer) clear() {
	for i := 1; i < len(f); i++ {
		f[i] = 0
	}
}
