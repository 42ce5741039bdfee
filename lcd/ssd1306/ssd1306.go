package ssd1306

import (
	"fmt"

	"github.com/anpage/mt32-pi/lcd"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// SSD1306 command opcodes, see the datasheet command table.
const (
	setContrast           = 0x81
	setChargePump         = 0x8D
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddr           = 0x22
	setDisplayAllOnResume = 0xA4
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setSegmentRemap       = 0xA1
	setMultiplexRatio     = 0xA8
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVCOMDeselect       = 0xDB
)

// DefaultAddr is the most common I2C address for SSD1306 modules.
const DefaultAddr = 0x3C

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Addr is the I2C address of the display (default: 0x3C).
	Addr uint16

	// Height in pixels. Must be 32 or 64; validated by Initialize.
	Height int
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	// Communication
	c conn.Conn // I2C connection, nil if no bus was supplied

	// Display geometry
	height int

	// Framebuffer mirroring the controller's page/column RAM layout,
	// allocated once and mutated in place by all drawing operations.
	fb frameBuffer

	// Last values handed to Update, consumed by DrawPartLevels.
	partLevels [lcd.NumParts]uint8
	peakLevels [lcd.NumParts]uint8
}

// NewI2C creates a new SSD1306 device on the given I2C bus.
//
// opts can be nil to use defaults (address 0x3C, 32 pixels tall). The
// constructor only stores parameters and allocates the framebuffer;
// Initialize validates them and brings the panel up.
func NewI2C(bus i2c.Bus, opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	height := opts.Height
	if height == 0 {
		height = 32
	}

	d := &Dev{
		height: height,
		fb:     newFrameBuffer(height),
	}
	if bus != nil {
		d.c = &i2c.Dev{Bus: bus, Addr: addr}
	}
	return d
}

// initSequence returns the ordered bring-up commands for the given panel
// height. Every byte is transmitted as its own command write; reordering
// them leaves the panel in an undefined state.
func initSequence(height int) []byte {
	pages := byte(height/8 - 1)
	mux := byte(height - 1)

	// Alternate COM pin configuration for 64-row panels, sequential for
	// 32-row panels.
	comPins := byte(0x02)
	if height == 64 {
		comPins = 0x12
	}

	return []byte{
		setDisplayOff,
		setContrast, 0x7F,
		setNormalDisplay,
		setMemoryMode, 0x00, // horizontal addressing
		setColumnAddr, 0x00, 0x7F,
		setPageAddr, 0x00, pages,
		setSegmentRemap,
		setMultiplexRatio, mux,
		setComScanDec,
		setDisplayOffset, 0x00,
		setComPins, comPins,
		setDisplayClockDiv, 0x80,
		setPrecharge, 0x22,
		setVCOMDeselect, 0x20,
		setChargePump, 0x14, // VCC from internal DC/DC
		setDisplayAllOnResume,
		setDisplayOn,
	}
}

// Initialize validates the device parameters and sends the bring-up
// sequence. It must complete successfully before any drawing operation is
// transmitted.
func (d *Dev) Initialize() error {
	if d.height != 32 && d.height != 64 {
		return fmt.Errorf("ssd1306: unsupported height %d, must be 32 or 64", d.height)
	}
	if d.c == nil {
		return fmt.Errorf("ssd1306: no I2C bus")
	}

	for _, cmd := range initSequence(d.height) {
		if err := d.sendCommand(cmd); err != nil {
			return fmt.Errorf("ssd1306: init failed: %w", err)
		}
	}
	return nil
}

// sendCommand transmits a single command byte prefixed by the
// command-select control byte.
func (d *Dev) sendCommand(cmd byte) error {
	if d.c == nil {
		return fmt.Errorf("ssd1306: no I2C bus")
	}
	return d.c.Tx([]byte{i2cCtrlCommand, cmd}, nil)
}

// WriteFramebuffer transmits the entire framebuffer in one bus write. This
// is the only operation that makes drawn content visible.
func (d *Dev) WriteFramebuffer() error {
	if d.c == nil {
		return fmt.Errorf("ssd1306: no I2C bus")
	}
	return d.c.Tx(d.fb, nil)
}

// Clear blanks the display RAM and transmits the result.
func (d *Dev) Clear() error {
	d.fb.clear()
	return d.WriteFramebuffer()
}

// SetPixel turns on the pixel at (x, y). Coordinates wrap at the display
// edges rather than erroring.
func (d *Dev) SetPixel(x, y int) {
	d.fb.SetPixel(x, y)
}

// ClearPixel turns off the pixel at (x, y).
func (d *Dev) ClearPixel(x, y int) {
	d.fb.ClearPixel(x, y)
}

// DrawChar draws one double-height character at the given text cell.
// col is the character column (6 pixels per cell, 12 when doubleWidth) and
// row the two-page text row.
//
// When inverted, columns 1-5 are XORed with a 14-bit mask: the leftmost
// column and the bottom two pixel rows are deliberately left out of the
// inversion so adjacent inverted cells keep a separator.
func (d *Dev) DrawChar(ch byte, col, row int, inverted, doubleWidth bool) {
	rowOffset := row * 128 * 2
	pitch := 6
	if doubleWidth {
		pitch = 12
	}
	columnOffset := col*pitch + 4

	glyph := fontDouble[glyphIndex(ch)]
	for i := 0; i < glyphColumns; i++ {
		fontColumn := glyph[i]
		if i > 0 && inverted {
			fontColumn ^= 0x3FFF
		}

		offset := rowOffset + columnOffset + i
		if doubleWidth {
			offset = rowOffset + columnOffset + i*2
		}

		// Low byte lands in the upper page, high byte one page down.
		d.fb[offset] = byte(fontColumn)
		d.fb[offset+128] = byte(fontColumn >> 8)
		if doubleWidth {
			d.fb[offset+1] = d.fb[offset]
			d.fb[offset+128+1] = d.fb[offset+128]
		}
	}
}

// Print draws text starting at the given text cell. At most
// lcd.StatusColumns characters fit on a row; longer text is truncated.
// When clearLine is set, the remainder of the row is padded with blanks.
// When immediate is set, the framebuffer is transmitted afterwards and the
// transport status returned; otherwise Print never fails.
func (d *Dev) Print(text string, col, row int, clearLine, immediate bool) error {
	for i := 0; i < len(text) && col < lcd.StatusColumns; i++ {
		d.DrawChar(text[i], col, row, false, false)
		col++
	}

	if clearLine {
		for col < lcd.StatusColumns {
			d.DrawChar(' ', col, row, false, false)
			col++
		}
	}

	if immediate {
		return d.WriteFramebuffer()
	}
	return nil
}

// DrawPartLevels renders the 9 channel bar meters from the levels and
// peaks most recently supplied to Update. Bars fill bottom-up across two
// pages; when drawPeaks is set, a single row per channel is ORed in at the
// peak position.
func (d *Dev) DrawPartLevels(drawPeaks bool) {
	for i := 0; i < lcd.NumParts; i++ {
		var topVal, bottomVal byte
		if level := d.partLevels[i]; level > 8 {
			topVal = 0xFF << (8 - (level - 8))
			bottomVal = 0xFF
		} else {
			topVal = 0x00
			bottomVal = 0xFF << (8 - level)
		}

		if drawPeaks {
			if peak := d.peakLevels[i]; peak > 8 {
				topVal |= 1 << (8 - (peak - 8))
			} else {
				bottomVal |= 1 << (8 - peak)
			}
		}

		// Each channel occupies a 12-byte block at a fixed offset in
		// the meter pages; the fill pattern repeats across its width.
		for j := 0; j < 12; j++ {
			d.fb[256+i*14+j+3] = topVal
			d.fb[256+i*14+j+128+3] = bottomVal
		}
	}
}

// Update is the steady-state refresh entry point: it re-renders the status
// line and the meter region from the synth data source and transmits the
// framebuffer.
func (d *Dev) Update(src lcd.SynthSource) error {
	d.partLevels = src.PartLevels()
	d.peakLevels = src.PeakLevels()

	if err := d.Print(src.StatusText(), 0, 0, true, false); err != nil {
		return err
	}
	d.DrawPartLevels(true)
	return d.WriteFramebuffer()
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if err := d.sendCommand(setContrast); err != nil {
		return err
	}
	return d.sendCommand(contrast)
}

// Invert inverts the display polarity (lit becomes dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	cmd := byte(setNormalDisplay)
	if invert {
		cmd = setInvertDisplay
	}
	return d.sendCommand(cmd)
}

// Halt powers off the display panel. The framebuffer is retained; a
// subsequent Initialize brings the panel back up.
func (d *Dev) Halt() error {
	return d.sendCommand(setDisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{128x%d}", d.height)
}
