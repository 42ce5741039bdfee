// Package ssd1306 controls a SSD1306 OLED display via I2C.
//
// The SSD1306 is a 1-bit monochrome OLED controller for 128-column panels,
// 32 or 64 pixels tall. This driver renders the mt32-pi front panel onto
// it: one double-height 20-character status line and nine per-part level
// meters with peak indicators.
//
// # Display Memory Layout
//
// The controller stores pixels in horizontal pages of 8 rows, one byte per
// column, least significant bit on top. The driver keeps a byte-exact
// mirror of that layout prefixed with the I2C data-mode control byte, so a
// refresh is a single bus write of height*16+1 bytes.
//
// # Hardware Connection
//
// Connect the SSD1306 display to your system via I2C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I2C clock (SCL)
//	SDA         → I2C data (SDA)
//
// The usual module address is 0x3C; some boards strap 0x3D.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/anpage/mt32-pi/lcd/ssd1306"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I2C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create and bring up the device
//		dev := ssd1306.NewI2C(bus, &ssd1306.Opts{Addr: 0x3C, Height: 32})
//		if err := dev.Initialize(); err != nil {
//			// do not draw if initialization failed
//			return
//		}
//
//		dev.Print("MT32-PI READY", 0, 0, true, true)
//	}
//
// # Refreshing
//
// Drawing operations mutate the in-memory framebuffer only. Call
// WriteFramebuffer (or pass immediate to Print) to transmit it; Update
// rewrites the status line and meter region from a lcd.SynthSource and
// transmits in one step. Callers poll Update at their refresh rate.
//
// The driver is single-threaded by design: serialize access externally and
// never run Initialize concurrently with a refresh.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
