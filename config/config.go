// Package config loads the mt32-pi configuration file.
//
// The file uses INI syntax. Every option is described by one entry in a
// single table of (section, key, default, parser) tuples processed
// uniformly at load time; unknown keys are ignored. Load returns an
// explicit Config value meant to be passed into constructors.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// LCDType selects the display driver.
type LCDType string

// Supported display types.
const (
	LCDNone       LCDType = "none"
	LCDSSD1306I2C LCDType = "ssd1306_i2c"
)

// Config holds all parsed options.
type Config struct {
	LCD LCDConfig
}

// LCDConfig is the [lcd] section.
type LCDConfig struct {
	// Type of the attached display.
	Type LCDType

	// I2CAddress of the display controller, parsed as hexadecimal.
	I2CAddress uint16

	// Height of the panel in pixels.
	Height int

	// Invert flips the display polarity.
	Invert bool
}

// option describes one configuration entry. parse receives the raw string
// value and stores the result into the Config.
type option struct {
	section string
	key     string
	def     string
	parse   func(c *Config, raw string) error
}

// options is the full table of recognized entries. Defaults are applied by
// running every parser on its def value before the file is consulted.
var options = []option{
	{"lcd", "type", "ssd1306_i2c", func(c *Config, raw string) error {
		switch LCDType(strings.ToLower(raw)) {
		case LCDNone, LCDSSD1306I2C:
			c.LCD.Type = LCDType(strings.ToLower(raw))
			return nil
		}
		return fmt.Errorf("unknown LCD type %q", raw)
	}},
	{"lcd", "i2c_lcd_address", "3C", func(c *Config, raw string) error {
		v, err := parseHex(raw)
		if err != nil {
			return err
		}
		c.LCD.I2CAddress = uint16(v)
		return nil
	}},
	{"lcd", "height", "32", func(c *Config, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		c.LCD.Height = v
		return nil
	}},
	{"lcd", "invert", "off", func(c *Config, raw string) error {
		v, err := parseBool(raw)
		if err != nil {
			return err
		}
		c.LCD.Invert = v
		return nil
	}},
}

// Default returns a Config with every option at its default value.
func Default() *Config {
	c := &Config{}
	for _, opt := range options {
		// Defaults in the table are always parseable.
		if err := opt.parse(c, opt.def); err != nil {
			panic(fmt.Sprintf("config: bad default for [%s] %s: %v", opt.section, opt.key, err))
		}
	}
	return c
}

// Load reads an INI file and returns the parsed configuration. Options
// absent from the file keep their defaults; a present option that fails to
// parse is an error.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return parse(file)
}

// LoadBytes behaves like Load but reads from memory.
func LoadBytes(data []byte) (*Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return parse(file)
}

func parse(file *ini.File) (*Config, error) {
	c := Default()
	for _, opt := range options {
		section := file.Section(opt.section)
		if !section.HasKey(opt.key) {
			continue
		}
		raw := section.Key(opt.key).String()
		if err := opt.parse(c, raw); err != nil {
			return nil, fmt.Errorf("config: [%s] %s: %w", opt.section, opt.key, err)
		}
	}
	return c, nil
}

// parseHex parses a hexadecimal integer with or without a 0x prefix.
func parseHex(raw string) (uint64, error) {
	raw = strings.TrimPrefix(strings.ToLower(raw), "0x")
	return strconv.ParseUint(raw, 16, 16)
}

// parseBool recognizes the boolean synonyms accepted in config files.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "on", "1":
		return true, nil
	case "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", raw)
}
