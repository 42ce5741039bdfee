package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := Default()
	if c.LCD.Type != LCDSSD1306I2C {
		t.Errorf("default LCD type = %q, want %q", c.LCD.Type, LCDSSD1306I2C)
	}
	if c.LCD.I2CAddress != 0x3C {
		t.Errorf("default I2C address = %#x, want 0x3c", c.LCD.I2CAddress)
	}
	if c.LCD.Height != 32 {
		t.Errorf("default height = %d, want 32", c.LCD.Height)
	}
	if c.LCD.Invert {
		t.Error("default invert = true, want false")
	}
}

func TestLoadBytes(t *testing.T) {
	data := []byte(`
[lcd]
type = SSD1306_I2C
i2c_lcd_address = 3D
height = 64
invert = on
`)
	c, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes() failed: %v", err)
	}
	if c.LCD.Type != LCDSSD1306I2C {
		t.Errorf("LCD type = %q, want %q", c.LCD.Type, LCDSSD1306I2C)
	}
	if c.LCD.I2CAddress != 0x3D {
		t.Errorf("I2C address = %#x, want 0x3d", c.LCD.I2CAddress)
	}
	if c.LCD.Height != 64 {
		t.Errorf("height = %d, want 64", c.LCD.Height)
	}
	if !c.LCD.Invert {
		t.Error("invert = false, want true")
	}
}

func TestLoadBytesPartialKeepsDefaults(t *testing.T) {
	c, err := LoadBytes([]byte("[lcd]\nheight = 64\n"))
	if err != nil {
		t.Fatalf("LoadBytes() failed: %v", err)
	}
	if c.LCD.Height != 64 {
		t.Errorf("height = %d, want 64", c.LCD.Height)
	}
	if c.LCD.I2CAddress != 0x3C {
		t.Errorf("I2C address = %#x, want default 0x3c", c.LCD.I2CAddress)
	}
}

func TestLoadBytesIgnoresUnknownKeys(t *testing.T) {
	if _, err := LoadBytes([]byte("[lcd]\nbrightness = 7\n[midi]\nusb = on\n")); err != nil {
		t.Errorf("unknown keys should be ignored, got %v", err)
	}
}

func TestLoadBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad type", "[lcd]\ntype = hd44780\n"},
		{"bad address", "[lcd]\ni2c_lcd_address = zz\n"},
		{"bad height", "[lcd]\nheight = tall\n"},
		{"bad bool", "[lcd]\ninvert = maybe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadBytes([]byte(tt.data)); err == nil {
				t.Error("expected a parse error")
			}
		})
	}
}

func TestParseBoolSynonyms(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true}, {"on", true}, {"1", true}, {"TRUE", true},
		{"false", false}, {"off", false}, {"0", false}, {"Off", false},
	}

	for _, tt := range tests {
		got, err := parseBool(tt.raw)
		if err != nil {
			t.Errorf("parseBool(%q) failed: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseBool(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseHexPrefix(t *testing.T) {
	for _, raw := range []string{"3C", "3c", "0x3C", "0X3C"} {
		v, err := parseHex(raw)
		if err != nil {
			t.Errorf("parseHex(%q) failed: %v", raw, err)
			continue
		}
		if v != 0x3C {
			t.Errorf("parseHex(%q) = %#x, want 0x3c", raw, v)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mt32-pi.cfg")
	if err := os.WriteFile(path, []byte("[lcd]\nheight = 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if c.LCD.Height != 64 {
		t.Errorf("height = %d, want 64", c.LCD.Height)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.cfg")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
