package section

import (
	"math"
	"testing"

	"github.com/muurk/multispin/internal/numfmt"
)

func configWith(lo, hi float64, decimals int, wrapping bool) Config {
	c := NewConfig()
	c.SetDecimals(decimals)
	c.SetRange(lo, hi)
	c.SetWrapping(wrapping)
	return c
}

// TestNewConfigDefaults tests the default section configuration
func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.Minimum() != 0 || c.Maximum() != 99.99 {
		t.Errorf("range = [%v, %v], want [0, 99.99]", c.Minimum(), c.Maximum())
	}
	if c.Decimals() != 2 {
		t.Errorf("Decimals() = %d, want 2", c.Decimals())
	}
	if c.SingleStep() != 1 {
		t.Errorf("SingleStep() = %v, want 1", c.SingleStep())
	}
	if c.IsWrapping() || c.IsGroupSeparatorShown() {
		t.Error("wrapping and group separator should be off by default")
	}
	if c.Prefix() != "" || c.Suffix() != "" {
		t.Errorf("prefix/suffix = %q/%q, want empty", c.Prefix(), c.Suffix())
	}
}

// TestConfigBoundsInvariant tests that setters keep minimum <= maximum
func TestConfigBoundsInvariant(t *testing.T) {
	c := NewConfig()
	c.SetMinimum(10)
	c.SetMaximum(5)
	if c.Minimum() != 5 || c.Maximum() != 5 {
		t.Errorf("after SetMaximum below minimum: [%v, %v], want [5, 5]", c.Minimum(), c.Maximum())
	}

	c.SetMinimum(20)
	if c.Minimum() != 20 || c.Maximum() != 20 {
		t.Errorf("after SetMinimum above maximum: [%v, %v], want [20, 20]", c.Minimum(), c.Maximum())
	}
}

// TestConfigDecimalsBounds tests clamping of the decimals setting
func TestConfigDecimalsBounds(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 0},
		{0, 0},
		{5, 5},
		{323, 323},
		{324, 323},
		{10000, 323},
	}
	for _, tt := range tests {
		c := NewConfig()
		c.SetDecimals(tt.in)
		if c.Decimals() != tt.want {
			t.Errorf("SetDecimals(%d) -> %d, want %d", tt.in, c.Decimals(), tt.want)
		}
	}
}

// TestConfigSingleStep tests that negative steps collapse to zero
func TestConfigSingleStep(t *testing.T) {
	c := NewConfig()
	c.SetSingleStep(-3)
	if c.SingleStep() != 0 {
		t.Errorf("SetSingleStep(-3) -> %v, want 0", c.SingleStep())
	}
	c.SetSingleStep(2.5)
	if c.SingleStep() != 2.5 {
		t.Errorf("SetSingleStep(2.5) -> %v, want 2.5", c.SingleStep())
	}
}

// TestConfigReadTimeRounding tests that bounds are rounded on read with the
// current decimals
func TestConfigReadTimeRounding(t *testing.T) {
	c := NewConfig()
	c.SetDecimals(3)
	c.SetMaximum(12.375)
	if c.Maximum() != 12.375 {
		t.Fatalf("Maximum() = %v, want 12.375", c.Maximum())
	}
	c.SetDecimals(1)
	if c.Maximum() != 12.4 {
		t.Errorf("Maximum() at 1 decimal = %v, want 12.4", c.Maximum())
	}
	c.SetDecimals(3)
	if c.Maximum() != 12.375 {
		t.Errorf("Maximum() back at 3 decimals = %v, want 12.375", c.Maximum())
	}
}

// TestSetFormatString tests prefix and suffix extraction
func TestSetFormatString(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantPrefix string
		wantSuffix string
	}{
		{"suffix only", "%1°", "", "°"},
		{"prefix and suffix", "  %1%", "  ", "%"},
		{"prefix only", "abc%1", "abc", ""},
		{"placeholder only", "%1", "", ""},
		{"no placeholder", "abc", "", ""},
		{"two placeholders", "a%1b%1c", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			c.SetFormatString("old%1old")
			c.SetFormatString(tt.format)
			if c.Prefix() != tt.wantPrefix || c.Suffix() != tt.wantSuffix {
				t.Errorf("SetFormatString(%q) -> %q/%q, want %q/%q",
					tt.format, c.Prefix(), c.Suffix(), tt.wantPrefix, tt.wantSuffix)
			}
		})
	}
}

// TestNormalize tests rounding, clamping and wrapping of values
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		in   float64
		want float64
	}{
		{"wrap below", configWith(0, 360, 2, true), -5, 355},
		{"wrap at max", configWith(0, 360, 2, true), 360, 0},
		{"wrap above", configWith(0, 360, 2, true), 365, 5},
		{"wrap twice below", configWith(0, 360, 2, true), 715, 355},
		{"wrap twice at max", configWith(0, 360, 2, true), 720, 0},
		{"wrap twice above", configWith(0, 360, 2, true), 725, 5},
		{"clamp below", configWith(0, 360, 2, false), -5, 0},
		{"clamp at max", configWith(0, 360, 2, false), 360, 360},
		{"clamp above", configWith(0, 360, 2, false), 365, 360},
		{"negative range wrap below", configWith(-20, 340, 2, true), -25, 335},
		{"negative range wrap at max", configWith(-20, 340, 2, true), 340, -20},
		{"negative range wrap above", configWith(-20, 340, 2, true), 345, -15},
		{"negative range wrap twice", configWith(-20, 340, 2, true), 695, 335},
		{"negative range wrap twice at max", configWith(-20, 340, 2, true), 700, -20},
		{"rounding reaches max", configWith(0, 360, 0, true), 359.9, 0},
		{"rounding to zero", configWith(0, 360, 0, true), -0.1, 0},
		{"empty wrapping range", configWith(7, 7, 2, true), 100, 7},
		{"rounds to decimals", configWith(0, 100, 1, false), 12.345, 12.3},
		{"NaN becomes minimum", configWith(3, 6, 0, false), math.NaN(), 3},
		{"infinity wraps to minimum", configWith(0, 360, 0, true), math.Inf(1), 0},
		{"infinity clamps", configWith(0, 360, 0, false), math.Inf(1), 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestNormalizeStepsOffGrid tests wrapping with a step that does not divide
// the range
func TestNormalizeStepsOffGrid(t *testing.T) {
	c := configWith(0, 10, 0, true)
	v := 0.0
	for i := 0; i < 25; i++ {
		v = c.Normalize(v + 3)
		if v < 0 || v >= 10 {
			t.Fatalf("step %d left [0, 10): %v", i, v)
		}
	}
	// 75 mod 10
	if v != 5 {
		t.Errorf("after 25 steps of 3: %v, want 5", v)
	}
}

// TestConfigFormat tests section-level formatting
func TestConfigFormat(t *testing.T) {
	c := configWith(0, 10000, 3, false)
	c.SetGroupSeparatorShown(true)
	if got := c.Format(6789.123, numfmt.C); got != "6,789.123" {
		t.Errorf("Format = %q, want %q", got, "6,789.123")
	}
}
