package section

import (
	"math"
	"strings"

	"github.com/muurk/multispin/internal/numfmt"
)

// Placeholder marks the position of the value inside a format string.
const Placeholder = "%1"

// Default configuration values.
const (
	DefaultMinimum    = 0.0
	DefaultMaximum    = 99.99
	DefaultDecimals   = 2
	DefaultSingleStep = 1.0
)

// Config is the configuration of one section. The zero value is not useful;
// use NewConfig.
type Config struct {
	minimum             float64
	maximum             float64
	decimals            int
	wrapping            bool
	singleStep          float64
	groupSeparatorShown bool
	prefix              string
	suffix              string
}

// NewConfig returns a section ranging from 0 to 99.99 with two decimals and
// a single step of 1.
func NewConfig() Config {
	return Config{
		minimum:    DefaultMinimum,
		maximum:    DefaultMaximum,
		decimals:   DefaultDecimals,
		singleStep: DefaultSingleStep,
	}
}

// Minimum returns the lower bound, rounded to the current decimals.
func (c Config) Minimum() float64 {
	return numfmt.RoundToDigits(c.minimum, c.decimals)
}

// SetMinimum sets the lower bound. A minimum above the current maximum
// raises the maximum to the same value.
func (c *Config) SetMinimum(v float64) {
	c.minimum = v
	if c.maximum < c.minimum {
		c.maximum = c.minimum
	}
}

// Maximum returns the upper bound, rounded to the current decimals.
func (c Config) Maximum() float64 {
	return numfmt.RoundToDigits(c.maximum, c.decimals)
}

// SetMaximum sets the upper bound. A maximum below the current minimum
// lowers the minimum to the same value.
func (c *Config) SetMaximum(v float64) {
	c.maximum = v
	if c.minimum > c.maximum {
		c.minimum = c.maximum
	}
}

// SetRange sets both bounds. If lo > hi, hi wins.
func (c *Config) SetRange(lo, hi float64) {
	c.SetMinimum(lo)
	c.SetMaximum(hi)
}

// Decimals returns the number of fractional digits.
func (c Config) Decimals() int {
	return c.decimals
}

// SetDecimals sets the number of fractional digits, bounded to
// [0, numfmt.MaxDecimals].
func (c *Config) SetDecimals(d int) {
	c.decimals = max(0, min(d, numfmt.MaxDecimals))
}

// IsWrapping reports whether values wrap around at the range ends.
func (c Config) IsWrapping() bool {
	return c.wrapping
}

// SetWrapping enables or disables wrapping.
func (c *Config) SetWrapping(w bool) {
	c.wrapping = w
}

// SingleStep returns the step used by arrow keys.
func (c Config) SingleStep() float64 {
	return c.singleStep
}

// SetSingleStep sets the arrow key step. Negative steps become 0.
func (c *Config) SetSingleStep(step float64) {
	c.singleStep = max(0, step)
}

// IsGroupSeparatorShown reports whether formatted values are grouped.
func (c Config) IsGroupSeparatorShown() bool {
	return c.groupSeparatorShown
}

// SetGroupSeparatorShown sets whether formatted values are grouped.
func (c *Config) SetGroupSeparatorShown(shown bool) {
	c.groupSeparatorShown = shown
}

// Prefix returns the literal text before the value.
func (c Config) Prefix() string {
	return c.prefix
}

// Suffix returns the literal text after the value.
func (c Config) Suffix() string {
	return c.suffix
}

// FormatString returns prefix, placeholder and suffix joined together.
func (c Config) FormatString() string {
	return c.prefix + Placeholder + c.suffix
}

// SetFormatString splits s at the placeholder into prefix and suffix. If s
// does not contain the placeholder exactly once, prefix and suffix are both
// cleared.
func (c *Config) SetFormatString(s string) {
	parts := strings.Split(s, Placeholder)
	if len(parts) != 2 {
		c.prefix = ""
		c.suffix = ""
		return
	}
	c.prefix = parts[0]
	c.suffix = parts[1]
}

// Normalize rounds v to the section's decimals and brings it into range:
// wrapping sections reduce it into [minimum, maximum) with a floored modulo,
// other sections clamp it into [minimum, maximum]. A wrapping section with an
// empty range always yields minimum, and so does NaN.
func (c Config) Normalize(v float64) float64 {
	lo := c.Minimum()
	hi := c.Maximum()
	if math.IsNaN(v) || (c.wrapping && math.IsInf(v, 0)) {
		return lo
	}
	v = numfmt.RoundToDigits(v, c.decimals)

	if !c.wrapping {
		return max(lo, min(v, hi))
	}

	width := hi - lo
	if width <= 0 {
		return lo
	}
	offset := math.Mod(v-lo, width)
	if offset < 0 {
		offset += width
	}
	v = numfmt.RoundToDigits(offset+lo, c.decimals)
	// Rounding can land exactly on the excluded upper end.
	if v >= hi {
		v = lo
	}
	return v
}

// InRange reports whether v lies within [minimum, maximum].
func (c Config) InRange(v float64) bool {
	return v >= c.Minimum() && v <= c.Maximum()
}

// Format renders v the way this section displays it.
func (c Config) Format(v float64, loc numfmt.Locale) string {
	return numfmt.Format(v, c.decimals, c.groupSeparatorShown, loc)
}
