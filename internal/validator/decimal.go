package validator

import (
	"math"
	"strconv"
	"strings"

	"github.com/muurk/multispin/internal/numfmt"
)

// State is the result of a validation.
type State int

const (
	// Invalid input can never become acceptable.
	Invalid State = iota
	// Intermediate input is incomplete or out of range but plausible.
	Intermediate
	// Acceptable input is a complete, in-range number.
	Acceptable
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Invalid:
		return "invalid"
	case Intermediate:
		return "intermediate"
	case Acceptable:
		return "acceptable"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// defaultDecimals is the decimals limit of a fresh Decimal.
const defaultDecimals = 1000

// Decimal validates fixed-point numbers within [bottom, top] with at most a
// given number of decimals.
type Decimal struct {
	bottom   float64
	top      float64
	decimals int
	locale   numfmt.Locale
}

// NewDecimal returns a validator accepting any finite number.
func NewDecimal(loc numfmt.Locale) *Decimal {
	return &Decimal{
		bottom:   math.Inf(-1),
		top:      math.Inf(1),
		decimals: defaultDecimals,
		locale:   loc,
	}
}

// SetRange sets the bounds and the decimals limit together.
func (d *Decimal) SetRange(bottom, top float64, decimals int) {
	d.bottom = bottom
	d.top = top
	d.decimals = max(0, decimals)
}

// Bottom returns the lower bound.
func (d *Decimal) Bottom() float64 { return d.bottom }

// Top returns the upper bound.
func (d *Decimal) Top() float64 { return d.top }

// Decimals returns the decimals limit.
func (d *Decimal) Decimals() int { return d.decimals }

// SetLocale sets the locale whose symbols are accepted.
func (d *Decimal) SetLocale(loc numfmt.Locale) {
	d.locale = loc
}

// Validate classifies input.
func (d *Decimal) Validate(input string) State {
	if input == "" {
		return Intermediate
	}

	var b strings.Builder
	intDigits, fracDigits := 0, 0
	seenDecimal := false

	for i, r := range []rune(input) {
		switch {
		case i == 0 && d.locale.IsMinus(r):
			if d.bottom >= 0 {
				return Invalid
			}
			b.WriteByte('-')
		case i == 0 && r == '+':
			if d.top < 0 {
				return Invalid
			}
		case d.locale.IsDigit(r):
			b.WriteByte(byte('0' + d.locale.DigitValue(r)))
			if seenDecimal {
				fracDigits++
			} else {
				intDigits++
			}
		case r == d.locale.Decimal && !seenDecimal:
			if d.decimals == 0 {
				return Invalid
			}
			b.WriteByte('.')
			seenDecimal = true
		case !seenDecimal && intDigits > 0 && d.locale.IsGroupSeparator(r):
		default:
			return Invalid
		}
	}

	if fracDigits > d.decimals {
		return Invalid
	}
	if intDigits+fracDigits == 0 {
		return Intermediate
	}

	s := b.String()
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Invalid
	}

	if v >= d.bottom && v <= d.top {
		return Acceptable
	}

	// Out of range input stays intermediate while it has no more integer
	// digits than the larger bound.
	limit := math.Max(math.Abs(d.bottom), math.Abs(d.top))
	if limit < math.MaxInt64 {
		n := math.Pow10(numDigits(int64(limit)))
		if math.Abs(v) > n-math.Pow10(-d.decimals) {
			return Invalid
		}
	}
	return Intermediate
}

func numDigits(n int64) int {
	if n == 0 {
		return 1
	}
	return int(math.Log10(float64(n))) + 1
}
