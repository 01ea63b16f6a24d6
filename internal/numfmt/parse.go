package numfmt

import (
	"strconv"
	"strings"
)

// Parse converts localized text back into a number. It returns false for
// text that is not a complete number: empty text, a lone sign, a trailing
// decimal separator, exponents, or any character outside the locale's number
// alphabet. Group separators are accepted anywhere in the integer part.
func Parse(text string, loc Locale) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	var b strings.Builder
	digits := 0
	seenDecimal := false
	trailingDecimal := false

	for i, r := range []rune(text) {
		switch {
		case i == 0 && loc.IsMinus(r):
			b.WriteByte('-')
		case i == 0 && r == '+':
		case loc.IsDigit(r):
			b.WriteByte(byte('0' + loc.DigitValue(r)))
			digits++
			trailingDecimal = false
		case r == loc.Decimal && !seenDecimal:
			b.WriteByte('.')
			seenDecimal = true
			trailingDecimal = true
		case !seenDecimal && loc.IsGroupSeparator(r):
		default:
			return 0, false
		}
	}

	if digits == 0 || trailingDecimal {
		return 0, false
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
