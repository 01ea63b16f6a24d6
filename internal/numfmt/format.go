package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// MaxDecimals is the largest number of decimals a float64 can carry
// meaningfully.
const MaxDecimals = 323

// RoundToDigits rounds v to the given number of decimals, half away from
// zero. Where v scaled by 10^decimals no longer fits the mantissa, v is
// rounded to the digits Format prints for it instead.
func RoundToDigits(v float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if decimals == 0 {
		return math.Round(v)
	}
	factor := math.Pow10(decimals)
	scaled := v * factor
	if math.IsInf(factor, 0) || math.IsInf(scaled, 0) || math.Abs(scaled) >= 1<<52 {
		return roundViaDigits(v, decimals)
	}
	return math.Round(scaled) / factor
}

func roundViaDigits(v float64, decimals int) float64 {
	if decimals > MaxDecimals {
		decimals = MaxDecimals
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Format renders value with exactly decimals fractional digits using the
// symbols of loc. Group separators are inserted if and only if showGroup is
// set.
func Format(value float64, decimals int, showGroup bool, loc Locale) string {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > MaxDecimals {
		decimals = MaxDecimals
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	v := RoundToDigits(value, decimals)
	plain := strconv.FormatFloat(math.Abs(v), 'f', decimals, 64)

	intPart, fracPart, _ := strings.Cut(plain, ".")
	negative := v < 0 && strings.Trim(plain, "0.") != ""

	var b strings.Builder
	if negative {
		b.WriteRune(loc.Minus)
	}
	for i, r := range intPart {
		if showGroup && i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(loc.Group)
		}
		b.WriteRune(loc.localDigit(r))
	}
	if decimals > 0 {
		b.WriteRune(loc.Decimal)
		for _, r := range fracPart {
			b.WriteRune(loc.localDigit(r))
		}
	}
	return b.String()
}

// localDigit maps an ASCII digit to this locale's digit.
func (l Locale) localDigit(r rune) rune {
	if l.Zero == 0 {
		return r
	}
	return l.Zero + (r - '0')
}
