package numfmt

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale holds the number symbols of a locale.
type Locale struct {
	Tag     string // BCP 47 tag, or "C"
	Decimal rune   // decimal separator
	Group   rune   // group (thousands) separator
	Minus   rune   // minus sign
	Zero    rune   // digit zero; the other digits follow it contiguously
}

// C is the locale-neutral number format: "-1,234.5".
var C = Locale{Tag: "C", Decimal: '.', Group: ',', Minus: '-', Zero: '0'}

// probeValue is formatted with the locale's CLDR pattern to discover its
// symbols. It has two groups and a fraction so every separator shows up.
const probeValue = -1234567.5

// LookupLocale returns the number symbols for a locale name. Accepted names
// are "C", "POSIX", an empty string (all three yield C), BCP 47 tags such as
// "de-DE" and POSIX style names such as "de_DE.UTF-8".
func LookupLocale(name string) (Locale, error) {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "C", "POSIX":
		return C, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", name, err)
	}

	p := message.NewPrinter(tag)
	probe := p.Sprint(number.Decimal(probeValue,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	loc, ok := symbolsFromProbe(probe)
	if !ok {
		return Locale{}, fmt.Errorf("locale %q: unrecognized number format %q", name, probe)
	}
	loc.Tag = tag.String()
	return loc, nil
}

// symbolsFromProbe extracts the symbols from the formatted probeValue.
func symbolsFromProbe(probe string) (Locale, bool) {
	loc := Locale{Minus: '-'}
	var separators []rune
	seenDigit := false

	for _, r := range probe {
		switch {
		case unicode.Is(unicode.Bidi_Control, r):
			continue
		case unicode.IsDigit(r):
			if !seenDigit {
				// The first digit of the probe is '1'.
				loc.Zero = r - 1
				seenDigit = true
			}
		case !seenDigit:
			loc.Minus = r
		default:
			separators = append(separators, r)
		}
	}

	if !seenDigit || len(separators) == 0 {
		return Locale{}, false
	}

	loc.Decimal = separators[len(separators)-1]
	if len(separators) > 1 {
		loc.Group = separators[0]
	} else if loc.Decimal == ',' {
		loc.Group = '.'
	} else {
		loc.Group = ','
	}
	return loc, true
}

// String returns the locale tag.
func (l Locale) String() string {
	return l.Tag
}

// IsGroupSeparator reports whether r separates digit groups in this locale.
// Locales grouping with a space variant accept any space.
func (l Locale) IsGroupSeparator(r rune) bool {
	if r == l.Group {
		return true
	}
	return unicode.IsSpace(l.Group) && unicode.IsSpace(r)
}

// IsMinus reports whether r is a minus sign. The ASCII hyphen-minus is always
// accepted next to the locale's own sign.
func (l Locale) IsMinus(r rune) bool {
	return r == l.Minus || r == '-' || r == '\u2212'
}

// DigitValue returns the value of r as a decimal digit in this locale, or -1.
func (l Locale) DigitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	if l.Zero != 0 && r >= l.Zero && r <= l.Zero+9 {
		return int(r - l.Zero)
	}
	return -1
}

// IsDigit reports whether r is a decimal digit in this locale.
func (l Locale) IsDigit(r rune) bool {
	return l.DigitValue(r) >= 0
}

// StripGroupSeparators removes every group separator from s.
func (l Locale) StripGroupSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if l.IsGroupSeparator(r) {
			return -1
		}
		return r
	}, s)
}
