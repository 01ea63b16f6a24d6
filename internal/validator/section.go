package validator

import (
	"strings"

	"github.com/muurk/multispin/internal/numfmt"
)

// Section validates the full text of a spin box while only the value of the
// current section may change.
type Section struct {
	decimal *Decimal
	prefix  string
	suffix  string
	locale  numfmt.Locale
}

// NewSection returns a section validator with empty prefix and suffix.
func NewSection(loc numfmt.Locale) *Section {
	return &Section{
		decimal: NewDecimal(loc),
		locale:  loc,
	}
}

// SetPrefix sets the text expected before the current value.
func (s *Section) SetPrefix(prefix string) { s.prefix = prefix }

// Prefix returns the text expected before the current value.
func (s *Section) Prefix() string { return s.prefix }

// SetSuffix sets the text expected after the current value.
func (s *Section) SetSuffix(suffix string) { s.suffix = suffix }

// Suffix returns the text expected after the current value.
func (s *Section) Suffix() string { return s.suffix }

// SetRange configures bounds and decimals of the current value.
func (s *Section) SetRange(bottom, top float64, decimals int) {
	s.decimal.SetRange(bottom, top, decimals)
}

// SetLocale sets the locale of the number symbols.
func (s *Section) SetLocale(loc numfmt.Locale) {
	s.locale = loc
	s.decimal.SetLocale(loc)
}

// Validate checks input, the full text after an edit, with the caret at pos.
// It returns the possibly rewritten text and caret together with the state.
//
// A decimal separator typed right in front of an existing one is consumed:
// the caret moves past the existing separator and the text stays as it was.
func (s *Section) Validate(input string, pos int) (string, int, State) {
	runes := []rune(input)
	dec := s.locale.Decimal
	if pos > 0 && pos < len(runes) && runes[pos-1] == dec && runes[pos] == dec {
		runes = append(runes[:pos-1], runes[pos:]...)
		input = string(runes)
	}

	core := input
	if s.prefix != "" {
		if !strings.HasPrefix(core, s.prefix) {
			return input, pos, Invalid
		}
		core = core[len(s.prefix):]
	}
	if s.suffix != "" {
		if !strings.HasSuffix(core, s.suffix) {
			return input, pos, Invalid
		}
		core = core[:len(core)-len(s.suffix)]
	}

	if s.decimal.Decimals() == 0 && strings.ContainsRune(core, dec) {
		return input, pos, Invalid
	}

	state := s.decimal.Validate(core)
	return s.prefix + core + s.suffix, pos, state
}
