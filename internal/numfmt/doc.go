// Package numfmt converts section values to and from their localized display
// text.
//
// Formatting is a pure function of the value, the number of decimals, an
// explicit "show group separator" flag and a Locale. The flag always wins over
// whatever grouping default the locale itself would apply, so two callers
// formatting the same value always get the same text.
//
// # Locales
//
// A Locale only carries the symbols a fixed-point number needs: the decimal
// separator, the group separator, the minus sign and the zero digit. The C
// locale is built in; other locales are probed from CLDR data through
// golang.org/x/text:
//
//	loc, err := numfmt.LookupLocale("de-DE")
//	if err != nil {
//	    return err
//	}
//	numfmt.Format(6789.123, 3, true, loc) // "6.789,123"
//
// # Parsing
//
// Parse is lenient about group separators inside the integer part (they are
// removed before conversion, wherever they were typed) and strict about
// everything else. Transient input such as a lone minus sign or a trailing
// decimal separator does not parse, which lets callers keep the previous
// value while the user is still typing.
//
// # Rounding
//
// RoundToDigits rounds half away from zero. Section bounds, clamping and
// formatting all go through it so a value equal to a bound after rounding is
// never treated as out of range.
package numfmt
