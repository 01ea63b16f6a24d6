// Package validator checks text typed into a multi-section spin box.
//
// Decimal is a bounded, locale-aware decimal validator. It classifies a
// number as Acceptable (complete and in range), Intermediate (could still
// become acceptable with more typing) or Invalid (can never become
// acceptable, so the edit should be rejected).
//
// Section wraps a Decimal for the current section of a spin box. It only
// accepts edits confined to the current value: the literal text before and
// after the value must be left untouched, and integer sections never accept a
// decimal separator.
//
//	v := validator.NewSection(numfmt.C)
//	v.SetPrefix("abc")
//	v.SetRange(0, 1000, 0)
//	_, _, state := v.Validate("abc12", 5) // Acceptable
package validator
