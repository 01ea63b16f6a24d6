// Package textfield is an in-memory single-line text editor with a caret, a
// selection and an optional validator.
//
// It plays the part a GUI line edit widget plays for a spin box: it owns the
// text, applies user edits, and reports changes through synchronous
// callbacks. Every user edit is run through the Validator first; edits the
// validator calls Invalid are dropped without any change or callback.
//
// Programmatic writes (SetText, SetCursorPosition, SetSelection) are not
// validated but still fire the callbacks, so owners that write back into the
// field from a callback must guard against their own echo.
//
// Offsets are counted in runes.
package textfield
