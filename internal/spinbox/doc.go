// Package spinbox implements a multi-section numeric spin box: one line of
// text hosting several independently configured numbers.
//
// # Controller
//
// Controller is the editing state machine. It owns the section model, the
// index of the current section and the composed text split around the
// current value, and it reacts to the events a text field delivers:
//
//   - HandleCursorPositionChanged: the caret moved; may switch sections
//   - HandleTextChanged: the user edited the text; may update the value
//   - FocusNext / FocusPrevious: Tab and Shift+Tab between sections
//   - HandleReturn, FocusIn, FocusOut: fix up, select and commit
//   - StepBy: arrow and page keys
//
// Every transition returns an Outcome describing what happened. Writes the
// controller makes into its own text field are guarded so that the field's
// change callbacks do not re-enter the controller.
//
// # Commit semantics
//
// The controller keeps pending values (what is displayed) apart from
// committed values (what observers were told). With keyboard tracking on,
// every parsed keystroke commits. With it off, commits happen on Enter,
// focus loss, stepping, Tab moves between sections and programmatic value or
// configuration changes. Observers are notified once per commit that
// actually changed a value.
//
// # SpinBox
//
// SpinBox wires a Controller to an in-memory textfield.Field and translates
// key events into field edits and controller transitions, the way a GUI spin
// box widget dispatches keys. Front ends (the terminal UI, the remote
// session server, the script runner) drive a SpinBox:
//
//	box := spinbox.New(numfmt.C)
//	box.Controller().SetSectionConfigurations(configs)
//	box.Controller().OnValuesChanged(func(values []float64) { ... })
//	box.Focus(spinbox.FocusTab)
//	box.HandleKey(input.KeyEvent(input.KeyUp, input.ModNone))
//
// Nothing in this package is safe for concurrent use; drive a spin box from
// a single goroutine.
package spinbox
