// Package tui implements the terminal front end for editing a multi-section
// spin box.
//
// Built using the Bubble Tea framework, the Model hosts one spinbox.SpinBox
// followed by a "Done" button. Key messages are translated into input
// events and delivered to the spin box; Tab past the last section moves focus
// to the button and Shift+Tab from the button returns to the last section.
//
// The view shows the field with the current value highlighted, step
// indicators derived from the enabled step directions, the committed and
// pending values, and the most recent "values changed" notifications.
//
// # Usage Example
//
//	box := spinbox.New(numfmt.C)
//	_ = preset.Apply(box.Controller())
//	model := tui.New(box, "hsv", preset.Description)
//	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
//	    log.Fatal(err)
//	}
//	if model.Confirmed() {
//	    fmt.Println(model.Values())
//	}
package tui
