// Package section holds the numeric domain of a multi-section spin box.
//
// A Config describes one section: its range, decimals, wrapping flag, single
// step, group separator flag and the literal prefix and suffix around the
// value. A Model is the ordered list of configurations together with two
// parallel value lists:
//
//   - committed values, the last values observers were notified about
//   - pending values, the values currently displayed while editing
//
// Both lists always have exactly one entry per section, and every entry is
// normalized against its section: rounded to the section's decimals, then
// either wrapped into [minimum, maximum) or clamped into [minimum, maximum].
//
// # Example
//
//	hue := section.NewConfig()
//	hue.SetDecimals(0)
//	hue.SetRange(0, 360)
//	hue.SetWrapping(true)
//	hue.SetFormatString("%1°")
//
//	m := section.NewModel()
//	m.SetConfigurations([]section.Config{hue})
//	m.SetPendingValues([]float64{365})
//	m.Pending() // [5]
//
// Models are not safe for concurrent use. They live on the goroutine that
// delivers input events to the spin box.
package section
