package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings shown in the help view. Step, navigation
// and commit keys are delivered to the spin box; the rest are handled by the
// model.
type keyMap struct {
	StepUp     key.Binding
	StepDown   key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Next       key.Binding
	Prev       key.Binding
	Commit     key.Binding
	Clear      key.Binding
	Tracking   key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StepUp, k.StepDown, k.Next, k.Commit, k.ToggleHelp, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StepUp, k.StepDown, k.PageUp, k.PageDown},
		{k.Next, k.Prev, k.Commit, k.Clear},
		{k.Tracking, k.ToggleHelp, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		StepUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "step up"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "step down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous section"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "clear section"),
		),
		Tracking: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "keyboard tracking"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}
