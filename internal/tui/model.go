package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/muurk/multispin/internal/input"
	"github.com/muurk/multispin/internal/logging"
	"github.com/muurk/multispin/internal/spinbox"
)

// maxNotifications is the number of "values changed" notifications kept for
// display.
const maxNotifications = 5

// focusTarget is the widget holding keyboard focus inside the model.
type focusTarget int

const (
	focusField focusTarget = iota
	focusDone
)

// Model is the Bubble Tea model hosting one spin box and a "Done" button.
type Model struct {
	box         *spinbox.SpinBox
	title       string
	description string

	focus     focusTarget
	confirmed bool

	// Notifications received from the controller
	notifications []string
	finished      int

	Width  int
	Height int

	Help help.Model
	Keys keyMap
}

// New creates a model around box and gives the spin box focus. The box
// should already carry its sections and values; New installs its own
// notification callbacks on the controller.
func New(box *spinbox.SpinBox, title, description string) *Model {
	m := &Model{
		box:         box,
		title:       title,
		description: description,
		Help:        help.New(),
		Keys:        newKeyMap(),
	}

	c := box.Controller()
	c.OnValuesChanged(func(values []float64) {
		m.notifications = append(m.notifications, m.formatValues(values))
		if len(m.notifications) > maxNotifications {
			m.notifications = m.notifications[len(m.notifications)-maxNotifications:]
		}
	})
	c.OnEditingFinished(func() {
		m.finished++
	})

	box.Focus(spinbox.FocusTab)
	return m
}

// Values returns the committed values.
func (m *Model) Values() []float64 {
	return m.box.Controller().Values()
}

// Confirmed reports whether the user left through the "Done" button.
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// EditingFinished returns how often editing was finished.
func (m *Model) EditingFinished() int {
	return m.finished
}

// SpinBox returns the hosted spin box.
func (m *Model) SpinBox() *spinbox.SpinBox {
	return m.box
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(strings.ToLower(AppName) + ": " + m.title)
}

// Update handles all messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.ToggleHelp):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	case key.Matches(msg, m.Keys.Tracking):
		c := m.box.Controller()
		c.SetKeyboardTracking(!c.KeyboardTracking())
		return m, nil
	}

	if m.focus == focusDone {
		return m.handleDoneKey(msg)
	}

	if key.Matches(msg, m.Keys.Clear) {
		m.box.Controller().Clear()
		return m, nil
	}

	// Typed and pasted text goes in character by character.
	if msg.Type == tea.KeyRunes && !msg.Alt {
		m.box.Type(string(msg.Runes))
		return m, nil
	}

	ev, err := input.ParseEvent(msg.String())
	if err != nil {
		logging.Debug("Ignoring key", zap.String("key", msg.String()))
		return m, nil
	}
	if out := m.box.HandleKey(ev); out.FocusLeft {
		m.focus = focusDone
	}
	return m, nil
}

func (m *Model) handleDoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		m.confirmed = true
		return m, tea.Quit
	case "shift+tab":
		m.focus = focusField
		m.box.Focus(spinbox.FocusBacktab)
	case "tab":
		m.focus = focusField
		m.box.Focus(spinbox.FocusTab)
	}
	return m, nil
}

// View renders the model
func (m *Model) View() string {
	content := m.renderContent()
	footer := m.Help.View(m.Keys)
	if m.Width < MinTerminalWidth || m.Height == 0 {
		return content + "\n" + HelpStyle.Render(footer)
	}
	return RenderApplicationContainer(content, footer, m.Width, m.Height)
}

func (m *Model) renderContent() string {
	c := m.box.Controller()

	parts := []string{TitleStyle.Render(m.title)}
	if m.description != "" {
		parts = append(parts, SubtitleStyle.Render(m.description), "")
	}

	fieldStyle := FieldStyle
	if m.box.HasFocus() {
		fieldStyle = FocusedFieldStyle
	}
	field := lipgloss.JoinHorizontal(lipgloss.Center,
		fieldStyle.Render(m.renderText()),
		" ",
		m.renderIndicators(),
	)
	parts = append(parts, field, "")

	parts = append(parts, renderRow("Section", fmt.Sprintf("%d / %d", c.CurrentSectionIndex()+1, c.SectionCount())))
	parts = append(parts, renderRow("Committed", m.formatValues(c.Values())))
	if pending := c.PendingValues(); !slices.Equal(pending, c.Values()) {
		parts = append(parts, renderRow("Pending", PendingStyle.Render(m.formatValues(pending))))
	}
	tracking := "on"
	if !c.KeyboardTracking() {
		tracking = "off"
	}
	parts = append(parts, renderRow("Tracking", tracking), "")

	parts = append(parts, renderButton("Done", m.focus == focusDone))

	if len(m.notifications) > 0 {
		parts = append(parts, "", LabelStyle.Render("Changes"))
		for _, n := range m.notifications {
			parts = append(parts, NotificationStyle.Render("  "+n))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderText renders the field text with the current value, the selection
// and the caret highlighted, padded to the widest possible text.
func (m *Model) renderText() string {
	f := m.box.Field()
	split := m.box.Controller().Split()
	runes := []rune(f.Text())
	selStart, selLen := f.Selection()
	caret := f.CursorPosition()
	focused := f.HasFocus()

	var b strings.Builder
	for i, r := range runes {
		cell := string(r)
		switch {
		case focused && selLen > 0 && i >= selStart && i < selStart+selLen:
			b.WriteString(SelectionStyle.Render(cell))
		case focused && selLen == 0 && i == caret:
			b.WriteString(CaretStyle.Render(cell))
		case i >= split.ValueStart() && i < split.ValueEnd():
			b.WriteString(CurrentValueStyle.Render(cell))
		default:
			b.WriteString(LiteralStyle.Render(cell))
		}
	}

	used := runewidth.StringWidth(string(runes))
	if focused && selLen == 0 && m.caretColumn() >= used {
		b.WriteString(CaretStyle.Render(" "))
		used++
	}
	if pad := m.fieldWidth() - used; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// fieldWidth returns the number of terminal cells reserved for the text.
func (m *Model) fieldWidth() int {
	return runewidth.StringWidth(m.box.Controller().SizeHintText())
}

// caretColumn returns the terminal cell the caret is drawn in.
func (m *Model) caretColumn() int {
	f := m.box.Field()
	runes := []rune(f.Text())
	return runewidth.StringWidth(string(runes[:f.CursorPosition()]))
}

func (m *Model) renderIndicators() string {
	flags := m.box.Controller().StepEnabled()
	up := DisabledIndicatorStyle.Render("▲")
	if flags.CanStepUp() {
		up = IndicatorStyle.Render("▲")
	}
	down := DisabledIndicatorStyle.Render("▼")
	if flags.CanStepDown() {
		down = IndicatorStyle.Render("▼")
	}
	return lipgloss.JoinVertical(lipgloss.Left, up, down)
}

// formatValues formats values the way the sections display them.
func (m *Model) formatValues(values []float64) string {
	c := m.box.Controller()
	configs := c.SectionConfigurations()
	loc := c.Locale()
	parts := make([]string, len(values))
	for i, v := range values {
		if i < len(configs) {
			parts[i] = configs[i].Format(v, loc)
		} else {
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, "  ")
}

func renderRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), value)
}
