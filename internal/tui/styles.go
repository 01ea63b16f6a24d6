package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/multispin/internal/version"
)

// Application branding constants
const (
	AppName   = "MULTISPIN"
	GitHubURL = "github.com/muurk/multispin"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// MinTerminalWidth is the narrowest terminal the full-screen container is
// drawn in. Narrower terminals get the bare content.
const MinTerminalWidth = 40

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor       = lipgloss.Color("#FFFFFF") // White
	SubtleColor     = lipgloss.Color("#626262") // Gray
	BorderColor     = lipgloss.Color("#7D56F4") // Purple (same as primary)
	BackgroundColor = lipgloss.Color("#1A1A1A") // Dark gray
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Field box around the spin box text
	FieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	FocusedFieldStyle = FieldStyle.
				BorderForeground(PrimaryColor)

	// Literal prefix and suffix text
	LiteralStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Value of the current section
	CurrentValueStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	SelectionStyle = lipgloss.NewStyle().
			Foreground(BackgroundColor).
			Background(SecondaryColor)

	CaretStyle = lipgloss.NewStyle().
			Reverse(true)

	IndicatorStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	DisabledIndicatorStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Faint(true)

	LabelStyle = lipgloss.NewStyle().
			Width(12).
			Foreground(SubtleColor)

	PendingStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	NotificationStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0, 0, 0)
)

// renderButton renders a button, highlighted when focused.
func renderButton(label string, focused bool) string {
	style := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)
	if focused {
		style = style.
			Background(PrimaryColor).
			Foreground(BackgroundColor)
	}
	return style.Render("[ " + label + " ]")
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps content in the full-screen panel with a
// header and a footer.
//
// Uses lipgloss.Place() to fill the entire terminal and pin footer to bottom
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(1, 1)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(footerText),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}
