package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/multispin/internal/config"
	"github.com/muurk/multispin/internal/discovery"
	"github.com/muurk/multispin/internal/input"
	"github.com/muurk/multispin/internal/numfmt"
	"github.com/muurk/multispin/internal/remote"
	"github.com/muurk/multispin/internal/spinbox"
	"github.com/muurk/multispin/internal/tui"
	"github.com/muurk/multispin/internal/ui"
	"github.com/muurk/multispin/internal/validator"
	"github.com/muurk/multispin/internal/version"
)

// Command flags
var (
	presetName  string
	localeName  string
	noTracking  bool
	saveValues  bool
	decimals    int
	showGroup   bool
	sectionIdx  int
	cursorPos   int
	keySequence string
	focusOut    bool
	serveHost   string
	servePort   int
	advertise   bool
	instance    string
	scanTimeout int
)

func init() {
	// The editor also runs as the root command's default action
	for _, c := range []*cobra.Command{rootCmd, editCmd} {
		c.Flags().StringVarP(&presetName, "preset", "p", "", "Preset name (defaults to the configured default preset)")
		c.Flags().StringVar(&localeName, "locale", "", "Number locale, e.g. de-DE (defaults to the configured locale)")
		c.Flags().BoolVar(&noTracking, "no-tracking", false, "Commit only on Enter, focus loss and steps")
	}
	editCmd.Flags().BoolVar(&saveValues, "save", false, "Store the confirmed values as the preset's initial values")

	formatCmd.Flags().IntVarP(&decimals, "decimals", "d", 2, "Digits after the decimal separator")
	formatCmd.Flags().BoolVar(&showGroup, "group", false, "Show group separators")
	formatCmd.Flags().StringVar(&localeName, "locale", "", "Number locale, e.g. de-DE")

	parseCmd.Flags().StringVar(&localeName, "locale", "", "Number locale, e.g. de-DE")

	validateCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Preset name")
	validateCmd.Flags().IntVar(&sectionIdx, "section", 0, "Index of the section being edited")
	validateCmd.Flags().IntVar(&cursorPos, "cursor", -1, "Caret offset in runes (defaults to the end of the text)")
	validateCmd.Flags().StringVar(&localeName, "locale", "", "Number locale, e.g. de-DE")

	scriptCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Preset name")
	scriptCmd.Flags().StringVarP(&keySequence, "keys", "k", "", "Space separated keys, e.g. \"up 5 4 enter tab 7\"")
	scriptCmd.Flags().StringVar(&localeName, "locale", "", "Number locale, e.g. de-DE")
	scriptCmd.Flags().BoolVar(&noTracking, "no-tracking", false, "Commit only on Enter, focus loss and steps")
	scriptCmd.Flags().BoolVar(&focusOut, "focus-out", false, "Take focus away after the last key")
	_ = scriptCmd.MarkFlagRequired("keys")

	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Listen address (empty = all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", 8765, "Listen port (0 = any free port)")
	serveCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Preset for clients that name none")
	serveCmd.Flags().BoolVar(&advertise, "advertise", false, "Advertise the server with mDNS")
	serveCmd.Flags().StringVar(&instance, "instance", "", "mDNS instance name (defaults to \"multispin on <hostname>\")")

	discoverCmd.Flags().IntVar(&scanTimeout, "timeout", 3, "Scan timeout in seconds")
	discoverCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Preset to put in the printed URLs")

	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsShowCmd)

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(discoverCmd)
}

// reportedError marks an error that was already printed with
// troubleshooting text.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// newPrinter styles output only when it goes to a terminal.
func newPrinter(cmd *cobra.Command) *ui.Printer {
	out := cmd.OutOrStdout()
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = ui.IsTerminal(f)
	}
	return ui.NewPrinter(out, styled)
}

// fail prints err with its troubleshooting hint.
func fail(p *ui.Printer, title string, err error) error {
	p.Failure(title, err, config.Hint(err))
	return reportedError{err: err}
}

func loadRegistry(p *ui.Printer) (*config.Registry, error) {
	reg, err := config.LoadRegistry()
	if err != nil {
		return nil, fail(p, "Failed to load configuration", err)
	}
	return reg, nil
}

// resolvePreset returns the named preset, or the default preset when name
// is empty.
func resolvePreset(reg *config.Registry, name string) (string, *config.Preset, error) {
	if name == "" {
		name = reg.DefaultPresetName()
	}
	preset, err := reg.Preset(name)
	if err != nil {
		return "", nil, err
	}
	return name, preset, nil
}

func lookupLocale(name string) (numfmt.Locale, error) {
	loc, err := numfmt.LookupLocale(name)
	if err != nil {
		return numfmt.C, config.NewValidationError("invalid --locale", []error{err})
	}
	return loc, nil
}

// newBox builds a spin box from the preferences, the preset and the
// command line overrides.
func newBox(reg *config.Registry, preset *config.Preset, locale string, tracking bool) (*spinbox.SpinBox, error) {
	box := spinbox.New(numfmt.C)
	if reg.Preferences != nil {
		if err := reg.Preferences.Apply(box); err != nil {
			return nil, err
		}
	}
	c := box.Controller()
	if locale != "" {
		loc, err := lookupLocale(locale)
		if err != nil {
			return nil, err
		}
		c.SetLocale(loc)
	}
	if !tracking {
		c.SetKeyboardTracking(false)
	}
	if err := preset.Apply(c); err != nil {
		return nil, err
	}
	return box, nil
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// editCmd launches the interactive editor
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit values in the interactive spin box",
	Long: `Launch an interactive terminal editor hosting one multi-section spin box.

Arrow keys step the section under the caret, Page Up/Down step ten times,
Tab and Shift+Tab move between sections and Enter commits. Tab past the last
section focuses the Done button; confirming it prints the final text.`,
	Example: `  # Edit a time of day
  multispin edit --preset time

  # Or simply (edit is default):
  multispin -p coordinates --locale de-DE

  # Keep the result as the preset's initial values
  multispin edit --preset rgb --save`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)
	if !ui.IsTerminal(os.Stdin) || !ui.IsTerminal(os.Stdout) {
		return fmt.Errorf("the editor needs an interactive terminal; use 'multispin script' for headless use")
	}

	reg, err := loadRegistry(p)
	if err != nil {
		return err
	}
	name, preset, err := resolvePreset(reg, presetName)
	if err != nil {
		return fail(p, "Unknown preset", err)
	}
	box, err := newBox(reg, preset, localeName, reg.Preferences.Tracking() && !noTracking)
	if err != nil {
		return fail(p, "Invalid preset", err)
	}

	model := tui.New(box, name, preset.Description)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("editor error: %w", err)
	}

	m, ok := final.(*tui.Model)
	if !ok || !m.Confirmed() {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), box.Text())

	if saveValues {
		updated := *preset
		updated.Values = m.Values()
		if err := reg.SetPreset(name, &updated); err != nil {
			return fail(p, "Failed to save values", err)
		}
		if err := reg.Save(); err != nil {
			return fail(p, "Failed to save configuration", err)
		}
	}
	return nil
}

// formatCmd formats a number
var formatCmd = &cobra.Command{
	Use:   "format <value>",
	Short: "Format a number like a spin box section",
	Long: `Format a number with a fixed number of decimals in a locale.

Values are rounded half away from zero. Negative zero loses its sign.`,
	Example: `  multispin format 6789.125 --decimals 2 --locale de-DE --group
  multispin format -- -0.0001 --decimals 2`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	if decimals < 0 || decimals > numfmt.MaxDecimals {
		return fmt.Errorf("--decimals must be within [0, %d]", numfmt.MaxDecimals)
	}
	loc, err := lookupLocale(localeName)
	if err != nil {
		return fail(p, "Invalid locale", err)
	}

	p.Success("Value formatted",
		ui.Param{Key: "Text", Value: numfmt.Format(value, decimals, showGroup, loc)},
		ui.Param{Key: "Locale", Value: loc.String()},
		ui.Param{Key: "Decimals", Value: strconv.Itoa(decimals)},
	)
	return nil
}

// parseCmd parses localized text
var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse localized number text",
	Long: `Parse number text the way a spin box section does: group separators
are ignored, the locale's decimal separator and minus sign are accepted.`,
	Example: `  multispin parse "6.789,12" --locale de-DE`,
	Args:    cobra.ExactArgs(1),
	RunE:    runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)

	loc, err := lookupLocale(localeName)
	if err != nil {
		return fail(p, "Invalid locale", err)
	}

	clean := loc.StripGroupSeparators(strings.TrimSpace(args[0]))
	value, ok := numfmt.Parse(clean, loc)
	if !ok {
		return fail(p, "Parse failed", fmt.Errorf("%q is not a number in locale %s", args[0], loc))
	}

	p.Success("Text parsed",
		ui.Param{Key: "Value", Value: strconv.FormatFloat(value, 'g', -1, 64)},
		ui.Param{Key: "Locale", Value: loc.String()},
	)
	return nil
}

// validateCmd runs the section validator
var validateCmd = &cobra.Command{
	Use:   "validate <text>",
	Short: "Validate the full text of a spin box while a section is edited",
	Long: `Validate text as the spin box would while the given section is being
edited. The text must keep every other section and all prefix/suffix text
unchanged; only the edited section's value may differ.

The exit status is non-zero when the text is invalid.`,
	Example: `  # Hours edited to "7" in a time of day
  multispin validate "7:00:00" --preset time --section 0

  # Decimal separator jump in a German locale
  multispin validate "1,,5" --preset default --locale de-DE --cursor 2`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)

	reg, err := loadRegistry(p)
	if err != nil {
		return err
	}
	_, preset, err := resolvePreset(reg, presetName)
	if err != nil {
		return fail(p, "Unknown preset", err)
	}
	box, err := newBox(reg, preset, localeName, true)
	if err != nil {
		return fail(p, "Invalid preset", err)
	}

	c := box.Controller()
	if sectionIdx < 0 || sectionIdx >= c.SectionCount() {
		return fmt.Errorf("--section %d out of range [0, %d)", sectionIdx, c.SectionCount())
	}
	c.SetCurrentSectionIndex(sectionIdx)

	text := args[0]
	pos := cursorPos
	if pos < 0 {
		pos = utf8.RuneCountInString(text)
	}
	fixed, newPos, state := c.Validate(text, pos)
	split := c.Split()

	details := []ui.Param{
		{Key: "State", Value: p.State(state)},
		{Key: "Section", Value: strconv.Itoa(sectionIdx)},
		{Key: "Before", Value: strconv.Quote(split.Before)},
		{Key: "After", Value: strconv.Quote(split.After)},
	}
	if fixed != text || newPos != pos {
		details = append(details,
			ui.Param{Key: "Text", Value: strconv.Quote(fixed)},
			ui.Param{Key: "Cursor", Value: strconv.Itoa(newPos)},
		)
	}

	if state == validator.Invalid {
		p.Warning("Text rejected", details...)
		return reportedError{err: fmt.Errorf("text %q is invalid", text)}
	}
	p.Success("Text validated", details...)
	return nil
}

// scriptCmd replays keys headlessly
var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Replay keys on a headless spin box",
	Long: `Replay a key sequence on a focused spin box and print the text after each
key together with every "values changed" and "editing finished"
notification.

Keys are separated by spaces. Single characters are typed; named keys are
up, down, pgup, pgdown, left, right, home, end, tab, shift+tab, enter,
backspace, delete and space.`,
	Example: `  multispin script --preset time --keys "up 5 4 enter tab 7"
  multispin script --preset coordinates --no-tracking --keys "5 2 , 5 tab 1 3" --focus-out`,
	Args: cobra.NoArgs,
	RunE: runScript,
}

func runScript(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)

	reg, err := loadRegistry(p)
	if err != nil {
		return err
	}
	name, preset, err := resolvePreset(reg, presetName)
	if err != nil {
		return fail(p, "Unknown preset", err)
	}
	box, err := newBox(reg, preset, localeName, reg.Preferences.Tracking() && !noTracking)
	if err != nil {
		return fail(p, "Invalid preset", err)
	}

	p.Header("Script", "multispin script",
		ui.Param{Key: "Preset", Value: name},
		ui.Param{Key: "Text", Value: box.Text()},
	)

	if err := replayKeys(box, keySequence, focusOut, func(line string) { p.Line("%s", line) }); err != nil {
		return err
	}

	c := box.Controller()
	p.Success("Script finished",
		ui.Param{Key: "Text", Value: box.Text()},
		ui.Param{Key: "Values", Value: formatValues(c.Values())},
		ui.Param{Key: "Pending", Value: formatValues(c.PendingValues())},
		ui.Param{Key: "Section", Value: strconv.Itoa(c.CurrentSectionIndex())},
	)
	return nil
}

// replayKeys focuses box, delivers each key of keys and reports the text
// after every key and every notification through emit.
func replayKeys(box *spinbox.SpinBox, keys string, blur bool, emit func(string)) error {
	names := strings.Fields(keys)
	events := make([]input.Event, 0, len(names))
	for _, name := range names {
		ev, err := input.ParseEvent(name)
		if err != nil {
			return err
		}
		events = append(events, ev)
	}

	c := box.Controller()
	c.OnValuesChanged(func(values []float64) {
		emit("  values changed " + formatValues(values))
	})
	c.OnEditingFinished(func() {
		emit("  editing finished")
	})

	box.Focus(spinbox.FocusTab)
	for i, ev := range events {
		out := box.HandleKey(ev)
		line := fmt.Sprintf("%-10s %q", names[i], box.Text())
		if !out.Handled {
			line += " (ignored)"
		}
		if out.FocusLeft {
			line += " (focus left)"
		}
		emit(line)
	}
	if blur {
		box.Blur(spinbox.FocusOther)
		emit(fmt.Sprintf("%-10s %q", "focus-out", box.Text()))
	}
	return nil
}

// presetsCmd groups the preset commands
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List and inspect presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and user presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter(cmd)
		reg, err := loadRegistry(p)
		if err != nil {
			return err
		}

		path, _ := config.GetConfigPath()
		p.Header("Presets", "multispin presets list", ui.Param{Key: "Config", Value: path})
		for _, name := range reg.PresetNames() {
			preset, err := reg.Preset(name)
			if err != nil {
				continue
			}
			note := preset.Description
			if !reg.IsBuiltin(name) {
				note += " (user)"
			}
			p.Item(name, note)
		}
		return nil
	},
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a preset's sections and initial text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter(cmd)
		reg, err := loadRegistry(p)
		if err != nil {
			return err
		}
		name, preset, err := resolvePreset(reg, args[0])
		if err != nil {
			return fail(p, "Unknown preset", err)
		}
		box, err := newBox(reg, preset, "", true)
		if err != nil {
			return fail(p, "Invalid preset", err)
		}

		p.Success(name,
			ui.Param{Key: "Description", Value: preset.Description},
			ui.Param{Key: "Sections", Value: preset.Summary()},
			ui.Param{Key: "Text", Value: box.Text()},
			ui.Param{Key: "Values", Value: formatValues(box.Controller().Values())},
		)
		return nil
	},
}

// serveCmd starts the remote session server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve spin box sessions over WebSocket",
	Long: `Start a WebSocket server at /ws. Every connection gets its own spin box,
configured from the preset named in the ?preset= query parameter or the
--preset flag. /healthz reports the number of active sessions.`,
	Example: `  # Serve the time preset on localhost
  multispin serve --preset time

  # Serve on all interfaces and advertise with mDNS
  multispin serve --host "" --port 8765 --advertise`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)
	reg, err := loadRegistry(p)
	if err != nil {
		return err
	}

	srv, err := remote.New(&remote.Config{
		Host:          serveHost,
		Port:          servePort,
		DefaultPreset: presetName,
		Registry:      reg,
	})
	if err != nil {
		return fail(p, "Failed to create server", err)
	}
	if err := srv.Listen(); err != nil {
		return err
	}

	addr := srv.Addr().String()
	p.Header("Serve", "multispin serve",
		ui.Param{Key: "Address", Value: "ws://" + addr + discovery.DefaultPath},
		ui.Param{Key: "Preset", Value: presetName},
	)

	if advertise {
		port := servePort
		if tcp, ok := srv.Addr().(*net.TCPAddr); ok {
			port = tcp.Port
			if tcp.IP.IsLoopback() {
				p.Warning("Advertising a loopback address",
					ui.Param{Key: "Tip", Value: "use --host \"\" so other machines can connect"})
			}
		}
		adv, err := discovery.Advertise(instance, port, map[string]string{
			discovery.TxtVersion: version.Version,
			discovery.TxtPreset:  presetName,
			discovery.TxtPath:    discovery.DefaultPath,
		})
		if err != nil {
			return fmt.Errorf("advertise failed: %w", err)
		}
		defer adv.Shutdown()
		p.Line("Advertising as %q", adv.Instance())
	}

	return srv.Start(cmd.Context())
}

// discoverCmd browses for session servers
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find session servers on the local network",
	Long: `Browse for multispin session servers advertised with mDNS and print their
WebSocket URLs.`,
	Example: `  multispin discover
  multispin discover --timeout 10 --preset rgb`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter(cmd)
		timeout := time.Duration(scanTimeout) * time.Second

		endpoints, err := discovery.Scan(cmd.Context(), timeout)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if len(endpoints) == 0 {
			p.Warning("No session servers found",
				ui.Param{Key: "Tip", Value: "start one with 'multispin serve --host \"\" --advertise'"},
				ui.Param{Key: "Tip", Value: "allow mDNS (UDP port 5353) through the firewall"},
				ui.Param{Key: "Tip", Value: "try increasing --timeout"},
			)
			return nil
		}

		p.Header("Discover", "multispin discover", ui.Param{Key: "Found", Value: strconv.Itoa(len(endpoints))})
		for _, ep := range endpoints {
			note := ep.URL(presetName)
			if v := ep.GetMetadata(discovery.TxtVersion); v != "" {
				note += " (version " + v + ")"
			}
			p.Item(ep.Instance, note)
		}
		return nil
	},
}
