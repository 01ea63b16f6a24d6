package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muurk/multispin/internal/validator"
)

// Printer writes command output either as styled boxes or, when Plain is
// set, as plain "key: value" lines suitable for scripts.
type Printer struct {
	Out   io.Writer
	Plain bool
	Width int
}

// NewPrinter returns a printer for out. Output is plain unless styled is
// true.
func NewPrinter(out io.Writer, styled bool) *Printer {
	return &Printer{Out: out, Plain: !styled, Width: GetTerminalWidth()}
}

// Header prints a command header.
func (p *Printer) Header(title, command string, params ...Param) {
	if p.Plain {
		for _, param := range params {
			fmt.Fprintf(p.Out, "# %s: %s\n", param.Key, param.Value)
		}
		return
	}
	fmt.Fprintln(p.Out, NewHeader(title, command, params...).SetWidth(p.Width).Render())
}

// Success prints a success result.
func (p *Printer) Success(title string, details ...Param) {
	if p.Plain {
		p.details(details)
		return
	}
	fmt.Fprintln(p.Out, NewSuccessResult(title, details...).SetWidth(p.Width).Render())
}

// Warning prints a warning result.
func (p *Printer) Warning(title string, details ...Param) {
	if p.Plain {
		fmt.Fprintf(p.Out, "warning: %s\n", title)
		p.details(details)
		return
	}
	fmt.Fprintln(p.Out, NewWarningResult(title, details...).SetWidth(p.Width).Render())
}

// Failure prints a failure result with troubleshooting text. hint may hold
// several lines; lines that are bullet points become tips.
func (p *Printer) Failure(title string, err error, hint string) {
	if p.Plain {
		fmt.Fprintf(p.Out, "error: %s: %v\n", title, err)
		return
	}
	fmt.Fprintln(p.Out, NewFailureResult(title, err, tipsFromHint(hint)).SetWidth(p.Width).Render())
}

// Item prints one entry of a listing.
func (p *Printer) Item(name, note string) {
	if p.Plain {
		fmt.Fprintf(p.Out, "%s\t%s\n", name, note)
		return
	}
	fmt.Fprintln(p.Out, "  "+ListNameStyle.Render(name)+" "+ListNoteStyle.Render(note))
}

// Line prints a line of text as is.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// State renders a validator state in its color.
func (p *Printer) State(s validator.State) string {
	if p.Plain {
		return s.String()
	}
	switch s {
	case validator.Acceptable:
		return StateAcceptableStyle.Render(s.String())
	case validator.Intermediate:
		return StateIntermediateStyle.Render(s.String())
	default:
		return StateInvalidStyle.Render(s.String())
	}
}

func (p *Printer) details(details []Param) {
	for _, d := range details {
		fmt.Fprintf(p.Out, "%s: %s\n", strings.ToLower(d.Key), d.Value)
	}
}

// tipsFromHint extracts "  • tip" lines from a multi-line hint. A hint
// without bullet points becomes a single tip.
func tipsFromHint(hint string) []string {
	if hint == "" {
		return nil
	}
	var tips []string
	for _, line := range strings.Split(hint, "\n") {
		if tip, ok := strings.CutPrefix(strings.TrimSpace(line), "• "); ok {
			tips = append(tips, tip)
		}
	}
	if len(tips) == 0 {
		return []string{hint}
	}
	return tips
}
