package spinbox

import (
	"strings"
	"unicode"

	"github.com/muurk/multispin/internal/input"
	"github.com/muurk/multispin/internal/numfmt"
	"github.com/muurk/multispin/internal/textfield"
)

// DefaultPageStep is the number of single steps taken by Page Up and Page
// Down.
const DefaultPageStep = 10

// SpinBox couples a Controller with its text field and dispatches key
// events the way a spin box widget does.
type SpinBox struct {
	field    *textfield.Field
	ctrl     *Controller
	pageStep int

	// collected gathers outcomes of field callbacks during one event.
	collected Outcome
}

// New returns an unfocused spin box with one default section.
func New(loc numfmt.Locale) *SpinBox {
	field := textfield.New()
	s := &SpinBox{
		field:    field,
		ctrl:     NewController(field, loc),
		pageStep: DefaultPageStep,
	}
	field.SetValidator(s.ctrl)
	field.OnTextChanged(func(text string) {
		s.collected = s.collected.Merge(s.ctrl.HandleTextChanged(text))
	})
	field.OnCursorPositionChanged(func(oldPos, newPos int) {
		s.collected = s.collected.Merge(s.ctrl.HandleCursorPositionChanged(oldPos, newPos))
	})
	return s
}

// Controller returns the editing controller.
func (s *SpinBox) Controller() *Controller {
	return s.ctrl
}

// Field returns the text field.
func (s *SpinBox) Field() *textfield.Field {
	return s.field
}

// Text returns the displayed text.
func (s *SpinBox) Text() string {
	return s.field.Text()
}

// PageStep returns the number of single steps per page key.
func (s *SpinBox) PageStep() int {
	return s.pageStep
}

// SetPageStep sets the number of single steps per page key. Values below 1
// are raised to 1.
func (s *SpinBox) SetPageStep(steps int) {
	s.pageStep = max(1, steps)
}

// SetReadOnly disables or enables editing on both the field and the
// controller.
func (s *SpinBox) SetReadOnly(readOnly bool) {
	s.field.SetReadOnly(readOnly)
	s.ctrl.SetReadOnly(readOnly)
}

// HasFocus reports whether the spin box has keyboard focus.
func (s *SpinBox) HasFocus() bool {
	return s.field.HasFocus()
}

// Focus gives the spin box keyboard focus.
func (s *SpinBox) Focus(reason FocusReason) Outcome {
	if s.field.HasFocus() {
		return Outcome{}
	}
	s.field.SetFocus(true)
	return s.ctrl.FocusIn(reason)
}

// Blur takes keyboard focus away from the spin box.
func (s *SpinBox) Blur(reason FocusReason) Outcome {
	if !s.field.HasFocus() {
		return Outcome{}
	}
	s.field.SetFocus(false)
	return s.ctrl.FocusOut(reason)
}

// MoveCursor places the caret as a mouse click would.
func (s *SpinBox) MoveCursor(pos int) Outcome {
	return s.collect(func() Outcome {
		s.field.SetCursorPosition(pos)
		return Outcome{Handled: true}
	})
}

// Type types text as a sequence of character keys.
func (s *SpinBox) Type(text string) Outcome {
	var out Outcome
	for _, r := range text {
		out = out.Merge(s.HandleKey(input.RuneEvent(r)))
	}
	return out
}

// HandleKey dispatches one key event. Keys the spin box does not use are
// reported as not handled.
func (s *SpinBox) HandleKey(ev input.Event) Outcome {
	if !s.field.HasFocus() {
		return Outcome{}
	}
	shift := ev.Modifiers.Has(input.ModShift)

	switch ev.Key {
	case input.KeyUp:
		return s.step(1)
	case input.KeyDown:
		return s.step(-1)
	case input.KeyPageUp:
		return s.step(s.pageStep)
	case input.KeyPageDown:
		return s.step(-s.pageStep)
	case input.KeyTab:
		return s.leaveIfNeeded(s.ctrl.FocusNext(), FocusTab)
	case input.KeyBacktab:
		return s.leaveIfNeeded(s.ctrl.FocusPrevious(), FocusBacktab)
	case input.KeyEnter:
		return s.ctrl.HandleReturn()
	case input.KeyLeft:
		return s.collect(func() Outcome { s.field.CursorLeft(shift); return Outcome{Handled: true} })
	case input.KeyRight:
		return s.collect(func() Outcome { s.field.CursorRight(shift); return Outcome{Handled: true} })
	case input.KeyHome:
		return s.collect(func() Outcome { s.field.Home(shift); return Outcome{Handled: true} })
	case input.KeyEnd:
		return s.collect(func() Outcome { s.field.End(shift); return Outcome{Handled: true} })
	case input.KeyBackspace:
		return s.collect(func() Outcome { return Outcome{Handled: s.field.Backspace()} })
	case input.KeyDelete:
		return s.collect(func() Outcome { return Outcome{Handled: s.field.Delete()} })
	case input.KeyRune:
		if !ev.IsChar() {
			return Outcome{}
		}
		if s.isSeparatorJump(ev.Rune) {
			return s.leaveIfNeeded(s.ctrl.FocusNext(), FocusTab)
		}
		return s.collect(func() Outcome {
			s.field.Insert(string(ev.Rune))
			return Outcome{Handled: true}
		})
	}
	return Outcome{}
}

// step steps when the direction is enabled, like arrow keys on a spin box.
func (s *SpinBox) step(steps int) Outcome {
	flags := s.ctrl.StepEnabled()
	if (steps > 0 && !flags.CanStepUp()) || (steps < 0 && !flags.CanStepDown()) {
		return Outcome{Handled: true}
	}
	return s.ctrl.StepBy(steps)
}

// leaveIfNeeded moves focus out of the spin box when navigation ran past the
// first or last section.
func (s *SpinBox) leaveIfNeeded(out Outcome, reason FocusReason) Outcome {
	if !out.FocusLeft {
		return out
	}
	return out.Merge(s.Blur(reason))
}

// isSeparatorJump reports whether typing r at the caret should advance to
// the next section: the caret sits right after the current value and r is
// the first visible character of the literal text leading to the next
// section.
func (s *SpinBox) isSeparatorJump(r rune) bool {
	ctrl := s.ctrl
	loc := ctrl.Locale()
	if loc.IsDigit(r) || r == loc.Decimal || loc.IsMinus(r) || r == '+' || unicode.IsSpace(r) {
		return false
	}
	if s.field.HasSelectedText() || s.field.CursorPosition() != ctrl.Split().ValueEnd() {
		return false
	}
	i := ctrl.CurrentSectionIndex()
	configs := ctrl.SectionConfigurations()
	if i+1 >= len(configs) {
		return false
	}
	separator := strings.TrimSpace(configs[i].Suffix() + configs[i+1].Prefix())
	return separator != "" && []rune(separator)[0] == r
}

// collect runs fn and merges the outcomes of the field callbacks it caused.
func (s *SpinBox) collect(fn func() Outcome) Outcome {
	s.collected = Outcome{}
	out := fn()
	out = out.Merge(s.collected)
	s.collected = Outcome{}
	return out
}
