package remote

import (
	"encoding/json"
	"fmt"

	"github.com/muurk/multispin/internal/config"
	"github.com/muurk/multispin/internal/input"
	"github.com/muurk/multispin/internal/numfmt"
	"github.com/muurk/multispin/internal/spinbox"
)

// Session owns the headless spin box of one client connection.
type Session struct {
	preset string
	box    *spinbox.SpinBox

	// outbox collects notifications raised while a message is handled.
	outbox []ServerMessage
}

// NewSession creates a focused spin box configured by preset and prefs.
func NewSession(name string, preset *config.Preset, prefs *config.Preferences) (*Session, error) {
	box := spinbox.New(numfmt.C)
	if prefs != nil {
		if err := prefs.Apply(box); err != nil {
			return nil, err
		}
	}
	if err := preset.Apply(box.Controller()); err != nil {
		return nil, err
	}

	s := &Session{preset: name, box: box}
	c := box.Controller()
	c.OnValuesChanged(func(values []float64) {
		s.outbox = append(s.outbox, ServerMessage{
			Type:   TypeValuesChanged,
			Values: values,
			Text:   box.Text(),
		})
	})
	c.OnEditingFinished(func() {
		s.outbox = append(s.outbox, ServerMessage{Type: TypeFinished})
	})

	box.Focus(spinbox.FocusOther)
	return s, nil
}

// HandleRaw decodes a JSON message and handles it.
func (s *Session) HandleRaw(data []byte) []ServerMessage {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return []ServerMessage{errorMessage(fmt.Errorf("malformed message: %w", err)), s.stateMessage()}
	}
	return s.Handle(msg)
}

// Handle applies one client message and returns the notifications it raised
// followed by the resulting state. Errors are reported as messages; the
// session stays usable.
func (s *Session) Handle(msg ClientMessage) []ServerMessage {
	s.outbox = nil
	if err := s.apply(msg); err != nil {
		s.outbox = append(s.outbox, errorMessage(err))
	}
	out := append(s.outbox, s.stateMessage())
	s.outbox = nil
	return out
}

func (s *Session) apply(msg ClientMessage) error {
	c := s.box.Controller()

	switch msg.Type {
	case TypeKey:
		ev, err := input.ParseEvent(msg.Key)
		if err != nil {
			return err
		}
		s.box.HandleKey(ev)

	case TypeText:
		s.box.Type(msg.Text)

	case TypeCursor:
		s.box.MoveCursor(msg.Position)

	case TypeValues:
		if len(msg.Values) == 0 {
			return fmt.Errorf("values message without values")
		}
		c.SetValues(msg.Values)

	case TypeStep:
		steps := msg.Steps
		if steps == 0 {
			steps = 1
		}
		c.StepBy(steps)

	case TypeFocus:
		reason := spinbox.ParseFocusReason(msg.Reason)
		switch msg.Focus {
		case "in":
			s.box.Focus(reason)
		case "out":
			s.box.Blur(reason)
		default:
			return fmt.Errorf("focus must be \"in\" or \"out\", got %q", msg.Focus)
		}

	case TypeClear:
		c.Clear()

	case TypeSection:
		if msg.Section < 0 || msg.Section >= c.SectionCount() {
			return fmt.Errorf("section %d out of range [0, %d)", msg.Section, c.SectionCount())
		}
		c.SetCurrentSectionIndex(msg.Section)

	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}

// State returns a snapshot of the spin box.
func (s *Session) State() *State {
	c := s.box.Controller()
	f := s.box.Field()
	start, length := f.Selection()
	flags := c.StepEnabled()
	return &State{
		Preset:          s.preset,
		Text:            f.Text(),
		Values:          c.Values(),
		Pending:         c.PendingValues(),
		Current:         c.CurrentSectionIndex(),
		Sections:        c.SectionCount(),
		Cursor:          f.CursorPosition(),
		SelectionStart:  start,
		SelectionLength: length,
		Focused:         f.HasFocus(),
		CanStepUp:       flags.CanStepUp(),
		CanStepDown:     flags.CanStepDown(),
		Tracking:        c.KeyboardTracking(),
	}
}

func (s *Session) stateMessage() ServerMessage {
	return ServerMessage{Type: TypeState, State: s.State()}
}

func errorMessage(err error) ServerMessage {
	return ServerMessage{Type: TypeError, Error: err.Error()}
}
