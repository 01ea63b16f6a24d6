package input

import (
	"errors"
	"testing"
)

// TestParseEvent tests key name parsing
func TestParseEvent(t *testing.T) {
	tests := []struct {
		in      string
		want    Event
		wantErr error
	}{
		{"up", Event{Key: KeyUp}, nil},
		{"UP", Event{Key: KeyUp}, nil},
		{"pgdown", Event{Key: KeyPageDown}, nil},
		{"pageup", Event{Key: KeyPageUp}, nil},
		{"tab", Event{Key: KeyTab}, nil},
		{"shift+tab", Event{Key: KeyBacktab}, nil},
		{"enter", Event{Key: KeyEnter}, nil},
		{"shift+left", Event{Key: KeyLeft, Modifiers: ModShift}, nil},
		{"ctrl+c", Event{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl}, nil},
		{"a", Event{Key: KeyRune, Rune: 'a'}, nil},
		{"A", Event{Key: KeyRune, Rune: 'A'}, nil},
		{"+", Event{Key: KeyRune, Rune: '+'}, nil},
		{"°", Event{Key: KeyRune, Rune: '°'}, nil},
		{"space", Event{Key: KeyRune, Rune: ' '}, nil},
		{" ", Event{Key: KeyRune, Rune: ' '}, nil},
		{"", Event{}, ErrEmptyKey},
		{"banana", Event{}, ErrUnknownKey},
		{"hyper+x", Event{}, ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEvent(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseEvent(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEvent(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// TestEventStringRoundTrip tests that String output parses back
func TestEventStringRoundTrip(t *testing.T) {
	events := []Event{
		{Key: KeyUp},
		{Key: KeyBacktab},
		{Key: KeyLeft, Modifiers: ModShift},
		{Key: KeyRune, Rune: 'x', Modifiers: ModCtrl},
		{Key: KeyRune, Rune: ' '},
		{Key: KeyRune, Rune: '7'},
	}
	for _, ev := range events {
		got, err := ParseEvent(ev.String())
		if err != nil || got != ev {
			t.Errorf("ParseEvent(%q) = %+v, %v; want %+v", ev.String(), got, err, ev)
		}
	}
}

// TestIsChar tests printable character detection
func TestIsChar(t *testing.T) {
	if !RuneEvent('5').IsChar() {
		t.Error("'5' should be a character")
	}
	if (Event{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl}).IsChar() {
		t.Error("ctrl+c should not be a character")
	}
	if KeyEvent(KeyUp, ModNone).IsChar() {
		t.Error("up should not be a character")
	}
}

// TestParseScript tests key script parsing
func TestParseScript(t *testing.T) {
	events, err := ParseScript("up 54 enter shift+tab")
	if err != nil {
		t.Fatalf("ParseScript error = %v", err)
	}
	want := []Event{
		{Key: KeyUp},
		{Key: KeyRune, Rune: '5'},
		{Key: KeyRune, Rune: '4'},
		{Key: KeyEnter},
		{Key: KeyBacktab},
	}
	if len(events) != len(want) {
		t.Fatalf("ParseScript returned %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}

	if _, err := ParseScript("hyper+x"); err == nil {
		t.Error("ParseScript with unknown modifier should fail")
	}
}
