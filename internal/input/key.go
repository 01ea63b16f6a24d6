package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key identifies a keyboard key. Character keys use KeyRune with the
// character stored in Event.Rune.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyBacktab
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyEscape
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyTab:       "tab",
	KeyBacktab:   "shift+tab",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEscape:    "esc",
}

// keyAliases maps accepted spellings to keys.
var keyAliases = map[string]Key{
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pgup":      KeyPageUp,
	"pageup":    KeyPageUp,
	"pgdown":    KeyPageDown,
	"pagedown":  KeyPageDown,
	"tab":       KeyTab,
	"backtab":   KeyBacktab,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"esc":       KeyEscape,
	"escape":    KeyEscape,
}

// String returns the key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// Modifier is a bitmask of modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns the modifiers joined with "+", e.g. "ctrl+shift".
func (m Modifier) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// Event is a single key press.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// RuneEvent returns the event for typing r.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// KeyEvent returns the event for a special key.
func KeyEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsChar reports whether the event types a printable character.
func (e Event) IsChar() bool {
	return e.Key == KeyRune && unicode.IsPrint(e.Rune) &&
		!e.Modifiers.Has(ModCtrl) && !e.Modifiers.Has(ModAlt)
}

// String returns the event in the notation ParseEvent reads.
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' {
			name = "space"
		}
	}
	if e.Key == KeyBacktab {
		return name
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// Parse errors.
var (
	ErrEmptyKey   = errors.New("empty key")
	ErrUnknownKey = errors.New("unknown key")
)

// ParseEvent parses a key name such as "up", "shift+tab", "ctrl+c", "a" or
// "space". Names are case-insensitive, single characters are not.
func ParseEvent(s string) (Event, error) {
	if s == "" {
		return Event{}, ErrEmptyKey
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return RuneEvent(r), nil
	}

	var mods Modifier
	name := s
	for {
		head, rest, found := strings.Cut(name, "+")
		if !found || rest == "" {
			break
		}
		switch strings.ToLower(head) {
		case "shift":
			mods |= ModShift
		case "ctrl":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		default:
			return Event{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
		}
		name = rest
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Event{Key: KeyRune, Rune: r, Modifiers: mods}, nil
	}

	lower := strings.ToLower(name)
	if lower == "space" {
		return Event{Key: KeyRune, Rune: ' ', Modifiers: mods}, nil
	}
	k, ok := keyAliases[lower]
	if !ok {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	if k == KeyTab && mods.Has(ModShift) {
		return Event{Key: KeyBacktab, Modifiers: mods &^ ModShift}, nil
	}
	return Event{Key: k, Modifiers: mods}, nil
}

// ParseScript parses whitespace separated key names. Tokens that are not a
// key name are typed character by character.
func ParseScript(script string) ([]Event, error) {
	var events []Event
	for _, token := range strings.Fields(script) {
		ev, err := ParseEvent(token)
		if err == nil {
			events = append(events, ev)
			continue
		}
		if strings.Contains(token, "+") && !strings.HasPrefix(token, "+") {
			return nil, err
		}
		for _, r := range token {
			events = append(events, RuneEvent(r))
		}
	}
	return events, nil
}
