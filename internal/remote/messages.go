package remote

// Client message types
const (
	TypeKey     = "key"     // deliver one key, e.g. "shift+tab"
	TypeText    = "text"    // type a string character by character
	TypeCursor  = "cursor"  // move the caret like a mouse click
	TypeValues  = "values"  // replace all values
	TypeStep    = "step"    // step the current section
	TypeFocus   = "focus"   // focus in or out
	TypeClear   = "clear"   // clear the current section's text
	TypeSection = "section" // select a section
)

// Server message types
const (
	TypeState         = "state"
	TypeValuesChanged = "values_changed"
	TypeFinished      = "editing_finished"
	TypeError         = "error"
)

// ClientMessage is a command sent by the client. Which fields are used
// depends on Type.
type ClientMessage struct {
	Type     string    `json:"type"`
	Key      string    `json:"key,omitempty"`
	Text     string    `json:"text,omitempty"`
	Position int       `json:"position,omitempty"`
	Values   []float64 `json:"values,omitempty"`
	Steps    int       `json:"steps,omitempty"`
	Focus    string    `json:"focus,omitempty"`  // "in" or "out"
	Reason   string    `json:"reason,omitempty"` // focus reason, e.g. "tab"
	Section  int       `json:"section,omitempty"`
}

// ServerMessage is sent to the client after every command and for every
// notification raised while handling it.
type ServerMessage struct {
	Type   string    `json:"type"`
	State  *State    `json:"state,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Text   string    `json:"text,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// State is a snapshot of a session's spin box.
type State struct {
	Preset          string    `json:"preset"`
	Text            string    `json:"text"`
	Values          []float64 `json:"values"`
	Pending         []float64 `json:"pending"`
	Current         int       `json:"current"`
	Sections        int       `json:"sections"`
	Cursor          int       `json:"cursor"`
	SelectionStart  int       `json:"selection_start"`
	SelectionLength int       `json:"selection_length"`
	Focused         bool      `json:"focused"`
	CanStepUp       bool      `json:"can_step_up"`
	CanStepDown     bool      `json:"can_step_down"`
	Tracking        bool      `json:"keyboard_tracking"`
}
