package spinbox

import "fmt"

// CorrectionMode decides what happens to typed values outside the range.
type CorrectionMode int

const (
	// CorrectToPreviousValue keeps the last valid value while out of range
	// text is displayed; fixing up restores it.
	CorrectToPreviousValue CorrectionMode = iota
	// CorrectToNearestValue clamps or wraps out of range input right away.
	CorrectToNearestValue
)

// String returns the mode name used in configuration files.
func (m CorrectionMode) String() string {
	switch m {
	case CorrectToPreviousValue:
		return "previous"
	case CorrectToNearestValue:
		return "nearest"
	default:
		return fmt.Sprintf("CorrectionMode(%d)", int(m))
	}
}

// ParseCorrectionMode parses "previous" or "nearest".
func ParseCorrectionMode(s string) (CorrectionMode, error) {
	switch s {
	case "previous", "":
		return CorrectToPreviousValue, nil
	case "nearest":
		return CorrectToNearestValue, nil
	default:
		return CorrectToPreviousValue, fmt.Errorf("unknown correction mode %q", s)
	}
}

// FocusReason tells why the spin box gained or lost focus.
type FocusReason int

const (
	FocusOther FocusReason = iota
	FocusTab
	FocusBacktab
	FocusShortcut
	FocusMouse
)

// String returns the reason name.
func (r FocusReason) String() string {
	switch r {
	case FocusOther:
		return "other"
	case FocusTab:
		return "tab"
	case FocusBacktab:
		return "backtab"
	case FocusShortcut:
		return "shortcut"
	case FocusMouse:
		return "mouse"
	default:
		return fmt.Sprintf("FocusReason(%d)", int(r))
	}
}

// ParseFocusReason parses a reason name. Unknown names yield FocusOther.
func ParseFocusReason(s string) FocusReason {
	switch s {
	case "tab":
		return FocusTab
	case "backtab":
		return FocusBacktab
	case "shortcut":
		return FocusShortcut
	case "mouse":
		return FocusMouse
	default:
		return FocusOther
	}
}

// StepFlags tells which step directions are available.
type StepFlags uint8

const (
	StepNone        StepFlags = 0
	StepUpEnabled   StepFlags = 1 << 0
	StepDownEnabled StepFlags = 1 << 1
)

// CanStepUp reports whether stepping up is enabled.
func (f StepFlags) CanStepUp() bool { return f&StepUpEnabled != 0 }

// CanStepDown reports whether stepping down is enabled.
func (f StepFlags) CanStepDown() bool { return f&StepDownEnabled != 0 }

// Outcome describes the effect of a transition.
type Outcome struct {
	// Handled is set when the event was consumed.
	Handled bool
	// SectionChanged is set when the current section index changed.
	SectionChanged bool
	// ValuesChanged is set when committed values changed and observers
	// were notified.
	ValuesChanged bool
	// FocusLeft is set when navigation moved past the first or last
	// section and focus should go to the surrounding widget.
	FocusLeft bool
	// EditingFinished is set on Enter and when focus was lost.
	EditingFinished bool
}

// Merge combines two outcomes.
func (o Outcome) Merge(other Outcome) Outcome {
	return Outcome{
		Handled:         o.Handled || other.Handled,
		SectionChanged:  o.SectionChanged || other.SectionChanged,
		ValuesChanged:   o.ValuesChanged || other.ValuesChanged,
		FocusLeft:       o.FocusLeft || other.FocusLeft,
		EditingFinished: o.EditingFinished || other.EditingFinished,
	}
}
