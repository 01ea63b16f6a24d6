package spinbox

import (
	"slices"
	"testing"

	"github.com/muurk/multispin/internal/input"
	"github.com/muurk/multispin/internal/numfmt"
	"github.com/muurk/multispin/internal/section"
)

// TestKeyboardTrackingEnabled tests that every parsed keystroke commits
func TestKeyboardTrackingEnabled(t *testing.T) {
	box := New(numfmt.C)
	c := box.Controller()
	var got []float64
	c.OnValuesChanged(func(values []float64) { got = append(got, values[0]) })

	c.SetValues([]float64{8})
	box.Focus(FocusOther)
	box.HandleKey(key(input.KeyUp))
	box.Type("54")

	if !slices.Equal(c.Values(), []float64{54}) {
		t.Errorf("Values() = %v, want [54]", c.Values())
	}
	if want := []float64{8, 9, 5, 54}; !slices.Equal(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}
}

// TestKeyboardTrackingDisabled tests deferred commits
func TestKeyboardTrackingDisabled(t *testing.T) {
	box := New(numfmt.C)
	c := box.Controller()
	c.SetKeyboardTracking(false)
	var got []float64
	finished := 0
	c.OnValuesChanged(func(values []float64) { got = append(got, values[0]) })
	c.OnEditingFinished(func() { finished++ })

	c.SetValues([]float64{8})
	box.Focus(FocusOther)

	box.HandleKey(key(input.KeyUp))
	box.Type("54")
	if !slices.Equal(c.Values(), []float64{9}) {
		t.Errorf("before Enter: Values() = %v, want [9]", c.Values())
	}
	if finished != 0 {
		t.Errorf("editing finished %d times before Enter", finished)
	}

	box.HandleKey(key(input.KeyEnter))
	if !slices.Equal(c.Values(), []float64{54}) {
		t.Errorf("after Enter: Values() = %v, want [54]", c.Values())
	}
	if finished != 1 {
		t.Errorf("editing finished %d times after Enter, want 1", finished)
	}

	box.Type("32")
	c.StepUp()
	if finished != 1 {
		t.Errorf("editing finished %d times after stepping, want 1", finished)
	}

	box.Blur(FocusOther)
	if finished != 2 {
		t.Errorf("editing finished %d times after focus loss, want 2", finished)
	}
	if want := []float64{8, 9, 54, 33}; !slices.Equal(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}
}

// TestFocusOutCommitsWithoutKeyboardTracking tests that losing focus commits
// typed text that was never confirmed
func TestFocusOutCommitsWithoutKeyboardTracking(t *testing.T) {
	box := New(numfmt.C)
	c := box.Controller()
	c.SetKeyboardTracking(false)
	c.SetValues([]float64{8})

	var got [][]float64
	c.OnValuesChanged(func(values []float64) { got = append(got, slices.Clone(values)) })

	box.Focus(FocusOther)
	box.Type("54")
	if len(got) != 0 {
		t.Fatalf("notifications before focus loss = %v, want none", got)
	}
	if !slices.Equal(c.Values(), []float64{8}) {
		t.Errorf("before focus loss: Values() = %v, want [8]", c.Values())
	}

	box.Blur(FocusMouse)
	if len(got) != 1 || !slices.Equal(got[0], []float64{54}) {
		t.Errorf("notifications = %v, want [[54]]", got)
	}
	if !slices.Equal(c.Values(), []float64{54}) {
		t.Errorf("after focus loss: Values() = %v, want [54]", c.Values())
	}
	if box.Text() != "54.00" {
		t.Errorf("Text() = %q, want 54.00", box.Text())
	}
}

// TestTabWithoutKeyboardTracking tests commits on section navigation
func TestTabWithoutKeyboardTracking(t *testing.T) {
	box, n := newExampleSpinBox(t)
	c := box.Controller()
	c.SetKeyboardTracking(false)
	box.Focus(FocusOther)

	steps := []struct {
		name         string
		ev           input.Event
		wantFirst    float64
		wantNotified int
		wantFinished int
		wantFocus    bool
	}{
		{"up", key(input.KeyUp), 1, 1, 0, true},
		{"type 2", input.RuneEvent('2'), 1, 1, 0, true},
		{"tab to second section", key(input.KeyTab), 2, 2, 0, true},
		{"tab to third section", key(input.KeyTab), 2, 2, 0, true},
		{"tab out", key(input.KeyTab), 2, 2, 1, false},
	}

	for _, step := range steps {
		box.HandleKey(step.ev)
		if got := c.Values()[0]; got != step.wantFirst {
			t.Errorf("%s: first value = %v, want %v", step.name, got, step.wantFirst)
		}
		if len(n.values) != step.wantNotified {
			t.Errorf("%s: %d notifications, want %d", step.name, len(n.values), step.wantNotified)
		}
		if n.finished != step.wantFinished {
			t.Errorf("%s: editing finished %d times, want %d", step.name, n.finished, step.wantFinished)
		}
		if box.HasFocus() != step.wantFocus {
			t.Errorf("%s: HasFocus() = %v, want %v", step.name, box.HasFocus(), step.wantFocus)
		}
	}
}

// TestFocusNextAndPrevious tests Tab and Shift+Tab rules around the caret
func TestFocusNextAndPrevious(t *testing.T) {
	box, _ := newExampleSpinBox(t)
	c := box.Controller()
	box.Focus(FocusTab)

	out := box.HandleKey(key(input.KeyTab))
	if !out.SectionChanged || c.CurrentSectionIndex() != 1 {
		t.Fatalf("Tab: section %d, outcome %+v", c.CurrentSectionIndex(), out)
	}

	// Caret in the prefix of section 1: Tab reselects section 1.
	box.Field().SetCursorPosition(3)
	if c.CurrentSectionIndex() != 1 {
		t.Fatalf("caret in prefix switched to section %d", c.CurrentSectionIndex())
	}
	out = c.FocusNext()
	if out.SectionChanged || c.CurrentSectionIndex() != 1 {
		t.Errorf("Tab from prefix: section %d, outcome %+v", c.CurrentSectionIndex(), out)
	}

	// Caret behind the value: Shift+Tab reselects the current section.
	c.SetCurrentSectionIndex(1)
	box.Field().SetCursorPosition(c.Split().ValueEnd() + 1)
	if c.CurrentSectionIndex() != 1 {
		t.Fatalf("caret in suffix switched to section %d", c.CurrentSectionIndex())
	}
	out = c.FocusPrevious()
	if out.SectionChanged || c.CurrentSectionIndex() != 1 {
		t.Errorf("Shift+Tab from suffix: section %d, outcome %+v", c.CurrentSectionIndex(), out)
	}

	box.HandleKey(key(input.KeyBacktab))
	if c.CurrentSectionIndex() != 0 {
		t.Errorf("Shift+Tab: section %d, want 0", c.CurrentSectionIndex())
	}

	out = box.HandleKey(key(input.KeyBacktab))
	if !out.FocusLeft || box.HasFocus() {
		t.Errorf("Shift+Tab from first section: outcome %+v, focus %v", out, box.HasFocus())
	}
}

// TestCorrectToPreviousValue tests that out of range input is not stored
func TestCorrectToPreviousValue(t *testing.T) {
	tests := []struct {
		typed string
		want  float64
	}{
		{"7", 4},
		{"2", 4},
		{"xyz", 4},
		{"5", 5},
	}

	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			box := newBoundedSpinBox(CorrectToPreviousValue)
			box.Type(tt.typed)
			box.HandleKey(key(input.KeyEnter))
			if got := box.Controller().Values()[0]; got != tt.want {
				t.Errorf("typing %q -> %v, want %v", tt.typed, got, tt.want)
			}
			if box.Text() != numfmt.Format(tt.want, 0, false, numfmt.C) {
				t.Errorf("text after Enter = %q", box.Text())
			}
		})
	}
}

// TestCorrectToNearestValue tests that out of range input is clamped
func TestCorrectToNearestValue(t *testing.T) {
	tests := []struct {
		typed string
		want  float64
	}{
		{"7", 6},
		{"2", 3},
		{"xyz", 4},
		{"5", 5},
	}

	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			box := newBoundedSpinBox(CorrectToNearestValue)
			box.Type(tt.typed)
			box.HandleKey(key(input.KeyEnter))
			if got := box.Controller().Values()[0]; got != tt.want {
				t.Errorf("typing %q -> %v, want %v", tt.typed, got, tt.want)
			}
		})
	}
}

// newBoundedSpinBox returns a focused spin box for [3, 6] holding 4 with the
// value selected.
func newBoundedSpinBox(mode CorrectionMode) *SpinBox {
	box := New(numfmt.C)
	c := box.Controller()
	cfg := section.NewConfig()
	cfg.SetDecimals(0)
	cfg.SetRange(3, 6)
	c.SetSectionConfigurations([]section.Config{cfg})
	c.SetValues([]float64{4})
	c.SetCorrectionMode(mode)
	box.Focus(FocusTab)
	return box
}

// TestDecimalSeparatorJump tests typing the decimal separator near an
// existing one
func TestDecimalSeparatorJump(t *testing.T) {
	tests := []struct {
		name      string
		caret     int
		wantCaret int
	}{
		{"inside integer part", 1, 1},
		{"in front of separator", 2, 3},
		{"behind separator", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := New(german)
			box.Controller().SetValues([]float64{12.34})
			box.Focus(FocusOther)
			box.MoveCursor(tt.caret)

			var changed int
			box.Controller().OnValuesChanged(func([]float64) { changed++ })
			box.Type(",")

			if box.Text() != "12,34" {
				t.Errorf("Text() = %q, want %q", box.Text(), "12,34")
			}
			if box.Field().CursorPosition() != tt.wantCaret {
				t.Errorf("caret = %d, want %d", box.Field().CursorPosition(), tt.wantCaret)
			}
			if changed != 0 {
				t.Errorf("%d notifications, want none", changed)
			}
		})
	}
}

// TestSeparatorAdvancesSection tests typing the literal text between
// sections at the end of a value
func TestSeparatorAdvancesSection(t *testing.T) {
	configs := make([]section.Config, 3)
	for i := range configs {
		c := section.NewConfig()
		c.SetDecimals(0)
		c.SetRange(0, 59)
		c.SetWrapping(true)
		c.SetFormatString("%1:")
		configs[i] = c
	}
	configs[2].SetFormatString("%1")

	box := New(numfmt.C)
	c := box.Controller()
	c.SetSectionConfigurations(configs)
	box.Focus(FocusTab)

	box.Type("12:34:56")
	if box.Text() != "12:34:56" {
		t.Errorf("Text() = %q, want %q", box.Text(), "12:34:56")
	}
	if !slices.Equal(c.Values(), []float64{12, 34, 56}) {
		t.Errorf("Values() = %v, want [12 34 56]", c.Values())
	}
	if c.CurrentSectionIndex() != 2 {
		t.Errorf("section = %d, want 2", c.CurrentSectionIndex())
	}
}

// TestPageKeys tests page stepping
func TestPageKeys(t *testing.T) {
	box, _ := newExampleSpinBox(t)
	c := box.Controller()
	box.Focus(FocusTab)

	box.HandleKey(key(input.KeyPageUp))
	if c.Values()[0] != 10 {
		t.Errorf("after PageUp: %v, want 10", c.Values()[0])
	}
	box.SetPageStep(3)
	box.HandleKey(key(input.KeyPageDown))
	if c.Values()[0] != 7 {
		t.Errorf("after PageDown: %v, want 7", c.Values()[0])
	}
	box.SetPageStep(0)
	if box.PageStep() != 1 {
		t.Errorf("PageStep() = %d, want 1", box.PageStep())
	}
}

// TestArrowKeysRespectStepEnabled tests that disabled directions do nothing
func TestArrowKeysRespectStepEnabled(t *testing.T) {
	box, n := newExampleSpinBox(t)
	box.Focus(FocusTab)
	out := box.HandleKey(key(input.KeyDown))
	if !out.Handled || out.ValuesChanged || len(n.values) != 0 {
		t.Errorf("Down at minimum: outcome %+v, %d notifications", out, len(n.values))
	}
}

// TestEnterRestoresFormatting tests that Enter redisplays the pending value
func TestEnterRestoresFormatting(t *testing.T) {
	box := New(numfmt.C)
	box.Focus(FocusTab)
	box.Type("5")
	if box.Text() != "5" {
		t.Fatalf("Text() = %q, want %q", box.Text(), "5")
	}
	out := box.HandleKey(key(input.KeyEnter))
	if box.Text() != "5.00" {
		t.Errorf("Text() after Enter = %q, want %q", box.Text(), "5.00")
	}
	if !out.EditingFinished {
		t.Error("Enter did not finish editing")
	}
	start, length := box.Field().Selection()
	if start != 0 || length != 4 {
		t.Errorf("selection after Enter = %d+%d, want 0+4", start, length)
	}
}

// TestBackspaceEditsValue tests deleting digits of the current value
func TestBackspaceEditsValue(t *testing.T) {
	box, _ := newExampleSpinBox(t)
	c := box.Controller()
	c.SetValues([]float64{123, 0, 0})
	box.Focus(FocusOther)
	box.MoveCursor(3)

	box.HandleKey(key(input.KeyBackspace))
	if box.Text() != "12°  0%  0" || c.Values()[0] != 12 {
		t.Errorf("after Backspace: %q %v", box.Text(), c.Values())
	}

	// The suffix is protected.
	box.HandleKey(key(input.KeyDelete))
	if box.Text() != "12°  0%  0" {
		t.Errorf("Delete of suffix changed text to %q", box.Text())
	}
}

// TestKeysIgnoredWithoutFocus tests that an unfocused spin box ignores keys
func TestKeysIgnoredWithoutFocus(t *testing.T) {
	box, _ := newExampleSpinBox(t)
	if out := box.HandleKey(key(input.KeyUp)); out.Handled {
		t.Error("unfocused spin box handled a key")
	}
}
