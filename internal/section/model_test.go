package section

import (
	"slices"
	"testing"
)

func exampleConfigurations() []Config {
	formats := []string{"%1°", "  %1%", "  %1"}
	maxima := []float64{360, 100, 255}
	configs := make([]Config, len(formats))
	for i := range formats {
		c := NewConfig()
		c.SetDecimals(0)
		c.SetMinimum(0)
		c.SetMaximum(maxima[i])
		c.SetFormatString(formats[i])
		configs[i] = c
	}
	return configs
}

// TestNewModel tests the initial model state
func TestNewModel(t *testing.T) {
	m := NewModel()
	if m.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", m.Count())
	}
	if !slices.Equal(m.Pending(), []float64{0}) || !slices.Equal(m.Committed(), []float64{0}) {
		t.Errorf("values = %v/%v, want [0]/[0]", m.Pending(), m.Committed())
	}
	if m.Config(0).Maximum() != 99.99 {
		t.Errorf("default section maximum = %v, want 99.99", m.Config(0).Maximum())
	}
}

// TestSetConfigurationsEmptyIsIgnored tests that an empty list keeps the old
// configuration
func TestSetConfigurationsEmptyIsIgnored(t *testing.T) {
	m := NewModel()
	m.SetConfigurations(exampleConfigurations())
	if m.SetConfigurations(nil) {
		t.Error("SetConfigurations(nil) = true, want false")
	}
	if m.Count() != 3 {
		t.Errorf("Count() = %d, want 3", m.Count())
	}
}

// TestSetConfigurationsResizesValues tests that value lists follow the
// section count
func TestSetConfigurationsResizesValues(t *testing.T) {
	m := NewModel()
	m.SetConfigurations(exampleConfigurations())
	m.SetPendingValues([]float64{1, 2, 3})
	m.Commit()

	m.SetConfigurations(exampleConfigurations()[:2])
	if !slices.Equal(m.Pending(), []float64{1, 2}) {
		t.Errorf("pending after shrink = %v, want [1 2]", m.Pending())
	}
	if !slices.Equal(m.Committed(), []float64{1, 2}) {
		t.Errorf("committed after shrink = %v, want [1 2]", m.Committed())
	}

	m.SetConfigurations(exampleConfigurations())
	if !slices.Equal(m.Pending(), []float64{1, 2, 0}) {
		t.Errorf("pending after grow = %v, want [1 2 0]", m.Pending())
	}
}

// TestSetConfigurationsReclamps tests that values follow a narrower range
func TestSetConfigurationsReclamps(t *testing.T) {
	m := NewModel()
	m.SetConfigurations(exampleConfigurations())
	m.SetPendingValues([]float64{300, 90, 250})

	narrow := exampleConfigurations()
	narrow[1].SetMaximum(50)
	m.SetConfigurations(narrow)
	if got := m.PendingValue(1); got != 50 {
		t.Errorf("pending[1] = %v, want 50", got)
	}
}

// TestSetPendingValuesSizes tests padding and truncation
func TestSetPendingValuesSizes(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"exact", []float64{1, 2, 3}, []float64{1, 2, 3}},
		{"extra value ignored", []float64{1, 2, 3, 4}, []float64{1, 2, 3}},
		{"missing value is zero", []float64{1, 2}, []float64{1, 2, 0}},
		{"empty", nil, []float64{0, 0, 0}},
		{"clamped", []float64{-1, 101, 256}, []float64{0, 100, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			m.SetConfigurations(exampleConfigurations())
			m.SetPendingValues(tt.in)
			if got := m.Pending(); !slices.Equal(got, tt.want) {
				t.Errorf("Pending() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCommit tests that commit only reports real changes
func TestCommit(t *testing.T) {
	m := NewModel()
	m.SetConfigurations(exampleConfigurations())

	if m.Commit() {
		t.Error("Commit() without changes = true, want false")
	}

	m.SetPendingValue(1, 42)
	if !m.HasUncommitted() {
		t.Error("HasUncommitted() = false after a pending change")
	}
	if !m.Commit() {
		t.Error("first Commit() = false, want true")
	}
	if m.Commit() {
		t.Error("second Commit() = true, want false")
	}
	if !slices.Equal(m.Committed(), []float64{0, 42, 0}) {
		t.Errorf("Committed() = %v, want [0 42 0]", m.Committed())
	}
}

// TestAccessorsReturnCopies tests that callers cannot mutate model state
func TestAccessorsReturnCopies(t *testing.T) {
	m := NewModel()
	m.SetConfigurations(exampleConfigurations())

	p := m.Pending()
	p[0] = 99
	c := m.Configurations()
	c[0].SetMaximum(1)

	if m.PendingValue(0) != 0 {
		t.Error("mutating Pending() result changed the model")
	}
	if m.Config(0).Maximum() != 360 {
		t.Error("mutating Configurations() result changed the model")
	}
}
