package section

import "slices"

// DefaultValue is used for sections that have no value yet.
const DefaultValue = 0.0

// Model is the ordered list of section configurations with the committed
// and pending value of each section.
type Model struct {
	configs   []Config
	committed []float64
	pending   []float64
}

// NewModel returns a model with one default section holding DefaultValue.
func NewModel() *Model {
	return &Model{
		configs:   []Config{NewConfig()},
		committed: []float64{DefaultValue},
		pending:   []float64{DefaultValue},
	}
}

// Count returns the number of sections. It is always at least 1.
func (m *Model) Count() int {
	return len(m.configs)
}

// Config returns the configuration of section i.
func (m *Model) Config(i int) Config {
	return m.configs[i]
}

// Configurations returns a copy of all section configurations.
func (m *Model) Configurations() []Config {
	return slices.Clone(m.configs)
}

// SetConfigurations replaces all section configurations. An empty list is
// ignored and false is returned. Otherwise both value lists are resized to
// the new section count and normalized against the new configurations.
func (m *Model) SetConfigurations(configs []Config) bool {
	if len(configs) == 0 {
		return false
	}
	m.configs = slices.Clone(configs)
	m.committed = m.normalized(m.committed)
	m.pending = m.normalized(m.pending)
	return true
}

// Pending returns a copy of the pending values.
func (m *Model) Pending() []float64 {
	return slices.Clone(m.pending)
}

// PendingValue returns the pending value of section i.
func (m *Model) PendingValue(i int) float64 {
	return m.pending[i]
}

// Committed returns a copy of the committed values.
func (m *Model) Committed() []float64 {
	return slices.Clone(m.committed)
}

// SetPendingValues replaces the pending values. Missing values are padded
// with DefaultValue, extra values are dropped and every value is normalized
// against its section.
func (m *Model) SetPendingValues(values []float64) {
	m.pending = m.normalized(values)
}

// SetPendingValue replaces the pending value of section i only.
func (m *Model) SetPendingValue(i int, v float64) {
	values := m.Pending()
	values[i] = v
	m.SetPendingValues(values)
}

// Commit copies the pending values to the committed values if they differ
// and reports whether anything changed.
func (m *Model) Commit() bool {
	if slices.Equal(m.pending, m.committed) {
		return false
	}
	m.committed = slices.Clone(m.pending)
	return true
}

// HasUncommitted reports whether pending and committed values differ.
func (m *Model) HasUncommitted() bool {
	return !slices.Equal(m.pending, m.committed)
}

// normalized returns values resized to the section count and normalized.
func (m *Model) normalized(values []float64) []float64 {
	out := make([]float64, len(m.configs))
	for i, cfg := range m.configs {
		v := DefaultValue
		if i < len(values) {
			v = values[i]
		}
		out[i] = cfg.Normalize(v)
	}
	return out
}
