package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/muurk/multispin/internal/numfmt"
	"github.com/muurk/multispin/internal/section"
	"github.com/muurk/multispin/internal/spinbox"
)

// Registry represents the entire user configuration file.
// This stores application preferences and user-defined presets.
type Registry struct {
	Version     int                `yaml:"version"`
	Preferences *Preferences       `yaml:"preferences,omitempty"`
	Presets     map[string]*Preset `yaml:"presets,omitempty"` // Keyed by preset name
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	Locale           string `yaml:"locale,omitempty"`            // BCP 47 tag or POSIX locale name
	KeyboardTracking *bool  `yaml:"keyboard_tracking,omitempty"` // Commit on every keystroke (default true)
	CorrectionMode   string `yaml:"correction_mode,omitempty"`   // "previous" or "nearest"
	PageStep         int    `yaml:"page_step,omitempty"`         // Single steps per Page Up/Down
	DefaultPreset    string `yaml:"default_preset,omitempty"`    // Preset used when none is named
}

// Preset is a named list of sections with optional initial values.
type Preset struct {
	Description string        `yaml:"description,omitempty"`
	Sections    []SectionSpec `yaml:"sections"`
	Values      []float64     `yaml:"values,omitempty"`
}

// SectionSpec is the YAML form of one section configuration.
// Omitted decimals and single_step fall back to the section defaults.
type SectionSpec struct {
	Format         string   `yaml:"format,omitempty"`
	Minimum        float64  `yaml:"minimum"`
	Maximum        float64  `yaml:"maximum"`
	Decimals       *int     `yaml:"decimals,omitempty"`
	Wrapping       bool     `yaml:"wrapping,omitempty"`
	SingleStep     *float64 `yaml:"single_step,omitempty"`
	GroupSeparator bool     `yaml:"group_separator,omitempty"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Preferences: defaultPreferences(),
		Presets:     make(map[string]*Preset),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		CorrectionMode: spinbox.CorrectToPreviousValue.String(),
		PageStep:       spinbox.DefaultPageStep,
		DefaultPreset:  "default",
	}
}

// Preset looks up a preset by name. User presets take precedence over
// built-in presets of the same name.
func (r *Registry) Preset(name string) (*Preset, error) {
	if p, ok := r.Presets[name]; ok && p != nil {
		return p, nil
	}
	if p, ok := builtinPresets[name]; ok {
		return p, nil
	}
	return nil, NewNotFoundError(name)
}

// DefaultPreset returns the preset named in the preferences, or the
// built-in default preset.
func (r *Registry) DefaultPreset() (*Preset, error) {
	return r.Preset(r.DefaultPresetName())
}

// DefaultPresetName returns the preset name used when none is given.
func (r *Registry) DefaultPresetName() string {
	if r.Preferences != nil && r.Preferences.DefaultPreset != "" {
		return r.Preferences.DefaultPreset
	}
	return "default"
}

// PresetNames returns the names of all built-in and user presets, sorted.
func (r *Registry) PresetNames() []string {
	names := make([]string, 0, len(builtinPresets)+len(r.Presets))
	for name := range builtinPresets {
		names = append(names, name)
	}
	for name := range r.Presets {
		if _, ok := builtinPresets[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// IsBuiltin reports whether name refers to a built-in preset that the user
// has not overridden.
func (r *Registry) IsBuiltin(name string) bool {
	_, user := r.Presets[name]
	_, builtin := builtinPresets[name]
	return builtin && !user
}

// SetPreset adds or replaces a user preset after validating it.
func (r *Registry) SetPreset(name string, p *Preset) error {
	if problems := p.Validate(); len(problems) > 0 {
		return NewValidationError(fmt.Sprintf("preset %q is invalid", name), problems)
	}
	if r.Presets == nil {
		r.Presets = make(map[string]*Preset)
	}
	r.Presets[name] = p
	return nil
}

// Validate checks the preset and returns every problem found. A format
// string without exactly one placeholder is not a problem; such a section is
// displayed without prefix and suffix.
func (p *Preset) Validate() []error {
	var problems []error
	if len(p.Sections) == 0 {
		problems = append(problems, fmt.Errorf("no sections defined"))
	}
	for i, s := range p.Sections {
		if s.Minimum > s.Maximum {
			problems = append(problems, fmt.Errorf("section %d: minimum %v exceeds maximum %v", i, s.Minimum, s.Maximum))
		}
		if s.Decimals != nil && (*s.Decimals < 0 || *s.Decimals > numfmt.MaxDecimals) {
			problems = append(problems, fmt.Errorf("section %d: decimals %d outside [0, %d]", i, *s.Decimals, numfmt.MaxDecimals))
		}
		if s.SingleStep != nil && *s.SingleStep < 0 {
			problems = append(problems, fmt.Errorf("section %d: negative single_step %v", i, *s.SingleStep))
		}
	}
	if len(p.Values) > len(p.Sections) {
		problems = append(problems, fmt.Errorf("%d values for %d sections", len(p.Values), len(p.Sections)))
	}
	return problems
}

// Configurations converts the preset sections to section configurations.
func (p *Preset) Configurations() ([]section.Config, error) {
	if problems := p.Validate(); len(problems) > 0 {
		return nil, NewValidationError("invalid preset", problems)
	}
	configs := make([]section.Config, len(p.Sections))
	for i, s := range p.Sections {
		configs[i] = s.Config()
	}
	return configs, nil
}

// Apply configures a controller with the preset's sections and values.
func (p *Preset) Apply(c *spinbox.Controller) error {
	configs, err := p.Configurations()
	if err != nil {
		return err
	}
	c.SetSectionConfigurations(configs)
	if len(p.Values) > 0 {
		c.SetValues(p.Values)
	}
	return nil
}

// Summary returns a one-line description of the sections.
func (p *Preset) Summary() string {
	parts := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		cfg := s.Config()
		wrap := ""
		if cfg.IsWrapping() {
			wrap = " wrap"
		}
		parts[i] = fmt.Sprintf("[%v..%v d%d%s]", cfg.Minimum(), cfg.Maximum(), cfg.Decimals(), wrap)
	}
	return strings.Join(parts, " ")
}

// Config converts the spec to a section configuration.
func (s SectionSpec) Config() section.Config {
	cfg := section.NewConfig()
	cfg.SetRange(s.Minimum, s.Maximum)
	if s.Decimals != nil {
		cfg.SetDecimals(*s.Decimals)
	}
	if s.SingleStep != nil {
		cfg.SetSingleStep(*s.SingleStep)
	}
	cfg.SetWrapping(s.Wrapping)
	cfg.SetGroupSeparatorShown(s.GroupSeparator)
	cfg.SetFormatString(s.Format)
	return cfg
}

// Tracking returns the keyboard tracking preference, true when unset.
func (p *Preferences) Tracking() bool {
	return p == nil || p.KeyboardTracking == nil || *p.KeyboardTracking
}

// NumberLocale resolves the locale preference. An empty preference yields
// the C locale.
func (p *Preferences) NumberLocale() (numfmt.Locale, error) {
	loc, err := numfmt.LookupLocale(p.Locale)
	if err != nil {
		return numfmt.C, NewValidationError("invalid locale preference", []error{err})
	}
	return loc, nil
}

// Apply applies the preferences to a spin box.
func (p *Preferences) Apply(box *spinbox.SpinBox) error {
	loc, err := p.NumberLocale()
	if err != nil {
		return err
	}
	mode, err := spinbox.ParseCorrectionMode(p.CorrectionMode)
	if err != nil {
		return NewValidationError("invalid correction_mode preference", []error{err})
	}
	c := box.Controller()
	c.SetLocale(loc)
	c.SetKeyboardTracking(p.Tracking())
	c.SetCorrectionMode(mode)
	if p.PageStep > 0 {
		box.SetPageStep(p.PageStep)
	}
	return nil
}
