// Package config provides user configuration management for multispin.
//
// This package manages a YAML-based configuration file holding application
// preferences (number locale, keyboard tracking, correction mode, page step)
// and named section presets. Built-in presets such as "hsv", "time" and
// "coordinates" are always available; a user preset of the same name
// replaces the built-in one.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/multispin/config.yaml or $HOME/.config/multispin/config.yaml
//   - macOS: $HOME/.config/multispin/config.yaml
//   - Windows: %LOCALAPPDATA%\multispin\config.yaml
//
// SetConfigPath overrides the location.
//
// # File Format
//
//	version: 1
//	preferences:
//	  locale: de-DE
//	  keyboard_tracking: false
//	  correction_mode: nearest
//	presets:
//	  angle:
//	    description: Azimuth and elevation
//	    sections:
//	      - {format: "%1° az  ", minimum: 0, maximum: 360, decimals: 1, wrapping: true}
//	      - {format: "%1° el", minimum: -90, maximum: 90, decimals: 1}
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(config.Hint(err))
//	}
//
//	preset, err := registry.Preset("hsv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	box := spinbox.New(numfmt.C)
//	_ = registry.Preferences.Apply(box)
//	_ = preset.Apply(box.Controller())
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
