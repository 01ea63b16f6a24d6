package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/multispin/internal/logging"
)

const (
	appName    = "multispin"
	configFile = "config.yaml"
)

var (
	// Global registry instance (loaded lazily)
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
	globalRegistryErr  error

	// pathOverride replaces the platform path when set (--config flag)
	pathOverride string

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/multispin or $HOME/.config/multispin
//   - macOS: $HOME/.config/multispin (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\multispin
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// SetConfigPath makes the global registry use path instead of the platform
// location. An empty path restores the default. The next LoadRegistry call
// reads from the new location.
func SetConfigPath(path string) {
	fileMutex.Lock()
	defer fileMutex.Unlock()
	pathOverride = path
	globalRegistryOnce = sync.Once{}
}

// LoadRegistry loads the configuration registry from disk.
// If the file doesn't exist, returns a new default registry.
// Thread-safe - multiple calls will return the same instance.
func LoadRegistry() (*Registry, error) {
	globalRegistryOnce.Do(func() {
		var path string
		path, globalRegistryErr = GetConfigPath()
		if globalRegistryErr != nil {
			globalRegistry = nil
			return
		}
		globalRegistry, globalRegistryErr = LoadFile(path)
	})
	return globalRegistry, globalRegistryErr
}

// LoadFile reads a registry from path. A missing file yields a default
// registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debug("Config file not found, using defaults", zap.String("path", path))
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, NewIOError(path, "failed to read config file", err)
	}

	registry, err := decodeRegistry(data)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}
		return nil, err
	}
	logging.Debug("Loaded config file",
		zap.String("path", path),
		zap.Int("presets", len(registry.Presets)))
	return registry, nil
}

// decodeRegistry parses YAML and fills in defaults.
func decodeRegistry(data []byte) (*Registry, error) {
	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, NewParseError("", "failed to parse config file", err)
	}

	if registry.Version != 1 {
		return nil, NewParseError("", fmt.Sprintf("unsupported config version: %d (expected 1)", registry.Version), nil)
	}

	if registry.Presets == nil {
		registry.Presets = make(map[string]*Preset)
	}
	if registry.Preferences == nil {
		registry.Preferences = defaultPreferences()
	}

	var problems []error
	for name, p := range registry.Presets {
		if p == nil {
			problems = append(problems, fmt.Errorf("preset %q: empty definition", name))
			continue
		}
		for _, err := range p.Validate() {
			problems = append(problems, fmt.Errorf("preset %q: %w", name, err))
		}
	}
	if len(problems) > 0 {
		return nil, NewValidationError("config file contains invalid presets", problems)
	}

	return &registry, nil
}

// Save saves the registry to the configured path.
func (r *Registry) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return NewIOError("", "failed to get config path", err)
	}
	return r.SaveFile(configPath)
}

// SaveFile writes the registry to path.
// Performs an atomic write to prevent corruption on crash.
func (r *Registry) SaveFile(configPath string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return NewIOError(configPath, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return NewParseError(configPath, "failed to marshal config", err)
	}

	header := []byte(`# MultiSpin Configuration File
# Preferences and user-defined section presets.
# "%1" in a section format marks where the value is displayed.
#
# Location: ` + configPath + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return NewIOError(configPath, "failed to write temporary config file", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		_ = os.Remove(tmpPath)
		return NewIOError(configPath, "failed to save config file", err)
	}

	logging.Debug("Saved config file", zap.String("path", configPath))
	return nil
}

// ReloadRegistry reloads the registry from disk, discarding any in-memory changes.
// This is useful for reading changes made by another process.
func ReloadRegistry() (*Registry, error) {
	fileMutex.Lock()
	globalRegistryOnce = sync.Once{}
	fileMutex.Unlock()
	return LoadRegistry()
}

// SaveGlobal saves the global registry instance to disk.
// This is a convenience wrapper for the most common use case.
func SaveGlobal() error {
	registry, err := LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	return registry.Save()
}
