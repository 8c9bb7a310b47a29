// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger    logger.Config   `toml:"logger"`
	Editor    EditorConfig    `toml:"editor"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Autosave  AutosaveConfig  `toml:"autosave"`
	Preview   PreviewConfig   `toml:"preview"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-"`
}

// EditorConfig holds editing defaults.
type EditorConfig struct {
	HistoryLimit int    `toml:"history_limit"`
	DefaultFont  string `toml:"default_font"`
	DefaultColor string `toml:"default_color"`
	DefaultTheme string `toml:"default_theme"`
	Prompt       string `toml:"prompt"`
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	System bool `toml:"system"`
}

// AutosaveConfig controls the autosave plugin.
type AutosaveConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
	Every   int    `toml:"every"`
}

// PreviewConfig controls the terminal preview.
type PreviewConfig struct {
	Theme string `toml:"theme"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			HistoryLimit: DefaultHistoryLimit,
			DefaultFont:  DefaultFont,
			DefaultColor: DefaultColor,
			DefaultTheme: DefaultTheme,
			Prompt:       DefaultPrompt,
		},
		Autosave: AutosaveConfig{
			Path:  DefaultAutosavePath,
			Every: DefaultAutosaveEvery,
		},
		Preview: PreviewConfig{Theme: DefaultPreviewTheme},
	}
}

// Dir returns the per-user configuration directory of the application.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the default config file location, or "" if the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, DefaultConfigFileName)
}

// loadFromFile decodes filePath on top of cfg. A missing file is not an
// error; it reports whether the file was read.
func loadFromFile(filePath string, cfg *Config) (bool, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}
	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return false, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// The logger is not configured yet; this lands once Init runs again.
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	return true, nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.HistoryLimit <= 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if c.Editor.DefaultFont == "" {
		c.Editor.DefaultFont = defaults.Editor.DefaultFont
	}
	if c.Editor.DefaultColor == "" {
		c.Editor.DefaultColor = defaults.Editor.DefaultColor
	}
	if c.Editor.DefaultTheme == "" {
		c.Editor.DefaultTheme = defaults.Editor.DefaultTheme
	}
	if c.Editor.Prompt == "" {
		c.Editor.Prompt = defaults.Editor.Prompt
	}
	if c.Autosave.Every <= 0 {
		c.Autosave.Every = defaults.Autosave.Every
	}
	if c.Autosave.Path == "" {
		c.Autosave.Path = defaults.Autosave.Path
	}
	if c.Preview.Theme == "" {
		c.Preview.Theme = defaults.Preview.Theme
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig builds the configuration: defaults, then the TOML file at
// configFilePath (or the default location when empty), then flag overrides,
// then validation. A file error is returned alongside a usable config.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var loadErr error
	if effectivePath != "" {
		fileCfg := NewDefaultConfig()
		found, err := loadFromFile(effectivePath, fileCfg)
		switch {
		case err != nil:
			loadErr = err
		case found:
			cfg = fileCfg
			cfg.Path = effectivePath
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, loadErr
}
