package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	LibDir        string `toml:"lib_dir"`
	Library       string `toml:"library"`
	MathLib       string `toml:"math_lib"`
	StringLib     string `toml:"string_lib"`
	CommonLib     string `toml:"common_lib"`
	LogLevel      string `toml:"log_level"`
	NoColor       *bool  `toml:"no_color"`
	Watch         *bool  `toml:"watch"`
	DebounceDelay string `toml:"debounce_delay"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.modbridge/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".modbridge", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("lib-dir", fc.LibDir, &cfg.LibDir)
	s.setString("library", fc.Library, &cfg.Library)
	s.setString("math-lib", fc.MathLib, &cfg.MathLib)
	s.setString("string-lib", fc.StringLib, &cfg.StringLib)
	s.setString("common-lib", fc.CommonLib, &cfg.CommonLib)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("debounce", fc.DebounceDelay, &cfg.DebounceDelay); err != nil {
		return err
	}

	s.setBool("no-color", fc.NoColor, &cfg.NoColor)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
