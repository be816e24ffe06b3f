package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (MODBRIDGE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("lib-dir", os.Getenv("MODBRIDGE_LIB_DIR"), &cfg.LibDir)
	s.setString("library", os.Getenv("MODBRIDGE_LIBRARY"), &cfg.Library)
	s.setString("math-lib", os.Getenv("MODBRIDGE_MATH_LIB"), &cfg.MathLib)
	s.setString("string-lib", os.Getenv("MODBRIDGE_STRING_LIB"), &cfg.StringLib)
	s.setString("common-lib", os.Getenv("MODBRIDGE_COMMON_LIB"), &cfg.CommonLib)
	s.setString("log-level", os.Getenv("MODBRIDGE_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv("MODBRIDGE_DEBOUNCE_DELAY"), &cfg.DebounceDelay); err != nil {
		return err
	}

	if err := s.setBoolFromString("no-color", os.Getenv("MODBRIDGE_NO_COLOR"), &cfg.NoColor); err != nil {
		return err
	}
	if err := s.setBoolFromString("watch", os.Getenv("MODBRIDGE_WATCH"), &cfg.Watch); err != nil {
		return err
	}

	return nil
}
