package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/bft-labs/modbridge/pkg/log"
)

// DefaultLibraryName is the base name of the shared library built from cmd/libmodbridge.
const DefaultLibraryName = "modbridge"

// Config holds CLI configuration for modbridge.
type Config struct {
	// LibDir is the directory searched for libraries given by name.
	LibDir string

	// Library is the shared library every module is loaded from unless
	// overridden per module.
	Library string

	MathLib   string
	StringLib string
	CommonLib string

	LogLevel string
	NoColor  bool

	Watch         bool
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		DebounceDelay: 500 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.DebounceDelay <= 0 {
		return fmt.Errorf("debounce delay must be positive")
	}

	if c.LibDir == "" {
		c.LibDir = DefaultLibDir()
	}
	if c.Library == "" {
		c.Library = DefaultLibraryName
	}
	c.Library = c.resolve(c.Library)

	c.MathLib = c.resolveModule(c.MathLib)
	c.StringLib = c.resolveModule(c.StringLib)
	c.CommonLib = c.resolveModule(c.CommonLib)
	return nil
}

// Paths returns the distinct library paths the modules resolve to.
func (c *Config) Paths() []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range []string{c.MathLib, c.StringLib, c.CommonLib} {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func (c *Config) resolveModule(v string) string {
	if v == "" {
		return c.Library
	}
	return c.resolve(v)
}

// resolve maps a bare name such as "mathlib" to <LibDir>/libmathlib.so and a
// bare file name to a file inside LibDir. Paths are returned unchanged.
func (c *Config) resolve(v string) string {
	if strings.ContainsRune(v, '/') || strings.ContainsRune(v, filepath.Separator) {
		return v
	}
	if filepath.Ext(v) == "" {
		v = LibraryFileName(v)
	}
	return filepath.Join(c.LibDir, v)
}

// DefaultLibDir returns the lib directory next to the running executable,
// or "lib" when the executable path is unknown.
func DefaultLibDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "lib"
	}
	return filepath.Join(filepath.Dir(exe), "lib")
}

// LibraryFileName returns the platform file name for a shared library,
// for example libmathlib.so on Linux or mathlib.dll on Windows.
func LibraryFileName(name string) string {
	return libraryFileName(runtime.GOOS, name)
}

func libraryFileName(goos, name string) string {
	switch goos {
	case "windows":
		return name + ".dll"
	case "darwin", "ios":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
