package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				LibDir:        "/file/lib",
				Library:       "bridge",
				LogLevel:      "debug",
				DebounceDelay: "2s",
				Watch:         &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				LibDir:        "/file/lib",
				Library:       "bridge",
				LogLevel:      "debug",
				DebounceDelay: 2 * time.Second,
				Watch:         true,
			},
			wantErr: false,
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				LibDir:  "/file/lib",
				MathLib: "mathlib",
			},
			changed: map[string]bool{"lib-dir": true},
			initial: Config{
				LibDir: "/flag/lib",
			},
			expected: Config{
				LibDir:  "/flag/lib", // unchanged because flag was set
				MathLib: "mathlib",
			},
			wantErr: false,
		},
		{
			name: "handles all field types correctly",
			fileConfig: FileConfig{
				LibDir:        "/lib",
				Library:       "modbridge",
				MathLib:       "mathlib",
				StringLib:     "stringlib",
				CommonLib:     "common",
				LogLevel:      "warn",
				NoColor:       &trueVal,
				Watch:         &falseVal,
				DebounceDelay: "250ms",
			},
			changed: map[string]bool{},
			initial: Config{Watch: true},
			expected: Config{
				LibDir:        "/lib",
				Library:       "modbridge",
				MathLib:       "mathlib",
				StringLib:     "stringlib",
				CommonLib:     "common",
				LogLevel:      "warn",
				NoColor:       true,
				Watch:         false,
				DebounceDelay: 250 * time.Millisecond,
			},
			wantErr: false,
		},
		{
			name: "returns error for invalid duration",
			fileConfig: FileConfig{
				DebounceDelay: "soon",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name: "ignores empty values",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial: Config{
				LibDir:        "/keep",
				DebounceDelay: time.Second,
			},
			expected: Config{
				LibDir:        "/keep",
				DebounceDelay: time.Second,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyFileConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyFileConfig() unexpected error: %v", err)
				return
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
lib_dir = "/opt/modbridge/lib"
math_lib = "mathlib"
log_level = "debug"
debounce_delay = "1s"
watch = true
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.LibDir != "/opt/modbridge/lib" {
		t.Errorf("LibDir = %v, want /opt/modbridge/lib", fc.LibDir)
	}
	if fc.MathLib != "mathlib" {
		t.Errorf("MathLib = %v, want mathlib", fc.MathLib)
	}
	if fc.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", fc.LogLevel)
	}
	if fc.DebounceDelay != "1s" {
		t.Errorf("DebounceDelay = %v, want 1s", fc.DebounceDelay)
	}
	if fc.Watch == nil || *fc.Watch != true {
		t.Errorf("Watch = %v, want true", fc.Watch)
	}
	if fc.NoColor != nil {
		t.Errorf("NoColor = %v, want nil when absent", *fc.NoColor)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
lib_dir = "/test"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".modbridge") {
		t.Errorf("DefaultConfigPath() = %v, should contain .modbridge", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
