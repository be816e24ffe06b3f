package cliconfig

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.DebounceDelay != 500*time.Millisecond {
		t.Errorf("DebounceDelay = %v, want 500ms", cfg.DebounceDelay)
	}
	if cfg.Watch {
		t.Error("Watch = true, want false")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid minimal config",
			config: Config{
				LibDir:        "/opt/modbridge/lib",
				DebounceDelay: time.Second,
			},
			wantErr: false,
		},
		{
			name: "unknown log level",
			config: Config{
				LibDir:        "/opt/modbridge/lib",
				LogLevel:      "chatty",
				DebounceDelay: time.Second,
			},
			wantErr: true,
		},
		{
			name: "zero debounce",
			config: Config{
				LibDir: "/opt/modbridge/lib",
			},
			wantErr: true,
		},
		{
			name: "negative debounce",
			config: Config{
				LibDir:        "/opt/modbridge/lib",
				DebounceDelay: -time.Second,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_Derivations(t *testing.T) {
	dir := filepath.Join("/opt", "modbridge", "lib")
	shared := filepath.Join(dir, LibraryFileName(DefaultLibraryName))

	// Every module falls back to the shared library.
	c1 := Config{LibDir: dir, DebounceDelay: time.Second}
	if err := c1.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c1.Library != shared {
		t.Errorf("Library = %v, want %v", c1.Library, shared)
	}
	for name, got := range map[string]string{"MathLib": c1.MathLib, "StringLib": c1.StringLib, "CommonLib": c1.CommonLib} {
		if got != shared {
			t.Errorf("%s = %v, want %v", name, got, shared)
		}
	}
	if paths := c1.Paths(); len(paths) != 1 || paths[0] != shared {
		t.Errorf("Paths = %v, want [%v]", paths, shared)
	}

	// Bare names get the platform prefix and suffix, file names stay in LibDir,
	// paths are untouched.
	c2 := Config{
		LibDir:        dir,
		MathLib:       "mathlib",
		StringLib:     "custom.so",
		CommonLib:     "/elsewhere/libcommon.so",
		DebounceDelay: time.Second,
	}
	if err := c2.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if want := filepath.Join(dir, LibraryFileName("mathlib")); c2.MathLib != want {
		t.Errorf("MathLib = %v, want %v", c2.MathLib, want)
	}
	if want := filepath.Join(dir, "custom.so"); c2.StringLib != want {
		t.Errorf("StringLib = %v, want %v", c2.StringLib, want)
	}
	if c2.CommonLib != "/elsewhere/libcommon.so" {
		t.Errorf("CommonLib = %v, want /elsewhere/libcommon.so", c2.CommonLib)
	}
	if len(c2.Paths()) != 3 {
		t.Errorf("Paths = %v, want 3 entries", c2.Paths())
	}

	// LibDir defaults to lib/ beside the executable.
	c3 := Config{DebounceDelay: time.Second}
	if err := c3.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c3.LibDir != DefaultLibDir() {
		t.Errorf("LibDir = %v, want %v", c3.LibDir, DefaultLibDir())
	}
	if filepath.Base(c3.LibDir) != "lib" {
		t.Errorf("LibDir = %v, want a lib directory", c3.LibDir)
	}
}

func TestLibraryFileName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "libmathlib.so"},
		{"freebsd", "libmathlib.so"},
		{"darwin", "libmathlib.dylib"},
		{"windows", "mathlib.dll"},
	}

	for _, tt := range tests {
		if got := libraryFileName(tt.goos, "mathlib"); got != tt.want {
			t.Errorf("libraryFileName(%q) = %v, want %v", tt.goos, got, tt.want)
		}
	}
}
