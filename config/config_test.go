package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/drake/hooklab/viewport"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "init.lua"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.lua")
	src := `
hooklab.endpoint = "http://localhost:9000/api"
hooklab.autoload = false
hooklab.counter_threshold = 2
hooklab.cell_width = 10
hooklab.timeout_ms = 1500
hooklab.history_size = 5
hooklab.breakpoints = { mobile = 400, tablet = 900 }
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{
		Endpoint:         "http://localhost:9000/api",
		AutoLoad:         false,
		CounterThreshold: 2,
		Breakpoints:      viewport.Breakpoints{Mobile: 400, Tablet: 900},
		CellWidth:        10,
		Timeout:          1500 * time.Millisecond,
		HistorySize:      5,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadStringPartial(t *testing.T) {
	cfg, err := LoadString(`hooklab.breakpoints = { tablet = 1024 }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Breakpoints.Mobile != 480 || cfg.Breakpoints.Tablet != 1024 {
		t.Errorf("unexpected breakpoints: %+v", cfg.Breakpoints)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("endpoint should keep default, got %q", cfg.Endpoint)
	}
}

func TestLoadStringErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `hooklab.endpoint = `},
		{"not a table", `hooklab = 3`},
		{"inverted breakpoints", `hooklab.breakpoints = { mobile = 900, tablet = 400 }`},
		{"zero cell width", `hooklab.cell_width = 0`},
		{"negative threshold", `hooklab.counter_threshold = -1`},
		{"fractional threshold", `hooklab.counter_threshold = 2.5`},
		{"negative history size", `hooklab.history_size = -3`},
		{"zero history size", `hooklab.history_size = 0`},
		{"fractional cell width", `hooklab.cell_width = 7.5`},
		{"negative timeout", `hooklab.timeout_ms = -100`},
		{"fractional breakpoint", `hooklab.breakpoints = { mobile = 480.5 }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadString(tt.src); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDirRespectsXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows uses APPDATA")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Dir(); got != filepath.Join("/tmp/xdg", "hooklab") {
		t.Errorf("Dir() = %q", got)
	}
	if got := InitFile(); got != filepath.Join("/tmp/xdg", "hooklab", "init.lua") {
		t.Errorf("InitFile() = %q", got)
	}
}
