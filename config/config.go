package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"time"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/hooklab/counter"
	"github.com/drake/hooklab/internal/history"
	"github.com/drake/hooklab/viewport"
)

// DefaultEndpoint is the fixed target of the auto loader.
const DefaultEndpoint = "https://randomuser.me/api"

// Config holds the runtime settings read from init.lua.
type Config struct {
	Endpoint         string
	AutoLoad         bool
	CounterThreshold int
	Breakpoints      viewport.Breakpoints
	CellWidth        int // Pixels per terminal column
	Timeout          time.Duration
	HistorySize      int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint:         DefaultEndpoint,
		AutoLoad:         true,
		CounterThreshold: counter.DefaultThreshold,
		Breakpoints:      viewport.DefaultBreakpoints(),
		CellWidth:        8,
		HistorySize:      history.DefaultSize,
	}
}

// Dir returns the hooklab configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "hooklab")
}

// InitFile returns the path to init.lua
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}

// Load evaluates the Lua file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	L := glua.NewState()
	defer L.Close()

	L.SetGlobal("hooklab", L.NewTable())
	if err := L.DoFile(path); err != nil {
		return cfg, fmt.Errorf("loading %s: %w", path, err)
	}

	if err := apply(L, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadString evaluates Lua source on top of the defaults.
func LoadString(src string) (Config, error) {
	cfg := Default()

	L := glua.NewState()
	defer L.Close()

	L.SetGlobal("hooklab", L.NewTable())
	if err := L.DoString(src); err != nil {
		return cfg, err
	}
	return cfg, apply(L, &cfg)
}

func apply(L *glua.LState, cfg *Config) error {
	tbl, ok := L.GetGlobal("hooklab").(*glua.LTable)
	if !ok {
		return errors.New("hooklab must be a table")
	}

	if v, ok := tbl.RawGetString("endpoint").(glua.LString); ok {
		cfg.Endpoint = string(v)
	}
	if v, ok := tbl.RawGetString("autoload").(glua.LBool); ok {
		cfg.AutoLoad = bool(v)
	}
	if v, ok, err := intField(tbl, "counter_threshold", 0); err != nil {
		return err
	} else if ok {
		cfg.CounterThreshold = v
	}
	if v, ok, err := intField(tbl, "cell_width", 1); err != nil {
		return err
	} else if ok {
		cfg.CellWidth = v
	}
	if v, ok, err := intField(tbl, "timeout_ms", 0); err != nil {
		return err
	} else if ok {
		cfg.Timeout = time.Duration(v) * time.Millisecond
	}
	if v, ok, err := intField(tbl, "history_size", 1); err != nil {
		return err
	} else if ok {
		cfg.HistorySize = v
	}

	if bp, ok := tbl.RawGetString("breakpoints").(*glua.LTable); ok {
		if v, ok, err := intField(bp, "mobile", 0); err != nil {
			return fmt.Errorf("breakpoints.%w", err)
		} else if ok {
			cfg.Breakpoints.Mobile = v
		}
		if v, ok, err := intField(bp, "tablet", 0); err != nil {
			return fmt.Errorf("breakpoints.%w", err)
		} else if ok {
			cfg.Breakpoints.Tablet = v
		}
		if cfg.Breakpoints.Mobile >= cfg.Breakpoints.Tablet {
			return fmt.Errorf("breakpoints.mobile (%d) must be below breakpoints.tablet (%d)",
				cfg.Breakpoints.Mobile, cfg.Breakpoints.Tablet)
		}
	}

	return nil
}

// intField reads a whole number no smaller than least from tbl. A missing or
// non-numeric field reports ok == false.
func intField(tbl *glua.LTable, name string, least int) (v int, ok bool, err error) {
	n, ok := tbl.RawGetString(name).(glua.LNumber)
	if !ok {
		return 0, false, nil
	}
	f := float64(n)
	if f != math.Trunc(f) {
		return 0, false, fmt.Errorf("%s must be a whole number, got %v", name, n)
	}
	if f < float64(least) {
		return 0, false, fmt.Errorf("%s must be at least %d, got %v", name, least, n)
	}
	return int(f), true, nil
}
