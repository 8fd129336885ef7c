// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/hooklab/loader"
)

// LogFile is where diagnostics go when debug mode is on.
const LogFile = "debug.log"

// Enabled returns true if debug mode is active (HOOKLAB_DEBUG=1).
func Enabled() bool {
	return os.Getenv("HOOKLAB_DEBUG") == "1"
}

// SetupLogging routes the standard logger. In debug mode it appends to
// LogFile (the terminal belongs to the UI); otherwise logs are discarded.
// The returned closer is always non-nil.
func SetupLogging() (io.Closer, error) {
	if !Enabled() {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(LogFile, "hooklab")
	if err != nil {
		return io.NopCloser(nil), err
	}
	return f, nil
}

// StatsSource exposes loader counters by loader name.
type StatsSource interface {
	LoaderStats() map[string]loader.Stats
}

// Monitor periodically logs loader statistics when debug mode is enabled.
type Monitor struct {
	source   StatsSource
	interval time.Duration
	ctx      context.Context
	logger   *log.Logger
}

// NewMonitor creates a new monitor for the given source.
// If debug mode is not enabled, returns nil.
func NewMonitor(ctx context.Context, src StatsSource) *Monitor {
	if !Enabled() {
		return nil
	}

	return &Monitor{
		source:   src,
		interval: 5 * time.Second,
		ctx:      ctx,
		logger:   log.Default(),
	}
}

// Start begins the monitoring loop in a goroutine.
func (m *Monitor) Start() {
	if m == nil {
		return
	}
	go m.run()
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Println("[DEBUG] Monitor started")

	for {
		select {
		case <-m.ctx.Done():
			m.logger.Println("[DEBUG] Monitor stopped")
			return
		case <-ticker.C:
			m.logStats()
		}
	}
}

func (m *Monitor) logStats() {
	for name, s := range m.source.LoaderStats() {
		m.logger.Printf("[DEBUG] loader=%s issued=%d applied=%d dropped=%d failed=%d goroutines=%d",
			name, s.Issued, s.Applied, s.Dropped, s.Failed, runtime.NumGoroutine())
	}
}
