package console

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/drake/hooklab/lab"
	"github.com/drake/hooklab/loader"
	"github.com/drake/hooklab/viewport"
)

const (
	endpoint = "https://api.test/user"
	userBody = `{"results":[{"name":{"title":"Mr","first":"A","last":"B"}}]}`
)

func newTestLab(autoLoad bool) *lab.Lab {
	return lab.New(lab.Options{
		Endpoint:    endpoint,
		AutoLoad:    autoLoad,
		Threshold:   5,
		Breakpoints: viewport.DefaultBreakpoints(),
		HistorySize: 10,
	})
}

func runUI(t *testing.T, ui *ConsoleUI) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- ui.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("console did not finish")
	}
}

func runConsole(t *testing.T, autoLoad bool, f loader.Fetcher, input string) (string, *lab.Lab) {
	t.Helper()
	l := newTestLab(autoLoad)

	var out bytes.Buffer
	runUI(t, NewConsoleUI(l, f, strings.NewReader(input), &out))
	return out.String(), l
}

// slowWriter makes every write take a while, so input outpaces output.
type slowWriter struct {
	delay time.Duration
	bytes.Buffer
}

func (w *slowWriter) Write(p []byte) (int, error) {
	time.Sleep(w.delay)
	return w.Buffer.Write(p)
}

func TestConsoleCounter(t *testing.T) {
	input := strings.Repeat("inc\n", 6)
	out, l := runConsole(t, false, loader.NewMockFetcher(), input)

	if l.Counter.Value() != 6 {
		t.Fatalf("expected 6, got %d", l.Counter.Value())
	}
	if strings.Count(out, "More than 5 clicks") != 1 {
		t.Errorf("badge should appear once, at 6:\n%s", out)
	}
	if !strings.Contains(out, "count: 6") {
		t.Errorf("missing final count:\n%s", out)
	}
}

func TestConsoleWidth(t *testing.T) {
	out, l := runConsole(t, false, loader.NewMockFetcher(), "width 400\nwidth 600\nwidth 1000\n")

	want := "device: mobile\ndevice: tablet\ndevice: desktop\n"
	if out != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", out, want)
	}
	if l.Mounted() {
		t.Error("lab should be unmounted after Run")
	}
}

func TestConsoleAutoLoad(t *testing.T) {
	f := loader.NewMockFetcher()
	f.Respond(endpoint, userBody)

	out, _ := runConsole(t, true, f, "")
	if !strings.Contains(out, "[auto] Mr A B") {
		t.Errorf("expected auto result:\n%s", out)
	}
}

func TestConsoleAutoLoadFailure(t *testing.T) {
	f := loader.NewMockFetcher()
	f.Fail(endpoint, errors.New("offline"))

	out, _ := runConsole(t, true, f, "")
	if !strings.Contains(out, "[auto] "+lab.ErrorMessage) {
		t.Errorf("expected error message:\n%s", out)
	}
	if got := len(f.Calls()); got != 2 {
		t.Errorf("expected 2 fetches, got %d", got)
	}
}

func TestConsoleLoad(t *testing.T) {
	f := loader.NewMockFetcher()
	f.Respond("https://api.test/one", userBody)

	out, l := runConsole(t, false, f, "load https://api.test/one\n")
	if !strings.Contains(out, "[manual] Mr A B") {
		t.Errorf("expected manual result:\n%s", out)
	}
	if got := l.History.Recent(); len(got) != 1 || got[0] != "https://api.test/one" {
		t.Errorf("unexpected history: %v", got)
	}
}

func TestConsoleQuitStopsEarly(t *testing.T) {
	out, _ := runConsole(t, false, loader.NewMockFetcher(), "quit\ninc\n")
	if strings.Contains(out, "count:") {
		t.Errorf("commands after quit should not run:\n%s", out)
	}
}

func TestConsoleBadInput(t *testing.T) {
	out, _ := runConsole(t, false, loader.NewMockFetcher(), "width abc\nload\nfrobnicate\n")
	for _, want := range []string{`invalid width "abc"`, "usage: load <url>", `unknown command "frobnicate"`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestConsoleKeepsEveryCommand(t *testing.T) {
	const n = 3000
	l := newTestLab(false)
	out := &slowWriter{delay: 20 * time.Microsecond}

	runUI(t, NewConsoleUI(l, loader.NewMockFetcher(), strings.NewReader(strings.Repeat("inc\n", n)), out))

	if got := l.Counter.Value(); got != n {
		t.Fatalf("sent %d inc lines, counter = %d", n, got)
	}
	if !strings.Contains(out.String(), "count: 3000") {
		t.Error("missing final count")
	}
}

func TestConsoleRunReleasesGoroutines(t *testing.T) {
	before := runtime.NumGoroutine()

	for i := 0; i < 20; i++ {
		f := loader.NewMockFetcher()
		release := f.Hold(endpoint)
		defer release()

		pr, pw := io.Pipe()
		ui := NewConsoleUI(newTestLab(true), f, pr, io.Discard)

		done := make(chan error, 1)
		go func() { done <- ui.Run() }()

		// The auto load stays in flight until Run cancels it.
		if _, err := io.WriteString(pw, "inc\nquit\n"); err != nil {
			t.Fatalf("write: %v", err)
		}
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("round %d: Run did not return after quit", i)
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if after := runtime.NumGoroutine(); after > before {
		t.Errorf("goroutines before=%d after 20 runs=%d", before, after)
	}
}
