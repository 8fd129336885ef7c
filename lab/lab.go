// Package lab composes the counter, loaders and viewport classifier into
// the state behind the parent view.
//
// A Lab is owned by a single event loop (the Bubble Tea Update or the
// console loop). Operations that need the network return loader.Requests;
// the host runs loader.Fetch off the loop and hands each Result back to
// Apply on the loop.
package lab

import (
	"context"
	"log"

	"github.com/drake/hooklab/counter"
	"github.com/drake/hooklab/internal/history"
	"github.com/drake/hooklab/loader"
	"github.com/drake/hooklab/viewport"
)

// Loader names.
const (
	AutoLoader   = "auto"
	ManualLoader = "manual"
)

// ErrorMessage replaces the data display when a load fails.
const ErrorMessage = "Something went wrong loading the user."

// Options configures a Lab.
type Options struct {
	Endpoint    string
	AutoLoad    bool
	Threshold   int
	Breakpoints viewport.Breakpoints
	HistorySize int
}

// Lab is the composed state of the parent view.
type Lab struct {
	Counter  *counter.Counter
	Auto     *loader.Loader
	Manual   *loader.Loader
	Viewport *viewport.Classifier
	History  *history.History

	ctx      context.Context
	cancel   context.CancelFunc
	autoLoad bool
	mounted  bool
}

// New creates an unmounted Lab.
func New(opts Options) *Lab {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lab{
		Counter:  counter.New(opts.Threshold),
		Auto:     loader.New(AutoLoader, opts.Endpoint),
		Manual:   loader.New(ManualLoader, ""),
		Viewport: viewport.NewClassifier(opts.Breakpoints),
		History:  history.New(opts.HistorySize),
		ctx:      ctx,
		cancel:   cancel,
		autoLoad: opts.AutoLoad,
	}
}

// Mount starts the classifier on src and returns the initial auto-load
// request, if auto-loading is enabled. Mounting twice does nothing.
func (l *Lab) Mount(src viewport.Source) []loader.Request {
	if l.mounted {
		return nil
	}
	l.mounted = true
	if l.ctx.Err() != nil {
		l.ctx, l.cancel = context.WithCancel(context.Background())
	}
	l.Viewport.Start(src)

	if !l.autoLoad {
		return nil
	}
	return []loader.Request{l.Auto.Begin(l.ctx)}
}

// Unmount releases the resize subscription and abandons in-flight loads.
func (l *Lab) Unmount() {
	if !l.mounted {
		return
	}
	l.mounted = false
	l.Viewport.Stop()
	l.Auto.Cancel()
	l.Manual.Cancel()
	l.cancel()
}

// Mounted reports whether the Lab is between Mount and Unmount.
func (l *Lab) Mounted() bool {
	return l.mounted
}

// Increment bumps the counter.
func (l *Lab) Increment() {
	l.Counter.Increment()
}

// Submit points the manual loader at target and starts a load.
func (l *Lab) Submit(target string) loader.Request {
	l.History.Add(target)
	l.Manual.SetTarget(target)
	return l.Manual.Begin(l.ctx)
}

// Reload re-runs the auto loader against its endpoint.
func (l *Lab) Reload() loader.Request {
	return l.Auto.Begin(l.ctx)
}

// Apply routes a result to its loader. When the auto loader's error flag
// flips, a follow-up request is returned.
func (l *Lab) Apply(res loader.Result) []loader.Request {
	var ld *loader.Loader
	for _, candidate := range []*loader.Loader{l.Auto, l.Manual} {
		if candidate.Name() == res.Loader {
			ld = candidate
		}
	}
	if ld == nil {
		log.Printf("[lab] result for unknown loader %q", res.Loader)
		return nil
	}

	applied, changed := ld.Apply(res)
	if !applied || !changed || ld != l.Auto || !l.autoLoad || !l.mounted {
		return nil
	}
	log.Printf("[lab] auto: error flag now %v, reloading", l.Auto.HasError())
	return []loader.Request{l.Auto.Begin(l.ctx)}
}

// LoaderStats implements debug.StatsSource.
func (l *Lab) LoaderStats() map[string]loader.Stats {
	return map[string]loader.Stats{
		l.Auto.Name():   l.Auto.Stats(),
		l.Manual.Name(): l.Manual.Stats(),
	}
}

// LoadView is a render-ready copy of one loader's state.
type LoadView struct {
	Target   string
	User     *loader.RemoteUser
	Loading  bool
	HasError bool
	Err      string
}

// Snapshot is a render-ready copy of the whole Lab.
type Snapshot struct {
	Count        int
	CountVisible bool
	Auto         LoadView
	Manual       LoadView
	Class        viewport.Class
	Recent       []string
}

// Snapshot copies the current state.
func (l *Lab) Snapshot() Snapshot {
	return Snapshot{
		Count:        l.Counter.Value(),
		CountVisible: l.Counter.Visible(),
		Auto:         viewOf(l.Auto),
		Manual:       viewOf(l.Manual),
		Class:        l.Viewport.Class(),
		Recent:       l.History.Recent(),
	}
}

func viewOf(ld *loader.Loader) LoadView {
	v := LoadView{
		Target:   ld.Target(),
		Loading:  ld.Loading(),
		HasError: ld.HasError(),
	}
	if u := ld.Data(); u != nil {
		cp := *u
		v.User = &cp
	}
	if err := ld.Err(); err != nil {
		v.Err = err.Error()
	}
	return v
}
