// Package loader fetches a remote user record and tracks its load state.
//
// A Loader is owned by one event loop. Begin and Apply run on that loop;
// Fetch runs anywhere and returns a Result that is fed back through Apply.
// Each request carries a sequence number and only the latest one issued
// is ever applied, so a slow early response cannot overwrite a newer one.
package loader

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
)

// Request describes one fetch issued by a Loader.
type Request struct {
	Seq    uint64
	Loader string
	Target string

	ctx context.Context
}

// Context returns the request's context, cancelled when it is superseded.
func (r Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// Result is the outcome of a Request.
type Result struct {
	Seq    uint64
	Loader string
	Target string
	User   *RemoteUser
	Err    error
}

// Stats holds loader counters for monitoring.
type Stats struct {
	Issued  uint64
	Applied uint64
	Dropped uint64
	Failed  uint64
}

// Loader holds the state of one remote resource.
type Loader struct {
	name   string
	target string

	seq     uint64 // Latest issued sequence number
	data    *RemoteUser
	err     error
	loading bool
	cancel  context.CancelFunc

	// Stats (atomic for reads from the monitor goroutine)
	issued  atomic.Uint64
	applied atomic.Uint64
	dropped atomic.Uint64
	failed  atomic.Uint64
}

// New creates a loader. The name tags requests and log lines.
func New(name, target string) *Loader {
	return &Loader{name: name, target: target}
}

// Name returns the loader name.
func (l *Loader) Name() string { return l.name }

// Target returns the current target URL.
func (l *Loader) Target() string { return l.target }

// SetTarget records the URL used by the next Begin.
func (l *Loader) SetTarget(target string) {
	l.target = target
}

// Data returns the last successfully loaded user, or nil.
func (l *Loader) Data() *RemoteUser { return l.data }

// HasError reports whether the last applied result failed.
func (l *Loader) HasError() bool { return l.err != nil }

// Err returns the cause of the last failure, for diagnostics.
func (l *Loader) Err() error { return l.err }

// Loading reports whether a request is in flight.
func (l *Loader) Loading() bool { return l.loading }

// Stats returns a snapshot of the counters. Safe to call from any goroutine.
func (l *Loader) Stats() Stats {
	return Stats{
		Issued:  l.issued.Load(),
		Applied: l.applied.Load(),
		Dropped: l.dropped.Load(),
		Failed:  l.failed.Load(),
	}
}

// Begin issues a request for the current target. Any request still in
// flight is cancelled and its eventual result will be dropped.
func (l *Loader) Begin(parent context.Context) Request {
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	l.seq++
	l.loading = true
	l.issued.Add(1)

	return Request{
		Seq:    l.seq,
		Loader: l.name,
		Target: l.target,
		ctx:    ctx,
	}
}

// Cancel abandons the in-flight request, if any. Its result will be dropped.
func (l *Loader) Cancel() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.loading {
		l.seq++
		l.loading = false
	}
}

// Apply stores a result if it answers the latest request. Success clears
// the error and failure clears the data. errorChanged reports whether the
// error flag flipped.
func (l *Loader) Apply(res Result) (applied, errorChanged bool) {
	if res.Seq != l.seq || !l.loading {
		l.dropped.Add(1)
		log.Printf("[loader] %s: dropping stale response #%d (latest #%d)", l.name, res.Seq, l.seq)
		return false, false
	}

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.loading = false
	l.applied.Add(1)

	hadError := l.err != nil
	if res.Err != nil {
		l.failed.Add(1)
		l.data = nil
		l.err = res.Err
		log.Printf("[loader] %s: %v", l.name, res.Err)
	} else {
		l.data = res.User
		l.err = nil
	}

	return true, hadError != (l.err != nil)
}

// Fetch runs a request against f and decodes the body. It never touches
// loader state and is safe to call off the event loop.
func Fetch(f Fetcher, req Request) Result {
	res := Result{Seq: req.Seq, Loader: req.Loader, Target: req.Target}

	if err := ValidateTarget(req.Target); err != nil {
		res.Err = fmt.Errorf("%w: %w", ErrLoadFailed, err)
		return res
	}

	body, err := f.Fetch(req.Context(), req.Target)
	if err != nil {
		res.Err = fmt.Errorf("%w: fetching %s: %w", ErrLoadFailed, req.Target, err)
		return res
	}

	user, err := DecodeUser(body)
	if err != nil {
		res.Err = fmt.Errorf("%w: %w", ErrLoadFailed, err)
		return res
	}

	res.User = user
	return res
}
