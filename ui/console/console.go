// Package console is a line-oriented front end for when no terminal is
// attached. It drives the same Lab as the TUI from a single event loop.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/drake/hooklab/event"
	"github.com/drake/hooklab/internal/buffer"
	"github.com/drake/hooklab/lab"
	"github.com/drake/hooklab/loader"
	"github.com/drake/hooklab/viewport"
)

const helpText = `commands:
  inc            increment the counter
  load <url>     fetch a user from url
  reload         re-run the auto loader
  width <px>     simulate a resize
  show           print the current state
  quit           exit`

// ConsoleUI reads commands from in and writes results to out.
type ConsoleUI struct {
	lab     *lab.Lab
	fetcher loader.Fetcher
	resize  *viewport.Broadcaster
	in      io.Reader
	out     io.Writer

	// Per-Run state
	input     chan event.Event
	eventsIn  chan<- event.Event
	eventsOut <-chan event.Event
	done      chan struct{}
	fetches   sync.WaitGroup
	inflight  int
}

// NewConsoleUI creates a console front end around l. If in is an
// io.Closer, Run closes it on return.
func NewConsoleUI(l *lab.Lab, f loader.Fetcher, in io.Reader, out io.Writer) *ConsoleUI {
	return &ConsoleUI{
		lab:     l,
		fetcher: f,
		resize:  viewport.NewBroadcaster(),
		in:      in,
		out:     out,
	}
}

// Run mounts the lab and processes events until quit, or until input ends
// and every in-flight load has settled. No goroutine started by Run
// outlives it, except a reader blocked on an input that cannot be closed.
func (c *ConsoleUI) Run() error {
	c.input = make(chan event.Event)
	c.eventsIn, c.eventsOut = buffer.Unbounded[event.Event](0)
	c.done = make(chan struct{})
	c.inflight = 0

	c.lab.Viewport.OnChange = func(cl viewport.Class) {
		fmt.Fprintf(c.out, "device: %s\n", cl)
	}
	defer func() { c.lab.Viewport.OnChange = nil }()

	go c.readInput(c.input, c.done)
	defer c.shutdown()

	c.dispatch(c.lab.Mount(c.resize))
	c.loop()
	return nil
}

func (c *ConsoleUI) loop() {
	input := c.input
	for {
		var ev event.Event
		select {
		case ev = <-input:
		case ev = <-c.eventsOut:
		}

		switch ev.Type {
		case event.UserInput:
			if !c.handleCommand(ev.Payload) {
				return
			}

		case event.LoadResult:
			c.inflight--
			c.dispatch(c.lab.Apply(ev.Result))
			c.printLoader(ev.Result.Loader)

		case event.InputClosed:
			input = nil
		}

		if input == nil && c.inflight == 0 {
			return
		}
	}
}

// shutdown unmounts the lab, waits for every fetch to report, then closes
// and drains the result queue.
func (c *ConsoleUI) shutdown() {
	c.lab.Unmount()
	close(c.done)
	if closer, ok := c.in.(io.Closer); ok {
		closer.Close()
	}

	c.fetches.Wait()
	close(c.eventsIn)
	for range c.eventsOut {
	}
}

// readInput hands stdin lines to the loop one at a time, so a fast
// producer waits for the loop instead of piling up.
func (c *ConsoleUI) readInput(input chan<- event.Event, done <-chan struct{}) {
	send := func(ev event.Event) bool {
		select {
		case input <- ev:
			return true
		case <-done:
			return false
		}
	}

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if !send(event.Event{Type: event.UserInput, Payload: scanner.Text()}) {
			return
		}
	}
	send(event.Event{Type: event.InputClosed})
}

// dispatch runs each request off the loop and queues its result.
func (c *ConsoleUI) dispatch(reqs []loader.Request) {
	for _, req := range reqs {
		req := req
		c.inflight++
		c.fetches.Add(1)
		go func() {
			defer c.fetches.Done()
			c.eventsIn <- event.Event{Type: event.LoadResult, Result: loader.Fetch(c.fetcher, req)}
		}()
	}
}

// handleCommand executes one line. It returns false when the user quits.
func (c *ConsoleUI) handleCommand(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "inc", "+":
		c.lab.Increment()
		c.printCounter()

	case "load":
		if len(fields) < 2 {
			fmt.Fprintln(c.out, "usage: load <url>")
			return true
		}
		c.dispatch([]loader.Request{c.lab.Submit(fields[1])})
		fmt.Fprintf(c.out, "loading %s\n", fields[1])

	case "reload":
		c.dispatch([]loader.Request{c.lab.Reload()})
		fmt.Fprintf(c.out, "reloading %s\n", c.lab.Auto.Target())

	case "width":
		if len(fields) < 2 {
			fmt.Fprintln(c.out, "usage: width <px>")
			return true
		}
		w, err := strconv.Atoi(fields[1])
		if err != nil || w < 0 {
			fmt.Fprintf(c.out, "invalid width %q\n", fields[1])
			return true
		}
		c.resize.Publish(w)

	case "show":
		c.printCounter()
		c.printLoader(lab.AutoLoader)
		c.printLoader(lab.ManualLoader)
		fmt.Fprintf(c.out, "device: %s\n", c.lab.Viewport.Class())

	case "help", "?":
		fmt.Fprintln(c.out, helpText)

	case "quit", "exit":
		return false

	default:
		fmt.Fprintf(c.out, "unknown command %q (try help)\n", fields[0])
	}
	return true
}

func (c *ConsoleUI) printCounter() {
	snap := c.lab.Snapshot()
	fmt.Fprintf(c.out, "count: %d\n", snap.Count)
	if snap.CountVisible {
		fmt.Fprintf(c.out, "★ More than %d clicks!\n", c.lab.Counter.Threshold())
	}
}

// printLoader writes the settled state of a loader; in-flight loaders are
// skipped so superseded results stay silent.
func (c *ConsoleUI) printLoader(name string) {
	snap := c.lab.Snapshot()
	var v lab.LoadView
	switch name {
	case lab.AutoLoader:
		v = snap.Auto
	case lab.ManualLoader:
		v = snap.Manual
	default:
		return
	}

	switch {
	case v.Loading:
		return
	case v.HasError:
		fmt.Fprintf(c.out, "[%s] %s\n", name, lab.ErrorMessage)
	case v.User != nil:
		fmt.Fprintf(c.out, "[%s] %s\n", name, v.User)
	default:
		fmt.Fprintf(c.out, "[%s] nothing loaded\n", name)
	}
}
