package buffer

import (
	"log"

	"github.com/eapache/queue"
)

// Unbounded creates a channel buffer that grows as needed.
// It returns a write-only channel to feed data in, and a read-only channel to read data out.
//
// hardLimit: The maximum number of items to buffer before dropping the oldest (safety valve).
// A hardLimit of zero or less never drops.
//
// Closing in flushes the remaining items and then closes out.
//
// Usage:
//
//	in, out := buffer.Unbounded[event.Event](1000)
//	in <- ev
//	ev := <-out
func Unbounded[T any](hardLimit int) (chan<- T, <-chan T) {
	in := make(chan T, 10)  // Small input buffer to reduce context switching
	out := make(chan T, 10) // Small output buffer

	go func() {
		defer close(out)

		// Ring buffer storage, grows and shrinks with load.
		q := queue.New()

		for {
			var next T
			var downstream chan T

			// Enable the 'out' case only if we have data to send.
			if q.Length() > 0 {
				next = q.Peek().(T)
				downstream = out
			}

			select {
			case val, ok := <-in:
				if !ok {
					// Input channel closed. Flush remaining queue then exit.
					for q.Length() > 0 {
						out <- q.Remove().(T)
					}
					return
				}

				// Safety valve: prevent OOM if the consumer is dead.
				if hardLimit > 0 && q.Length() >= hardLimit {
					log.Printf("[buffer] queue limit reached (%d), dropping oldest item", hardLimit)
					q.Remove()
				}

				q.Add(val)

			case downstream <- next:
				q.Remove()
			}
		}
	}()

	return in, out
}
