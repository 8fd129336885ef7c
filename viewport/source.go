package viewport

// Source delivers width changes to subscribers.
type Source interface {
	// Width returns the last known width, if any has been measured.
	Width() (int, bool)
	// Subscribe registers fn for every subsequent width change.
	Subscribe(fn func(width int)) (unsubscribe func())
}

// Broadcaster is an in-process Source fed by the host's resize events.
// It is driven from a single event loop and is not safe for concurrent use.
type Broadcaster struct {
	width    int
	measured bool

	nextID    int
	listeners map[int]func(int)
	order     []int // Subscription order, so delivery is deterministic
}

// NewBroadcaster creates a Broadcaster with no measurement.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{listeners: make(map[int]func(int))}
}

// Width implements Source.
func (b *Broadcaster) Width() (int, bool) {
	return b.width, b.measured
}

// Subscribe implements Source. The returned func is idempotent.
func (b *Broadcaster) Subscribe(fn func(width int)) func() {
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.order = append(b.order, id)

	return func() {
		if _, ok := b.listeners[id]; !ok {
			return
		}
		delete(b.listeners, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Publish records a new width and notifies every subscriber once.
func (b *Broadcaster) Publish(width int) {
	b.width = width
	b.measured = true

	// Copy so listeners may unsubscribe during delivery
	ids := make([]int, len(b.order))
	copy(ids, b.order)
	for _, id := range ids {
		if fn, ok := b.listeners[id]; ok {
			fn(width)
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (b *Broadcaster) Subscribers() int {
	return len(b.listeners)
}
