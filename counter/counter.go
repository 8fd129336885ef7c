// Package counter holds the click counter primitive.
package counter

// DefaultThreshold is the value the counter must exceed before its
// display element becomes visible.
const DefaultThreshold = 5

// Counter is a monotonically increasing integer. It is owned by a single
// event loop and is not safe for concurrent use.
type Counter struct {
	value     int
	threshold int
}

// New creates a counter starting at zero.
func New(threshold int) *Counter {
	return &Counter{threshold: threshold}
}

// Increment adds one to the counter.
func (c *Counter) Increment() {
	c.value++
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}

// Threshold returns the visibility threshold.
func (c *Counter) Threshold() int {
	return c.threshold
}

// Visible reports whether the value is strictly above the threshold.
func (c *Counter) Visible() bool {
	return c.value > c.threshold
}
