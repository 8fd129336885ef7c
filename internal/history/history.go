package history

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the number of targets kept when none is configured.
const DefaultSize = 20

// History keeps recently submitted targets, most recent first.
// Resubmitting a target moves it to the front instead of duplicating it.
type History struct {
	cache *lru.Cache[string, struct{}]
}

// New creates a history holding at most size entries.
func New(size int) *History {
	if size <= 0 {
		size = DefaultSize
	}
	cache, _ := lru.New[string, struct{}](size)
	return &History{cache: cache}
}

// Add records a target.
func (h *History) Add(target string) {
	if target == "" {
		return
	}
	h.cache.Add(target, struct{}{})
}

// Recent returns the stored targets, newest first.
func (h *History) Recent() []string {
	keys := h.cache.Keys() // oldest first
	result := make([]string, len(keys))
	for i, k := range keys {
		result[len(keys)-1-i] = k
	}
	return result
}

// Len returns the number of stored targets.
func (h *History) Len() int {
	return h.cache.Len()
}

// Cursor walks a History snapshot for up/down navigation in an input field.
// Position -1 means "not browsing".
type Cursor struct {
	items []string
	pos   int
}

// NewCursor creates a cursor over the current contents of h.
func NewCursor(h *History) *Cursor {
	return &Cursor{items: h.Recent(), pos: -1}
}

// Older moves toward older entries and returns the selected target.
func (c *Cursor) Older() (string, bool) {
	if c.pos+1 >= len(c.items) {
		return "", false
	}
	c.pos++
	return c.items[c.pos], true
}

// Newer moves toward newer entries. Moving past the newest ends browsing
// and returns "", false.
func (c *Cursor) Newer() (string, bool) {
	if c.pos <= 0 {
		c.pos = -1
		return "", false
	}
	c.pos--
	return c.items[c.pos], true
}
