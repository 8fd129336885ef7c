package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/hooklab/counter"
	"github.com/drake/hooklab/ui/style"
)

// Counter renders a counter and, once past its threshold, a badge.
type Counter struct {
	counter *counter.Counter
	styles  style.Styles
	width   int
}

// NewCounter binds a widget to c.
func NewCounter(c *counter.Counter, styles style.Styles) *Counter {
	return &Counter{counter: c, styles: styles}
}

// View implements Widget.
func (w *Counter) View() string {
	lines := []string{
		w.styles.Label.Render("Clicks ") + w.styles.CounterValue.Render(fmt.Sprintf("%d", w.counter.Value())),
	}
	if w.counter.Visible() {
		lines = append(lines, w.styles.CounterBadge.Render(
			fmt.Sprintf("★ More than %d clicks!", w.counter.Threshold())))
	}
	return lipgloss.NewStyle().MaxWidth(w.width).Render(strings.Join(lines, "\n"))
}

// SetWidth implements Widget.
func (w *Counter) SetWidth(width int) {
	w.width = width
}
