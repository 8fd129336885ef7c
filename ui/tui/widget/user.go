package widget

import (
	"strings"

	"github.com/drake/hooklab/lab"
	"github.com/drake/hooklab/loader"
	"github.com/drake/hooklab/ui/style"
)

// User renders the load state of one loader.
type User struct {
	title  string
	loader *loader.Loader
	styles style.Styles
	width  int
}

// NewUser binds a widget to l.
func NewUser(title string, l *loader.Loader, styles style.Styles) *User {
	return &User{title: title, loader: l, styles: styles}
}

// View implements Widget.
func (w *User) View() string {
	lines := []string{w.styles.Label.Render(w.title), w.body()}

	target := w.loader.Target()
	if target == "" {
		target = "(no target)"
	}
	lines = append(lines, w.styles.Muted.Render(truncate(target, w.width)))

	return strings.Join(lines, "\n")
}

func (w *User) body() string {
	switch {
	case w.loader.Loading():
		return w.styles.Loading.Render("Loading...")
	case w.loader.HasError():
		return w.styles.Error.Render(lab.ErrorMessage)
	case w.loader.Data() != nil:
		return w.styles.UserName.Render(w.loader.Data().String())
	default:
		return w.styles.Muted.Render("Nothing loaded yet")
	}
}

// SetWidth implements Widget.
func (w *User) SetWidth(width int) {
	w.width = width
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
