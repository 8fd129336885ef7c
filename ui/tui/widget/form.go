package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/hooklab/internal/history"
	"github.com/drake/hooklab/ui/style"
)

// Form is the single-field URL form with history navigation.
type Form struct {
	textinput textinput.Model
	history   *history.History
	cursor    *history.Cursor
	styles    style.Styles
	width     int
}

// NewForm creates a blurred form backed by h.
func NewForm(h *history.History, styles style.Styles) *Form {
	ti := textinput.New()
	ti.Placeholder = "https://randomuser.me/api"
	ti.Prompt = "url> "
	ti.PromptStyle = styles.InputPrompt
	ti.TextStyle = styles.InputText
	ti.CharLimit = 2048
	ti.Width = 60

	return &Form{
		textinput: ti,
		history:   h,
		styles:    styles,
	}
}

// Update forwards editing keys to the text input.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return cmd
}

// View implements Widget.
func (f *Form) View() string {
	border := f.styles.Muted.Render(strings.Repeat("─", max(f.width, 1)))
	return strings.Join([]string{border, f.textinput.View(), border}, "\n")
}

// SetWidth implements Widget.
func (f *Form) SetWidth(w int) {
	f.width = w
	f.textinput.Width = max(w-len(f.textinput.Prompt)-1, 1)
}

// Focus gives the form keyboard focus.
func (f *Form) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes keyboard focus.
func (f *Form) Blur() {
	f.textinput.Blur()
	f.cursor = nil
}

// Focused reports whether the form has keyboard focus.
func (f *Form) Focused() bool {
	return f.textinput.Focused()
}

// Value returns the trimmed field contents.
func (f *Form) Value() string {
	return strings.TrimSpace(f.textinput.Value())
}

// SetValue replaces the field contents.
func (f *Form) SetValue(s string) {
	f.textinput.SetValue(s)
	f.textinput.CursorEnd()
}

// Reset clears the field and ends history browsing.
func (f *Form) Reset() {
	f.textinput.Reset()
	f.cursor = nil
}

// HistoryOlder fills the field with the next older submitted target.
func (f *Form) HistoryOlder() {
	if f.cursor == nil {
		f.cursor = history.NewCursor(f.history)
	}
	if s, ok := f.cursor.Older(); ok {
		f.SetValue(s)
	}
}

// HistoryNewer fills the field with the next newer target, or clears it
// when moving past the newest.
func (f *Form) HistoryNewer() {
	if f.cursor == nil {
		return
	}
	s, ok := f.cursor.Newer()
	if !ok {
		f.cursor = nil
		f.textinput.Reset()
		return
	}
	f.SetValue(s)
}
