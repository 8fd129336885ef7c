package tui

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/hooklab/lab"
	"github.com/drake/hooklab/loader"
	"github.com/drake/hooklab/ui/style"
	"github.com/drake/hooklab/ui/tui/widget"
	"github.com/drake/hooklab/viewport"
)

// Model is the main Bubble Tea model. It owns the Lab and is the only
// place its state is mutated.
type Model struct {
	lab       *lab.Lab
	fetcher   loader.Fetcher
	resize    *viewport.Broadcaster
	cellWidth int

	// Widgets
	counter *widget.Counter
	auto    *widget.User
	manual  *widget.User
	device  *widget.Device
	form    *widget.Form
	help    help.Model
	keys    keyMap
	styles  style.Styles

	// State
	width    int
	height   int
	notice   string
	quitting bool

	copyText func(string) error
}

// NewModel creates a model around l. Widths from tea.WindowSizeMsg are
// multiplied by cellWidth before classification.
func NewModel(l *lab.Lab, f loader.Fetcher, cellWidth int) Model {
	styles := style.DefaultStyles()
	if cellWidth <= 0 {
		cellWidth = 1
	}

	return Model{
		lab:       l,
		fetcher:   f,
		resize:    viewport.NewBroadcaster(),
		cellWidth: cellWidth,
		counter:   widget.NewCounter(l.Counter, styles),
		auto:      widget.NewUser("Random user", l.Auto, styles),
		manual:    widget.NewUser("Your request", l.Manual, styles),
		device:    widget.NewDevice(l.Viewport, styles),
		form:      widget.NewForm(l.History, styles),
		help:      help.New(),
		keys:      defaultKeyMap(),
		styles:    styles,
		copyText:  clipboard.WriteAll,
	}
}

// Init implements tea.Model. It mounts the Lab.
func (m Model) Init() tea.Cmd {
	return m.fetch(m.lab.Mount(m.resize))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setWidths(msg.Width)
		m.resize.Publish(msg.Width * m.cellWidth)
		return m, nil

	case loader.Result:
		return m, m.fetch(m.lab.Apply(msg))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form.Focused() {
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	if m.form.Focused() {
		return m.handleFormKey(msg)
	}

	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Increment):
		m.lab.Increment()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.fetch([]loader.Request{m.lab.Reload()})

	case key.Matches(msg, m.keys.Copy):
		m.copyName()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		return m, m.form.Focus()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		target := m.form.Value()
		if target == "" {
			return m, nil
		}
		m.form.Reset()
		return m, m.fetch([]loader.Request{m.lab.Submit(target)})

	case key.Matches(msg, m.keys.Blur):
		m.form.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Older):
		m.form.HistoryOlder()
		return m, nil

	case key.Matches(msg, m.keys.Newer):
		m.form.HistoryNewer()
		return m, nil
	}
	return m, m.form.Update(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.lab.Unmount()
	return m, tea.Quit
}

// copyName puts the most relevant fetched name on the clipboard.
func (m *Model) copyName() {
	user := m.lab.Manual.Data()
	if user == nil {
		user = m.lab.Auto.Data()
	}
	if user == nil {
		m.notice = "Nothing to copy"
		return
	}
	if err := m.copyText(user.String()); err != nil {
		log.Printf("[tui] clipboard: %v", err)
		m.notice = "Clipboard unavailable"
		return
	}
	m.notice = "Copied " + user.String()
}

// fetch turns requests into commands that run off the event loop and
// report back as loader.Result messages.
func (m Model) fetch(reqs []loader.Request) tea.Cmd {
	if len(reqs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, req := range reqs {
		req := req
		cmds = append(cmds, func() tea.Msg {
			return loader.Fetch(m.fetcher, req)
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) setWidths(total int) {
	inner := max(total-8, 10) // App padding + section border and padding
	for _, w := range []widget.Widget{m.counter, m.auto, m.manual, m.device, m.form} {
		w.SetWidth(inner)
	}
	m.help.Width = total
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	section := m.styles.Section
	if m.width > 0 {
		section = section.Width(max(m.width-6, 10))
	}

	formBlock := m.manual.View()
	if m.form.Focused() {
		formBlock = m.form.View() + "\n" + formBlock
	} else {
		formBlock = m.styles.Muted.Render("press tab to enter a URL") + "\n" + formBlock
	}

	parts := []string{
		m.styles.Title.Render("Hooks Lessons 🎣") + "  " + m.device.View(),
		section.Render(m.counter.View()),
		section.Render(m.auto.View()),
		section.Render(formBlock),
	}
	if m.notice != "" {
		parts = append(parts, m.styles.Success.Render(m.notice))
	}
	parts = append(parts, m.help.View(m.keys))

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
