package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/hooklab/lab"
	"github.com/drake/hooklab/loader"
)

// BubbleTeaUI runs the lab as a full-screen Bubble Tea program.
type BubbleTeaUI struct {
	program *tea.Program
	lab     *lab.Lab
}

// NewBubbleTeaUI creates a UI around l.
func NewBubbleTeaUI(l *lab.Lab, f loader.Fetcher, cellWidth int) *BubbleTeaUI {
	model := NewModel(l, f, cellWidth)
	return &BubbleTeaUI{
		lab: l,
		program: tea.NewProgram(
			model,
			tea.WithAltScreen(),
		),
	}
}

// Run starts the TUI and blocks until exit. The lab is always unmounted
// on return, so the resize subscription never outlives the program.
func (b *BubbleTeaUI) Run() error {
	defer b.lab.Unmount()
	_, err := b.program.Run()
	return err
}
