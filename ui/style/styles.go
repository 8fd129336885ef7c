package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Layout
	App     lipgloss.Style
	Title   lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style

	// Counter
	CounterValue lipgloss.Style
	CounterBadge lipgloss.Style

	// Loader
	UserName lipgloss.Style
	Loading  lipgloss.Style

	// Viewport classes
	ClassMobile  lipgloss.Style
	ClassTablet  lipgloss.Style
	ClassDesktop lipgloss.Style
	ClassUnknown lipgloss.Style

	// Input
	InputPrompt lipgloss.Style
	InputText   lipgloss.Style

	// Misc
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		// Layout - minimal borders, let content breathe
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			Bold(true),
		Section: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		CounterValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),
		CounterBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Magenta
			Bold(true),

		UserName: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		Loading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")), // Muted yellow

		ClassMobile: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")),
		ClassTablet: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")),
		ClassDesktop: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")),
		ClassUnknown: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")), // Gray

		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		InputText: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")),
	}
}
