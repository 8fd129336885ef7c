// Package widget holds the view halves of the lab primitives. Each widget
// is bound to the state it renders and exposes View.
package widget

// Widget is the interface for layout-aware UI elements.
type Widget interface {
	SetWidth(w int)
	View() string
}
