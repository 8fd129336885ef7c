package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/hooklab/ui/style"
	"github.com/drake/hooklab/viewport"
)

// Device renders the current viewport class.
type Device struct {
	classifier *viewport.Classifier
	styles     style.Styles
	width      int
}

// NewDevice binds a widget to c.
func NewDevice(c *viewport.Classifier, styles style.Styles) *Device {
	return &Device{classifier: c, styles: styles}
}

// View implements Widget.
func (w *Device) View() string {
	class := w.classifier.Class()
	view := w.styles.Label.Render("Device ") + w.classStyle(class).Render(class.String())
	return lipgloss.NewStyle().MaxWidth(w.width).Render(view)
}

func (w *Device) classStyle(c viewport.Class) lipgloss.Style {
	switch c {
	case viewport.Mobile:
		return w.styles.ClassMobile
	case viewport.Tablet:
		return w.styles.ClassTablet
	case viewport.Desktop:
		return w.styles.ClassDesktop
	default:
		return w.styles.ClassUnknown
	}
}

// SetWidth implements Widget.
func (w *Device) SetWidth(width int) {
	w.width = width
}
