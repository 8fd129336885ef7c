// Package viewport classifies the display width into device buckets.
package viewport

// Class is a named width bucket.
type Class int

const (
	Unknown Class = iota // Not yet measured
	Mobile
	Tablet
	Desktop
)

// String returns the bucket label.
func (c Class) String() string {
	switch c {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Breakpoints are the inclusive upper widths of the mobile and tablet buckets.
type Breakpoints struct {
	Mobile int
	Tablet int
}

// DefaultBreakpoints returns the standard 480/768 pixel breakpoints.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Mobile: 480, Tablet: 768}
}

// Classify maps a width to its bucket. Boundaries belong to the lower bucket.
func Classify(width int, bp Breakpoints) Class {
	switch {
	case width <= bp.Mobile:
		return Mobile
	case width <= bp.Tablet:
		return Tablet
	default:
		return Desktop
	}
}
