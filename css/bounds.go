package css

import "fmt"

// Bounds is an axis-aligned rectangle in CSS pixels.
type Bounds struct {
	Left, Top, Width, Height float64
}

// Add returns b moved by (x, y) and grown by (w, h).
func (b Bounds) Add(x, y, w, h float64) Bounds {
	return Bounds{Left: b.Left + x, Top: b.Top + y, Width: b.Width + w, Height: b.Height + h}
}

// Right returns the right edge of b.
func (b Bounds) Right() float64 {
	return b.Left + b.Width
}

// Bottom returns the bottom edge of b.
func (b Bounds) Bottom() float64 {
	return b.Top + b.Height
}

// IsEmpty is true if b does not cover any area.
func (b Bounds) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", b.Left, b.Top, b.Width, b.Height)
}

// FromClientRect translates a viewport-relative client rectangle into document
// space, given the window's scroll offset.
func FromClientRect(rect Bounds, window Bounds) Bounds {
	return Bounds{
		Left:   rect.Left + window.Left,
		Top:    rect.Top + window.Top,
		Width:  rect.Width,
		Height: rect.Height,
	}
}
