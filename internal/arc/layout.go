package arc

// DefaultMargin is the gap kept between the stroke or thumb and the widget edge.
const DefaultMargin = 2

// Padding holds the host's padding on each side of the widget.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// Layout is what the host's measure pass supplies once per layout.
type Layout struct {
	BoxWidth, BoxHeight float64
	Padding             Padding

	// StrokeWidth is the widest stroke drawn on the arc.
	StrokeWidth float64

	ThumbWidth, ThumbHeight float64

	Margin float64
}

// Content reduces the layout box by padding and by the room the thumb and
// stroke need on each side, returning the origin offsets and content
// dimensions NewGeometry expects. The height is capped at half the width so
// the fitted arc never exceeds a half circle.
func (l Layout) Content() (dx, dy, width, height float64) {
	dx = max(l.ThumbWidth/2, l.StrokeWidth) + l.Margin
	dy = max(l.ThumbHeight/2, l.StrokeWidth) + l.Margin

	width = l.BoxWidth - 2*dx - l.Padding.Left - l.Padding.Right
	width = max(width, 0)
	height = min(l.BoxHeight-2*dy-l.Padding.Top-l.Padding.Bottom, width/2)
	height = max(height, 0)

	return dx + l.Padding.Left, dy + l.Padding.Top, width, height
}

// Geometry builds the arc geometry for this layout.
func (l Layout) Geometry() Geometry {
	return NewGeometry(l.Content())
}
