package graphics

// Insets represents per-edge pixel measurements.
// The theme uses Insets for a control's border, margin and padding.
type Insets struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// UniformInsets returns insets with the same value on every edge.
func UniformInsets(value float64) Insets {
	return Insets{Top: value, Bottom: value, Left: value, Right: value}
}

// Horizontal returns the combined left and right insets.
func (i Insets) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns the combined top and bottom insets.
func (i Insets) Vertical() float64 {
	return i.Top + i.Bottom
}

// Add returns the edge-wise sum of two insets.
func (i Insets) Add(other Insets) Insets {
	return Insets{
		Top:    i.Top + other.Top,
		Bottom: i.Bottom + other.Bottom,
		Left:   i.Left + other.Left,
		Right:  i.Right + other.Right,
	}
}

// IsZero returns true if every edge is zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}
