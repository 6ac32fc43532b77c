package animation

// Property identifies an animatable property of a control.
type Property int

const (
	// PropertyPosition animates both position coordinates. Components: x, y.
	PropertyPosition Property = 1
	// PropertyPositionX animates the x coordinate. Components: x.
	PropertyPositionX Property = 2
	// PropertyPositionY animates the y coordinate. Components: y.
	PropertyPositionY Property = 3
	// PropertySize animates both size dimensions. Components: width, height.
	PropertySize Property = 4
	// PropertySizeWidth animates the width. Components: width.
	PropertySizeWidth Property = 5
	// PropertySizeHeight animates the height. Components: height.
	PropertySizeHeight Property = 6
	// PropertyOpacity animates the render opacity. Components: opacity.
	PropertyOpacity Property = 7
)

func (p Property) String() string {
	switch p {
	case PropertyPosition:
		return "position"
	case PropertyPositionX:
		return "position_x"
	case PropertyPositionY:
		return "position_y"
	case PropertySize:
		return "size"
	case PropertySizeWidth:
		return "size_width"
	case PropertySizeHeight:
		return "size_height"
	case PropertyOpacity:
		return "opacity"
	default:
		return "invalid"
	}
}

// Value carries the numeric components of one property between the
// animation engine and a target: two floats for position or size, one for
// the split and opacity properties.
type Value struct {
	components []float64
}

// NewValue creates a value with the given number of components.
func NewValue(componentCount int) *Value {
	return &Value{components: make([]float64, componentCount)}
}

// ComponentCount returns the number of components in the value.
func (v *Value) ComponentCount() int {
	return len(v.components)
}

// Float returns the component at index i.
func (v *Value) Float(i int) float64 {
	return v.components[i]
}

// SetFloat sets the component at index i.
func (v *Value) SetFloat(i int, f float64) {
	v.components[i] = f
}

// Target is the capability a control exposes to the animation engine.
//
// Overlapping properties (for example PropertyPosition and
// PropertyPositionX both writing x) are not coordinated: within one frame's
// animation pass the last write wins. Callers that need consistent results
// should not animate overlapping properties concurrently.
type Target interface {
	// AnimationComponentCount returns the number of numeric components of
	// the property.
	AnimationComponentCount(p Property) int

	// AnimationValue writes the property's current components into value.
	// Animation engines use this to read start values before animating.
	AnimationValue(p Property, value *Value)

	// SetAnimationValue blends the incoming components into the live
	// property: merged = current*(1-blendWeight) + incoming*blendWeight,
	// applied independently per component. blendWeight must be in [0, 1].
	SetAnimationValue(p Property, value *Value, blendWeight float64)
}
