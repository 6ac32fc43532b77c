package control

import (
	"github.com/go-drift/forms/pkg/animation"
	"github.com/go-drift/forms/pkg/errors"
)

// Animation blending bits, one per animatable scalar.
const (
	animatePositionXBit  uint8 = 0x01
	animatePositionYBit  uint8 = 0x02
	animateSizeWidthBit  uint8 = 0x04
	animateSizeHeightBit uint8 = 0x08
	animateOpacityBit    uint8 = 0x10
)

// propertyBits maps each animatable property to its blending bits.
func propertyBits(p animation.Property) uint8 {
	switch p {
	case animation.PropertyPosition:
		return animatePositionXBit | animatePositionYBit
	case animation.PropertyPositionX:
		return animatePositionXBit
	case animation.PropertyPositionY:
		return animatePositionYBit
	case animation.PropertySize:
		return animateSizeWidthBit | animateSizeHeightBit
	case animation.PropertySizeWidth:
		return animateSizeWidthBit
	case animation.PropertySizeHeight:
		return animateSizeHeightBit
	case animation.PropertyOpacity:
		return animateOpacityBit
	}
	return 0
}

// AnimationComponentCount implements [animation.Target].
func (c *Control) AnimationComponentCount(p animation.Property) int {
	switch p {
	case animation.PropertyPosition, animation.PropertySize:
		return 2
	case animation.PropertyPositionX, animation.PropertyPositionY,
		animation.PropertySizeWidth, animation.PropertySizeHeight,
		animation.PropertyOpacity:
		return 1
	}
	errors.Usagef("control.AnimationComponentCount", "unknown animation property %d", int(p))
	return 0
}

// AnimationValue implements [animation.Target]: it writes the property's
// current components into value, the read path animation engines use for
// start values.
func (c *Control) AnimationValue(p animation.Property, value *animation.Value) {
	c.checkComponents("control.AnimationValue", p, value)
	switch p {
	case animation.PropertyPosition:
		value.SetFloat(0, c.bounds.Left)
		value.SetFloat(1, c.bounds.Top)
	case animation.PropertyPositionX:
		value.SetFloat(0, c.bounds.Left)
	case animation.PropertyPositionY:
		value.SetFloat(0, c.bounds.Top)
	case animation.PropertySize:
		value.SetFloat(0, c.bounds.Width())
		value.SetFloat(1, c.bounds.Height())
	case animation.PropertySizeWidth:
		value.SetFloat(0, c.bounds.Width())
	case animation.PropertySizeHeight:
		value.SetFloat(0, c.bounds.Height())
	case animation.PropertyOpacity:
		value.SetFloat(0, c.opacity)
	}
}

// SetAnimationValue implements [animation.Target]: it merges the incoming
// components into the live property using weighted accumulation,
//
//	merged = current*(1-blendWeight) + incoming*blendWeight
//
// applied independently per component. Writes to position or size mark the
// control dirty so derived geometry recomputes; opacity writes only mark
// it for repaint.
//
// Writes to overlapping properties (PropertyPosition and PropertyPositionX,
// say) are not coordinated: within one frame's animation pass the last
// write wins.
func (c *Control) SetAnimationValue(p animation.Property, value *animation.Value, blendWeight float64) {
	const op = "control.SetAnimationValue"
	if blendWeight < 0 || blendWeight > 1 {
		errors.Usagef(op, "blend weight must be in [0, 1], got %g", blendWeight)
	}
	c.checkComponents(op, p, value)

	switch p {
	case animation.PropertyPosition:
		c.applyPositionX(value.Float(0), blendWeight)
		c.applyPositionY(value.Float(1), blendWeight)
	case animation.PropertyPositionX:
		c.applyPositionX(value.Float(0), blendWeight)
	case animation.PropertyPositionY:
		c.applyPositionY(value.Float(0), blendWeight)
	case animation.PropertySize:
		c.applySizeWidth(value.Float(0), blendWeight)
		c.applySizeHeight(value.Float(1), blendWeight)
	case animation.PropertySizeWidth:
		c.applySizeWidth(value.Float(0), blendWeight)
	case animation.PropertySizeHeight:
		c.applySizeHeight(value.Float(0), blendWeight)
	case animation.PropertyOpacity:
		c.applyOpacity(value.Float(0), blendWeight)
	}
}

// AnimatingProperty returns whether any of the property's scalar components
// has an in-flight blend recorded since the last [Control.ClearAnimating].
func (c *Control) AnimatingProperty(p animation.Property) bool {
	return c.animating&propertyBits(p) != 0
}

// ClearAnimating clears the property's in-flight bits. The animation engine
// calls this when an animation on the property completes or is cancelled.
func (c *Control) ClearAnimating(p animation.Property) {
	c.animating &^= propertyBits(p)
}

// checkComponents validates that value carries enough components for the
// property.
func (c *Control) checkComponents(op string, p animation.Property, value *animation.Value) {
	need := c.AnimationComponentCount(p)
	if value == nil || value.ComponentCount() < need {
		got := 0
		if value != nil {
			got = value.ComponentCount()
		}
		errors.Usagef(op, "property %s needs %d components, got %d", p, need, got)
	}
}

func (c *Control) applyPositionX(x, blendWeight float64) {
	merged := blend(c.bounds.Left, x, blendWeight)
	width := c.bounds.Width()
	c.bounds.Left = merged
	c.bounds.Right = merged + width
	c.animating |= animatePositionXBit
	c.markDirty()
}

func (c *Control) applyPositionY(y, blendWeight float64) {
	merged := blend(c.bounds.Top, y, blendWeight)
	height := c.bounds.Height()
	c.bounds.Top = merged
	c.bounds.Bottom = merged + height
	c.animating |= animatePositionYBit
	c.markDirty()
}

func (c *Control) applySizeWidth(width, blendWeight float64) {
	merged := blend(c.bounds.Width(), width, blendWeight)
	c.bounds.Right = c.bounds.Left + merged
	c.animating |= animateSizeWidthBit
	c.markDirty()
}

func (c *Control) applySizeHeight(height, blendWeight float64) {
	merged := blend(c.bounds.Height(), height, blendWeight)
	c.bounds.Bottom = c.bounds.Top + merged
	c.animating |= animateSizeHeightBit
	c.markDirty()
}

func (c *Control) applyOpacity(opacity, blendWeight float64) {
	merged := blend(c.opacity, opacity, blendWeight)
	if merged < 0 {
		merged = 0
	} else if merged > 1 {
		merged = 1
	}
	c.opacity = merged
	c.animating |= animateOpacityBit
	c.markRepaint()
}

// blend merges an incoming value into the current one by blend weight.
func blend(current, incoming, weight float64) float64 {
	return current*(1-weight) + incoming*weight
}
