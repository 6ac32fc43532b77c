package control

import "github.com/go-drift/forms/pkg/graphics"

// SetPosition moves the control relative to its parent, preserving its
// size.
func (c *Control) SetPosition(x, y float64) {
	size := c.bounds.Size()
	c.bounds = graphics.RectFromLTWH(x, y, size.Width, size.Height)
	c.markDirty()
}

// SetSize sets the control's desired size, including border and padding,
// before clipping.
func (c *Control) SetSize(width, height float64) {
	c.bounds = graphics.RectFromLTWH(c.bounds.Left, c.bounds.Top, width, height)
	c.markDirty()
}

// SetBounds sets the control's bounds relative to its parent, including
// border and padding, before clipping.
func (c *Control) SetBounds(bounds graphics.Rect) {
	c.bounds = bounds
	c.markDirty()
}

// Bounds returns the control's bounds relative to its parent, pre-clip.
func (c *Control) Bounds() graphics.Rect {
	return c.bounds
}

// X returns the x coordinate of the control's bounds.
func (c *Control) X() float64 { return c.bounds.Left }

// Y returns the y coordinate of the control's bounds.
func (c *Control) Y() float64 { return c.bounds.Top }

// Width returns the width of the control's bounds.
func (c *Control) Width() float64 { return c.bounds.Width() }

// Height returns the height of the control's bounds.
func (c *Control) Height() float64 { return c.bounds.Height() }

// ClipBounds returns the control's bounds relative to its parent after
// clipping. Valid after [Control.Update] has run for the frame.
func (c *Control) ClipBounds() graphics.Rect {
	return c.clipBounds
}

// Clip returns the control's content area in absolute coordinates after
// clipping, handed to the renderer as its scissor region. Valid after
// [Control.Update] has run for the frame.
func (c *Control) Clip() graphics.Rect {
	return c.clip
}

// TextBounds returns the content area used for text alignment: the bounds
// inset by the current state's border and padding, independent of clipping.
// Valid after [Control.Update] has run for the frame.
func (c *Control) TextBounds() graphics.Rect {
	return c.textBounds
}

// Update recomputes the control's derived geometry against the parent's
// clip rectangle. The layout pass calls it whenever [Control.IsDirty]
// reports true, and it is a no-op when the control is clean and the parent
// clip is unchanged.
//
// Derivation order: clip bounds (intersection of the bounds with the
// parent clip; an empty intersection leaves the control fully clipped but
// logically present), then the absolute clip, then the text bounds (bounds
// inset by the current state's border and padding).
func (c *Control) Update(parentClip graphics.Rect) {
	if !c.dirty && c.resolvedOnce && parentClip == c.lastParentClip {
		return
	}

	absolute := c.bounds.Translate(parentClip.Left, parentClip.Top)
	clipped := absolute.Intersect(parentClip)
	c.clip = clipped
	if clipped.IsEmpty() {
		c.clipBounds = graphics.Rect{}
	} else {
		c.clipBounds = clipped.Translate(-parentClip.Left, -parentClip.Top)
	}

	overlay := c.CurrentOverlay()
	c.textBounds = c.bounds.Inset(overlay.Border).Inset(overlay.Padding)

	c.lastParentClip = parentClip
	c.resolvedOnce = true
	c.dirty = false
	c.repaint = true
}
