package control

import (
	"golang.org/x/image/font"

	"github.com/go-drift/forms/pkg/errors"
	"github.com/go-drift/forms/pkg/graphics"
	"github.com/go-drift/forms/pkg/theme"
)

// Per-state style accessors.
//
// Every setter takes a [StateSelector] and writes the value into each
// selected state's record; pass [StateAll] to author all states at once.
// Every getter takes exactly one [State] and resolves the value for that
// state from whichever style is active, without the caller needing to know
// whether an override exists. Passing a composite mask to a getter is a
// usage error: a multi-bit state names no single record.
//
// The first setter call on a control clones the shared style into a
// private copy (copy-on-write); the clone happens once and is cached.

// overrideStyle ensures the control owns a private copy of its style so it
// can be mutated without affecting other controls, cloning at most once.
func (c *Control) overrideStyle() *theme.Style {
	if !c.styleOverridden {
		c.style = c.style.Clone()
		c.styleOverridden = true
	}
	return c.style
}

// writeOverlays applies write to every overlay record selected.
func (c *Control) writeOverlays(sel StateSelector, write func(*theme.Overlay)) {
	style := c.overrideStyle()
	for _, s := range sel.States() {
		write(style.Overlay(s.OverlayType()))
	}
}

// readOverlay resolves the overlay for a getter, rejecting composite masks.
func (c *Control) readOverlay(op string, state State) *theme.Overlay {
	if !state.IsValid() {
		errors.Usagef(op, "state must be a single state bit, got %#x", uint8(state))
	}
	return c.style.Overlay(state.OverlayType())
}

// SetBorder sets the widths of the control's skin border for the selected
// states. Border affects geometry, so the control is marked dirty.
func (c *Control) SetBorder(border graphics.Insets, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.Border = border })
	c.markDirty()
}

// Border returns the control's border widths for the given state.
func (c *Control) Border(state State) graphics.Insets {
	return c.readOverlay("control.Border", state).Border
}

// SetSkinRegion sets the texture region of the control's skin for the
// selected states.
func (c *Control) SetSkinRegion(region graphics.Rect, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.SkinRegion = region })
	c.markRepaint()
}

// SkinRegion returns the texture region of the control's skin for the
// given state.
func (c *Control) SkinRegion(state State) graphics.Rect {
	return c.readOverlay("control.SkinRegion", state).SkinRegion
}

// SetSkinColor sets the blend color of the control's skin for the selected
// states.
func (c *Control) SetSkinColor(color graphics.Color, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.SkinColor = color })
	c.markRepaint()
}

// SkinColor returns the blend color of the control's skin for the given
// state.
func (c *Control) SkinColor(state State) graphics.Color {
	return c.readOverlay("control.SkinColor", state).SkinColor
}

// SetMargin sets the control's margin. Margin is independent of state, so
// there is no selector; it affects layout geometry.
func (c *Control) SetMargin(margin graphics.Insets) {
	c.overrideStyle().Margin = margin
	c.markDirty()
}

// Margin returns the control's margin.
func (c *Control) Margin() graphics.Insets {
	return c.style.Margin
}

// SetPadding sets the control's padding for the selected states. Padding
// affects geometry, so the control is marked dirty.
func (c *Control) SetPadding(padding graphics.Insets, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.Padding = padding })
	c.markDirty()
}

// Padding returns the control's padding for the given state.
func (c *Control) Padding(state State) graphics.Insets {
	return c.readOverlay("control.Padding", state).Padding
}

// SetImageRegion sets the texture region of a named image used by the
// control for the selected states.
func (c *Control) SetImageRegion(id string, region graphics.Rect, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) {
		attrs, _ := o.Image(id)
		attrs.Region = region
		o.SetImage(id, attrs)
	})
	c.markRepaint()
}

// ImageRegion returns the texture region of a named image for the given
// state. A state with no record for the image falls back to the normal
// state; an image unknown to both is a usage error.
func (c *Control) ImageRegion(id string, state State) graphics.Rect {
	return c.imageAttributes("control.ImageRegion", id, state).Region
}

// SetImageColor sets the blend color of a named image used by the control
// for the selected states.
func (c *Control) SetImageColor(id string, color graphics.Color, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) {
		attrs, _ := o.Image(id)
		attrs.Color = color
		o.SetImage(id, attrs)
	})
	c.markRepaint()
}

// ImageColor returns the blend color of a named image for the given state,
// with the same fallback rules as [Control.ImageRegion].
func (c *Control) ImageColor(id string, state State) graphics.Color {
	return c.imageAttributes("control.ImageColor", id, state).Color
}

// imageAttributes resolves a named image record, falling back to the
// normal state when the requested state has none authored.
func (c *Control) imageAttributes(op, id string, state State) theme.ImageAttributes {
	o := c.readOverlay(op, state)
	if attrs, ok := o.Image(id); ok {
		return attrs
	}
	if attrs, ok := c.style.Overlay(theme.OverlayNormal).Image(id); ok {
		return attrs
	}
	errors.Usagef(op, "control %q has no image %q", c.id, id)
	return theme.ImageAttributes{}
}

// SetCursorRegion sets the texture region of the control's cursor for the
// selected states.
func (c *Control) SetCursorRegion(region graphics.Rect, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.CursorRegion = region })
	c.markRepaint()
}

// CursorRegion returns the texture region of the control's cursor for the
// given state.
func (c *Control) CursorRegion(state State) graphics.Rect {
	return c.readOverlay("control.CursorRegion", state).CursorRegion
}

// SetCursorColor sets the blend color of the control's cursor for the
// selected states.
func (c *Control) SetCursorColor(color graphics.Color, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.CursorColor = color })
	c.markRepaint()
}

// CursorColor returns the blend color of the control's cursor for the
// given state.
func (c *Control) CursorColor(state State) graphics.Color {
	return c.readOverlay("control.CursorColor", state).CursorColor
}

// SetFont sets the font used by the control for the selected states.
func (c *Control) SetFont(face font.Face, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.Font = face })
	c.markRepaint()
}

// Font returns the font used by the control for the given state.
func (c *Control) Font(state State) font.Face {
	return c.readOverlay("control.Font", state).Font
}

// SetFontSize sets the control's font size for the selected states.
func (c *Control) SetFontSize(size int, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.FontSize = size })
	c.markRepaint()
}

// FontSize returns the control's font size for the given state.
func (c *Control) FontSize(state State) int {
	return c.readOverlay("control.FontSize", state).FontSize
}

// SetTextColor sets the control's text color for the selected states.
func (c *Control) SetTextColor(color graphics.Color, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.TextColor = color })
	c.markRepaint()
}

// TextColor returns the control's text color for the given state.
func (c *Control) TextColor(state State) graphics.Color {
	return c.readOverlay("control.TextColor", state).TextColor
}

// SetTextAlign sets the control's text alignment for the selected states.
func (c *Control) SetTextAlign(align graphics.Align, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.TextAlign = align })
	c.markRepaint()
}

// TextAlign returns the control's text alignment for the given state.
func (c *Control) TextAlign(state State) graphics.Align {
	return c.readOverlay("control.TextAlign", state).TextAlign
}

// SetTextRightToLeft sets whether text is drawn right to left for the
// selected states.
func (c *Control) SetTextRightToLeft(rightToLeft bool, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.TextRightToLeft = rightToLeft })
	c.markRepaint()
}

// TextRightToLeft returns whether text is drawn right to left for the
// given state.
func (c *Control) TextRightToLeft(state State) bool {
	return c.readOverlay("control.TextRightToLeft", state).TextRightToLeft
}

// SetOpacity sets the control's themed opacity for the selected states.
// When the selection covers the current state and no opacity animation is
// in flight, the live render opacity follows immediately.
func (c *Control) SetOpacity(opacity float64, sel StateSelector) {
	c.writeOverlays(sel, func(o *theme.Overlay) { o.Opacity = opacity })
	if sel.Has(c.state) && c.animating&animateOpacityBit == 0 {
		c.opacity = opacity
	}
	c.markRepaint()
}

// Opacity returns the control's themed opacity for the given state.
func (c *Control) Opacity(state State) float64 {
	return c.readOverlay("control.Opacity", state).Opacity
}

// RenderOpacity returns the live opacity used by the render pass: the
// current state's themed opacity, or the blended value while an opacity
// animation is in flight.
func (c *Control) RenderOpacity() float64 {
	return c.opacity
}
