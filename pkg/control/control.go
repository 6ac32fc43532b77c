package control

import (
	"github.com/go-drift/forms/pkg/errors"
	"github.com/go-drift/forms/pkg/events"
	"github.com/go-drift/forms/pkg/graphics"
	"github.com/go-drift/forms/pkg/theme"
)

// Control is the state/style/animation/event core of one UI control
// instance. Concrete control types embed or wrap it and add their own
// content, input policy and value semantics.
//
// A Control is not safe for concurrent use; all access happens on the
// engine's update goroutine (see the package documentation for the
// per-frame ordering contract).
type Control struct {
	id    string
	state State

	bounds     graphics.Rect // position and desired size, relative to parent, pre-clip
	clipBounds graphics.Rect // bounds after intersecting with the parent clip, parent-relative
	textBounds graphics.Rect // content area for text alignment, pre-clip
	clip       graphics.Rect // content clip in absolute coordinates

	lastParentClip graphics.Rect
	resolvedOnce   bool

	dirty   bool
	repaint bool

	consumeTouch bool

	style           *theme.Style
	styleOverridden bool

	opacity   float64 // live render opacity, seeded from the current overlay
	animating uint8   // in-flight animation property bits

	listeners events.Registry
}

// New creates a control with the given id referencing the shared style.
// A nil style falls back to [theme.DefaultStyle].
func New(id string, style *theme.Style) *Control {
	if style == nil {
		style = theme.DefaultStyle()
	}
	c := &Control{
		id:           id,
		state:        StateNormal,
		style:        style,
		consumeTouch: true,
		dirty:        true,
	}
	c.opacity = style.Overlay(theme.OverlayNormal).Opacity
	return c
}

// ID returns the control's identifier string.
func (c *Control) ID() string {
	return c.id
}

// State returns the control's current runtime state.
func (c *Control) State() State {
	return c.state
}

// SetState changes the control's runtime state. The state must be exactly
// one state bit; composite selectors are valid only for style-authoring
// calls, and passing one here is a usage error.
//
// Any state is reachable from any other. The transition marks the control
// dirty so overlay selection and geometry re-resolve before the next read.
func (c *Control) SetState(s State) {
	if !s.IsValid() {
		errors.Usagef("control.SetState", "state must be a single state bit, got %#x", uint8(s))
	}
	if c.state == s {
		return
	}
	c.state = s
	if c.animating&animateOpacityBit == 0 {
		c.opacity = c.overlayForState(s).Opacity
	}
	c.markDirty()
}

// OverlayType returns the theme overlay used to render the control in its
// current state. The result is a pure function of state.
func (c *Control) OverlayType() theme.OverlayType {
	return c.state.OverlayType()
}

// CurrentOverlay returns the resolved overlay record for the control's
// current state. The renderer reads skin, cursor and text attributes from
// it; callers must not mutate it.
func (c *Control) CurrentOverlay() *theme.Overlay {
	return c.style.Overlay(c.state.OverlayType())
}

// Disable puts the control into the disabled state, regardless of its
// prior state.
func (c *Control) Disable() {
	c.SetState(StateDisabled)
}

// Enable returns a disabled control to the normal state.
func (c *Control) Enable() {
	if c.state == StateDisabled {
		c.SetState(StateNormal)
	}
}

// IsEnabled returns whether the control can be interacted with.
func (c *Control) IsEnabled() bool {
	return c.state != StateDisabled
}

// SetConsumeTouchEvents sets whether the control consumes touch events,
// preventing them from propagating past it.
func (c *Control) SetConsumeTouchEvents(consume bool) {
	c.consumeTouch = consume
}

// ConsumeTouchEvents returns whether the control consumes touch events.
func (c *Control) ConsumeTouchEvents() bool {
	return c.consumeTouch
}

// SetStyle replaces the control's style reference with another shared
// style, discarding any per-instance overrides.
func (c *Control) SetStyle(style *theme.Style) {
	if style == nil {
		style = theme.DefaultStyle()
	}
	c.style = style
	c.styleOverridden = false
	if c.animating&animateOpacityBit == 0 {
		c.opacity = c.overlayForState(c.state).Opacity
	}
	c.markDirty()
}

// Style returns the control's active style: the shared style, or the
// private copy once any per-state setter has run. Callers must treat the
// result as read-only.
func (c *Control) Style() *theme.Style {
	return c.style
}

// StyleOverridden returns whether the control owns a private style copy.
func (c *Control) StyleOverridden() bool {
	return c.styleOverridden
}

// AddListener registers a listener for every event type bit set in flags.
// Registering the same listener twice for a type does not double-fire it.
func (c *Control) AddListener(listener events.Listener, flags events.Type) {
	c.listeners.Add(listener, flags)
}

// RemoveListener deregisters a listener from every event type bit set in
// flags. Callers own listener lifetime and must deregister before
// discarding a listener.
func (c *Control) RemoveListener(listener events.Listener, flags events.Type) {
	c.listeners.Remove(listener, flags)
}

// NotifyListeners dispatches an event of exactly one type to the listeners
// registered for it, in registration order. Higher-level control logic
// calls this for value and text changes; the default touch policy calls it
// for press, release and click.
func (c *Control) NotifyListeners(event events.Type) {
	if !event.IsSingle() {
		errors.Usagef("control.NotifyListeners", "event must be a single type bit, got %#x", int(event))
	}
	c.listeners.Notify(c, event)
}

// IsDirty returns whether derived geometry must be recomputed. The layout
// pass polls this to decide whether to call [Control.Update].
func (c *Control) IsDirty() bool {
	return c.dirty
}

// NeedsRepaint returns whether the control must be redrawn, either because
// geometry changed or because a repaint-only attribute (colors, regions,
// opacity) changed. The render pass clears it via [Control.Repainted].
func (c *Control) NeedsRepaint() bool {
	return c.dirty || c.repaint
}

// Repainted clears the repaint flag after the render pass has drawn the
// control.
func (c *Control) Repainted() {
	c.repaint = false
}

// markDirty flags derived geometry as stale.
func (c *Control) markDirty() {
	c.dirty = true
}

// markRepaint flags the control for redraw without geometry recomputation.
func (c *Control) markRepaint() {
	c.repaint = true
}

// overlayForState resolves the overlay record for a single-bit state from
// whichever style is active.
func (c *Control) overlayForState(s State) *theme.Overlay {
	return c.style.Overlay(s.OverlayType())
}
