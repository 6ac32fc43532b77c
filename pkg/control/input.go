package control

import "github.com/go-drift/forms/pkg/events"

// HandleTouch applies the default touch transition policy and returns
// whether the control consumed the event. Touch coordinates are in the
// parent's coordinate space, the same space as the control's bounds.
//
// Policy: a press inside the clipped bounds makes the control active and
// raises a press event. A release while active raises a release event and
// returns the control to focus (release inside the bounds, which also
// raises a click event) or normal (release outside). Disabled controls
// ignore input entirely. Concrete control types with richer policies wrap
// this or replace it.
func (c *Control) HandleTouch(t events.Touch) bool {
	if c.state == StateDisabled {
		return false
	}

	point := t.Point()
	switch t.Phase {
	case events.TouchPress:
		if !c.clipBounds.Contains(point) {
			return false
		}
		c.SetState(StateActive)
		c.NotifyListeners(events.Press)
		return c.consumeTouch

	case events.TouchRelease:
		if c.state != StateActive {
			return false
		}
		c.NotifyListeners(events.Release)
		if c.clipBounds.Contains(point) {
			c.SetState(StateFocus)
			c.NotifyListeners(events.Click)
		} else {
			c.SetState(StateNormal)
		}
		return c.consumeTouch
	}
	return false
}

// HandleKey applies the default key policy and returns whether the control
// consumed the event. The base control consumes no keys; concrete control
// types that react to keys (text fields, sliders) replace this, and must
// keep ignoring input while disabled.
func (c *Control) HandleKey(events.Key) bool {
	return false
}
