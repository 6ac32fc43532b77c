// Package events defines the event types raised by UI controls, the listener
// capability interface, and the registry that maps event types to ordered
// listener lists.
//
// Event type constants are single bits so that one registration call can
// cover several types at once; dispatch is always for exactly one type.
package events

import "fmt"

// Type identifies a kind of control event. Values are single bits; OR them
// together when registering a listener for several kinds at once.
type Type int

const (
	// Press is a mouse-down or touch-press event.
	Press Type = 0x01

	// Release is a mouse-up or touch-release event.
	Release Type = 0x02

	// Click is raised after consecutive press and release events take
	// place within the bounds of a control.
	Click Type = 0x04

	// ValueChanged is raised when the value of a slider, check box, or
	// radio button changes.
	ValueChanged Type = 0x08

	// TextChanged is raised when the contents of a text box are modified.
	TextChanged Type = 0x10

	// AllTypes is the union of every event type.
	AllTypes = Press | Release | Click | ValueChanged | TextChanged
)

// allTypes lists every single-bit type in dispatch-stable order.
var allTypes = [...]Type{Press, Release, Click, ValueChanged, TextChanged}

// IsSingle returns true if the type is exactly one event bit.
func (t Type) IsSingle() bool {
	return t != 0 && t&(t-1) == 0 && t&AllTypes == t
}

func (t Type) String() string {
	switch t {
	case Press:
		return "press"
	case Release:
		return "release"
	case Click:
		return "click"
	case ValueChanged:
		return "value_changed"
	case TextChanged:
		return "text_changed"
	default:
		return fmt.Sprintf("Type(%#x)", int(t))
	}
}
