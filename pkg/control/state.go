package control

import (
	"fmt"

	"github.com/go-drift/forms/pkg/theme"
)

// State is the runtime interaction state of a control. A control is always
// in exactly one state; the bit values exist so that style-authoring calls
// can target several states at once via [StateSelector], never so that a
// control can be in two states simultaneously.
type State uint8

const (
	// StateNormal is an enabled but inactive control.
	StateNormal State = 0x01
	// StateFocus is a control currently holding focus.
	StateFocus State = 0x02
	// StateActive is a control being acted on, e.g. through a touch press.
	StateActive State = 0x04
	// StateDisabled is a control that cannot be interacted with.
	StateDisabled State = 0x08
)

// StateSelector is a bitwise union of states used to target style-authoring
// calls across several states at once. A StateSelector is never a valid
// runtime state; [Control.SetState] takes a State and rejects composites.
type StateSelector uint8

// StateAll selects every state.
const StateAll StateSelector = StateSelector(StateNormal | StateFocus | StateActive | StateDisabled)

// selectorOrder fixes the order selected states are written in.
var selectorOrder = [...]State{StateNormal, StateFocus, StateActive, StateDisabled}

// IsValid returns true if the state is exactly one of the four state bits.
func (s State) IsValid() bool {
	switch s {
	case StateNormal, StateFocus, StateActive, StateDisabled:
		return true
	}
	return false
}

// Select converts the state into a selector targeting only that state.
func (s State) Select() StateSelector {
	return StateSelector(s)
}

// OverlayType returns the theme overlay the state resolves to. The mapping
// is a pure function of state: each state maps to its own overlay, and
// anything invalid resolves to the normal overlay.
func (s State) OverlayType() theme.OverlayType {
	switch s {
	case StateFocus:
		return theme.OverlayFocus
	case StateActive:
		return theme.OverlayActive
	case StateDisabled:
		return theme.OverlayDisabled
	default:
		return theme.OverlayNormal
	}
}

func (s State) String() string {
	switch s {
	case StateNormal:
		return "NORMAL"
	case StateFocus:
		return "FOCUS"
	case StateActive:
		return "ACTIVE"
	case StateDisabled:
		return "DISABLED"
	default:
		return fmt.Sprintf("State(%#x)", uint8(s))
	}
}

// StateFromString parses a state name as it appears in theme descriptions.
// It returns false for anything that is not one of the four state names.
func StateFromString(name string) (State, bool) {
	switch name {
	case "NORMAL":
		return StateNormal, true
	case "FOCUS":
		return StateFocus, true
	case "ACTIVE":
		return StateActive, true
	case "DISABLED":
		return StateDisabled, true
	}
	return 0, false
}

// Has returns true if the selector includes the given state.
func (sel StateSelector) Has(s State) bool {
	return sel&StateSelector(s) != 0
}

// States returns the single-bit states the selector targets, in the fixed
// order normal, focus, active, disabled.
func (sel StateSelector) States() []State {
	var out []State
	for _, s := range selectorOrder {
		if sel.Has(s) {
			out = append(out, s)
		}
	}
	return out
}
