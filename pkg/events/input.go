package events

import "github.com/go-drift/forms/pkg/graphics"

// TouchPhase identifies a raw touch or mouse contact transition delivered
// by the platform input source.
type TouchPhase int

const (
	// TouchPress is a finger-down or mouse-button-down contact.
	TouchPress TouchPhase = iota
	// TouchRelease is a finger-up or mouse-button-up contact.
	TouchRelease
	// TouchMove is a contact moving while pressed.
	TouchMove
)

func (p TouchPhase) String() string {
	switch p {
	case TouchPress:
		return "press"
	case TouchRelease:
		return "release"
	case TouchMove:
		return "move"
	default:
		return "invalid"
	}
}

// Touch is one raw touch sample: a phase, screen coordinates, and the
// contact index distinguishing simultaneous touches (first contact is 0).
type Touch struct {
	Phase        TouchPhase
	X            float64
	Y            float64
	ContactIndex uint
}

// Point returns the touch coordinates as an offset.
func (t Touch) Point() graphics.Offset {
	return graphics.Offset{X: t.X, Y: t.Y}
}

// KeyPhase identifies a raw keyboard transition.
type KeyPhase int

const (
	// KeyPress is a key-down transition; Key holds the key code.
	KeyPress KeyPhase = iota
	// KeyRelease is a key-up transition; Key holds the key code.
	KeyRelease
	// KeyChar is a character input event; Key holds the unicode value.
	KeyChar
)

// Key is one raw keyboard sample.
type Key struct {
	Phase KeyPhase
	Key   int
}
