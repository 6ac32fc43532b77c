package control_test

import (
	"testing"

	"github.com/go-drift/forms/pkg/control"
	"github.com/go-drift/forms/pkg/events"
	"github.com/go-drift/forms/pkg/graphics"
)

func newResolvedButton(t *testing.T) *control.Control {
	t.Helper()
	c := control.New("button", nil)
	c.SetBounds(graphics.RectFromLTWH(10, 10, 100, 50))
	c.Update(graphics.RectFromLTWH(0, 0, 200, 200))
	return c
}

func touch(phase events.TouchPhase, x, y float64) events.Touch {
	return events.Touch{Phase: phase, X: x, Y: y}
}

func TestControl_HandleTouchPress(t *testing.T) {
	c := newResolvedButton(t)
	rec := &recorder{}
	c.AddListener(rec, events.AllTypes)

	if !c.HandleTouch(touch(events.TouchPress, 50, 30)) {
		t.Fatal("press inside bounds should be consumed")
	}
	if c.State() != control.StateActive {
		t.Errorf("state = %v, want active", c.State())
	}
	if len(rec.types) != 1 || rec.types[0] != events.Press {
		t.Errorf("events = %v, want [press]", rec.types)
	}
}

func TestControl_HandleTouchPressOutside(t *testing.T) {
	c := newResolvedButton(t)

	if c.HandleTouch(touch(events.TouchPress, 5, 5)) {
		t.Error("press outside bounds should not be consumed")
	}
	if c.State() != control.StateNormal {
		t.Errorf("state = %v, want normal", c.State())
	}
}

func TestControl_HandleTouchClick(t *testing.T) {
	c := newResolvedButton(t)
	rec := &recorder{}
	c.AddListener(rec, events.AllTypes)

	c.HandleTouch(touch(events.TouchPress, 50, 30))
	if !c.HandleTouch(touch(events.TouchRelease, 50, 30)) {
		t.Fatal("release while active should be consumed")
	}

	if c.State() != control.StateFocus {
		t.Errorf("state = %v, want focus after click", c.State())
	}
	want := []events.Type{events.Press, events.Release, events.Click}
	if len(rec.types) != len(want) {
		t.Fatalf("events = %v, want %v", rec.types, want)
	}
	for i := range want {
		if rec.types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, rec.types[i], want[i])
		}
	}
}

func TestControl_HandleTouchReleaseOutside(t *testing.T) {
	c := newResolvedButton(t)
	rec := &recorder{}
	c.AddListener(rec, events.AllTypes)

	c.HandleTouch(touch(events.TouchPress, 50, 30))
	c.HandleTouch(touch(events.TouchRelease, 300, 300))

	if c.State() != control.StateNormal {
		t.Errorf("state = %v, want normal after dragging off", c.State())
	}
	for _, typ := range rec.types {
		if typ == events.Click {
			t.Error("release outside bounds must not raise a click")
		}
	}
}

func TestControl_HandleTouchReleaseWithoutPress(t *testing.T) {
	c := newResolvedButton(t)

	if c.HandleTouch(touch(events.TouchRelease, 50, 30)) {
		t.Error("release on an inactive control should not be consumed")
	}
	if c.State() != control.StateNormal {
		t.Errorf("state = %v, want normal", c.State())
	}
}

func TestControl_HandleTouchDisabled(t *testing.T) {
	c := newResolvedButton(t)
	rec := &recorder{}
	c.AddListener(rec, events.AllTypes)
	c.Disable()

	if c.HandleTouch(touch(events.TouchPress, 50, 30)) {
		t.Error("disabled control should not consume input")
	}
	if c.State() != control.StateDisabled {
		t.Errorf("state = %v, want disabled", c.State())
	}
	if len(rec.types) != 0 {
		t.Errorf("disabled control raised events %v", rec.types)
	}
}

func TestControl_HandleKeyDefault(t *testing.T) {
	c := newResolvedButton(t)

	if c.HandleKey(events.Key{Phase: events.KeyPress, Key: 'a'}) {
		t.Error("base control should not consume keys")
	}
}

func TestControl_HandleTouchPassThrough(t *testing.T) {
	c := newResolvedButton(t)
	c.SetConsumeTouchEvents(false)

	if c.HandleTouch(touch(events.TouchPress, 50, 30)) {
		t.Error("pass-through control should report the event unconsumed")
	}
	// It still transitions so overlays render the active look.
	if c.State() != control.StateActive {
		t.Errorf("state = %v, want active", c.State())
	}
}
