package control_test

import (
	"testing"

	"github.com/go-drift/forms/pkg/control"
	"github.com/go-drift/forms/pkg/graphics"
)

func TestControl_UpdateUnclipped(t *testing.T) {
	c := control.New("button", nil)
	c.SetBounds(graphics.RectFromLTWH(10, 10, 100, 50))
	c.SetBorder(graphics.UniformInsets(2), control.StateAll)
	c.SetPadding(graphics.UniformInsets(3), control.StateAll)

	c.Update(graphics.RectFromLTWH(0, 0, 200, 200))

	if got, want := c.ClipBounds(), graphics.RectFromLTWH(10, 10, 100, 50); got != want {
		t.Errorf("clip bounds = %+v, want %+v", got, want)
	}
	if got, want := c.Clip(), graphics.RectFromLTWH(10, 10, 100, 50); got != want {
		t.Errorf("clip = %+v, want %+v", got, want)
	}
	if got, want := c.TextBounds(), graphics.RectFromLTWH(15, 15, 90, 40); got != want {
		t.Errorf("text bounds = %+v, want %+v", got, want)
	}
	if c.IsDirty() {
		t.Error("Update must clear the dirty flag")
	}
	if !c.NeedsRepaint() {
		t.Error("Update must request a repaint")
	}
}

func TestControl_UpdateClipsAtParentEdge(t *testing.T) {
	c := control.New("button", nil)
	c.SetBounds(graphics.RectFromLTWH(190, 190, 50, 50))

	c.Update(graphics.RectFromLTWH(0, 0, 200, 200))

	got := c.ClipBounds()
	if got.Width() != 10 || got.Height() != 10 {
		t.Errorf("clip bounds = %+v, want 10x10 at (190,190)", got)
	}
	if got.Left != 190 || got.Top != 190 {
		t.Errorf("clip bounds origin = (%v,%v), want (190,190)", got.Left, got.Top)
	}
}

func TestControl_UpdateOffsetParent(t *testing.T) {
	c := control.New("button", nil)
	c.SetBounds(graphics.RectFromLTWH(10, 10, 40, 40))

	// A nested parent whose clip starts at (50, 50): the absolute clip
	// shifts by the parent origin, the parent-relative clip bounds do not.
	c.Update(graphics.RectFromLTWH(50, 50, 100, 100))

	if got, want := c.Clip(), graphics.RectFromLTWH(60, 60, 40, 40); got != want {
		t.Errorf("clip = %+v, want %+v", got, want)
	}
	if got, want := c.ClipBounds(), graphics.RectFromLTWH(10, 10, 40, 40); got != want {
		t.Errorf("clip bounds = %+v, want %+v", got, want)
	}
}

func TestControl_UpdateFullyClipped(t *testing.T) {
	c := control.New("button", nil)
	c.SetBounds(graphics.RectFromLTWH(300, 300, 50, 50))

	c.Update(graphics.RectFromLTWH(0, 0, 200, 200))

	if got := c.ClipBounds(); got != (graphics.Rect{}) {
		t.Errorf("clip bounds = %+v, want empty", got)
	}
	if !c.Clip().IsEmpty() {
		t.Errorf("clip = %+v, want empty", c.Clip())
	}
	if c.IsDirty() {
		t.Error("a fully clipped control still resolves; dirty must clear")
	}
}

func TestControl_UpdateNoOpWhenClean(t *testing.T) {
	c := control.New("button", nil)
	c.SetBounds(graphics.RectFromLTWH(10, 10, 100, 50))
	parent := graphics.RectFromLTWH(0, 0, 200, 200)

	c.Update(parent)
	c.Repainted()

	c.Update(parent)
	if c.NeedsRepaint() {
		t.Error("Update on a clean control with an unchanged parent clip must be a no-op")
	}

	// A changed parent clip forces recomputation even when clean.
	c.Update(graphics.RectFromLTWH(0, 0, 50, 50))
	if !c.NeedsRepaint() {
		t.Error("Update with a new parent clip must recompute")
	}
	if got, want := c.ClipBounds(), graphics.RectFromLTWH(10, 10, 40, 40); got != want {
		t.Errorf("clip bounds = %+v, want %+v", got, want)
	}
}

func TestControl_TextBoundsFollowState(t *testing.T) {
	c := control.New("button", nil)
	c.SetBounds(graphics.RectFromLTWH(0, 0, 100, 100))
	c.SetPadding(graphics.UniformInsets(5), control.StateNormal.Select())
	c.SetPadding(graphics.UniformInsets(10), control.StateActive.Select())
	parent := graphics.RectFromLTWH(0, 0, 200, 200)

	c.Update(parent)
	if got, want := c.TextBounds(), graphics.RectFromLTWH(5, 5, 90, 90); got != want {
		t.Errorf("normal text bounds = %+v, want %+v", got, want)
	}

	c.SetState(control.StateActive)
	c.Update(parent)
	if got, want := c.TextBounds(), graphics.RectFromLTWH(10, 10, 80, 80); got != want {
		t.Errorf("active text bounds = %+v, want %+v", got, want)
	}
}

func TestControl_PositionAndSizeSetters(t *testing.T) {
	c := control.New("button", nil)
	c.SetBounds(graphics.RectFromLTWH(10, 10, 100, 50))
	c.Update(graphics.RectFromLTWH(0, 0, 200, 200))

	c.SetPosition(30, 40)
	if got, want := c.Bounds(), graphics.RectFromLTWH(30, 40, 100, 50); got != want {
		t.Errorf("bounds after SetPosition = %+v, want %+v", got, want)
	}
	if !c.IsDirty() {
		t.Error("SetPosition must mark the control dirty")
	}

	c.SetSize(60, 20)
	if got, want := c.Bounds(), graphics.RectFromLTWH(30, 40, 60, 20); got != want {
		t.Errorf("bounds after SetSize = %+v, want %+v", got, want)
	}
	if c.X() != 30 || c.Y() != 40 || c.Width() != 60 || c.Height() != 20 {
		t.Errorf("accessors = (%v,%v,%v,%v), want (30,40,60,20)",
			c.X(), c.Y(), c.Width(), c.Height())
	}
}
