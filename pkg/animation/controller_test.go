package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/forms/pkg/animation"
	formstest "github.com/go-drift/forms/pkg/testing"
)

// installFakeClock swaps in a fake clock for the test's duration.
func installFakeClock(t *testing.T) *formstest.FakeClock {
	t.Helper()
	clk := formstest.NewFakeClock()
	animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(nil) })
	return clk
}

func TestController_ForwardProgress(t *testing.T) {
	clk := installFakeClock(t)

	c := animation.NewController(100 * time.Millisecond)
	defer c.Dispose()
	c.Forward()

	if c.Status() != animation.StatusForward {
		t.Fatalf("status = %v, want forward", c.Status())
	}

	clk.Advance(50 * time.Millisecond)
	animation.StepTickers()
	if math.Abs(c.Value-0.5) > 1e-9 {
		t.Errorf("value at half duration = %v, want 0.5", c.Value)
	}

	clk.Advance(60 * time.Millisecond)
	animation.StepTickers()
	if c.Value != 1 {
		t.Errorf("value past duration = %v, want 1", c.Value)
	}
	if c.Status() != animation.StatusCompleted {
		t.Errorf("status = %v, want completed", c.Status())
	}
}

func TestController_Reverse(t *testing.T) {
	clk := installFakeClock(t)

	c := animation.NewController(100 * time.Millisecond)
	defer c.Dispose()
	c.Forward()
	clk.Advance(200 * time.Millisecond)
	animation.StepTickers()

	c.Reverse()
	clk.Advance(200 * time.Millisecond)
	animation.StepTickers()

	if c.Value != 0 {
		t.Errorf("value after reverse = %v, want 0", c.Value)
	}
	if c.Status() != animation.StatusDismissed {
		t.Errorf("status = %v, want dismissed", c.Status())
	}
}

func TestController_ZeroDurationCompletesImmediately(t *testing.T) {
	installFakeClock(t)

	c := animation.NewController(0)
	defer c.Dispose()
	c.Forward()
	animation.StepTickers()

	if c.Value != 1 || c.Status() != animation.StatusCompleted {
		t.Errorf("value/status = %v/%v, want 1/completed", c.Value, c.Status())
	}
}

func TestController_Listeners(t *testing.T) {
	clk := installFakeClock(t)

	c := animation.NewController(100 * time.Millisecond)
	defer c.Dispose()

	ticks := 0
	unsubscribe := c.AddListener(func() { ticks++ })

	var statuses []animation.Status
	c.AddStatusListener(func(s animation.Status) { statuses = append(statuses, s) })

	c.Forward()
	clk.Advance(50 * time.Millisecond)
	animation.StepTickers()
	clk.Advance(60 * time.Millisecond)
	animation.StepTickers()

	if ticks != 2 {
		t.Errorf("value listener fired %d times, want 2", ticks)
	}
	if len(statuses) != 2 || statuses[0] != animation.StatusForward || statuses[1] != animation.StatusCompleted {
		t.Errorf("statuses = %v, want [forward completed]", statuses)
	}

	unsubscribe()
	c.Reverse()
	clk.Advance(200 * time.Millisecond)
	animation.StepTickers()
	if ticks != 2 {
		t.Errorf("unsubscribed listener fired again: %d", ticks)
	}
}

func TestCurves_Bounds(t *testing.T) {
	curves := map[string]animation.Curve{
		"linear":     animation.Linear,
		"ease":       animation.Ease,
		"ease-in":    animation.EaseIn,
		"ease-out":   animation.EaseOut,
		"ease-inout": animation.EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		mid := curve(0.5)
		if mid <= 0 || mid >= 1 {
			t.Errorf("%s(0.5) = %v, want value in (0, 1)", name, mid)
		}
	}
}

func TestCubicBezier_LinearControlPoints(t *testing.T) {
	linearish := animation.CubicBezier(0, 0, 1, 1)
	for _, in := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		if got := linearish(in); math.Abs(got-in) > 1e-3 {
			t.Errorf("CubicBezier(0,0,1,1)(%v) = %v, want ~%v", in, got, in)
		}
	}
}

func TestTween_Evaluate(t *testing.T) {
	tw := animation.TweenFloat64(100, 200)
	if got := tw.Evaluate(0); got != 100 {
		t.Errorf("Evaluate(0) = %v, want 100", got)
	}
	if got := tw.Evaluate(0.5); got != 150 {
		t.Errorf("Evaluate(0.5) = %v, want 150", got)
	}
	if got := tw.Evaluate(1); got != 200 {
		t.Errorf("Evaluate(1) = %v, want 200", got)
	}
}
