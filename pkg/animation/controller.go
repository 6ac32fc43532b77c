package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of an animation.
//
// The status follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, status is StatusForward or StatusReverse. When stopped,
// status is StatusDismissed (at 0) or StatusCompleted (at 1).
type Status int

const (
	// StatusDismissed means the animation is stopped at the lower bound (0.0).
	StatusDismissed Status = iota
	// StatusForward means the animation is playing toward the upper bound (1.0).
	StatusForward
	// StatusReverse means the animation is playing toward the lower bound (0.0).
	StatusReverse
	// StatusCompleted means the animation is stopped at the upper bound (1.0).
	StatusCompleted
)

// String returns a human-readable representation of the animation status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives an animation by producing values over time.
//
// The controller manages a Value that progresses from 0.0 to 1.0 over the
// specified Duration. The Curve function transforms linear progress into
// eased motion. Use [Tween] to map the 0-1 value onto other ranges, and
// [PropertyAnimation] to apply it to a control property with a blend weight.
//
// Always call Dispose when done to stop the animation and release
// listeners.
type Controller struct {
	// Value is the current animation value, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of the animation.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve Curve

	status          Status
	ticker          *Ticker
	target          float64
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates an animation controller with the given duration.
func NewController(duration time.Duration) *Controller {
	return &Controller{
		Duration:        duration,
		Curve:           Linear,
		status:          StatusDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
}

// Forward animates from the current value to the upper bound (1.0).
func (c *Controller) Forward() {
	c.animateTo(1, StatusForward)
}

// Reverse animates from the current value to the lower bound (0.0).
func (c *Controller) Reverse() {
	c.animateTo(0, StatusReverse)
}

// AnimateTo animates to a specific target value.
func (c *Controller) AnimateTo(target float64) {
	if target > c.Value {
		c.animateTo(target, StatusForward)
	} else {
		c.animateTo(target, StatusReverse)
	}
}

func (c *Controller) animateTo(target float64, direction Status) {
	if c.ticker != nil {
		c.ticker.Stop()
	}

	c.target = clampUnit(target)
	c.startValue = c.Value
	c.setStatus(direction)

	c.ticker = NewTicker(func(elapsed time.Duration) {
		c.tick(elapsed)
	})
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.stop()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.stop()
	}
}

func (c *Controller) stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}

	// Update status based on the final value.
	if c.Value <= 0 {
		c.setStatus(StatusDismissed)
	} else if c.Value >= 1 {
		c.setStatus(StatusCompleted)
	}
}

// Reset immediately sets the value back to the lower bound.
func (c *Controller) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(StatusDismissed)
	c.notifyListeners()
}

// Stop stops the animation at the current value.
func (c *Controller) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *Controller) IsAnimating() bool {
	return c.status == StatusForward || c.status == StatusReverse
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cleans up resources used by the controller.
func (c *Controller) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
