package animation

import (
	"time"

	"github.com/go-drift/forms/pkg/errors"
)

// PropertyAnimation animates one property of a [Target] from a start value
// to an end value, blending each written frame into the live property with
// a blend weight.
//
// The zero Weight means full replacement (weight 1); set Weight below 1 to
// mix this animation's output with the property's current value, which is
// how several animations layer onto one control.
type PropertyAnimation struct {
	// Controller drives progress. Configure its Curve before Start.
	Controller *Controller

	// Weight is the blend weight in [0, 1] applied to every write.
	// Zero is treated as 1 (full replacement).
	Weight float64

	target      Target
	property    Property
	from        *Value
	to          *Value
	out         *Value
	fromSet     bool
	unsubscribe func()
}

// NewPropertyAnimation creates an animation for one property of a target.
func NewPropertyAnimation(target Target, p Property, duration time.Duration) *PropertyAnimation {
	n := target.AnimationComponentCount(p)
	return &PropertyAnimation{
		Controller: NewController(duration),
		target:     target,
		property:   p,
		from:       NewValue(n),
		to:         NewValue(n),
		out:        NewValue(n),
	}
}

// From sets the start components explicitly. Without it, Start reads the
// property's current value from the target.
func (a *PropertyAnimation) From(components ...float64) *PropertyAnimation {
	a.setComponents("animation.PropertyAnimation.From", a.from, components)
	a.fromSet = true
	return a
}

// To sets the end components.
func (a *PropertyAnimation) To(components ...float64) *PropertyAnimation {
	a.setComponents("animation.PropertyAnimation.To", a.to, components)
	return a
}

func (a *PropertyAnimation) setComponents(op string, v *Value, components []float64) {
	if len(components) != v.ComponentCount() {
		errors.Usagef(op, "property %s has %d components, got %d",
			a.property, v.ComponentCount(), len(components))
	}
	for i, f := range components {
		v.SetFloat(i, f)
	}
}

// Start begins animating toward the end value. If no explicit start value
// was given, the property's current value is read from the target first.
func (a *PropertyAnimation) Start() {
	if !a.fromSet {
		a.target.AnimationValue(a.property, a.from)
	}
	if a.unsubscribe == nil {
		a.unsubscribe = a.Controller.AddListener(a.apply)
	}
	a.Controller.Forward()
}

// Stop halts the animation at its current value.
func (a *PropertyAnimation) Stop() {
	a.Controller.Stop()
}

// apply writes the interpolated components into the target.
func (a *PropertyAnimation) apply() {
	weight := a.Weight
	if weight <= 0 {
		weight = 1
	}
	t := a.Controller.Value
	for i := 0; i < a.out.ComponentCount(); i++ {
		a.out.SetFloat(i, LerpFloat64(a.from.Float(i), a.to.Float(i), t))
	}
	a.target.SetAnimationValue(a.property, a.out, weight)
}

// Dispose stops the animation and releases its controller listener.
func (a *PropertyAnimation) Dispose() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.Controller.Dispose()
}
