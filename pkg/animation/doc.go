// Package animation drives smooth property changes on UI controls.
//
// # Core Components
//
//   - [Controller]: advances a value from 0.0 to 1.0 over a duration with a
//     configurable easing curve, reporting progress and status to listeners.
//
//   - [Tween]: maps the controller's 0-1 value onto any value range or type.
//
//   - [Target]: the capability a control exposes to the animation engine —
//     per-property component counts, a read hook for start values, and a
//     weighted write hook that blends incoming values into live properties.
//
//   - [PropertyAnimation]: binds a controller and a tween to one property of
//     a target, writing blended values each frame.
//
// # Frame Stepping
//
// Animations are stepped cooperatively: the embedding engine calls
// [StepTickers] once per frame on its update thread, before geometry
// resolution. Time comes from the package clock; tests inject a fake clock
// via [SetClock] for deterministic stepping.
//
// # Basic Usage
//
//	fade := animation.NewPropertyAnimation(control, animation.PropertyOpacity, 300*time.Millisecond)
//	fade.Controller.Curve = animation.EaseInOut
//	fade.To(0.25)
//	fade.Start()
//	// each frame:
//	animation.StepTickers()
package animation
