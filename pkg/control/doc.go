// Package control implements the state, style, animation and event core
// shared by every interactive UI control.
//
// A [Control] tracks one runtime [State] (normal, focus, active, disabled),
// resolves its visual attributes from a per-state [theme.Style] with
// copy-on-write overrides, blends animation-engine writes into its live
// geometry and opacity, dispatches events to registered listeners, and
// derives its clip and text rectangles from its bounds whenever it is dirty.
//
// # Frame ordering
//
// All operations run on one logical update/render goroutine. Within a
// frame the embedding engine applies, in order: input-driven state
// transitions, animation stepping ([animation.StepTickers]), geometry
// resolution ([Control.Update]), then listener dispatch for that frame's
// events. Reading [Control.Clip] or [Control.ClipBounds] after mutating the
// control but before Update observes stale geometry; the engine's ordering
// is what prevents that.
//
// # Style sharing
//
// Many controls may reference one shared [theme.Style]. The first call to
// any per-state style setter on a control clones the whole style into a
// private copy owned by that control; other controls sharing the original
// style are never affected.
package control
