package theme

import "github.com/go-drift/forms/pkg/graphics"

// Style is the shareable per-state style bundle for a class of controls:
// one fully populated [Overlay] per overlay type, plus the control's margin.
//
// Margin is a single value independent of state; it spaces the control
// within its parent and is not part of any overlay.
//
// Many controls may reference the same Style concurrently within the single
// update thread. Treat shared Styles as immutable; mutate only a private
// [Style.Clone].
type Style struct {
	// Margin spaces the control's bounds within its parent.
	Margin graphics.Insets

	overlays [OverlayMax]Overlay
}

// NewStyle constructs a style with the given overlay replicated into every
// overlay type. Theme parsers and tests then specialize individual overlays
// via [Style.Overlay].
func NewStyle(base Overlay) *Style {
	s := &Style{}
	for i := range s.overlays {
		s.overlays[i] = base.clone()
	}
	return s
}

// DefaultStyle returns a plain, fully populated style: white blend colors,
// full opacity, no border or padding, top-left text.
func DefaultStyle() *Style {
	return NewStyle(Overlay{
		SkinColor:   graphics.White,
		CursorColor: graphics.White,
		TextColor:   graphics.White,
		TextAlign:   graphics.AlignTopLeft,
		Opacity:     1,
	})
}

// Overlay returns the overlay record for the given overlay type.
// Out-of-range types resolve to the normal overlay.
func (s *Style) Overlay(t OverlayType) *Overlay {
	if t < OverlayNormal || t >= OverlayMax {
		return &s.overlays[OverlayNormal]
	}
	return &s.overlays[t]
}

// Clone returns a deep, privately owned copy of the style.
func (s *Style) Clone() *Style {
	out := &Style{Margin: s.Margin}
	for i := range s.overlays {
		out.overlays[i] = s.overlays[i].clone()
	}
	return out
}
