// Package theme models the shareable visual data behind UI controls: one
// [Overlay] of themed attributes per control state, bundled into a [Style]
// that many controls reference at once.
//
// A Style is owned by its [Theme] and shared read-only. Controls never write
// through a shared Style; the control core clones the whole Style into a
// private copy the first time a per-instance setter runs (copy-on-write).
//
// Parsing theme descriptions into Styles is an external concern; this
// package only defines the resolved in-memory form and programmatic
// constructors.
package theme

import (
	"golang.org/x/image/font"

	"github.com/go-drift/forms/pkg/graphics"
)

// OverlayType selects which overlay of a style is used for rendering.
//
// The renderer asks a control for its overlay type each frame; the mapping
// from control state to overlay type is a pure function (Disabled always
// maps to OverlayDisabled, Focus and Active to their own overlays, and
// everything else to OverlayNormal).
type OverlayType int

const (
	// OverlayNormal is the overlay of an enabled, inactive control.
	OverlayNormal OverlayType = iota
	// OverlayFocus is the overlay of a control holding focus.
	OverlayFocus
	// OverlayActive is the overlay of a control being acted on.
	OverlayActive
	// OverlayDisabled is the overlay of a disabled control.
	OverlayDisabled

	// OverlayMax is the number of overlay types.
	OverlayMax
)

func (t OverlayType) String() string {
	switch t {
	case OverlayNormal:
		return "normal"
	case OverlayFocus:
		return "focus"
	case OverlayActive:
		return "active"
	case OverlayDisabled:
		return "disabled"
	default:
		return "invalid"
	}
}

// ImageAttributes holds the themed attributes of one named image used by a
// control, such as a checkbox mark or a slider knob.
type ImageAttributes struct {
	// Region is the image's texture region in pixels.
	Region graphics.Rect
	// Color is the image's blend color.
	Color graphics.Color
}

// Overlay is the fully resolved bundle of visual attributes for a single
// control state. Every overlay of a style is fully populated; attribute
// reads never fall through to a different state at resolution time.
type Overlay struct {
	// SkinRegion is the texture region of the control's skin, in pixels.
	SkinRegion graphics.Rect
	// SkinColor is the blend color applied to the skin.
	SkinColor graphics.Color
	// Border holds the widths of the skin's nine-patch border edges.
	Border graphics.Insets
	// Padding insets the content area inside the border.
	Padding graphics.Insets

	// Images holds per-image attributes keyed by image id.
	Images map[string]ImageAttributes

	// CursorRegion is the texture region of the control's cursor, in pixels.
	CursorRegion graphics.Rect
	// CursorColor is the cursor's blend color.
	CursorColor graphics.Color

	// Font renders the control's text. The face is owned by the font
	// system; overlays only reference it.
	Font font.Face
	// FontSize is the text size in pixels.
	FontSize int
	// TextColor is the text blend color.
	TextColor graphics.Color
	// TextAlign positions text within the control's text bounds.
	TextAlign graphics.Align
	// TextRightToLeft renders text right to left when set.
	TextRightToLeft bool

	// Opacity is the overlay's base opacity in [0, 1].
	Opacity float64
}

// Image returns the attributes of the named image and whether it exists.
func (o *Overlay) Image(id string) (ImageAttributes, bool) {
	attrs, ok := o.Images[id]
	return attrs, ok
}

// SetImage stores attributes for the named image.
func (o *Overlay) SetImage(id string, attrs ImageAttributes) {
	if o.Images == nil {
		o.Images = make(map[string]ImageAttributes)
	}
	o.Images[id] = attrs
}

// clone returns a deep copy of the overlay.
func (o *Overlay) clone() Overlay {
	out := *o
	if o.Images != nil {
		out.Images = make(map[string]ImageAttributes, len(o.Images))
		for id, attrs := range o.Images {
			out.Images[id] = attrs
		}
	}
	return out
}
