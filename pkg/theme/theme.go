package theme

import "github.com/go-drift/forms/pkg/graphics"

// Theme owns a set of named styles, keyed by the style name a control type
// requests (e.g. "button", "label"). Styles are shared read-only among all
// controls created against the theme; the theme keeps ownership for its
// whole lifetime.
//
// Populating a Theme from a declarative theme description is the parser's
// job; this type is the parser's output and the control core's input.
type Theme struct {
	// TextureSize is the dimensions of the theme's texture atlas, used to
	// turn pixel regions into texture coordinates.
	TextureSize graphics.Size

	styles map[string]*Style
}

// New returns an empty theme with the given texture atlas dimensions.
func New(textureSize graphics.Size) *Theme {
	return &Theme{
		TextureSize: textureSize,
		styles:      make(map[string]*Style),
	}
}

// SetStyle registers a style under the given name, replacing any previous
// style with that name.
func (t *Theme) SetStyle(name string, style *Style) {
	t.styles[name] = style
}

// Style returns the named style, or nil if the theme does not define it.
func (t *Theme) Style(name string) *Style {
	return t.styles[name]
}

// SkinUVs resolves the nine-patch texture coordinates for an overlay of the
// named style against this theme's texture atlas.
func (t *Theme) SkinUVs(o *Overlay) [SkinAreaMax]UVs {
	return SkinUVs(o.SkinRegion, o.Border, t.TextureSize)
}
