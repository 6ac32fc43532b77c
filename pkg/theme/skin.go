package theme

import "github.com/go-drift/forms/pkg/graphics"

// SkinArea identifies one patch of a control skin's nine-patch grid.
// The border insets of an overlay split the skin region into the grid; the
// four corner patches render at fixed size while edges and center stretch.
type SkinArea int

const (
	SkinTopLeft SkinArea = iota
	SkinTop
	SkinTopRight
	SkinLeft
	SkinCenter
	SkinRight
	SkinBottomLeft
	SkinBottom
	SkinBottomRight

	// SkinAreaMax is the number of skin areas.
	SkinAreaMax
)

// UVs holds normalized texture coordinates for one skin patch.
type UVs struct {
	U1 float64
	V1 float64
	U2 float64
	V2 float64
}

// SkinUVs computes normalized texture coordinates for all nine patches of a
// skin, given its pixel region within a texture, the border insets that
// split the region, and the texture dimensions.
//
// A zero-area texture size yields all-zero UVs; the renderer treats that as
// an unskinned control.
func SkinUVs(region graphics.Rect, border graphics.Insets, textureSize graphics.Size) [SkinAreaMax]UVs {
	var uvs [SkinAreaMax]UVs
	if textureSize.IsEmpty() {
		return uvs
	}

	// Pixel-space grid lines of the nine-patch.
	xs := [4]float64{
		region.Left,
		region.Left + border.Left,
		region.Right - border.Right,
		region.Right,
	}
	ys := [4]float64{
		region.Top,
		region.Top + border.Top,
		region.Bottom - border.Bottom,
		region.Bottom,
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			uvs[SkinArea(row*3+col)] = UVs{
				U1: xs[col] / textureSize.Width,
				V1: ys[row] / textureSize.Height,
				U2: xs[col+1] / textureSize.Width,
				V2: ys[row+1] / textureSize.Height,
			}
		}
	}
	return uvs
}

// RegionUVs computes normalized texture coordinates for a single rectangular
// region, used for cursor and image regions.
func RegionUVs(region graphics.Rect, textureSize graphics.Size) UVs {
	if textureSize.IsEmpty() {
		return UVs{}
	}
	return UVs{
		U1: region.Left / textureSize.Width,
		V1: region.Top / textureSize.Height,
		U2: region.Right / textureSize.Width,
		V2: region.Bottom / textureSize.Height,
	}
}
