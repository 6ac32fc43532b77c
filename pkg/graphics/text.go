package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Align positions text within a control's text bounds.
//
// Align is a bitmask combining one horizontal bit with one vertical bit.
// The named combinations below cover the usual cases; AlignTopLeft is the
// zero-value-free default used by themes.
type Align int

const (
	// AlignLeft aligns text against the left edge of the text bounds.
	AlignLeft Align = 0x01
	// AlignHCenter centers text horizontally within the text bounds.
	AlignHCenter Align = 0x02
	// AlignRight aligns text against the right edge of the text bounds.
	AlignRight Align = 0x04
	// AlignTop aligns text against the top edge of the text bounds.
	AlignTop Align = 0x10
	// AlignVCenter centers text vertically within the text bounds.
	AlignVCenter Align = 0x20
	// AlignBottom aligns text against the bottom edge of the text bounds.
	AlignBottom Align = 0x40

	AlignTopLeft      = AlignTop | AlignLeft
	AlignTopHCenter   = AlignTop | AlignHCenter
	AlignTopRight     = AlignTop | AlignRight
	AlignVCenterLeft  = AlignVCenter | AlignLeft
	AlignCenter       = AlignVCenter | AlignHCenter
	AlignVCenterRight = AlignVCenter | AlignRight
	AlignBottomLeft   = AlignBottom | AlignLeft
	AlignBottomCenter = AlignBottom | AlignHCenter
	AlignBottomRight  = AlignBottom | AlignRight
)

// MeasureText returns the pixel dimensions of a single line of text.
func MeasureText(face font.Face, text string) Size {
	if face == nil || text == "" {
		return Size{}
	}
	metrics := face.Metrics()
	advance := font.MeasureString(face, text)
	return Size{
		Width:  fixedToFloat(advance),
		Height: fixedToFloat(metrics.Ascent + metrics.Descent),
	}
}

// TextOrigin returns the baseline origin for drawing a single line of text
// aligned within bounds. Bounds is typically a control's text bounds (its
// bounds inset by border and padding).
//
// When rightToLeft is set, left and right alignment swap so that the visual
// start of the text hugs the appropriate edge.
func TextOrigin(face font.Face, text string, bounds Rect, align Align, rightToLeft bool) Offset {
	if face == nil {
		return bounds.Origin()
	}
	metrics := face.Metrics()
	size := MeasureText(face, text)

	h := align & (AlignLeft | AlignHCenter | AlignRight)
	if rightToLeft {
		switch h {
		case AlignLeft:
			h = AlignRight
		case AlignRight:
			h = AlignLeft
		}
	}

	var x float64
	switch h {
	case AlignHCenter:
		x = bounds.Left + (bounds.Width()-size.Width)/2
	case AlignRight:
		x = bounds.Right - size.Width
	default:
		x = bounds.Left
	}

	ascent := fixedToFloat(metrics.Ascent)
	var y float64
	switch align & (AlignTop | AlignVCenter | AlignBottom) {
	case AlignVCenter:
		y = bounds.Top + (bounds.Height()-size.Height)/2 + ascent
	case AlignBottom:
		y = bounds.Bottom - size.Height + ascent
	default:
		y = bounds.Top + ascent
	}

	return Offset{X: x, Y: y}
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
