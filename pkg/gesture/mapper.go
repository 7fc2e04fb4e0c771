package gesture

import (
	"fmt"
	"math"

	"github.com/dixieflatline76/Glance/pkg/geometry"
)

// DefaultExponent is the response curve applied to the scale factor. Values
// above 1 make zoom ramp up faster the further a pinch goes.
const DefaultExponent = 1.4

// Crop is the outcome of mapping a gesture state onto an image.
type Crop struct {
	// Rect is the visible region of the source image in (X, Y, W, H) form.
	Rect geometry.Rect
	// Drag is the drag to carry into the next frame. It differs from the input
	// drag only when the window hit an image edge; it is then the drag that
	// puts the window exactly on that edge.
	Drag Offset
	// Clamped reports whether Drag was adjusted.
	Clamped bool
}

// Mapper maps zoom and drag onto a crop rectangle of the source image.
type Mapper struct {
	Exponent float64
}

// NewMapper returns a Mapper with the default response curve.
func NewMapper() Mapper {
	return Mapper{Exponent: DefaultExponent}
}

// Crop computes the visible region of an image of size src for state s in
// viewport vp. At scale 1 or below the whole image is visible and the drag is
// left alone. Above it the window shrinks around the centre, is shifted by the
// drag converted to image pixels, and stops at the image edges.
//
// The returned rectangle always lies inside the image; it is empty only when
// the image itself is.
func (m Mapper) Crop(src geometry.Size, vp geometry.Viewport, s State) (Crop, error) {
	if src.Empty() {
		return Crop{Drag: s.Drag}, nil
	}
	if s.Scale <= 1 {
		return Crop{Rect: geometry.Full(src), Drag: s.Drag}, nil
	}

	bounds, err := geometry.DisplayFitBounds(src, vp)
	if err != nil {
		return Crop{}, fmt.Errorf("mapping scale %.3f: %w", s.Scale, err)
	}
	if bounds.W == 0 {
		return Crop{}, fmt.Errorf("mapping scale %.3f: zero display bounds: %w", s.Scale, geometry.ErrUndefinedViewport)
	}

	scale := math.Pow(s.Scale, m.exponent())
	boundW := geometry.RoundHalfUp(float64(bounds.W) / scale)
	boundH := geometry.RoundHalfUp(float64(bounds.H) / scale)

	// Convert from display pixels to image pixels.
	scale *= float64(vp.W) / float64(bounds.W)
	offsetX := s.Drag.X / scale
	offsetY := s.Drag.Y / scale

	boundW = max(min(boundW, src.W), 1)
	boundH = max(min(boundH, src.H), 1)

	out := Crop{Drag: s.Drag}

	invisibleW := src.W - boundW
	left := geometry.RoundHalfUp(float64(invisibleW)/2 - offsetX)
	switch {
	case left > invisibleW:
		left = invisibleW
		out.Drag.X = -float64(invisibleW) / 2 * scale
		out.Clamped = true
	case left < 0:
		left = 0
		out.Drag.X = float64(invisibleW) / 2 * scale
		out.Clamped = true
	}

	invisibleH := src.H - boundH
	top := geometry.RoundHalfUp(float64(invisibleH)/2 - offsetY)
	switch {
	case top > invisibleH:
		top = invisibleH
		out.Drag.Y = -float64(invisibleH) / 2 * scale
		out.Clamped = true
	case top < 0:
		top = 0
		out.Drag.Y = float64(invisibleH) / 2 * scale
		out.Clamped = true
	}

	out.Rect = geometry.Rect{X: left, Y: top, W: boundW, H: boundH}
	return out, nil
}

func (m Mapper) exponent() float64 {
	if m.Exponent <= 0 {
		return DefaultExponent
	}
	return m.Exponent
}
