// Package geometry holds the size and rectangle arithmetic shared by the viewer:
// aspect-preserving fits, display-fit bounds and window sizing.
package geometry

import (
	"errors"
	"image"
	"math"
)

var (
	// ErrInvalidDimensions is returned when a source or target size is zero or negative.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrUndefinedViewport is returned when the viewport size is not known yet.
	ErrUndefinedViewport = errors.New("viewport size undefined")
)

// Size is a width and height in pixels.
type Size struct {
	W, H int
}

// Empty reports whether either side is zero or negative.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// SizeOf returns the pixel size of img.
func SizeOf(img image.Image) Size {
	b := img.Bounds()
	return Size{W: b.Dx(), H: b.Dy()}
}

// Rect is an axis-aligned rectangle stored as origin plus extent (X, Y, W, H).
// It is not Go's corner-based image.Rectangle; use Image to convert at the point
// where a rectangle is handed to image code.
type Rect struct {
	X, Y, W, H int
}

// Full returns the rectangle covering a whole raster of size s.
func Full(s Size) Rect {
	return Rect{W: s.W, H: s.H}
}

// Image converts r to a corner-based image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Within reports whether r lies fully inside a raster of size s.
func (r Rect) Within(s Size) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= s.W && r.Bottom() <= s.H
}

// Viewport is the drawable area of the window in pixels. A zero viewport means
// the window has not been laid out yet.
type Viewport struct {
	W, H int
}

// Defined reports whether both sides of the viewport are known.
func (v Viewport) Defined() bool {
	return v.W > 0 && v.H > 0
}

// ScaleToFitSize returns the largest size with the aspect ratio of src that fits
// in target. The constraining axis matches its target exactly; the other is
// truncated and never collapses below one pixel.
func ScaleToFitSize(src, target Size) (Size, error) {
	if src.Empty() || target.Empty() {
		return Size{}, ErrInvalidDimensions
	}

	// Compare target.W/src.W with target.H/src.H by cross multiplication so the
	// derived axis is an exact floor.
	var out Size
	if target.W*src.H <= target.H*src.W {
		out = Size{W: target.W, H: src.H * target.W / src.W}
	} else {
		out = Size{W: src.W * target.H / src.H, H: target.H}
	}
	out.W = clamp(out.W, 1, target.W)
	out.H = clamp(out.H, 1, target.H)
	return out, nil
}

// DisplayFitBounds returns the region of a raster of size src that is visible at
// 100% zoom when the raster is fitted into vp. The region keeps the viewport's
// aspect ratio and is anchored at the origin, so it may extend past the raster
// along its shorter axis.
func DisplayFitBounds(src Size, vp Viewport) (Rect, error) {
	if !vp.Defined() {
		return Rect{}, ErrUndefinedViewport
	}

	ratio := math.Max(float64(src.W)/float64(vp.W), float64(src.H)/float64(vp.H))
	return Rect{
		W: int(float64(vp.W) * ratio),
		H: int(float64(vp.H) * ratio),
	}, nil
}

// PreferredWindowSize caps the desired window size at fraction of the screen on
// each axis. An unknown screen leaves the desired size untouched.
func PreferredWindowSize(desired, screen Size, fraction float64) Size {
	if screen.Empty() || fraction <= 0 {
		return desired
	}
	preferred := Size{
		W: int(float64(screen.W) * fraction),
		H: int(float64(screen.H) * fraction),
	}
	return Size{W: min(desired.W, preferred.W), H: min(desired.H, preferred.H)}
}

// RoundHalfUp rounds x to the nearest integer, with halves going towards positive infinity.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
