// Package raster implements the pixel operations behind the viewer: scaling,
// cropping, filters and encoding. Every function returns a new image and leaves
// its input untouched.
package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/dixieflatline76/Glance/pkg/geometry"
)

var (
	// ErrImageTooSmall is returned when a filter would produce an image with no pixels.
	ErrImageTooSmall = errors.New("image too small")
	// ErrUnsupportedFormat is returned when Encode does not know the requested format.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrCropOutOfBounds is returned when a crop rectangle leaves the image.
	ErrCropOutOfBounds = errors.New("crop rectangle exceeds image bounds")
)

// ScaleToFit resizes img with bilinear resampling to the largest size that fits
// in target while keeping its aspect ratio.
func ScaleToFit(img image.Image, target geometry.Size) (image.Image, error) {
	size, err := geometry.ScaleToFitSize(geometry.SizeOf(img), target)
	if err != nil {
		return nil, fmt.Errorf("scaling %v to %v: %w", geometry.SizeOf(img), target, err)
	}
	return imaging.Resize(img, size.W, size.H, imaging.Linear), nil
}

// Crop copies the region r of img into a new image anchored at the origin.
// r is relative to the top-left corner of img.
func Crop(img image.Image, r geometry.Rect) (image.Image, error) {
	if r.Empty() {
		return nil, fmt.Errorf("cropping to %+v: %w", r, geometry.ErrInvalidDimensions)
	}
	if !r.Within(geometry.SizeOf(img)) {
		return nil, fmt.Errorf("cropping %v to %+v: %w", geometry.SizeOf(img), r, ErrCropOutOfBounds)
	}
	origin := img.Bounds().Min
	return imaging.Crop(img, r.Image().Add(origin)), nil
}
