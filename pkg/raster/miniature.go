package raster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"

	"github.com/dixieflatline76/Glance/pkg/geometry"
)

// Miniature returns a size×size thumbnail of img. The square is placed on the
// most interesting region found by smartcrop; if the analysis fails the centre
// is used instead.
func Miniature(img image.Image, size int) (image.Image, error) {
	if size < 1 || geometry.SizeOf(img).Empty() {
		return nil, fmt.Errorf("miniature of %v at %d: %w", geometry.SizeOf(img), size, geometry.ErrInvalidDimensions)
	}

	r := &resizer{resampler: imaging.Lanczos}
	analyzer := smartcrop.NewAnalyzer(r)

	crop, err := analyzer.FindBestCrop(img, size, size)
	if err != nil || crop.Empty() {
		return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos), nil
	}
	return imaging.Resize(imaging.Crop(img, crop), size, size, imaging.Lanczos), nil
}

// resizer implements the smartcrop.Resizer interface on top of imaging.
type resizer struct {
	resampler imaging.ResampleFilter
}

func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
