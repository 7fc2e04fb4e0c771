package raster

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/disintegration/imaging"

	"github.com/dixieflatline76/Glance/pkg/geometry"
)

// Default filter parameters.
const (
	DefaultPixelateFactor = 20
	DefaultBlurKernel     = 11
	DefaultBlurCrop       = 11
)

// Grayscale converts img to luminance. The result keeps the size and alpha of
// img and carries the luminance in all three colour channels, so applying it
// twice gives the same image as applying it once.
func Grayscale(img image.Image) image.Image {
	return imaging.Grayscale(img)
}

// Pixelate produces a mosaic by shrinking img by factor on each axis with area
// sampling and scaling it back to its exact original size with nearest neighbour.
// Axes shorter than factor shrink to a single pixel.
func Pixelate(img image.Image, factor int) (image.Image, error) {
	size := geometry.SizeOf(img)
	if size.Empty() || factor < 1 {
		return nil, fmt.Errorf("pixelating %v by %d: %w", size, factor, geometry.ErrInvalidDimensions)
	}

	small := imaging.Resize(img, max(size.W/factor, 1), max(size.H/factor, 1), imaging.Box)
	return imaging.Resize(small, size.W, size.H, imaging.NearestNeighbor), nil
}

// Blur applies a kernel×kernel box blur and trims crop pixels from every edge,
// discarding the ring the kernel could not fully cover. The result is
// 2*crop pixels narrower and shorter than img.
func Blur(img image.Image, kernel, crop int) (image.Image, error) {
	size := geometry.SizeOf(img)
	if kernel < 1 || kernel%2 == 0 || crop < 0 {
		return nil, fmt.Errorf("blurring with kernel %d crop %d: %w", kernel, crop, geometry.ErrInvalidDimensions)
	}
	if size.W < 2*crop+1 || size.H < 2*crop+1 {
		return nil, fmt.Errorf("blurring %v with crop %d: %w", size, crop, ErrImageTooSmall)
	}

	k := convolution.NewKernel(kernel, kernel)
	weight := 1.0 / float64(kernel*kernel)
	for i := range k.Matrix {
		k.Matrix[i] = weight
	}
	blurred := convolution.Convolve(img, k, &convolution.Options{Bias: 0, Wrap: false})

	return Crop(blurred, geometry.Rect{X: crop, Y: crop, W: size.W - 2*crop, H: size.H - 2*crop})
}
