// Package viewer ties an image source, gesture state and filters together into
// the frames shown on screen.
package viewer

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/dixieflatline76/Glance/config"
	"github.com/dixieflatline76/Glance/pkg/raster"
)

// Filter is an image effect the user can switch on and off.
type Filter int

const (
	FilterGrayscale Filter = iota
	FilterPixel
	FilterBlur
	filterCount
)

// Filters lists every filter in the order they are applied.
var Filters = []Filter{FilterGrayscale, FilterPixel, FilterBlur}

func (f Filter) String() string {
	switch f {
	case FilterGrayscale:
		return "Grayscale"
	case FilterPixel:
		return "Pixel"
	case FilterBlur:
		return "Blur"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// FilterSet records which filters are switched on. The zero value has none.
type FilterSet struct {
	on [filterCount]bool
}

// Toggle flips f and returns its new state.
func (s *FilterSet) Toggle(f Filter) bool {
	if f < 0 || f >= filterCount {
		return false
	}
	s.on[f] = !s.on[f]
	return s.on[f]
}

// Set switches f on or off.
func (s *FilterSet) Set(f Filter, enabled bool) {
	if f < 0 || f >= filterCount {
		return
	}
	s.on[f] = enabled
}

// Enabled reports whether f is on.
func (s FilterSet) Enabled(f Filter) bool {
	if f < 0 || f >= filterCount {
		return false
	}
	return s.on[f]
}

// Active returns the enabled filters in application order.
func (s FilterSet) Active() []Filter {
	var out []Filter
	for _, f := range Filters {
		if s.on[f] {
			out = append(out, f)
		}
	}
	return out
}

// Empty reports whether no filter is on.
func (s FilterSet) Empty() bool {
	return len(s.Active()) == 0
}

func (s FilterSet) String() string {
	active := s.Active()
	if len(active) == 0 {
		return "none"
	}
	names := make([]string, len(active))
	for i, f := range active {
		names[i] = f.String()
	}
	return strings.Join(names, "+")
}

// FilterResult is the outcome of ApplyFilters.
type FilterResult struct {
	Image   image.Image
	Applied []Filter
	// Skipped holds one error per filter that could not be applied.
	Skipped []error
}

// ApplyFilters runs the enabled filters over img in order. A filter that fails,
// for example blur on an image smaller than its kernel, is skipped and reported
// in the result; the remaining filters still run. The only error returned is
// the context's.
func ApplyFilters(ctx context.Context, img image.Image, set FilterSet, t config.Tuning) (FilterResult, error) {
	res := FilterResult{Image: img}

	for _, f := range set.Active() {
		if err := checkContext(ctx); err != nil {
			return FilterResult{}, err
		}

		out, err := applyFilter(res.Image, f, t)
		if err != nil {
			res.Skipped = append(res.Skipped, fmt.Errorf("%s filter: %w", f, err))
			continue
		}
		res.Image = out
		res.Applied = append(res.Applied, f)
	}

	if err := checkContext(ctx); err != nil {
		return FilterResult{}, err
	}
	return res, nil
}

func applyFilter(img image.Image, f Filter, t config.Tuning) (image.Image, error) {
	switch f {
	case FilterGrayscale:
		return raster.Grayscale(img), nil
	case FilterPixel:
		return raster.Pixelate(img, t.PixelateFactor)
	case FilterBlur:
		return raster.Blur(img, t.BlurKernel, t.BlurCrop)
	default:
		return nil, fmt.Errorf("unknown filter %d", int(f))
	}
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
