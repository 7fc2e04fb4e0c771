// render_view renders what the viewer would show for an image at a given zoom,
// drag and filter selection, and writes it as a PNG. It is useful for checking
// crop and filter changes without starting the GUI.
//
// Usage:
//
//	render_view -in photo.jpg -out view.png -scale 2 -dx 40 -filters grayscale,blur
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dixieflatline76/Glance/config"
	"github.com/dixieflatline76/Glance/pkg/geometry"
	"github.com/dixieflatline76/Glance/pkg/gesture"
	"github.com/dixieflatline76/Glance/pkg/raster"
	"github.com/dixieflatline76/Glance/pkg/viewer"
)

type options struct {
	in, out   string
	scale     float64
	dx, dy    float64
	filters   string
	vpW, vpH  int
	tuningRef string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("render_view", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.in, "in", "", "input image")
	fs.StringVar(&o.out, "out", "view.png", "output PNG")
	fs.Float64Var(&o.scale, "scale", 1, "zoom scale factor")
	fs.Float64Var(&o.dx, "dx", 0, "horizontal drag in display pixels")
	fs.Float64Var(&o.dy, "dy", 0, "vertical drag in display pixels")
	fs.StringVar(&o.filters, "filters", "", "comma separated filters: grayscale, pixel, blur")
	fs.IntVar(&o.vpW, "width", 1280, "viewport width")
	fs.IntVar(&o.vpH, "height", 800, "viewport height")
	fs.StringVar(&o.tuningRef, "tuning", "", "tuning JSON file (defaults when empty)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.in == "" {
		return o, errors.New("-in is required")
	}
	return o, nil
}

func parseFilters(s string) (viewer.FilterSet, error) {
	var set viewer.FilterSet
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		found := false
		for _, f := range viewer.Filters {
			if strings.EqualFold(f.String(), name) || (f == viewer.FilterGrayscale && strings.EqualFold(name, "gray")) {
				set.Set(f, true)
				found = true
			}
		}
		if !found {
			return set, fmt.Errorf("unknown filter %q", name)
		}
	}
	return set, nil
}

func render(ctx context.Context, o options, stdout io.Writer) error {
	t := config.DefaultTuning()
	if o.tuningRef != "" {
		var err error
		if t, err = config.LoadTuning(o.tuningRef); err != nil {
			return err
		}
	}

	filters, err := parseFilters(o.filters)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(o.in)
	if err != nil {
		return err
	}
	img, err := raster.Decode(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Input: %dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())

	res, err := viewer.ApplyFilters(ctx, img, filters, t)
	if err != nil {
		return err
	}
	for _, skipped := range res.Skipped {
		fmt.Fprintf(stdout, "Skipped: %v\n", skipped)
	}

	state := gesture.State{Scale: o.scale, Drag: gesture.Offset{X: o.dx, Y: o.dy}}
	mapper := gesture.Mapper{Exponent: t.ZoomExponent}
	crop, err := mapper.Crop(geometry.SizeOf(res.Image), geometry.Viewport{W: o.vpW, H: o.vpH}, state)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Crop: %+v clamped=%v drag=%+v\n", crop.Rect, crop.Clamped, crop.Drag)

	frame := res.Image
	if !crop.Rect.Empty() {
		if frame, err = raster.Crop(res.Image, crop.Rect); err != nil {
			return err
		}
	}

	out, err := raster.EncodePNG(frame)
	if err != nil {
		return err
	}
	if err := os.WriteFile(o.out, out, 0644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", o.out, frame.Bounds().Dx(), frame.Bounds().Dy())
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := render(context.Background(), o, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}
}
