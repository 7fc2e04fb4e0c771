// Package sysinfo reports the primary screen size so the viewer window can be
// sized to a fraction of it before it is shown.
package sysinfo

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dixieflatline76/Glance/pkg/geometry"
)

// resolutionRegex matches "1920x1080", "3456 x 2234" or "2880 x 1864 Retina".
var resolutionRegex = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)

// ScreenSize returns the size of the primary screen in pixels.
func ScreenSize() (geometry.Size, error) {
	w, h, err := GetScreenDimensions()
	if err != nil {
		return geometry.Size{}, err
	}
	size := geometry.Size{W: w, H: h}
	if size.Empty() {
		return geometry.Size{}, fmt.Errorf("screen size %dx%d: %w", w, h, geometry.ErrInvalidDimensions)
	}
	return size, nil
}

func parseResolutionString(s string) (int, int, error) {
	matches := resolutionRegex.FindStringSubmatch(s)
	if len(matches) < 3 {
		return 0, 0, fmt.Errorf("failed to parse resolution from string: %q", s)
	}

	width, errW := strconv.Atoi(matches[1])
	height, errH := strconv.Atoi(matches[2])
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("failed to convert dimensions: %v, %v", errW, errH)
	}
	return width, height, nil
}
