package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Tuning holds the viewer's magic numbers. Defaults come from DefaultTuning and
// can be overridden per field from a JSON file.
type Tuning struct {
	// Gestures
	ZoomExponent   float64 `json:"zoom_exponent"`    // Default: 1.4 (response curve on the pinch factor)
	MinScale       float64 `json:"min_scale"`        // Default: 1.0 (fit to screen)
	MaxScale       float64 `json:"max_scale"`        // Default: 5.0
	ScrollZoomStep float64 `json:"scroll_zoom_step"` // Default: 0.1 (scale change per scroll notch)
	SwipeDivisor   float64 `json:"swipe_divisor"`    // Default: 10 (swipe after viewport width / 10)

	// Filters
	PixelateFactor int `json:"pixelate_factor"` // Default: 20
	BlurKernel     int `json:"blur_kernel"`     // Default: 11 (odd)
	BlurCrop       int `json:"blur_crop"`       // Default: 11 (trimmed from each edge)

	// Rendering
	RenderFPS     float64 `json:"render_fps"`     // Default: 30 (filter renders per second)
	RenderWorkers int     `json:"render_workers"` // Default: 1
	LoadWorkers   int     `json:"load_workers"`   // Default: 4

	// Window
	MiniatureSize  int     `json:"miniature_size"`  // Default: 96
	WindowFraction float64 `json:"window_fraction"` // Default: 0.8 (of the screen)

	// Encoding
	EncodingQuality int `json:"encoding_quality"` // Default: 95
}

// DefaultTuning returns the standard values.
func DefaultTuning() Tuning {
	return Tuning{
		ZoomExponent:    1.4,
		MinScale:        1.0,
		MaxScale:        5.0,
		ScrollZoomStep:  0.1,
		SwipeDivisor:    10,
		PixelateFactor:  20,
		BlurKernel:      11,
		BlurCrop:        11,
		RenderFPS:       30,
		RenderWorkers:   1,
		LoadWorkers:     4,
		MiniatureSize:   96,
		WindowFraction:  0.8,
		EncodingQuality: 95,
	}
}

// Validate reports the first field that would break the viewer.
func (t Tuning) Validate() error {
	switch {
	case t.ZoomExponent <= 0:
		return fmt.Errorf("zoom_exponent must be positive, got %v", t.ZoomExponent)
	case t.MinScale <= 0 || t.MaxScale < t.MinScale:
		return fmt.Errorf("scale range [%v, %v] is invalid", t.MinScale, t.MaxScale)
	case t.SwipeDivisor <= 0:
		return fmt.Errorf("swipe_divisor must be positive, got %v", t.SwipeDivisor)
	case t.PixelateFactor < 1:
		return fmt.Errorf("pixelate_factor must be at least 1, got %d", t.PixelateFactor)
	case t.BlurKernel < 1 || t.BlurKernel%2 == 0:
		return fmt.Errorf("blur_kernel must be a positive odd number, got %d", t.BlurKernel)
	case t.BlurCrop < 0:
		return fmt.Errorf("blur_crop must not be negative, got %d", t.BlurCrop)
	case t.ScrollZoomStep <= 0:
		return fmt.Errorf("scroll_zoom_step must be positive, got %v", t.ScrollZoomStep)
	case t.RenderWorkers < 1:
		return fmt.Errorf("render_workers must be at least 1, got %d", t.RenderWorkers)
	case t.LoadWorkers < 1:
		return fmt.Errorf("load_workers must be at least 1, got %d", t.LoadWorkers)
	case t.MiniatureSize < 1:
		return fmt.Errorf("miniature_size must be at least 1, got %d", t.MiniatureSize)
	case t.WindowFraction <= 0 || t.WindowFraction > 1:
		return fmt.Errorf("window_fraction must be in (0, 1], got %v", t.WindowFraction)
	case t.EncodingQuality < 1 || t.EncodingQuality > 100:
		return fmt.Errorf("encoding_quality must be in [1, 100], got %d", t.EncodingQuality)
	}
	return nil
}

// GetPath returns the user's config directory.
func GetPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName)), nil
}

// LoadTuning reads overrides from filename on top of DefaultTuning. A missing
// file is not an error.
func LoadTuning(filename string) (Tuning, error) {
	t := DefaultTuning()

	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("reading tuning: %w", err)
	}

	if err := json.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("parsing tuning %s: %w", filename, err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("tuning %s: %w", filename, err)
	}
	return t, nil
}

// EnsureTuning loads filename like LoadTuning, and writes the defaults there
// first when the file does not exist yet so they can be edited.
func EnsureTuning(filename string) (Tuning, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		t := DefaultTuning()
		if err := t.Save(filename); err != nil {
			return t, fmt.Errorf("writing default tuning: %w", err)
		}
		return t, nil
	}
	return LoadTuning(filename)
}

// Save writes t to filename, creating its directory.
func (t Tuning) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tuning: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
