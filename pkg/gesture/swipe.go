package gesture

import (
	"math"

	"github.com/dixieflatline76/Glance/pkg/geometry"
)

// DefaultSwipeDivisor sets the swipe threshold to a tenth of the viewport width.
const DefaultSwipeDivisor = 10

// Swipe is a navigation request recognised from a drag.
type Swipe int

const (
	// SwipeNone means no navigation.
	SwipeNone Swipe = iota
	// SwipeAdvance moves to the next image (drag towards the left).
	SwipeAdvance
	// SwipeRetreat moves to the previous image (drag towards the right).
	SwipeRetreat
)

func (s Swipe) String() string {
	switch s {
	case SwipeAdvance:
		return "advance"
	case SwipeRetreat:
		return "retreat"
	default:
		return "none"
	}
}

// SwipeDetector recognises horizontal swipes on an image at rest.
type SwipeDetector struct {
	Divisor float64
}

// NewSwipeDetector returns a detector with the default threshold.
func NewSwipeDetector() SwipeDetector {
	return SwipeDetector{Divisor: DefaultSwipeDivisor}
}

// Detect reports the swipe encoded by s. Swipes are ignored while zoomed,
// since dragging then pans the image, and while the viewport width is unknown.
// The caller is expected to reset the drag once a swipe fires.
func (d SwipeDetector) Detect(s State, vp geometry.Viewport) Swipe {
	if s.Zoomed() || vp.W <= 0 {
		return SwipeNone
	}

	divisor := d.Divisor
	if divisor <= 0 {
		divisor = DefaultSwipeDivisor
	}
	if math.Abs(s.Drag.X) <= float64(vp.W)/divisor {
		return SwipeNone
	}
	if s.Drag.X < 0 {
		return SwipeAdvance
	}
	return SwipeRetreat
}
