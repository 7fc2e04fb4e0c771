package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dixieflatline76/Glance/pkg/geometry"
)

func TestSwipeDetector(t *testing.T) {
	vp := geometry.Viewport{W: 1000, H: 600}
	d := NewSwipeDetector()

	tests := []struct {
		name     string
		state    State
		vp       geometry.Viewport
		expected Swipe
	}{
		{"Drag left past threshold", State{Scale: 1, Drag: Offset{X: -150}}, vp, SwipeAdvance},
		{"Drag right past threshold", State{Scale: 1, Drag: Offset{X: 150}}, vp, SwipeRetreat},
		{"Exactly at threshold", State{Scale: 1, Drag: Offset{X: -100}}, vp, SwipeNone},
		{"Below threshold", State{Scale: 1, Drag: Offset{X: 99}}, vp, SwipeNone},
		{"Vertical drag", State{Scale: 1, Drag: Offset{Y: -500}}, vp, SwipeNone},
		{"Zoomed suppresses swipe", State{Scale: 1.5, Drag: Offset{X: -900}}, vp, SwipeNone},
		{"Fit below one still swipes", State{Scale: 0.8, Drag: Offset{X: -150}}, vp, SwipeAdvance},
		{"Unknown viewport", State{Scale: 1, Drag: Offset{X: -150}}, geometry.Viewport{}, SwipeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.Detect(tt.state, tt.vp))
		})
	}
}

func TestSwipe_String(t *testing.T) {
	assert.Equal(t, "advance", SwipeAdvance.String())
	assert.Equal(t, "retreat", SwipeRetreat.String())
	assert.Equal(t, "none", SwipeNone.String())
}

func TestState(t *testing.T) {
	s := Identity()
	assert.False(t, s.Zoomed())

	s.Zoom(0.5, 1, 5)
	assert.Equal(t, 1.5, s.Scale)
	assert.True(t, s.Zoomed())

	s.Zoom(10, 1, 5)
	assert.Equal(t, 5.0, s.Scale)

	s.Zoom(-10, 1, 5)
	assert.Equal(t, 1.0, s.Scale)

	s.Pan(3, -4)
	s.Pan(1, 1)
	assert.Equal(t, Offset{X: 4, Y: -3}, s.Drag)

	s.Reset()
	assert.Equal(t, Identity(), s)
}
