// Package gesture turns zoom and drag input into the part of an image that should
// be on screen, and recognises swipes between images.
package gesture

// Offset is an accumulated drag in display pixels.
type Offset struct {
	X, Y float64
}

// Add returns o moved by (dx, dy).
func (o Offset) Add(dx, dy float64) Offset {
	return Offset{X: o.X + dx, Y: o.Y + dy}
}

// State is the zoom factor and accumulated drag of one view. A scale at or
// below 1 means the image is fitted to the screen.
//
// State is owned by a single view and is not safe for concurrent use.
type State struct {
	Scale float64
	Drag  Offset
}

// Identity returns the state of a freshly shown image.
func Identity() State {
	return State{Scale: 1}
}

// Reset returns s to identity.
func (s *State) Reset() {
	*s = Identity()
}

// Zoomed reports whether the state is magnified past fit-to-screen.
func (s State) Zoomed() bool {
	return s.Scale > 1
}

// Zoom adds delta to the scale and keeps it in [minScale, maxScale].
func (s *State) Zoom(delta, minScale, maxScale float64) {
	s.Scale += delta
	if s.Scale > maxScale {
		s.Scale = maxScale
	}
	if s.Scale < minScale {
		s.Scale = minScale
	}
}

// Pan adds a drag delta.
func (s *State) Pan(dx, dy float64) {
	s.Drag = s.Drag.Add(dx, dy)
}
