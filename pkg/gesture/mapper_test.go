package gesture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Glance/pkg/geometry"
)

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func TestMapper_NotZoomed(t *testing.T) {
	m := NewMapper()
	src := geometry.Size{W: 1000, H: 500}
	vp := geometry.Viewport{W: 500, H: 500}

	for _, drag := range []Offset{{0, 0}, {-10000, 3}, {250, -999}} {
		for _, scale := range []float64{1.0, 0.5, 0} {
			crop, err := m.Crop(src, vp, State{Scale: scale, Drag: drag})
			require.NoError(t, err)
			assert.Equal(t, geometry.Rect{W: 1000, H: 500}, crop.Rect)
			assert.Equal(t, drag, crop.Drag, "drag must not be clamped at rest")
			assert.False(t, crop.Clamped)
		}
	}
}

func TestMapper_NotZoomedIgnoresViewport(t *testing.T) {
	crop, err := NewMapper().Crop(geometry.Size{W: 10, H: 10}, geometry.Viewport{}, Identity())
	require.NoError(t, err)
	assert.Equal(t, geometry.Rect{W: 10, H: 10}, crop.Rect)
}

func TestMapper_CenteredZoom(t *testing.T) {
	src := geometry.Size{W: 1000, H: 500}
	vp := geometry.Viewport{W: 500, H: 500}

	crop, err := NewMapper().Crop(src, vp, State{Scale: 2})
	require.NoError(t, err)

	// Display-fit bounds of a 1000x500 image in a 500x500 viewport are 1000x1000.
	eff := math.Pow(2, 1.4)
	boundW := min(roundHalfUp(1000/eff), 1000)
	boundH := min(roundHalfUp(1000/eff), 500)
	left := roundHalfUp(float64(1000-boundW) / 2)
	top := roundHalfUp(float64(500-boundH) / 2)

	assert.Equal(t, geometry.Rect{X: left, Y: top, W: boundW, H: boundH}, crop.Rect)
	assert.True(t, crop.Rect.Within(src))
	assert.False(t, crop.Clamped)
	assert.Equal(t, Offset{}, crop.Drag)
}

func TestMapper_DragMovesWindow(t *testing.T) {
	src := geometry.Size{W: 1000, H: 500}
	vp := geometry.Viewport{W: 500, H: 500}
	m := NewMapper()

	center, err := m.Crop(src, vp, State{Scale: 2})
	require.NoError(t, err)

	// Dragging right reveals more of the left side.
	moved, err := m.Crop(src, vp, State{Scale: 2, Drag: Offset{X: 40, Y: -20}})
	require.NoError(t, err)
	assert.Less(t, moved.Rect.X, center.Rect.X)
	assert.Greater(t, moved.Rect.Y, center.Rect.Y)
	assert.Equal(t, center.Rect.W, moved.Rect.W)
	assert.False(t, moved.Clamped)

	// 40 display pixels over an effective scale of 2^1.4 * 500/1000.
	scale := math.Pow(2, 1.4) * 0.5
	assert.Equal(t, roundHalfUp(float64(1000-center.Rect.W)/2-40/scale), moved.Rect.X)
}

func TestMapper_Clamp(t *testing.T) {
	src := geometry.Size{W: 1000, H: 500}
	vp := geometry.Viewport{W: 500, H: 500}
	m := NewMapper()

	for _, drag := range []Offset{{1e6, 1e6}, {-1e6, -1e6}, {1e6, -1e6}, {-5000, 800}} {
		for _, scale := range []float64{1.01, 1.5, 2, 5} {
			crop, err := m.Crop(src, vp, State{Scale: scale, Drag: drag})
			require.NoError(t, err)

			invisibleW := src.W - crop.Rect.W
			invisibleH := src.H - crop.Rect.H
			assert.GreaterOrEqual(t, crop.Rect.X, 0)
			assert.LessOrEqual(t, crop.Rect.X, invisibleW)
			assert.GreaterOrEqual(t, crop.Rect.Y, 0)
			assert.LessOrEqual(t, crop.Rect.Y, invisibleH)
			assert.True(t, crop.Rect.Within(src), "rect %+v", crop.Rect)
			assert.True(t, crop.Clamped)
		}
	}
}

func TestMapper_ClampRebasesDrag(t *testing.T) {
	src := geometry.Size{W: 1000, H: 500}
	vp := geometry.Viewport{W: 500, H: 500}
	m := NewMapper()

	first, err := m.Crop(src, vp, State{Scale: 2, Drag: Offset{X: 1e6, Y: -1e6}})
	require.NoError(t, err)
	require.True(t, first.Clamped)
	assert.Equal(t, 0, first.Rect.X)
	assert.Equal(t, src.H-first.Rect.H, first.Rect.Y)
	assert.Greater(t, first.Drag.X, 0.0)
	assert.Less(t, first.Drag.Y, 0.0)

	// Feeding the clamped drag back lands on the same edge without another clamp.
	second, err := m.Crop(src, vp, State{Scale: 2, Drag: first.Drag})
	require.NoError(t, err)
	assert.Equal(t, first.Rect, second.Rect)

	// A small drag back moves away from the edge immediately.
	third, err := m.Crop(src, vp, State{Scale: 2, Drag: first.Drag.Add(-20, 0)})
	require.NoError(t, err)
	assert.Greater(t, third.Rect.X, 0)
}

func TestMapper_ClampedDragHoldsEdge(t *testing.T) {
	vp := geometry.Viewport{W: 500, H: 500}
	m := NewMapper()

	for w := 1000; w <= 6000; w += 37 {
		for _, h := range []int{3001, 2999, 777} {
			src := geometry.Size{W: w, H: h}
			for _, push := range []Offset{{X: 1e6, Y: 1e6}, {X: -1e6, Y: -1e6}, {X: 1e6, Y: -1e6}} {
				first, err := m.Crop(src, vp, State{Scale: 2, Drag: push})
				require.NoError(t, err)
				require.True(t, first.Clamped)

				second, err := m.Crop(src, vp, State{Scale: 2, Drag: first.Drag})
				require.NoError(t, err)
				if !assert.Equal(t, first.Rect, second.Rect, "src %v push %v", src, push) {
					return
				}
				assert.Equal(t, first.Drag, second.Drag, "src %v push %v", src, push)
			}
		}
	}
}

func TestMapper_WindowClampedToImage(t *testing.T) {
	// A narrow strip: the display-fit window is far taller than the image.
	src := geometry.Size{W: 2000, H: 100}
	vp := geometry.Viewport{W: 400, H: 400}

	crop, err := NewMapper().Crop(src, vp, State{Scale: 1.2})
	require.NoError(t, err)
	assert.Equal(t, 100, crop.Rect.H)
	assert.Equal(t, 0, crop.Rect.Y)
	assert.True(t, crop.Rect.Within(src))
}

func TestMapper_TinyImage(t *testing.T) {
	crop, err := NewMapper().Crop(geometry.Size{W: 1, H: 1}, geometry.Viewport{W: 500, H: 500}, State{Scale: 5})
	require.NoError(t, err)
	assert.Equal(t, geometry.Rect{W: 1, H: 1}, crop.Rect)
}

func TestMapper_Degenerate(t *testing.T) {
	m := NewMapper()

	crop, err := m.Crop(geometry.Size{}, geometry.Viewport{W: 100, H: 100}, State{Scale: 3, Drag: Offset{X: 5}})
	require.NoError(t, err)
	assert.True(t, crop.Rect.Empty())
	assert.Equal(t, Offset{X: 5}, crop.Drag)

	_, err = m.Crop(geometry.Size{W: 100, H: 100}, geometry.Viewport{}, State{Scale: 3})
	assert.ErrorIs(t, err, geometry.ErrUndefinedViewport)
}

func TestMapper_CustomExponent(t *testing.T) {
	src := geometry.Size{W: 800, H: 800}
	vp := geometry.Viewport{W: 800, H: 800}

	linear, err := Mapper{Exponent: 1}.Crop(src, vp, State{Scale: 2})
	require.NoError(t, err)
	assert.Equal(t, geometry.Rect{X: 200, Y: 200, W: 400, H: 400}, linear.Rect)

	curved, err := Mapper{}.Crop(src, vp, State{Scale: 2})
	require.NoError(t, err)
	assert.Less(t, curved.Rect.W, linear.Rect.W)
}
