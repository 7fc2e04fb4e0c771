package viewer

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dixieflatline76/Glance/pkg/geometry"
)

// MockNavigator implements content.Navigator for testing
type MockNavigator struct {
	mock.Mock
}

func (m *MockNavigator) Advance() {
	m.Called()
}

func (m *MockNavigator) Retreat() {
	m.Called()
}

func (m *MockNavigator) CurrentRaster() image.Image {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(image.Image)
}

func (m *MockNavigator) IsReady() bool {
	args := m.Called()
	return args.Bool(0)
}

// fixedViewport is a ViewportProvider with a settable size.
type fixedViewport struct {
	vp geometry.Viewport
}

func (f *fixedViewport) Viewport() geometry.Viewport {
	return f.vp
}

// pump stands in for the UI event loop: dispatched functions queue up until
// the test runs them.
type pump struct {
	calls chan func()
}

func newPump() *pump {
	return &pump{calls: make(chan func(), 16)}
}

func (p *pump) dispatch(fn func()) {
	p.calls <- fn
}

func (p *pump) next(t *testing.T) {
	t.Helper()
	select {
	case fn := <-p.calls:
		fn()
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a dispatched render")
	}
}

func createGradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}
