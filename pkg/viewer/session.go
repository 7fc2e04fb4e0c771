package viewer

import (
	"errors"
	"fmt"
	"image"

	"github.com/dixieflatline76/Glance/config"
	"github.com/dixieflatline76/Glance/pkg/content"
	"github.com/dixieflatline76/Glance/pkg/geometry"
	"github.com/dixieflatline76/Glance/pkg/gesture"
	"github.com/dixieflatline76/Glance/pkg/raster"
	"github.com/dixieflatline76/Glance/util/log"
)

// ErrNotReady is returned when there is no image to show yet.
var ErrNotReady = errors.New("content not ready")

// ViewportProvider reports the current size of the drawing area. It returns a
// zero viewport until the window has been laid out.
type ViewportProvider interface {
	Viewport() geometry.Viewport
}

// ViewportFunc adapts a function to ViewportProvider.
type ViewportFunc func() geometry.Viewport

// Viewport implements ViewportProvider.
func (f ViewportFunc) Viewport() geometry.Viewport { return f() }

// Dispatcher runs fn on the goroutine that owns the session (the UI thread).
type Dispatcher func(fn func())

// Session is the state of one full-screen view: which image is shown, how far
// it is zoomed and panned, and which filters are on.
//
// A Session is not safe for concurrent use. All methods, and the functions
// passed to the Dispatcher, must run on the same goroutine.
type Session struct {
	nav      content.Navigator
	viewport ViewportProvider
	tuning   config.Tuning
	dispatch Dispatcher

	mapper gesture.Mapper
	swipe  gesture.SwipeDetector
	state  gesture.State

	filters  FilterSet
	source   image.Image
	filtered image.Image
	ticket   uint64
	renderer *Renderer

	onChange func()
}

// NewSession creates a session over nav. Render results are handed back
// through dispatch.
func NewSession(nav content.Navigator, vp ViewportProvider, t config.Tuning, dispatch Dispatcher) *Session {
	s := &Session{
		nav:      nav,
		viewport: vp,
		tuning:   t,
		dispatch: dispatch,
		mapper:   gesture.Mapper{Exponent: t.ZoomExponent},
		swipe:    gesture.SwipeDetector{Divisor: t.SwipeDivisor},
		state:    gesture.Identity(),
	}
	s.renderer = NewRenderer(t, func(res RenderResult) {
		s.dispatch(func() { s.accept(res) })
	})
	return s
}

// OnChange registers fn to be called whenever the visible frame may have changed.
func (s *Session) OnChange(fn func()) {
	s.onChange = fn
}

// Refresh reloads the current image from the navigator, resets the gesture
// state and re-renders the filters.
func (s *Session) Refresh() {
	s.state.Reset()
	s.source = nil
	s.filtered = nil
	if s.nav.IsReady() {
		s.source = s.nav.CurrentRaster()
	}
	s.render()
	s.changed()
}

// Stop cancels background rendering.
func (s *Session) Stop() {
	s.renderer.Stop()
}

// State returns the current gesture state.
func (s *Session) State() gesture.State {
	return s.state
}

// Filters returns the current filter selection.
func (s *Session) Filters() FilterSet {
	return s.filters
}

// Rendering reports whether a filter render is still in flight.
func (s *Session) Rendering() bool {
	return s.renderer.Busy()
}

// Zoom changes the scale factor by delta within the configured range.
func (s *Session) Zoom(delta float64) {
	s.state.Zoom(delta, s.tuning.MinScale, s.tuning.MaxScale)
	if !s.state.Zoomed() {
		s.state.Drag = gesture.Offset{}
	}
	s.changed()
}

// ResetZoom returns to the unzoomed, centred view of the current image.
func (s *Session) ResetZoom() {
	s.state.Reset()
	s.changed()
}

// Drag adds a drag delta in display pixels. While zoomed it pans; at rest a
// long enough horizontal drag swipes to the next or previous image, which is
// returned.
func (s *Session) Drag(dx, dy float64) gesture.Swipe {
	s.state.Pan(dx, dy)

	swipe := s.swipe.Detect(s.state, s.viewport.Viewport())
	switch swipe {
	case gesture.SwipeAdvance:
		s.Next()
	case gesture.SwipeRetreat:
		s.Previous()
	default:
		s.changed()
	}
	return swipe
}

// EndDrag finishes a drag. A drag at rest that did not swipe is discarded so
// the next one starts from zero.
func (s *Session) EndDrag() {
	if !s.state.Zoomed() {
		s.state.Drag = gesture.Offset{}
	}
}

// Next shows the next image.
func (s *Session) Next() {
	s.nav.Advance()
	s.Refresh()
}

// Previous shows the previous image.
func (s *Session) Previous() {
	s.nav.Retreat()
	s.Refresh()
}

// Select shows the image at index i when the navigator is an album.
func (s *Session) Select(i int) {
	album, ok := s.nav.(*content.Album)
	if !ok || !album.Select(i) {
		return
	}
	s.Refresh()
}

// ToggleFilter switches f and re-renders. It returns the new state of f.
func (s *Session) ToggleFilter(f Filter) bool {
	on := s.filters.Toggle(f)
	log.Debugf("Filter %s set to %v, active: %s", f, on, s.filters)
	s.filtered = nil
	s.render()
	s.changed()
	return on
}

// Frame returns the part of the current image that should be on screen. The
// drag is re-based when the view hits an image edge. While filters are being
// rendered the unfiltered image is used.
func (s *Session) Frame() (image.Image, error) {
	img := s.display()
	if img == nil {
		return nil, ErrNotReady
	}

	size := geometry.SizeOf(img)
	crop, err := s.mapper.Crop(size, s.viewport.Viewport(), s.state)
	if errors.Is(err, geometry.ErrUndefinedViewport) {
		log.Debugf("Viewport not ready, showing full image: %v", err)
		return img, nil
	}
	if err != nil {
		return nil, err
	}
	s.state.Drag = crop.Drag

	if crop.Rect == geometry.Full(size) {
		return img, nil
	}
	return raster.Crop(img, crop.Rect)
}

// Snapshot encodes the current frame as PNG.
func (s *Session) Snapshot() ([]byte, error) {
	img, err := s.Frame()
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return raster.EncodePNG(img)
}

// Export encodes the current frame in the format named by ext (".jpg", ".png",
// ...), using the configured JPEG quality. Unknown or empty extensions fall
// back to PNG.
func (s *Session) Export(ext string) ([]byte, error) {
	img, err := s.Frame()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	data, err := raster.Encode(img, ext, s.tuning.EncodingQuality)
	if errors.Is(err, raster.ErrUnsupportedFormat) {
		log.Debugf("Exporting %q as PNG: %v", ext, err)
		return s.Snapshot()
	}
	return data, err
}

func (s *Session) display() image.Image {
	if s.filtered != nil {
		return s.filtered
	}
	return s.source
}

func (s *Session) render() {
	if s.source == nil || s.filters.Empty() {
		s.renderer.Invalidate()
		s.ticket = 0
		s.filtered = s.source
		return
	}

	id := ""
	if album, ok := s.nav.(*content.Album); ok {
		if item, ok := album.Current(); ok {
			id = item.ID
		}
	}
	s.ticket = s.renderer.Submit(RenderRequest{ItemID: id, Image: s.source, Filters: s.filters})
}

func (s *Session) accept(res RenderResult) {
	if res.Ticket != s.ticket {
		return
	}
	for _, err := range res.Skipped {
		log.Printf("Skipping filter: %v", err)
	}
	s.filtered = res.Image
	s.changed()
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
