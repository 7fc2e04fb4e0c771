package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Glance/pkg/geometry"
	"github.com/dixieflatline76/Glance/pkg/viewer"
)

// ImageView shows the current frame of a viewer session. Scrolling zooms and
// dragging pans, or swipes between images when not zoomed.
type ImageView struct {
	widget.BaseWidget

	session  *viewer.Session
	image    *canvas.Image
	activity *widget.Activity
	zoomStep float64

	// OnInteraction is called when the user zooms or drags.
	OnInteraction func()
}

// NewImageView creates an empty view. Each scroll notch zooms by zoomStep.
func NewImageView(zoomStep float64) *ImageView {
	v := &ImageView{zoomStep: zoomStep}
	v.image = canvas.NewImageFromImage(nil)
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScaleSmooth
	v.activity = widget.NewActivity()
	v.activity.Hide()
	v.ExtendBaseWidget(v)
	return v
}

// SetSession attaches the session whose frames are shown.
func (v *ImageView) SetSession(s *viewer.Session) {
	v.session = s
	v.Update()
}

// Viewport implements viewer.ViewportProvider. It is zero until the view has
// been laid out.
func (v *ImageView) Viewport() geometry.Viewport {
	size := v.Size()
	return geometry.Viewport{W: int(size.Width), H: int(size.Height)}
}

// Update pulls the current frame from the session and redraws.
func (v *ImageView) Update() {
	if v.session == nil {
		return
	}

	frame, err := v.session.Frame()
	if err != nil {
		v.image.Image = nil
	} else {
		v.image.Image = frame
	}
	v.image.Refresh()

	if v.session.Rendering() {
		v.activity.Show()
		v.activity.Start()
	} else {
		v.activity.Stop()
		v.activity.Hide()
	}
}

// Scrolled zooms in when the wheel turns away from the user and out when it
// turns back.
func (v *ImageView) Scrolled(ev *fyne.ScrollEvent) {
	if v.session == nil {
		return
	}
	v.interacted()

	switch {
	case ev.Scrolled.DY > 0:
		v.session.Zoom(v.zoomStep)
	case ev.Scrolled.DY < 0:
		v.session.Zoom(-v.zoomStep)
	}
}

// Dragged pans or swipes.
func (v *ImageView) Dragged(ev *fyne.DragEvent) {
	if v.session == nil {
		return
	}
	v.interacted()
	v.session.Drag(float64(ev.Dragged.DX), float64(ev.Dragged.DY))
}

// DragEnd finishes the gesture.
func (v *ImageView) DragEnd() {
	if v.session == nil {
		return
	}
	v.session.EndDrag()
}

// DoubleTapped resets the zoom.
func (v *ImageView) DoubleTapped(_ *fyne.PointEvent) {
	if v.session == nil {
		return
	}
	v.session.ResetZoom()
}

// CreateRenderer is a Fyne lifecycle method.
func (v *ImageView) CreateRenderer() fyne.WidgetRenderer {
	return &imageViewRenderer{view: v}
}

func (v *ImageView) interacted() {
	if v.OnInteraction != nil {
		v.OnInteraction()
	}
}

type imageViewRenderer struct {
	view *ImageView
}

// Layout resizes the image and re-crops for the new viewport.
func (r *imageViewRenderer) Layout(size fyne.Size) {
	r.view.image.Move(fyne.NewPos(0, 0))
	r.view.image.Resize(size)

	act := r.view.activity.MinSize()
	r.view.activity.Resize(act)
	r.view.activity.Move(fyne.NewPos((size.Width-act.Width)/2, (size.Height-act.Height)/2))

	r.view.Update()
}

func (r *imageViewRenderer) MinSize() fyne.Size { return fyne.NewSize(100, 100) }
func (r *imageViewRenderer) Refresh()           { canvas.Refresh(r.view.image) }
func (r *imageViewRenderer) Destroy()           {}

func (r *imageViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image, r.view.activity}
}

var _ fyne.Widget = (*ImageView)(nil)
var _ fyne.Scrollable = (*ImageView)(nil)
var _ fyne.Draggable = (*ImageView)(nil)
var _ fyne.DoubleTappable = (*ImageView)(nil)
var _ viewer.ViewportProvider = (*ImageView)(nil)
