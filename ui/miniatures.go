package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/sync/errgroup"

	"github.com/dixieflatline76/Glance/pkg/content"
	"github.com/dixieflatline76/Glance/pkg/raster"
	"github.com/dixieflatline76/Glance/util/log"
)

// loadMiniatures builds a PNG thumbnail resource for every item, in item order.
// Items whose thumbnail fails get a nil resource.
func loadMiniatures(ctx context.Context, items []content.Item, size, workers int) ([]fyne.Resource, error) {
	res := make([]fyne.Resource, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			thumb, err := raster.Miniature(item.Raster, size)
			if err != nil {
				log.Printf("Skipping miniature for %s: %v", item.Name, err)
				return nil
			}
			data, err := raster.EncodePNG(thumb)
			if err != nil {
				log.Printf("Skipping miniature for %s: %v", item.Name, err)
				return nil
			}
			res[i] = fyne.NewStaticResource(fmt.Sprintf("%s.png", item.ID), data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// miniature is a tappable thumbnail.
type miniature struct {
	widget.BaseWidget

	image    *canvas.Image
	label    *widget.Label
	onTapped func()
}

func newMiniature(thumb fyne.Resource, name string, size float32, onTapped func()) *miniature {
	m := &miniature{onTapped: onTapped}
	if thumb != nil {
		m.image = canvas.NewImageFromResource(thumb)
		m.image.FillMode = canvas.ImageFillContain
		m.image.SetMinSize(fyne.NewSquareSize(size))
	} else {
		m.label = widget.NewLabel(name)
		m.label.Truncation = fyne.TextTruncateEllipsis
	}
	m.ExtendBaseWidget(m)
	return m
}

// Tapped selects the image.
func (m *miniature) Tapped(_ *fyne.PointEvent) {
	if m.onTapped != nil {
		m.onTapped()
	}
}

func (m *miniature) CreateRenderer() fyne.WidgetRenderer {
	if m.image != nil {
		return widget.NewSimpleRenderer(m.image)
	}
	return widget.NewSimpleRenderer(m.label)
}

// newMiniatureStrip lays the thumbnails out in a horizontal scroller. Tapping
// one calls onSelect with its index.
func newMiniatureStrip(thumbs []fyne.Resource, items []content.Item, size int, onSelect func(int)) fyne.CanvasObject {
	row := container.NewHBox()
	for i, thumb := range thumbs {
		row.Add(newMiniature(thumb, items[i].Name, float32(size), func() { onSelect(i) }))
	}
	return container.NewHScroll(row)
}
