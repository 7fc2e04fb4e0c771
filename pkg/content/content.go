// Package content holds the images a viewer pages through.
package content

import (
	"image"
	"sync"

	"github.com/google/uuid"
)

// Navigator is the view's source of images.
type Navigator interface {
	Advance()
	Retreat()
	CurrentRaster() image.Image
	IsReady() bool
}

// Item is one image of an album.
type Item struct {
	ID     string
	Name   string
	Raster image.Image
}

// NewItem wraps a decoded raster with a fresh ID.
func NewItem(name string, raster image.Image) Item {
	return Item{ID: uuid.NewString(), Name: name, Raster: raster}
}

// Album is an ordered, wrap-around list of images with a cursor.
// It is safe for concurrent use.
type Album struct {
	mu      sync.RWMutex
	items   []Item
	current int
}

// NewAlbum creates an album positioned on the first item.
func NewAlbum(items ...Item) *Album {
	return &Album{items: items}
}

// Advance moves to the next image, wrapping to the first after the last.
func (a *Album) Advance() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.items) == 0 {
		return
	}
	a.current = (a.current + 1) % len(a.items)
}

// Retreat moves to the previous image, wrapping to the last before the first.
func (a *Album) Retreat() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.items) == 0 {
		return
	}
	a.current = (a.current - 1 + len(a.items)) % len(a.items)
}

// Select moves to the item at index i. Out of range indices are ignored.
func (a *Album) Select(i int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i < 0 || i >= len(a.items) {
		return false
	}
	a.current = i
	return true
}

// CurrentRaster returns the image under the cursor, or nil for an empty album.
func (a *Album) CurrentRaster() image.Image {
	item, ok := a.Current()
	if !ok {
		return nil
	}
	return item.Raster
}

// Current returns the item under the cursor.
func (a *Album) Current() (Item, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if len(a.items) == 0 {
		return Item{}, false
	}
	return a.items[a.current], true
}

// Index returns the cursor position.
func (a *Album) Index() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// IsReady reports whether there is anything to show.
func (a *Album) IsReady() bool {
	return a.Len() > 0
}

// Len returns the number of items.
func (a *Album) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.items)
}

// Items returns a copy of the item list.
func (a *Album) Items() []Item {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Item, len(a.items))
	copy(out, a.items)
	return out
}
