package content

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Glance/pkg/raster"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestAlbum_Navigation(t *testing.T) {
	a := NewAlbum(
		NewItem("a.png", solid(1, 1, color.White)),
		NewItem("b.png", solid(2, 2, color.White)),
		NewItem("c.png", solid(3, 3, color.White)),
	)
	require.True(t, a.IsReady())
	assert.Equal(t, 3, a.Len())

	name := func() string {
		item, ok := a.Current()
		require.True(t, ok)
		return item.Name
	}

	assert.Equal(t, "a.png", name())
	a.Advance()
	assert.Equal(t, "b.png", name())
	a.Advance()
	a.Advance()
	assert.Equal(t, "a.png", name(), "advance wraps to the start")
	a.Retreat()
	assert.Equal(t, "c.png", name(), "retreat wraps to the end")
	assert.Equal(t, 3, a.CurrentRaster().Bounds().Dx())

	assert.True(t, a.Select(1))
	assert.Equal(t, 1, a.Index())
	assert.False(t, a.Select(3))
	assert.Equal(t, 1, a.Index())
}

func TestAlbum_Empty(t *testing.T) {
	a := NewAlbum()
	assert.False(t, a.IsReady())
	assert.Nil(t, a.CurrentRaster())
	a.Advance()
	a.Retreat()
	_, ok := a.Current()
	assert.False(t, ok)
}

func TestNewItem_UniqueIDs(t *testing.T) {
	a := NewItem("x", nil)
	b := NewItem("x", nil)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAlbum_ItemsIsCopy(t *testing.T) {
	a := NewAlbum(NewItem("a.png", nil))
	items := a.Items()
	items[0].Name = "changed"
	item, _ := a.Current()
	assert.Equal(t, "a.png", item.Name)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, img image.Image) {
		data, err := raster.EncodePNG(img)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}
	write("b.png", solid(20, 10, color.Black))
	write("a.png", solid(10, 20, color.White))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("nope"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0755))

	album, err := LoadDir(context.Background(), dir, 2)
	require.NoError(t, err)
	require.Equal(t, 2, album.Len())

	items := album.Items()
	assert.Equal(t, "a.png", items[0].Name)
	assert.Equal(t, "b.png", items[1].Name)
	assert.Equal(t, image.Rect(0, 0, 10, 20), items[0].Raster.Bounds())
}

func TestLoadDir_Missing(t *testing.T) {
	_, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "missing"), 2)
	assert.Error(t, err)
}

func TestLoadDir_Canceled(t *testing.T) {
	dir := t.TempDir()
	data, err := raster.EncodePNG(solid(4, 4, color.White))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), data, 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = LoadDir(ctx, dir, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
