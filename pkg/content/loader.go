package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/dixieflatline76/Glance/pkg/raster"
	"github.com/dixieflatline76/Glance/util/log"
)

// LoadDir decodes every supported image in dir into an album ordered by file
// name. Files that fail to decode are logged and skipped. At most workers files
// are decoded at once.
func LoadDir(ctx context.Context, dir string, workers int) (*Album, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !raster.IsSupported(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	decoded := make([]*Item, len(names))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				log.Printf("Skipping %s: %v", name, err)
				return nil
			}
			img, err := raster.Decode(data)
			if err != nil {
				log.Printf("Skipping %s: %v", name, err)
				return nil
			}
			item := NewItem(name, img)
			decoded[i] = &item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(decoded))
	for _, item := range decoded {
		if item != nil {
			items = append(items, *item)
		}
	}
	log.Debugf("Loaded %d of %d images from %s", len(items), len(names), dir)
	return NewAlbum(items...), nil
}
