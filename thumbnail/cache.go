// Package thumbnail loads, decodes and caches tile thumbnail images.
package thumbnail

import (
	"bytes"
	"context"
	"image"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/classic-computing/gametiles/logger"
)

// warmWorkers bounds concurrent decodes during prefetch.
const warmWorkers = 2

// Cache memoizes decoded, display-ready thumbnails by path.
//
// Entries live for the lifetime of the cache and are never evicted; a
// user-curated game library is small enough that the growth is bounded
// in practice. A failed load is stored as a negative entry so the
// failing path is read at most once, not retried every frame.
type Cache struct {
	maxWidth  int
	maxHeight int

	mu      sync.Mutex
	entries map[string]*image.RGBA // nil value = negative entry

	group singleflight.Group

	// readFile is swapped in tests to observe I/O.
	readFile func(string) ([]byte, error)
}

// New creates a cache that fits thumbnails into tileWidth x tileHeight.
func New(tileWidth, tileHeight int) *Cache {
	return &Cache{
		maxWidth:  tileWidth,
		maxHeight: tileHeight,
		entries:   make(map[string]*image.RGBA),
		readFile:  os.ReadFile,
	}
}

// Get returns the decoded thumbnail for the given path, or nil when the
// path is empty or the image could not be loaded. The result is shared
// read-only with the caller.
//
// The first call for a path performs the read and decode; every later
// call, including for paths that failed, is a lookup with no I/O.
// Concurrent calls for the same path are collapsed into one load.
func (c *Cache) Get(path string) *image.RGBA {
	// No thumbnail configured; don't pollute the cache with the empty key.
	if path == "" {
		return nil
	}

	c.mu.Lock()
	img, ok := c.entries[path]
	c.mu.Unlock()
	if ok {
		return img
	}

	v, _, _ := c.group.Do(path, func() (interface{}, error) {
		// Re-check under the flight: a caller that raced past the map
		// lookup while a previous flight completed must not load again.
		c.mu.Lock()
		if img, ok := c.entries[path]; ok {
			c.mu.Unlock()
			return img, nil
		}
		c.mu.Unlock()

		img := c.load(path)
		c.mu.Lock()
		c.entries[path] = img
		c.mu.Unlock()
		return img, nil
	})

	img, _ = v.(*image.RGBA)
	return img
}

// Warm prefetches thumbnails for the given paths with bounded
// concurrency, stopping early when the context is cancelled. Load
// failures become negative cache entries, never errors.
func (c *Cache) Warm(ctx context.Context, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmWorkers)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.Get(path)
			return nil
		})
	}

	return g.Wait()
}

// Len returns the number of cache entries, negative entries included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// load reads, decodes and resizes one thumbnail. Any failure is logged
// and absorbed into a nil result.
func (c *Cache) load(path string) *image.RGBA {
	data, err := c.readFile(path)
	if err != nil {
		logger.Warn("thumbnail read failed", zap.String("path", path), zap.Error(err))
		return nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Warn("thumbnail decode failed", zap.String("path", path), zap.Error(err))
		return nil
	}

	return scaleToFit(src, c.maxWidth, c.maxHeight)
}
