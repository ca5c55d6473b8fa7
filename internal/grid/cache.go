package grid

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"
)

// Cache shares loaded grids between the transformations that use the same file.
// Concurrent requests of the same grid wait for a single loading.
// Evicted grids are closed when their last user releases them.
type Cache struct {
	c     *lru.Cache
	group singleflight.Group
	opts  []Option
}

// NewCache creates a cache of at most numEntries grids, loaded with the options
func NewCache(numEntries int, opts ...Option) (*Cache, error) {
	c, err := lru.NewWithEvict(numEntries, func(key, value interface{}) {
		value.(*Grid).evict()
	})
	if err != nil {
		return nil, fmt.Errorf("lru.new: %w", err)
	}
	return &Cache{c: c, opts: opts}, nil
}

// ckey identifies a grid by its file, its load mode and the options that change its content
func ckey(path string, mode LoadMode, opts []Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return fmt.Sprintf("%s-%s-%s-%t-%t", path, mode, o.format, o.authoritative, o.unknownAsZero)
}

// Get returns the grid of the file loaded in the mode, loading it on first use.
// Options are appended to the options of the cache.
// The caller must Release the grid when done with it.
func (c *Cache) Get(ctx context.Context, path string, mode LoadMode, opts ...Option) (*Grid, error) {
	opts = append(append([]Option(nil), c.opts...), opts...)
	key := ckey(path, mode, opts)
	for {
		g, err := c.get(ctx, key, path, mode, opts)
		if err != nil {
			return nil, err
		}
		// an evicted grid is loaded again
		if g.acquire() {
			return g, nil
		}
	}
}

func (c *Cache) get(ctx context.Context, key, path string, mode LoadMode, opts []Option) (*Grid, error) {
	if g, ok := c.c.Get(key); ok {
		return g.(*Grid), nil
	}
	g, err, _ := c.group.Do(key, func() (interface{}, error) {
		if g, ok := c.c.Get(key); ok {
			return g, nil
		}
		g, err := Load(ctx, path, mode, opts...)
		if err != nil {
			return nil, err
		}
		c.c.Add(key, g)
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	return g.(*Grid), nil
}

// Len returns the number of grids in the cache
func (c *Cache) Len() int {
	return c.c.Len()
}

// Purge removes every grid, closing those no longer in use
func (c *Cache) Purge() {
	c.c.Purge()
}
