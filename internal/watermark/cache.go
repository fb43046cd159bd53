package watermark

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

// SourceCache provides thread-safe caching of decoded mark images so a
// watermark file is read from disk once and then shared, read-only, across
// any number of concurrent pipeline runs.
//
// Cached marks stay in memory until Evict or Clear is called. Callers must
// not mutate a returned image; every consumer in this module treats marks
// as immutable.
type SourceCache struct {
	mu    sync.RWMutex
	marks map[string]image.Image
}

// NewSourceCache creates an empty cache ready for concurrent use.
func NewSourceCache() *SourceCache {
	return &SourceCache{marks: make(map[string]image.Image)}
}

// Load returns the decoded mark for a path, reading and decoding the file
// on first use. Marks are keyed by the exact path string provided.
func (c *SourceCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if mark, ok := c.marks[path]; ok {
		c.mu.RUnlock()
		return mark, nil
	}
	c.mu.RUnlock()

	mark, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load watermark source: %w", err)
	}

	c.mu.Lock()
	c.marks[path] = mark
	c.mu.Unlock()

	return mark, nil
}

// Evict removes a single mark from the cache. Unknown paths are ignored.
func (c *SourceCache) Evict(path string) {
	c.mu.Lock()
	delete(c.marks, path)
	c.mu.Unlock()
}

// Clear removes all cached marks, freeing the associated memory.
func (c *SourceCache) Clear() {
	c.mu.Lock()
	c.marks = make(map[string]image.Image)
	c.mu.Unlock()
}
