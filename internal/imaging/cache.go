package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// FrameCache provides thread-safe caching of loaded frames so repeated tool
// calls against the same file avoid redundant disk reads and decodes.
//
// Frames are keyed by their file path. A frame stays in the cache until
// Evict() or Clear() removes it; in-place layout conversions performed on a
// cached frame are visible to later calls, which is what gives the tool
// surface its "active frame" semantics (load once, convert once, then crop
// and annotate the converted frame).
//
// FrameCache is safe for concurrent use by multiple goroutines. Mutating a
// cached frame while another goroutine reads it is not; the server serializes
// tool calls, so this does not arise there.
type FrameCache struct {
	mu     sync.RWMutex
	frames map[string]*Frame
}

// NewFrameCache creates and initializes a new empty frame cache.
func NewFrameCache() *FrameCache {
	return &FrameCache{
		frames: make(map[string]*Frame),
	}
}

// Load retrieves a frame from the cache, or decodes it from disk if absent.
//
// Parameters:
//   - path: Absolute or relative file path. Supported formats are PNG,
//     JPEG, and GIF.
//   - layout: Channel layout to decode into on a cache miss. On a cache hit
//     the cached frame is returned regardless of its current layout, so a
//     frame converted earlier keeps its converted layout.
//
// Returns an error if the file cannot be opened or decoded. Frames are
// keyed by the exact path string; relative and absolute paths to the same
// file produce separate entries.
func (c *FrameCache) Load(path string, layout Layout) (*Frame, error) {
	c.mu.RLock()
	if f, ok := c.frames[path]; ok {
		c.mu.RUnlock()
		return f, nil
	}
	c.mu.RUnlock()

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer fh.Close()

	img, _, err := image.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	frame := FrameFromImage(img, layout)

	c.mu.Lock()
	c.frames[path] = frame
	c.mu.Unlock()

	return frame, nil
}

// Get returns the cached frame for path, or nil if it has not been loaded.
func (c *FrameCache) Get(path string) *Frame {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frames[path]
}

// Evict removes a specific frame from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *FrameCache) Evict(path string) {
	c.mu.Lock()
	delete(c.frames, path)
	c.mu.Unlock()
}

// Clear removes all frames from the cache, freeing the associated memory.
// After Clear(), every frame must be reloaded from disk on the next Load().
func (c *FrameCache) Clear() {
	c.mu.Lock()
	c.frames = make(map[string]*Frame)
	c.mu.Unlock()
}
