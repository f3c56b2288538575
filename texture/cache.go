// Package texture owns the decoded pixel data for queue items: a
// resident cache keyed by item ID with a decode-time resolution cap,
// plus the best-fit geometry shared with the display layer. All decode
// and scaling work is CPU-side; GPU textures are created lazily and
// only touched by the rendering code.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/pictriage/pictriage/swipe"
)

// DefaultMaxSize is the decode resolution ceiling. Sources larger than
// this are downscaled before caching so memory use is bounded by the
// window size, not by source image dimensions.
var DefaultMaxSize = Size{W: 1080, H: 1080}

type entry struct {
	pixels      *image.RGBA
	size        Size
	placeholder bool
	gpu         *ebiten.Image // created on first Texture call
}

// Cache maps item IDs to decoded, capped pixel buffers. An entry
// exists exactly while its id is inside the scheduler's window. Not
// safe for concurrent use; all access happens on the UI update turn.
type Cache struct {
	maxSize     Size
	placeholder *image.RGBA
	entries     map[string]*entry
}

// NewCache creates a cache with the given resolution ceiling. The
// placeholder image is substituted for items whose source cannot be
// read or decoded; passing nil uses a flat dark fill.
func NewCache(maxSize Size, placeholder image.Image) *Cache {
	c := &Cache{
		maxSize: maxSize,
		entries: make(map[string]*entry),
	}
	if placeholder != nil {
		c.placeholder = c.scale(placeholder)
	} else {
		c.placeholder = flatFill(Size{W: 120, H: 90})
	}
	return c
}

// EnsureLoaded decodes the item's source into the cache. Already
// resident ids are a no-op. Unreadable or corrupt sources substitute
// the placeholder buffer and log a diagnostic; this is recoverable,
// never fatal.
func (c *Cache) EnsureLoaded(item swipe.Item) {
	if _, ok := c.entries[item.ID]; ok {
		return
	}

	src, err := decodeFile(item.SourcePath)
	if err != nil {
		log.Printf("texture: falling back to placeholder for %s: %v", item.SourcePath, err)
		c.entries[item.ID] = &entry{
			pixels:      c.placeholder,
			size:        Size{W: c.placeholder.Bounds().Dx(), H: c.placeholder.Bounds().Dy()},
			placeholder: true,
		}
		return
	}

	pixels := c.scale(src)
	c.entries[item.ID] = &entry{
		pixels: pixels,
		size:   Size{W: pixels.Bounds().Dx(), H: pixels.Bounds().Dy()},
	}
}

// Evict releases the decoded image for id. Absent ids are a no-op.
func (c *Cache) Evict(id string) {
	e, ok := c.entries[id]
	if !ok {
		return
	}
	if e.gpu != nil {
		e.gpu.Deallocate()
	}
	delete(c.entries, id)
}

// IsResident reports whether id has a decoded buffer in the cache.
func (c *Cache) IsResident(id string) bool {
	_, ok := c.entries[id]
	return ok
}

// IsPlaceholder reports whether the resident entry for id is the
// substitute buffer rather than the item's own image.
func (c *Cache) IsPlaceholder(id string) bool {
	e, ok := c.entries[id]
	return ok && e.placeholder
}

// DimensionsOf returns the capped intrinsic size of the resident entry
// for id. Asking for a non-resident id is a caller bug: residency must
// be ensured by the scheduler before the display reads dimensions.
func (c *Cache) DimensionsOf(id string) Size {
	e, ok := c.entries[id]
	if !ok {
		panic(fmt.Sprintf("texture: dimensions of non-resident id %q", id))
	}
	return e.size
}

// Pixels returns the decoded buffer for id, nil when not resident.
func (c *Cache) Pixels(id string) *image.RGBA {
	if e, ok := c.entries[id]; ok {
		return e.pixels
	}
	return nil
}

// Texture returns the GPU texture for id, creating it from the cached
// pixels on first use. Panics when id is not resident.
func (c *Cache) Texture(id string) *ebiten.Image {
	e, ok := c.entries[id]
	if !ok {
		panic(fmt.Sprintf("texture: texture of non-resident id %q", id))
	}
	if e.gpu == nil {
		e.gpu = ebiten.NewImageFromImage(e.pixels)
	}
	return e.gpu
}

// ResidentIDs returns the ids currently held by the cache.
func (c *Cache) ResidentIDs() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of resident entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Clear evicts every entry. Used on teardown and after queue
// replacement when no resync will follow.
func (c *Cache) Clear() {
	for id := range c.entries {
		c.Evict(id)
	}
}

// scale converts src to RGBA, downscaling to the ceiling when needed.
// Images already within the ceiling are never upscaled.
func (c *Cache) scale(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	content := Size{W: bounds.Dx(), H: bounds.Dy()}
	target := FitWithin(content, c.maxSize)

	dst := image.NewRGBA(image.Rect(0, 0, target.W, target.H))
	if target == content {
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	} else {
		// CPU scaling keeps large temporary buffers off the GPU.
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	}
	return dst
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func flatFill(size Size) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0x25
		img.Pix[i+1] = 0x25
		img.Pix[i+2] = 0x3a
		img.Pix[i+3] = 0xff
	}
	return img
}
