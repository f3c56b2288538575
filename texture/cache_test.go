package texture

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pictriage/pictriage/swipe"
)

// writePNG writes a w x h solid-color PNG under dir and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func testPlaceholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	return img
}

func TestEnsureLoadedDecodesAndCaches(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", 64, 32)
	cache := NewCache(DefaultMaxSize, testPlaceholder())

	item := swipe.NewItem(path, "a")
	cache.EnsureLoaded(item)

	if !cache.IsResident(item.ID) {
		t.Fatal("item not resident after EnsureLoaded")
	}
	if cache.IsPlaceholder(item.ID) {
		t.Error("readable image should not use the placeholder")
	}
	if got := cache.DimensionsOf(item.ID); got != (Size{64, 32}) {
		t.Errorf("dimensions = %v, want {64 32}", got)
	}
	if cache.Pixels(item.ID) == nil {
		t.Error("expected decoded pixels")
	}
}

func TestEnsureLoadedIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", 16, 16)
	cache := NewCache(DefaultMaxSize, testPlaceholder())

	item := swipe.NewItem(path, "a")
	cache.EnsureLoaded(item)
	first := cache.Pixels(item.ID)

	// Remove the file: a second EnsureLoaded must not re-decode.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	cache.EnsureLoaded(item)

	if cache.Pixels(item.ID) != first {
		t.Error("second EnsureLoaded replaced the cached buffer")
	}
	if cache.IsPlaceholder(item.ID) {
		t.Error("resident entry must survive source deletion")
	}
}

func TestEnsureLoadedCapsResolution(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "big.png", 200, 100)
	cache := NewCache(Size{W: 50, H: 50}, testPlaceholder())

	item := swipe.NewItem(path, "big")
	cache.EnsureLoaded(item)

	if got := cache.DimensionsOf(item.ID); got != (Size{50, 25}) {
		t.Errorf("dimensions = %v, want {50 25}", got)
	}
}

func TestEnsureLoadedNeverUpscales(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "small.png", 20, 10)
	cache := NewCache(Size{W: 1080, H: 1080}, testPlaceholder())

	item := swipe.NewItem(path, "small")
	cache.EnsureLoaded(item)

	if got := cache.DimensionsOf(item.ID); got != (Size{20, 10}) {
		t.Errorf("dimensions = %v, want {20 10}", got)
	}
}

func TestMissingSourceSubstitutesPlaceholder(t *testing.T) {
	cache := NewCache(DefaultMaxSize, testPlaceholder())

	item := swipe.NewItem("/nonexistent/image.png", "gone")
	cache.EnsureLoaded(item)

	if !cache.IsResident(item.ID) {
		t.Fatal("placeholder entry must be resident")
	}
	if !cache.IsPlaceholder(item.ID) {
		t.Error("expected placeholder entry for unreadable source")
	}
	if got := cache.DimensionsOf(item.ID); got != (Size{8, 8}) {
		t.Errorf("placeholder dimensions = %v, want {8 8}", got)
	}
}

func TestCorruptSourceSubstitutesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache := NewCache(DefaultMaxSize, testPlaceholder())

	item := swipe.NewItem(path, "corrupt")
	cache.EnsureLoaded(item)

	if !cache.IsPlaceholder(item.ID) {
		t.Error("expected placeholder entry for corrupt source")
	}
}

func TestEvict(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", 10, 10)
	cache := NewCache(DefaultMaxSize, testPlaceholder())

	item := swipe.NewItem(path, "a")
	cache.EnsureLoaded(item)
	cache.Evict(item.ID)

	if cache.IsResident(item.ID) {
		t.Error("item still resident after Evict")
	}

	// Evicting again, or evicting an unknown id, is a no-op.
	cache.Evict(item.ID)
	cache.Evict("never-loaded")
}

func TestDimensionsOfNonResidentPanics(t *testing.T) {
	cache := NewCache(DefaultMaxSize, testPlaceholder())
	defer func() {
		if recover() == nil {
			t.Error("DimensionsOf on non-resident id did not panic")
		}
	}()
	cache.DimensionsOf("absent")
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(DefaultMaxSize, testPlaceholder())

	var items []swipe.Item
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		path := writePNG(t, dir, name, 10, 10)
		it := swipe.NewItem(path, name)
		cache.EnsureLoaded(it)
		items = append(items, it)
	}
	if cache.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cache.Len())
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cache.Len())
	}
	for _, it := range items {
		if cache.IsResident(it.ID) {
			t.Errorf("item %s still resident after Clear", it.Label)
		}
	}
}

func TestResidentIDs(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(DefaultMaxSize, testPlaceholder())

	a := swipe.NewItem(writePNG(t, dir, "a.png", 4, 4), "a")
	b := swipe.NewItem(writePNG(t, dir, "b.png", 4, 4), "b")
	cache.EnsureLoaded(a)
	cache.EnsureLoaded(b)

	ids := cache.ResidentIDs()
	if len(ids) != 2 {
		t.Fatalf("ResidentIDs() returned %d ids, want 2", len(ids))
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen[a.ID] || !seen[b.ID] {
		t.Errorf("ResidentIDs() = %v, missing expected ids", ids)
	}
}
