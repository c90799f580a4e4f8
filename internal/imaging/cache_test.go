package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a solid-color PNG to a temp file and returns its path.
func writeTestPNG(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return path
}

func TestFrameCache_Load(t *testing.T) {
	path := writeTestPNG(t, 4, 3, color.RGBA{255, 0, 0, 255})
	cache := NewFrameCache()

	f, err := cache.Load(path, LayoutRGB)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if f.Width != 4 || f.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", f.Width, f.Height)
	}
	if f.Layout != LayoutRGB {
		t.Errorf("layout: got %v, want %v", f.Layout, LayoutRGB)
	}
	// First pixel is pure red.
	if f.Pix[0] != 255 || f.Pix[1] != 0 || f.Pix[2] != 0 {
		t.Errorf("first pixel: got %v, want [255 0 0]", f.Pix[:3])
	}
}

func TestFrameCache_LoadCachesFrame(t *testing.T) {
	path := writeTestPNG(t, 2, 2, color.RGBA{0, 255, 0, 255})
	cache := NewFrameCache()

	first, err := cache.Load(path, LayoutRGB)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	second, err := cache.Load(path, LayoutRGB)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	if first != second {
		t.Error("expected the cached frame instance on the second load")
	}
}

func TestFrameCache_CachedConversionSticks(t *testing.T) {
	// A layout conversion on the cached frame must be visible to later
	// loads; this is the "active frame" workflow of the tool surface.
	path := writeTestPNG(t, 2, 2, color.RGBA{255, 0, 0, 255})
	cache := NewFrameCache()

	f, err := cache.Load(path, LayoutRGB)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := f.ConvertRGBToBGR(); err != nil {
		t.Fatalf("ConvertRGBToBGR failed: %v", err)
	}

	again, err := cache.Load(path, LayoutRGB)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if again.Layout != LayoutBGR {
		t.Errorf("layout: got %v, want converted frame from cache", again.Layout)
	}
}

func TestFrameCache_Evict(t *testing.T) {
	path := writeTestPNG(t, 2, 2, color.RGBA{0, 0, 255, 255})
	cache := NewFrameCache()

	if _, err := cache.Load(path, LayoutRGB); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Evict(path)

	if cache.Get(path) != nil {
		t.Error("frame should be gone after Evict")
	}
}

func TestFrameCache_Clear(t *testing.T) {
	pathA := writeTestPNG(t, 2, 2, color.RGBA{1, 2, 3, 255})
	pathB := writeTestPNG(t, 2, 2, color.RGBA{4, 5, 6, 255})
	cache := NewFrameCache()

	if _, err := cache.Load(pathA, LayoutRGB); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := cache.Load(pathB, LayoutRGB); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Clear()
	if cache.Get(pathA) != nil || cache.Get(pathB) != nil {
		t.Error("cache should be empty after Clear")
	}
}

func TestFrameCache_LoadErrors(t *testing.T) {
	cache := NewFrameCache()

	if _, err := cache.Load("/nonexistent/file.png", LayoutRGB); err == nil {
		t.Error("expected error for missing file")
	}

	// A file that is not a valid image must fail to decode.
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := cache.Load(path, LayoutRGB); err == nil {
		t.Error("expected error for undecodable file")
	}
}
