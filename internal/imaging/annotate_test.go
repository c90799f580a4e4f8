package imaging

import (
	"image/color"
	"testing"
)

func TestAnnotateBoxes(t *testing.T) {
	img := quadrantImage(100, 100)
	boxes := []AnnotatedBox{
		{Region: Region{X1: 10, Y1: 10, X2: 40, Y2: 40}, Label: "FACE", Class: 0},
		{Region: Region{X1: 50, Y1: 50, X2: 90, Y2: 90}, Label: "MASK", Class: 2},
	}

	result, err := AnnotateBoxes(img, boxes, 1.0)
	if err != nil {
		t.Fatalf("AnnotateBoxes failed: %v", err)
	}

	if result.Width != 100 || result.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
	if result.Count != 2 {
		t.Errorf("count: got %d, want 2", result.Count)
	}

	annotated := decodeResultPNG(t, result.ImageBase64)

	// The outline top edge of the first box carries its class color,
	// which differs from the red quadrant underneath.
	want := classColor(0)
	r, g, b, _ := annotated.At(20, 10).RGBA()
	got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}
	if got != want {
		t.Errorf("outline pixel: got %v, want %v", got, want)
	}
}

func TestAnnotateBoxes_Empty(t *testing.T) {
	img := quadrantImage(20, 20)

	result, err := AnnotateBoxes(img, nil, 1.0)
	if err != nil {
		t.Fatalf("AnnotateBoxes failed: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("count: got %d, want 0", result.Count)
	}

	// With no boxes the output must equal the input image.
	annotated := decodeResultPNG(t, result.ImageBase64)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			wr, wg, wb, _ := img.At(x, y).RGBA()
			gr, gg, gb, _ := annotated.At(x, y).RGBA()
			if wr != gr || wg != gg || wb != gb {
				t.Fatalf("pixel (%d,%d) changed with no annotations", x, y)
			}
		}
	}
}

func TestAnnotateBoxes_OutOfBoundsClipped(t *testing.T) {
	// Boxes hanging over the frame edge are clipped, not rejected.
	img := quadrantImage(50, 50)
	boxes := []AnnotatedBox{
		{Region: Region{X1: -10, Y1: -10, X2: 20, Y2: 20}, Label: "FACE", Class: 0},
		{Region: Region{X1: 40, Y1: 40, X2: 70, Y2: 70}, Class: 1},
	}

	result, err := AnnotateBoxes(img, boxes, 1.0)
	if err != nil {
		t.Fatalf("AnnotateBoxes failed: %v", err)
	}
	if result.Count != 2 {
		t.Errorf("count: got %d, want 2", result.Count)
	}
}

func TestAnnotateBoxes_Scaled(t *testing.T) {
	img := quadrantImage(40, 40)
	boxes := []AnnotatedBox{{Region: Region{X1: 5, Y1: 5, X2: 30, Y2: 30}, Class: 1}}

	result, err := AnnotateBoxes(img, boxes, 2.0)
	if err != nil {
		t.Fatalf("AnnotateBoxes failed: %v", err)
	}
	if result.Width != 80 || result.Height != 80 {
		t.Errorf("scaled dimensions: got %dx%d, want 80x80", result.Width, result.Height)
	}
}

func TestClassColor_DistinctAndStable(t *testing.T) {
	seen := map[color.RGBA]int{}
	for class := 0; class < 3; class++ {
		c := classColor(class)
		if prev, ok := seen[c]; ok {
			t.Errorf("classes %d and %d share color %v", prev, class, c)
		}
		seen[c] = class

		if c != classColor(class) {
			t.Errorf("class %d color not stable", class)
		}
	}
}
