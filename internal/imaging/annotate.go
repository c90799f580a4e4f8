package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// AnnotatedBox is one bounding box to render onto an image.
type AnnotatedBox struct {
	// Region is the box to outline, in image coordinates.
	Region Region

	// Label is drawn just inside the top-left corner of the box.
	// Uppercase letters and digits render; other characters are skipped.
	Label string

	// Class selects the outline color from the class palette. Boxes with
	// the same class get the same color.
	Class int
}

// AnnotateResult contains the annotated image as encoded data.
type AnnotateResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Count       int    `json:"count"`
}

// AnnotateBoxes draws bounding-box outlines with labels onto a copy of an
// image and returns it as base64-encoded PNG.
//
// This backs the tool that visualizes a cleaned or fused detection set on
// its source frame.
//
// Parameters:
//   - img: Source image. It is not modified.
//   - boxes: The boxes to render. Box regions may extend past the image
//     edges; drawing is clipped, not rejected, since detectors near a frame
//     border routinely emit such boxes.
//   - scale: Optional scale factor applied to the final image. Values <= 0
//     or exactly 1.0 leave it unscaled.
func AnnotateBoxes(img image.Image, boxes []AnnotatedBox, scale float64) (*AnnotateResult, error) {
	bounds := img.Bounds()

	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	for _, b := range boxes {
		c := classColor(b.Class)
		drawOutline(result, b.Region, c)
		if b.Label != "" {
			drawLabel(result, b.Region.X1+3, b.Region.Y1+3, b.Label,
				color.RGBA{255, 255, 255, 255}, c)
		}
	}

	var out image.Image = result
	if scale > 0 && scale != 1.0 {
		newWidth := int(float64(bounds.Dx()) * scale)
		newHeight := int(float64(bounds.Dy()) * scale)
		out = imaging.Resize(result, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode annotated image: %w", err)
	}

	return &AnnotateResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Count:       len(boxes),
	}, nil
}

// classColor returns a stable, saturated outline color for a class index.
//
// Hues are spaced around the color wheel by the golden angle, so small class
// sets (face/weapon/mask today) get visually distinct colors and new classes
// keep working without a hand-maintained palette.
func classColor(class int) color.RGBA {
	if class < 0 {
		class = -class
	}
	hue := math.Mod(float64(class)*137.508, 360)
	r, g, b := colorful.Hsv(hue, 0.85, 0.95).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawOutline draws a 2-pixel rectangle outline, clipped to the image.
func drawOutline(img *image.RGBA, r Region, c color.RGBA) {
	for t := 0; t < 2; t++ {
		for x := r.X1; x <= r.X2; x++ {
			setClipped(img, x, r.Y1+t, c)
			setClipped(img, x, r.Y2-t, c)
		}
		for y := r.Y1; y <= r.Y2; y++ {
			setClipped(img, r.X1+t, y, c)
			setClipped(img, r.X2-t, y, c)
		}
	}
}

// setClipped sets a pixel if it lies within the image bounds.
func setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	b := img.Bounds()
	if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
		img.SetRGBA(x, y, c)
	}
}

// glyphs is a 3x5 bitmap font covering digits and the uppercase letters the
// class labels need. Rows are listed top to bottom; '1' marks a lit pixel.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'A': {"010", "101", "111", "101", "101"},
	'C': {"111", "100", "100", "100", "111"},
	'E': {"111", "100", "111", "100", "111"},
	'F': {"111", "100", "111", "100", "100"},
	'K': {"101", "101", "110", "101", "101"},
	'M': {"101", "111", "111", "101", "101"},
	'N': {"110", "101", "101", "101", "101"},
	'O': {"111", "101", "101", "101", "111"},
	'P': {"111", "101", "111", "100", "100"},
	'S': {"111", "100", "111", "001", "111"},
	'W': {"101", "101", "111", "111", "101"},
}

// drawLabel draws a small text label with a filled background at the given
// position, clipped to the image. Characters without a glyph advance the
// cursor but draw nothing.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			setClipped(img, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					setClipped(img, cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
