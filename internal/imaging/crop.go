package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int // Left edge (inclusive)
	Y1 int // Top edge (inclusive)
	X2 int // Right edge (exclusive)
	Y2 int // Bottom edge (exclusive)
}

// CropResult contains an extracted image region as encoded data.
type CropResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// CropRegion extracts a rectangular region from an image and returns it as
// base64-encoded PNG.
//
// This backs the tool that zooms into a single detected box for closer
// inspection.
//
// Parameters:
//   - img: Source image.
//   - region: The region to extract. Must lie inside the image bounds and
//     have positive extent on both axes.
//   - scale: Optional scale factor applied after cropping (e.g. 2.0 to
//     double the size). Values <= 0 or exactly 1.0 leave the crop unscaled.
//
// Returns an error if the region is inverted, empty, or outside the image.
func CropRegion(img image.Image, region Region, scale float64) (*CropResult, error) {
	bounds := img.Bounds()

	if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	if region.X1 < bounds.Min.X || region.Y1 < bounds.Min.Y ||
		region.X2 > bounds.Max.X || region.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			region.X1, region.Y1, region.X2, region.Y2,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	cropped := imaging.Crop(img, image.Rect(region.X1, region.Y1, region.X2, region.Y2))

	if scale > 0 && scale != 1.0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return &CropResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
