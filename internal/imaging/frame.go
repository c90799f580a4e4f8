package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// Layout identifies the channel order of a frame's pixel buffer.
//
// The numeric values match the format tags used by the detector layer:
// 0 = grayscale, 1 = RGB, 2 = BGR.
type Layout int

const (
	LayoutGray Layout = iota // Single luminance channel
	LayoutRGB                // Three channels, red first
	LayoutBGR                // Three channels, blue first
)

// layoutNames maps Layout values to their canonical lowercase names.
var layoutNames = [...]string{"gray", "rgb", "bgr"}

// String returns the lowercase name of the layout, or "unknown(N)" for
// out-of-range values.
func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return fmt.Sprintf("unknown(%d)", int(l))
	}
	return layoutNames[l]
}

// Channels returns the number of bytes per pixel for this layout.
func (l Layout) Channels() int {
	if l == LayoutGray {
		return 1
	}
	return 3
}

// ParseLayout converts a layout name ("gray", "rgb", "bgr") to its Layout
// value.
func ParseLayout(s string) (Layout, error) {
	for i, name := range layoutNames {
		if s == name {
			return Layout(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pixel layout: %q", s)
}

// Frame is a raw pixel buffer with explicit dimensions and channel layout.
//
// Pix holds Width*Height pixels in row-major order, Channels() bytes each.
// The frame owns its buffer; operations that convert the layout do so in
// place.
type Frame struct {
	Width  int
	Height int
	Layout Layout
	Pix    []uint8
}

// NewFrame constructs a frame over an existing pixel buffer.
//
// Parameters:
//   - width, height: Frame dimensions in pixels. Both must be positive.
//   - layout: Channel layout of pix.
//   - pix: Pixel data, exactly width*height*layout.Channels() bytes.
//     The buffer is used directly, not copied.
//
// Returns an error if the dimensions are not positive or the buffer length
// does not match.
func NewFrame(width, height int, layout Layout, pix []uint8) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}
	want := width * height * layout.Channels()
	if len(pix) != want {
		return nil, fmt.Errorf("pixel buffer is %d bytes, want %d for %dx%d %s",
			len(pix), want, width, height, layout)
	}
	return &Frame{Width: width, Height: height, Layout: layout, Pix: pix}, nil
}

// FrameFromImage converts a decoded image into a raw frame with the given
// layout.
//
// Parameters:
//   - img: Source image. Any color model; components are reduced to 8 bits.
//   - layout: Target channel layout. LayoutGray uses ITU-R BT.601 luminance
//     weights (0.299 R + 0.587 G + 0.114 B).
//
// The alpha channel, if any, is discarded.
func FrameFromImage(img image.Image, layout Layout) *Frame {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	pix := make([]uint8, 0, width*height*layout.Channels())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)

			switch layout {
			case LayoutGray:
				gray := uint8(float64(r8)*0.299 + float64(g8)*0.587 + float64(b8)*0.114)
				pix = append(pix, gray)
			case LayoutBGR:
				pix = append(pix, b8, g8, r8)
			default:
				pix = append(pix, r8, g8, b8)
			}
		}
	}

	return &Frame{Width: width, Height: height, Layout: layout, Pix: pix}
}

// Image converts the frame back into a standard Go image.
//
// LayoutGray frames produce *image.Gray; RGB and BGR frames produce
// *image.RGBA with full opacity. The pixel data is copied, so the returned
// image stays valid if the frame is converted afterwards.
func (f *Frame) Image() image.Image {
	if f.Layout == LayoutGray {
		img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
		copy(img.Pix, f.Pix)
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	i := 0
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			var c color.RGBA
			if f.Layout == LayoutBGR {
				c = color.RGBA{R: f.Pix[i+2], G: f.Pix[i+1], B: f.Pix[i], A: 255}
			} else {
				c = color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: 255}
			}
			img.SetRGBA(x, y, c)
			i += 3
		}
	}
	return img
}

// Info contains frame metadata for the tool surface.
type Info struct {
	// Width is the frame width in pixels.
	Width int `json:"width"`

	// Height is the frame height in pixels.
	Height int `json:"height"`

	// Layout is the channel layout name: "gray", "rgb", or "bgr".
	Layout string `json:"layout"`

	// Channels is the number of bytes per pixel.
	Channels int `json:"channels"`
}

// Info returns the frame's metadata.
func (f *Frame) Info() *Info {
	return &Info{
		Width:    f.Width,
		Height:   f.Height,
		Layout:   f.Layout.String(),
		Channels: f.Layout.Channels(),
	}
}
