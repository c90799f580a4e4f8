package imaging

import "fmt"

// ConvertRGBToBGR reorders the frame's channels from RGB to BGR in place.
//
// The red and blue channel of every pixel are swapped and the frame's layout
// tag is flipped to LayoutBGR. The green channel is untouched.
//
// Returns an error without modifying the frame if it is not currently in
// LayoutRGB. Converting an already-converted frame must fail rather than
// silently reorder the channels back.
func (f *Frame) ConvertRGBToBGR() error {
	if f.Layout != LayoutRGB {
		return fmt.Errorf("cannot convert %s frame to bgr: source must be rgb", f.Layout)
	}
	f.swapOuterChannels()
	f.Layout = LayoutBGR
	return nil
}

// ConvertBGRToRGB reorders the frame's channels from BGR to RGB in place.
//
// This is the inverse of ConvertRGBToBGR: the same byte swap with the
// opposite layout check and tag.
func (f *Frame) ConvertBGRToRGB() error {
	if f.Layout != LayoutBGR {
		return fmt.Errorf("cannot convert %s frame to rgb: source must be bgr", f.Layout)
	}
	f.swapOuterChannels()
	f.Layout = LayoutRGB
	return nil
}

// Convert reorders the frame's channels to the target layout in place.
//
// Only the RGB<->BGR swaps are supported; grayscale frames cannot be
// converted (the color information is gone), and nothing converts to
// grayscale in place (the channel count would change).
func (f *Frame) Convert(target Layout) error {
	switch {
	case target == f.Layout:
		return fmt.Errorf("frame is already %s", f.Layout)
	case f.Layout == LayoutRGB && target == LayoutBGR:
		return f.ConvertRGBToBGR()
	case f.Layout == LayoutBGR && target == LayoutRGB:
		return f.ConvertBGRToRGB()
	default:
		return fmt.Errorf("unsupported conversion %s -> %s", f.Layout, target)
	}
}

// swapOuterChannels swaps the first and third byte of every pixel.
// The caller guarantees the frame has three channels.
func (f *Frame) swapOuterChannels() {
	for i := 0; i < len(f.Pix); i += 3 {
		f.Pix[i], f.Pix[i+2] = f.Pix[i+2], f.Pix[i]
	}
}
