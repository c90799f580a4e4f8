// Package imaging provides frame handling for the detection MCP server.
//
// This package implements the image side of the pipeline: raw pixel frames
// with an explicit channel layout, layout conversion, a thread-safe frame
// cache, and the two image outputs the tool surface exposes (cropping a
// detected region and rendering an annotation overlay).
//
// # Frames and Layouts
//
// A Frame is a width, a height, a channel Layout, and a flat pixel buffer.
// Three layouts exist:
//   - LayoutGray: one channel per pixel
//   - LayoutRGB: three channels, red first
//   - LayoutBGR: three channels, blue first
//
// Detectors downstream consume BGR buffers while Go's image decoders produce
// RGB-ordered data, so the RGB/BGR conversion is the load-bearing operation
// here. Conversion is strict: converting a frame that is not in the expected
// source layout fails with an error and leaves the frame untouched, rather
// than silently reordering channels twice.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward. Regions use inclusive
// (X1, Y1) and exclusive (X2, Y2).
//
// # Thread Safety
//
// The FrameCache type is safe for concurrent use. Frames themselves are not:
// in-place layout conversion on a shared frame must be synchronized by the
// caller. The crop and annotate operations only read their input image.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Pixel buffers whose length does not match width*height*channels
//   - Layout conversions from the wrong source layout
//   - Crop regions outside the image bounds
//   - File I/O or decode errors while loading frames
package imaging
