// Package imaging provides in-memory cropping, zone annotation and
// rotation of images.
//
// This package implements the pixel-side companion to contour analysis:
// selecting a rectangular zone from corner points, extracting it, marking
// it on a copy of the image for inspection, and rotating images about an
// arbitrary center. All operations work with standard Go image.Image
// values and return new images; sources are never modified and nothing
// here reads or writes files.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with origin at top-left:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Continuous coordinates place the center of pixel (i, j) at exactly
// (i, j), so corner points are rounded to the nearest pixel center and a
// zone built from two corners includes both end pixels. Zone dimensions
// count pixels: a zone of width w spans columns X through X+w-1.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Crop zones that are empty or reach outside the image bounds
//   - Color strings that do not parse as hex colors
//   - Interpolation modes outside the supported set
//
// # Thread Safety
//
// Operations are stateless and can be called concurrently on different
// images. Concurrent calls on the same source image are safe as long as
// the image itself is not mutated by the caller.
package imaging
