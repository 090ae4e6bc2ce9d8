// Package contour provides geometric analysis of polygonal contours
// extracted from image data.
//
// This package implements the coordinate decoding, shape measurement and
// nearest-contour selection needed to work with contours produced by the
// two common extraction conventions: the reversed-axis (row, col) layout of
// scikit-image and the (x, y) layout of OpenCV. It performs no contour
// extraction of its own and never touches pixel data; all inputs are plain
// coordinate sequences.
//
// # Coordinate System
//
// Decoded coordinates are continuous image coordinates:
//   - X: horizontal position, increasing rightward
//   - Y: vertical position, increasing downward
//
// Because y grows downward, a contour traversed clockwise on screen has
// negative signed area and one traversed counter-clockwise has positive
// signed area.
//
// # Contour Data
//
// Raw contours are ordered vertex lists, one row of two values per vertex.
// The row meaning is ambiguous on its own, so every operation that decodes
// raw data takes a Source tag naming the convention. Contours may be stored
// open; measurements always include the closing edge from the last vertex
// back to the first.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Unrecognized source tags (ErrInvalidSourceFormat)
//   - Zero-area contours whose centroid is undefined (ErrDegenerateContour)
//   - Empty contour collections (ErrNoContours)
//   - Mismatched coordinate lengths or fewer than 3 vertices
//
// Sentinel errors are wrapped with context and can be tested with
// errors.Is.
//
// # Thread Safety
//
// All functions are pure: they never modify their inputs and hold no
// internal state, so they are safe for concurrent use.
package contour
