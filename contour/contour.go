package contour

import (
	"github.com/pkg/errors"
)

// Errors returned by this package. Every failure is an input-validation
// failure surfaced immediately to the caller; nothing is retried and no
// partial result is ever substituted for an error.
var (
	// ErrInvalidSourceFormat indicates an unrecognized Source tag.
	ErrInvalidSourceFormat = errors.New("invalid source format")

	// ErrDegenerateContour indicates a contour whose signed area is zero,
	// which leaves the centroid undefined.
	ErrDegenerateContour = errors.New("degenerate contour")

	// ErrNoContours indicates an empty contour collection.
	ErrNoContours = errors.New("no contours available")
)

// Point is a 2D position in image coordinates: x increases rightward,
// y increases downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Contour is raw contour data as produced by an external extraction step:
// one row per vertex, two values per row. What the two values mean depends
// on the Source convention the data came from; Coordinates decodes them
// into true (x, y) order.
//
// A contour is an ordered boundary and may be open in storage; operations
// that need a closed polygon always connect the last vertex back to the
// first. This package never mutates contour data.
type Contour [][2]float64

// Source identifies the layout convention of raw contour data.
//
// Exactly two conventions are recognized; any other value is rejected with
// ErrInvalidSourceFormat when the data is decoded.
type Source string

const (
	// SourceScikit is the reversed-axis convention of scikit-image's
	// find_contours: each row stores (row, col), that is (y, x).
	SourceScikit Source = "scikit"

	// SourceOpenCV is the convention of OpenCV's findContours, which
	// shapes contours as (N, 1, 2); with the singleton middle axis
	// flattened away, each row stores (x, y).
	SourceOpenCV Source = "opencv"
)

// Coordinates decodes raw contour data into x and y vertex sequences in
// true (x, y) order, regardless of the input convention.
//
// Parameters:
//   - c: Raw contour data, one row per vertex.
//   - source: The convention c was produced under.
//
// Returns:
//   - x, y: Freshly allocated coordinate sequences of equal length,
//     usable directly in image coordinates.
//   - error: ErrInvalidSourceFormat if source is not a recognized
//     convention.
//
// The transformation is pure; the input is never modified.
func Coordinates(c Contour, source Source) (x, y []float64, err error) {
	switch source {
	case SourceScikit:
		x = make([]float64, len(c))
		y = make([]float64, len(c))
		for i, p := range c {
			y[i], x[i] = p[0], p[1]
		}
	case SourceOpenCV:
		x = make([]float64, len(c))
		y = make([]float64, len(c))
		for i, p := range c {
			x[i], y[i] = p[0], p[1]
		}
	default:
		return nil, nil, errors.Wrapf(ErrInvalidSourceFormat, "%q is not a valid source for contour data", source)
	}
	return x, y, nil
}
