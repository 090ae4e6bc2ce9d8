package contour

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// PropertiesResult holds the geometric properties of a closed contour.
type PropertiesResult struct {
	// Centroid is the area-weighted center of the enclosed region, not
	// the mean of the vertices.
	Centroid Point `json:"centroid"`

	// Perimeter is the total boundary length, including the closing edge
	// from the last vertex back to the first. Always non-negative.
	Perimeter float64 `json:"perimeter"`

	// Area is the signed enclosed area. In image coordinates (y downward)
	// it is negative for contours traversed clockwise on screen and
	// positive for counter-clockwise traversal, so the sign carries the
	// orientation.
	Area float64 `json:"area"`
}

// Properties computes the centroid, perimeter and signed area of a closed
// polygonal contour.
//
// Parameters:
//   - x, y: Vertex coordinates in traversal order. Both must have the
//     same length N >= 3. The contour may be stored open; the closing
//     edge from the last vertex back to the first is always included.
//
// Returns:
//   - *PropertiesResult: Centroid, perimeter and signed area.
//   - error: ErrDegenerateContour if the signed area is exactly zero
//     (coincident or collinear vertices), which leaves the centroid
//     undefined; a plain error for mismatched or too short inputs.
//
// # Algorithm
//
// Vertices are first translated by their mean. The shift changes neither
// perimeter nor area but keeps the moment sums well-conditioned for
// contours far from the origin.
//
// With wraparound differences dx[i] = x[i+1]-x[i] and dy[i] = y[i+1]-y[i],
//
//	area      = sum(y*dx - x*dy) / 2
//	perimeter = sum(sqrt(dx^2 + dy^2))
//
// which is the shoelace formula for the area. The centroid comes from the
// exact boundary integrals of x and y over the enclosed region, not from a
// vertex average:
//
//	Ma = sum((y*dx^2 - x^2*dy)/4 + x*y*dx/2 + dx^2*dy/12)
//	Mb = sum((y^2*dx - x*dy^2)/4 - x*y*dy/2 - dy^2*dx/12)
//
// and centroid = (Ma/area + mean(x), Mb/area + mean(y)).
//
// # Sign Convention
//
// Orientation is judged in image coordinates, with y increasing downward:
// clockwise on screen means negative area, counter-clockwise positive.
//
// The function is pure: identical inputs yield identical results and the
// input slices are never modified.
func Properties(x, y []float64) (*PropertiesResult, error) {
	if len(x) != len(y) {
		return nil, errors.Errorf("coordinate length mismatch: %d x values, %d y values", len(x), len(y))
	}
	if len(x) < 3 {
		return nil, errors.Errorf("a contour needs at least 3 vertices, got %d", len(x))
	}

	// Center the data around the mean of the vertices.
	xm := stat.Mean(x, nil)
	ym := stat.Mean(y, nil)

	n := len(x)
	var area, perimeter, ma, mb float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n // wraparound closes the contour if needed
		xi, yi := x[i]-xm, y[i]-ym
		dx := x[j] - x[i]
		dy := y[j] - y[i]

		area += yi*dx - xi*dy
		perimeter += math.Hypot(dx, dy)

		// Boundary moments needed for the centroid position.
		ma += (yi*dx*dx-xi*xi*dy)/4 + xi*yi*dx/2 + dx*dx*dy/12
		mb += (yi*yi*dx-xi*dy*dy)/4 - xi*yi*dy/2 - dy*dy*dx/12
	}
	area /= 2

	if area == 0 {
		return nil, errors.Wrap(ErrDegenerateContour, "zero area leaves the centroid undefined")
	}

	return &PropertiesResult{
		Centroid:  Point{X: ma/area + xm, Y: mb/area + ym},
		Perimeter: perimeter,
		Area:      area,
	}, nil
}
