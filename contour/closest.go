package contour

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Policy selects how the distance between a contour and a reference
// position is measured when ranking contours.
type Policy int

const (
	// PolicyCentroid measures the distance to the arithmetic mean of the
	// contour's vertices. This is the default.
	PolicyCentroid Policy = iota

	// PolicyEdge measures the distance to the nearest contour vertex.
	PolicyEdge
)

// Closest selects, from a collection of contours, the one closest to a
// reference position.
//
// Parameters:
//   - contours: Candidate contours, all in the same layout convention.
//   - position: Reference point in image coordinates.
//   - policy: Distance policy, PolicyCentroid or PolicyEdge.
//   - source: Layout convention of the raw contour data.
//
// Returns:
//   - Contour: The winning contour, exactly as it appears in the input
//     collection (no copy is made).
//   - error: ErrNoContours for an empty collection, ErrInvalidSourceFormat
//     for an unrecognized source tag, a plain error for an unknown policy.
//
// # Selection
//
// A single-element collection returns its only contour immediately,
// without decoding coordinates or measuring any distance; a lone candidate
// wins even if its data would not survive decoding. With several
// candidates the smallest distance wins, and on an exact tie the contour
// earliest in the collection is kept.
//
// # Limitations
//
// PolicyEdge measures the distance to the nearest vertex, not to the
// nearest point on the polygon's edges. For coarsely sampled contours this
// overestimates the true boundary distance and can change the winner.
func Closest(contours []Contour, position Point, policy Policy, source Source) (Contour, error) {
	if len(contours) == 0 {
		return nil, errors.Wrap(ErrNoContours, "cannot select the closest contour")
	}

	// A lone contour wins outright, nothing to decode or compare.
	if len(contours) == 1 {
		return contours[0], nil
	}

	if policy != PolicyCentroid && policy != PolicyEdge {
		return nil, errors.Errorf("unknown distance policy %d", policy)
	}

	best := -1
	bestDist := math.Inf(1)
	for i, c := range contours {
		x, y, err := Coordinates(c, source)
		if err != nil {
			return nil, errors.Wrapf(err, "contour %d", i)
		}

		var dist float64
		switch policy {
		case PolicyCentroid:
			dist = math.Hypot(position.X-stat.Mean(x, nil), position.Y-stat.Mean(y, nil))
		case PolicyEdge:
			dist = math.Inf(1)
			for k := range x {
				if d := math.Hypot(x[k]-position.X, y[k]-position.Y); d < dist {
					dist = d
				}
			}
		}

		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	if best < 0 {
		return nil, errors.New("no contour yielded a finite distance")
	}

	return contours[best], nil
}
