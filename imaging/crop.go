package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Point is a position in continuous image coordinates. The center of the
// pixel in column i and row j is at (i, j); x increases rightward and y
// increases downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zone is a rectangular pixel region, selecting exactly Width x Height
// pixels starting at the pixel (X, Y).
type Zone struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect converts the zone to a standard image.Rectangle with exclusive
// maximum coordinates.
func (z Zone) Rect() image.Rectangle {
	return image.Rect(z.X, z.Y, z.X+z.Width, z.Y+z.Height)
}

// ZoneFromCorners builds the zone selected by two opposite corner points,
// given in any order. Each coordinate is rounded to the nearest pixel
// center and both end pixels are included, so the width is xmax-xmin+1 and
// two identical points select a single pixel.
func ZoneFromCorners(p1, p2 Point) Zone {
	xmin, xmax := cornerRange(p1.X, p2.X)
	ymin, ymax := cornerRange(p1.Y, p2.Y)
	return Zone{
		X:      xmin,
		Y:      ymin,
		Width:  xmax - xmin + 1,
		Height: ymax - ymin + 1,
	}
}

// cornerRange orders a coordinate pair and rounds both ends to the nearest
// pixel center.
func cornerRange(a, b float64) (int, int) {
	if b < a {
		a, b = b, a
	}
	return int(math.Round(a)), int(math.Round(b))
}

// Crop extracts the pixels selected by a zone from an image. The result is
// a copy with exactly zone.Width x zone.Height pixels and bounds starting
// at (0, 0); the source image is never modified.
//
// Zones that are empty or reach outside the image are rejected rather than
// silently truncated.
func Crop(img image.Image, zone Zone) (*image.NRGBA, error) {
	if zone.Width <= 0 || zone.Height <= 0 {
		return nil, errors.Errorf("empty crop zone: %dx%d pixels", zone.Width, zone.Height)
	}

	// Validate coordinates
	bounds := img.Bounds()
	r := zone.Rect()
	if !r.In(bounds) {
		return nil, errors.Errorf("crop zone (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	return imaging.Crop(img, r), nil
}
