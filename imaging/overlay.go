package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// DrawZone returns a copy of an image with a rectangular outline drawn
// around a zone, leaving every pixel inside the zone untouched.
//
// The outline is painted just outside the zone as lineWidth one-pixel
// rings growing outward; ring pixels falling outside the image are
// skipped, but empty zones are rejected. A lineWidth below 1 defaults to
// 2. The color is given as a hex string like "#FF0000"; the empty string
// means red.
func DrawZone(img image.Image, zone Zone, hexColor string, lineWidth int) (*image.RGBA, error) {
	if zone.Width <= 0 || zone.Height <= 0 {
		return nil, errors.Errorf("cannot outline an empty zone: %dx%d pixels", zone.Width, zone.Height)
	}

	// Parse outline color
	lineColor := color.RGBA{R: 255, A: 255}
	if hexColor != "" {
		c, err := colorful.Hex(hexColor)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid zone color %q", hexColor)
		}
		r, g, b := c.RGB255()
		lineColor = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	if lineWidth < 1 {
		lineWidth = 2
	}

	// Copy the source onto a new RGBA image
	bounds := img.Bounds()
	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	for ring := 0; ring < lineWidth; ring++ {
		drawRing(result, zone.Rect().Inset(-1-ring), lineColor)
	}

	return result, nil
}

// drawRing paints the one-pixel border of r, clipped to the image bounds.
func drawRing(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	bounds := img.Bounds()

	// Top and bottom rows
	for x := r.Min.X; x < r.Max.X; x++ {
		setInside(img, bounds, x, r.Min.Y, c)
		setInside(img, bounds, x, r.Max.Y-1, c)
	}

	// Left and right columns, corners already done
	for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
		setInside(img, bounds, r.Min.X, y, c)
		setInside(img, bounds, r.Max.X-1, y, c)
	}
}

func setInside(img *image.RGBA, bounds image.Rectangle, x, y int, c color.RGBA) {
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		img.Set(x, y, c)
	}
}
