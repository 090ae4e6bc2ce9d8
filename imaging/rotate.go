package imaging

import (
	"image"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Interpolation selects the resampling kernel used by Rotate.
type Interpolation int

const (
	// InterpBilinear resamples with a bilinear kernel. This is the
	// default.
	InterpBilinear Interpolation = iota

	// InterpNearest picks the nearest source pixel without filtering.
	InterpNearest

	// InterpBicubic resamples with the Catmull-Rom bicubic kernel.
	InterpBicubic
)

// interpolators maps each interpolation mode to its warp kernel.
var interpolators = map[Interpolation]draw.Interpolator{
	InterpBilinear: draw.ApproxBiLinear,
	InterpNearest:  draw.NearestNeighbor,
	InterpBicubic:  draw.CatmullRom,
}

// RotateOptions controls Rotate. The zero value rotates about the image
// center with bilinear interpolation and keeps the original frame size.
type RotateOptions struct {
	// Resize grows the output frame so the rotated image fits entirely.
	Resize bool

	// Center is the rotation center, in the coordinate space of the
	// source bounds. When nil the image middle is used. Ignored when
	// Resize is set, because fitting the frame fixes the center.
	Center *Point

	// Interpolation selects the resampling kernel.
	Interpolation Interpolation
}

// Rotate returns a copy of an image rotated counter-clockwise by an angle
// in degrees.
//
// Parameters:
//   - img: Source image. It is never modified.
//   - angle: Rotation in degrees. Positive angles turn the image
//     counter-clockwise as it appears on screen (y increasing downward).
//   - opts: Optional settings; nil behaves like the zero value.
//
// Returns:
//   - *image.RGBA: The rotated image, with bounds starting at (0, 0).
//     Without Resize it keeps the source dimensions and corners rotated
//     out of frame are lost; with Resize the frame grows to the bounding
//     box of the rotated image. Pixels not covered by the source stay
//     transparent black.
//   - error: Non-nil for an interpolation mode outside the supported set.
//
// # Algorithm
//
// The rotation is a single affine warp mapping source to destination
// coordinates. For a rotation by angle a about (cx, cy) the 2x3 matrix is:
//
//	[  cos(a)  sin(a)  (1-cos(a))*cx - sin(a)*cy ]
//	[ -sin(a)  cos(a)  sin(a)*cx + (1-cos(a))*cy ]
//
// With Resize, the output frame is computed from the projected side
// lengths |sx*cos(a)| + |sy*sin(a)| and |sx*sin(a)| + |sy*cos(a)|
// (truncated to whole pixels), and the matrix gains a translation that
// centers the rotated image in the new frame.
//
// The matrix above is expressed in pixel coordinates with centers at
// integer positions; internally it is shifted half a pixel to match the
// resampler's continuous coordinates.
func Rotate(img image.Image, angle float64, opts *RotateOptions) (*image.RGBA, error) {
	if opts == nil {
		opts = &RotateOptions{}
	}
	interp, ok := interpolators[opts.Interpolation]
	if !ok {
		return nil, errors.Errorf("%d is not a valid interpolation mode", opts.Interpolation)
	}

	bounds := img.Bounds()
	sx := float64(bounds.Dx())
	sy := float64(bounds.Dy())

	theta := angle * math.Pi / 180
	cos := math.Cos(theta)
	sin := math.Sin(theta)

	outW := bounds.Dx()
	outH := bounds.Dy()
	fitW := sx
	fitH := sy
	if opts.Resize {
		// Projected lengths of the rotated frame on the original axes.
		fitW = math.Abs(sx*cos) + math.Abs(sy*sin)
		fitH = math.Abs(sx*sin) + math.Abs(sy*cos)
		outW = int(fitW)
		outH = int(fitH)
	}

	minX := float64(bounds.Min.X)
	minY := float64(bounds.Min.Y)
	cx := minX + sx/2
	cy := minY + sy/2
	if !opts.Resize && opts.Center != nil {
		cx, cy = opts.Center.X, opts.Center.Y
	}

	// The resampler puts pixel centers at half-integer coordinates while
	// package coordinates put them at integers, so the rotation center
	// moves half a pixel between the two conventions.
	ccx := cx + 0.5
	ccy := cy + 0.5

	// Rotation about the center followed by a shift moving the source
	// origin onto the output origin, so subimages warp correctly.
	tx := (1-cos)*ccx - sin*ccy - minX
	ty := sin*ccx + (1-cos)*ccy - minY
	if opts.Resize {
		// Center using the untruncated extents, so content placement
		// does not depend on how the frame rounded down.
		tx += (fitW - sx) / 2
		ty += (fitH - sy) / 2
	}
	m := f64.Aff3{
		cos, sin, tx,
		-sin, cos, ty,
	}

	result := image.NewRGBA(image.Rect(0, 0, outW, outH))
	if cos == 1 && sin == 0 && tx == math.Trunc(tx) && ty == math.Trunc(ty) {
		// Transform's integer-translation fast path takes both destination
		// offsets from sr.Min.X, dropping sources whose bounds do not start
		// on the diagonal, so exact translations copy directly instead.
		dp := image.Pt(bounds.Min.X+int(tx), bounds.Min.Y+int(ty))
		draw.Copy(result, dp, img, bounds, draw.Src, nil)
		return result, nil
	}
	interp.Transform(result, m, img, bounds, draw.Src, nil)

	return result, nil
}
