package imaging

import (
	"image"
	"image/color"
	"testing"
)

func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestZoneFromCorners(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   Zone
	}{
		{"ordered corners", Point{2.4, 0.8}, Point{5.2, 6.6}, Zone{2, 1, 4, 7}},
		{"swapped corners", Point{5.2, 6.6}, Point{2.4, 0.8}, Zone{2, 1, 4, 7}},
		{"mixed corners", Point{5.2, 0.8}, Point{2.4, 6.6}, Zone{2, 1, 4, 7}},
		{"same point", Point{3.3, 4.4}, Point{3.3, 4.4}, Zone{3, 4, 1, 1}},
		{"integer corners", Point{5, 7}, Point{18, 15}, Zone{5, 7, 14, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZoneFromCorners(tt.p1, tt.p2); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestZoneRect(t *testing.T) {
	z := Zone{X: 5, Y: 7, Width: 14, Height: 9}

	if got, want := z.Rect(), image.Rect(5, 7, 19, 16); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCrop(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{255, 0, 0, 255})

	result, err := Crop(img, Zone{X: 5, Y: 7, Width: 14, Height: 9})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if result.Bounds().Dx() != 14 || result.Bounds().Dy() != 9 {
		t.Errorf("dimensions: got %dx%d, want 14x9", result.Bounds().Dx(), result.Bounds().Dy())
	}
	if result.Bounds().Min != image.Pt(0, 0) {
		t.Errorf("bounds origin: got %v, want (0,0)", result.Bounds().Min)
	}
}

func TestCrop_VerifyContent(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name string
		zone Zone
		want color.RGBA
	}{
		{"top-left", Zone{0, 0, 50, 50}, color.RGBA{255, 0, 0, 255}},
		{"top-right", Zone{50, 0, 50, 50}, color.RGBA{0, 255, 0, 255}},
		{"bottom-left", Zone{0, 50, 50, 50}, color.RGBA{0, 0, 255, 255}},
		{"bottom-right", Zone{50, 50, 50, 50}, color.RGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Crop(img, tt.zone)
			if err != nil {
				t.Fatalf("Crop failed: %v", err)
			}

			// Sample the center pixel of the cropped region
			r, g, b, _ := result.At(25, 25).RGBA()
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
			if r8 != tt.want.R || g8 != tt.want.G || b8 != tt.want.B {
				t.Errorf("color: got (%d,%d,%d), want (%d,%d,%d)",
					r8, g8, b8, tt.want.R, tt.want.G, tt.want.B)
			}
		})
	}
}

func TestCrop_FullImage(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := Crop(img, Zone{X: 0, Y: 0, Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if result.Bounds().Dx() != 100 || result.Bounds().Dy() != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", result.Bounds().Dx(), result.Bounds().Dy())
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		zone Zone
	}{
		{"x negative", Zone{-1, 0, 10, 10}},
		{"y negative", Zone{0, -1, 10, 10}},
		{"too wide", Zone{95, 0, 10, 10}},
		{"too tall", Zone{0, 95, 10, 10}},
		{"fully outside", Zone{200, 200, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, tt.zone)
			if err == nil {
				t.Error("Crop should fail for out-of-bounds zones")
			}
		})
	}
}

func TestCrop_EmptyZone(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		zone Zone
	}{
		{"zero width", Zone{0, 0, 0, 10}},
		{"zero height", Zone{0, 0, 10, 0}},
		{"negative width", Zone{0, 0, -5, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, tt.zone)
			if err == nil {
				t.Error("Crop should fail for empty zones")
			}
		})
	}
}

func TestCrop_ReturnsCopy(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{255, 0, 0, 255})

	result, err := Crop(img, Zone{X: 0, Y: 0, Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	// Writing into the crop must not reach the source
	result.Set(0, 0, color.RGBA{1, 2, 3, 255})
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("source pixel changed: got %v", got)
	}
}

func TestCrop_FromCorners(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{255, 0, 0, 255})

	zone := ZoneFromCorners(Point{X: 5, Y: 7}, Point{X: 18, Y: 15})
	result, err := Crop(img, zone)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	// Both corner pixels are included
	if result.Bounds().Dx() != 14 || result.Bounds().Dy() != 9 {
		t.Errorf("dimensions: got %dx%d, want 14x9", result.Bounds().Dx(), result.Bounds().Dy())
	}
}
