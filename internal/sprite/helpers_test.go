package sprite

import (
	"image"
	"math/rand"
)

// sheet builds an NRGBA image from rows of '#' (opaque) and '.' (clear).
func sheet(rows ...string) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				i := img.PixOffset(x, y)
				img.Pix[i], img.Pix[i+3] = 200, 255
			}
		}
	}
	return img
}

// fill paints an opaque rectangle.
func fill(img *image.NRGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Pix[img.PixOffset(x, y)+3] = 255
		}
	}
}

func randomMask(rng *rand.Rand, w, h int, density float64) Mask {
	bits := make([]bool, w*h)
	for i := range bits {
		bits[i] = rng.Float64() < density
	}
	return Mask{W: w, H: h, Bits: bits}
}
