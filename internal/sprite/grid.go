package sprite

import "image"

// Grid is a read-only view of a pixel buffer's alpha channel.
type Grid interface {
	Size() (w, h int)
	AlphaAt(x, y int) uint8
}

// AlphaGrid adapts an image.Image to Grid. Coordinates are relative to the
// image bounds, so (0,0) is always the top-left pixel.
type AlphaGrid struct {
	img  image.Image
	rect image.Rectangle
}

// NewAlphaGrid wraps img.
func NewAlphaGrid(img image.Image) *AlphaGrid {
	return &AlphaGrid{img: img, rect: img.Bounds()}
}

// Size returns the image width and height.
func (g *AlphaGrid) Size() (int, int) {
	return g.rect.Dx(), g.rect.Dy()
}

// AlphaAt returns the 8-bit alpha of pixel (x, y).
func (g *AlphaGrid) AlphaAt(x, y int) uint8 {
	px, py := g.rect.Min.X+x, g.rect.Min.Y+y
	switch img := g.img.(type) {
	case *image.NRGBA:
		return img.Pix[img.PixOffset(px, py)+3]
	case *image.RGBA:
		// premultiplied storage keeps alpha unscaled
		return img.Pix[img.PixOffset(px, py)+3]
	}
	_, _, _, a := g.img.At(px, py).RGBA()
	return uint8(a >> 8)
}
