// Package bgremove makes the background of a sheet transparent before
// sprites are extracted.
package bgremove

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
)

// Remover returns a copy of img whose background pixels have alpha 0.
type Remover interface {
	Remove(ctx context.Context, img *image.NRGBA) (*image.NRGBA, error)
}

// Func adapts a function to Remover.
type Func func(ctx context.Context, img *image.NRGBA) (*image.NRGBA, error)

// Remove calls f.
func (f Func) Remove(ctx context.Context, img *image.NRGBA) (*image.NRGBA, error) {
	return f(ctx, img)
}

// ErrNoImage is returned for a nil or empty input.
var ErrNoImage = errors.New("bgremove: no image")

// ColorKey treats the dominant colour of the image border as background and
// clears every pixel within Tolerance of it that is connected to the border.
// Enclosed regions of the same colour are kept.
type ColorKey struct {
	// Tolerance is the CIE L*a*b* distance, scaled to 0-100, still counted
	// as background.
	Tolerance float64
}

// NewColorKey returns a ColorKey remover.
func NewColorKey(tolerance float64) *ColorKey {
	return &ColorKey{Tolerance: tolerance}
}

// Remove implements Remover.
func (k *ColorKey) Remove(ctx context.Context, img *image.NRGBA) (*image.NRGBA, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrNoImage
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):])
	}

	border, ok := borderStrip(out)
	if !ok {
		// Border is already transparent.
		return out, nil
	}
	key := borderKey(border)

	limit := k.Tolerance / 100
	known := make(map[uint32]bool)
	isBackground := func(i int) bool {
		p := out.Pix[i : i+4]
		if p[3] == 0 {
			return true
		}
		rgb := uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		if bg, seen := known[rgb]; seen {
			return bg
		}
		c, _ := colorful.MakeColor(color.NRGBA{R: p[0], G: p[1], B: p[2], A: 255})
		bg := c.DistanceLab(key) <= limit
		known[rgb] = bg
		return bg
	}

	visited := make([]bool, w*h)
	queue := make([]int, 0, 2*(w+h))
	push := func(x, y int) {
		idx := y*w + x
		if visited[idx] {
			return
		}
		visited[idx] = true
		if isBackground(y*out.Stride + x*4) {
			queue = append(queue, idx)
		}
	}
	for x := 0; x < w; x++ {
		push(x, 0)
		push(x, h-1)
	}
	for y := 0; y < h; y++ {
		push(0, y)
		push(w-1, y)
	}

	for head := 0; head < len(queue); head++ {
		if head%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		curr := queue[head]
		cx, cy := curr%w, curr/w
		i := cy*out.Stride + cx*4
		out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = 0, 0, 0, 0

		if cx > 0 {
			push(cx-1, cy)
		}
		if cx < w-1 {
			push(cx+1, cy)
		}
		if cy > 0 {
			push(cx, cy-1)
		}
		if cy < h-1 {
			push(cx, cy+1)
		}
	}

	return out, nil
}

// borderKey picks the background colour. Clean sheets have one border
// colour covering most of the ring; noisy ones (scans, JPEG) are clustered.
func borderKey(border []color.NRGBA) colorful.Color {
	counts := make(map[color.NRGBA]int)
	var mode color.NRGBA
	for _, c := range border {
		c.A = 255
		counts[c]++
		if counts[c] > counts[mode] {
			mode = c
		}
	}
	if 2*counts[mode] > len(border) {
		key, _ := colorful.MakeColor(mode)
		return key
	}

	key, _ := colorful.MakeColor(dominantcolor.Find(tile(border)))
	return key
}

// borderStrip returns the opaque pixels of the outermost ring.
func borderStrip(img *image.NRGBA) ([]color.NRGBA, bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var pix []color.NRGBA
	add := func(x, y int) {
		c := img.NRGBAAt(x, y)
		if c.A > 0 {
			pix = append(pix, c)
		}
	}
	for x := 0; x < w; x++ {
		add(x, 0)
		if h > 1 {
			add(x, h-1)
		}
	}
	for y := 1; y < h-1; y++ {
		add(0, y)
		if w > 1 {
			add(w-1, y)
		}
	}
	return pix, len(pix) > 0
}

// tile packs pixels into a square image, repeating them to fill the last row.
func tile(pix []color.NRGBA) *image.NRGBA {
	side := int(math.Ceil(math.Sqrt(float64(len(pix)))))
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for i := 0; i < side*side; i++ {
		img.SetNRGBA(i%side, i/side, pix[i%len(pix)])
	}
	return img
}
