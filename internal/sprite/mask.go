package sprite

import "fmt"

// Mask is a W×H occupancy grid stored row-major.
type Mask struct {
	W, H int
	Bits []bool
}

// BuildMask marks every pixel whose alpha is strictly above threshold.
// It panics on an empty grid.
func BuildMask(g Grid, threshold uint8) Mask {
	w, h := g.Size()
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("sprite: invalid grid size %dx%d", w, h))
	}

	bits := make([]bool, w*h)
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			bits[row+x] = g.AlphaAt(x, y) > threshold
		}
	}
	return Mask{W: w, H: h, Bits: bits}
}

// At reports whether (x, y) is occupied. Out-of-range cells are empty.
func (m Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.Bits[y*m.W+x]
}

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}
