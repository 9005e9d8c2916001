package sprite

// Component is one 4-connected region of occupied cells.
type Component struct {
	Box
	Pixels int `json:"pixels"`
	// Seed is the row-major index of the first cell reached by the raster scan.
	Seed int `json:"-"`
}

var neighbors4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Scan returns one bounding box per 4-connected region, in discovery order.
func Scan(m Mask) []Box {
	return boxesOf(Components(m))
}

// Components is Scan with per-region pixel counts.
func Components(m Mask) []Component {
	return scanRows(m, 0, m.H, nil)
}

// scanRows labels regions whose cells lie in rows [y0, y1). Regions are not
// followed outside the band. When labels is non-nil it receives the local
// component index (starting at 0) of every occupied cell in the band, indexed
// relative to row y0.
func scanRows(m Mask, y0, y1 int, labels []int32) []Component {
	w := m.W
	visited := make([]bool, w*(y1-y0))
	queue := make([]int, 0, 1024)
	var comps []Component

	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			local := idx - y0*w
			if !m.Bits[idx] || visited[local] {
				continue
			}

			id := int32(len(comps))
			c := Component{Box: Box{MinX: x, MinY: y, MaxX: x, MaxY: y}, Seed: idx}

			queue = queue[:0]
			queue = append(queue, idx)
			visited[local] = true

			for head := 0; head < len(queue); head++ {
				curr := queue[head]
				cx, cy := curr%w, curr/w
				c.Pixels++
				if labels != nil {
					labels[curr-y0*w] = id
				}
				if cx < c.MinX {
					c.MinX = cx
				}
				if cx > c.MaxX {
					c.MaxX = cx
				}
				if cy < c.MinY {
					c.MinY = cy
				}
				if cy > c.MaxY {
					c.MaxY = cy
				}

				for _, d := range neighbors4 {
					nx, ny := cx+d[0], cy+d[1]
					if nx < 0 || nx >= w || ny < y0 || ny >= y1 {
						continue
					}
					ni := ny*w + nx
					if m.Bits[ni] && !visited[ni-y0*w] {
						visited[ni-y0*w] = true
						queue = append(queue, ni)
					}
				}
			}

			// inclusive pixel coordinates to exclusive upper bound
			c.MaxX++
			c.MaxY++
			comps = append(comps, c)
		}
	}

	return comps
}

func boxesOf(comps []Component) []Box {
	boxes := make([]Box, len(comps))
	for i, c := range comps {
		boxes[i] = c.Box
	}
	return boxes
}
