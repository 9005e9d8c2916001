package sprite

import "sort"

// Layout names the arrangement detected by Sequence.
type Layout int

const (
	LayoutGrid Layout = iota
	LayoutRow
	LayoutColumn
)

func (l Layout) String() string {
	switch l {
	case LayoutRow:
		return "row"
	case LayoutColumn:
		return "column"
	default:
		return "grid"
	}
}

// Sequence orders boxes the way a sheet is usually read. Centres spread
// mostly along x are read left to right, centres spread mostly along y top to
// bottom, and anything else row-major. The sort is stable, so equal keys keep
// discovery order. The input slice is not modified.
func Sequence(boxes []Box) ([]Box, Layout) {
	out := append([]Box(nil), boxes...)
	layout := sequence(len(out), func(i int) Box { return out[i] }, func(less func(i, j int) bool) {
		sort.SliceStable(out, less)
	})
	return out, layout
}

func sequenceComponents(comps []Component) Layout {
	return sequence(len(comps), func(i int) Box { return comps[i].Box }, func(less func(i, j int) bool) {
		sort.SliceStable(comps, less)
	})
}

func sequence(n int, at func(i int) Box, sortBy func(less func(i, j int) bool)) Layout {
	if n == 0 {
		return LayoutGrid
	}

	layout := LayoutGrid
	if n >= 2 {
		minCX, minCY := at(0).Center()
		maxCX, maxCY := minCX, minCY
		for i := 1; i < n; i++ {
			cx, cy := at(i).Center()
			minCX, maxCX = min(minCX, cx), max(maxCX, cx)
			minCY, maxCY = min(minCY, cy), max(maxCY, cy)
		}
		rangeX, rangeY := maxCX-minCX, maxCY-minCY

		switch {
		case 2*rangeY < rangeX:
			layout = LayoutRow
		case 2*rangeX < rangeY:
			layout = LayoutColumn
		}
	}

	// Keys are read through at(), which sees the slice as it is being sorted.
	switch layout {
	case LayoutRow:
		sortBy(func(i, j int) bool {
			xi, _ := at(i).Center()
			xj, _ := at(j).Center()
			return xi < xj
		})
	case LayoutColumn:
		sortBy(func(i, j int) bool {
			_, yi := at(i).Center()
			_, yj := at(j).Center()
			return yi < yj
		})
	default:
		sortBy(func(i, j int) bool {
			xi, yi := at(i).Center()
			xj, yj := at(j).Center()
			if yi != yj {
				return yi < yj
			}
			return xi < xj
		})
	}
	return layout
}
