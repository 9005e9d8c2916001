package sprite

import (
	"sort"
	"sync"
)

// ScanBands produces the same boxes, in the same order, as Scan, but labels
// horizontal bands of rows concurrently and merges regions that cross band
// boundaries. bands <= 1 falls back to Scan.
func ScanBands(m Mask, bands int) []Box {
	return boxesOf(ComponentsBands(m, bands))
}

// ComponentsBands is ScanBands with per-region pixel counts.
func ComponentsBands(m Mask, bands int) []Component {
	if bands > m.H {
		bands = m.H
	}
	if bands <= 1 {
		return Components(m)
	}

	w := m.W
	rows := (m.H + bands - 1) / bands
	starts := make([]int, 0, bands)
	for y := 0; y < m.H; y += rows {
		starts = append(starts, y)
	}
	n := len(starts)

	labels := make([]int32, w*m.H)
	local := make([][]Component, n)

	// Bands own disjoint row ranges of labels.
	var wg sync.WaitGroup
	for b := 0; b < n; b++ {
		wg.Add(1)
		go func(b int) {
			defer wg.Done()
			y0 := starts[b]
			y1 := min(y0+rows, m.H)
			local[b] = scanRows(m, y0, y1, labels[y0*w:y1*w])
		}(b)
	}
	wg.Wait()

	offsets := make([]int, n)
	total := 0
	for b := range local {
		offsets[b] = total
		total += len(local[b])
	}
	if total == 0 {
		return nil
	}

	uf := newUnionFind(total)
	for b := 1; b < n; b++ {
		y := starts[b]
		for x := 0; x < w; x++ {
			below, above := y*w+x, (y-1)*w+x
			if m.Bits[below] && m.Bits[above] {
				uf.union(offsets[b]+int(labels[below]), offsets[b-1]+int(labels[above]))
			}
		}
	}

	merged := make(map[int]*Component, total)
	var roots []int
	for b := range local {
		for i, c := range local[b] {
			r := uf.find(offsets[b] + i)
			acc, ok := merged[r]
			if !ok {
				cc := c
				merged[r] = &cc
				roots = append(roots, r)
				continue
			}
			acc.MinX = min(acc.MinX, c.MinX)
			acc.MinY = min(acc.MinY, c.MinY)
			acc.MaxX = max(acc.MaxX, c.MaxX)
			acc.MaxY = max(acc.MaxY, c.MaxY)
			acc.Pixels += c.Pixels
			acc.Seed = min(acc.Seed, c.Seed)
		}
	}

	comps := make([]Component, len(roots))
	for i, r := range roots {
		comps[i] = *merged[r]
	}
	// The sequential raster scan discovers each region at its lowest index.
	sort.Slice(comps, func(i, j int) bool { return comps[i].Seed < comps[j].Seed })
	return comps
}

type unionFind struct {
	parent []int
	rank   []uint8
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
}
