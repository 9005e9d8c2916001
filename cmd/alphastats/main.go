package main

import (
	"flag"
	"fmt"
	"os"

	"spritesplit/internal/imageio"
	"spritesplit/internal/sprite"
)

// alphastats prints the alpha distribution of a sheet and how many regions
// each threshold would produce, to help pick -threshold and -min-area.
func main() {
	minArea := flag.Int("min-area", 100, "Minimum bounding-box area counted as a sprite")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: alphastats [-min-area N] <image>")
		os.Exit(1)
	}

	img, err := imageio.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	var minA, maxA uint8 = 255, 0
	total := 0
	sumA := 0
	opaque, transparent := 0, 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := img.Pix[y*img.Stride+x*4+3]
			total++
			sumA += int(a)
			if a < minA {
				minA = a
			}
			if a > maxA {
				maxA = a
			}
			switch a {
			case 255:
				opaque++
			case 0:
				transparent++
			}
		}
	}
	fmt.Printf("%s: %dx%d\n", flag.Arg(0), w, h)
	fmt.Printf("Alpha: min=%d, max=%d, avg=%.0f, opaque=%.0f%%, clear=%.0f%%\n",
		minA, maxA, float64(sumA)/float64(total),
		100*float64(opaque)/float64(total), 100*float64(transparent)/float64(total))

	if minA == 255 {
		fmt.Println("No transparency: try --remove-background.")
		return
	}

	grid := sprite.NewAlphaGrid(img)
	fmt.Println("\nthreshold  regions  kept  layout")
	for _, t := range []int{0, 15, 30, 64, 128, 200} {
		comps := sprite.Scan(sprite.BuildMask(grid, uint8(t)))
		kept := sprite.FilterArea(comps, *minArea)
		_, layout := sprite.Sequence(kept)
		fmt.Printf("%9d  %7d  %4d  %s\n", t, len(comps), len(kept), layout)
	}
}
