package sprite

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestComponentsBandsMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		w, h := 1+rng.Intn(50), 1+rng.Intn(50)
		m := randomMask(rng, w, h, 0.3+0.4*rng.Float64())
		want := Components(m)

		for _, bands := range []int{2, 3, 7, h, h + 5} {
			got := ComponentsBands(m, bands)
			if len(want) == 0 && len(got) == 0 {
				continue
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("trial %d (%dx%d, %d bands):\n got %v\nwant %v", trial, w, h, bands, got, want)
			}
		}
	}
}

func TestScanBandsRegionAcrossEveryBand(t *testing.T) {
	m := BuildMask(NewAlphaGrid(sheet(
		"#...#",
		"#...#",
		"#...#",
		"#####",
		"..#..",
		"..#..",
	)), 30)

	got := ScanBands(m, 6)
	want := []Box{{0, 0, 5, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanBands = %v, want %v", got, want)
	}
}

func TestScanBandsFallsBack(t *testing.T) {
	m := BuildMask(NewAlphaGrid(sheet("#.#")), 30)
	if got, want := ScanBands(m, 1), Scan(m); !reflect.DeepEqual(got, want) {
		t.Errorf("ScanBands(1) = %v, want %v", got, want)
	}
}
