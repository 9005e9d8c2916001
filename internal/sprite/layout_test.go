package sprite

import (
	"reflect"
	"testing"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name   string
		in     []Box
		want   []Box
		layout Layout
	}{
		{
			name:   "horizontal strip",
			in:     []Box{{10, 0, 12, 2}, {0, 0, 2, 2}},
			want:   []Box{{0, 0, 2, 2}, {10, 0, 12, 2}},
			layout: LayoutRow,
		},
		{
			name:   "vertical strip",
			in:     []Box{{0, 10, 2, 12}, {0, 0, 2, 2}},
			want:   []Box{{0, 0, 2, 2}, {0, 10, 2, 12}},
			layout: LayoutColumn,
		},
		{
			// Bottoms are aligned but tops are not, so a row-major sort
			// would put the tall sprite first.
			name: "ragged strip reads left to right",
			in: []Box{
				{40, 0, 50, 20},
				{0, 10, 10, 20},
				{20, 6, 30, 20},
			},
			want: []Box{
				{0, 10, 10, 20},
				{20, 6, 30, 20},
				{40, 0, 50, 20},
			},
			layout: LayoutRow,
		},
		{
			name: "grid is row-major",
			in: []Box{
				{10, 10, 12, 12},
				{0, 10, 2, 12},
				{10, 0, 12, 2},
				{0, 0, 2, 2},
			},
			want: []Box{
				{0, 0, 2, 2},
				{10, 0, 12, 2},
				{0, 10, 2, 12},
				{10, 10, 12, 12},
			},
			layout: LayoutGrid,
		},
		{
			name:   "single box",
			in:     []Box{{3, 3, 5, 5}},
			want:   []Box{{3, 3, 5, 5}},
			layout: LayoutGrid,
		},
		{
			name:   "empty",
			in:     nil,
			want:   []Box{},
			layout: LayoutGrid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, layout := Sequence(tc.in)
			if layout != tc.layout {
				t.Errorf("layout = %v, want %v", layout, tc.layout)
			}
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Sequence = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSequenceStableTies(t *testing.T) {
	// Same centre x, different heights: a row layout keeps discovery order.
	in := []Box{
		{0, 0, 4, 2},
		{0, 0, 4, 3},
		{20, 0, 24, 2},
		{1, 0, 3, 2},
	}
	got, layout := Sequence(in)
	if layout != LayoutRow {
		t.Fatalf("layout = %v, want row", layout)
	}
	want := []Box{in[0], in[1], in[3], in[2]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sequence = %v, want %v", got, want)
	}
}

func TestSequenceHalvingIsExact(t *testing.T) {
	// rangeX = 5, rangeY = 2: 2 < 2.5 so this is a row.
	in := []Box{{5, 2, 6, 3}, {0, 0, 1, 1}}
	if _, layout := Sequence(in); layout != LayoutRow {
		t.Errorf("layout = %v, want row", layout)
	}
}

func TestSequenceDoesNotModifyInput(t *testing.T) {
	in := []Box{{10, 0, 12, 2}, {0, 0, 2, 2}}
	Sequence(in)
	if in[0] != (Box{10, 0, 12, 2}) {
		t.Error("input modified")
	}
}
