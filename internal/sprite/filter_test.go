package sprite

import (
	"reflect"
	"testing"
)

func TestFilterAreaDropsSmallBoxes(t *testing.T) {
	boxes := []Box{{0, 0, 3, 3}}
	if got := FilterArea(boxes, 100); len(got) != 0 {
		t.Errorf("FilterArea = %v, want empty", got)
	}
}

func TestFilterAreaKeepsOrderAndBoundary(t *testing.T) {
	boxes := []Box{
		{0, 0, 10, 10},  // 100
		{20, 0, 29, 11}, // 99
		{40, 0, 60, 5},  // 100
		{0, 20, 1, 1000},
	}
	got := FilterArea(boxes, 100)
	want := []Box{boxes[0], boxes[2], boxes[3]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterArea = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(FilterArea(got, 100), got) {
		t.Error("filtering twice changed the result")
	}
	if len(boxes) != 4 {
		t.Error("input modified")
	}
}
