package sprite

// FilterArea keeps boxes whose rectangle area is at least minArea,
// preserving order. The input slice is not modified.
func FilterArea(boxes []Box, minArea int) []Box {
	out := make([]Box, 0, len(boxes))
	for _, b := range boxes {
		if b.Area() >= minArea {
			out = append(out, b)
		}
	}
	return out
}

func filterComponents(comps []Component, minArea int) []Component {
	out := make([]Component, 0, len(comps))
	for _, c := range comps {
		if c.Area() >= minArea {
			out = append(out, c)
		}
	}
	return out
}
