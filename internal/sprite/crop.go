package sprite

// Padding is the number of pixels added outside a box on each side.
type Padding struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// UniformPadding pads every side by n.
func UniformPadding(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// PlanCrop expands b by p and clamps the result to [0,w]×[0,h].
func PlanCrop(b Box, p Padding, w, h int) Box {
	return Box{
		MinX: max(0, b.MinX-p.Left),
		MinY: max(0, b.MinY-p.Top),
		MaxX: min(w, b.MaxX+p.Right),
		MaxY: min(h, b.MaxY+p.Bottom),
	}
}
