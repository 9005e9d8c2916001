package sprite

import "fmt"

// Options controls one extraction.
type Options struct {
	AlphaThreshold int     // pixels with alpha above this are foreground, 0-255
	MinArea        int     // smallest kept bounding-box area, in pixels
	Padding        Padding // added around each box before clamping
	Bands          int     // >1 labels row bands concurrently
}

// DefaultOptions returns threshold 30, minimum area 100 and no padding.
func DefaultOptions() Options {
	return Options{AlphaThreshold: 30, MinArea: 100}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.AlphaThreshold < 0 || o.AlphaThreshold > 255 {
		return fmt.Errorf("sprite: alpha threshold %d out of range [0,255]", o.AlphaThreshold)
	}
	if o.MinArea < 0 {
		return fmt.Errorf("sprite: negative minimum area %d", o.MinArea)
	}
	p := o.Padding
	if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 {
		return fmt.Errorf("sprite: negative padding %+v", p)
	}
	return nil
}

// Sprite is one extracted region.
type Sprite struct {
	Index  int `json:"index"`
	Box    Box `json:"box"`  // tight bounds of the region
	Crop   Box `json:"crop"` // padded, clamped rectangle to cut out
	Pixels int `json:"pixels"`
}

// Result is the ordered output of Extract.
type Result struct {
	Width   int
	Height  int
	Layout  Layout
	Sprites []Sprite
}

// Crops returns the crop rectangles in order.
func (r Result) Crops() []Box {
	crops := make([]Box, len(r.Sprites))
	for i, s := range r.Sprites {
		crops[i] = s.Crop
	}
	return crops
}

// Extract runs mask, scan, area filter, sequencing and crop planning over g.
// A grid without foreground yields an empty Result, not an error.
func Extract(g Grid, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	mask := BuildMask(g, uint8(opts.AlphaThreshold))

	var comps []Component
	if opts.Bands > 1 {
		comps = ComponentsBands(mask, opts.Bands)
	} else {
		comps = Components(mask)
	}

	comps = filterComponents(comps, opts.MinArea)
	res := Result{Width: mask.W, Height: mask.H}
	if len(comps) == 0 {
		return res, nil
	}
	res.Layout = sequenceComponents(comps)

	res.Sprites = make([]Sprite, len(comps))
	for i, c := range comps {
		res.Sprites[i] = Sprite{
			Index:  i,
			Box:    c.Box,
			Crop:   PlanCrop(c.Box, opts.Padding, mask.W, mask.H),
			Pixels: c.Pixels,
		}
	}
	return res, nil
}
