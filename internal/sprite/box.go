package sprite

import (
	"fmt"
	"image"
)

// Box is an axis-aligned rectangle with exclusive upper bounds.
type Box struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// Dx returns the box width.
func (b Box) Dx() int { return b.MaxX - b.MinX }

// Dy returns the box height.
func (b Box) Dy() int { return b.MaxY - b.MinY }

// Area is the pixel area of the rectangle, not of the component inside it.
func (b Box) Area() int { return b.Dx() * b.Dy() }

// Center returns the box centre using floor division.
func (b Box) Center() (int, int) {
	return floorDiv(b.MinX+b.MaxX, 2), floorDiv(b.MinY+b.MaxY, 2)
}

// Rect converts the box to an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// Contains reports whether pixel (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.MinX && x < b.MaxX && y >= b.MinY && y < b.MaxY
}

func (b Box) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
