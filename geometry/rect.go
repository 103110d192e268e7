package geometry

import "fmt"

// Rect represents an axis-aligned rectangle in pixel space, with its
// position (X, Y) anchored at the top-left corner.
//
// A Rect with a zero width or height is valid and stands for "no visible
// space"; negative dimensions are not representable through NewRect and are
// rejected wherever a Rect enters the library from the outside.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect returns a Rect with the given position and dimensions.
// It fails if either dimension is negative, so malformed geometry is
// caught at the boundary instead of corrupting downstream arithmetic.
func NewRect(x, y, width, height int) (Rect, error) {
	if width < 0 || height < 0 {
		return Rect{}, fmt.Errorf("invalid rect dimensions: %dx%d", width, height)
	}
	return Rect{X: x, Y: y, Width: width, Height: height}, nil
}

// SurfaceArea returns the area of the rectangle in pixels.
func (r Rect) SurfaceArea() int {
	return r.Width * r.Height
}

// Center returns the coordinate at the center of the rectangle,
// rounded down to the nearest integer position.
func (r Rect) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// ContainsPoint reports whether the point lies within the rectangle,
// bounds included.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Subrect returns the proportional sub-rectangle described by the given
// ratios, each in the range [0,1] and relative to the rectangle's own
// origin and dimensions. Results are truncated to integer pixels.
func (r Rect) Subrect(xRatio, yRatio, widthRatio, heightRatio float64) Rect {
	return Rect{
		X:      r.X + int(float64(r.Width)*xRatio),
		Y:      r.Y + int(float64(r.Height)*yRatio),
		Width:  int(float64(r.Width) * widthRatio),
		Height: int(float64(r.Height) * heightRatio),
	}
}
