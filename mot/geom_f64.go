package mot

import (
	"image"
	"math"
)

// Rectangle is the box descriptor stored in every observation.
// X and Y are the top-left corner.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates rectangle from its top-left corner and size
func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// NewRectFrom converts image.Rectangle
func NewRectFrom(rect image.Rectangle) Rectangle {
	return Rectangle{
		X:      float64(rect.Min.X),
		Y:      float64(rect.Min.Y),
		Width:  float64(rect.Dx()),
		Height: float64(rect.Dy()),
	}
}

// Center returns center of the rectangle
func (r Rectangle) Center() Point {
	return Point{
		X: r.X + r.Width/2.0,
		Y: r.Y + r.Height/2.0,
	}
}

// Area returns area of the rectangle
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// MoveCenterTo returns the same sized rectangle centered on the given point
func (r Rectangle) MoveCenterTo(p Point) Rectangle {
	return Rectangle{
		X:      p.X - r.Width/2.0,
		Y:      p.Y - r.Height/2.0,
		Width:  r.Width,
		Height: r.Height,
	}
}

// Point is a 2D point
type Point struct {
	X float64
	Y float64
}

// NewPoint creates point
func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// NewPointFrom converts image.Point
func NewPointFrom(point image.Point) Point {
	return Point{
		X: float64(point.X),
		Y: float64(point.Y),
	}
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}
