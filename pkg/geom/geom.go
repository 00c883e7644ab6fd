// Package geom provides the small set of 2D value types shared by the layout
// engine, the overlay state machine and the render sinks.
//
// All coordinates are in screen space: x grows to the right and y grows
// downward, matching SVG and terminal cell grids.
package geom

import "math"

// Point is a location in the overlay's coordinate space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Lerp linearly interpolates between p (t=0) and to (t=1).
// Values of t outside [0,1] extrapolate, which spring curves rely on.
func (p Point) Lerp(to Point, t float64) Point {
	return Point{X: p.X + (to.X-p.X)*t, Y: p.Y + (to.Y-p.Y)*t}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the rectangle of the given size centered on c.
func RectAround(c Point, s Size) Rect {
	return Rect{X: c.X - s.W/2, Y: c.Y - s.H/2, W: s.W, H: s.H}
}

// MidX returns the horizontal center of r.
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// MidY returns the vertical center of r.
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// MaxX returns the right edge of r.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of r.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the center point of r.
func (r Rect) Center() Point { return Point{X: r.MidX(), Y: r.MidY()} }

// Size returns the dimensions of r.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so adjacent rectangles never both contain a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Insets are margins measured inward from each edge of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }
