package canvas

import "math"
import "strconv"

// A rectangle in canvas space. (X, Y) is the bottom-left corner.
// Negative sizes are treated as empty.
type Rect struct {
	X float64
	Y float64
	Width  float64
	Height float64
}

// Returns a rect covering the whole plane.
func Infinite() Rect {
	return Rect{
		X: math.Inf(-1), Y: math.Inf(-1),
		Width: math.Inf(1), Height: math.Inf(1),
	}
}

// Reports whether the rect extends infinitely on both axes.
func (self Rect) IsInfinite() bool {
	return math.IsInf(self.Width, 1) && math.IsInf(self.Height, 1)
}

// Reports whether the rect has no area. NaN sizes are empty too.
func (self Rect) Empty() bool {
	return !(self.Width > 0 && self.Height > 0)
}

// Right edge.
func (self Rect) MaxX() float64 {
	if math.IsInf(self.Width, 1) { return math.Inf(1) }
	return self.X + self.Width
}

// Top edge.
func (self Rect) MaxY() float64 {
	if math.IsInf(self.Height, 1) { return math.Inf(1) }
	return self.Y + self.Height
}

// Returns the rect grown by the given margin on all four sides.
// Negative margins shrink it.
func (self Rect) Pad(margin float64) Rect {
	return Rect{
		X: self.X - margin,
		Y: self.Y - margin,
		Width:  self.Width  + 2*margin,
		Height: self.Height + 2*margin,
	}
}

// Returns the rect translated by (dx, dy).
func (self Rect) Offset(dx, dy float64) Rect {
	self.X += dx
	self.Y += dy
	return self
}

// Returns the largest rect contained by both rects. If they don't
// overlap, the result will be empty.
func (self Rect) Intersect(other Rect) Rect {
	if self.IsInfinite() { return other }
	if other.IsInfinite() { return self }
	minX := math.Max(self.X, other.X)
	minY := math.Max(self.Y, other.Y)
	maxX := math.Min(self.MaxX(), other.MaxX())
	maxY := math.Min(self.MaxY(), other.MaxY())
	if maxX <= minX || maxY <= minY { return Rect{ X: minX, Y: minY } }
	return Rect{ X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY }
}

// Reports whether the point (x, y) is inside the rect. Like images,
// the min edges are inclusive and the max edges exclusive.
func (self Rect) Contains(x, y float64) bool {
	return x >= self.X && x < self.MaxX() && y >= self.Y && y < self.MaxY()
}

// Returns a textual representation of the rect (e.g.: "(2, 3.5)+(10x20)").
func (self Rect) String() string {
	return "(" + fmtFloat(self.X) + ", " + fmtFloat(self.Y) + ")+(" +
		fmtFloat(self.Width) + "x" + fmtFloat(self.Height) + ")"
}

func fmtFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
