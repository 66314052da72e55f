package fract

import "image"

import "golang.org/x/image/math/fixed"

// A pen position or glyph coordinate.
type Point struct {
	X Unit
	Y Unit
}

func PointFromFixed(point fixed.Point26_6) Point {
	return Point{ X: Unit(point.X), Y: Unit(point.Y) }
}

// Converts a pair of pixel coordinates with [FromFloat64]().
func PointFromFloat64s(x, y float64) Point {
	return Point{ X: FromFloat64(x), Y: FromFloat64(y) }
}

// Returns the point translated by the given units.
func (self Point) Add(x, y Unit) Point {
	return Point{ X: self.X + x, Y: self.Y + y }
}

// Returns the whole pixel part of the point. A mask rasterized for
// the point's [Point.Subpixel]() position is placed by this offset.
func (self Point) Floor() image.Point {
	return image.Pt(self.X.ToIntFloor(), self.Y.ToIntFloor())
}

// Returns the subpixel part of both coordinates.
func (self Point) Subpixel() Point {
	return Point{ X: self.X.FractShift(), Y: self.Y.FractShift() }
}

func (self Point) ToFloat32s() (x, y float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}

func (self Point) String() string {
	return "(" + self.X.String() + ", " + self.Y.String() + ")"
}

// A box with Max excluded, like [image.Rectangle].
type Rect struct {
	Min Point
	Max Point
}

func RectFromFixed(rect fixed.Rectangle26_6) Rect {
	return Rect{ Min: PointFromFixed(rect.Min), Max: PointFromFixed(rect.Max) }
}

func (self Rect) Width() Unit { return self.Max.X - self.Min.X }
func (self Rect) Height() Unit { return self.Max.Y - self.Min.Y }

func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns the rect translated by the given units.
func (self Rect) Add(x, y Unit) Rect {
	return Rect{ Min: self.Min.Add(x, y), Max: self.Max.Add(x, y) }
}

// Returns the smallest rect containing both. Empty rects
// don't contribute.
func (self Rect) Union(other Rect) Rect {
	if other.Empty() { return self }
	if self.Empty() { return other }
	return Rect{
		Min: Point{ X: min(self.Min.X, other.Min.X), Y: min(self.Min.Y, other.Min.Y) },
		Max: Point{ X: max(self.Max.X, other.Max.X), Y: max(self.Max.Y, other.Max.Y) },
	}
}

func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
