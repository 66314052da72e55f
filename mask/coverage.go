package mask

import "image"
import "math"

// Computes the coverage of the axis aligned rectangle [minX, maxX) x
// [minY, maxY), given in image space, restricted to the given bounds.
// Pixels fully inside the rectangle get 255, edge pixels get their
// exact fractional coverage.
//
// The returned mask's Rect is the smallest integer rectangle containing
// the covered area, intersected with bounds. It will be empty (but never
// nil) if there's nothing to cover.
func RectCoverage(bounds image.Rectangle, minX, minY, maxX, maxY float64) *image.Alpha {
	if !(minX < maxX && minY < maxY) { return &image.Alpha{} } // also catches NaNs

	x0, y0 := floorToInt(minX), floorToInt(minY)
	x1, y1 := ceilToInt(maxX), ceilToInt(maxY)
	rect := image.Rect(x0, y0, x1, y1).Intersect(bounds)
	if rect.Empty() { return &image.Alpha{} }

	out := image.NewAlpha(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		fy := float64(y)
		ycov := clampUnit64(overlap(fy, fy + 1, minY, maxY))
		if ycov == 0 { continue }
		row := out.Pix[out.PixOffset(rect.Min.X, y):]
		for x := rect.Min.X; x < rect.Max.X; x++ {
			fx := float64(x)
			xcov := clampUnit64(overlap(fx, fx + 1, minX, maxX))
			row[x - rect.Min.X] = uint8(math.Round(xcov*ycov*255))
		}
	}
	return out
}

// Multiplies the coverage of two masks. The result covers the
// intersection of both mask rects. A nil mask acts as full coverage.
func Intersect(a, b *image.Alpha) *image.Alpha {
	if a == nil { return b }
	if b == nil { return a }
	rect := a.Rect.Intersect(b.Rect)
	if rect.Empty() { return &image.Alpha{} }

	out := image.NewAlpha(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			va := uint32(a.Pix[a.PixOffset(x, y)])
			if va == 0 { continue }
			vb := uint32(b.Pix[b.PixOffset(x, y)])
			out.Pix[out.PixOffset(x, y)] = uint8((va*vb + 127)/255)
		}
	}
	return out
}

// Integer conversions that saturate instead of overflowing, as
// rectangles may come from arbitrary user sizes.
const coordLimit = 1 << 30

func floorToInt(value float64) int {
	value = math.Floor(value)
	if value < -coordLimit { return -coordLimit }
	if value > coordLimit { return coordLimit }
	return int(value)
}

func ceilToInt(value float64) int {
	value = math.Ceil(value)
	if value < -coordLimit { return -coordLimit }
	if value > coordLimit { return coordLimit }
	return int(value)
}

// Returns the length of the overlap between [a0, a1) and [b0, b1).
func overlap(a0, a1, b0, b1 float64) float64 {
	lo, hi := max(a0, b0), min(a1, b1)
	if hi <= lo { return 0 }
	return hi - lo
}

func clampUnit64(value float64) float64 {
	return min(max(value, 0), 1)
}
