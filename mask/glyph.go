package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/voxtitle/fract"

// Rasterizes glyph outlines through [vector.Rasterizer]. The zero
// value is ready to use. Rasterizers keep internal buffers, so each
// drawing call must own its own.
type GlyphRasterizer struct {
	raster vector.Rasterizer
}

// Rasterizes the outline with its origin at the subpixel position
// of dot. The whole pixel part of dot is ignored: the returned mask
// Rect is relative to dot.Floor() and must be translated by it to
// place the glyph.
//
// Outlines without lines or curves (e.g.: spaces) return nil.
func (self *GlyphRasterizer) Rasterize(outline sfnt.Segments, dot fract.Point) *image.Alpha {
	if !hasInk(outline) { return nil }

	// x/image/vector only takes positive coordinates, so the outline
	// is moved until its floored min corner lands at (0, 0)
	bounds := fract.RectFromFixed(outline.Bounds())
	corner := fract.Point{ X: bounds.Min.X.Floor(), Y: bounds.Min.Y.Floor() }
	shift  := dot.Subpixel().Add(-corner.X, -corner.Y)
	extent := bounds.Max.Add(shift.X, shift.Y)
	width, height := extent.X.Ceil().ToIntFloor(), extent.Y.Ceil().ToIntFloor()
	if width <= 0 || height <= 0 { return nil }

	self.raster.Reset(width, height)
	self.raster.DrawOp = draw.Src
	for _, segment := range outline {
		args := &segment.Args
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			self.raster.MoveTo(shifted(args[0], shift))
		case sfnt.SegmentOpLineTo:
			self.raster.LineTo(shifted(args[0], shift))
		case sfnt.SegmentOpQuadTo:
			cx, cy := shifted(args[0], shift)
			x, y := shifted(args[1], shift)
			self.raster.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			ax, ay := shifted(args[0], shift)
			bx, by := shifted(args[1], shift)
			x, y := shifted(args[2], shift)
			self.raster.CubeTo(ax, ay, bx, by, x, y)
		}
	}

	out := image.NewAlpha(image.Rect(0, 0, width, height))
	self.raster.Draw(out, out.Rect, image.Opaque, image.Point{})
	out.Rect = out.Rect.Add(corner.Floor())
	return out
}

// ---- helpers ----

func hasInk(outline sfnt.Segments) bool {
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}

func shifted(point fixed.Point26_6, shift fract.Point) (float32, float32) {
	return fract.PointFromFixed(point).Add(shift.X, shift.Y).ToFloat32s()
}
