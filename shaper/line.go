package shaper

import "image"
import "image/color"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "github.com/tinne26/voxtitle/cache"
import "github.com/tinne26/voxtitle/canvas"
import "github.com/tinne26/voxtitle/fract"
import "github.com/tinne26/voxtitle/mask"

// A shaped line of text. Lines are immutable once created, so
// they can be measured and drawn concurrently.
type Line struct {
	font     *sfnt.Font
	fontName string
	fallback bool
	size     fract.Unit
	glyphs   []glyph
	ink      fract.Rect // relative to the pen origin, Y down
	advance  fract.Unit
	masks    *cache.MaskCache // shared between lines, may be nil
}

type glyph struct {
	index sfnt.GlyphIndex
	x fract.Unit // pen position relative to the line origin
}

// Returns the width and height of the line's ink box: the union of
// the bounds of all its glyphs. Lines without ink return zeros.
func (self *Line) Size() (width, height float64) {
	if self.ink.Empty() { return 0, 0 }
	return self.ink.Width().ToFloat64(), self.ink.Height().ToFloat64()
}

// Returns the ink box relative to the pen origin, in sfnt
// coordinates (Y grows downwards).
func (self *Line) InkBounds() fract.Rect { return self.ink }

// Returns the total pen advance of the line.
func (self *Line) Advance() float64 { return self.advance.ToFloat64() }

// Returns the full name of the font used to shape the line.
func (self *Line) FontName() string { return self.fontName }

// Reports whether the requested font couldn't be used and the
// fallback font was used instead.
func (self *Line) Fallback() bool { return self.fallback }

// Returns the number of glyphs in the line.
func (self *Line) Len() int { return len(self.glyphs) }

// Draws the line on the given canvas with the bottom-left corner of
// its ink box at (x, y), in canvas space. Drawing respects the canvas
// clip. Errors can only come from unreadable glyph outlines.
func (self *Line) Draw(target *canvas.Canvas, x, y float64, clr color.Color) error {
	if self.ink.Empty() { return nil }

	// baseline origin in image space
	originX := x - self.ink.Min.X.ToFloat64()
	originY := target.FlipY(y + self.ink.Max.Y.ToFloat64())
	origin  := fract.PointFromFloat64s(originX, originY)

	var buffer sfnt.Buffer
	var rasterizer mask.GlyphRasterizer
	local := make(map[cache.Key]*image.Alpha, len(self.glyphs))
	for _, g := range self.glyphs {
		dot := origin.Add(g.x, 0)
		subpixel := dot.Subpixel()
		key := cache.Key{
			Font: self.font, Size: self.size, Index: g.index,
			FractX: subpixel.X, FractY: subpixel.Y,
		}
		alpha, cached := local[key]
		if !cached && self.masks != nil {
			alpha, cached = self.masks.Get(key)
		}
		if !cached {
			outline, err := self.font.LoadGlyph(&buffer, g.index, fixed.Int26_6(self.size), nil)
			if err != nil { return err }
			alpha = rasterizer.Rasterize(outline, dot)
			if self.masks != nil { self.masks.Pass(key, alpha) }
		}
		local[key] = alpha
		if alpha == nil { continue } // spaces and friends

		placed := *alpha
		placed.Rect = placed.Rect.Add(dot.Floor())
		target.DrawMask(&placed, clr)
	}
	return nil
}
