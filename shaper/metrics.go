package shaper

import "errors"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "github.com/tinne26/voxtitle/fract"

// Reads glyph metrics for one font at one size. Broken font tables
// don't stop a line halfway: the offending value becomes zero (or an
// empty rect) and the first error is kept for err.
type metrics struct {
	font   *sfnt.Font
	buffer *sfnt.Buffer
	size   fixed.Int26_6
	err    error
}

func newMetrics(fnt *sfnt.Font, buffer *sfnt.Buffer, size fract.Unit) *metrics {
	return &metrics{ font: fnt, buffer: buffer, size: fixed.Int26_6(size) }
}

func (self *metrics) advance(index sfnt.GlyphIndex) fract.Unit {
	advance, err := self.font.GlyphAdvance(self.buffer, index, self.size, font.HintingNone)
	if err != nil {
		self.note(err)
		return 0
	}
	return fract.Unit(advance)
}

// Fonts without kerning tables report sfnt.ErrNotFound, which
// simply means no kerning.
func (self *metrics) kern(prev, index sfnt.GlyphIndex) fract.Unit {
	kern, err := self.font.Kern(self.buffer, prev, index, self.size, font.HintingNone)
	if errors.Is(err, sfnt.ErrNotFound) { return 0 }
	if err != nil {
		self.note(err)
		return 0
	}
	return fract.Unit(kern)
}

// Returns the ink bounds relative to the glyph origin, Y down.
func (self *metrics) bounds(index sfnt.GlyphIndex) fract.Rect {
	bounds, _, err := self.font.GlyphBounds(self.buffer, index, self.size, font.HintingNone)
	if err != nil {
		self.note(err)
		return fract.Rect{}
	}
	return fract.RectFromFixed(bounds)
}

func (self *metrics) note(err error) {
	if self.err == nil { self.err = err }
}
