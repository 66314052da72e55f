package canvas

import "image"
import "image/color"
import "image/draw"
import "errors"
import "fmt"

import "github.com/tinne26/voxtitle/mask"

// Canvases larger than this many pixels are refused instead of
// attempting the allocation. 1 << 28 pixels is already a 1GiB buffer.
const MaxPixels = 1 << 28

// Returned by [New]() when the requested size is not positive
// or exceeds [MaxPixels].
var ErrInvalidSize = errors.New("invalid canvas size")

// Returned by [Canvas.TransferTo]() when the destination can't
// hold any pixels.
var ErrTransfer = errors.New("invalid transfer destination")

// A premultiplied RGBA drawing surface addressed in canvas space
// (origin at the bottom-left corner, Y up). See the package docs.
//
// Canvases are not safe for concurrent use, but distinct canvases
// share nothing.
type Canvas struct {
	img  *image.RGBA
	clip *image.Alpha // nil when unclipped
}

// Allocates a new, fully transparent canvas of the given size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 || width > MaxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Canvas{ img: image.NewRGBA(image.Rect(0, 0, width, height)) }, nil
}

// Width of the canvas, in pixels.
func (self *Canvas) Width() int { return self.img.Rect.Dx() }

// Height of the canvas, in pixels.
func (self *Canvas) Height() int { return self.img.Rect.Dy() }

// Returns the rect covering the whole canvas.
func (self *Canvas) Bounds() Rect {
	return Rect{ Width: float64(self.Width()), Height: float64(self.Height()) }
}

// Returns the underlying image. Its top-left pixel is the top-left
// corner of the canvas, as image coordinates grow downwards.
func (self *Canvas) Image() *image.RGBA { return self.img }

// Converts a canvas space Y coordinate to an image space one.
// The conversion is its own inverse.
func (self *Canvas) FlipY(y float64) float64 {
	return float64(self.Height()) - y
}

// Restricts all further drawing to the given rect. Partially covered
// pixels at the edges of the clip get proportionally less paint.
func (self *Canvas) SetClip(rect Rect) {
	if rect.IsInfinite() {
		self.clip = nil
		return
	}
	self.clip = self.coverage(rect)
}

// Removes the current clip, if any.
func (self *Canvas) ResetClip() { self.clip = nil }

// Paints the given rect with the given color, using source-over
// compositing and respecting the clip.
func (self *Canvas) FillRect(rect Rect, clr color.Color) {
	self.paint(self.coverage(rect), clr)
}

// Paints the given color through an alpha mask, respecting the clip.
// Unlike rects, masks are given in image space (as produced by glyph
// rasterizers), so no Y flip is applied.
func (self *Canvas) DrawMask(alpha *image.Alpha, clr color.Color) {
	if alpha == nil { return }
	self.paint(alpha, clr)
}

// Copies the canvas into the destination, replacing its contents.
// The canvas top-left corner is aligned with dst.Bounds().Min, and
// any destination area not covered by the canvas is cleared to
// transparent, so the whole destination extent is always written.
func (self *Canvas) TransferTo(dst draw.Image) error {
	if dst == nil { return ErrTransfer }
	bounds := dst.Bounds()
	if bounds.Empty() { return ErrTransfer }

	covered := self.img.Rect.Add(bounds.Min).Intersect(bounds)
	if covered != bounds {
		draw.Draw(dst, bounds, image.Transparent, image.Point{}, draw.Src)
	}
	draw.Draw(dst, covered, self.img, image.Point{}, draw.Src)
	return nil
}

// ---- helpers ----

func (self *Canvas) coverage(rect Rect) *image.Alpha {
	if rect.IsInfinite() {
		return mask.RectCoverage(self.img.Rect, 0, 0, float64(self.Width()), float64(self.Height()))
	}
	return mask.RectCoverage(self.img.Rect,
		rect.X, self.FlipY(rect.MaxY()),
		rect.MaxX(), self.FlipY(rect.Y),
	)
}

func (self *Canvas) paint(alpha *image.Alpha, clr color.Color) {
	alpha = mask.Intersect(self.clip, alpha)
	area := alpha.Rect.Intersect(self.img.Rect)
	if area.Empty() { return }
	draw.DrawMask(self.img, area, image.NewUniform(clr), image.Point{}, alpha, area.Min, draw.Over)
}
