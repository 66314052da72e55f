package voxtitle

import "image/color"

import "github.com/tinne26/voxtitle/canvas"
import "github.com/tinne26/voxtitle/shaper"

// A single line of text, measured and ready to be drawn.
type ShapedLine interface {
	// Returns the size of the line's bounding box.
	Size() (width, height float64)

	// Draws the line with the bottom-left corner of its bounding box
	// at (x, y), in canvas space, respecting the canvas clip.
	Draw(target *canvas.Canvas, x, y float64, clr color.Color) error
}

// Shapes text into lines. Implementations must be safe for concurrent
// use, and must fall back to some default font when the requested one
// can't be resolved instead of failing.
type TextShaper interface {
	Shape(text string, fontName string, size float64) (ShapedLine, error)
}

type stdShaper struct {
	shaper *shaper.Shaper
}

// Returns a [TextShaper] backed by the given [shaper.Shaper].
func NewStdShaper(s *shaper.Shaper) TextShaper {
	return stdShaper{ shaper: s }
}

// Returns the [TextShaper] used when a [Request] doesn't set one. It
// resolves fonts against the embedded Go fonts.
func StdShaper() TextShaper {
	return stdShaper{ shaper: shaper.Default() }
}

func (self stdShaper) Shape(text string, fontName string, size float64) (ShapedLine, error) {
	line, err := self.shaper.Shape(text, fontName, size)
	if err != nil { return nil, err }
	return line, nil
}
