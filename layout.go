package voxtitle

import "github.com/tinne26/voxtitle/canvas"

// Title geometry in canvas space (origin at the bottom-left corner,
// Y up), before any build-in slide is applied.
type Layout struct {
	Line       canvas.Rect // ink box of the text, centered in the canvas
	Background canvas.Rect // Line padded by the background margin
}

// Centers a line of the given size in the canvas and pads it by the
// given margin to obtain the background rect.
func NewLayout(lineWidth, lineHeight, canvasWidth, canvasHeight, margin float64) Layout {
	line := canvas.Rect{
		X: (canvasWidth  - lineWidth )/2,
		Y: (canvasHeight - lineHeight)/2,
		Width: lineWidth,
		Height: lineHeight,
	}
	return Layout{ Line: line, Background: line.Pad(margin) }
}

// Computes the layout of an already shaped line for the given
// parameters and canvas size.
func LayoutFor(params Parameters, line ShapedLine, canvasWidth, canvasHeight float64) Layout {
	width, height := line.Size()
	return NewLayout(width, height, canvasWidth, canvasHeight, params.BackgroundMargin)
}
