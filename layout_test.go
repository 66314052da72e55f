package voxtitle

import "testing"

import "github.com/tinne26/voxtitle/canvas"

func TestLayoutCentering(t *testing.T) {
	tests := []struct{ lineW, lineH, canvasW, canvasH, margin float64; line, bg canvas.Rect }{
		{ 40, 20, 200, 100, 10, canvas.Rect{ X: 80, Y: 40, Width: 40, Height: 20 }, canvas.Rect{ X: 70, Y: 30, Width: 60, Height: 40 } },
		{ 33, 17, 101, 51, 0, canvas.Rect{ X: 34, Y: 17, Width: 33, Height: 17 }, canvas.Rect{ X: 34, Y: 17, Width: 33, Height: 17 } },
		{ 0, 0, 1920, 1080, 12, canvas.Rect{ X: 960, Y: 540, Width: 0, Height: 0 }, canvas.Rect{ X: 948, Y: 528, Width: 24, Height: 24 } },
		{ 300, 50, 200, 100, 5, canvas.Rect{ X: -50, Y: 25, Width: 300, Height: 50 }, canvas.Rect{ X: -55, Y: 20, Width: 310, Height: 60 } },
		{ 10.5, 3.25, 20, 10, 1.5, canvas.Rect{ X: 4.75, Y: 3.375, Width: 10.5, Height: 3.25 }, canvas.Rect{ X: 3.25, Y: 1.875, Width: 13.5, Height: 6.25 } },
	}
	for i, test := range tests {
		layout := NewLayout(test.lineW, test.lineH, test.canvasW, test.canvasH, test.margin)
		if layout.Line != test.line { t.Fatalf("test#%d: line %v, expected %v", i, layout.Line, test.line) }
		if layout.Background != test.bg { t.Fatalf("test#%d: background %v, expected %v", i, layout.Background, test.bg) }
	}
}

func TestLayoutFor(t *testing.T) {
	params := DefaultParameters()
	params.BackgroundMargin = 4
	layout := LayoutFor(params, rectLine{ width: 40, height: 20 }, 200, 100)
	expected := NewLayout(40, 20, 200, 100, 4)
	if layout != expected { t.Fatalf("expected %+v, got %+v", expected, layout) }
}
