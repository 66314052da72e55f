package canvas

import "math"
import "testing"

func TestRectPad(t *testing.T) {
	rect := Rect{ X: 80, Y: 40, Width: 40, Height: 20 }
	padded := rect.Pad(10)
	expected := Rect{ X: 70, Y: 30, Width: 60, Height: 40 }
	if padded != expected { t.Fatalf("expected %v, got %v", expected, padded) }
	if padded.Pad(-10) != rect { t.Fatalf("negative pad didn't undo padding") }
	if rect.Pad(0) != rect { t.Fatalf("zero pad changed the rect") }
}

func TestRectIntersect(t *testing.T) {
	a := Rect{ X: 0, Y: 0, Width: 10, Height: 10 }
	b := Rect{ X: 5, Y: -5, Width: 10, Height: 10 }
	got := a.Intersect(b)
	expected := Rect{ X: 5, Y: 0, Width: 5, Height: 5 }
	if got != expected { t.Fatalf("expected %v, got %v", expected, got) }

	far := a.Offset(100, 0)
	if !a.Intersect(far).Empty() { t.Fatalf("expected empty intersection") }
	if a.Intersect(Infinite()) != a || Infinite().Intersect(a) != a {
		t.Fatalf("infinite rect must be neutral for intersections")
	}
}

func TestRectInfinite(t *testing.T) {
	inf := Infinite()
	if !inf.IsInfinite() || inf.Empty() { t.Fatalf("bad infinite rect %v", inf) }
	if !math.IsInf(inf.MaxX(), 1) || !math.IsInf(inf.MaxY(), 1) {
		t.Fatalf("unexpected max coords for infinite rect")
	}
	if !inf.Contains(-1e300, 1e300) { t.Fatalf("infinite rect must contain everything") }

	var zero Rect
	if !zero.Empty() || zero.IsInfinite() { t.Fatalf("bad zero rect state") }
	nan := Rect{ Width: math.NaN(), Height: 1 }
	if !nan.Empty() { t.Fatalf("NaN sized rect must be empty") }
}

func TestRectContains(t *testing.T) {
	rect := Rect{ X: 1, Y: 2, Width: 3, Height: 4 }
	tests := []struct{ x, y float64; in bool }{
		{1, 2, true}, {3.99, 5.99, true}, {4, 3, false},
		{2, 6, false}, {0.99, 3, false},
	}
	for _, test := range tests {
		if rect.Contains(test.x, test.y) != test.in {
			t.Fatalf("Contains(%v, %v) expected %t", test.x, test.y, test.in)
		}
	}
	if rect.String() != "(1, 2)+(3x4)" { t.Fatalf("unexpected string %q", rect.String()) }
}
