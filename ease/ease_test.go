package ease

import "math"
import "testing"

func curvatures() []float64 {
	values := make([]float64, 0, 100)
	for i := 0; i < 99; i++ { values = append(values, float64(i)/100) }
	return append(values, 0.99)
}

func TestCurveEnds(t *testing.T) {
	for _, c := range curvatures() {
		if math.Abs(Curve(0, c)) > 1e-12 || math.Abs(Curve(1, c) - 1) > 1e-12 {
			t.Fatalf("curve with c = %v doesn't go through (0, 0) and (1, 1)", c)
		}
	}
	for _, a := range []float64{ 0, 0.2, 0.5, 0.77, 1 } {
		if math.Abs(Curve(a, 1.0/3.0) - a) > 1e-12 {
			t.Fatalf("c = 1/3 must be the identity, got Curve(%v) = %v", a, Curve(a, 1.0/3.0))
		}
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct{ in, out float64 }{ {0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.15625} }
	for _, test := range tests {
		if Smoothstep(test.in) != test.out {
			t.Fatalf("Smoothstep(%v) = %v, expected %v", test.in, Smoothstep(test.in), test.out)
		}
	}
}

func TestSolveBoundaries(t *testing.T) {
	for _, c := range curvatures() {
		if got := Solve(0, c); math.Abs(got) > 1e-3 {
			t.Fatalf("Solve(0, %v) = %v", c, got)
		}
		if got := Solve(1, c); math.Abs(got - 1) > 1e-3 {
			t.Fatalf("Solve(1, %v) = %v", c, got)
		}
	}
}

func TestSolveMonotonic(t *testing.T) {
	for _, c := range curvatures() {
		prev := Solve(0, c)
		for i := 1; i <= 1000; i++ {
			x := float64(i)/1000
			y := Solve(x, c)
			if y < prev {
				t.Fatalf("c = %v: Solve(%v) = %v < %v", c, x, y, prev)
			}
			prev = y
		}
	}
}

func TestSolveRange(t *testing.T) {
	inputs := []float64{ -1, -1e-9, 0.3, 1 + 1e-9, 2, math.NaN() }
	for _, c := range []float64{ 0.02, 0.5, 0.99 } {
		for _, x := range inputs {
			y := Solve(x, c)
			if !(y >= 0 && y <= 1) {
				t.Fatalf("Solve(%v, %v) = %v out of [0, 1]", x, c, y)
			}
		}
	}
}

func TestSolveIdentityWarp(t *testing.T) {
	// with an identity warp only the smoothstep remains
	for _, x := range []float64{ 0.1, 0.25, 0.5, 0.9 } {
		got, expected := Solve(x, 1.0/3.0), Smoothstep(x)
		if math.Abs(got - expected) > 1e-6 {
			t.Fatalf("Solve(%v, 1/3) = %v, expected %v", x, got, expected)
		}
	}
}
