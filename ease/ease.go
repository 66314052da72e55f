// Package ease implements the symmetric ease-in/ease-out curve used
// by title build-ins.
//
// The curve is a smoothstep whose input is first warped by a cubic
// controlled by a curvature value c in [0, 0.99]. For c = 1/3 the cubic
// is the identity, lower values flatten the ease and higher values make
// it steeper. The warp can't be inverted in closed form for arbitrary
// c, so [Solve]() finds it numerically with Newton-Raphson.
package ease

import "math"

const (
	maxIterations = 100
	tolerance     = 1e-3
	startGuess    = 0.5
)

// Evaluates the warping cubic (6c−2)a³ + (−9c+3)a² + 3c·a.
// Curve(0, c) = 0 and Curve(1, c) = 1 for any c.
func Curve(a, c float64) float64 {
	return ((6*c - 2)*a + (-9*c + 3))*a*a + 3*c*a
}

func curveSlope(a, c float64) float64 {
	return (18*c - 6)*a*a + (-18*c + 6)*a + 3*c
}

// Returns 3a² − 2a³.
func Smoothstep(a float64) float64 {
	return a*a*(3 - 2*a)
}

// Maps the normalized progress x through the ease curve with
// curvature c. Solve(0, c) ≈ 0 and Solve(1, c) ≈ 1 within 1e-3, and
// the result is non-decreasing in x for any c in [0, 0.99].
//
// The root finder runs at most 100 Newton-Raphson iterations from
// a = 0.5 and stops early when the slope gets too flat or the steps
// get smaller than 1e-3. Non-convergence is not an error: the last
// iterate is used. Results are clamped to [0, 1].
func Solve(x, c float64) float64 {
	return clampUnit(Smoothstep(clampUnit(solveCurve(x, c))))
}

// Finds a such that Curve(a, c) = x.
func solveCurve(x, c float64) float64 {
	a := startGuess
	for i := 0; i < maxIterations; i++ {
		slope := curveSlope(a, c)
		if math.Abs(slope) < tolerance { break }
		next := a - (Curve(a, c) - x)/slope
		if math.Abs(next - a) < tolerance {
			a = next
			break
		}
		a = next
	}
	return a
}

func clampUnit(value float64) float64 {
	if value <= 0 { return 0 }
	if value >= 1 { return 1 }
	if value != value { return 0 } // NaN
	return value
}
