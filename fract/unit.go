package fract

import "math"
import "strconv"

// A 26.6 fixed point value: 64 units make a pixel. The layout matches
// [fixed.Int26_6], so sfnt values convert with a plain type cast.
//
// [fixed.Int26_6]: golang.org/x/image/math/fixed.Int26_6
type Unit int32

// One pixel.
const One Unit = 64

const maxUnit = Unit(math.MaxInt32)
const minUnit = Unit(math.MinInt32)

// Converts a float64 to the closest unit, rounding ties up. NaNs
// become zero and values out of range are clamped. Sizes and canvas
// coordinates come from user parameters, so no input is rejected.
func FromFloat64(value float64) Unit {
	if math.IsNaN(value) { return 0 }
	scaled := math.Floor(value*float64(One) + 0.5)
	if scaled >= float64(maxUnit) { return maxUnit }
	if scaled <= float64(minUnit) { return minUnit }
	return Unit(scaled)
}

// Returns the subpixel part of the unit relative to its floor,
// always in [0, 63]. Glyph masks depend only on this value.
func (self Unit) FractShift() Unit { return self & 0x3F }

func (self Unit) Floor() Unit { return self & ^0x3F }
func (self Unit) Ceil() Unit { return (self + 0x3F).Floor() }

func (self Unit) ToIntFloor() int { return int(self) >> 6 }
func (self Unit) ToFloat64() float64 { return float64(self)/64.0 }
func (self Unit) ToFloat32() float32 { return float32(self)/64.0 }

// Returns the unit in pixels (e.g.: "2.5").
func (self Unit) String() string {
	return strconv.FormatFloat(self.ToFloat64(), 'f', -1, 64)
}
