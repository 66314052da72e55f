// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, together with the [Point] and [Rect] helper
// types.
//
// Glyph outlines, advances and kerning come out of sfnt as 26.6
// values, so pen positions and glyph bounds are tracked in fract
// units until the final pixel placement. Canvas level geometry
// (layout and background boxes) uses plain float64s instead.
package fract
