// Package shaper turns a string, a font name and a size into a
// measured single line of glyphs that can be drawn on a [canvas.Canvas].
//
// Shaping is deliberately simple: one glyph per rune, advances plus
// pairwise kerning, no bidi or complex script support. Font names are
// resolved through a [font.Library]; names that can't be resolved
// silently fall back to the embedded Go Regular face.
//
// A [Shaper] only reads its library, and every [Shaper.Shape]() and
// [Line.Draw]() call allocates its own font buffer, metrics
// reader and rasterizer, so they can be called from multiple goroutines.
package shaper
