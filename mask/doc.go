// The mask subpackage turns vector outlines into alpha coverage masks.
//
// Glyph masks are rasterized from sfnt outlines by [GlyphRasterizer],
// while rectangle masks for background boxes and clipping regions are
// computed analytically by [RectCoverage]. Both are plain [*image.Alpha]
// values in image space (origin top-left, Y down).
package mask
