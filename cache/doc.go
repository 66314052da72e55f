// The cache subpackage provides a bounded glyph mask cache for tools
// that draw the same title over many frames.
//
// The library's render path never uses it: shapers created with
// shaper.New keep masks only for the duration of a draw call. Tools
// rendering sequences or live previews can opt in through
// shaper.NewCached with a [MaskCache] they own. Masks depend only on
// their [Key], so cached and freshly rasterized masks are identical and
// caching never changes the rendered pixels.
//
// As a size reference, a 96px glyph takes around 4KiB, so the 8MiB
// [DefaultByteSize] fits a couple of titles at every subpixel position
// they may visit. [MaskCache.PeakSize]() helps tuning the limit.
package cache
