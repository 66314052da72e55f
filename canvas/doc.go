// Package canvas implements the logical drawing surface titles are
// composited on: a premultiplied RGBA image addressed in canvas space,
// where the origin is the bottom-left corner and Y grows upwards.
//
// A canvas supports an anti-aliased rectangular clip, solid rect fills
// and alpha mask drawing. Once finished, it can be transferred into any
// [draw.Image], letting the standard library convert to the target's
// native color model.
package canvas
