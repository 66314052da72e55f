package voxtitle

import "github.com/tinne26/voxtitle/canvas"

// Pixel transforms a title can be rendered under.
type PixelTransform uint8

const (
	PixelTransformScale PixelTransform = iota // uniform scale only
	PixelTransformScaleTranslate
	PixelTransformFull
)

// Static capabilities reported to hosts.
type EffectProperties struct {
	ChangesOutputSize         bool
	MayRemapTime              bool
	NeedsFullBuffer           bool
	PixelTransforms           PixelTransform
	VariesWhenParamsAreStatic bool
}

// Returns the static capabilities of title rendering. The output
// varies over time even when the parameters don't, as the build-in
// animation depends on the render time.
func Properties() EffectProperties {
	return EffectProperties{
		ChangesOutputSize: false,
		MayRemapTime: false,
		NeedsFullBuffer: true,
		PixelTransforms: PixelTransformScale,
		VariesWhenParamsAreStatic: true,
	}
}

// Titles generate their whole output, so they can paint anywhere.
func DestinationRect() canvas.Rect { return canvas.Infinite() }

// Titles never sample their input.
func SourceTileRect() canvas.Rect { return canvas.Rect{} }
