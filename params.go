package voxtitle

import "errors"
import "fmt"
import "math"
import "image/color"

// Stable numeric identifiers of the title parameters. Persisted
// projects and hosts reference parameters by these numbers, so they
// must never be renumbered.
type ParamID int

const (
	ParamText              ParamID = 1
	ParamFont              ParamID = 2
	ParamSize              ParamID = 3
	ParamTextColor         ParamID = 4
	ParamBackgroundEnabled ParamID = 5
	ParamBackgroundColor   ParamID = 6
	ParamBackgroundMargin  ParamID = 7
	ParamBuildInDuration   ParamID = 8
	ParamBuildInCurvature  ParamID = 9
)

// An RGB color with components in [0, 1]. Colors are always
// drawn fully opaque.
//
// Color implements [color.Color], so it can be passed directly
// to drawing functions.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

var _ color.Color = Color{}

// Satisfies [color.Color]. Components outside [0, 1] are clamped.
func (self Color) RGBA() (r, g, b, a uint32) {
	return channel16(self.R), channel16(self.G), channel16(self.B), 0xFFFF
}

// Returns the color as 8-bit RGBA.
func (self Color) ToRGBA8() color.RGBA {
	r, g, b, _ := self.RGBA()
	return color.RGBA{ uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255 }
}

func channel16(value float64) uint32 {
	return uint32(math.Round(clampFloat(value, 0, 1, 0)*0xFFFF))
}

// The user-tunable controls of a title. Parameters are plain values:
// modifying a copy never affects the original.
type Parameters struct {
	Text              string  `yaml:"text"`
	Font              string  `yaml:"font"`
	Size              float64 `yaml:"size"`
	TextColor         Color   `yaml:"textColor"`
	BackgroundEnabled bool    `yaml:"backgroundEnabled"`
	BackgroundColor   Color   `yaml:"backgroundColor"`
	BackgroundMargin  float64 `yaml:"backgroundMargin"`
	BuildInDuration   float64 `yaml:"buildInDuration"`
	BuildInCurvature  float64 `yaml:"buildInCurvature"`
}

// Returns the parameters with every field set to its registered default.
func DefaultParameters() Parameters {
	var params Parameters
	for _, spec := range Specs {
		params.set(spec.ID, spec.Default)
	}
	return params
}

// Returned by [Parameters.With]() and [ParameterSpec.Parse]().
var (
	ErrUnknownParam = errors.New("unknown parameter id")
	ErrParamType    = errors.New("wrong parameter value type")
)

// Returns the value of the given parameter as a string, float64,
// bool or [Color], depending on its [ParamKind].
func (self Parameters) Value(id ParamID) (any, bool) {
	switch id {
	case ParamText: return self.Text, true
	case ParamFont: return self.Font, true
	case ParamSize: return self.Size, true
	case ParamTextColor: return self.TextColor, true
	case ParamBackgroundEnabled: return self.BackgroundEnabled, true
	case ParamBackgroundColor: return self.BackgroundColor, true
	case ParamBackgroundMargin: return self.BackgroundMargin, true
	case ParamBuildInDuration: return self.BuildInDuration, true
	case ParamBuildInCurvature: return self.BuildInCurvature, true
	default:
		return nil, false
	}
}

// Returns a copy of the parameters with the given field replaced.
// Float parameters also accept ints. The value is not sanitized.
func (self Parameters) With(id ParamID, value any) (Parameters, error) {
	spec, found := SpecByID(id)
	if !found { return self, fmt.Errorf("%w: %d", ErrUnknownParam, id) }
	value, ok := spec.Kind.coerce(value)
	if !ok {
		return self, fmt.Errorf("%w: %s expects %s, got %T", ErrParamType, spec.Key, spec.Kind, value)
	}
	self.set(id, value)
	return self, nil
}

// Values must already have the right dynamic type.
func (self *Parameters) set(id ParamID, value any) {
	switch id {
	case ParamText: self.Text = value.(string)
	case ParamFont: self.Font = value.(string)
	case ParamSize: self.Size = value.(float64)
	case ParamTextColor: self.TextColor = value.(Color)
	case ParamBackgroundEnabled: self.BackgroundEnabled = value.(bool)
	case ParamBackgroundColor: self.BackgroundColor = value.(Color)
	case ParamBackgroundMargin: self.BackgroundMargin = value.(float64)
	case ParamBuildInDuration: self.BuildInDuration = value.(float64)
	case ParamBuildInCurvature: self.BuildInCurvature = value.(float64)
	default:
		panic("unexpected ParamID " + fmt.Sprint(int(id)))
	}
}

// Returns a copy of the parameters clamped into their registered
// ranges: sizes, margins and durations into [0, max], curvature into
// [0, 0.99] and color components into [0, 1]. NaN values are replaced
// by the field defaults.
func (self Parameters) Sanitized() Parameters {
	defaults := DefaultParameters()
	for _, spec := range Specs {
		switch spec.Kind {
		case KindFloat:
			value, _ := self.Value(spec.ID)
			fallback, _ := defaults.Value(spec.ID)
			rng := spec.Range
			self.set(spec.ID, clampFloat(value.(float64), rng.Min, rng.Max, fallback.(float64)))
		case KindColor:
			value, _ := self.Value(spec.ID)
			fallback, _ := defaults.Value(spec.ID)
			self.set(spec.ID, value.(Color).clamped(fallback.(Color)))
		}
	}
	return self
}

func (self Color) clamped(fallback Color) Color {
	return Color{
		R: clampFloat(self.R, 0, 1, fallback.R),
		G: clampFloat(self.G, 0, 1, fallback.G),
		B: clampFloat(self.B, 0, 1, fallback.B),
	}
}

func clampFloat(value, min, max, nanValue float64) float64 {
	if math.IsNaN(value) { return nanValue }
	if value < min { return min }
	if value > max { return max }
	return value
}
