package voxtitle

import "fmt"
import "strconv"
import "strings"

// The kind of control a parameter is edited with.
type ParamKind uint8

const (
	KindString ParamKind = iota
	KindFont   // a font name, shown as a font menu
	KindFloat  // a float slider
	KindColor  // an RGB color picker
	KindToggle // a checkbox
)

// Returns the kind name (e.g. "float").
func (self ParamKind) String() string {
	switch self {
	case KindString: return "string"
	case KindFont: return "font"
	case KindFloat: return "float"
	case KindColor: return "color"
	case KindToggle: return "toggle"
	default:
		return "ParamKind(" + strconv.Itoa(int(self)) + ")"
	}
}

func (self ParamKind) coerce(value any) (any, bool) {
	switch self {
	case KindString, KindFont:
		str, ok := value.(string)
		if ok { return str, true }
	case KindFloat:
		switch number := value.(type) {
		case float64: return number, true
		case float32: return float64(number), true
		case int: return float64(number), true
		}
	case KindColor:
		clr, ok := value.(Color)
		if ok { return clr, true }
	case KindToggle:
		flag, ok := value.(bool)
		if ok { return flag, true }
	}
	return value, false
}

// Value limits for float parameters. Min and Max bound the values
// that can be stored, while the slider range is the subrange the
// host shows by default. Step is the slider increment.
type Range struct {
	Min, Max             float64
	SliderMin, SliderMax float64
	Step                 float64
}

// Declarative description of a parameter, used for defaults,
// sanitization, host registration and textual editing.
type ParameterSpec struct {
	ID      ParamID
	Name    string // display name
	Key     string // persisted record key
	Kind    ParamKind
	Default any
	Range   Range // float parameters only
}

// All the title parameters, sorted by id.
var Specs = []ParameterSpec{
	{ ID: ParamText, Name: "Text", Key: "text", Kind: KindString, Default: "Vox Title" },
	{ ID: ParamFont, Name: "Font", Key: "font", Kind: KindFont, Default: "Helvetica" },
	{
		ID: ParamSize, Name: "Size", Key: "size", Kind: KindFloat, Default: 72.0,
		Range: Range{ Min: 0, Max: 1000, SliderMin: 0, SliderMax: 100, Step: 1 },
	},
	{ ID: ParamTextColor, Name: "Text Color", Key: "textColor", Kind: KindColor, Default: Color{ R: 0, G: 0, B: 0 } },
	{ ID: ParamBackgroundEnabled, Name: "Enable Background", Key: "backgroundEnabled", Kind: KindToggle, Default: true },
	{ ID: ParamBackgroundColor, Name: "Background Color", Key: "backgroundColor", Kind: KindColor, Default: Color{ R: 1, G: 1, B: 0 } },
	{
		ID: ParamBackgroundMargin, Name: "Background Margin", Key: "backgroundMargin", Kind: KindFloat, Default: 12.0,
		Range: Range{ Min: 0, Max: 1000, SliderMin: 0, SliderMax: 100, Step: 1 },
	},
	{
		ID: ParamBuildInDuration, Name: "Build In Duration", Key: "buildInDuration", Kind: KindFloat, Default: 1.0,
		Range: Range{ Min: 0, Max: 100, SliderMin: 0, SliderMax: 10, Step: 0.1 },
	},
	{
		ID: ParamBuildInCurvature, Name: "Build In Curvature", Key: "buildInCurvature", Kind: KindFloat, Default: 0.5,
		Range: Range{ Min: 0, Max: 0.99, SliderMin: 0, SliderMax: 0.99, Step: 0.01 },
	},
}

// Returns the spec with the given id.
func SpecByID(id ParamID) (ParameterSpec, bool) {
	index := int(id) - 1
	if index < 0 || index >= len(Specs) { return ParameterSpec{}, false }
	return Specs[index], true
}

// Returns the spec with the given record key. The comparison
// ignores case.
func SpecByKey(key string) (ParameterSpec, bool) {
	for _, spec := range Specs {
		if strings.EqualFold(spec.Key, key) { return spec, true }
	}
	return ParameterSpec{}, false
}

// Parses a textual value for the parameter. Colors accept "#rrggbb"
// and "r,g,b" with components in [0, 1]. Toggles accept the values
// understood by [strconv.ParseBool].
func (self ParameterSpec) Parse(raw string) (any, error) {
	switch self.Kind {
	case KindString, KindFont:
		return raw, nil
	case KindFloat:
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil { return nil, fmt.Errorf("%s: %w", self.Key, err) }
		return value, nil
	case KindToggle:
		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil { return nil, fmt.Errorf("%s: %w", self.Key, err) }
		return value, nil
	case KindColor:
		clr, err := ParseColor(raw)
		if err != nil { return nil, fmt.Errorf("%s: %w", self.Key, err) }
		return clr, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrParamType, self.Kind)
	}
}

// Formats a value of the parameter the way [ParameterSpec.Parse]()
// reads it back.
func (self ParameterSpec) Format(value any) string {
	switch typed := value.(type) {
	case string: return typed
	case float64: return strconv.FormatFloat(typed, 'g', -1, 64)
	case bool: return strconv.FormatBool(typed)
	case Color: return typed.String()
	default:
		return fmt.Sprint(value)
	}
}

// Parses "#rrggbb" or "r,g,b" (floats in [0, 1]) colors.
func ParseColor(raw string) (Color, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "#") {
		hex := raw[1:]
		if len(hex) != 6 { return Color{}, fmt.Errorf("%w: color %q", ErrParamType, raw) }
		value, err := strconv.ParseUint(hex, 16, 32)
		if err != nil { return Color{}, fmt.Errorf("color %q: %w", raw, err) }
		return Color{
			R: float64((value >> 16) & 0xFF)/255,
			G: float64((value >>  8) & 0xFF)/255,
			B: float64( value        & 0xFF)/255,
		}, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 3 { return Color{}, fmt.Errorf("%w: color %q", ErrParamType, raw) }
	var components [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil { return Color{}, fmt.Errorf("color %q: %w", raw, err) }
		components[i] = value
	}
	return Color{ R: components[0], G: components[1], B: components[2] }, nil
}

// Returns the color as "r,g,b".
func (self Color) String() string {
	return strconv.FormatFloat(self.R, 'g', -1, 64) + "," +
		strconv.FormatFloat(self.G, 'g', -1, 64) + "," +
		strconv.FormatFloat(self.B, 'g', -1, 64)
}
