package host

import "github.com/tinne26/voxtitle"

// Supplies parameter values at a given render time. The boolean
// results report whether the host has a value for the parameter;
// missing values keep their defaults.
type Retriever interface {
	String(id voxtitle.ParamID, time float64) (string, bool)
	FontName(id voxtitle.ParamID, time float64) (string, bool)
	Float(id voxtitle.ParamID, time float64) (float64, bool)
	Color(id voxtitle.ParamID, time float64) (voxtitle.Color, bool)
	Bool(id voxtitle.ParamID, time float64) (bool, bool)
}

// Collects the values of every parameter at the given time.
// Parameters the retriever doesn't know keep their defaults.
func Parameters(retriever Retriever, time float64) voxtitle.Parameters {
	params := voxtitle.DefaultParameters()
	for _, spec := range voxtitle.Specs {
		var value any
		var found bool
		switch spec.Kind {
		case voxtitle.KindString: value, found = retriever.String(spec.ID, time)
		case voxtitle.KindFont: value, found = retriever.FontName(spec.ID, time)
		case voxtitle.KindFloat: value, found = retriever.Float(spec.ID, time)
		case voxtitle.KindColor: value, found = retriever.Color(spec.ID, time)
		case voxtitle.KindToggle: value, found = retriever.Bool(spec.ID, time)
		}
		if !found { continue }
		updated, err := params.With(spec.ID, value)
		if err == nil { params = updated }
	}
	return params
}

// Collects the parameters at the given time and encodes them as
// the record persisted between edit and render time.
func Snapshot(retriever Retriever, time float64) (voxtitle.Parameters, []byte, error) {
	params := Parameters(retriever, time)
	data, err := params.Encode()
	if err != nil { return params, nil, err }
	return params, data, nil
}
