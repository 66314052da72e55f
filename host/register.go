package host

import "fmt"

import "github.com/tinne26/voxtitle"

// Receives parameter registrations. Methods are called once per
// parameter, in id order.
type Registrar interface {
	AddStringParameter(name string, id voxtitle.ParamID, defaultValue string) error
	AddFontMenu(name string, id voxtitle.ParamID, defaultFont string) error
	AddFloatSlider(name string, id voxtitle.ParamID, defaultValue float64, limits voxtitle.Range) error
	AddColorParameter(name string, id voxtitle.ParamID, defaultColor voxtitle.Color) error
	AddToggleButton(name string, id voxtitle.ParamID, defaultValue bool) error
}

// Registers every entry of [voxtitle.Specs] with the registrar,
// stopping at the first error.
func Register(registrar Registrar) error {
	for _, spec := range voxtitle.Specs {
		var err error
		switch spec.Kind {
		case voxtitle.KindString:
			err = registrar.AddStringParameter(spec.Name, spec.ID, spec.Default.(string))
		case voxtitle.KindFont:
			err = registrar.AddFontMenu(spec.Name, spec.ID, spec.Default.(string))
		case voxtitle.KindFloat:
			err = registrar.AddFloatSlider(spec.Name, spec.ID, spec.Default.(float64), spec.Range)
		case voxtitle.KindColor:
			err = registrar.AddColorParameter(spec.Name, spec.ID, spec.Default.(voxtitle.Color))
		case voxtitle.KindToggle:
			err = registrar.AddToggleButton(spec.Name, spec.ID, spec.Default.(bool))
		default:
			err = fmt.Errorf("unsupported parameter kind %s", spec.Kind)
		}
		if err != nil { return fmt.Errorf("registering %q: %w", spec.Name, err) }
	}
	return nil
}

// A registration captured by a [Recorder].
type Entry struct {
	ID      voxtitle.ParamID
	Name    string
	Kind    voxtitle.ParamKind
	Default any
	Range   voxtitle.Range // float sliders only
}

// A [Registrar] that records the registrations it receives.
// The zero value is ready to use.
type Recorder struct {
	Entries []Entry
}

var _ Registrar = (*Recorder)(nil)

func (self *Recorder) AddStringParameter(name string, id voxtitle.ParamID, defaultValue string) error {
	return self.add(Entry{ ID: id, Name: name, Kind: voxtitle.KindString, Default: defaultValue })
}

func (self *Recorder) AddFontMenu(name string, id voxtitle.ParamID, defaultFont string) error {
	return self.add(Entry{ ID: id, Name: name, Kind: voxtitle.KindFont, Default: defaultFont })
}

func (self *Recorder) AddFloatSlider(name string, id voxtitle.ParamID, defaultValue float64, limits voxtitle.Range) error {
	if limits.Min > limits.Max || limits.SliderMin < limits.Min || limits.SliderMax > limits.Max {
		return fmt.Errorf("inconsistent range %+v", limits)
	}
	return self.add(Entry{ ID: id, Name: name, Kind: voxtitle.KindFloat, Default: defaultValue, Range: limits })
}

func (self *Recorder) AddColorParameter(name string, id voxtitle.ParamID, defaultColor voxtitle.Color) error {
	return self.add(Entry{ ID: id, Name: name, Kind: voxtitle.KindColor, Default: defaultColor })
}

func (self *Recorder) AddToggleButton(name string, id voxtitle.ParamID, defaultValue bool) error {
	return self.add(Entry{ ID: id, Name: name, Kind: voxtitle.KindToggle, Default: defaultValue })
}

func (self *Recorder) add(entry Entry) error {
	for _, existing := range self.Entries {
		if existing.ID == entry.ID { return fmt.Errorf("duplicated parameter id %d", entry.ID) }
	}
	self.Entries = append(self.Entries, entry)
	return nil
}
