package voxtitle

import "bytes"

import "gopkg.in/yaml.v3"

// Version written in encoded parameter records. Decoding accepts
// any version: unknown keys are ignored and missing keys keep their
// defaults, so older and newer records both load.
const RecordVersion = 1

type record struct {
	Version    int `yaml:"version"`
	Parameters `yaml:",inline"`
}

// Returned by [DecodeParameters]() when the given bytes are not a
// parameter record. The parameters returned alongside it are the
// defaults, so callers can ignore the error and keep rendering.
type DecodeError struct {
	Err error
}

func (self *DecodeError) Error() string {
	return "voxtitle: malformed parameter record: " + self.Err.Error()
}

func (self *DecodeError) Unwrap() error { return self.Err }

// Encodes the parameters as a YAML mapping keyed by field name.
func (self Parameters) Encode() ([]byte, error) {
	return yaml.Marshal(record{ Version: RecordVersion, Parameters: self })
}

// Decodes a record produced by [Parameters.Encode](). Empty input
// decodes to [DefaultParameters]() without error. Missing fields keep
// their defaults. Malformed input returns the defaults together with
// a *[DecodeError].
func DecodeParameters(data []byte) (Parameters, error) {
	if len(bytes.TrimSpace(data)) == 0 { return DefaultParameters(), nil }

	rec := record{ Parameters: DefaultParameters() }
	err := yaml.Unmarshal(data, &rec)
	if err != nil { return DefaultParameters(), &DecodeError{ Err: err } }
	return rec.Parameters, nil
}
