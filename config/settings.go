package config

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zxzenius/z-units/errors"
)

// Settings is the serialized form of the environment parameters, used
// to override the environment from a YAML document. Absent fields
// leave the corresponding parameter untouched, so a deployment can
// override just the atmospheric pressure for a high-altitude site.
//
//	standard_temperature: 15
//	local_atmospheric_pressure: 84500
type Settings struct {
	StandardTemperature      *float64 `yaml:"standard_temperature,omitempty"`
	LocalAtmosphericPressure *float64 `yaml:"local_atmospheric_pressure,omitempty"`
}

// LoadSettings reads Settings from a YAML document.
func LoadSettings(r io.Reader) (Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			// Empty document means no overrides.
			return Settings{}, nil
		}
		return Settings{}, errors.WrapInvalid(err, "Settings", "LoadSettings", "YAML decoding")
	}
	return s, nil
}

// Apply applies the present fields of s to the environment. Each field
// goes through the corresponding validated setter; on the first
// validation failure nothing further is applied.
func (e *Environment) Apply(s Settings) error {
	if s.StandardTemperature != nil {
		if err := e.SetStandardTemperature(*s.StandardTemperature); err != nil {
			return err
		}
	}
	if s.LocalAtmosphericPressure != nil {
		if err := e.SetLocalAtmosphericPressure(*s.LocalAtmosphericPressure); err != nil {
			return err
		}
	}
	return nil
}
