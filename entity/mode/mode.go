package mode

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Mode selects which lesson demonstrations to run.
type Mode uint8

const (
	All Mode = iota
	Wavelength
	Amplitude
	Phase
	Propagation
	Spectrum
)

var names = map[Mode]string{
	All:         "all",
	Wavelength:  "wavelength",
	Amplitude:   "amplitude",
	Phase:       "phase",
	Propagation: "propagation",
	Spectrum:    "spectrum",
}

func UnmarshalText(text string) (Mode, error) {
	for m, name := range names {
		if name == text {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid mode: %q", text)
}

func (m Mode) String() string {
	if name, ok := names[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Includes reports whether running m runs the demonstration d.
func (m Mode) Includes(d Mode) bool {
	return m == All || m == d
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := UnmarshalText(value.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
