package parameters

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/emwave/entity/format"
	"github.com/AnkushinDaniil/emwave/entity/mode"
)

type Parameters struct {
	Mode   mode.Mode     `yaml:"mode"`
	Format format.Format `yaml:"format"`
	Output string        `yaml:"output"`

	Points    int       `yaml:"points"`     // samples along the x axis
	Span      float64   `yaml:"span"`       // meters
	TimeSteps []float64 `yaml:"time-steps"` // seconds

	FFTSamples   int     `yaml:"fft-samples"`
	Oversampling float64 `yaml:"oversampling"` // sample rate as a multiple of the wave frequency

	PhaseSteps       int     `yaml:"phase-steps"`
	CustomWavelength float64 `yaml:"custom-wavelength"` // meters
}

func Default() *Parameters {
	return &Parameters{
		Mode:             mode.All,
		Format:           format.HTML,
		Output:           ".",
		Points:           1000,
		Span:             3e-6,
		TimeSteps:        []float64{0, 0.5e-15, 1.0e-15, 1.5e-15},
		FFTSamples:       1024,
		Oversampling:     16,
		PhaseSteps:       64,
		CustomWavelength: 1310e-9,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters: %w", err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse parameters: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parameters) Validate() error {
	var errs []error
	if p.Points < 2 {
		errs = append(errs, fmt.Errorf("points must be at least 2, got %d", p.Points))
	}
	if !(p.Span > 0) {
		errs = append(errs, fmt.Errorf("span must be positive, got %g", p.Span))
	}
	if len(p.TimeSteps) == 0 {
		errs = append(errs, errors.New("time-steps is empty"))
	}
	if p.FFTSamples < 2 {
		errs = append(errs, fmt.Errorf("fft-samples must be at least 2, got %d", p.FFTSamples))
	}
	if !(p.Oversampling > 2) {
		errs = append(errs, fmt.Errorf("oversampling must be above 2, got %g", p.Oversampling))
	}
	if p.PhaseSteps < 2 {
		errs = append(errs, fmt.Errorf("phase-steps must be at least 2, got %d", p.PhaseSteps))
	}
	if !(p.CustomWavelength > 0) {
		errs = append(errs, fmt.Errorf("custom-wavelength must be positive, got %g", p.CustomWavelength))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}
