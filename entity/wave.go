package entity

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultAmplitude  = 1.0
	DefaultWavelength = 600e-9 // meters
	DefaultPhase      = 0.0    // radians
	DefaultSpeed      = 3e8    // m/s
)

// ErrInvalidParameter is returned when a wave parameter cannot be used to
// derive frequency or wave number.
var ErrInvalidParameter = errors.New("invalid parameter")

// Wave is a sinusoidal electromagnetic wave E(x,t) = A·sin(kx − ωt + φ).
// It is immutable once built.
type Wave struct {
	amplitude  float64
	wavelength float64
	phase      float64
	speed      float64

	frequency        float64
	angularFrequency float64
	waveNumber       float64
}

type WaveOption func(*Wave)

func WithAmplitude(amplitude float64) WaveOption {
	return func(w *Wave) { w.amplitude = amplitude }
}

func WithWavelength(wavelength float64) WaveOption {
	return func(w *Wave) { w.wavelength = wavelength }
}

func WithPhase(phase float64) WaveOption {
	return func(w *Wave) { w.phase = phase }
}

func WithSpeed(speed float64) WaveOption {
	return func(w *Wave) { w.speed = speed }
}

// NewWave builds a wave from the defaults overridden by opts. Wavelength and
// speed must be finite and positive; amplitude and phase are taken as given.
func NewWave(opts ...WaveOption) (*Wave, error) {
	w := &Wave{
		amplitude:  DefaultAmplitude,
		wavelength: DefaultWavelength,
		phase:      DefaultPhase,
		speed:      DefaultSpeed,
	}
	for _, opt := range opts {
		opt(w)
	}

	if !isPositive(w.wavelength) {
		return nil, fmt.Errorf("%w: wavelength must be positive, got %g", ErrInvalidParameter, w.wavelength)
	}
	if !isPositive(w.speed) {
		return nil, fmt.Errorf("%w: speed must be positive, got %g", ErrInvalidParameter, w.speed)
	}

	w.frequency = w.speed / w.wavelength
	w.angularFrequency = 2 * math.Pi * w.frequency
	w.waveNumber = 2 * math.Pi / w.wavelength
	return w, nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (w *Wave) Amplitude() float64 {
	return w.amplitude
}

func (w *Wave) Wavelength() float64 {
	return w.wavelength
}

func (w *Wave) Phase() float64 {
	return w.phase
}

func (w *Wave) Speed() float64 {
	return w.speed
}

// Frequency in Hz.
func (w *Wave) Frequency() float64 {
	return w.frequency
}

func (w *Wave) AngularFrequency() float64 {
	return w.angularFrequency
}

func (w *Wave) WaveNumber() float64 {
	return w.waveNumber
}

// Period in seconds.
func (w *Wave) Period() float64 {
	return 1 / w.frequency
}

// ElectricField returns the field at position x (meters) and time t (seconds).
func (w *Wave) ElectricField(x, t float64) float64 {
	return w.amplitude * math.Sin(w.waveNumber*x-w.angularFrequency*t+w.phase)
}

// ElectricFieldAt evaluates the field at every position in xs at the same
// time t. The result has the length and order of xs.
func (w *Wave) ElectricFieldAt(xs []float64, t float64) []float64 {
	field := make([]float64, len(xs))
	for i, x := range xs {
		field[i] = w.ElectricField(x, t)
	}
	return field
}

// Intensity is relative: proportional to the squared amplitude.
func (w *Wave) Intensity() float64 {
	return w.amplitude * w.amplitude
}

func (w *Wave) String() string {
	return fmt.Sprintf("Wave(amplitude=%g, wavelength=%.1fnm, frequency=%.2eHz)",
		w.amplitude, w.wavelength*1e9, w.frequency)
}

// withPhase returns a copy of w shifted to phase. The derived constants do
// not depend on phase, so they are carried over.
func (w *Wave) withPhase(phase float64) *Wave {
	c := *w
	c.phase = phase
	return &c
}
