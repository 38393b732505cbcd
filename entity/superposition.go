package entity

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// samplesPerPeriod is the spatial resolution used when a single wavelength is
// scanned for the peak of a superposed field.
const samplesPerPeriod = 512

// Linspace returns n evenly spaced values over [start, end].
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}

// Superpose sums the fields of waves at every position of xs at time t.
func Superpose(xs []float64, t float64, waves ...*Wave) []float64 {
	sum := make([]float64, len(xs))
	for _, w := range waves {
		floats.Add(sum, w.ElectricFieldAt(xs, t))
	}
	return sum
}

// PeakMagnitude returns the largest absolute value in values.
func PeakMagnitude(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Norm(values, math.Inf(1))
}

func Visibility(maximum, minimum float64) float64 {
	if maximum+minimum == 0 {
		return 0
	}
	return (maximum - minimum) / (maximum + minimum)
}

// TheoreticalVisibility is the fringe visibility of two equal-wavelength
// waves with amplitudes a1 and a2.
func TheoreticalVisibility(a1, a2 float64) float64 {
	denominator := a1*a1 + a2*a2
	if denominator == 0 {
		return 0
	}
	return 2 * math.Abs(a1*a2) / denominator
}

// FringeVisibility sweeps the phase of b across a full turn relative to its
// own phase and measures the intensity of a+b at each step.
func FringeVisibility(a, b *Wave, steps int) (float64, error) {
	if steps < 2 {
		return 0, fmt.Errorf("%w: phase steps must be at least 2, got %d", ErrInvalidParameter, steps)
	}

	xs := Linspace(0, a.Wavelength(), samplesPerPeriod+1)
	intensities := make([]float64, steps)
	for i := range intensities {
		delta := 2 * math.Pi * float64(i) / float64(steps)
		peak := PeakMagnitude(Superpose(xs, 0, a, b.withPhase(b.Phase()+delta)))
		intensities[i] = peak * peak
	}
	return Visibility(floats.Max(intensities), floats.Min(intensities)), nil
}

// DominantFrequency samples the field at position x, n times at sampleRate,
// and returns the frequency of the strongest non-DC FFT bin. The resolution
// is sampleRate/n.
func DominantFrequency(w *Wave, x, sampleRate float64, n int) (float64, error) {
	if n < 2 {
		return 0, fmt.Errorf("%w: sample count must be at least 2, got %d", ErrInvalidParameter, n)
	}
	if !isPositive(sampleRate) {
		return 0, fmt.Errorf("%w: sample rate must be positive, got %g", ErrInvalidParameter, sampleRate)
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = w.ElectricField(x, float64(i)/sampleRate)
	}

	spectrum := fft.FFTReal(samples)
	dominantIdx := 1
	maxPower := 0.0
	for i := 1; i <= n/2; i++ {
		power := cmplx.Abs(spectrum[i]) * cmplx.Abs(spectrum[i])
		if power > maxPower {
			maxPower = power
			dominantIdx = i
		}
	}
	return float64(dominantIdx) * sampleRate / float64(n), nil
}
