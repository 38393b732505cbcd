package entity

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func newWave(t *testing.T, opts ...WaveOption) *Wave {
	t.Helper()
	w, err := NewWave(opts...)
	if err != nil {
		t.Fatalf("NewWave error: %v", err)
	}
	return w
}

func TestNewWaveDefaults(t *testing.T) {
	w := newWave(t)
	if w.Amplitude() != 1.0 || w.Wavelength() != 600e-9 || w.Phase() != 0 || w.Speed() != 3e8 {
		t.Fatalf("unexpected defaults: %v", w)
	}
	if math.Abs(w.Frequency()-5.0e14)/5.0e14 > 1e-12 {
		t.Fatalf("frequency = %g, want 5e14", w.Frequency())
	}
	if math.Abs(w.WaveNumber()-2*math.Pi/600e-9) > 1e-6 {
		t.Fatalf("wave number = %g, want %g", w.WaveNumber(), 2*math.Pi/600e-9)
	}
	if math.Abs(w.AngularFrequency()-2*math.Pi*w.Frequency()) > 1e-6 {
		t.Fatalf("angular frequency = %g, want %g", w.AngularFrequency(), 2*math.Pi*w.Frequency())
	}
	if math.Abs(w.Period()*w.Frequency()-1) > tolerance {
		t.Fatalf("period = %g, want 1/%g", w.Period(), w.Frequency())
	}
}

func TestNewWaveOptions(t *testing.T) {
	w := newWave(t, WithAmplitude(2), WithWavelength(1310e-9), WithPhase(math.Pi), WithSpeed(2e8))
	if w.Amplitude() != 2 || w.Wavelength() != 1310e-9 || w.Phase() != math.Pi || w.Speed() != 2e8 {
		t.Fatalf("options not applied: %v", w)
	}
}

func TestNewWaveRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		opts []WaveOption
	}{
		{"zero wavelength", []WaveOption{WithWavelength(0)}},
		{"negative wavelength", []WaveOption{WithWavelength(-600e-9)}},
		{"NaN wavelength", []WaveOption{WithWavelength(math.NaN())}},
		{"infinite wavelength", []WaveOption{WithWavelength(math.Inf(1))}},
		{"zero speed", []WaveOption{WithSpeed(0)}},
		{"negative speed", []WaveOption{WithSpeed(-3e8)}},
		{"NaN speed", []WaveOption{WithSpeed(math.NaN())}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWave(tt.opts...)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			if w != nil {
				t.Fatalf("expected nil wave, got %v", w)
			}
		})
	}
}

func TestNewWaveAcceptsAnyAmplitude(t *testing.T) {
	for _, a := range []float64{0, -1, 1e-30, math.NaN()} {
		if _, err := NewWave(WithAmplitude(a)); err != nil {
			t.Errorf("amplitude %g rejected: %v", a, err)
		}
	}
}

func TestFrequencyWavelengthRelationship(t *testing.T) {
	for _, speed := range []float64{3e8, 2.25e8, 1} {
		for _, wavelength := range []float64{400e-9, 500e-9, 600e-9, 700e-9, 1310e-9, 1} {
			w := newWave(t, WithWavelength(wavelength), WithSpeed(speed))
			got := w.Wavelength() * w.Frequency()
			if math.Abs(got-speed)/speed > 1e-6 {
				t.Errorf("λν = %g, want %g (λ=%g)", got, speed, wavelength)
			}
		}
	}
}

func TestElectricFieldAtOrigin(t *testing.T) {
	w := newWave(t, WithAmplitude(1), WithWavelength(600e-9), WithPhase(0), WithSpeed(3e8))
	if e := w.ElectricField(0, 0); e != 0 {
		t.Fatalf("E(0, 0) = %g, want 0", e)
	}
	if e := w.ElectricField(w.Wavelength()/4, 0); math.Abs(e-1) > tolerance {
		t.Fatalf("E(λ/4, 0) = %g, want 1", e)
	}
}

func TestElectricFieldBounded(t *testing.T) {
	for _, a := range []float64{1, 2.5, -1.5, 0} {
		w := newWave(t, WithAmplitude(a), WithPhase(0.3))
		for _, x := range Linspace(-3e-6, 3e-6, 257) {
			for _, tm := range []float64{0, 1e-16, 0.5e-15, 3.3e-15, -2e-15} {
				if e := w.ElectricField(x, tm); math.Abs(e) > math.Abs(a)+1e-12 {
					t.Fatalf("|E(%g, %g)| = %g exceeds |A| = %g", x, tm, math.Abs(e), math.Abs(a))
				}
			}
		}
	}
}

func TestElectricFieldPeriodicity(t *testing.T) {
	w := newWave(t, WithAmplitude(1.7), WithWavelength(550e-9), WithPhase(1.1))
	for _, x := range Linspace(0, 2e-6, 41) {
		for _, tm := range []float64{0, 0.7e-15, 2e-15} {
			e := w.ElectricField(x, tm)
			if got := w.ElectricField(x+w.Wavelength(), tm); math.Abs(got-e) > tolerance {
				t.Fatalf("spatial period: E(%g) = %g, E(x+λ) = %g", x, e, got)
			}
			if got := w.ElectricField(x, tm+1/w.Frequency()); math.Abs(got-e) > tolerance {
				t.Fatalf("temporal period: E(t=%g) = %g, E(t+T) = %g", tm, e, got)
			}
		}
	}
}

func TestElectricFieldPropagates(t *testing.T) {
	w := newWave(t)
	// A quarter period later the crest at λ/4 has moved to λ/2.
	if got := w.ElectricField(w.Wavelength()/2, w.Period()/4); math.Abs(got-1) > tolerance {
		t.Fatalf("E(λ/2, T/4) = %g, want 1", got)
	}
	if e1, e2 := w.ElectricField(0, 0), w.ElectricField(0, 1e-15); e1 == e2 {
		t.Fatalf("field did not change over time: %g", e1)
	}
}

func TestElectricFieldAt(t *testing.T) {
	w := newWave(t, WithPhase(0.5))
	xs := Linspace(0, 1e-6, 100)
	field := w.ElectricFieldAt(xs, 1e-15)
	if len(field) != len(xs) {
		t.Fatalf("expected %d values, got %d", len(xs), len(field))
	}
	for i, x := range xs {
		if field[i] != w.ElectricField(x, 1e-15) {
			t.Fatalf("value %d = %g, want %g", i, field[i], w.ElectricField(x, 1e-15))
		}
		if math.Abs(field[i]) > 1 {
			t.Fatalf("value %d = %g exceeds amplitude", i, field[i])
		}
	}

	if got := w.ElectricFieldAt(nil, 0); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice for nil input, got %v", got)
	}
}

func TestElectricFieldNonFinite(t *testing.T) {
	w := newWave(t)
	tests := []struct {
		name string
		x, t float64
	}{
		{"NaN position", math.NaN(), 0},
		{"infinite position", math.Inf(1), 0},
		{"NaN time", 0, math.NaN()},
		{"infinite time", 0, math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.ElectricField(tt.x, tt.t); !math.IsNaN(got) {
				t.Fatalf("expected NaN, got %g", got)
			}
		})
	}
}

func TestIntensity(t *testing.T) {
	w1 := newWave(t, WithAmplitude(1.0))
	w2 := newWave(t, WithAmplitude(2.0))
	if w1.Intensity() != 1.0 {
		t.Fatalf("intensity = %g, want 1", w1.Intensity())
	}
	if w2.Intensity() != 4.0 {
		t.Fatalf("intensity = %g, want 4", w2.Intensity())
	}

	a := newWave(t, WithAmplitude(0.5))
	b := newWave(t, WithAmplitude(3*0.5))
	if b.Intensity() != 9*a.Intensity() {
		t.Fatalf("intensity %g is not 9 × %g", b.Intensity(), a.Intensity())
	}
	if neg := newWave(t, WithAmplitude(-2)); neg.Intensity() != 4 {
		t.Fatalf("intensity of negative amplitude = %g, want 4", neg.Intensity())
	}
}

func TestWaveString(t *testing.T) {
	w := newWave(t, WithWavelength(1310e-9))
	want := "Wave(amplitude=1, wavelength=1310.0nm, frequency=2.29e+14Hz)"
	if got := w.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
