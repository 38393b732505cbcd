package app

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/emwave/entity"
)

const (
	positionAxis = "Position (nm)"
	fieldAxis    = "Electric Field Amplitude"
)

type waveParams struct {
	name       string
	color      string
	amplitude  float64
	wavelength float64
	phase      float64
}

func (s waveParams) wave() (*entity.Wave, error) {
	w, err := entity.NewWave(
		entity.WithAmplitude(s.amplitude),
		entity.WithWavelength(s.wavelength),
		entity.WithPhase(s.phase),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s wave: %w", s.name, err)
	}
	return w, nil
}

// positions returns the sample positions in meters and the same positions
// in nanometers for the x axis.
func (a *App) positions() (xs, nm []float64) {
	xs = entity.Linspace(0, a.Params.Span, a.Params.Points)
	nm = floats.ScaleTo(make([]float64, len(xs)), 1e9, xs)
	return xs, nm
}

func (a *App) wavelength() (*Figure, error) {
	xs, nm := a.positions()
	specs := []waveParams{
		{name: "Red", color: "red", amplitude: 1, wavelength: 700e-9},
		{name: "Green", color: "green", amplitude: 1, wavelength: 550e-9},
		{name: "Blue", color: "blue", amplitude: 1, wavelength: 450e-9},
	}

	p := Panel{
		Title: "Electromagnetic Waves with Different Wavelengths",
		XName: positionAxis,
		YName: fieldAxis,
		X:     nm,
	}
	notes := make([]string, 0, len(specs)+2)
	for _, s := range specs {
		w, err := s.wave()
		if err != nil {
			return nil, err
		}
		l, err := entity.NewLine(fmt.Sprintf("%s (%.0f nm)", s.name, w.Wavelength()*1e9), s.color, w.ElectricFieldAt(xs, 0))
		if err != nil {
			return nil, err
		}
		p.Lines = append(p.Lines, l)
		notes = append(notes, fmt.Sprintf("%-6s light: λ = %.1f nm, ν = %.2e Hz", s.name, w.Wavelength()*1e9, w.Frequency()))
	}
	notes = append(notes, "", "Shorter wavelength means higher frequency (c = λν)")

	return &Figure{Title: p.Title, Panels: []Panel{p}, Notes: notes}, nil
}

func (a *App) amplitude() (*Figure, error) {
	xs, nm := a.positions()
	specs := []waveParams{
		{name: "Low", color: "blue", amplitude: 0.3, wavelength: 600e-9},
		{name: "Medium", color: "green", amplitude: 0.7, wavelength: 600e-9},
		{name: "High", color: "red", amplitude: 1.0, wavelength: 600e-9},
	}

	fields := Panel{
		Title: "Electromagnetic Waves with Different Amplitudes",
		XName: positionAxis,
		YName: fieldAxis,
		X:     nm,
	}
	bars := Panel{
		Title:  "Wave Intensity vs Amplitude",
		XName:  "Amplitude",
		YName:  "Relative Intensity (I ∝ A²)",
		Labels: make([]string, 0, len(specs)),
	}
	intensities := make([]float64, 0, len(specs))
	notes := []string{"Intensity is proportional to amplitude squared (I ∝ A²)"}
	for _, s := range specs {
		w, err := s.wave()
		if err != nil {
			return nil, err
		}
		l, err := entity.NewLine(fmt.Sprintf("%s intensity (A=%g)", s.name, w.Amplitude()), s.color, w.ElectricFieldAt(xs, 0))
		if err != nil {
			return nil, err
		}
		fields.Lines = append(fields.Lines, l)
		bars.Labels = append(bars.Labels, s.name)
		bars.BarColors = append(bars.BarColors, s.color)
		intensities = append(intensities, w.Intensity())
		notes = append(notes, fmt.Sprintf("%-6s: A = %.1f, I = %.2f", s.name, w.Amplitude(), w.Intensity()))
	}
	l, err := entity.NewLine("Intensity", "", intensities)
	if err != nil {
		return nil, err
	}
	bars.Lines = []*entity.Line{l}

	return &Figure{Title: fields.Title, Panels: []Panel{fields, bars}, Notes: notes}, nil
}

func (a *App) phase() (*Figure, error) {
	xs, nm := a.positions()
	reference := waveParams{name: "Wave 1 (φ=0)", color: "blue", amplitude: 1, wavelength: 600e-9}
	cases := []struct {
		title string
		sum   string
		color string
		other waveParams
	}{
		{
			title: "Constructive Interference (Phase difference = 0)",
			sum:   "Sum (Constructive)",
			color: "purple",
			other: waveParams{name: "Wave 2 (φ=0)", color: "red", amplitude: 1, wavelength: 600e-9},
		},
		{
			title: "Destructive Interference (Phase difference = π)",
			sum:   "Sum (Destructive)",
			color: "green",
			other: waveParams{name: "Wave 2 (φ=π)", color: "red", amplitude: 1, wavelength: 600e-9, phase: math.Pi},
		},
		{
			title: "Partial Interference (Phase difference = π/2)",
			sum:   "Sum (Partial)",
			color: "orange",
			other: waveParams{name: "Wave 2 (φ=π/2)", color: "red", amplitude: 1, wavelength: 600e-9, phase: math.Pi / 2},
		},
	}

	w1, err := reference.wave()
	if err != nil {
		return nil, err
	}
	e1 := w1.ElectricFieldAt(xs, 0)

	fig := &Figure{Title: "Phase and Wave Interference", Notes: []string{"Phase relationships:"}}
	for _, c := range cases {
		w2, err := c.other.wave()
		if err != nil {
			return nil, err
		}
		sum := entity.Superpose(xs, 0, w1, w2)
		lines := make([]*entity.Line, 0, 3)
		for _, s := range []struct {
			name, color string
			values      []float64
		}{
			{reference.name, reference.color, e1},
			{c.other.name, c.other.color, w2.ElectricFieldAt(xs, 0)},
			{c.sum, c.color, sum},
		} {
			l, err := entity.NewLine(s.name, s.color, s.values)
			if err != nil {
				return nil, err
			}
			lines = append(lines, l)
		}
		fig.Panels = append(fig.Panels, Panel{
			Title: c.title,
			XName: positionAxis,
			YName: "Amplitude",
			X:     nm,
			Lines: lines,
		})
		peak := entity.PeakMagnitude(sum)
		log.WithFields(log.Fields{
			"phase": w2.Phase(),
			"peak":  peak,
		}).Debug("Superposition computed")
		fig.Notes = append(fig.Notes, fmt.Sprintf("  • Δφ = %.2f rad: peak of sum = %.2f", w2.Phase()-w1.Phase(), peak))
	}
	fig.Notes = append(fig.Notes,
		"  In phase: constructive interference, maximum amplitude",
		"  Out of phase: destructive interference, cancellation",
		"  Quarter phase: partial interference",
	)
	return fig, nil
}

func (a *App) propagation() (*Figure, error) {
	xs, nm := a.positions()
	w, err := entity.NewWave()
	if err != nil {
		return nil, fmt.Errorf("failed to create wave: %w", err)
	}

	fig := &Figure{Title: "Electromagnetic Wave Propagation Over Time"}
	for _, t := range a.Params.TimeSteps {
		l, err := entity.NewLine(fmt.Sprintf("E(x, %.1f fs)", t*1e15), "blue", w.ElectricFieldAt(xs, t))
		if err != nil {
			return nil, err
		}
		fig.Panels = append(fig.Panels, Panel{
			Title:  fmt.Sprintf("Time = %.1f femtoseconds", t*1e15),
			XName:  positionAxis,
			YName:  "Electric Field",
			X:      nm,
			Lines:  []*entity.Line{l},
			YLimit: 1.5,
		})
	}

	sampleRate := a.Params.Oversampling * w.Frequency()
	measured, err := entity.DominantFrequency(w, 0, sampleRate, a.Params.FFTSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate frequency: %w", err)
	}
	log.WithFields(log.Fields{
		"expected": w.Frequency(),
		"measured": measured,
		"samples":  a.Params.FFTSamples,
	}).Debug("Frequency estimated")

	fig.Notes = []string{
		"Wave properties:",
		fmt.Sprintf("  • Speed of light: c = %.2e m/s", w.Speed()),
		fmt.Sprintf("  • Wavelength: λ = %.1f nm", w.Wavelength()*1e9),
		fmt.Sprintf("  • Frequency: ν = %.2e Hz", w.Frequency()),
		fmt.Sprintf("  • Period: T = 1/ν = %.2e s", w.Period()),
		fmt.Sprintf("  • FFT of E(0, t): ν ≈ %.2e Hz (resolution %.1e Hz)", measured, sampleRate/float64(a.Params.FFTSamples)),
	}
	return fig, nil
}

func (a *App) spectrum() (*Figure, error) {
	bands := Panel{
		Title:  "Visible Light Spectrum",
		XName:  "Band",
		YName:  "Center frequency (×10¹⁴ Hz)",
		Labels: make([]string, 0, len(entity.VisibleBands)),
	}
	centers := make([]float64, 0, len(entity.VisibleBands))
	notes := []string{"Visible light spectrum:"}
	for _, b := range entity.VisibleBands {
		w, err := entity.NewWave(entity.WithWavelength(b.Center()))
		if err != nil {
			return nil, fmt.Errorf("failed to create %s wave: %w", b.Name, err)
		}
		bands.Labels = append(bands.Labels, fmt.Sprintf("%s (%.0f-%.0f nm)", b.Name, b.Start, b.End))
		bands.BarColors = append(bands.BarColors, b.Color)
		centers = append(centers, w.Frequency()/1e14)
		notes = append(notes, fmt.Sprintf("  %-8s: %3.0f-%3.0f nm  (ν ≈ %.2e Hz)", b.Name, b.Start, b.End, w.Frequency()))
	}
	l, err := entity.NewLine("Center frequency", "", centers)
	if err != nil {
		return nil, err
	}
	bands.Lines = []*entity.Line{l}

	first := entity.VisibleBands[0]
	last := entity.VisibleBands[len(entity.VisibleBands)-1]
	wavelengths := entity.Linspace(first.Start, last.End, 100)
	frequencies := make([]float64, len(wavelengths))
	for i, nm := range wavelengths {
		w, err := entity.NewWave(entity.WithWavelength(nm * 1e-9))
		if err != nil {
			return nil, fmt.Errorf("failed to create wave: %w", err)
		}
		frequencies[i] = w.Frequency() / 1e14
	}
	curve, err := entity.NewLine("ν = c/λ", "black", frequencies)
	if err != nil {
		return nil, err
	}

	return &Figure{
		Title: "Electromagnetic Spectrum",
		Panels: []Panel{
			bands,
			{
				Title: "Wavelength-Frequency Relationship (c = λν)",
				XName: "Wavelength (nm)",
				YName: "Frequency (×10¹⁴ Hz)",
				X:     wavelengths,
				Lines: []*entity.Line{curve},
			},
		},
		Notes: notes,
	}, nil
}
