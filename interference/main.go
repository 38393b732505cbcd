package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/emwave/app"
	"github.com/AnkushinDaniil/emwave/entity"
)

func main() {
	phase := flag.Float64("phase", math.Pi/2, "phase difference of the second wave, radians")
	ratio := flag.Float64("ratio", 1, "amplitude of the second wave relative to the first")
	wavelength := flag.Float64("wavelength", entity.DefaultWavelength, "wavelength of both waves, meters")
	points := flag.Int("points", 1000, "samples along x")
	periods := flag.Float64("periods", 5, "number of wavelengths to plot")
	output := flag.String("output", "Interference.html", "output file")
	flag.Parse()

	if err := run(*phase, *ratio, *wavelength, *periods, *points, *output); err != nil {
		log.WithError(err).Error("Interference failed")
		os.Exit(1)
	}
}

func run(phase, ratio, wavelength, periods float64, points int, output string) error {
	if points < 2 || !(periods > 0) {
		return fmt.Errorf("%w: need at least 2 points over a positive number of periods", entity.ErrInvalidParameter)
	}
	w1, err := entity.NewWave(entity.WithWavelength(wavelength))
	if err != nil {
		return fmt.Errorf("failed to create first wave: %w", err)
	}
	w2, err := entity.NewWave(
		entity.WithWavelength(wavelength),
		entity.WithAmplitude(ratio),
		entity.WithPhase(phase),
	)
	if err != nil {
		return fmt.Errorf("failed to create second wave: %w", err)
	}

	xs := entity.Linspace(0, periods*wavelength, points)
	sum := entity.Superpose(xs, 0, w1, w2)

	lines := make([]*entity.Line, 0, 3)
	for _, s := range []struct {
		name, color string
		values      []float64
	}{
		{"Wave 1", "blue", w1.ElectricFieldAt(xs, 0)},
		{fmt.Sprintf("Wave 2 (Δφ=%.2f, A=%g)", phase, ratio), "red", w2.ElectricFieldAt(xs, 0)},
		{"Sum", "purple", sum},
	} {
		l, err := entity.NewLine(s.name, s.color, s.values)
		if err != nil {
			return fmt.Errorf("failed to create line: %w", err)
		}
		lines = append(lines, l)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	err = app.RenderPage(f, "Interference", app.Panel{
		Title: "Interference of two waves",
		XName: "Position (nm)",
		YName: "Electric Field",
		X:     floats.ScaleTo(make([]float64, len(xs)), 1e9, xs),
		Lines: lines,
	})
	if err != nil {
		return err
	}

	peak := entity.PeakMagnitude(sum)
	log.WithFields(log.Fields{
		"file":     output,
		"peak":     peak,
		"peakAt":   xs[lines[2].GetMaxIdx()],
		"expected": math.Sqrt(1 + ratio*ratio + 2*ratio*math.Cos(phase)),
	}).Info("Chart rendered and saved")
	return nil
}
