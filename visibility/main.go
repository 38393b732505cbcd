package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/emwave/app"
	"github.com/AnkushinDaniil/emwave/entity"
)

func main() {
	maxRatio := flag.Float64("max-ratio", 4, "largest amplitude ratio of the second wave")
	points := flag.Int("points", 41, "number of amplitude ratios")
	phaseSteps := flag.Int("phase-steps", 64, "phase steps per full turn")
	output := flag.String("output", "Visibility.html", "output file")
	flag.Parse()

	if err := run(*maxRatio, *points, *phaseSteps, *output); err != nil {
		log.WithError(err).Error("Visibility failed")
		os.Exit(1)
	}
}

func run(maxRatio float64, points, phaseSteps int, output string) error {
	if points < 2 {
		return fmt.Errorf("%w: points must be at least 2, got %d", entity.ErrInvalidParameter, points)
	}
	startTime := time.Now()
	reference, err := entity.NewWave()
	if err != nil {
		return fmt.Errorf("failed to create reference wave: %w", err)
	}

	ratios := entity.Linspace(0, maxRatio, points)
	measured := make([]float64, len(ratios))
	theoretical := make([]float64, len(ratios))
	for i, ratio := range ratios {
		other, err := entity.NewWave(entity.WithAmplitude(ratio))
		if err != nil {
			return fmt.Errorf("failed to create wave: %w", err)
		}
		measured[i], err = entity.FringeVisibility(reference, other, phaseSteps)
		if err != nil {
			return fmt.Errorf("failed to measure visibility: %w", err)
		}
		theoretical[i] = entity.TheoreticalVisibility(reference.Amplitude(), ratio)
	}
	log.WithFields(log.Fields{
		"points": len(ratios),
		"time":   time.Since(startTime),
	}).Debug("Visibility calculated")

	measuredLine, err := entity.NewLine("Visibility", "blue", measured)
	if err != nil {
		return fmt.Errorf("failed to create line: %w", err)
	}
	theoreticalLine, err := entity.NewLine("2·A1·A2/(A1²+A2²)", "red", theoretical)
	if err != nil {
		return fmt.Errorf("failed to create line: %w", err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	err = app.RenderPage(f, "Visibility", app.Panel{
		Title: "Fringe visibility of two waves",
		XName: "A2 / A1",
		YName: "Visibility",
		X:     ratios,
		Lines: []*entity.Line{measuredLine, theoreticalLine},
	})
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"file":    output,
		"maxAt":   ratios[measuredLine.GetMaxIdx()],
		"maximum": measured[measuredLine.GetMaxIdx()],
	}).Info("Chart rendered and saved")
	return nil
}
