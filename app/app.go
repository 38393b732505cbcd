package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/emwave/entity/format"
	"github.com/AnkushinDaniil/emwave/entity/mode"
	"github.com/AnkushinDaniil/emwave/entity/parameters"
)

type App struct {
	Output string
	Params *parameters.Parameters

	out   io.Writer
	files []string
}

func New(output string, params *parameters.Parameters, out io.Writer) *App {
	return &App{
		Output: output,
		Params: params,
		out:    out,
	}
}

type demonstration struct {
	mode  mode.Mode
	name  string
	title string
	build func(a *App) (*Figure, error)
}

var demonstrations = []demonstration{
	{mode.Wavelength, "wavelength_demonstration", "Effect of Wavelength", (*App).wavelength},
	{mode.Amplitude, "amplitude_demonstration", "Effect of Amplitude (Intensity)", (*App).amplitude},
	{mode.Phase, "phase_demonstration", "Phase and Wave Interference", (*App).phase},
	{mode.Propagation, "propagation_demonstration", "Wave Propagation", (*App).propagation},
	{mode.Spectrum, "spectrum_demonstration", "Electromagnetic Spectrum", (*App).spectrum},
}

// Run executes the demonstrations selected by Params.Mode in lesson order and
// stops at the first failure.
func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"output": a.Output,
		"mode":   a.Params.Mode,
		"format": a.Params.Format,
		"points": a.Params.Points,
		"span":   a.Params.Span,
	}).Debug("App started")

	if err := os.MkdirAll(a.Output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	selected := make([]demonstration, 0, len(demonstrations))
	for _, d := range demonstrations {
		if a.Params.Mode.Includes(d.mode) {
			selected = append(selected, d)
		}
	}
	a.introduce(selected)

	for i, d := range selected {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("lesson interrupted: %w", err)
		}

		a.heading(fmt.Sprintf("DEMONSTRATION %d: %s", i+1, d.title))
		startTime := time.Now()
		fig, err := d.build(a)
		if err != nil {
			return fmt.Errorf("failed to build %s: %w", d.mode, err)
		}
		path, err := a.save(d.name, fig)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", d.mode, err)
		}
		fmt.Fprintf(a.out, "Saved %s\n", filepath.Base(path))
		a.narrate(fig.Notes)
		log.WithFields(log.Fields{
			"demonstration": d.mode,
			"file":          path,
			"time":          time.Since(startTime),
		}).Info("Demonstration saved")
	}

	a.conclude()
	return nil
}

// Files lists the files written by Run so far.
func (a *App) Files() []string {
	return a.files
}

func (a *App) save(name string, fig *Figure) (string, error) {
	path := filepath.Join(a.Output, name+a.Params.Format.Ext())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	switch a.Params.Format {
	case format.Csv:
		err = writeCSV(f, fig)
	case format.Parquet:
		err = writeParquet(f, fig)
	default:
		err = RenderPage(f, fig.Title, fig.Panels...)
	}
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{
		"name": filepath.Base(path),
		"time": time.Since(renderTime),
	}).Debug("Figure written")

	a.files = append(a.files, path)
	return path, nil
}
