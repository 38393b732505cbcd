package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AnkushinDaniil/emwave/entity"
)

var rule = strings.Repeat("=", 60)

func (a *App) heading(title string) {
	fmt.Fprintf(a.out, "\n%s\n%s\n%s\n", rule, title, rule)
}

func (a *App) narrate(lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(a.out)
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
}

func (a *App) introduce(selected []demonstration) {
	a.heading("LESSON: ELECTROMAGNETIC LIGHT WAVE CHARACTERISTICS")
	fmt.Fprintf(a.out, "\nThis lesson creates %d demonstration(s):\n", len(selected))
	for i, d := range selected {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, d.title)
	}
}

func (a *App) conclude() {
	a.heading("ALL DEMONSTRATIONS COMPLETED")
	fmt.Fprintln(a.out, "\nGenerated files:")
	for _, f := range a.files {
		fmt.Fprintf(a.out, "  • %s\n", filepath.Base(f))
	}
}

// CustomWave narrates a wave built from Params.CustomWavelength, by default a
// near-infrared OCT source.
func (a *App) CustomWave() error {
	w, err := entity.NewWave(entity.WithWavelength(a.Params.CustomWavelength))
	if err != nil {
		return fmt.Errorf("failed to create custom wave: %w", err)
	}
	a.heading("EXAMPLE: Custom Electromagnetic Wave")
	fmt.Fprintf(a.out, "\nLight source: %s\n", w)
	fmt.Fprintf(a.out, "Frequency: %.2e Hz\n", w.Frequency())
	fmt.Fprintf(a.out, "Photon energy: %.3f eV\n", entity.PhotonEnergyEV(w.Frequency()))
	return nil
}
