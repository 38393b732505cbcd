package entity

import (
	"math"
	"testing"
)

func TestVisibleBands(t *testing.T) {
	if len(VisibleBands) != 6 {
		t.Fatalf("expected 6 bands, got %d", len(VisibleBands))
	}
	for i, b := range VisibleBands {
		if b.Start >= b.End {
			t.Errorf("band %s has empty range", b.Name)
		}
		if i > 0 && VisibleBands[i-1].End != b.Start {
			t.Errorf("band %s does not start where %s ends", b.Name, VisibleBands[i-1].Name)
		}
	}
	if got := VisibleBands[0].Center(); math.Abs(got-415e-9) > 1e-18 {
		t.Fatalf("violet center = %g, want 415e-9", got)
	}
}

func TestPhotonEnergyEV(t *testing.T) {
	w := newWave(t, WithWavelength(1310e-9))
	if got := PhotonEnergyEV(w.Frequency()); math.Abs(got-0.947) > 1e-3 {
		t.Fatalf("photon energy = %.4f eV, want 0.947", got)
	}
	if got := PhotonEnergyEV(0); got != 0 {
		t.Fatalf("photon energy at 0 Hz = %g", got)
	}
}
