package entity

const (
	PlanckConstant   = 6.626e-34 // J·s
	ElementaryCharge = 1.602e-19 // C
)

// Band is a named range of the visible spectrum, bounds in nanometers.
type Band struct {
	Name  string
	Start float64
	End   float64
	Color string
}

// Center returns the middle of the band in meters.
func (b Band) Center() float64 {
	return (b.Start + b.End) / 2 * 1e-9
}

var VisibleBands = []Band{
	{Name: "Violet", Start: 380, End: 450, Color: "violet"},
	{Name: "Blue", Start: 450, End: 495, Color: "blue"},
	{Name: "Green", Start: 495, End: 570, Color: "green"},
	{Name: "Yellow", Start: 570, End: 590, Color: "yellow"},
	{Name: "Orange", Start: 590, End: 620, Color: "orange"},
	{Name: "Red", Start: 620, End: 750, Color: "red"},
}

// PhotonEnergyEV converts a frequency in Hz to photon energy in electronvolts.
func PhotonEnergyEV(frequency float64) float64 {
	return PlanckConstant * frequency / ElementaryCharge
}
