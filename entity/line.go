package entity

import (
	"errors"

	"github.com/go-echarts/go-echarts/v2/opts"
)

// Line is a named series of sampled values, one per point of a shared x axis.
type Line struct {
	name   string
	color  string
	values []float64
}

func NewLine(name, color string, values []float64) (*Line, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	return &Line{name: name, color: color, values: values}, nil
}

func (l *Line) Name() string {
	return l.name
}

func (l *Line) Color() string {
	return l.color
}

func (l *Line) Values() []float64 {
	return l.values
}

func (l *Line) Data() []opts.LineData {
	data := make([]opts.LineData, len(l.values))
	for i, v := range l.values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

// GetMaxIdx returns the index of the largest value, or 0 for an empty line.
func (l *Line) GetMaxIdx() int {
	maxIdx := 0
	for i, v := range l.values {
		if v > l.values[maxIdx] {
			maxIdx = i
		}
	}
	return maxIdx
}
