package app

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/AnkushinDaniil/emwave/entity"
)

const pageTitle = "Electromagnetic light wave characteristics"

// Panel is one chart of a figure. A panel with Labels is drawn as a bar
// chart of the first line, one bar per label; otherwise every line is drawn
// against X.
type Panel struct {
	Title  string
	XName  string
	YName  string
	X      []float64
	Labels []string
	Lines  []*entity.Line
	// BarColors colors the bars of a bar panel, by index.
	BarColors []string
	// YLimit fixes the y axis to [-YLimit, YLimit] when positive.
	YLimit float64
}

func (p Panel) isBar() bool {
	return p.Labels != nil
}

// Figure is what a demonstration produces: a titled set of panels.
type Figure struct {
	Title  string
	Panels []Panel
	// Notes are printed after the figure is saved.
	Notes []string
}

// RenderPage writes the panels as one HTML page.
func RenderPage(w io.Writer, title string, panels ...Panel) error {
	page := components.NewPage()
	page.PageTitle = title
	for _, p := range panels {
		if p.isBar() {
			page.AddCharts(NewBarChart(p))
		} else {
			page.AddCharts(NewLineChart(p))
		}
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func globalOptions(p Panel) []charts.GlobalOpts {
	yAxis := opts.YAxis{
		Name:  p.YName,
		Type:  "value",
		Show:  opts.Bool(true),
		Scale: opts.Bool(true),
		SplitLine: &opts.SplitLine{
			Show: opts.Bool(true),
		},
	}
	if p.YLimit > 0 {
		yAxis.Scale = opts.Bool(false)
		yAxis.Min = -p.YLimit
		yAxis.Max = p.YLimit
	}

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "500px",
			PageTitle:       pageTitle,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: p.Title,
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
			Top:          "5%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "chart",
					Title: "Save as image",
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: p.XName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(yAxis),
	}
}

func NewLineChart(p Panel) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(p)...)
	line.SetGlobalOptions(
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)

	x := make([]string, len(p.X))
	for i, v := range p.X {
		x[i] = fmt.Sprintf("%.1f", v)
	}
	line.SetXAxis(x)

	for _, l := range p.Lines {
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(false),
			}),
		}
		if l.Color() != "" {
			seriesOpts = append(seriesOpts,
				charts.WithLineStyleOpts(opts.LineStyle{Color: l.Color()}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: l.Color()}),
			)
		}
		line.AddSeries(l.Name(), l.Data(), seriesOpts...)
	}
	return line
}

func NewBarChart(p Panel) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(p)...)
	bar.SetXAxis(p.Labels)

	if len(p.Lines) == 0 {
		return bar
	}
	l := p.Lines[0]
	data := make([]opts.BarData, len(l.Values()))
	for i, v := range l.Values() {
		data[i] = opts.BarData{Value: v}
		if i < len(p.BarColors) {
			data[i].ItemStyle = &opts.ItemStyle{Color: p.BarColors[i]}
		}
	}
	bar.AddSeries(l.Name(), data,
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
	)
	return bar
}
