package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

// Row is one sample of a figure in long form. Bar panels put the category in
// Label and its index in X.
type Row struct {
	Panel  string  `parquet:"panel"`
	Series string  `parquet:"series"`
	Label  string  `parquet:"label"`
	X      float64 `parquet:"x"`
	Value  float64 `parquet:"value"`
}

var csvHeader = []string{"panel", "series", "label", "x", "value"}

func (f *Figure) Rows() []Row {
	rows := make([]Row, 0)
	for _, p := range f.Panels {
		for _, l := range p.Lines {
			for i, v := range l.Values() {
				r := Row{Panel: p.Title, Series: l.Name(), Value: v}
				if p.isBar() {
					r.X = float64(i)
					if i < len(p.Labels) {
						r.Label = p.Labels[i]
					}
				} else if i < len(p.X) {
					r.X = p.X[i]
				}
				rows = append(rows, r)
			}
			if p.isBar() {
				break
			}
		}
	}
	return rows
}

func writeCSV(w io.Writer, fig *Figure) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range fig.Rows() {
		record := []string{
			r.Panel,
			r.Series,
			r.Label,
			strconv.FormatFloat(r.X, 'g', -1, 64),
			strconv.FormatFloat(r.Value, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func writeParquet(w io.Writer, fig *Figure) error {
	pw := parquet.NewGenericWriter[Row](w, parquet.Compression(&parquet.Snappy))
	if _, err := pw.Write(fig.Rows()); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
