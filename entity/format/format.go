package format

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type Format int8

const (
	HTML Format = iota
	Csv
	Parquet
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "csv":
		return Csv, nil
	case "parquet":
		return Parquet, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

// Ext is the file extension, including the dot.
func (f Format) Ext() string {
	switch f {
	case Csv:
		return ".csv"
	case Parquet:
		return ".parquet"
	default:
		return ".html"
	}
}

func (f Format) String() string {
	return f.Ext()[1:]
}

func (f *Format) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := UnmarshalText(value.Value)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
