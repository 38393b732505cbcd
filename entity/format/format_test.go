package format

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		text    string
		want    Format
		ext     string
		wantErr bool
	}{
		{"html", HTML, ".html", false},
		{"csv", Csv, ".csv", false},
		{"parquet", Parquet, ".parquet", false},
		{"png", 0, "", true},
		{"", 0, "", true},
	}
	for _, tt := range tests {
		got, err := UnmarshalText(tt.text)
		if (err != nil) != tt.wantErr {
			t.Fatalf("UnmarshalText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
		}
		if tt.wantErr {
			continue
		}
		if got != tt.want || got.Ext() != tt.ext || got.String() != tt.text {
			t.Fatalf("UnmarshalText(%q) = %v (%s)", tt.text, got, got.Ext())
		}
	}
}

func TestUnmarshalYAML(t *testing.T) {
	var v struct {
		Format Format `yaml:"format"`
	}
	if err := yaml.Unmarshal([]byte("format: parquet\n"), &v); err != nil {
		t.Fatalf("yaml error: %v", err)
	}
	if v.Format != Parquet {
		t.Fatalf("format = %v, want parquet", v.Format)
	}
	if err := yaml.Unmarshal([]byte("format: gif\n"), &v); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
