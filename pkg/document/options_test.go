package document

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/errors"
)

func TestParseOptionsDefaults(t *testing.T) {
	for _, raw := range []string{"", "null", "{}", " { } "} {
		opts, err := ParseOptions(json.RawMessage(raw), chart.KindBar)
		if err != nil {
			t.Fatalf("ParseOptions(%q) error = %v", raw, err)
		}
		want := Options{FileName: "bar-chart.pdf", PageSize: PageA4, Orientation: Portrait}
		if opts != want {
			t.Errorf("ParseOptions(%q) = %+v, want %+v", raw, opts, want)
		}
	}
}

func TestParseOptions(t *testing.T) {
	raw := `{"title":"Resultado","author":"RH","subject":"Avaliação","fileName":"relatorio",
		"pageSize":"letter","pageOrientation":"Landscape"}`
	opts, err := ParseOptions(json.RawMessage(raw), chart.KindRadar)
	if err != nil {
		t.Fatalf("ParseOptions() error = %v", err)
	}
	want := Options{
		Title:       "Resultado",
		Author:      "RH",
		Subject:     "Avaliação",
		FileName:    "relatorio.pdf",
		PageSize:    PageLetter,
		Orientation: Landscape,
	}
	if opts != want {
		t.Errorf("ParseOptions() = %+v, want %+v", opts, want)
	}
}

func TestParseOptionsFileName(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"default", "", "pie-chart.pdf"},
		{"keeps extension", "grafico.pdf", "grafico.pdf"},
		{"keeps upper extension", "GRAFICO.PDF", "GRAFICO.PDF"},
		{"adds extension", "grafico", "grafico.pdf"},
		{"trims", "  grafico.pdf ", "grafico.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, _ := json.Marshal(map[string]string{"fileName": tt.in})
			opts, err := ParseOptions(raw, chart.KindPie)
			if err != nil {
				t.Fatalf("ParseOptions() error = %v", err)
			}
			if opts.FileName != tt.want {
				t.Errorf("FileName = %q, want %q", opts.FileName, tt.want)
			}
		})
	}
}

func TestParseOptionsInvalid(t *testing.T) {
	tests := []struct {
		name, raw, field string
	}{
		{"not an object", `"A4"`, "pdfOptions"},
		{"array", `[1]`, "pdfOptions"},
		{"wrong type", `{"title":3}`, "pdfOptions.title"},
		{"page size", `{"pageSize":"B5"}`, "pdfOptions.pageSize"},
		{"orientation", `{"pageOrientation":"sideways"}`, "pdfOptions.pageOrientation"},
		{"path in file name", `{"fileName":"../etc/passwd"}`, "pdfOptions.fileName"},
		{"quote in file name", `{"fileName":"a\"b.pdf"}`, "pdfOptions.fileName"},
		{"hidden file", `{"fileName":".pdf"}`, "pdfOptions.fileName"},
		{"control in title", `{"title":"a\nb"}`, "pdfOptions.title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions(json.RawMessage(tt.raw), chart.KindBar)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("ParseOptions() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
			if got := errors.GetField(err); got != tt.field {
				t.Errorf("field = %q, want %q", got, tt.field)
			}
		})
	}
}

func TestPageDimensions(t *testing.T) {
	tests := []struct {
		size   PageSize
		orient Orientation
		w, h   float64
	}{
		{PageA4, Portrait, 595.28, 841.89},
		{PageA4, Landscape, 841.89, 595.28},
		{PageA3, Portrait, 841.89, 1190.55},
		{PageLetter, Portrait, 612, 792},
		{PageLetter, Landscape, 792, 612},
	}
	for _, tt := range tests {
		w, h := tt.size.Dimensions(tt.orient)
		if w != tt.w || h != tt.h {
			t.Errorf("%s %s = %vx%v, want %vx%v", tt.size, tt.orient, w, h, tt.w, tt.h)
		}
	}
}

func TestParsePageSize(t *testing.T) {
	tests := []struct {
		in   string
		want PageSize
	}{
		{"", PageA4},
		{"a4", PageA4},
		{"A3", PageA3},
		{"Letter", PageLetter},
	}
	for _, tt := range tests {
		got, err := ParsePageSize(tt.in)
		if err != nil {
			t.Fatalf("ParsePageSize(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePageSize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
