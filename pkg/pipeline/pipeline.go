// Package pipeline provides the chart pipeline shared by the HTTP API and
// the CLI.
//
// This package implements the complete validate → map → render → assemble
// sequence so that every entry point behaves the same way.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Validate: resolve the chart type and decode chartData (and pdfOptions)
//  2. Map: turn the chart description into a renderer configuration
//  3. Render: rasterize the configuration to PNG
//  4. Assemble: wrap the PNG in a single-page PDF (documents only)
//
// Validation always finishes before any rendering starts, so a bad request
// never costs a render.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(engine, assembler, logger)
//	req := pipeline.Request{
//	    ChartType: "bar",
//	    ChartData: json.RawMessage(`{"data":[{"name":"a","value":3}]}`),
//	}
//	result, err := runner.Image(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Image.Data
package pipeline

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/document"
	"github.com/matzehuels/chartpress/pkg/render/layout"
	"github.com/matzehuels/chartpress/pkg/render/sink"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: png, pdf, json)", format)
	}
	return nil
}

// =============================================================================
// Request - Pipeline Input
// =============================================================================

// Request is the body accepted by every chart endpoint. ChartData and
// PDFOptions stay raw until validation so type errors can name the field.
type Request struct {
	ChartType  string          `json:"chartType"`
	ChartData  json.RawMessage `json:"chartData"`
	PDFOptions json.RawMessage `json:"pdfOptions,omitempty"`
}

// Prepared is a fully validated request.
type Prepared struct {
	Description chart.Description
	Document    document.Options
}

// Kind returns the chart kind of the request.
func (p *Prepared) Kind() chart.Kind { return p.Description.Kind() }

// =============================================================================
// Result - Pipeline Output
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Kind is the canonical chart kind.
	Kind chart.Kind

	// Config is the renderer configuration the image was drawn from.
	Config layout.Config

	// Image is the rendered PNG.
	Image *sink.Image

	// Document is the assembled PDF; nil for image-only runs.
	Document *document.Document

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ValidateTime  time.Duration
	MapTime       time.Duration
	RenderTime    time.Duration
	DocumentTime  time.Duration
	ImageBytes    int
	DocumentBytes int
}

// Total returns the summed duration of all stages.
func (s Stats) Total() time.Duration {
	return s.ValidateTime + s.MapTime + s.RenderTime + s.DocumentTime
}
