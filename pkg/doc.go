// Package pkg provides the core libraries for chartpress chart rendering.
//
// # Overview
//
// Chartpress turns JSON chart descriptions (radar, gauge, bar, pie) into PNG
// images and single-page PDF documents. The pkg directory is organized into
// four main areas:
//
//  1. [chart] - Chart domain types, request decoding and validation
//  2. [render] - Mapping to renderer configuration and rasterization
//  3. [document] - PDF assembly
//  4. [pipeline] - Orchestration (validate → map → render → assemble)
//
// # Architecture
//
// The data flow through chartpress:
//
//	HTTP request / request file
//	         ↓
//	    [chart] package (resolve chartType, decode + validate chartData)
//	         ↓
//	    [render/layout] package (renderer configuration: sizes, colors, scales)
//	         ↓
//	    [render/sink] package (PNG)
//	         ↓
//	    [document] package (PDF, documents only)
//
// # Quick Start
//
// Render a bar chart to PNG:
//
//	fs, _ := fonts.Default()
//	runner := pipeline.NewRunner(sink.NewEngine(fs), nil, nil)
//	res, err := runner.Image(ctx, pipeline.Request{
//	    ChartType: "bar",
//	    ChartData: json.RawMessage(`{"data":[{"name":"a","value":3}]}`),
//	})
//	png := res.Image.Data
//
// # Main Packages
//
// [chart] - Closed set of chart descriptions ([chart.Radar], [chart.Gauge],
// [chart.Bar], [chart.Pie]) decoded from the wire format and validated before
// anything is drawn.
//
// [render/layout] - Pure, deterministic mapping from a description to a
// renderer configuration. Defaults, palettes and scales live here.
//
// [render/sink] - Rasterization with gg and go-chart, bounded by a render
// timeout.
//
// [document] - Page sizes, document options and the fpdf-based assembler.
//
// [api] - The HTTP service: routing, CORS, request IDs and error bodies.
//
// [config] - TOML and environment configuration.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hooks for pipeline and server events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/render/...     # Specific packages
//	go test -run Example ./...   # Examples only
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/chart
// [render]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/render
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/render/layout
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/render/sink
// [document]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/document
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/pipeline
// [api]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/api
// [config]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/observability
// [chart.Radar]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/chart#Radar
// [chart.Gauge]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/chart#Gauge
// [chart.Bar]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/chart#Bar
// [chart.Pie]: https://pkg.go.dev/github.com/matzehuels/chartpress/pkg/chart#Pie
package pkg
