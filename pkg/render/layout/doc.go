// Package layout maps validated chart descriptions to renderer
// configurations.
//
// # Overview
//
// [Map] turns a [chart.Description] into a [Config]: canvas size, title,
// series with resolved colors, axes or polar scale, legend, and for gauges
// the complete arc and text placement. Rasterizers in the sink package read
// a Config and never look at request data, so every presentation decision
// lives here and can be tested without drawing.
//
// # Defaults
//
// Canvas sizes default per kind (see [DefaultSize]): radar 480×480, gauge
// 320×240, bar and pie 600×400. Request width and height override them.
//
// # Gauge geometry
//
// The gauge is a half doughnut spanning 180° over the top of its center with
// a 75% cutout. For a w×h canvas the outer radius is min(w, 2h)/2 and the
// arc center sits r/2 below the canvas center. The score is written one
// decimal wide 15px above the canvas center, and the category badge starts
// 20px below it. See [Gauge].
//
// # Determinism
//
// Mapping uses no randomness and no clock. Equal inputs produce equal
// Configs, which in turn render to identical PNG bytes.
//
// [chart.Description]: github.com/matzehuels/chartpress/pkg/chart.Description
package layout
