// Package render groups the chart rendering stages.
//
// # Overview
//
// Rendering is split in two so the interesting decisions stay testable
// without pixels:
//
//   - [layout]: maps a validated chart description to a renderer
//     configuration (canvas size, colors, scales, label positions)
//   - [sink]: rasterizes a configuration to PNG
//
// Colors and the default palette live in [styles].
//
//	cfg, err := layout.Map(desc)
//	img, err := engine.Render(ctx, cfg)
//
// The configuration is JSON-serializable; `chartpress render -f json` prints
// it for inspection.
//
// [layout]: github.com/matzehuels/chartpress/pkg/render/layout
// [sink]: github.com/matzehuels/chartpress/pkg/render/sink
// [styles]: github.com/matzehuels/chartpress/pkg/render/styles
package render
