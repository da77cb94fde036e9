// Package styles defines colors and the visual theme shared by every chart
// kind.
//
// [Color] is the single color representation used between the mapper and the
// rasterizer. It parses the CSS forms found in requests ("#rgb", "#rrggbb",
// "rgba(...)"), implements color.Color, and serializes back to CSS so mapped
// configurations stay readable when exported as JSON.
//
// Category colors come from a fixed lookup table ([CategoryColor]); names
// outside the table get [Neutral]. Series without a category fall back to
// [SeriesColor], which cycles deterministically by index.
package styles
