// Package sink rasterizes renderer configurations into PNG images.
//
// Each chart kind has a painter: radar charts and gauges are drawn directly
// with gg, bar and pie charts are drawn by go-chart and finished on a gg
// canvas (axis titles, legends). The [Engine] picks the painter for a
// [layout.Config], bounds it with a timeout, flattens the result onto white
// and encodes it.
//
// Output is deterministic: the same configuration and font set always
// produce the same bytes.
package sink
