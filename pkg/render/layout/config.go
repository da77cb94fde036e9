package layout

import (
	"math"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/render/styles"
)

// Geometry is the coordinate system a chart is drawn in.
type Geometry string

const (
	GeometryLinear Geometry = "linear" // cartesian axes (bar)
	GeometryRadial Geometry = "radial" // polar axes (radar)
	GeometryArc    Geometry = "arc"    // angular sectors (pie, gauge)
)

// Config is the renderer-agnostic description of a chart: every size, color
// and position a rasterizer needs, with all defaults resolved. It is a plain
// value and serializes to JSON for inspection.
type Config struct {
	Kind       chart.Kind   `json:"kind"`
	Geometry   Geometry     `json:"geometry"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Background styles.Color `json:"background"`
	Title      *Title       `json:"title,omitempty"`
	Labels     []string     `json:"labels,omitempty"`
	Series     []Series     `json:"series,omitempty"`
	Axes       *Axes        `json:"axes,omitempty"`
	Legend     Legend       `json:"legend"`
	Radial     *RadialScale `json:"radial,omitempty"`
	Gauge      *Gauge       `json:"gauge,omitempty"`
}

// Title is the heading drawn above the plot area.
type Title struct {
	Text     string       `json:"text"`
	FontSize float64      `json:"fontSize"`
	Bold     bool         `json:"bold"`
	Color    styles.Color `json:"color"`
	Band     float64      `json:"band"` // vertical space reserved at the top
}

// Series is one sequence of values with its styling. Fills and Strokes hold
// either one color per value or a single color for the whole series.
type Series struct {
	Name         string         `json:"name"`
	Values       []float64      `json:"values"`
	Fills        []styles.Color `json:"fills"`
	Strokes      []styles.Color `json:"strokes"`
	StrokeWidth  float64        `json:"strokeWidth"`
	CornerRadius float64        `json:"cornerRadius,omitempty"`
	SliceLabels  []string       `json:"sliceLabels,omitempty"`
	Points       *Points        `json:"points,omitempty"`
}

// FillAt returns the fill color for value i.
func (s Series) FillAt(i int) styles.Color { return pick(s.Fills, i) }

// StrokeAt returns the stroke color for value i.
func (s Series) StrokeAt(i int) styles.Color { return pick(s.Strokes, i) }

func pick(cs []styles.Color, i int) styles.Color {
	switch {
	case len(cs) == 0:
		return styles.Neutral
	case i < len(cs):
		return cs[i]
	}
	return cs[len(cs)-1]
}

// Points styles the markers drawn at each vertex of a line or radar series.
type Points struct {
	Radius      float64      `json:"radius"`
	Fill        styles.Color `json:"fill"`
	Stroke      styles.Color `json:"stroke"`
	StrokeWidth float64      `json:"strokeWidth"`
}

// Axes describes the cartesian axes of a bar chart.
type Axes struct {
	// HorizontalBars puts categories on the y axis and values on the x axis.
	HorizontalBars bool         `json:"horizontalBars"`
	XTitle         string       `json:"xTitle,omitempty"`
	YTitle         string       `json:"yTitle,omitempty"`
	TitleFontSize  float64      `json:"titleFontSize"`
	BeginAtZero    bool         `json:"beginAtZero"`
	Min            float64      `json:"min"`
	Max            float64      `json:"max"`
	Ticks          []float64    `json:"ticks"`
	Grid           styles.Color `json:"grid"`
	LabelColor     styles.Color `json:"labelColor"`
	LabelFontSize  float64      `json:"labelFontSize"`
}

// Legend describes the series/slice key.
type Legend struct {
	Show     bool         `json:"show"`
	Position string       `json:"position,omitempty"`
	Padding  float64      `json:"padding,omitempty"`
	FontSize float64      `json:"fontSize,omitempty"`
	Items    []LegendItem `json:"items,omitempty"`
}

// LegendItem is one legend entry.
type LegendItem struct {
	Label string       `json:"label"`
	Color styles.Color `json:"color"`
}

// RadialScale is the polar value axis of a radar chart, already placed on
// the canvas.
type RadialScale struct {
	CenterX       float64      `json:"centerX"`
	CenterY       float64      `json:"centerY"`
	Radius        float64      `json:"radius"`
	Min           float64      `json:"min"`
	Max           float64      `json:"max"`
	Step          float64      `json:"step"`
	ShowTicks     bool         `json:"showTicks"`
	GridColor     styles.Color `json:"gridColor"`
	GridWidth     float64      `json:"gridWidth"`
	LabelColor    styles.Color `json:"labelColor"`
	LabelFontSize float64      `json:"labelFontSize"`
	LabelPadding  float64      `json:"labelPadding"`
}

// maxRadarRings bounds the grid polygons a radar scale draws.
const maxRadarRings = 10

// Rings returns the scale values at which grid polygons are drawn, from the
// innermost to Max. At most maxRadarRings are returned; a scale with more
// steps than that is split evenly.
func (s RadialScale) Rings() []float64 {
	if !(s.Step > 0) || !(s.Max > s.Min) {
		return nil
	}
	n := math.Round(s.Max/s.Step - s.Min/s.Step)
	if !(n >= 1) {
		return nil
	}
	n = math.Min(n, maxRadarRings)

	span := s.Max - s.Min
	out := make([]float64, int(n))
	for i := range out {
		if math.IsInf(span, 0) {
			t := float64(i+1) / n
			out[i] = s.Min*(1-t) + s.Max*t
		} else {
			out[i] = s.Min + float64(i+1)*span/n
		}
	}
	out[len(out)-1] = s.Max
	return out
}

// Distance converts a value into its distance from the center. Operands are
// halved so the widest finite scales do not overflow.
func (s RadialScale) Distance(v float64) float64 {
	if s.Max == s.Min {
		return 0
	}
	return (v/2 - s.Min/2) / (s.Max/2 - s.Min/2) * s.Radius
}
