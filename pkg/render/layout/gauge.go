package layout

import (
	"math"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/render/styles"
)

// Gauge is the fully placed geometry of a half-doughnut gauge. Angles are in
// radians, measured clockwise from the positive x axis in image space, so the
// arc from π to 2π passes over the top of the center. Arcs are filled
// without a border so the value and the track meet edge to edge.
type Gauge struct {
	Percentage  float64      `json:"percentage"`
	CenterX     float64      `json:"centerX"`
	CenterY     float64      `json:"centerY"`
	OuterRadius float64      `json:"outerRadius"`
	InnerRadius float64      `json:"innerRadius"`
	StartAngle  float64      `json:"startAngle"`
	Sweep       float64      `json:"sweep"`
	ValueSweep  float64      `json:"valueSweep"`
	ValueColor  styles.Color `json:"valueColor"`
	TrackColor  styles.Color `json:"trackColor"`
	Score       Text         `json:"score"`
	Badge       Badge        `json:"badge"`
}

// ValueEnd returns the angle where the value arc ends and the track begins.
func (g Gauge) ValueEnd() float64 { return g.StartAngle + g.ValueSweep }

// End returns the angle where the track ends.
func (g Gauge) End() float64 { return g.StartAngle + g.Sweep }

// Text is a single centered string.
type Text struct {
	Text     string       `json:"text"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	FontSize float64      `json:"fontSize"`
	Bold     bool         `json:"bold"`
	Color    styles.Color `json:"color"`
}

// Badge is a filled label box horizontally centered on CenterX. Its width
// depends on the rendered text: Width(textWidth) = textWidth + PaddingX.
type Badge struct {
	Label     string       `json:"label"`
	CenterX   float64      `json:"centerX"`
	Top       float64      `json:"top"`
	Height    float64      `json:"height"`
	PaddingX  float64      `json:"paddingX"`
	FontSize  float64      `json:"fontSize"`
	Fill      styles.Color `json:"fill"`
	TextColor styles.Color `json:"textColor"`
}

// Width returns the box width for a measured label width.
func (b Badge) Width(textWidth float64) float64 { return textWidth + b.PaddingX }

// Left returns the box's left edge for a measured label width.
func (b Badge) Left(textWidth float64) float64 { return b.CenterX - b.Width(textWidth)/2 }

// TextY returns the vertical center of the label.
func (b Badge) TextY() float64 { return b.Top + b.Height/2 }

// gaugeLayout places a half-doughnut on a w×h canvas.
//
// The arc occupies the upper half of its circle, so its bounding box is
// 2r wide and r tall. The radius is the largest that fits both ways,
// r = min(w, 2h)/2, and the circle center is pushed down by r/2 so the
// half-disc is vertically centered. The score and badge are positioned
// relative to the canvas center, not the arc center.
func gaugeLayout(g chart.Gauge, w, h int) *Gauge {
	fw, fh := float64(w), float64(h)
	outer := math.Max(math.Min(fw, 2*fh)/2, 0)
	pct := g.Percentage()
	color, _ := styles.Parse(g.Category.Color)
	cx, cy := fw/2, fh/2

	return &Gauge{
		Percentage:  pct,
		CenterX:     cx,
		CenterY:     cy + outer/2,
		OuterRadius: outer,
		InnerRadius: outer * styles.GaugeCutout,
		StartAngle:  math.Pi,
		Sweep:       math.Pi,
		ValueSweep:  math.Pi * pct / 100,
		ValueColor:  color,
		TrackColor:  styles.GaugeTrack,
		Score: Text{
			Text:     FormatFixed(g.Score, 1),
			X:        cx,
			Y:        cy + styles.GaugeScoreOffsetY,
			FontSize: styles.GaugeScoreFontSize,
			Bold:     true,
			Color:    styles.GaugeScoreText,
		},
		Badge: Badge{
			Label:     g.Category.Label,
			CenterX:   cx,
			Top:       cy + styles.GaugeBadgeOffsetY,
			Height:    styles.GaugeBadgeHeight,
			PaddingX:  styles.GaugeBadgePadding,
			FontSize:  styles.GaugeBadgeFontSize,
			Fill:      color,
			TextColor: styles.GaugeBadgeText,
		},
	}
}
