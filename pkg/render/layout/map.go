package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/errors"
	"github.com/matzehuels/chartpress/pkg/render/styles"
)

// Default canvas sizes in pixels, per kind.
const (
	DefaultRadarSize   = 480
	DefaultGaugeWidth  = 320
	DefaultGaugeHeight = 240
	DefaultWidth       = 600
	DefaultHeight      = 400
)

// DefaultSize returns the canvas size used for kind when the request does
// not override it.
func DefaultSize(kind chart.Kind) (width, height int) {
	switch kind {
	case chart.KindRadar:
		return DefaultRadarSize, DefaultRadarSize
	case chart.KindRadialBar:
		return DefaultGaugeWidth, DefaultGaugeHeight
	}
	return DefaultWidth, DefaultHeight
}

// Map converts a validated description into a renderer configuration. The
// mapping is a pure function of its input: equal descriptions produce equal
// configurations.
func Map(d chart.Description) (Config, error) {
	if d == nil {
		return Config{}, errors.Invalid("chartData", "chartType e chartData são obrigatórios")
	}

	opts := d.Options()
	w, h := DefaultSize(d.Kind())
	if opts.Width > 0 {
		w = opts.Width
	}
	if opts.Height > 0 {
		h = opts.Height
	}

	cfg := Config{
		Kind:       d.Kind(),
		Width:      w,
		Height:     h,
		Background: styles.Background,
		Title:      title(opts.Title),
	}

	switch c := d.(type) {
	case chart.Radar:
		mapRadar(&cfg, c)
	case chart.Gauge:
		cfg.Geometry = GeometryArc
		cfg.Gauge = gaugeLayout(c, w, h)
	case chart.Bar:
		mapBar(&cfg, c)
	case chart.Pie:
		mapPie(&cfg, c)
	default:
		return Config{}, errors.New(errors.ErrCodeUnsupportedKind,
			"Tipo de gráfico não suportado. Tipos suportados: %s", chart.KindNames())
	}
	return cfg, nil
}

func title(text string) *Title {
	if text == "" {
		return nil
	}
	return &Title{
		Text:     text,
		FontSize: styles.TitleFontSize,
		Bold:     true,
		Color:    styles.TitleColor,
		// one line at 1.2em plus 10px above and below
		Band: styles.TitleFontSize*1.2 + 20,
	}
}

func (c Config) titleBand() float64 {
	if c.Title == nil {
		return 0
	}
	return c.Title.Band
}

// radarScale keeps the fixed 0..10 scale in steps of 2 and extends it by
// whole steps while that needs at most maxRadarRings rings. Wider data gets
// a nice-number scale instead.
func radarScale(lo, hi float64) (float64, float64, float64) {
	step := styles.RadarScaleStep
	start, end := math.Floor(lo/step)*step, math.Ceil(hi/step)*step
	if (end-start)/step <= maxRadarRings {
		return start, end, step
	}
	start, end, ticks := niceRange(lo, hi)
	return start, end, ticks[1] - ticks[0]
}

func mapRadar(cfg *Config, r chart.Radar) {
	cfg.Geometry = GeometryRadial
	cfg.Labels = append([]string(nil), r.Labels...)

	lo, hi := 0.0, styles.RadarScaleMax
	for _, ds := range r.Datasets {
		for _, v := range ds.Data {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	lo, hi, step := radarScale(lo, hi)

	top := cfg.titleBand()
	areaW, areaH := float64(cfg.Width), float64(cfg.Height)-top
	margin := styles.RadarLabelPadding + styles.RadarLabelMarginEms*styles.RadarLabelFontSize

	cfg.Radial = &RadialScale{
		CenterX:       areaW / 2,
		CenterY:       top + areaH/2,
		Radius:        math.Max(math.Min(areaW, areaH)/2-margin, 0),
		Min:           lo,
		Max:           hi,
		Step:          step,
		ShowTicks:     false,
		GridColor:     styles.RadarGrid,
		GridWidth:     styles.RadarGridWidth,
		LabelColor:    styles.RadarPointLabel,
		LabelFontSize: styles.RadarLabelFontSize,
		LabelPadding:  styles.RadarLabelPadding,
	}

	for _, ds := range r.Datasets {
		stroke, fill := styles.RadarStroke, styles.RadarFill
		if c, ok := styles.LookupCategory(ds.Label); ok {
			stroke, fill = c, c.WithAlpha(styles.RadarFillAlpha)
		}
		cfg.Series = append(cfg.Series, Series{
			Name:        ds.Label,
			Values:      append([]float64(nil), ds.Data...),
			Fills:       []styles.Color{fill},
			Strokes:     []styles.Color{stroke},
			StrokeWidth: styles.RadarStrokeWidth,
			Points: &Points{
				Radius:      styles.RadarPointRadius,
				Fill:        stroke,
				Stroke:      styles.White,
				StrokeWidth: 1,
			},
		})
	}
	cfg.Legend = Legend{Show: false}
}

func mapBar(cfg *Config, b chart.Bar) {
	cfg.Geometry = GeometryLinear

	s := Series{
		Values:       make([]float64, len(b.Items)),
		Fills:        make([]styles.Color, len(b.Items)),
		Strokes:      make([]styles.Color, len(b.Items)),
		StrokeWidth:  styles.BarBorderWidth,
		CornerRadius: styles.BarBorderRadius,
	}
	lo, hi := 0.0, 0.0
	for i, it := range b.Items {
		cfg.Labels = append(cfg.Labels, it.Name)
		s.Values[i] = it.Value
		c := itemColor(it, styles.CategoryColor(it.Name))
		s.Fills[i], s.Strokes[i] = c, c
		lo, hi = math.Min(lo, it.Value), math.Max(hi, it.Value)
	}
	cfg.Series = []Series{s}

	start, end, ticks := niceRange(lo, hi)
	cfg.Axes = &Axes{
		HorizontalBars: b.Layout.HorizontalBars(),
		XTitle:         b.XAxisLabel,
		YTitle:         b.YAxisLabel,
		TitleFontSize:  styles.AxisTitleFontSize,
		BeginAtZero:    true,
		Min:            start,
		Max:            end,
		Ticks:          ticks,
		Grid:           styles.Grid,
		LabelColor:     styles.AxisText,
		LabelFontSize:  styles.AxisLabelFontSize,
	}
	cfg.Legend = Legend{Show: false}
}

func mapPie(cfg *Config, p chart.Pie) {
	cfg.Geometry = GeometryArc

	total := p.Total()
	s := Series{
		Values:      make([]float64, len(p.Items)),
		Fills:       make([]styles.Color, len(p.Items)),
		Strokes:     []styles.Color{styles.SliceBorder},
		StrokeWidth: styles.SliceBorderWidth,
		SliceLabels: make([]string, len(p.Items)),
	}
	legend := Legend{
		Show:     true,
		Position: "bottom",
		Padding:  styles.LegendPadding,
		FontSize: styles.LegendFontSize,
	}
	for i, it := range p.Items {
		cfg.Labels = append(cfg.Labels, it.Name)
		s.Values[i] = it.Value
		fallback, ok := styles.LookupCategory(it.Name)
		if !ok {
			fallback = styles.SeriesColor(i)
		}
		s.Fills[i] = itemColor(it, fallback)
		s.SliceLabels[i] = fmt.Sprintf("%s%%", FormatFixed(it.Value/total*100, 1))
		legend.Items = append(legend.Items, LegendItem{Label: it.Name, Color: s.Fills[i]})
	}
	cfg.Series = []Series{s}
	cfg.Legend = legend
}

// itemColor resolves an item's color: an explicit color wins, then fallback.
func itemColor(it chart.Item, fallback styles.Color) styles.Color {
	if it.Color != "" {
		if c, err := styles.Parse(it.Color); err == nil {
			return c
		}
	}
	return fallback
}
