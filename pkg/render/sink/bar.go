package sink

import (
	"image"
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/matzehuels/chartpress/pkg/fonts"
	"github.com/matzehuels/chartpress/pkg/render/layout"
)

const (
	axisTitleBand = 20
	plotMargin    = 20
	barFill       = 0.72 // share of a category slot covered by its bar
	columnFill    = 0.6  // go-chart spaces columns itself, so it gets less
)

func paintBar(fs *fonts.Set, cfg layout.Config) (image.Image, error) {
	if cfg.Axes == nil || len(cfg.Series) == 0 {
		return nil, errMissing("axes")
	}
	if cfg.Axes.HorizontalBars {
		return paintBarsHorizontal(fs, cfg)
	}
	return paintBarsVertical(fs, cfg)
}

// paintBarsVertical draws columns with go-chart and overlays the axis titles.
func paintBarsVertical(fs *fonts.Set, cfg layout.Config) (image.Image, error) {
	a, s := cfg.Axes, cfg.Series[0]

	left, bottom := 10, 10
	if a.YTitle != "" {
		left += axisTitleBand
	}
	if a.XTitle != "" {
		bottom += axisTitleBand
	}

	n := len(s.Values)
	slot := float64(cfg.Width-left-plotMargin) / float64(max(n, 1))
	bars := make([]chart.Value, n)
	for i, v := range s.Values {
		bars[i] = chart.Value{
			Label: cfg.Labels[i],
			Value: v,
			Style: chart.Style{
				FillColor:   drawingColor(s.FillAt(i)),
				StrokeColor: drawingColor(s.StrokeAt(i)),
				StrokeWidth: s.StrokeWidth,
			},
		}
	}
	ticks := make([]chart.Tick, len(a.Ticks))
	for i, t := range a.Ticks {
		ticks[i] = chart.Tick{Value: t, Label: formatTick(t)}
	}

	title, titleStyle := goChartTitle(fs, cfg.Title)
	axisStyle := chart.Style{
		FontSize:    a.LabelFontSize,
		FontColor:   drawingColor(a.LabelColor),
		StrokeColor: drawingColor(a.Grid),
		StrokeWidth: 1,
	}
	bc := chart.BarChart{
		Title:      title,
		TitleStyle: titleStyle,
		Width:      cfg.Width,
		Height:     cfg.Height,
		DPI:        goChartDPI,
		Font:       fs.Regular,
		Background: chart.Style{
			FillColor: drawingColor(cfg.Background),
			Padding:   chart.Box{Top: topPadding(cfg), Left: left, Right: plotMargin, Bottom: bottom},
		},
		BarWidth:     max(1, int(slot*columnFill)),
		BarSpacing:   max(1, int(slot*(1-columnFill))),
		UseBaseValue: true,
		BaseValue:    0,
		XAxis:        axisStyle,
		YAxis: chart.YAxis{
			Style: axisStyle,
			Range: &chart.ContinuousRange{Min: a.Min, Max: a.Max},
			Ticks: ticks,
		},
		Bars: bars,
	}

	img, err := renderGoChart(bc.Render)
	if err != nil {
		return nil, err
	}

	c := canvasFromImage(fs, img)
	drawAxisTitles(c, a)
	return c.Image(), nil
}

// paintBarsHorizontal draws bars extending along the x axis, with category
// labels on the left and value ticks along the bottom.
func paintBarsHorizontal(fs *fonts.Set, cfg layout.Config) (image.Image, error) {
	a, s := cfg.Axes, cfg.Series[0]
	c := newCanvas(fs, cfg.Width, cfg.Height, cfg.Background)

	var labelW float64
	for _, l := range cfg.Labels {
		labelW = math.Max(labelW, c.measure(l, a.LabelFontSize, false))
	}

	left := 10 + labelW + 8
	if a.YTitle != "" {
		left += axisTitleBand
	}
	right := float64(cfg.Width) - plotMargin
	top := float64(topPadding(cfg))
	bottom := float64(cfg.Height) - 10 - a.LabelFontSize - 8
	if a.XTitle != "" {
		bottom -= axisTitleBand
	}
	if right <= left || bottom <= top {
		return nil, errMissing("room for the plot area")
	}

	span := a.Max - a.Min
	if span == 0 {
		span = 1
	}
	xOf := func(v float64) float64 { return left + (v-a.Min)/span*(right-left) }

	c.SetLineWidth(1)
	for _, t := range a.Ticks {
		x := xOf(t)
		c.SetColor(a.Grid)
		c.DrawLine(x, top, x, bottom)
		c.Stroke()
		c.text(formatTick(t), x, bottom+4, a.LabelFontSize, false, a.LabelColor, 0.5, 1)
	}

	n := len(s.Values)
	slot := (bottom - top) / float64(n)
	thick := slot * barFill
	base := xOf(math.Max(a.Min, math.Min(0, a.Max)))
	for i, v := range s.Values {
		y := top + float64(i)*slot + (slot-thick)/2
		c.roundedRect(base, y, xOf(v)-base, thick, s.CornerRadius)
		c.SetColor(s.FillAt(i))
		c.FillPreserve()
		c.SetColor(s.StrokeAt(i))
		c.SetLineWidth(s.StrokeWidth)
		c.Stroke()

		c.text(cfg.Labels[i], left-8, y+thick/2, a.LabelFontSize, false, a.LabelColor, 1, 0.5)
	}

	c.title(cfg.Title)
	drawAxisTitles(c, a)
	return c.Image(), nil
}

// drawAxisTitles writes the x title along the bottom edge and the y title
// rotated along the left edge.
func drawAxisTitles(c *canvas, a *layout.Axes) {
	w, h := float64(c.Width()), float64(c.Height())
	if a.XTitle != "" {
		c.text(a.XTitle, w/2, h-axisTitleBand/2, a.TitleFontSize, true, a.LabelColor, 0.5, 0.5)
	}
	if a.YTitle != "" {
		c.rotatedText(a.YTitle, axisTitleBand/2, h/2, a.TitleFontSize, a.LabelColor)
	}
}
