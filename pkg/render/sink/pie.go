package sink

import (
	"image"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/matzehuels/chartpress/pkg/fonts"
	"github.com/matzehuels/chartpress/pkg/render/layout"
	"github.com/matzehuels/chartpress/pkg/render/styles"
)

const (
	legendGap       = 16 // between legend entries
	legendMarkerGap = 6  // between marker and label
	legendRowExtra  = 8
	sliceLabelSize  = 12
)

// legendEntry is a legend item placed on a row.
type legendEntry struct {
	item  layout.LegendItem
	width float64
}

// paintPie renders the slices with go-chart, then draws the title and the
// legend below the plot on a canvas of the full size.
func paintPie(fs *fonts.Set, cfg layout.Config) (image.Image, error) {
	if len(cfg.Series) == 0 {
		return nil, errMissing("series")
	}
	s := cfg.Series[0]

	c := newCanvas(fs, cfg.Width, cfg.Height, cfg.Background)
	rows := legendRows(c, cfg.Legend, float64(cfg.Width))
	legendH := 0
	if len(rows) > 0 {
		legendH = len(rows)*int(cfg.Legend.FontSize+legendRowExtra) + 10
	}
	plotH := cfg.Height - legendH
	if plotH <= topPadding(cfg) {
		return nil, errMissing("room for the plot area")
	}

	// Zero slices have no area; they only appear in the legend.
	var values []chart.Value
	for i, v := range s.Values {
		if v <= 0 {
			continue
		}
		label := ""
		if i < len(s.SliceLabels) {
			label = s.SliceLabels[i]
		}
		values = append(values, chart.Value{
			Label: label,
			Value: v,
			Style: chart.Style{
				FillColor:   drawingColor(s.FillAt(i)),
				StrokeColor: drawingColor(s.StrokeAt(i)),
				StrokeWidth: s.StrokeWidth,
				FontColor:   drawingColor(styles.White),
				FontSize:    sliceLabelSize,
			},
		})
	}
	if len(values) == 0 {
		return nil, errMissing("slices")
	}

	pc := chart.PieChart{
		TitleStyle: chart.Style{Hidden: true},
		Width:      cfg.Width,
		Height:     plotH,
		DPI:        goChartDPI,
		Font:       fs.Regular,
		Background: chart.Style{
			FillColor: drawingColor(cfg.Background),
			Padding:   chart.Box{Top: topPadding(cfg), Left: 10, Right: 10, Bottom: 10},
		},
		Values: values,
	}
	img, err := renderGoChart(pc.Render)
	if err != nil {
		return nil, err
	}
	c.DrawImage(img, 0, 0)

	drawLegend(c, cfg.Legend, rows, float64(plotH))
	c.title(cfg.Title)
	return c.Image(), nil
}

// legendRows wraps legend entries into centered rows that fit width.
func legendRows(c *canvas, l layout.Legend, width float64) [][]legendEntry {
	if !l.Show || len(l.Items) == 0 {
		return nil
	}
	limit := width - 2*l.Padding
	var rows [][]legendEntry
	var row []legendEntry
	var used float64
	for _, it := range l.Items {
		w := 2*styles.LegendMarkerRadius + legendMarkerGap + c.measure(it.Label, l.FontSize, false)
		if len(row) > 0 && used+legendGap+w > limit {
			rows = append(rows, row)
			row, used = nil, 0
		}
		if len(row) > 0 {
			used += legendGap
		}
		row = append(row, legendEntry{item: it, width: w})
		used += w
	}
	return append(rows, row)
}

func drawLegend(c *canvas, l layout.Legend, rows [][]legendEntry, top float64) {
	rowH := l.FontSize + legendRowExtra
	for r, row := range rows {
		var total float64
		for i, e := range row {
			if i > 0 {
				total += legendGap
			}
			total += e.width
		}
		x := (float64(c.Width()) - total) / 2
		y := top + float64(r)*rowH + rowH/2
		for _, e := range row {
			c.DrawCircle(x+styles.LegendMarkerRadius, y, styles.LegendMarkerRadius)
			c.SetColor(e.item.Color)
			c.Fill()
			tx := x + 2*styles.LegendMarkerRadius + legendMarkerGap
			c.text(e.item.Label, tx, y, l.FontSize, false, styles.AxisText, 0, 0.5)
			x += e.width + legendGap
		}
	}
}
