package sink

import (
	"image"

	"github.com/matzehuels/chartpress/pkg/fonts"
	"github.com/matzehuels/chartpress/pkg/render/layout"
	"github.com/matzehuels/chartpress/pkg/render/styles"
)

// paintGauge draws the value arc, the remaining track, the score and the
// category badge, all at the positions fixed by the layout.
func paintGauge(fs *fonts.Set, cfg layout.Config) (image.Image, error) {
	g := cfg.Gauge
	if g == nil {
		return nil, errMissing("gauge layout")
	}

	c := newCanvas(fs, cfg.Width, cfg.Height, cfg.Background)

	arc := func(a1, a2 float64, fill styles.Color) {
		c.sector(g.CenterX, g.CenterY, g.OuterRadius, g.InnerRadius, a1, a2)
		c.SetColor(fill)
		c.Fill()
	}
	if g.ValueSweep > 0 {
		arc(g.StartAngle, g.ValueEnd(), g.ValueColor)
	}
	if g.ValueEnd() < g.End() {
		arc(g.ValueEnd(), g.End(), g.TrackColor)
	}

	s := g.Score
	c.text(s.Text, s.X, s.Y, s.FontSize, s.Bold, s.Color, 0.5, 0.5)

	b := g.Badge
	tw := c.measure(b.Label, b.FontSize, true)
	c.DrawRectangle(b.Left(tw), b.Top, b.Width(tw), b.Height)
	c.SetColor(b.Fill)
	c.Fill()
	c.text(b.Label, b.CenterX, b.TextY(), b.FontSize, true, b.TextColor, 0.5, 0.5)

	c.title(cfg.Title)
	return c.Image(), nil
}
