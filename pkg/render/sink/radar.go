package sink

import (
	"image"
	"math"

	"github.com/matzehuels/chartpress/pkg/fonts"
	"github.com/matzehuels/chartpress/pkg/render/layout"
)

// paintRadar draws polygon grid rings, spokes, axis labels and one filled
// polygon per series. The first axis points straight up; axes advance
// clockwise.
func paintRadar(fs *fonts.Set, cfg layout.Config) (image.Image, error) {
	r := cfg.Radial
	if r == nil {
		return nil, errMissing("radial scale")
	}
	n := len(cfg.Labels)
	if n == 0 {
		return nil, errMissing("labels")
	}

	c := newCanvas(fs, cfg.Width, cfg.Height, cfg.Background)
	angle := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}

	c.SetColor(r.GridColor)
	c.SetLineWidth(r.GridWidth)
	for _, ring := range r.Rings() {
		d := r.Distance(ring)
		c.NewSubPath()
		for i := 0; i < n; i++ {
			x, y := polar(r.CenterX, r.CenterY, angle(i), d)
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		c.Stroke()
	}
	for i := 0; i < n; i++ {
		x, y := polar(r.CenterX, r.CenterY, angle(i), r.Radius)
		c.DrawLine(r.CenterX, r.CenterY, x, y)
		c.Stroke()
	}

	for i, label := range cfg.Labels {
		a := angle(i)
		x, y := polar(r.CenterX, r.CenterY, a, r.Radius+r.LabelPadding)
		// Labels on the right grow rightwards, labels below grow downwards.
		ax := (1 - math.Cos(a)) / 2
		ay := (1 + math.Sin(a)) / 2
		c.text(label, x, y, r.LabelFontSize, false, r.LabelColor, ax, ay)
	}

	for _, s := range cfg.Series {
		pts := make([][2]float64, n)
		for i := 0; i < n && i < len(s.Values); i++ {
			v := math.Max(s.Values[i], r.Min)
			pts[i][0], pts[i][1] = polar(r.CenterX, r.CenterY, angle(i), r.Distance(v))
		}

		c.NewSubPath()
		for i, p := range pts {
			if i == 0 {
				c.MoveTo(p[0], p[1])
			} else {
				c.LineTo(p[0], p[1])
			}
		}
		c.ClosePath()
		c.SetColor(s.FillAt(0))
		c.FillPreserve()
		c.SetColor(s.StrokeAt(0))
		c.SetLineWidth(s.StrokeWidth)
		c.Stroke()

		if pt := s.Points; pt != nil && pt.Radius > 0 {
			for _, p := range pts {
				c.DrawCircle(p[0], p[1], pt.Radius)
				c.SetColor(pt.Fill)
				c.FillPreserve()
				c.SetColor(pt.Stroke)
				c.SetLineWidth(pt.StrokeWidth)
				c.Stroke()
			}
		}
	}

	c.title(cfg.Title)
	return c.Image(), nil
}
