package sink

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/chartpress/pkg/fonts"
	"github.com/matzehuels/chartpress/pkg/render/layout"
)

// canvas wraps a gg context with the engine's fonts. Faces are created lazily
// per (weight, size) and live as long as the canvas.
type canvas struct {
	*gg.Context
	fonts *fonts.Set
	faces map[faceKey]font.Face
}

type faceKey struct {
	bold bool
	size float64
}

func newCanvas(fs *fonts.Set, w, h int, bg color.Color) *canvas {
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	return &canvas{Context: dc, fonts: fs, faces: make(map[faceKey]font.Face)}
}

func (c *canvas) useFont(size float64, bold bool) {
	k := faceKey{bold: bold, size: size}
	f, ok := c.faces[k]
	if !ok {
		f = c.fonts.Face(bold, size)
		c.faces[k] = f
	}
	c.SetFontFace(f)
}

// measure returns the advance width of s.
func (c *canvas) measure(s string, size float64, bold bool) float64 {
	c.useFont(size, bold)
	w, _ := c.MeasureString(s)
	return w
}

// text draws s anchored at (x, y); ax and ay are in [0, 1] as in
// gg.DrawStringAnchored.
func (c *canvas) text(s string, x, y, size float64, bold bool, col color.Color, ax, ay float64) {
	c.useFont(size, bold)
	c.SetColor(col)
	c.DrawStringAnchored(s, x, y, ax, ay)
}

// rotatedText draws s centered at (x, y), rotated 90° counter-clockwise.
func (c *canvas) rotatedText(s string, x, y, size float64, col color.Color) {
	c.Push()
	c.RotateAbout(gg.Radians(-90), x, y)
	c.text(s, x, y, size, false, col, 0.5, 0.5)
	c.Pop()
}

// title draws the chart heading centered in its reserved band.
func (c *canvas) title(t *layout.Title) {
	if t == nil || t.Text == "" {
		return
	}
	c.text(t.Text, float64(c.Width())/2, t.Band/2, t.FontSize, t.Bold, t.Color, 0.5, 0.5)
}

// sector adds an annular sector path between angles a1 and a2.
func (c *canvas) sector(cx, cy, outer, inner, a1, a2 float64) {
	c.NewSubPath()
	c.DrawArc(cx, cy, outer, a1, a2)
	if inner > 0 {
		c.DrawArc(cx, cy, inner, a2, a1)
	} else {
		c.LineTo(cx, cy)
	}
	c.ClosePath()
}

// roundedRect adds a rectangle path that tolerates negative sizes and clamps
// the corner radius to what fits.
func (c *canvas) roundedRect(x, y, w, h, r float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		c.DrawRectangle(x, y, w, h)
		return
	}
	c.DrawRoundedRectangle(x, y, w, h, r)
}

// polar returns the point at angle a and distance d from (cx, cy).
func polar(cx, cy, a, d float64) (float64, float64) {
	return cx + math.Cos(a)*d, cy + math.Sin(a)*d
}
