package sink

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"

	"github.com/matzehuels/chartpress/pkg/fonts"
	"github.com/matzehuels/chartpress/pkg/render/layout"
	"github.com/matzehuels/chartpress/pkg/render/styles"
)

// go-chart scales fonts by DPI/72; pinning DPI keeps font sizes in pixels.
const goChartDPI = 72

func drawingColor(c styles.Color) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// renderGoChart runs a go-chart renderer into memory and decodes the PNG so
// it can be composited.
func renderGoChart(render func(chart.RendererProvider, io.Writer) error) (image.Image, error) {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// canvasFromImage wraps an already drawn image for further drawing.
func canvasFromImage(fs *fonts.Set, img image.Image) *canvas {
	return &canvas{Context: gg.NewContextForImage(img), fonts: fs, faces: make(map[faceKey]font.Face)}
}

func goChartTitle(fs *fonts.Set, t *layout.Title) (string, chart.Style) {
	if t == nil {
		return "", chart.Style{Hidden: true}
	}
	return t.Text, chart.Style{
		Font:      fs.Bold,
		FontSize:  t.FontSize,
		FontColor: drawingColor(t.Color),
	}
}

func topPadding(cfg layout.Config) int {
	if cfg.Title != nil {
		return int(cfg.Title.Band)
	}
	return 20
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
