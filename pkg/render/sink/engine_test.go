package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"testing"
	"time"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/errors"
	"github.com/matzehuels/chartpress/pkg/fonts"
	"github.com/matzehuels/chartpress/pkg/render/layout"
)

var testCharts = []struct {
	name, kind, data string
	w, h             int
}{
	{"radar", "radar", `{"labels":["Inovação","Colaboração","Excelência"],"datasets":[{"label":"Equipe","data":[8,6,9]}],"title":"Valores"}`, 480, 480},
	{"radar-over-scale", "radar", `{"labels":["a","b","c","d"],"datasets":[{"label":"x","data":[12,3,5,7]},{"label":"y","data":[1,2,3,4]}]}`, 480, 480},
	{"radar-huge-values", "radar", `{"labels":["a","b","c"],"datasets":[{"label":"x","data":[-5,1e17,1e308]}]}`, 480, 480},
	{"radar-full-range", "radar", `{"labels":["a","b","c"],"datasets":[{"label":"x","data":[-1e308,0,1e308]}]}`, 480, 480},
	{"gauge", "radialBar", `{"score":8.2,"maxScore":10,"category":{"label":"Bom","color":"#3b82f6"}}`, 320, 240},
	{"gauge-empty", "radialBar", `{"score":0,"maxScore":10,"category":{"label":"Baixo","color":"#ef4444"}}`, 320, 240},
	{"bar", "bar", `{"data":[{"name":"Inovação","value":8},{"name":"Outro","value":5,"color":"#123456"}],"xAxisLabel":"Valor","yAxisLabel":"Nota"}`, 600, 400},
	{"bar-horizontal", "bar", `{"data":[{"name":"a","value":3},{"name":"b","value":-2}],"layout":"vertical","title":"T"}`, 600, 400},
	{"pie", "pie", `{"data":[{"name":"a","value":3},{"name":"b","value":1},{"name":"c","value":0}],"title":"Pizza"}`, 600, 400},
	{"pie-sized", "pie", `{"data":[{"name":"a","value":1}],"width":300,"height":200}`, 300, 200},
}

func testEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	fs, err := fonts.Default()
	if err != nil {
		t.Fatalf("fonts.Default() error = %v", err)
	}
	return NewEngine(fs, opts...)
}

func testConfig(t *testing.T, kind, data string) layout.Config {
	t.Helper()
	d, err := chart.Parse(kind, json.RawMessage(data))
	if err != nil {
		t.Fatalf("chart.Parse() error = %v", err)
	}
	cfg, err := layout.Map(d)
	if err != nil {
		t.Fatalf("layout.Map() error = %v", err)
	}
	return cfg
}

func TestRenderDimensions(t *testing.T) {
	e := testEngine(t)
	for _, tt := range testCharts {
		t.Run(tt.name, func(t *testing.T) {
			img, err := e.Render(context.Background(), testConfig(t, tt.kind, tt.data))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !bytes.HasPrefix(img.Data, []byte("\x89PNG\r\n\x1a\n")) {
				t.Fatal("Render() output is not a PNG")
			}
			if img.ContentType != ContentTypePNG {
				t.Errorf("ContentType = %q, want %q", img.ContentType, ContentTypePNG)
			}
			decoded, err := png.Decode(bytes.NewReader(img.Data))
			if err != nil {
				t.Fatalf("png.Decode() error = %v", err)
			}
			b := decoded.Bounds()
			if b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("decoded size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
			if img.Width != tt.w || img.Height != tt.h {
				t.Errorf("Image size = %dx%d, want %dx%d", img.Width, img.Height, tt.w, tt.h)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	e := testEngine(t)
	for _, tt := range testCharts {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.kind, tt.data)
			a, err := e.Render(context.Background(), cfg)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			b, err := e.Render(context.Background(), cfg)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !bytes.Equal(a.Data, b.Data) {
				t.Error("two renders of the same configuration differ")
			}
		})
	}
}

func TestRenderGaugeValueArc(t *testing.T) {
	e := testEngine(t)
	img, err := e.Render(context.Background(), testConfig(t, "radialBar",
		`{"score":8.2,"maxScore":10,"category":{"label":"Bom","color":"#3b82f6"}}`))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(img.Data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	// Middle of the ring, 30% along the arc: inside the value segment.
	r, g, b, _ := decoded.At(78, 87).RGBA()
	if r>>8 != 0x3b || g>>8 != 0x82 || b>>8 != 0xf6 {
		t.Errorf("value arc pixel = #%02x%02x%02x, want #3b82f6", r>>8, g>>8, b>>8)
	}
	// Canvas corners stay white.
	r, g, b, _ = decoded.At(1, 1).RGBA()
	if r>>8 != 0xff || g>>8 != 0xff || b>>8 != 0xff {
		t.Errorf("corner pixel = #%02x%02x%02x, want #ffffff", r>>8, g>>8, b>>8)
	}
}

func TestRenderGaugeSeam(t *testing.T) {
	e := testEngine(t)
	img, err := e.Render(context.Background(), testConfig(t, "radialBar",
		`{"score":5,"maxScore":10,"category":{"label":"Médio","color":"#3b82f6"}}`))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(img.Data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	// Row y=60 crosses the top of the ring, where the value arc meets the
	// track at x=160. Every pixel there is value, track or a blend of both.
	for x := 150; x <= 170; x++ {
		r, g, b, _ := decoded.At(x, 60).RGBA()
		if r>>8 > 0xf1 {
			t.Errorf("pixel (%d, 60) = #%02x%02x%02x, want no white seam", x, r>>8, g>>8, b>>8)
		}
	}
	r, g, b, _ := decoded.At(100, 60).RGBA()
	if r>>8 != 0x3b || g>>8 != 0x82 || b>>8 != 0xf6 {
		t.Errorf("value pixel = #%02x%02x%02x, want #3b82f6", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = decoded.At(220, 60).RGBA()
	if r>>8 != 0xf1 || g>>8 != 0xf5 || b>>8 != 0xf9 {
		t.Errorf("track pixel = #%02x%02x%02x, want #f1f5f9", r>>8, g>>8, b>>8)
	}
}

func TestRenderUnsupportedKind(t *testing.T) {
	e := testEngine(t)
	_, err := e.Render(context.Background(), layout.Config{Kind: "line", Width: 100, Height: 100})
	if !errors.Is(err, errors.ErrCodeUnsupportedKind) {
		t.Errorf("Render() error = %v, want %s", err, errors.ErrCodeUnsupportedKind)
	}
}

func TestRenderMissingLayout(t *testing.T) {
	e := testEngine(t)
	_, err := e.Render(context.Background(), layout.Config{Kind: chart.KindRadialBar, Width: 100, Height: 100})
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("Render() error = %v, want %s", err, errors.ErrCodeRender)
	}
}

func TestRenderCancelled(t *testing.T) {
	e := testEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig(t, "pie", testCharts[6].data)
	_, err := e.Render(ctx, cfg)
	// The painter may win the race against an already cancelled context;
	// either outcome is fine, but a failure must be a render error.
	if err != nil && !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("Render() error = %v, want %s", err, errors.ErrCodeRender)
	}
}

func TestRenderTimeout(t *testing.T) {
	e := testEngine(t, WithTimeout(time.Nanosecond))
	cfg := testConfig(t, "radar", testCharts[0].data)
	_, err := e.Render(context.Background(), cfg)
	if err != nil && !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("Render() error = %v, want %s", err, errors.ErrCodeRender)
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e := testEngine(t)
	if e.Timeout() != DefaultTimeout {
		t.Errorf("Timeout() = %v, want %v", e.Timeout(), DefaultTimeout)
	}
	if e.Fonts() == nil {
		t.Error("Fonts() = nil")
	}
}
