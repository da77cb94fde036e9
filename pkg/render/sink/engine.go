package sink

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/errors"
	"github.com/matzehuels/chartpress/pkg/fonts"
	"github.com/matzehuels/chartpress/pkg/render/layout"
)

// DefaultTimeout bounds a single render when no other limit is configured.
const DefaultTimeout = 10 * time.Second

// ContentTypePNG is the media type of every rendered image.
const ContentTypePNG = "image/png"

// Image is an encoded raster chart.
type Image struct {
	Data        []byte
	Width       int
	Height      int
	ContentType string
}

type painter func(*fonts.Set, layout.Config) (image.Image, error)

// Engine rasterizes renderer configurations to PNG. An Engine holds only
// immutable state and is safe for concurrent use; every Render call gets its
// own drawing surface.
type Engine struct {
	fonts    *fonts.Set
	timeout  time.Duration
	painters map[chart.Kind]painter
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout bounds each render. Zero or negative disables the bound; the
// caller's context still applies.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// NewEngine returns an engine drawing text with fs.
func NewEngine(fs *fonts.Set, opts ...Option) *Engine {
	e := &Engine{
		fonts:   fs,
		timeout: DefaultTimeout,
		painters: map[chart.Kind]painter{
			chart.KindRadar:     paintRadar,
			chart.KindRadialBar: paintGauge,
			chart.KindBar:       paintBar,
			chart.KindPie:       paintPie,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fonts returns the font set the engine draws with.
func (e *Engine) Fonts() *fonts.Set { return e.fonts }

// Timeout returns the per-render bound.
func (e *Engine) Timeout() time.Duration { return e.timeout }

// Render draws cfg and encodes it as an opaque PNG of exactly
// cfg.Width x cfg.Height pixels. Painting runs on its own goroutine so a
// cancelled context or an expired timeout returns promptly; the abandoned
// painter finishes in the background and its result is dropped.
func (e *Engine) Render(ctx context.Context, cfg layout.Config) (*Image, error) {
	paint, ok := e.painters[cfg.Kind]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedKind,
			"Tipo de gráfico não suportado. Tipos suportados: %s", chart.KindNames())
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New(errors.ErrCodeRender, "invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	type result struct {
		img *Image
		err error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		img, err := paint(e.fonts, cfg)
		if err != nil {
			done <- result{err: err}
			return
		}
		data, err := encode(img, cfg.Width, cfg.Height)
		done <- result{img: &Image{Data: data, Width: cfg.Width, Height: cfg.Height, ContentType: ContentTypePNG}, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			if errors.GetCode(r.err) != "" {
				return nil, r.err
			}
			return nil, errors.Wrap(errors.ErrCodeRender, r.err, "render %s chart", cfg.Kind)
		}
		return r.img, nil
	case <-ctx.Done():
		return nil, errors.Wrap(errors.ErrCodeRender, ctx.Err(), "render %s chart", cfg.Kind)
	}
}

// encode flattens img onto white at the target size and writes a PNG.
func encode(img image.Image, w, h int) ([]byte, error) {
	out := imaging.New(w, h, color.White)
	out = imaging.Overlay(out, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG, imaging.PNGCompressionLevel(png.BestSpeed)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func errMissing(what string) error {
	return errors.New(errors.ErrCodeRender, "renderer configuration has no %s", what)
}
