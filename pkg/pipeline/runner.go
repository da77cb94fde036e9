package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/document"
	"github.com/matzehuels/chartpress/pkg/errors"
	"github.com/matzehuels/chartpress/pkg/observability"
	"github.com/matzehuels/chartpress/pkg/render/layout"
	"github.com/matzehuels/chartpress/pkg/render/sink"
)

// Runner executes the chart pipeline. Both CLI and API use it.
//
// The Runner holds only immutable collaborators and a logger; it stores no
// results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Engine    *sink.Engine
	Assembler *document.Assembler
	Validator chart.Validator
	Logger    *log.Logger
}

// NewRunner creates a runner. If assembler is nil, one with the standard
// metadata defaults is used. If logger is nil, log.Default() is used.
func NewRunner(engine *sink.Engine, assembler *document.Assembler, logger *log.Logger) *Runner {
	if assembler == nil {
		assembler = document.NewAssembler(document.Defaults{})
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Engine:    engine,
		Assembler: assembler,
		Logger:    logger,
	}
}

// Validate checks the whole request, pdfOptions included, without rendering.
func (r *Runner) Validate(ctx context.Context, req Request) (*Prepared, error) {
	start := time.Now()
	p, err := r.prepare(req, true)
	observability.Pipeline().OnValidateComplete(ctx, req.ChartType, time.Since(start), err)
	return p, err
}

// Config validates the request and returns the renderer configuration it
// maps to, without rendering.
func (r *Runner) Config(ctx context.Context, req Request) (layout.Config, error) {
	res, _, err := r.mapped(ctx, req, false)
	if err != nil {
		return layout.Config{}, err
	}
	return res.Config, nil
}

// Image runs validate → map → render. pdfOptions are ignored.
func (r *Runner) Image(ctx context.Context, req Request) (*Result, error) {
	res, _, err := r.mapped(ctx, req, false)
	if err != nil {
		return nil, err
	}
	if err := r.render(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Document runs validate → map → render → assemble.
func (r *Runner) Document(ctx context.Context, req Request) (*Result, error) {
	res, p, err := r.mapped(ctx, req, true)
	if err != nil {
		return nil, err
	}
	if err := r.render(ctx, res); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnDocumentStart(ctx, string(res.Kind), string(p.Document.PageSize))
	start := time.Now()
	doc, err := r.Assembler.Assemble(ctx, res.Image, p.Document)
	res.Stats.DocumentTime = time.Since(start)
	size := 0
	if doc != nil {
		size = len(doc.Data)
	}
	hooks.OnDocumentComplete(ctx, string(res.Kind), size, res.Stats.DocumentTime, err)
	if err != nil {
		return nil, err
	}
	res.Document = doc
	res.Stats.DocumentBytes = size

	r.logger(ctx).Info("assembled document",
		"kind", res.Kind,
		"file", doc.FileName,
		"page", doc.PageSize,
		"bytes", size,
		"duration", res.Stats.DocumentTime)
	return res, nil
}

// mapped validates and maps the request. withDocument also validates
// pdfOptions.
func (r *Runner) mapped(ctx context.Context, req Request, withDocument bool) (*Result, *Prepared, error) {
	start := time.Now()
	p, err := r.prepare(req, withDocument)
	validateTime := time.Since(start)
	observability.Pipeline().OnValidateComplete(ctx, req.ChartType, validateTime, err)
	if err != nil {
		r.logger(ctx).Debug("rejected request", "chart_type", req.ChartType, "field", errors.GetField(err), "err", err)
		return nil, nil, err
	}

	start = time.Now()
	cfg, err := layout.Map(p.Description)
	if err != nil {
		return nil, nil, err
	}
	res := &Result{Kind: p.Kind(), Config: cfg}
	res.Stats.ValidateTime = validateTime
	res.Stats.MapTime = time.Since(start)
	return res, p, nil
}

func (r *Runner) prepare(req Request, withDocument bool) (*Prepared, error) {
	desc, err := r.Validator.Parse(req.ChartType, req.ChartData)
	if err != nil {
		return nil, err
	}
	p := &Prepared{Description: desc}
	if withDocument {
		p.Document, err = document.ParseOptions(req.PDFOptions, desc.Kind())
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *Runner) render(ctx context.Context, res *Result) error {
	if r.Engine == nil {
		return errors.New(errors.ErrCodeInternal, "no render engine configured")
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, string(res.Kind), res.Config.Width, res.Config.Height)
	start := time.Now()
	img, err := r.Engine.Render(ctx, res.Config)
	res.Stats.RenderTime = time.Since(start)
	size := 0
	if img != nil {
		size = len(img.Data)
	}
	hooks.OnRenderComplete(ctx, string(res.Kind), size, res.Stats.RenderTime, err)
	if err != nil {
		return err
	}
	res.Image = img
	res.Stats.ImageBytes = size

	r.logger(ctx).Info("rendered chart",
		"kind", res.Kind,
		"width", img.Width,
		"height", img.Height,
		"bytes", size,
		"duration", res.Stats.RenderTime)
	return nil
}
