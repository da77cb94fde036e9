package document

import (
	"bytes"
	"context"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/chartpress/pkg/errors"
	"github.com/matzehuels/chartpress/pkg/render/sink"
)

// ContentTypePDF is the media type of assembled documents.
const ContentTypePDF = "application/pdf"

// Page layout in points.
const (
	Margin        = 72.0
	TitleFontSize = 18.0
	titleLeading  = 1.2
	imageName     = "chart"
)

// Defaults are the document metadata used when a request leaves a field
// empty.
type Defaults struct {
	Title   string `toml:"title"`
	Author  string `toml:"author"`
	Subject string `toml:"subject"`
	Creator string `toml:"creator"`
}

// DefaultMetadata returns the service's standard document metadata.
func DefaultMetadata() Defaults {
	return Defaults{
		Title:   "Gráfico",
		Author:  "Microserviço PDF Export",
		Subject: "Gráfico em PDF",
		Creator: "chartpress",
	}
}

// Document is an assembled PDF.
type Document struct {
	Data        []byte
	FileName    string
	ContentType string
	PageSize    PageSize
	Orientation Orientation
	Image       *sink.Image

	// Placement of the image on the page, in points.
	ImageX, ImageY, ImageWidth, ImageHeight float64
}

// Assembler builds single-page chart documents. It is stateless apart from
// its defaults and safe for concurrent use.
type Assembler struct {
	defaults Defaults
	now      func() time.Time
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithClock sets the clock used for the document creation date.
func WithClock(now func() time.Time) AssemblerOption {
	return func(a *Assembler) { a.now = now }
}

// NewAssembler returns an assembler that falls back to defaults for empty
// metadata fields. Empty defaults fall back to [DefaultMetadata].
func NewAssembler(defaults Defaults, opts ...AssemblerOption) *Assembler {
	std := DefaultMetadata()
	if defaults.Title == "" {
		defaults.Title = std.Title
	}
	if defaults.Author == "" {
		defaults.Author = std.Author
	}
	if defaults.Subject == "" {
		defaults.Subject = std.Subject
	}
	if defaults.Creator == "" {
		defaults.Creator = std.Creator
	}
	a := &Assembler{defaults: defaults, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Defaults returns the metadata defaults in effect.
func (a *Assembler) Defaults() Defaults { return a.defaults }

// Assemble lays img out on one page according to opts.
func (a *Assembler) Assemble(ctx context.Context, img *sink.Image, opts Options) (*Document, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, errors.New(errors.ErrCodeDocument, "no image to embed")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDocument, err, "assemble document")
	}
	if opts.PageSize == "" {
		opts.PageSize = PageA4
	}
	if opts.Orientation == "" {
		opts.Orientation = Portrait
	}

	pageW, pageH := opts.PageSize.Dimensions(opts.Orientation)
	portraitW, portraitH := opts.PageSize.Dimensions(Portrait)
	orient := "P"
	if opts.Orientation == Landscape {
		orient = "L"
	}
	// fpdf takes the portrait size and swaps it itself for landscape.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orient,
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: portraitW, Ht: portraitH},
	})
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(false, Margin)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(a.now())

	pdf.SetTitle(or(opts.Title, a.defaults.Title), true)
	pdf.SetAuthor(or(opts.Author, a.defaults.Author), true)
	pdf.SetSubject(or(opts.Subject, a.defaults.Subject), true)
	pdf.SetCreator(a.defaults.Creator, true)

	pdf.AddPage()
	y := Margin
	if opts.Title != "" {
		// Core fonts are cp1252; the translator maps UTF-8 accents into it.
		tr := pdf.UnicodeTranslatorFromDescriptor("")
		line := TitleFontSize * titleLeading
		pdf.SetFont("Helvetica", "B", TitleFontSize)
		pdf.SetXY(Margin, Margin)
		pdf.MultiCell(0, line, tr(opts.Title), "", "C", false)
		y = pdf.GetY() + line/2
	}

	w, h := fit(float64(img.Width), float64(img.Height), pageW-2*Margin, pageH-Margin-y)
	x := (pageW - w) / 2

	info := pdf.RegisterImageOptionsReader(imageName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img.Data))
	if info == nil || !pdf.Ok() {
		return nil, errors.Wrap(errors.ErrCodeDocument, pdf.Error(), "embed chart image")
	}
	pdf.ImageOptions(imageName, x, y, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDocument, err, "write document")
	}

	return &Document{
		Data:        buf.Bytes(),
		FileName:    opts.FileName,
		ContentType: ContentTypePDF,
		PageSize:    opts.PageSize,
		Orientation: opts.Orientation,
		Image:       img,
		ImageX:      x,
		ImageY:      y,
		ImageWidth:  w,
		ImageHeight: h,
	}, nil
}

// fit scales (w, h) down proportionally to fit (maxW, maxH). Images that
// already fit keep their size: one pixel per point.
func fit(w, h, maxW, maxH float64) (float64, float64) {
	if maxW <= 0 || maxH <= 0 || (w <= maxW && h <= maxH) {
		return w, h
	}
	s := min(maxW/w, maxH/h)
	return w * s, h * s
}

func or(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
