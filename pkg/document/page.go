package document

import (
	"strings"

	"github.com/matzehuels/chartpress/pkg/errors"
)

// PageSize names a supported paper size.
type PageSize string

const (
	PageA4     PageSize = "A4"
	PageA3     PageSize = "A3"
	PageLetter PageSize = "LETTER"
)

// Orientation is the page orientation.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Portrait page dimensions in points.
var pageDims = map[PageSize][2]float64{
	PageA4:     {595.28, 841.89},
	PageA3:     {841.89, 1190.55},
	PageLetter: {612, 792},
}

// ParsePageSize accepts a page size name in any case. Empty means A4.
func ParsePageSize(s string) (PageSize, error) {
	if s == "" {
		return PageA4, nil
	}
	p := PageSize(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := pageDims[p]; !ok {
		return "", errors.Invalid("pdfOptions.pageSize",
			"Tamanho de página inválido: %q. Valores aceitos: A4, A3, LETTER.", s)
	}
	return p, nil
}

// ParseOrientation accepts an orientation in any case. Empty means portrait.
func ParseOrientation(s string) (Orientation, error) {
	if s == "" {
		return Portrait, nil
	}
	o := Orientation(strings.ToLower(strings.TrimSpace(s)))
	if o != Portrait && o != Landscape {
		return "", errors.Invalid("pdfOptions.pageOrientation",
			"Orientação de página inválida: %q. Valores aceitos: portrait, landscape.", s)
	}
	return o, nil
}

// Dimensions returns the page width and height in points for orientation o.
func (p PageSize) Dimensions(o Orientation) (width, height float64) {
	d, ok := pageDims[p]
	if !ok {
		d = pageDims[PageA4]
	}
	if o == Landscape {
		return d[1], d[0]
	}
	return d[0], d[1]
}
