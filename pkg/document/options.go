package document

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/errors"
)

// Options are the validated document settings of one request. Title, Author
// and Subject may be empty; the assembler fills metadata from its defaults.
type Options struct {
	Title       string
	Author      string
	Subject     string
	FileName    string
	PageSize    PageSize
	Orientation Orientation
}

type wireOptions struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Subject         string `json:"subject"`
	FileName        string `json:"fileName"`
	PageSize        string `json:"pageSize"`
	PageOrientation string `json:"pageOrientation"`
}

// DefaultFileName is the download name used when the request names none.
func DefaultFileName(kind chart.Kind) string {
	return string(kind) + "-chart.pdf"
}

// ParseOptions decodes and validates a pdfOptions object. A missing or null
// object yields the defaults for kind: A4, portrait, "<kind>-chart.pdf".
func ParseOptions(raw json.RawMessage, kind chart.Kind) (Options, error) {
	var w wireOptions
	if t := bytes.TrimSpace(raw); len(t) > 0 && !bytes.Equal(t, []byte("null")) {
		if t[0] != '{' {
			return Options{}, errors.Invalid("pdfOptions", "pdfOptions deve ser um objeto.")
		}
		if err := json.Unmarshal(t, &w); err != nil {
			var typeErr *json.UnmarshalTypeError
			if stderrors.As(err, &typeErr) && typeErr.Field != "" {
				return Options{}, errors.Invalid("pdfOptions."+typeErr.Field,
					"O campo %s deve ser do tipo string.", typeErr.Field)
			}
			return Options{}, errors.Invalid("pdfOptions", "pdfOptions não é um JSON válido.")
		}
	}

	for _, f := range []struct{ field, value string }{
		{"pdfOptions.title", w.Title},
		{"pdfOptions.author", w.Author},
		{"pdfOptions.subject", w.Subject},
	} {
		if err := errors.ValidateText(f.field, f.value); err != nil {
			return Options{}, err
		}
	}

	size, err := ParsePageSize(w.PageSize)
	if err != nil {
		return Options{}, err
	}
	orient, err := ParseOrientation(w.PageOrientation)
	if err != nil {
		return Options{}, err
	}
	name, err := fileName(w.FileName, kind)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Title:       w.Title,
		Author:      w.Author,
		Subject:     w.Subject,
		FileName:    name,
		PageSize:    size,
		Orientation: orient,
	}, nil
}

// fileName applies the default and forces a .pdf extension.
func fileName(name string, kind chart.Kind) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultFileName(kind), nil
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	if err := errors.ValidateFileName(name); err != nil {
		return "", err
	}
	return name, nil
}
