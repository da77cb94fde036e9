package chart

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"math"

	"github.com/matzehuels/chartpress/pkg/errors"
)

// User-facing validation messages. Clients of the service match on these, so
// they are kept stable.
const (
	msgMissingRequest = "chartType e chartData são obrigatórios"
	msgRadar          = "Dados do gráfico radar inválidos. Verifique se você forneceu labels e datasets."
	msgRadarData      = "Todos os datasets devem conter dados válidos."
	msgGauge          = "Dados do gráfico radial inválidos. Verifique score, maxScore e category."
	msgBar            = "Dados do gráfico de barras inválidos. Verifique se você forneceu um array de dados."
	msgPie            = "Dados do gráfico de pizza inválidos. Verifique se você forneceu um array de dados."
	msgItem           = "Cada item deve conter name e value numérico."
)

// Wire shapes. Pointers distinguish "absent" from zero values.
type (
	wireOptions struct {
		Title  *string  `json:"title"`
		Width  *float64 `json:"width"`
		Height *float64 `json:"height"`
	}

	wireRadar struct {
		Labels   []string      `json:"labels"`
		Datasets []wireDataset `json:"datasets"`
		wireOptions
	}

	wireDataset struct {
		Label string    `json:"label"`
		Data  []float64 `json:"data"`
	}

	wireGauge struct {
		Score    *float64      `json:"score"`
		MaxScore *float64      `json:"maxScore"`
		Category *wireCategory `json:"category"`
		wireOptions
	}

	wireCategory struct {
		Label string `json:"label"`
		Color string `json:"color"`
	}

	wireItem struct {
		Name  *string  `json:"name"`
		Value *float64 `json:"value"`
		Color string   `json:"color"`
	}

	wireBar struct {
		Data       []wireItem `json:"data"`
		Layout     string     `json:"layout"`
		XAxisLabel string     `json:"xAxisLabel"`
		YAxisLabel string     `json:"yAxisLabel"`
		wireOptions
	}

	wirePie struct {
		Data []wireItem `json:"data"`
		wireOptions
	}
)

// Parse resolves chartType and decodes chartData using the default limits.
// See [Validator.Parse].
func Parse(chartType string, chartData json.RawMessage) (Description, error) {
	return Validator{}.Parse(chartType, chartData)
}

// Parse resolves chartType, decodes chartData into the matching variant and
// validates it. It never panics; every failure is an *errors.Error with code
// ErrCodeInvalidInput or ErrCodeUnsupportedKind.
func (v Validator) Parse(chartType string, chartData json.RawMessage) (Description, error) {
	if isEmpty(chartData) {
		return nil, errors.Invalid("chartData", msgMissingRequest)
	}
	kind, err := ParseKind(chartType)
	if err != nil {
		return nil, err
	}
	d, err := Decode(kind, chartData)
	if err != nil {
		return nil, err
	}
	if err := v.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Decode converts chartData into the variant for kind, checking only that
// the required fields are present and well typed. Semantic checks are done by
// [Validator.Validate].
func Decode(kind Kind, raw json.RawMessage) (Description, error) {
	if isEmpty(raw) {
		return nil, errors.Invalid("chartData", msgMissingRequest)
	}

	switch kind {
	case KindRadar:
		var w wireRadar
		if err := unmarshal(raw, &w); err != nil {
			return nil, err
		}
		if len(w.Labels) == 0 || len(w.Datasets) == 0 {
			return nil, errors.Invalid("chartData", msgRadar)
		}
		r := Radar{Labels: w.Labels, RenderOptions: w.options()}
		for _, ds := range w.Datasets {
			r.Datasets = append(r.Datasets, Dataset(ds))
		}
		return r, nil

	case KindRadialBar:
		var w wireGauge
		if err := unmarshal(raw, &w); err != nil {
			return nil, err
		}
		if w.Score == nil || w.MaxScore == nil || w.Category == nil {
			return nil, errors.Invalid("chartData", msgGauge)
		}
		return Gauge{
			Score:         *w.Score,
			MaxScore:      *w.MaxScore,
			Category:      Category(*w.Category),
			RenderOptions: w.options(),
		}, nil

	case KindBar:
		var w wireBar
		if err := unmarshal(raw, &w); err != nil {
			return nil, err
		}
		if len(w.Data) == 0 {
			return nil, errors.Invalid("chartData.data", msgBar)
		}
		items, err := decodeItems(w.Data)
		if err != nil {
			return nil, err
		}
		return Bar{
			Items:         items,
			Layout:        BarLayout(w.Layout),
			XAxisLabel:    w.XAxisLabel,
			YAxisLabel:    w.YAxisLabel,
			RenderOptions: w.options(),
		}, nil

	case KindPie:
		var w wirePie
		if err := unmarshal(raw, &w); err != nil {
			return nil, err
		}
		if len(w.Data) == 0 {
			return nil, errors.Invalid("chartData.data", msgPie)
		}
		items, err := decodeItems(w.Data)
		if err != nil {
			return nil, err
		}
		return Pie{Items: items, RenderOptions: w.options()}, nil
	}

	return nil, unsupported()
}

func decodeItems(ws []wireItem) ([]Item, error) {
	items := make([]Item, len(ws))
	for i, w := range ws {
		if w.Name == nil || w.Value == nil {
			return nil, errors.Invalid("chartData.data", msgItem)
		}
		items[i] = Item{Name: *w.Name, Value: *w.Value, Color: w.Color}
	}
	return items, nil
}

func (w wireOptions) options() RenderOptions {
	var o RenderOptions
	if w.Title != nil {
		o.Title = *w.Title
	}
	if w.Width != nil {
		o.Width = dimension(*w.Width)
	}
	if w.Height != nil {
		o.Height = dimension(*w.Height)
	}
	return o
}

// dimension rounds a requested pixel size. Non-positive and non-finite
// values become -1 so validation can reject them; zero would mean "default".
func dimension(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f > math.MaxInt32 {
		return -1
	}
	return int(math.Round(f))
}

func unmarshal(raw json.RawMessage, v any) error {
	err := json.Unmarshal(raw, v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		field := "chartData"
		if typeErr.Field != "" {
			field += "." + typeErr.Field
		}
		return &errors.Error{
			Code:    errors.ErrCodeInvalidInput,
			Field:   field,
			Message: "O campo " + field + " deve ser do tipo " + jsonType(typeErr.Type.Kind().String()),
			Cause:   err,
		}
	}
	return &errors.Error{
		Code:    errors.ErrCodeInvalidInput,
		Field:   "chartData",
		Message: "chartData não é um JSON válido",
		Cause:   err,
	}
}

func jsonType(goKind string) string {
	switch goKind {
	case "float64", "int":
		return "number"
	case "slice":
		return "array"
	case "struct", "ptr":
		return "object"
	}
	return goKind
}

func isEmpty(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
