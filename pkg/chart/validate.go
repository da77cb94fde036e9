package chart

import (
	"fmt"
	"math"

	"github.com/matzehuels/chartpress/pkg/errors"
	"github.com/matzehuels/chartpress/pkg/render/styles"
)

// Canvas size bounds in pixels.
const (
	MinDimension        = 100
	DefaultMaxDimension = 4096
)

// Validator checks chart descriptions. The zero value uses
// [DefaultMaxDimension].
type Validator struct {
	MaxDimension int
}

func (v Validator) maxDimension() int {
	if v.MaxDimension > 0 {
		return v.MaxDimension
	}
	return DefaultMaxDimension
}

// Validate checks the semantic invariants of a description: non-empty
// series, radar series lengths matching the label count, finite values,
// parseable colors and canvas dimensions within bounds.
func (v Validator) Validate(d Description) error {
	if d == nil {
		return errors.Invalid("chartData", msgMissingRequest)
	}
	if err := v.validateOptions(d.Options()); err != nil {
		return err
	}

	switch c := d.(type) {
	case Radar:
		return validateRadar(c)
	case Gauge:
		return validateGauge(c)
	case Bar:
		return validateBar(c)
	case Pie:
		return validatePie(c)
	}
	return unsupported()
}

func (v Validator) validateOptions(o RenderOptions) error {
	if err := errors.ValidateText("chartData.title", o.Title); err != nil {
		return err
	}
	limit := v.maxDimension()
	for _, dim := range []struct {
		field string
		value int
	}{{"chartData.width", o.Width}, {"chartData.height", o.Height}} {
		if dim.value == 0 {
			continue
		}
		if dim.value < MinDimension || dim.value > limit {
			return errors.Invalid(dim.field, "%s deve estar entre %d e %d pixels", dim.field, MinDimension, limit)
		}
	}
	return nil
}

func validateRadar(r Radar) error {
	if len(r.Labels) == 0 || len(r.Datasets) == 0 {
		return errors.Invalid("chartData", msgRadar)
	}
	for i, l := range r.Labels {
		if err := errors.ValidateText(fmt.Sprintf("chartData.labels[%d]", i), l); err != nil {
			return err
		}
	}
	for i, ds := range r.Datasets {
		field := fmt.Sprintf("chartData.datasets[%d].data", i)
		if len(ds.Data) == 0 {
			return errors.Invalid(field, msgRadarData)
		}
		if len(ds.Data) != len(r.Labels) {
			return errors.Invalid(field, "%s O dataset %d possui %d valores para %d labels.",
				msgRadarData, i, len(ds.Data), len(r.Labels))
		}
		if err := finite(field, ds.Data...); err != nil {
			return err
		}
		if err := errors.ValidateText(fmt.Sprintf("chartData.datasets[%d].label", i), ds.Label); err != nil {
			return err
		}
	}
	return nil
}

func validateGauge(g Gauge) error {
	if err := finite("chartData.score", g.Score); err != nil {
		return err
	}
	if err := finite("chartData.maxScore", g.MaxScore); err != nil {
		return err
	}
	if g.MaxScore <= 0 {
		return errors.Invalid("chartData.maxScore", msgGauge)
	}
	if g.Category.Label == "" || !styles.Valid(g.Category.Color) {
		return errors.Invalid("chartData.category", msgGauge)
	}
	return errors.ValidateText("chartData.category.label", g.Category.Label)
}

func validateBar(b Bar) error {
	switch b.Layout {
	case "", BarLayoutHorizontal, BarLayoutVertical:
	default:
		return errors.Invalid("chartData.layout", "layout deve ser %q ou %q", BarLayoutVertical, BarLayoutHorizontal)
	}
	if err := errors.ValidateText("chartData.xAxisLabel", b.XAxisLabel); err != nil {
		return err
	}
	if err := errors.ValidateText("chartData.yAxisLabel", b.YAxisLabel); err != nil {
		return err
	}
	if len(b.Items) == 0 {
		return errors.Invalid("chartData.data", msgBar)
	}
	return validateItems(b.Items)
}

func validatePie(p Pie) error {
	if len(p.Items) == 0 {
		return errors.Invalid("chartData.data", msgPie)
	}
	if err := validateItems(p.Items); err != nil {
		return err
	}
	for i, it := range p.Items {
		if it.Value < 0 {
			return errors.Invalid(fmt.Sprintf("chartData.data[%d].value", i), "Valores do gráfico de pizza não podem ser negativos.")
		}
	}
	if p.Total() <= 0 {
		return errors.Invalid("chartData.data", "A soma dos valores do gráfico de pizza deve ser maior que zero.")
	}
	return nil
}

func validateItems(items []Item) error {
	for i, it := range items {
		prefix := fmt.Sprintf("chartData.data[%d]", i)
		if it.Name == "" {
			return errors.Invalid(prefix+".name", msgItem)
		}
		if err := errors.ValidateText(prefix+".name", it.Name); err != nil {
			return err
		}
		if err := finite(prefix+".value", it.Value); err != nil {
			return err
		}
		if it.Color != "" && !styles.Valid(it.Color) {
			return errors.Invalid(prefix+".color", "Cor inválida %q em %s.", it.Color, prefix)
		}
	}
	return nil
}

func finite(field string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Invalid(field, "O campo %s deve conter apenas números finitos.", field)
		}
	}
	return nil
}
