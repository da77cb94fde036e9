package chart_test

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/errors"
)

func ExampleParse() {
	raw := json.RawMessage(`{
		"score": 8.2,
		"maxScore": 10,
		"category": {"label": "Inovação", "color": "#3b82f6"}
	}`)

	desc, err := chart.Parse("radialBar", raw)
	if err != nil {
		fmt.Println(err)
		return
	}

	g := desc.(chart.Gauge)
	fmt.Println(desc.Kind())
	fmt.Printf("%.0f%%\n", g.Percentage())
	// Output:
	// radialBar
	// 82%
}

func ExampleParse_invalid() {
	_, err := chart.Parse("radar", json.RawMessage(`{"labels": ["a", "b"]}`))

	fmt.Println(errors.GetCode(err))
	fmt.Println(errors.UserMessage(err))
	// Output:
	// INVALID_INPUT
	// Dados do gráfico radar inválidos. Verifique se você forneceu labels e datasets.
}
