package chart

import (
	"strings"

	"github.com/matzehuels/chartpress/pkg/errors"
)

// Kind identifies a chart variant.
type Kind string

// Supported chart kinds. The string values are the wire values accepted in
// the chartType field of a request.
const (
	KindRadar     Kind = "radar"
	KindRadialBar Kind = "radialBar"
	KindBar       Kind = "bar"
	KindPie       Kind = "pie"
)

// Kinds lists the supported kinds in the order they are reported to clients.
var Kinds = []Kind{KindRadar, KindRadialBar, KindBar, KindPie}

// aliases maps accepted synonyms onto canonical kinds.
var aliases = map[string]Kind{
	"gauge": KindRadialBar,
}

// String returns the wire value of the kind.
func (k Kind) String() string { return string(k) }

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	for _, s := range Kinds {
		if s == k {
			return true
		}
	}
	return false
}

// KindNames returns the comma separated list of supported kinds.
func KindNames() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// ParseKind resolves a chartType value to a Kind. Matching is exact for the
// canonical names; the "gauge" synonym maps to [KindRadialBar]. An empty
// value is a validation error, anything else unknown is an
// ErrCodeUnsupportedKind error naming the allowed set.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.Invalid("chartType", "chartType e chartData são obrigatórios")
	}
	if k := Kind(s); k.Valid() {
		return k, nil
	}
	if k, ok := aliases[strings.ToLower(s)]; ok {
		return k, nil
	}
	return "", unsupported()
}

func unsupported() *errors.Error {
	return &errors.Error{
		Code:    errors.ErrCodeUnsupportedKind,
		Field:   "chartType",
		Message: "Tipo de gráfico não suportado. Tipos suportados: " + KindNames(),
	}
}
