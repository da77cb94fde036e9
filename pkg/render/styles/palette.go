package styles

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Neutral is the color of categories missing from the lookup table.
var Neutral = MustParse("#6b7280")

// categories maps the organisation's value categories to their brand colors.
var categories = []struct {
	name  string
	color Color
}{
	{"Inovação", MustParse("#3b82f6")},
	{"Colaboração", MustParse("#10b981")},
	{"Excelência", MustParse("#f59e0b")},
	{"Integridade", MustParse("#ef4444")},
	{"Sustentabilidade", MustParse("#8b5cf6")},
	{"Liderança", MustParse("#06b6d4")},
	{"Responsabilidade", MustParse("#84cc16")},
	{"Transparência", MustParse("#f97316")},
}

var foldedCategories = func() map[string]Color {
	m := make(map[string]Color, len(categories))
	for _, c := range categories {
		m[fold(c.name)] = c.color
	}
	return m
}()

// LookupCategory returns the color for a known category name. Exact matches
// win; otherwise the name is compared ignoring case and diacritics, so
// "inovacao" finds "Inovação".
func LookupCategory(name string) (Color, bool) {
	for _, c := range categories {
		if c.name == name {
			return c.color, true
		}
	}
	c, ok := foldedCategories[fold(name)]
	return c, ok
}

// CategoryColor returns the category color for name, or [Neutral].
func CategoryColor(name string) Color {
	if c, ok := LookupCategory(name); ok {
		return c
	}
	return Neutral
}

// CategoryNames returns the known category names in table order.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.name
	}
	return names
}

// SeriesPalette is cycled through, by index, for series and slices that have
// neither an explicit color nor a known category.
var SeriesPalette = []Color{
	MustParse("#3b82f6"),
	MustParse("#10b981"),
	MustParse("#f59e0b"),
	MustParse("#ef4444"),
	MustParse("#8b5cf6"),
	MustParse("#06b6d4"),
	MustParse("#84cc16"),
	MustParse("#f97316"),
	MustParse("#ec4899"),
	MustParse("#14b8a6"),
}

// SeriesColor returns the palette entry for index i.
func SeriesColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return SeriesPalette[i%len(SeriesPalette)]
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
