package chart

// Description is a validated chart description. The set of implementations
// is closed: [Radar], [Gauge], [Bar] and [Pie].
type Description interface {
	// Kind returns the chart variant.
	Kind() Kind
	// Options returns the optional title and canvas dimensions.
	Options() RenderOptions

	description()
}

// RenderOptions holds the per-request presentation overrides shared by every
// kind. Zero values mean "use the kind's default".
type RenderOptions struct {
	Title  string `json:"title,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Radar is a multi-axis chart: one axis per label, one polygon per dataset.
type Radar struct {
	Labels   []string
	Datasets []Dataset
	RenderOptions
}

// Dataset is one radar series. len(Data) always equals the number of labels.
type Dataset struct {
	Label string
	Data  []float64
}

// Gauge is a half-doughnut showing Score out of MaxScore, tagged with a
// category badge. It is requested with the radialBar chart type.
type Gauge struct {
	Score    float64
	MaxScore float64
	Category Category
	RenderOptions
}

// Category names the value a gauge measures and the color it is drawn in.
type Category struct {
	Label string
	Color string
}

// Percentage returns Score/MaxScore*100 clamped to [0, 100].
func (g Gauge) Percentage() float64 {
	if g.MaxScore <= 0 {
		return 0
	}
	p := g.Score / g.MaxScore * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// BarLayout selects the bar orientation. The names follow the convention of
// the dashboard that produces these requests: "vertical" stacks the category
// axis vertically, which yields horizontal bars.
type BarLayout string

const (
	BarLayoutHorizontal BarLayout = "horizontal"
	BarLayoutVertical   BarLayout = "vertical"
)

// HorizontalBars reports whether bars extend along the x axis.
func (l BarLayout) HorizontalBars() bool { return l == BarLayoutVertical }

// Bar is a categorical bar chart.
type Bar struct {
	Items      []Item
	Layout     BarLayout
	XAxisLabel string
	YAxisLabel string
	RenderOptions
}

// Pie is a categorical pie chart.
type Pie struct {
	Items []Item
	RenderOptions
}

// Total returns the sum of all slice values.
func (p Pie) Total() float64 {
	var sum float64
	for _, it := range p.Items {
		sum += it.Value
	}
	return sum
}

// Item is one named value of a bar or pie chart. Color is an optional hex
// color; empty means "pick from the palette".
type Item struct {
	Name  string
	Value float64
	Color string
}

func (Radar) Kind() Kind { return KindRadar }
func (Gauge) Kind() Kind { return KindRadialBar }
func (Bar) Kind() Kind   { return KindBar }
func (Pie) Kind() Kind   { return KindPie }

func (r Radar) Options() RenderOptions { return r.RenderOptions }
func (g Gauge) Options() RenderOptions { return g.RenderOptions }
func (b Bar) Options() RenderOptions   { return b.RenderOptions }
func (p Pie) Options() RenderOptions   { return p.RenderOptions }

func (Radar) description() {}
func (Gauge) description() {}
func (Bar) description()   {}
func (Pie) description()   {}
