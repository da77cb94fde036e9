package styles

// Shared chart theme. The values reproduce the look of the dashboard the
// service was built for, so exported charts match what users see on screen.
var (
	Background = RGB(255, 255, 255)
	White      = RGB(255, 255, 255)
	TitleColor = MustParse("#1f2937")
	AxisText   = MustParse("#64748b")
	Grid       = RGB(0, 0, 0).WithAlpha(0.1)

	RadarStroke     = MustParse("#2563eb")
	RadarFill       = RGB(59, 130, 246).WithAlpha(0.4)
	RadarGrid       = RGB(100, 116, 139).WithAlpha(0.2)
	RadarPointLabel = MustParse("#64748b")

	GaugeTrack     = MustParse("#f1f5f9")
	GaugeScoreText = MustParse("#1f2937")
	GaugeBadgeText = White

	BarFallback = Neutral
	SliceBorder = White
)

// Theme sizes in pixels.
const (
	TitleFontSize = 16.0

	RadarStrokeWidth    = 2.0
	RadarPointRadius    = 3.0
	RadarGridWidth      = 1.0
	RadarLabelFontSize  = 12.0
	RadarLabelPadding   = 15.0
	RadarFillAlpha      = 0.4
	RadarScaleMax       = 10.0
	RadarScaleStep      = 2.0
	RadarLabelMarginEms = 3.0
	GaugeScoreFontSize  = 32.0
	GaugeBadgeFontSize  = 11.0
	GaugeBadgePadding   = 16.0
	GaugeBadgeHeight    = 20.0
	GaugeCutout         = 0.75
	GaugeScoreOffsetY   = -15.0
	GaugeBadgeOffsetY   = 20.0
	BarBorderWidth      = 1.0
	BarBorderRadius     = 4.0
	SliceBorderWidth    = 2.0
	LegendPadding       = 20.0
	LegendFontSize      = 12.0
	LegendMarkerRadius  = 5.0
	AxisLabelFontSize   = 12.0
	AxisTitleFontSize   = 12.0
)
