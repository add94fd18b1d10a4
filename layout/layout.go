// Package layout derives canvas and content sizes from label measurements.
package layout

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/tinywasm/fmt"

	"github.com/tinywasm/chart/metrics"
)

const (
	// MaxCanvasWidthAndroid and MaxCanvasWidthIOS are the widest canvases
	// the mobile texture limits accept.
	MaxCanvasWidthAndroid = 5948
	MaxCanvasWidthIOS     = 2718

	// DefaultMaxCanvasWidth applies when the input does not set one.
	DefaultMaxCanvasWidth = MaxCanvasWidthIOS

	// AxisLabelMargin is added to the widest value-axis label.
	AxisLabelMargin = 20

	// LegendLineFactor scales the legend font size into the height a
	// horizontal legend reserves.
	LegendLineFactor = 1.5

	// DefaultLabelSize is the label font size used when none is set.
	DefaultLabelSize = 18
)

// Input carries everything the calculators measure.
type Input struct {
	Categories []string
	// TickLabels are the formatted value-axis tick labels.
	TickLabels []string
	// MaxValue is the largest observed data value.
	MaxValue float64
	Measurer metrics.Measurer

	// ContainerWidth and ContainerHeight are the host viewport size. A
	// non-positive height means unbounded.
	ContainerWidth  float64
	ContainerHeight float64

	ChartHeight float64
	// CategoryWidth is the fixed width per category. Zero spreads the
	// categories over the container width.
	CategoryWidth float64
	BarWidth      float64
	InitialInset  float64
	LabelSize     float64
	LegendSize    float64

	YLegend string
	XLegend string

	VerticalLabels bool
	// VerticalLabelHeight overrides the measured extent of rotated
	// category labels on line charts.
	VerticalLabelHeight float64
	MaxCanvasWidth      float64
}

// Metrics is the derived geometry of one render.
type Metrics struct {
	// CanvasWidth and CanvasHeight bound everything drawn, including
	// axis labels and legends.
	CanvasWidth  float64
	CanvasHeight float64

	// ContentWidth is the scrollable plot width, ContentHeight the height
	// before category labels are added.
	ContentWidth  float64
	ContentHeight float64

	AxisLabelReservedWidth  float64
	AxisLabelReservedHeight float64

	PlotHeight float64

	// Baseline is the y coordinate bars grow from. Line charts use the
	// bottom of the value range.
	Baseline float64

	ValueRangeStart float64
	ValueRangeEnd   float64
	CategoryStart   float64
	CategoryEnd     float64

	// LabelChars is the character count of the longest value label. Bar
	// charts offset the category range by it.
	LabelChars float64
	Inset      float64

	// LabelBaseline is the y coordinate of category labels.
	LabelBaseline float64

	// GridStart and GridEnd bound the dashed reference lines of line
	// charts.
	GridStart float64
	GridEnd   float64

	YLegendWidth  float64
	XLegendHeight float64
	LegendSize    float64
}

// Empty reports a layout without room for categories. Its category range
// is collapsed to zero and nothing is drawn in the content area.
func (m Metrics) Empty() bool {
	return m.ContentWidth <= 0
}

// clampCategoryRange keeps the category range inside the content: collapsed
// to zero when there is no content width, never running backwards
// otherwise.
func (m *Metrics) clampCategoryRange() {
	if m.Empty() {
		m.CategoryStart, m.CategoryEnd = 0, 0
		return
	}
	m.CategoryStart = math.Min(m.CategoryStart, m.ContentWidth)
	m.CategoryEnd = math.Min(math.Max(m.CategoryEnd, m.CategoryStart), m.ContentWidth)
}

// CanvasHeight applies the container hint to the configured height.
func CanvasHeight(containerHint, configured float64) float64 {
	if containerHint <= 0 {
		return configured
	}
	return math.Min(containerHint, configured)
}

// StripDecimal removes the decimal separator from a tick label before it is
// measured.
func StripDecimal(label string) string {
	return fmt.Convert(label).Replace(".", "").String()
}

// AxisLabelReservedWidth returns the widest stripped tick label plus
// AxisLabelMargin.
func AxisLabelReservedWidth(m metrics.Measurer, ticks []string) float64 {
	stripped := make([]string, len(ticks))
	for i, t := range ticks {
		stripped[i] = StripDecimal(t)
	}
	return metrics.MaxWidth(m, stripped) + AxisLabelMargin
}

// LabelChars returns the character count of the longest stripped label.
func LabelChars(ticks []string) float64 {
	n := 0
	for _, t := range ticks {
		if c := utf8.RuneCountInString(StripDecimal(t)); c > n {
			n = c
		}
	}
	return float64(n)
}

// ContentWidth returns perCategory*count clamped to max. Crossing the
// ceiling is decided with the inset included.
func ContentWidth(perCategory, inset float64, count int, max float64) float64 {
	if count <= 0 {
		return 0
	}
	w := perCategory * float64(count)
	if w+inset > max {
		return max
	}
	return w
}

// YLegendWidth is the width a rotated value-axis legend reserves.
func YLegendWidth(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size
}

// XLegendHeight is the height a horizontal category legend reserves.
func XLegendHeight(text string, size float64) float64 {
	if text == "" {
		return 0
	}
	return size * LegendLineFactor
}

// FormatValue renders a value the way axis and tooltip labels show it.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTicks formats every tick with FormatValue.
func FormatTicks(ticks []float64) []string {
	out := make([]string, len(ticks))
	for i, t := range ticks {
		out[i] = FormatValue(t)
	}
	return out
}

func (in Input) maxCanvasWidth() float64 {
	if in.MaxCanvasWidth > 0 {
		return in.MaxCanvasWidth
	}
	return DefaultMaxCanvasWidth
}

func (in Input) labelSize() float64 {
	if in.LabelSize > 0 {
		return in.LabelSize
	}
	return DefaultLabelSize
}

func (in Input) legendSize() float64 {
	if in.LegendSize > 0 {
		return in.LegendSize
	}
	return in.labelSize()
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
