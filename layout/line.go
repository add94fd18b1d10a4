package layout

import (
	"math"
	"unicode/utf8"

	"github.com/tinywasm/chart/metrics"
)

const (
	// LineLabelGap separates the value axis from the first point and
	// rotated category labels from their position.
	LineLabelGap = 10
	// LineGridStart is where dashed reference lines begin.
	LineGridStart = 10

	lineAxisCharWidth    = 15
	lineContentCharWidth = 10
	lineLegendFactor     = 2.6
	lineNoLegendFactor   = 0.5
)

// Line computes the layout of a line chart. The value range runs from the
// bottom of the plot up to 1.5 label sizes below the top.
func Line(in Input) Metrics {
	var m Metrics
	n := len(in.Categories)
	labelSize := in.labelSize()
	yChars := float64(utf8.RuneCountInString(FormatValue(in.MaxValue)))

	m.ContentHeight = CanvasHeight(in.ContainerHeight, in.ChartHeight)
	m.CanvasHeight = m.ContentHeight

	// One extra pixel keeps rotated labels clear of the plot.
	maxLabelWidth := metrics.MaxWidth(in.Measurer, in.Categories) + 1
	switch {
	case !in.VerticalLabels:
		m.PlotHeight = m.ContentHeight - 2*labelSize
	case in.VerticalLabelHeight > 0:
		m.PlotHeight = m.ContentHeight - in.VerticalLabelHeight
	default:
		m.PlotHeight = m.ContentHeight - maxLabelWidth
	}
	m.PlotHeight = nonNegative(m.PlotHeight)
	m.Baseline = m.PlotHeight
	m.ValueRangeStart, m.ValueRangeEnd = m.PlotHeight, 1.5*labelSize
	m.AxisLabelReservedHeight = m.ContentHeight - m.PlotHeight

	m.AxisLabelReservedWidth = AxisLabelReservedWidth(in.Measurer, in.TickLabels)

	m.Inset = in.InitialInset
	if m.Inset <= 0 {
		m.Inset = yChars + LineLabelGap
	}
	m.CategoryStart = m.Inset

	factor := lineNoLegendFactor
	if in.YLegend != "" {
		factor = lineLegendFactor
	}
	switch {
	case n == 0:
	case in.CategoryWidth > 0:
		m.ContentWidth = math.Min(in.CategoryWidth*float64(n)+m.Inset, in.maxCanvasWidth())
		m.CategoryEnd = m.ContentWidth - m.Inset
	default:
		reserve := 0.5
		if in.YLegend != "" {
			reserve = 3
		}
		m.ContentWidth = nonNegative(in.ContainerWidth - yChars*lineContentCharWidth - labelSize*reserve)
		m.CategoryEnd = in.ContainerWidth - yChars*lineAxisCharWidth - labelSize*1.1*factor
	}
	m.clampCategoryRange()

	if in.VerticalLabels {
		m.LabelBaseline = m.PlotHeight
	} else {
		m.LabelBaseline = m.ContentHeight - labelSize/2
	}
	if m.ContentWidth > 0 {
		m.GridStart, m.GridEnd = LineGridStart, m.ContentWidth
	}

	m.LegendSize = in.legendSize()
	m.YLegendWidth = YLegendWidth(in.YLegend, m.LegendSize)
	m.XLegendHeight = XLegendHeight(in.XLegend, m.LegendSize)
	m.CanvasWidth = m.YLegendWidth + m.AxisLabelReservedWidth + m.ContentWidth
	return m
}
