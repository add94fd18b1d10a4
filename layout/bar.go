package layout

import (
	"math"

	"github.com/tinywasm/chart/metrics"
)

const (
	BarBottomMargin = 14
	BarAxisPosition = 25
	BarInitialSpace = 10
)

// Bar computes the layout of a bar chart. Bars grow upward from Baseline
// and the value range is [0, PlotHeight].
func Bar(in Input) Metrics {
	var m Metrics
	n := len(in.Categories)

	m.ContentHeight = CanvasHeight(in.ContainerHeight, in.ChartHeight)
	m.PlotHeight = nonNegative(m.ContentHeight - 2*BarBottomMargin)
	m.Baseline = m.PlotHeight + BarAxisPosition
	m.ValueRangeStart, m.ValueRangeEnd = 0, m.PlotHeight

	m.LabelChars = LabelChars(in.TickLabels)
	m.AxisLabelReservedWidth = AxisLabelReservedWidth(in.Measurer, in.TickLabels)
	m.Inset = in.InitialInset

	switch {
	case n == 0:
	case in.CategoryWidth > 0:
		m.ContentWidth = ContentWidth(in.CategoryWidth, in.InitialInset, n, in.maxCanvasWidth())
		m.CategoryEnd = m.ContentWidth - 2*in.BarWidth
	default:
		m.ContentWidth = nonNegative(in.ContainerWidth)
		m.CategoryEnd = m.ContentWidth
	}
	m.CategoryStart = m.LabelChars
	m.clampCategoryRange()

	if in.VerticalLabels {
		maxW := metrics.MaxWidth(in.Measurer, in.Categories)
		m.CanvasHeight = math.Floor(m.ContentHeight + BarBottomMargin + maxW)
		m.LabelBaseline = m.ContentHeight
	} else {
		maxH := metrics.MaxHeight(in.Measurer, in.Categories)
		m.LabelBaseline = math.Floor(m.ContentHeight + BarBottomMargin + maxH)
		m.CanvasHeight = m.LabelBaseline + BarInitialSpace
	}
	m.AxisLabelReservedHeight = m.CanvasHeight - m.ContentHeight

	m.LegendSize = in.legendSize()
	m.YLegendWidth = YLegendWidth(in.YLegend, m.LegendSize)
	m.XLegendHeight = XLegendHeight(in.XLegend, m.LegendSize)
	m.CanvasWidth = m.YLegendWidth + m.AxisLabelReservedWidth + m.ContentWidth
	return m
}

// BarX returns the left edge of the bar at category position pos.
func (m Metrics) BarX(pos float64) float64 {
	return pos + m.LabelChars + m.Inset
}
