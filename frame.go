package chart

import (
	"github.com/tinywasm/chart/layout"
	"github.com/tinywasm/chart/scale"
	"github.com/tinywasm/chart/shape"
	"github.com/tinywasm/chart/tooltip"
)

// Frame is the geometry of one render.
//
// The frame is split in three columns: the value legend, the value axis
// labels, then the scrollable content. ValueLabels use the value axis
// column coordinates. Paths, category labels, grid rules and the tooltip
// use content coordinates. Legends use frame coordinates.
type Frame struct {
	Kind     Kind
	Deferred bool
	Config   Config
	Metrics  layout.Metrics
	Domain   scale.Domain
	Progress float64

	// Bars holds one rectangle per category. BarBase squares the bottom
	// corners of rounded bars.
	Bars    shape.Path
	BarBase shape.Path

	// Line is the visible part of the line path, Points the data points.
	Line   shape.Path
	Points []shape.Point

	ValueLabels    []layout.Label
	CategoryLabels []layout.Label
	Grid           []layout.Rule

	YLegend *layout.Label
	XLegend *layout.Label

	Tooltip *tooltip.Geometry
}

// AxisX is the left edge of the value axis column.
func (f Frame) AxisX() float64 {
	return f.Metrics.YLegendWidth
}

// ContentX is the left edge of the content column.
func (f Frame) ContentX() float64 {
	return f.Metrics.YLegendWidth + f.Metrics.AxisLabelReservedWidth
}

// Width and Height are the full frame size, legends included.
func (f Frame) Width() float64 {
	return f.Metrics.CanvasWidth
}

func (f Frame) Height() float64 {
	return f.Metrics.CanvasHeight + f.Metrics.XLegendHeight
}
