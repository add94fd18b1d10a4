package chart

import (
	"github.com/tinywasm/chart/layout"
	"github.com/tinywasm/chart/shape"
	"github.com/tinywasm/chart/tooltip"
)

func (c *Chart) lineSpec(g geometry) shape.LineSpec {
	return shape.LineSpec{
		Categories: g.data.Categories,
		Values:     g.data.Values,
		Category:   g.cat,
		Value:      g.value,
		Width:      c.cfg.LineWidth,
	}
}

func (c *Chart) renderLine(g geometry, f *Frame) {
	spec := c.lineSpec(g)
	f.Points = spec.Points()
	paths := c.cache.Get(spec.Key(), func() []shape.Path {
		return []shape.Path{shape.Line(f.Points)}
	})
	f.Line = paths[0].Trim(c.progress.Progress())

	f.ValueLabels = g.m.LineValueLabels(g.domain.Ticks, g.value)
	f.CategoryLabels = g.m.LineCategoryLabels(g.cat, c.meas, c.cfg.LabelSize, c.cfg.VerticalLabels)
	if c.cfg.ShowLines {
		f.Grid = g.m.LineGrid(g.domain.Ticks, g.value)
	}
}

// touchLine picks the category nearest to x and points at its data point.
func (c *Chart) touchLine(g geometry, x float64) (tooltip.Point, shape.Point, bool) {
	labels := g.cat.Domain()
	i, ok := tooltip.Nearest(g.cat.Positions(), x)
	if !ok {
		return tooltip.None, shape.Point{}, false
	}
	v, ok := tooltip.Lookup(g.data.Categories, g.data.Values, labels[i])
	if !ok {
		return tooltip.None, shape.Point{}, false
	}
	pos, _ := g.cat.Scale(labels[i])
	p := tooltip.Point{Category: labels[i], Value: layout.FormatValue(v)}
	return p, shape.Point{X: pos, Y: g.value.Scale(v)}, true
}
