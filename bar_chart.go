package chart

import (
	"github.com/tinywasm/chart/layout"
	"github.com/tinywasm/chart/shape"
	"github.com/tinywasm/chart/tooltip"
)

func (c *Chart) barSpec(g geometry) shape.BarSpec {
	return shape.BarSpec{
		Categories: g.data.Categories,
		Values:     g.data.Values,
		Category:   g.cat,
		Value:      g.value,
		Offset:     g.m.LabelChars + g.m.Inset,
		Baseline:   g.m.Baseline,
		Width:      c.cfg.BarWidth,
		Radius:     c.cfg.BarRadius,
		Progress:   c.progress.Progress(),
	}
}

func (c *Chart) renderBar(g geometry, f *Frame) {
	spec := c.barSpec(g)
	paths := c.cache.Get(spec.Key(), func() []shape.Path {
		bars, base := shape.Bars(spec)
		return []shape.Path{bars, base}
	})
	f.Bars, f.BarBase = paths[0], paths[1]

	f.ValueLabels = g.m.BarValueLabels(g.domain.Ticks, g.value)
	f.CategoryLabels = g.m.BarCategoryLabels(g.data.Categories, g.cat, c.meas, c.cfg.BarWidth, c.cfg.VerticalLabels)
	if c.cfg.ShowLines {
		f.Grid = g.m.BarGrid(g.domain.Ticks, g.value, g.cat, c.cfg.BarWidth, c.cfg.LineHeight)
	}
}

// touchBar picks the bar whose center is nearest to x. The tooltip points
// at the top center of the bar as currently drawn.
func (c *Chart) touchBar(g geometry, x float64) (tooltip.Point, shape.Point, bool) {
	spec := c.barSpec(g)
	labels := g.cat.Domain()
	centers := make([]float64, len(labels))
	for i, l := range labels {
		left, _ := spec.X(l)
		centers[i] = left + spec.Width/2
	}

	i, ok := tooltip.Nearest(centers, x)
	if !ok {
		return tooltip.None, shape.Point{}, false
	}
	v, ok := tooltip.Lookup(g.data.Categories, g.data.Values, labels[i])
	if !ok {
		return tooltip.None, shape.Point{}, false
	}
	p := tooltip.Point{Category: labels[i], Value: layout.FormatValue(v)}
	return p, shape.Point{X: centers[i], Y: g.m.Baseline - spec.Height(v)}, true
}
