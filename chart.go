// Package chart draws bar and line charts: it fits scales to a dataset,
// lays out labels and legends, animates the entrance and resolves touches
// into tooltips. The result of every Render is a Frame of plain geometry
// that a renderer paints.
package chart

import (
	"time"

	"github.com/tinywasm/chart/anim"
	"github.com/tinywasm/chart/env"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/layout"
	"github.com/tinywasm/chart/metrics"
	"github.com/tinywasm/chart/scale"
	"github.com/tinywasm/chart/shape"
	"github.com/tinywasm/chart/tooltip"
)

type Kind int

const (
	Bar Kind = iota
	Line
)

func (k Kind) String() string {
	if k == Line {
		return "line"
	}
	return "bar"
}

// Container is the size the host gives the chart. A zero height means
// unbounded.
type Container struct {
	Width  float64
	Height float64
}

// TooltipMeasurer measures tooltip text when it uses another font than
// the axis labels.
type TooltipMeasurer struct {
	metrics.Measurer
}

// Chart is one chart instance. It is owned by a single goroutine, the UI
// loop, and is not safe for concurrent use.
type Chart struct {
	kind      Kind
	cfg       Config
	data      Dataset
	container Container

	meas    metrics.Measurer
	tipMeas metrics.Measurer
	logger  env.Logger

	queue    *anim.FrameQueue
	progress *anim.Driver
	resolver *tooltip.Resolver
	cache    shape.Cache

	deferred  bool
	windowSet bool
}

// New builds a chart. Options are resolved by type: Config, *Config,
// Option, Container, metrics.Measurer, TooltipMeasurer, env.Logger,
// anim.Scheduler.
func New(kind Kind, data Dataset, options ...any) *Chart {
	c := &Chart{
		kind:   kind,
		cfg:    DefaultConfig(),
		logger: env.Log,
	}
	var sched anim.Scheduler

	for _, opt := range options {
		switch v := opt.(type) {
		case Config:
			c.cfg = v
		case *Config:
			if v != nil {
				c.cfg = *v
			}
		case Option:
			v(&c.cfg)
		case Container:
			c.container = v
		case TooltipMeasurer:
			c.tipMeas = v.Measurer
		case env.Logger:
			c.logger = v
		case func(message ...any):
			c.logger = v
		case anim.Scheduler:
			sched = v
		case metrics.Measurer:
			c.meas = v
		}
	}

	if err := c.cfg.Validate(); err != nil {
		c.Log(err)
	}
	if c.meas == nil {
		c.meas = metrics.Basic()
	}
	if c.tipMeas == nil {
		c.tipMeas = c.meas
	}
	if sched == nil {
		sched, c.queue = defaultScheduler()
	}

	c.progress = anim.NewDriver(sched, c.cfg.Duration(kind), easingFor(kind))
	c.resolver = tooltip.NewResolver(anim.NewDriver(sched, c.cfg.TooltipFade, anim.Linear))
	c.setData(data)
	return c
}

func NewBar(data Dataset, options ...any) *Chart {
	return New(Bar, data, options...)
}

func NewLine(data Dataset, options ...any) *Chart {
	return New(Line, data, options...)
}

func easingFor(kind Kind) anim.Easing {
	if kind == Line {
		return anim.EaseInOutCubic
	}
	return anim.EaseInOutExpo
}

// Log writes through the configured logger.
func (c *Chart) Log(message ...any) {
	if c.logger != nil {
		c.logger(message...)
	}
}

func (c *Chart) Kind() Kind        { return c.kind }
func (c *Chart) Config() Config    { return c.cfg }
func (c *Chart) Data() Dataset     { return c.data }
func (c *Chart) Progress() float64 { return c.progress.Progress() }

// Animation exposes the entrance animation driver.
func (c *Chart) Animation() *anim.Driver { return c.progress }

// SetData replaces the dataset. New contents restart the entrance
// animation and drop the tooltip selection; identical contents change
// nothing.
func (c *Chart) SetData(d Dataset) {
	if d.Equal(c.data) {
		return
	}
	c.setData(d)
}

func (c *Chart) setData(d Dataset) {
	if d.Len() != len(d.Categories) || d.Len() != len(d.Values) {
		c.Log(errs.ErrLengthMismatch, len(d.Categories), len(d.Values))
	}
	c.data = Dataset{
		Categories: append([]string(nil), d.Categories...),
		Values:     append([]float64(nil), d.Values...),
	}
	c.cache.Reset()
	c.resolver.Clear()
	c.progress.Trigger()
}

// Resize records the container size.
func (c *Chart) Resize(width, height float64) {
	c.container = Container{Width: width, Height: height}
}

// SetWindow records the visible viewport size used to keep tooltips on
// screen. Until it is called the content area is used.
func (c *Chart) SetWindow(width, height float64) {
	c.windowSet = true
	c.resolver.SetWindow(width, height)
}

// Scroll records the horizontal scroll offset of the viewport.
func (c *Chart) Scroll(x float64) {
	c.resolver.Scroll(x)
}

// Animating reports whether the entrance animation or a tooltip fade still
// has frames to run.
func (c *Chart) Animating() bool {
	return c.progress.State() != anim.Settled || c.resolver.Fading()
}

// Tick advances the built-in frame queue. Hosts that passed their own
// scheduler drive it themselves and Tick does nothing.
func (c *Chart) Tick(now time.Time) {
	if c.queue != nil {
		c.queue.Frame(now)
	}
}

// Settle runs frames until every animation has finished. It only works with
// the built-in frame queue.
func (c *Chart) Settle(now time.Time) time.Time {
	if c.queue == nil {
		return now
	}
	return c.queue.Run(now, 16*time.Millisecond, 10000)
}

// geometry is the per render snapshot of layout and scales.
type geometry struct {
	data   Dataset
	domain scale.Domain
	m      layout.Metrics
	value  scale.Linear
	cat    scale.Point
}

func (c *Chart) ready() bool {
	return c.meas != nil && c.meas.Ready()
}

func (c *Chart) compute() geometry {
	var g geometry
	g.data = c.data.Aligned()
	g.domain = scale.Fit(g.data.Values, c.cfg.YAxisMin, c.cfg.YAxisMax, c.cfg.TickCount)

	in := layout.Input{
		Categories:          g.data.Categories,
		TickLabels:          layout.FormatTicks(g.domain.Ticks),
		MaxValue:            g.domain.MaxObserved,
		Measurer:            c.meas,
		ContainerWidth:      c.container.Width,
		ContainerHeight:     c.container.Height,
		ChartHeight:         c.cfg.ChartHeight,
		BarWidth:            c.cfg.BarWidth,
		InitialInset:        c.cfg.InitialInset,
		LabelSize:           c.cfg.LabelSize,
		LegendSize:          c.cfg.LegendSize,
		YLegend:             c.cfg.YLegend,
		XLegend:             c.cfg.XLegend,
		VerticalLabels:      c.cfg.VerticalLabels,
		VerticalLabelHeight: c.cfg.VerticalLabelHeight,
		MaxCanvasWidth:      c.cfg.MaxCanvasWidth,
	}
	if c.kind == Line {
		in.CategoryWidth = c.cfg.XAxisLength
		g.m = layout.Line(in)
	} else {
		in.CategoryWidth = c.cfg.BarGap
		g.m = layout.Bar(in)
	}

	if g.m.Empty() {
		// no room to draw categories: keep the axis, drop the points
		g.data = Dataset{}
	}
	if !c.windowSet {
		c.resolver.SetWindow(g.m.ContentWidth, g.m.CanvasHeight)
	}

	g.value = g.domain.Value(g.m.ValueRangeStart, g.m.ValueRangeEnd)
	g.cat = scale.NewPoint(g.data.Categories, g.m.CategoryStart, g.m.CategoryEnd)
	return g
}

// Render computes the frame for the current state. While the measurer is
// not ready the frame is Deferred and carries no geometry.
func (c *Chart) Render() Frame {
	f := Frame{Kind: c.kind, Config: c.cfg}
	if !c.ready() {
		if !c.deferred {
			c.Log(errs.ErrFontNotReady)
			c.deferred = true
		}
		f.Deferred = true
		return f
	}
	c.deferred = false

	g := c.compute()
	f.Metrics = g.m
	f.Domain = g.domain
	f.Progress = c.progress.Progress()
	f.YLegend, f.XLegend = g.m.Legends(c.cfg.YLegend, c.cfg.XLegend)

	if c.kind == Line {
		c.renderLine(g, &f)
	} else {
		c.renderBar(g, &f)
	}

	if c.cfg.ShowTooltip {
		if tip, ok := c.resolver.Geometry(c.tipMeas, c.tooltipStyle()); ok {
			f.Tooltip = &tip
		}
	}
	return f
}

func (c *Chart) tooltipStyle() tooltip.Style {
	return tooltip.Style{
		FontSize: c.cfg.TooltipFontSize,
		Padding:  c.cfg.TooltipPadding,
		XLegend:  c.cfg.XLegend,
		YLegend:  c.cfg.YLegend,
	}
}

// Touch selects the data point nearest to x, given in content canvas
// coordinates. It reports false when tooltips are off, the dataset is
// empty or the measurer is not ready.
func (c *Chart) Touch(x float64) (tooltip.Point, bool) {
	if !c.cfg.ShowTooltip || !c.ready() {
		return tooltip.None, false
	}
	g := c.compute()
	if g.data.Empty() {
		return tooltip.None, false
	}

	var (
		p  tooltip.Point
		at shape.Point
		ok bool
	)
	if c.kind == Line {
		p, at, ok = c.touchLine(g, x)
	} else {
		p, at, ok = c.touchBar(g, x)
	}
	if !ok {
		return tooltip.None, false
	}
	c.resolver.Select(p, at)
	return p, true
}

// Selected returns the current tooltip point, tooltip.None when nothing is
// selected.
func (c *Chart) Selected() tooltip.Point {
	return c.resolver.Point()
}
