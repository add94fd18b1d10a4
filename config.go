package chart

import (
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/layout"
	"github.com/tinywasm/chart/scale"
	"github.com/tinywasm/chart/tooltip"
)

const (
	BarAnimationDuration  = 1500 * time.Millisecond
	LineAnimationDuration = 1000 * time.Millisecond
)

// Config is every option of both chart kinds. Options that only one kind
// reads say so.
type Config struct {
	ChartHeight float64

	// BarWidth and BarRadius shape bars. BarGap is the width reserved per
	// category; zero spreads bars over the container.
	BarWidth  float64
	BarRadius float64
	BarGap    float64

	// LineWidth is the stroke width of line charts. XAxisLength is the
	// width per category; zero fits the container.
	LineWidth   float64
	XAxisLength float64

	// InitialInset shifts the first category away from the value axis.
	// Line charts derive it from the widest value when zero.
	InitialInset float64

	YAxisMin *float64
	YAxisMax *float64
	// TickCount is the number of value ticks asked for.
	TickCount int

	LabelSize           float64
	VerticalLabels      bool
	VerticalLabelHeight float64

	ShowLines  bool
	LineHeight float64

	YLegend    string
	XLegend    string
	LegendSize float64

	ShowTooltip     bool
	TooltipFontSize float64
	TooltipPadding  float64
	TooltipFade     time.Duration

	ShowAnimation bool
	// AnimationDuration overrides the per kind default when positive.
	AnimationDuration time.Duration

	MaxCanvasWidth float64

	BarColor         drawing.Color
	LineColor        drawing.Color
	LabelColor       drawing.Color
	GridColor        drawing.Color
	BackgroundColor  drawing.Color
	LegendColor      drawing.Color
	TooltipColor     drawing.Color
	TooltipTextColor drawing.Color
	PointerColor     drawing.Color
}

// DefaultConfig lists every default in one place.
func DefaultConfig() Config {
	return Config{
		ChartHeight:      500,
		BarWidth:         20,
		BarGap:           50,
		LineWidth:        2,
		TickCount:        scale.DefaultTickCount,
		LabelSize:        layout.DefaultLabelSize,
		ShowLines:        true,
		LineHeight:       2,
		LegendSize:       15,
		TooltipFontSize:  tooltip.DefaultFontSize,
		TooltipPadding:   tooltip.DefaultPadding,
		TooltipFade:      tooltip.DefaultFadeDuration,
		ShowAnimation:    true,
		MaxCanvasWidth:   layout.DefaultMaxCanvasWidth,
		BarColor:         drawing.ColorFromHex("d2042d"),
		LineColor:        drawing.ColorFromHex("d2042d"),
		LabelColor:       drawing.ColorBlack,
		GridColor:        drawing.ColorFromHex("d3d3d3"),
		BackgroundColor:  drawing.ColorWhite,
		LegendColor:      drawing.ColorFromHex("808080"),
		TooltipColor:     drawing.ColorFromHex("ff0000"),
		TooltipTextColor: drawing.ColorWhite,
		PointerColor:     drawing.ColorBlack,
	}
}

// Validate replaces invalid values with their defaults. The returned error
// names every corrected field and wraps errs.ErrInvalidConfig; the
// config is usable either way.
func (c *Config) Validate() error {
	def := DefaultConfig()
	var fixed []string

	fix := func(name string, v *float64, d float64) {
		if *v < 0 {
			*v = d
			fixed = append(fixed, name)
		}
	}
	positive := func(name string, v *float64, d float64) {
		if *v <= 0 {
			*v = d
			fixed = append(fixed, name)
		}
	}

	positive("chart height", &c.ChartHeight, def.ChartHeight)
	fix("bar width", &c.BarWidth, def.BarWidth)
	fix("bar radius", &c.BarRadius, 0)
	fix("bar gap", &c.BarGap, def.BarGap)
	fix("line width", &c.LineWidth, def.LineWidth)
	fix("x axis length", &c.XAxisLength, 0)
	fix("initial inset", &c.InitialInset, 0)
	positive("label size", &c.LabelSize, def.LabelSize)
	fix("vertical label height", &c.VerticalLabelHeight, 0)
	fix("line height", &c.LineHeight, def.LineHeight)
	positive("legend size", &c.LegendSize, def.LegendSize)
	positive("tooltip font size", &c.TooltipFontSize, def.TooltipFontSize)
	fix("tooltip padding", &c.TooltipPadding, def.TooltipPadding)
	positive("max canvas width", &c.MaxCanvasWidth, def.MaxCanvasWidth)

	if c.TickCount <= 0 {
		c.TickCount = def.TickCount
		fixed = append(fixed, "tick count")
	}
	if c.TooltipFade < 0 {
		c.TooltipFade = def.TooltipFade
		fixed = append(fixed, "tooltip fade")
	}
	if c.AnimationDuration < 0 {
		c.AnimationDuration = 0
		fixed = append(fixed, "animation duration")
	}
	if c.YAxisMin != nil && c.YAxisMax != nil && *c.YAxisMin >= *c.YAxisMax {
		c.YAxisMin, c.YAxisMax = nil, nil
		fixed = append(fixed, "y axis bounds")
	}

	if len(fixed) == 0 {
		return nil
	}
	return errs.New("chart", strings.Join(fixed, ", "), rune(':'), errs.ErrInvalidConfig)
}

// Duration returns the entrance animation duration for kind, zero when
// animation is off.
func (c Config) Duration(kind Kind) time.Duration {
	if !c.ShowAnimation {
		return 0
	}
	if c.AnimationDuration > 0 {
		return c.AnimationDuration
	}
	if kind == Line {
		return LineAnimationDuration
	}
	return BarAnimationDuration
}

// Option adjusts a Config.
type Option func(*Config)

func Height(h float64) Option {
	return func(c *Config) { c.ChartHeight = h }
}

func BarWidth(w float64) Option {
	return func(c *Config) { c.BarWidth = w }
}

func BarGap(g float64) Option {
	return func(c *Config) { c.BarGap = g }
}

func Radius(r float64) Option {
	return func(c *Config) { c.BarRadius = r }
}

func LineWidth(w float64) Option {
	return func(c *Config) { c.LineWidth = w }
}

func XAxisLength(l float64) Option {
	return func(c *Config) { c.XAxisLength = l }
}

func Inset(d float64) Option {
	return func(c *Config) { c.InitialInset = d }
}

// YAxis fixes the value axis bounds. A nil bound is derived from the data.
func YAxis(min, max *float64) Option {
	return func(c *Config) { c.YAxisMin, c.YAxisMax = min, max }
}

func Legends(y, x string) Option {
	return func(c *Config) { c.YLegend, c.XLegend = y, x }
}

func VerticalLabels(on bool) Option {
	return func(c *Config) { c.VerticalLabels = on }
}

func GridLines(on bool) Option {
	return func(c *Config) { c.ShowLines = on }
}

func Tooltip(on bool) Option {
	return func(c *Config) { c.ShowTooltip = on }
}

func Animation(on bool) Option {
	return func(c *Config) { c.ShowAnimation = on }
}

func MaxCanvasWidth(w float64) Option {
	return func(c *Config) { c.MaxCanvasWidth = w }
}
