//go:build !wasm

package main

import (
	"os"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v2"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/env"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/metrics"
)

// defaultWidth is the container width used when a data file leaves it out.
const defaultWidth = 600

// DataFile is the YAML input of the command line tool. Width defaults to
// defaultWidth.
//
//	type: bar
//	categories: [Jan, Feb, Mar]
//	values: [10, 50, 30]
//	config:
//	  bar_radius: 4
//	  bar_color: "#1e90ff"
type DataFile struct {
	Type       string     `yaml:"type"`
	Categories []string   `yaml:"categories"`
	Values     []float64  `yaml:"values"`
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Font       string     `yaml:"font"`
	Config     FileConfig `yaml:"config"`
}

// FileConfig mirrors chart.Config. Zero values keep the defaults, except
// for the booleans which are pointers so false can be told from unset.
type FileConfig struct {
	ChartHeight         float64       `yaml:"chart_height"`
	BarWidth            float64       `yaml:"bar_width"`
	BarRadius           float64       `yaml:"bar_radius"`
	BarGap              float64       `yaml:"bar_gap"`
	LineWidth           float64       `yaml:"line_width"`
	XAxisLength         float64       `yaml:"x_axis_length"`
	InitialInset        float64       `yaml:"initial_inset"`
	YAxisMin            *float64      `yaml:"y_axis_min"`
	YAxisMax            *float64      `yaml:"y_axis_max"`
	TickCount           int           `yaml:"tick_count"`
	LabelSize           float64       `yaml:"label_size"`
	VerticalLabels      *bool         `yaml:"vertical_labels"`
	VerticalLabelHeight float64       `yaml:"vertical_label_height"`
	ShowLines           *bool         `yaml:"show_lines"`
	LineHeight          float64       `yaml:"line_height"`
	YLegend             string        `yaml:"y_legend"`
	XLegend             string        `yaml:"x_legend"`
	LegendSize          float64       `yaml:"legend_size"`
	ShowTooltip         *bool         `yaml:"show_tooltip"`
	TooltipFontSize     float64       `yaml:"tooltip_font_size"`
	TooltipPadding      float64       `yaml:"tooltip_padding"`
	TooltipFade         time.Duration `yaml:"tooltip_fade"`
	ShowAnimation       *bool         `yaml:"show_animation"`
	AnimationDuration   time.Duration `yaml:"animation_duration"`
	MaxCanvasWidth      float64       `yaml:"max_canvas_width"`

	BarColor         string `yaml:"bar_color"`
	LineColor        string `yaml:"line_color"`
	LabelColor       string `yaml:"label_color"`
	GridColor        string `yaml:"grid_color"`
	BackgroundColor  string `yaml:"background_color"`
	LegendColor      string `yaml:"legend_color"`
	TooltipColor     string `yaml:"tooltip_color"`
	TooltipTextColor string `yaml:"tooltip_text_color"`
	PointerColor     string `yaml:"pointer_color"`
}

// LoadDataFile reads and parses a YAML data file.
func LoadDataFile(path string) (*DataFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New("data file", path, rune(':'), err)
	}
	return ParseDataFile(data)
}

func ParseDataFile(data []byte) (*DataFile, error) {
	var f DataFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.New("data file", rune(':'), err)
	}
	return &f, nil
}

// Kind resolves the chart type, overridden by flag when not empty.
func (f *DataFile) Kind(flag string) (chart.Kind, error) {
	t := f.Type
	if flag != "" {
		t = flag
	}
	switch strings.ToLower(t) {
	case "", "bar":
		return chart.Bar, nil
	case "line":
		return chart.Line, nil
	}
	return chart.Bar, errs.New("unknown chart type", t)
}

func (f *DataFile) Dataset() chart.Dataset {
	return chart.Dataset{Categories: f.Categories, Values: f.Values}
}

// Options builds the chart options: config, container and measurers. Fonts
// are loaded before returning so the first render is not deferred.
func (f *DataFile) Options(logger env.Logger) ([]any, error) {
	cfg := f.Config.Apply(chart.DefaultConfig())
	width := f.Width
	if width <= 0 {
		width = defaultWidth
	}
	opts := []any{cfg, chart.Container{Width: width, Height: f.Height}, logger}

	if f.Font == "" {
		return opts, nil
	}
	fm := metrics.NewFontManager(env.ReadFile, logger).Register("chart", f.Font)
	labels := fm.Font("chart", cfg.LabelSize)
	tips := fm.Font("chart", cfg.TooltipFontSize)
	if err := fm.Load(); err != nil {
		return nil, err
	}
	return append(opts, labels, chart.TooltipMeasurer{Measurer: tips}), nil
}

// Apply copies every set field over base.
func (fc FileConfig) Apply(base chart.Config) chart.Config {
	num := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	flag := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	color := func(dst *drawing.Color, v string) {
		if v != "" {
			*dst = drawing.ColorFromHex(strings.TrimPrefix(v, "#"))
		}
	}

	num(&base.ChartHeight, fc.ChartHeight)
	num(&base.BarWidth, fc.BarWidth)
	num(&base.BarRadius, fc.BarRadius)
	num(&base.BarGap, fc.BarGap)
	num(&base.LineWidth, fc.LineWidth)
	num(&base.XAxisLength, fc.XAxisLength)
	num(&base.InitialInset, fc.InitialInset)
	num(&base.LabelSize, fc.LabelSize)
	num(&base.VerticalLabelHeight, fc.VerticalLabelHeight)
	num(&base.LineHeight, fc.LineHeight)
	num(&base.LegendSize, fc.LegendSize)
	num(&base.TooltipFontSize, fc.TooltipFontSize)
	num(&base.TooltipPadding, fc.TooltipPadding)
	num(&base.MaxCanvasWidth, fc.MaxCanvasWidth)

	if fc.YAxisMin != nil {
		base.YAxisMin = fc.YAxisMin
	}
	if fc.YAxisMax != nil {
		base.YAxisMax = fc.YAxisMax
	}
	if fc.TickCount != 0 {
		base.TickCount = fc.TickCount
	}
	if fc.YLegend != "" {
		base.YLegend = fc.YLegend
	}
	if fc.XLegend != "" {
		base.XLegend = fc.XLegend
	}
	if fc.TooltipFade != 0 {
		base.TooltipFade = fc.TooltipFade
	}
	if fc.AnimationDuration != 0 {
		base.AnimationDuration = fc.AnimationDuration
	}

	flag(&base.VerticalLabels, fc.VerticalLabels)
	flag(&base.ShowLines, fc.ShowLines)
	flag(&base.ShowTooltip, fc.ShowTooltip)
	flag(&base.ShowAnimation, fc.ShowAnimation)

	color(&base.BarColor, fc.BarColor)
	color(&base.LineColor, fc.LineColor)
	color(&base.LabelColor, fc.LabelColor)
	color(&base.GridColor, fc.GridColor)
	color(&base.BackgroundColor, fc.BackgroundColor)
	color(&base.LegendColor, fc.LegendColor)
	color(&base.TooltipColor, fc.TooltipColor)
	color(&base.TooltipTextColor, fc.TooltipTextColor)
	color(&base.PointerColor, fc.PointerColor)
	return base
}
