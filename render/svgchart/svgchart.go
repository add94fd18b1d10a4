// Package svgchart paints chart frames as SVG documents with svgo.
package svgchart

import (
	"bytes"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/tinywasm/fmt"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/layout"
	"github.com/tinywasm/chart/shape"
	"github.com/tinywasm/chart/tooltip"
)

// FontFamily sets the font-family of every text element.
type FontFamily string

const DefaultFontFamily FontFamily = "sans-serif"

type painter struct {
	canvas *svg.SVG
	frame  chart.Frame
	cfg    chart.Config
	family FontFamily
}

// Write paints f to w. Deferred frames have no geometry yet and return
// errs.ErrFontNotReady without writing anything.
func Write(w io.Writer, f chart.Frame, options ...any) error {
	if f.Deferred {
		return errs.ErrFontNotReady
	}
	p := &painter{canvas: svg.New(w), frame: f, cfg: f.Config, family: DefaultFontFamily}
	for _, opt := range options {
		switch v := opt.(type) {
		case FontFamily:
			p.family = v
		}
	}
	p.paint()
	return nil
}

// Bytes paints f into a new buffer.
func Bytes(f chart.Frame, options ...any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, options...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *painter) paint() {
	c := p.canvas
	f := p.frame
	width, height := px(f.Width()), px(f.Height())

	c.Start(width, height)
	c.Rect(0, 0, width, height, fill(p.cfg.BackgroundColor))
	c.Gstyle(fmt.Sprintf("font-family:%s", string(p.family)))

	if f.YLegend != nil {
		p.label(*f.YLegend, p.cfg.LegendSize, p.cfg.LegendColor)
	}

	c.Translate(px(f.AxisX()), 0)
	for _, l := range f.ValueLabels {
		p.label(l, p.cfg.LabelSize, p.cfg.LabelColor, "dominant-baseline:middle")
	}
	c.Gend()

	c.Translate(px(f.ContentX()), 0)
	p.grid()
	if f.Kind == chart.Line {
		p.line()
	} else {
		p.bars()
	}
	for _, l := range f.CategoryLabels {
		p.label(l, p.cfg.LabelSize, p.cfg.LabelColor)
	}
	if f.Tooltip != nil {
		p.tooltip(*f.Tooltip)
	}
	c.Gend()

	if f.XLegend != nil {
		p.label(*f.XLegend, p.cfg.LegendSize, p.cfg.LegendColor)
	}

	c.Gend()
	c.End()
}

func (p *painter) grid() {
	for _, r := range p.frame.Grid {
		if r.Dashed {
			p.canvas.Path(fmt.Sprintf("M%s %sH%s", num(r.X), num(r.Y), num(r.X+r.Width)),
				"fill:none;stroke-dasharray:4 4;"+stroke(p.cfg.GridColor, 1))
			continue
		}
		p.canvas.Path(rectPath(r.X, r.Y-r.Height/2, r.Width, r.Height), fill(p.cfg.GridColor))
	}
}

func (p *painter) bars() {
	if !p.frame.BarBase.Empty() {
		p.canvas.Path(p.frame.BarBase.SVG(), fill(p.cfg.BarColor))
	}
	if !p.frame.Bars.Empty() {
		p.canvas.Path(p.frame.Bars.SVG(), fill(p.cfg.BarColor))
	}
}

func (p *painter) line() {
	if p.frame.Line.Empty() {
		return
	}
	p.canvas.Path(p.frame.Line.SVG(),
		"fill:none;stroke-linecap:round;stroke-linejoin:round;"+stroke(p.cfg.LineColor, p.cfg.LineWidth))
}

func (p *painter) tooltip(g tooltip.Geometry) {
	c := p.canvas
	c.Group(fmt.Sprintf(`opacity="%s"`, num(g.Opacity)))

	b := g.Box
	var box shape.Path
	box.AddRect(b.X, b.Y, b.W, b.H, b.Radius)
	c.Path(box.SVG(), fill(p.cfg.TooltipColor))

	var tip shape.Path
	tip.MoveTo(g.Tip[0].X, g.Tip[0].Y)
	tip.LineTo(g.Tip[1].X, g.Tip[1].Y)
	tip.LineTo(g.Tip[2].X, g.Tip[2].Y)
	tip.Close()
	c.Path(tip.SVG(), fill(p.cfg.TooltipColor))

	style := fmt.Sprintf("font-size:%spx;", num(p.cfg.TooltipFontSize)) + fill(p.cfg.TooltipTextColor)
	c.Text(px(g.Top.X), px(g.Top.Y), g.Top.Content, style)
	c.Text(px(g.Bottom.X), px(g.Bottom.Y), g.Bottom.Content, style)

	if p.frame.Kind == chart.Line {
		c.Circle(px(g.Pointer.X), px(g.Pointer.Y), int(math.Max(1, math.Round(g.Pointer.R))), fill(p.cfg.PointerColor))
	}
	c.Gend()
}

func (p *painter) label(l layout.Label, size float64, color drawing.Color, extra ...string) {
	style := fmt.Sprintf("font-size:%spx;text-anchor:%s;", num(size), anchor(l.Anchor)) + fill(color)
	for _, e := range extra {
		style += ";" + e
	}
	attrs := []string{style}
	if l.Rotation != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%s %s %s)"`, num(l.Rotation), num(l.OriginX), num(l.OriginY)))
	}
	p.canvas.Text(px(l.X), px(l.Y), l.Text, attrs...)
}

func anchor(a string) string {
	if a == "" {
		return layout.AnchorStart
	}
	return a
}

func rectPath(x, y, w, h float64) string {
	var r shape.Path
	r.AddRect(x, y, w, h, 0)
	return r.SVG()
}

// fill and stroke render a color with its alpha as a separate opacity.
func fill(c drawing.Color) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%s", rgb(c), num(float64(c.A)/255))
}

func stroke(c drawing.Color, width float64) string {
	return fmt.Sprintf("stroke:%s;stroke-opacity:%s;stroke-width:%s", rgb(c), num(float64(c.A)/255), num(width))
}

func rgb(c drawing.Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", int(c.R), int(c.G), int(c.B))
}

func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func px(v float64) int {
	return int(math.Round(v))
}
