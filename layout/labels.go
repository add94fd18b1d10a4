package layout

import (
	"unicode/utf8"

	"github.com/tinywasm/chart/metrics"
	"github.com/tinywasm/chart/scale"
)

const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
)

// Label is a positioned piece of text. Rotation is in degrees around
// (OriginX, OriginY).
type Label struct {
	Text     string
	X, Y     float64
	Rotation float64
	OriginX  float64
	OriginY  float64
	Anchor   string
}

// Rule is a horizontal reference line. Solid rules have a thickness,
// dashed rules are stroked.
type Rule struct {
	X, Y   float64
	Width  float64
	Height float64
	Dashed bool
}

// BarValueLabels places tick labels in the value-axis column.
func (m Metrics) BarValueLabels(ticks []float64, value scale.Linear) []Label {
	out := make([]Label, len(ticks))
	for i, t := range ticks {
		out[i] = Label{
			Text:   FormatValue(t),
			X:      BarInitialSpace,
			Y:      m.Baseline - value.Scale(t),
			Anchor: AnchorStart,
		}
	}
	return out
}

// BarCategoryLabels centers one label under every bar. Vertical labels are
// rotated a quarter turn counter clockwise.
func (m Metrics) BarCategoryLabels(categories []string, cat scale.Point, meas metrics.Measurer, barWidth float64, vertical bool) []Label {
	out := make([]Label, 0, len(categories))
	for _, c := range categories {
		pos, ok := cat.Scale(c)
		if !ok {
			continue
		}
		s := meas.Measure(c)
		center := pos + barWidth/2 + m.Inset
		l := Label{Text: c, Y: m.LabelBaseline, OriginY: m.LabelBaseline, Anchor: AnchorStart}
		if vertical {
			l.X = center + m.LabelChars - s.Width + s.Height/3
			l.OriginX = center + m.LabelChars + s.Height/3
			l.Rotation = -90
		} else {
			l.X = center + m.LabelChars - s.Width/2
			l.OriginX = center
		}
		out = append(out, l)
	}
	return out
}

// BarGrid spans one rule per tick from the first bar to the end of the
// last one.
func (m Metrics) BarGrid(ticks []float64, value scale.Linear, cat scale.Point, barWidth, thickness float64) []Rule {
	pos := cat.Positions()
	if len(pos) == 0 {
		return nil
	}
	start := m.BarX(pos[0])
	end := m.BarX(pos[len(pos)-1]) + barWidth
	out := make([]Rule, len(ticks))
	for i, t := range ticks {
		out[i] = Rule{
			X:      start,
			Y:      m.Baseline - value.Scale(t),
			Width:  end - start,
			Height: thickness,
		}
	}
	return out
}

// LineValueLabels places tick labels at their value.
func (m Metrics) LineValueLabels(ticks []float64, value scale.Linear) []Label {
	out := make([]Label, len(ticks))
	for i, t := range ticks {
		out[i] = Label{Text: FormatValue(t), Y: value.Scale(t), Anchor: AnchorStart}
	}
	return out
}

// LineCategoryLabels places one label per distinct category.
func (m Metrics) LineCategoryLabels(cat scale.Point, meas metrics.Measurer, labelSize float64, vertical bool) []Label {
	domain := cat.Domain()
	out := make([]Label, len(domain))
	for i, c := range domain {
		pos, _ := cat.Scale(c)
		l := Label{Text: c, OriginX: pos, Anchor: AnchorStart}
		if vertical {
			l.X = pos - (meas.Measure(c).Width + LineLabelGap)
			l.Y = m.PlotHeight
			l.OriginY = m.PlotHeight - labelSize/10
			l.Rotation = -90
		} else {
			l.X = pos - float64(utf8.RuneCountInString(c))*(labelSize/4)
			l.Y = m.LabelBaseline
			l.OriginY = m.PlotHeight
		}
		out[i] = l
	}
	return out
}

// LineGrid draws one dashed rule per tick across the content width.
func (m Metrics) LineGrid(ticks []float64, value scale.Linear) []Rule {
	if m.GridEnd <= m.GridStart {
		return nil
	}
	out := make([]Rule, len(ticks))
	for i, t := range ticks {
		out[i] = Rule{
			X:      m.GridStart,
			Y:      value.Scale(t),
			Width:  m.GridEnd - m.GridStart,
			Dashed: true,
		}
	}
	return out
}

// Legends returns the rotated value-axis legend and the category legend in
// canvas coordinates. Empty texts yield nil.
func (m Metrics) Legends(yText, xText string) (y, x *Label) {
	if yText != "" {
		cy := m.ContentHeight / 2
		y = &Label{
			Text:     yText,
			X:        m.LegendSize,
			Y:        cy,
			Rotation: -90,
			OriginX:  m.LegendSize,
			OriginY:  cy,
			Anchor:   AnchorMiddle,
		}
	}
	if xText != "" {
		x = &Label{
			Text:   xText,
			X:      m.YLegendWidth + m.AxisLabelReservedWidth + m.ContentWidth/2,
			Y:      m.CanvasHeight + m.LegendSize,
			Anchor: AnchorMiddle,
		}
	}
	return y, x
}
