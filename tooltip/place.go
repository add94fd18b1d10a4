package tooltip

import (
	"math"

	"github.com/tinywasm/chart/metrics"
	"github.com/tinywasm/chart/shape"
)

const (
	// TipSize is the length of the pointer triangle legs.
	TipSize = 10

	DefaultFontSize = 12
	DefaultPadding  = 20

	textOffsetFactor = 1.2
	radiusDivisor    = 14
	pointerDivisor   = 11
)

type Placement int

const (
	Above Placement = iota
	Below
	Left
	Right
)

func (p Placement) String() string {
	switch p {
	case Above:
		return "above"
	case Below:
		return "below"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Style holds the text settings of the tooltip.
type Style struct {
	FontSize float64
	// Padding is the total horizontal padding, split evenly on both sides.
	Padding float64
	XLegend string
	YLegend string
}

// Lines returns the two text lines shown for p.
func (s Style) Lines(p Point) (top, bottom string) {
	x, y := s.XLegend, s.YLegend
	if x == "" {
		x = "X"
	}
	if y == "" {
		y = "Y"
	}
	return x + ": " + p.Category, y + ": " + p.Value
}

type Box struct {
	X, Y, W, H float64
	Radius     float64
}

type Text struct {
	Content string
	X, Y    float64
}

type Circle struct {
	X, Y, R float64
}

// Geometry is everything needed to draw one tooltip.
type Geometry struct {
	Placement Placement
	Box       Box
	Tip       [3]shape.Point
	Top       Text
	Bottom    Text
	Pointer   Circle
	Opacity   float64
}

// Place positions the tooltip for p anchored at the data point at. It goes
// above and centered by default, below when the top would be cut off, then
// left of the point when the box would overflow the right edge of the
// window, or right of it when the box would overflow the left edge.
func Place(p Point, at shape.Point, meas metrics.Measurer, st Style, win Window) Geometry {
	fs := st.FontSize
	if fs <= 0 {
		fs = DefaultFontSize
	}
	pad := st.Padding
	if pad < 0 {
		pad = DefaultPadding
	}

	top, bottom := st.Lines(p)
	w := math.Max(meas.Measure(top).Width, meas.Measure(bottom).Width) + pad
	h := 3 * fs
	half := w / 2
	x, y := at.X, at.Y

	g := Geometry{
		Placement: Above,
		Box:       Box{X: x - half, Y: y - (h + TipSize), W: w, H: h, Radius: h / radiusDivisor},
		Tip:       [3]shape.Point{{X: x - TipSize, Y: y - TipSize}, {X: x + TipSize, Y: y - TipSize}, {X: x, Y: y}},
		Pointer:   Circle{X: x, Y: y, R: h / pointerDivisor},
		Opacity:   1,
	}

	if y-(h+TipSize) < 0 {
		g.Placement = Below
		g.Box.Y = y + TipSize
		g.Tip = [3]shape.Point{{X: x, Y: y}, {X: x - TipSize, Y: y + TipSize}, {X: x + TipSize, Y: y + TipSize}}
	}

	visibleX := x - win.ScrollX
	switch {
	case visibleX > half && visibleX+half > win.Width:
		g.Placement = Left
		g.Box.X = x - w - TipSize
		g.Box.Y = y - h/2
		g.Tip = [3]shape.Point{{X: x, Y: y}, {X: x - TipSize, Y: y - TipSize}, {X: x - TipSize, Y: y + TipSize}}
	case visibleX <= half:
		g.Placement = Right
		g.Box.X = x + TipSize
		g.Box.Y = y - h/2
		g.Tip = [3]shape.Point{{X: x, Y: y}, {X: x + TipSize, Y: y - TipSize}, {X: x + TipSize, Y: y + TipSize}}
	}

	offset := fs * textOffsetFactor
	g.Top = Text{Content: top, X: g.Box.X + pad/2, Y: g.Box.Y + offset}
	g.Bottom = Text{Content: bottom, X: g.Top.X, Y: g.Top.Y + offset}
	return g
}
