// Package shape builds the vector geometry of bars and lines.
package shape

import (
	"math"
	"strings"

	"github.com/tinywasm/fmt"
)

type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpCubic
	OpClose
)

type Point struct {
	X, Y float64
}

// Command is one path instruction. MoveTo and LineTo use Pts[0]; CubicTo
// uses both control points then the end point.
type Command struct {
	Op  Op
	Pts [3]Point
}

// Rect is an axis aligned rectangle with an optional corner radius. Width
// and height are never negative.
type Rect struct {
	X, Y, W, H float64
	R          float64
}

// Path is an ordered list of commands plus rectangle primitives.
type Path struct {
	Commands []Command
	Rects    []Rect
}

func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, Command{Op: OpMove, Pts: [3]Point{{x, y}}})
}

func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, Command{Op: OpLine, Pts: [3]Point{{x, y}}})
}

// CubicTo appends a cubic Bézier from the current point to (x, y) with
// control points (cx0, cy0) and (cx1, cy1).
func (p *Path) CubicTo(cx0, cy0, cx1, cy1, x, y float64) {
	p.Commands = append(p.Commands, Command{Op: OpCubic, Pts: [3]Point{{cx0, cy0}, {cx1, cy1}, {x, y}}})
}

func (p *Path) Close() {
	p.Commands = append(p.Commands, Command{Op: OpClose})
}

// AddRect appends a rectangle. Negative sizes are flipped so the rectangle
// covers the same area, and the radius is clamped to half the shorter side.
func (p *Path) AddRect(x, y, w, h, r float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	p.Rects = append(p.Rects, Rect{X: x, Y: y, W: w, H: h, R: r})
}

// Empty reports whether the path draws nothing.
func (p Path) Empty() bool {
	return len(p.Commands) == 0 && len(p.Rects) == 0
}

// Count returns the number of commands with the given op.
func (p Path) Count(op Op) int {
	n := 0
	for _, c := range p.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// SVG serialises the path as SVG path data. Rectangles follow the
// commands, each as its own closed subpath.
func (p Path) SVG() string {
	var b strings.Builder
	for _, c := range p.Commands {
		switch c.Op {
		case OpMove:
			b.WriteString(fmt.Sprintf("M%s ", pair(c.Pts[0])))
		case OpLine:
			b.WriteString(fmt.Sprintf("L%s ", pair(c.Pts[0])))
		case OpCubic:
			b.WriteString(fmt.Sprintf("C%s %s %s ", pair(c.Pts[0]), pair(c.Pts[1]), pair(c.Pts[2])))
		case OpClose:
			b.WriteString("Z ")
		}
	}
	for _, r := range p.Rects {
		writeRect(&b, r)
	}
	return strings.TrimSpace(b.String())
}

// kappa places cubic control points so a quarter circle is approximated.
var kappa = (4.0 / 3.0) * (math.Sqrt2 - 1.0)

func writeRect(b *strings.Builder, r Rect) {
	if r.R == 0 {
		b.WriteString(fmt.Sprintf("M%s H%s V%s H%s Z ",
			pair(Point{r.X, r.Y}), num(r.X+r.W), num(r.Y+r.H), num(r.X)))
		return
	}
	k := r.R * kappa
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	b.WriteString(fmt.Sprintf("M%s ", pair(Point{x0 + r.R, y0})))
	b.WriteString(fmt.Sprintf("L%s ", pair(Point{x1 - r.R, y0})))
	b.WriteString(fmt.Sprintf("C%s %s %s ", pair(Point{x1 - r.R + k, y0}), pair(Point{x1, y0 + r.R - k}), pair(Point{x1, y0 + r.R})))
	b.WriteString(fmt.Sprintf("L%s ", pair(Point{x1, y1 - r.R})))
	b.WriteString(fmt.Sprintf("C%s %s %s ", pair(Point{x1, y1 - r.R + k}), pair(Point{x1 - r.R + k, y1}), pair(Point{x1 - r.R, y1})))
	b.WriteString(fmt.Sprintf("L%s ", pair(Point{x0 + r.R, y1})))
	b.WriteString(fmt.Sprintf("C%s %s %s ", pair(Point{x0 + r.R - k, y1}), pair(Point{x0, y1 - r.R + k}), pair(Point{x0, y1 - r.R})))
	b.WriteString(fmt.Sprintf("L%s ", pair(Point{x0, y0 + r.R})))
	b.WriteString(fmt.Sprintf("C%s %s %s Z ", pair(Point{x0, y0 + r.R - k}), pair(Point{x0 + r.R - k, y0}), pair(Point{x0 + r.R, y0})))
}

func pair(pt Point) string {
	return num(pt.X) + "," + num(pt.Y)
}

func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
