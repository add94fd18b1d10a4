package shape

import (
	"math"

	"github.com/tinywasm/chart/scale"
)

// flattenSteps is the number of chords a cubic is measured with.
const flattenSteps = 16

// LineSpec holds every input that affects line geometry.
type LineSpec struct {
	Categories []string
	Values     []float64
	Category   scale.Point
	Value      scale.Linear
	// Width is the stroke width.
	Width float64
}

// Points maps each (category, value) pair to pixels.
func (s LineSpec) Points() []Point {
	n := min(len(s.Categories), len(s.Values))
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		x, ok := s.Category.Scale(s.Categories[i])
		if !ok {
			continue
		}
		out = append(out, Point{X: x, Y: s.Value.Scale(s.Values[i])})
	}
	return out
}

// Line joins the points with cubics whose control points sit at one third
// and two thirds of the way between consecutive points. This smooths the
// corners without fitting a spline through the data.
func Line(points []Point) Path {
	var p Path
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		prev := points[i-1]
		p.CubicTo(
			(2*prev.X+pt.X)/3, (2*prev.Y+pt.Y)/3,
			(prev.X+2*pt.X)/3, (prev.Y+2*pt.Y)/3,
			pt.X, pt.Y,
		)
	}
	return p
}

// Length returns the drawn length of the commands. Cubics are measured by
// flattening.
func (p Path) Length() float64 {
	var total float64
	walk(p, func(_ Command, _ Point, l float64) bool {
		total += l
		return true
	})
	return total
}

// Trim keeps the leading fraction end of the path length. end <= 0 keeps
// only the first move, end >= 1 returns the path unchanged.
func (p Path) Trim(end float64) Path {
	if end >= 1 {
		return p
	}
	var out Path
	if len(p.Commands) == 0 {
		return out
	}
	target := math.Max(0, end) * p.Length()
	var acc float64
	walk(p, func(c Command, from Point, l float64) bool {
		if c.Op == OpMove || acc+l <= target {
			out.Commands = append(out.Commands, c)
			acc += l
			return true
		}
		remain := target - acc
		if remain <= 0 {
			return false
		}
		switch c.Op {
		case OpLine:
			pt := lerp(from, c.Pts[0], remain/l)
			out.LineTo(pt.X, pt.Y)
		case OpCubic:
			a, b, e := splitCubic(from, c.Pts[0], c.Pts[1], c.Pts[2], cubicParam(from, c, remain))
			out.CubicTo(a.X, a.Y, b.X, b.Y, e.X, e.Y)
		}
		return false
	})
	return out
}

// walk calls fn with each command, its start point and its length until fn
// returns false.
func walk(p Path, fn func(c Command, from Point, length float64) bool) {
	var cur, start Point
	for _, c := range p.Commands {
		var l float64
		from := cur
		switch c.Op {
		case OpMove:
			cur, start = c.Pts[0], c.Pts[0]
		case OpLine:
			l = dist(cur, c.Pts[0])
			cur = c.Pts[0]
		case OpCubic:
			l = cubicLength(cur, c.Pts[0], c.Pts[1], c.Pts[2])
			cur = c.Pts[2]
		case OpClose:
			l = dist(cur, start)
			cur = start
		}
		if !fn(c, from, l) {
			return
		}
	}
}

func cubicLength(p0, p1, p2, p3 Point) float64 {
	var l float64
	prev := p0
	for i := 1; i <= flattenSteps; i++ {
		pt := cubicAt(p0, p1, p2, p3, float64(i)/flattenSteps)
		l += dist(prev, pt)
		prev = pt
	}
	return l
}

// cubicParam finds the curve parameter at arc length remain.
func cubicParam(from Point, c Command, remain float64) float64 {
	var acc float64
	prev := from
	for i := 1; i <= flattenSteps; i++ {
		t := float64(i) / flattenSteps
		pt := cubicAt(from, c.Pts[0], c.Pts[1], c.Pts[2], t)
		d := dist(prev, pt)
		if acc+d >= remain {
			if d == 0 {
				return t
			}
			return (float64(i-1) + (remain-acc)/d) / flattenSteps
		}
		acc += d
		prev = pt
	}
	return 1
}

// splitCubic returns the control points and end point of the first part of
// the cubic cut at t.
func splitCubic(p0, p1, p2, p3 Point, t float64) (Point, Point, Point) {
	a := lerp(p0, p1, t)
	b := lerp(p1, p2, t)
	c := lerp(p2, p3, t)
	d := lerp(a, b, t)
	e := lerp(b, c, t)
	return a, d, lerp(d, e, t)
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
		Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
	}
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
