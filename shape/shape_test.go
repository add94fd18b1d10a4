package shape

import (
	"math"
	"strings"
	"testing"

	"github.com/tinywasm/chart/scale"
)

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func barSpec(progress float64) BarSpec {
	cats := []string{"Jan", "Feb", "Mar"}
	return BarSpec{
		Categories: cats,
		Values:     []float64{10, 50, 30},
		Category:   scale.NewPoint(cats, 2, 110),
		Value:      scale.NewLinear(0, 50, 0, 200),
		Offset:     2,
		Baseline:   225,
		Width:      20,
		Radius:     4,
		Progress:   progress,
	}
}

func TestBarsProgressOne(t *testing.T) {
	s := barSpec(1)
	bars, base := Bars(s)

	if got, want := len(bars.Rects), 3; got != want {
		t.Fatalf("rects: got=%v, want=%v", got, want)
	}
	prevX := math.Inf(-1)
	for i, r := range bars.Rects {
		if got, want := r.W, 20.0; got != want {
			t.Errorf("bar %d width: got=%v, want=%v", i, got, want)
		}
		if r.X <= prevX {
			t.Errorf("bar %d out of order: x=%v after %v", i, r.X, prevX)
		}
		prevX = r.X
		if got, want := r.H, s.Value.Scale(s.Values[i]); !floatEqual(got, want) {
			t.Errorf("bar %d height: got=%v, want=%v", i, got, want)
		}
		if got, want := r.Y+r.H, s.Baseline; !floatEqual(got, want) {
			t.Errorf("bar %d must rest on the baseline: got=%v, want=%v", i, got, want)
		}
	}
	if got, want := bars.Rects[0].X, 4.0; got != want {
		t.Errorf("first bar x: got=%v, want=%v", got, want)
	}
	if got, want := len(base.Rects), 3; got != want {
		t.Fatalf("base rects: got=%v, want=%v", got, want)
	}
	if got, want := base.Rects[1].H, bars.Rects[1].H/2; !floatEqual(got, want) {
		t.Errorf("base height: got=%v, want=%v", got, want)
	}
	if base.Rects[1].R != 0 {
		t.Errorf("base corners must be square")
	}
}

func TestBarsProgressZero(t *testing.T) {
	bars, _ := Bars(barSpec(0))
	for i, r := range bars.Rects {
		if r.H != 0 {
			t.Errorf("bar %d height at progress 0: got=%v, want=0", i, r.H)
		}
	}
}

func TestBarsRaisedAxisMinimum(t *testing.T) {
	s := barSpec(0)
	s.Values = []float64{25, 50, 30}
	s.Value = scale.NewLinear(20, 50, 0, 200)

	bars, _ := Bars(s)
	for i, r := range bars.Rects {
		if r.H != 0 || r.Y != s.Baseline {
			t.Errorf("bar %d at progress 0: y=%v h=%v, want y=%v h=0", i, r.Y, r.H, s.Baseline)
		}
	}

	s.Progress = 0.5
	bars, _ = Bars(s)
	if got, want := bars.Rects[1].H, 100.0; !floatEqual(got, want) {
		t.Errorf("half grown Feb: got=%v, want=%v", got, want)
	}

	s.Progress = 1
	bars, _ = Bars(s)
	if got, want := bars.Rects[0].H, s.Value.Scale(25); !floatEqual(got, want) {
		t.Errorf("settled Jan: got=%v, want=%v", got, want)
	}
}

func TestBarsNoRadiusNoBase(t *testing.T) {
	s := barSpec(1)
	s.Radius = 0
	_, base := Bars(s)
	if !base.Empty() {
		t.Error("square bars need no base path")
	}
}

func TestBarsEmptyAndMismatched(t *testing.T) {
	s := barSpec(1)
	s.Categories, s.Values = nil, nil
	if bars, _ := Bars(s); !bars.Empty() {
		t.Error("empty dataset must give an empty path")
	}

	s = barSpec(1)
	s.Values = s.Values[:2]
	if bars, _ := Bars(s); len(bars.Rects) != 2 {
		t.Errorf("mismatched lengths: got=%v rects, want=2", len(bars.Rects))
	}
}

func TestLineSegments(t *testing.T) {
	one := Line([]Point{{5, 5}})
	if got, want := len(one.Commands), 1; got != want {
		t.Fatalf("single point commands: got=%v, want=%v", got, want)
	}
	if one.Commands[0].Op != OpMove || one.Count(OpCubic) != 0 {
		t.Errorf("single point must be a lone move")
	}

	four := Line([]Point{{0, 0}, {10, 5}, {20, 0}, {30, 8}})
	if got, want := four.Count(OpCubic), 3; got != want {
		t.Errorf("cubics: got=%v, want=%v", got, want)
	}
	if got, want := four.Count(OpMove), 1; got != want {
		t.Errorf("moves: got=%v, want=%v", got, want)
	}
}

func TestLineControlPoints(t *testing.T) {
	p := Line([]Point{{0, 0}, {30, 60}})
	c := p.Commands[1]
	want := [3]Point{{10, 20}, {20, 40}, {30, 60}}
	for i := range want {
		if !floatEqual(c.Pts[i].X, want[i].X) || !floatEqual(c.Pts[i].Y, want[i].Y) {
			t.Errorf("point %d: got=%v, want=%v", i, c.Pts[i], want[i])
		}
	}
}

func TestLengthAndTrim(t *testing.T) {
	p := Line([]Point{{0, 0}, {30, 0}})
	if got, want := p.Length(), 30.0; !floatEqual(got, want) {
		t.Errorf("length: got=%v, want=%v", got, want)
	}

	half := p.Trim(0.5)
	end := half.Commands[len(half.Commands)-1].Pts[2]
	if !floatEqual(end.X, 15) || !floatEqual(end.Y, 0) {
		t.Errorf("trimmed end: got=%v, want={15 0}", end)
	}
	if got, want := half.Length(), 15.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("trimmed length: got=%v, want=%v", got, want)
	}

	if got := p.Trim(1); len(got.Commands) != len(p.Commands) {
		t.Errorf("full trim must keep every command")
	}
	if got := p.Trim(0); len(got.Commands) != 1 || got.Commands[0].Op != OpMove {
		t.Errorf("zero trim must keep only the move: %v", got.Commands)
	}
}

func TestTrimAcrossSegments(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	got := p.Trim(0.75)
	if n := len(got.Commands); n != 3 {
		t.Fatalf("commands: got=%v, want=3", n)
	}
	if end := got.Commands[2].Pts[0]; !floatEqual(end.X, 10) || !floatEqual(end.Y, 5) {
		t.Errorf("end: got=%v, want={10 5}", end)
	}
}

func TestSVG(t *testing.T) {
	p := Line([]Point{{0, 0}, {10, 10}})
	d := p.SVG()
	if !strings.HasPrefix(d, "M") || strings.Count(d, "C") != 1 {
		t.Errorf("unexpected path data: %q", d)
	}

	var r Path
	r.AddRect(0, 10, 5, -10, 0)
	if got := r.Rects[0]; got.Y != 0 || got.H != 10 {
		t.Errorf("negative height must be flipped: %+v", got)
	}
	if d := r.SVG(); strings.Count(d, "Z") != 1 || strings.Contains(d, "C") {
		t.Errorf("square rect data: %q", d)
	}

	var rounded Path
	rounded.AddRect(0, 0, 20, 40, 4)
	if got, want := strings.Count(rounded.SVG(), "C"), 4; got != want {
		t.Errorf("rounded corners: got=%v, want=%v", got, want)
	}
}

func TestRadiusClamp(t *testing.T) {
	var p Path
	p.AddRect(0, 0, 10, 4, 9)
	if got, want := p.Rects[0].R, 2.0; got != want {
		t.Errorf("got=%v, want=%v", got, want)
	}
}

func TestCache(t *testing.T) {
	var c Cache
	build := func(s BarSpec) func() []Path {
		return func() []Path {
			bars, base := Bars(s)
			return []Path{bars, base}
		}
	}

	s := barSpec(0.5)
	c.Get(s.Key(), build(s))
	c.Get(s.Key(), build(s))
	if got, want := c.Builds(), 1; got != want {
		t.Errorf("same inputs: got=%v builds, want=%v", got, want)
	}

	changes := []func(*BarSpec){
		func(s *BarSpec) { s.Progress = 0.6 },
		func(s *BarSpec) { s.Radius = 2 },
		func(s *BarSpec) { s.Width = 30 },
		func(s *BarSpec) { s.Values = []float64{10, 50, 31} },
		func(s *BarSpec) { s.Value.D1 = 60 },
		func(s *BarSpec) { s.Offset = 12 },
		func(s *BarSpec) { s.Category.R1 = 140 },
	}
	for i, change := range changes {
		s := barSpec(0.5)
		change(&s)
		before := c.Builds()
		c.Get(s.Key(), build(s))
		if c.Builds() != before+1 {
			t.Errorf("change %d did not rebuild", i)
		}
		c.Get(barSpec(0.5).Key(), build(barSpec(0.5)))
	}
}
