package chart

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tinywasm/chart/anim"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/metrics"
	"github.com/tinywasm/chart/tooltip"
)

var mono = metrics.Monospace{CharWidth: 8, LineHeight: 12}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func sales() Dataset {
	return Dataset{
		Categories: []string{"Jan", "Feb", "Mar"},
		Values:     []float64{10, 50, 30},
	}
}

type logSink struct {
	lines [][]any
}

func (s *logSink) log(message ...any) {
	s.lines = append(s.lines, message)
}

func (s *logSink) has(err error) bool {
	for _, l := range s.lines {
		for _, part := range l {
			if e, ok := part.(error); ok && errors.Is(e, err) {
				return true
			}
		}
	}
	return false
}

func TestBarChartEndToEnd(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewBar(sales(), mono, Tooltip(true))

	f := c.Render()
	if f.Deferred {
		t.Fatal("frame deferred with a ready measurer")
	}
	if f.Progress != 0 {
		t.Errorf("progress before first frame: got=%v, want=0", f.Progress)
	}
	for i, r := range f.Bars.Rects {
		if r.H != 0 {
			t.Errorf("bar %d height before animation: got=%v, want=0", i, r.H)
		}
	}

	c.Settle(start)
	f = c.Render()
	if f.Progress != 1 {
		t.Fatalf("progress after settle: got=%v, want=1", f.Progress)
	}

	ticks := f.Domain.Ticks
	if len(ticks) == 0 || ticks[0] != 0 || ticks[len(ticks)-1] < 50 {
		t.Errorf("ticks: got=%v, want 0 first and at least 50 last", ticks)
	}
	if len(f.ValueLabels) != len(ticks) {
		t.Errorf("value labels: got=%d, want=%d", len(f.ValueLabels), len(ticks))
	}
	if len(f.CategoryLabels) != 3 {
		t.Errorf("category labels: got=%d, want=3", len(f.CategoryLabels))
	}
	if len(f.Grid) != len(ticks) {
		t.Errorf("grid rules: got=%d, want=%d", len(f.Grid), len(ticks))
	}

	if len(f.Bars.Rects) != 3 {
		t.Fatalf("bars: got=%d, want=3", len(f.Bars.Rects))
	}
	tallest := 0
	for i, r := range f.Bars.Rects {
		if r.H > f.Bars.Rects[tallest].H {
			tallest = i
		}
	}
	if tallest != 1 {
		t.Errorf("tallest bar: got=%d, want=1 (Feb)", tallest)
	}
	feb := f.Bars.Rects[1]
	if !floatEqual(feb.Y+feb.H, f.Metrics.Baseline) {
		t.Errorf("Feb bar bottom: got=%v, want=%v", feb.Y+feb.H, f.Metrics.Baseline)
	}

	p, ok := c.Touch(feb.X + feb.W/2 + 3)
	if !ok {
		t.Fatal("touch near Feb missed")
	}
	want := tooltip.Point{Category: "Feb", Value: "50"}
	if p != want {
		t.Errorf("touch: got=%v, want=%v", p, want)
	}
	if c.Selected() != want {
		t.Errorf("selected: got=%v, want=%v", c.Selected(), want)
	}

	f = c.Render()
	if f.Tooltip == nil {
		t.Fatal("tooltip missing after touch")
	}
	if !floatEqual(f.Tooltip.Pointer.X, feb.X+feb.W/2) {
		t.Errorf("pointer x: got=%v, want=%v", f.Tooltip.Pointer.X, feb.X+feb.W/2)
	}
	if !floatEqual(f.Tooltip.Pointer.Y, feb.Y) {
		t.Errorf("pointer y: got=%v, want=%v", f.Tooltip.Pointer.Y, feb.Y)
	}
}

func TestLineChartEndToEnd(t *testing.T) {
	c := NewLine(sales(), mono, Tooltip(true), Container{Width: 400, Height: 300})
	c.Settle(time.Unix(0, 0))

	f := c.Render()
	if f.Line.Empty() {
		t.Fatal("line path empty after settle")
	}
	if len(f.Points) != 3 {
		t.Fatalf("points: got=%d, want=3", len(f.Points))
	}
	for i := 1; i < len(f.Points); i++ {
		if f.Points[i].X <= f.Points[i-1].X {
			t.Errorf("point %d not right of %d: %v <= %v", i, i-1, f.Points[i].X, f.Points[i-1].X)
		}
	}
	if f.Points[1].Y >= f.Points[0].Y {
		t.Errorf("Feb should be drawn above Jan: got y=%v, Jan y=%v", f.Points[1].Y, f.Points[0].Y)
	}
	for _, r := range f.Grid {
		if !r.Dashed {
			t.Error("line grid rules should be dashed")
		}
	}

	p, ok := c.Touch(f.Points[2].X - 1)
	if !ok {
		t.Fatal("touch near Mar missed")
	}
	if want := (tooltip.Point{Category: "Mar", Value: "30"}); p != want {
		t.Errorf("touch: got=%v, want=%v", p, want)
	}

	f = c.Render()
	if f.Tooltip == nil {
		t.Fatal("tooltip missing after touch")
	}
	if !floatEqual(f.Tooltip.Pointer.X, f.Points[2].X) || !floatEqual(f.Tooltip.Pointer.Y, f.Points[2].Y) {
		t.Errorf("pointer: got=%v, want=%v", f.Tooltip.Pointer, f.Points[2])
	}
}

func TestLineTrimFollowsProgress(t *testing.T) {
	q := &anim.FrameQueue{}
	c := NewLine(sales(), mono, q, Container{Width: 400})

	start := time.Unix(0, 0)
	q.Frame(start)
	q.Frame(start.Add(LineAnimationDuration / 2))
	half := c.Render()
	if half.Progress <= 0 || half.Progress >= 1 {
		t.Fatalf("progress mid run: got=%v", half.Progress)
	}

	q.Run(start.Add(LineAnimationDuration), 16*time.Millisecond, 100)
	full := c.Render()
	if half.Line.Length() >= full.Line.Length() {
		t.Errorf("trimmed line should be shorter: got=%v, full=%v", half.Line.Length(), full.Line.Length())
	}
}

type lateMeasurer struct {
	ready bool
}

func (m *lateMeasurer) Ready() bool { return m.ready }

func (m *lateMeasurer) Measure(text string) metrics.Size {
	if !m.ready {
		return metrics.Size{}
	}
	return mono.Measure(text)
}

func TestRenderDeferredUntilFontReady(t *testing.T) {
	sink := &logSink{}
	m := &lateMeasurer{}
	c := NewBar(sales(), m, sink.log)

	f := c.Render()
	if !f.Deferred {
		t.Fatal("frame should be deferred while the font loads")
	}
	if !sink.has(errs.ErrFontNotReady) {
		t.Error("font not ready was not logged")
	}
	c.Render()
	n := 0
	for _, l := range sink.lines {
		if len(l) > 0 && l[0] == errs.ErrFontNotReady {
			n++
		}
	}
	if n != 1 {
		t.Errorf("font not ready logged %d times, want 1", n)
	}
	if _, ok := c.Touch(10); ok {
		t.Error("touch should miss while deferred")
	}

	m.ready = true
	f = c.Render()
	if f.Deferred {
		t.Fatal("frame still deferred after the font loaded")
	}
	if f.Metrics.AxisLabelReservedWidth <= 0 {
		t.Errorf("axis label width: got=%v, want > 0", f.Metrics.AxisLabelReservedWidth)
	}
}

func TestSetDataRestartsAnimation(t *testing.T) {
	q := &anim.FrameQueue{}
	c := NewBar(sales(), mono, q, Tooltip(true))
	start := time.Unix(0, 0)

	q.Frame(start)
	q.Frame(start.Add(BarAnimationDuration / 2))
	if c.Progress() == 0 {
		t.Fatal("animation did not start")
	}
	gen := c.Animation().Generation()

	c.SetData(sales())
	if c.Animation().Generation() != gen {
		t.Error("equal data restarted the animation")
	}

	c.Touch(0)
	c.SetData(Dataset{Categories: []string{"Jan"}, Values: []float64{5}})
	if c.Progress() != 0 {
		t.Errorf("progress after new data: got=%v, want=0", c.Progress())
	}
	if c.Animation().State() != anim.Idle {
		t.Errorf("state after new data: got=%v, want=%v", c.Animation().State(), anim.Idle)
	}
	if !c.Selected().IsNone() {
		t.Errorf("selection after new data: got=%v, want none", c.Selected())
	}

	q.Run(start.Add(time.Second), 16*time.Millisecond, 1000)
	if c.Progress() != 1 || c.Animation().State() != anim.Settled {
		t.Errorf("after run: progress=%v state=%v", c.Progress(), c.Animation().State())
	}
}

func TestAnimationOff(t *testing.T) {
	c := NewBar(sales(), mono, Animation(false))
	f := c.Render()
	if f.Progress != 1 {
		t.Errorf("progress without a frame: got=%v, want=1", f.Progress)
	}
	if h := f.Bars.Rects[1].H; h <= 0 {
		t.Errorf("Feb bar height without a frame: got=%v, want > 0", h)
	}
	if c.Animating() {
		t.Error("a disabled animation has nothing to run")
	}

	c.SetData(Dataset{Categories: []string{"Jan"}, Values: []float64{5}})
	if c.Progress() != 1 {
		t.Errorf("progress after new data: got=%v, want=1", c.Progress())
	}
}

func TestAnimating(t *testing.T) {
	c := NewBar(sales(), mono, Tooltip(true))
	if !c.Animating() {
		t.Fatal("a pending entrance animation counts as animating")
	}
	now := c.Settle(time.Unix(0, 0))
	if c.Animating() {
		t.Fatal("settled chart still animating")
	}

	if _, ok := c.Touch(0); !ok {
		t.Fatal("touch missed")
	}
	if !c.Animating() {
		t.Error("tooltip fade should keep the chart animating")
	}
	c.Settle(now)
	if c.Animating() {
		t.Error("chart still animating after the fade settled")
	}
}

func months() Dataset {
	return Dataset{
		Categories: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug"},
		Values:     []float64{10, 50, 30, 45, 20, 60, 40, 35},
	}
}

func TestTooltipAboveInMidChart(t *testing.T) {
	c := NewBar(months(), mono, Tooltip(true), Animation(false))
	f := c.Render()
	may := f.Bars.Rects[4]

	if _, ok := c.Touch(may.X + may.W/2); !ok {
		t.Fatal("touch near May missed")
	}
	f = c.Render()
	if f.Tooltip == nil {
		t.Fatal("tooltip missing")
	}
	if got, want := f.Tooltip.Placement, tooltip.Above; got != want {
		t.Errorf("placement: got=%v, want=%v", got, want)
	}
	if f.Tooltip.Box.X < 0 || f.Tooltip.Box.X+f.Tooltip.Box.W > f.Metrics.ContentWidth {
		t.Errorf("box %+v outside content width %v", f.Tooltip.Box, f.Metrics.ContentWidth)
	}
}

func TestHostWindowOverridesContentArea(t *testing.T) {
	c := NewBar(months(), mono, Tooltip(true), Animation(false))
	f := c.Render()
	may := f.Bars.Rects[4]

	c.SetWindow(may.X+may.W/2+5, 800)
	c.Touch(may.X + may.W/2)
	f = c.Render()
	if f.Tooltip == nil {
		t.Fatal("tooltip missing")
	}
	if got, want := f.Tooltip.Placement, tooltip.Left; got != want {
		t.Errorf("placement: got=%v, want=%v", got, want)
	}
}

func TestLineWithoutContainerWidth(t *testing.T) {
	c := NewLine(sales(), mono, Tooltip(true), Animation(false))
	f := c.Render()

	if !f.Line.Empty() || len(f.Points) != 0 {
		t.Errorf("no content width should draw no line: points=%v", f.Points)
	}
	if len(f.CategoryLabels) != 0 {
		t.Errorf("category labels: got=%d, want=0", len(f.CategoryLabels))
	}
	if f.Width() < 0 || f.Metrics.ContentWidth != 0 {
		t.Errorf("frame width=%v content width=%v", f.Width(), f.Metrics.ContentWidth)
	}
	if _, ok := c.Touch(10); ok {
		t.Error("touch should miss without content")
	}
}

func TestMismatchedLengths(t *testing.T) {
	sink := &logSink{}
	c := NewBar(Dataset{
		Categories: []string{"Jan", "Feb", "Mar"},
		Values:     []float64{10, 50},
	}, mono, sink.log, Animation(false))
	c.Settle(time.Unix(0, 0))

	if !sink.has(errs.ErrLengthMismatch) {
		t.Error("length mismatch was not logged")
	}
	f := c.Render()
	if len(f.Bars.Rects) != 2 {
		t.Errorf("bars: got=%d, want=2", len(f.Bars.Rects))
	}
	if len(f.CategoryLabels) != 2 {
		t.Errorf("category labels: got=%d, want=2", len(f.CategoryLabels))
	}
}

func TestEmptyDataset(t *testing.T) {
	c := NewBar(Dataset{}, mono, Tooltip(true))
	c.Settle(time.Unix(0, 0))
	f := c.Render()
	if !f.Bars.Empty() {
		t.Error("empty data should draw no bars")
	}
	if f.Metrics.ContentWidth != 0 {
		t.Errorf("content width: got=%v, want=0", f.Metrics.ContentWidth)
	}
	if _, ok := c.Touch(10); ok {
		t.Error("touch on empty data should miss")
	}
}

func TestTouchWithTooltipOff(t *testing.T) {
	c := NewBar(sales(), mono)
	if _, ok := c.Touch(50); ok {
		t.Error("touch should miss with tooltips off")
	}
	if c.Render().Tooltip != nil {
		t.Error("tooltip drawn with tooltips off")
	}
}

func TestCacheReusedAcrossRenders(t *testing.T) {
	c := NewBar(sales(), mono, Animation(false))
	c.Settle(time.Unix(0, 0))
	c.Render()
	c.Render()
	if c.cache.Builds() != 1 {
		t.Errorf("builds: got=%d, want=1", c.cache.Builds())
	}
	c.Resize(800, 0)
	c.Render()
	if c.cache.Builds() != 1 {
		t.Errorf("builds after a resize that keeps the layout: got=%d, want=1", c.cache.Builds())
	}
}

func TestOptionsResolvedByType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BarWidth = 30
	sink := &logSink{}
	q := &anim.FrameQueue{}

	c := New(Bar, sales(), &cfg, Radius(4), Container{Width: 300}, mono, TooltipMeasurer{metrics.Basic()}, sink.log, q)

	if got := c.Config().BarWidth; got != 30 {
		t.Errorf("bar width: got=%v, want=30", got)
	}
	if got := c.Config().BarRadius; got != 4 {
		t.Errorf("radius: got=%v, want=4", got)
	}
	if c.container.Width != 300 {
		t.Errorf("container width: got=%v, want=300", c.container.Width)
	}
	if c.meas != metrics.Measurer(mono) {
		t.Error("axis measurer not applied")
	}
	if c.tipMeas == c.meas {
		t.Error("tooltip measurer not applied")
	}
	if c.queue != nil {
		t.Error("a host scheduler should replace the built-in queue")
	}
	if q.Pending() == 0 {
		t.Error("animation not scheduled on the host scheduler")
	}
	c.Log("hello")
	if len(sink.lines) == 0 {
		t.Error("logger not applied")
	}
}

func TestValidate(t *testing.T) {
	lo, hi := 10.0, 5.0
	cfg := DefaultConfig()
	cfg.BarWidth = -1
	cfg.ChartHeight = 0
	cfg.TickCount = 0
	cfg.YAxisMin, cfg.YAxisMax = &lo, &hi

	err := cfg.Validate()
	if !errors.Is(err, errs.ErrInvalidConfig) {
		t.Fatalf("error: got=%v, want wrapping %v", err, errs.ErrInvalidConfig)
	}
	def := DefaultConfig()
	if cfg.BarWidth != def.BarWidth || cfg.ChartHeight != def.ChartHeight || cfg.TickCount != def.TickCount {
		t.Errorf("defaults not restored: %+v", cfg)
	}
	if cfg.YAxisMin != nil || cfg.YAxisMax != nil {
		t.Error("inverted axis bounds should be dropped")
	}

	ok := DefaultConfig()
	if err := ok.Validate(); err != nil {
		t.Errorf("default config: got=%v, want nil", err)
	}
}

func TestDuration(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Duration(Bar); got != BarAnimationDuration {
		t.Errorf("bar: got=%v, want=%v", got, BarAnimationDuration)
	}
	if got := cfg.Duration(Line); got != LineAnimationDuration {
		t.Errorf("line: got=%v, want=%v", got, LineAnimationDuration)
	}
	cfg.AnimationDuration = 200 * time.Millisecond
	if got := cfg.Duration(Line); got != 200*time.Millisecond {
		t.Errorf("override: got=%v", got)
	}
	cfg.ShowAnimation = false
	if got := cfg.Duration(Bar); got != 0 {
		t.Errorf("off: got=%v, want=0", got)
	}
}

func TestDatasetEqual(t *testing.T) {
	a := sales()
	b := sales()
	if !a.Equal(b) {
		t.Error("copies should be equal")
	}
	b.Values[2] = 31
	if a.Equal(b) {
		t.Error("different values reported equal")
	}
	c := Dataset{Categories: a.Categories, Values: a.Values[:2]}
	if a.Equal(c) {
		t.Error("different lengths reported equal")
	}
}
