package tooltip

import (
	"time"

	"github.com/tinywasm/chart/anim"
	"github.com/tinywasm/chart/metrics"
	"github.com/tinywasm/chart/shape"
)

const DefaultFadeDuration = 4 * time.Second

var (
	fadeStops   = [...]float64{0, 0.1, 0.6, 1}
	fadeOpacity = [...]float64{0, 1, 1, 0}
)

// Opacity maps fade progress to opacity: a quick fade in, a hold, then a
// fade out.
func Opacity(progress float64) float64 {
	if progress <= fadeStops[0] {
		return fadeOpacity[0]
	}
	for i := 1; i < len(fadeStops); i++ {
		if progress <= fadeStops[i] {
			t := (progress - fadeStops[i-1]) / (fadeStops[i] - fadeStops[i-1])
			return fadeOpacity[i-1] + t*(fadeOpacity[i]-fadeOpacity[i-1])
		}
	}
	return fadeOpacity[len(fadeOpacity)-1]
}

// Resolver holds the selected point, where it is drawn and the viewport
// used for edge avoidance.
type Resolver struct {
	point Point
	at    shape.Point
	win   Window
	fade  *anim.Driver
}

// NewResolver starts with no selection. fade runs once per selection.
func NewResolver(fade *anim.Driver) *Resolver {
	return &Resolver{point: None, fade: fade}
}

// Select highlights p at the given data point coordinates. The fade
// restarts when the point changes or the previous one has faded out.
func (r *Resolver) Select(p Point, at shape.Point) {
	changed := p != r.point
	r.point = p
	r.at = at
	if p.IsNone() || r.fade == nil {
		return
	}
	if changed || r.fade.State() != anim.Running {
		r.fade.Trigger()
	}
}

// Clear drops the selection.
func (r *Resolver) Clear() {
	r.point = None
	if r.fade != nil {
		r.fade.Stop()
	}
}

func (r *Resolver) Point() Point        { return r.point }
func (r *Resolver) Anchor() shape.Point { return r.at }
func (r *Resolver) Window() Window      { return r.win }

// SetWindow records the viewport size, keeping the scroll offset.
func (r *Resolver) SetWindow(width, height float64) {
	r.win.Width, r.win.Height = width, height
}

// Scroll records the horizontal scroll offset.
func (r *Resolver) Scroll(x float64) {
	r.win.ScrollX = x
}

// Opacity returns the current fade opacity.
func (r *Resolver) Opacity() float64 {
	if r.fade == nil || r.fade.Duration() <= 0 {
		return 1
	}
	if r.fade.State() == anim.Idle {
		return 0
	}
	return Opacity(r.fade.Progress())
}

// Fading reports whether a selected point still has fade frames to run.
func (r *Resolver) Fading() bool {
	return !r.point.IsNone() && r.fade != nil && r.fade.State() != anim.Settled
}

// Geometry places the tooltip of the selected point. It reports false when
// nothing is selected.
func (r *Resolver) Geometry(meas metrics.Measurer, st Style) (Geometry, bool) {
	if r.point.IsNone() {
		return Geometry{}, false
	}
	g := Place(r.point, r.at, meas, st, r.win)
	g.Opacity = r.Opacity()
	return g, true
}
