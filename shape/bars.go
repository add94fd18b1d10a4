package shape

import "github.com/tinywasm/chart/scale"

// BarSpec holds every input that affects bar geometry.
type BarSpec struct {
	Categories []string
	Values     []float64
	Category   scale.Point
	Value      scale.Linear
	// Offset shifts every bar right of its category position.
	Offset   float64
	Baseline float64
	Width    float64
	Radius   float64
	Progress float64
}

func (s BarSpec) count() int {
	return min(len(s.Categories), len(s.Values))
}

// X returns the left edge of the bar for label.
func (s BarSpec) X(label string) (float64, bool) {
	pos, ok := s.Category.Scale(label)
	if !ok {
		return 0, false
	}
	return pos + s.Offset, true
}

// Height returns the animated height of value v. Bars grow from the bottom
// of the value domain, so a raised axis minimum never starts them below
// the baseline.
func (s BarSpec) Height(v float64) float64 {
	floor := s.Value.Scale(s.Value.D0)
	return floor + (s.Value.Scale(v)-floor)*s.Progress
}

// Bars returns one rectangle per category, in category order, growing up
// from the baseline. When the bars are rounded, base holds square-cornered
// rectangles of half height that square off the bottom corners.
func Bars(s BarSpec) (bars, base Path) {
	for i := 0; i < s.count(); i++ {
		x, ok := s.X(s.Categories[i])
		if !ok {
			continue
		}
		h := s.Height(s.Values[i])
		bars.AddRect(x, s.Baseline, s.Width, -h, s.Radius)
		if s.Radius > 0 {
			base.AddRect(x, s.Baseline, s.Width, -h/2, 0)
		}
	}
	return bars, base
}
