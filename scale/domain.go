package scale

import "math"

// DeclaredMaxMargin is added to a caller-declared maximum when the data
// overflows the ticks generated for it.
const DeclaredMaxMargin = 20

// Domain is the fitted value domain with its ticks.
type Domain struct {
	Min, Max    float64
	Ticks       []float64
	MaxObserved float64
	// Refit reports whether the upper bound was expanded because the
	// data exceeded the last tick of the initial domain.
	Refit bool
}

// MaxObserved returns the largest finite value, or 0 when there is none.
func MaxObserved(values []float64) float64 {
	found := false
	var max float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !found || v > max {
			max = v
			found = true
		}
	}
	return max
}

// InitialDomain uses the declared bounds when present, otherwise 0 and
// the largest observed value.
func InitialDomain(values []float64, min, max *float64) (float64, float64) {
	lo := 0.0
	if min != nil {
		lo = *min
	}
	hi := MaxObserved(values)
	if max != nil {
		hi = *max
	}
	return lo, hi
}

// DetectOverflow reports whether maxObserved lies above the last tick.
func DetectOverflow(maxObserved float64, ticks []float64) bool {
	if len(ticks) == 0 {
		return false
	}
	return maxObserved > ticks[len(ticks)-1]
}

// FinalDomain expands the upper bound of an overflowing domain so it
// strictly exceeds maxObserved: by one tick interval when no maximum was
// declared, by DeclaredMaxMargin above the declared maximum otherwise.
func FinalDomain(lo, hi, maxObserved float64, ticks []float64, declaredMax *float64) (float64, float64) {
	if declaredMax != nil {
		hi = *declaredMax + DeclaredMaxMargin
		if hi <= maxObserved {
			hi = maxObserved + DeclaredMaxMargin
		}
		return lo, hi
	}
	step := 0.0
	if len(ticks) > 1 {
		step = math.Abs(ticks[1] - ticks[0])
	}
	if step <= 0 {
		step = DeclaredMaxMargin
	}
	return lo, maxObserved + step
}

// Fit resolves the value domain in two passes: ticks for the initial
// domain, then a single expansion when the data overflows them.
func Fit(values []float64, min, max *float64, count int) Domain {
	if count <= 0 {
		count = DefaultTickCount
	}
	observed := MaxObserved(values)
	lo, hi := InitialDomain(values, min, max)
	ticks := Ticks(lo, hi, count)
	d := Domain{Min: lo, Max: hi, Ticks: ticks, MaxObserved: observed}
	if !DetectOverflow(observed, ticks) {
		return d
	}
	d.Min, d.Max = FinalDomain(lo, hi, observed, ticks, max)
	d.Ticks = Ticks(d.Min, d.Max, count)
	d.Refit = true
	return d
}

// Value returns a linear scale over the fitted domain.
func (d Domain) Value(r0, r1 float64) Linear {
	return NewLinear(d.Min, d.Max, r0, r1)
}
