// Package scale maps data domains to pixel ranges.
package scale

// Linear maps a numeric domain [D0, D1] onto a pixel range [R0, R1].
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Scale interpolates x into the range. A degenerate domain (D0 == D1) maps
// every input to R0.
func (l Linear) Scale(x float64) float64 {
	if l.D0 == l.D1 {
		return l.R0
	}
	return l.R0 + (x-l.D0)/(l.D1-l.D0)*(l.R1-l.R0)
}

// Ticks returns nice breakpoints spanning the domain.
func (l Linear) Ticks(count int) []float64 {
	return Ticks(l.D0, l.D1, count)
}

// Domain returns the domain bounds.
func (l Linear) Domain() (float64, float64) {
	return l.D0, l.D1
}

// Range returns the pixel range bounds.
func (l Linear) Range() (float64, float64) {
	return l.R0, l.R1
}
