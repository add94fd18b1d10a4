package scale

// Point spreads category labels evenly across [R0, R1], flush to the start:
// position i is R0 + i*Step with Step = (R1-R0)/n. Repeated labels collapse
// onto the position of their first occurrence.
type Point struct {
	R0, R1 float64
	labels []string
	index  map[string]int
}

func NewPoint(categories []string, r0, r1 float64) Point {
	p := Point{
		R0:     r0,
		R1:     r1,
		labels: categories,
		index:  make(map[string]int, len(categories)),
	}
	for i, c := range categories {
		if _, ok := p.index[c]; !ok {
			p.index[c] = i
		}
	}
	return p
}

// Step is the distance between consecutive categories.
func (p Point) Step() float64 {
	if len(p.labels) == 0 {
		return 0
	}
	return (p.R1 - p.R0) / float64(len(p.labels))
}

// At returns the position of index i.
func (p Point) At(i int) float64 {
	return p.R0 + float64(i)*p.Step()
}

// Scale returns the position of label.
func (p Point) Scale(label string) (float64, bool) {
	i, ok := p.index[label]
	if !ok {
		return 0, false
	}
	return p.At(i), true
}

// Domain returns the distinct labels in first-occurrence order.
func (p Point) Domain() []string {
	out := make([]string, 0, len(p.index))
	for i, c := range p.labels {
		if p.index[c] == i {
			out = append(out, c)
		}
	}
	return out
}

// Positions returns the position of every entry of Domain, in order.
func (p Point) Positions() []float64 {
	domain := p.Domain()
	out := make([]float64, len(domain))
	for i, c := range domain {
		out[i], _ = p.Scale(c)
	}
	return out
}

// Len returns the number of categories the scale was built from.
func (p Point) Len() int {
	return len(p.labels)
}
