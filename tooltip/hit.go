// Package tooltip resolves touches to data points and places the tooltip
// box next to them.
package tooltip

import "math"

// Point is the selected data point as displayed.
type Point struct {
	Category string
	Value    string
}

// None is the "no selection" point. A real category "0" with value "0"
// compares equal to it and is never shown.
var None = Point{Category: "0", Value: "0"}

func (p Point) IsNone() bool {
	return p == None
}

// Window is the visible part of the scrollable content.
type Window struct {
	Width   float64
	Height  float64
	ScrollX float64
}

// Nearest returns the index of the position closest to x. Ties go to the
// first position encountered.
func Nearest(positions []float64, x float64) (int, bool) {
	if len(positions) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(positions); i++ {
		if math.Abs(positions[i]-x) < math.Abs(positions[best]-x) {
			best = i
		}
	}
	return best, true
}

// Lookup returns the value paired with the first category equal to label.
func Lookup(categories []string, values []float64, label string) (float64, bool) {
	n := min(len(categories), len(values))
	for i := 0; i < n; i++ {
		if categories[i] == label {
			return values[i], true
		}
	}
	return 0, false
}
