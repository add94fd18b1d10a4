package anim

import "math"

// Easing maps linear time t in [0,1] to progress in [0,1]. Every easing
// here is monotonic and exact at both ends.
type Easing func(t float64) float64

func Linear(t float64) float64 {
	return clamp(t)
}

func EaseInOutCubic(t float64) float64 {
	t = clamp(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func EaseInOutExpo(t float64) float64 {
	t = clamp(t)
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

func clamp(t float64) float64 {
	switch {
	case t <= 0 || math.IsNaN(t):
		return 0
	case t >= 1:
		return 1
	}
	return t
}
