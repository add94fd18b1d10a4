package scale

import "math"

// DefaultTickCount is the tick count used when none is configured.
const DefaultTickCount = 6

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec picks a step of 1, 2 or 5 times a power of ten so that roughly
// count ticks cover [start, stop]. A negative inc means the step is 1/-inc,
// which keeps fractional steps exact.
func tickSpec(start, stop float64, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// Ticks returns about count human friendly values inside [d0, d1], in the
// direction of the domain. Identical inputs always yield identical ticks.
func Ticks(d0, d1 float64, count int) []float64 {
	if count <= 0 || math.IsNaN(d0) || math.IsNaN(d1) || math.IsInf(d0, 0) || math.IsInf(d1, 0) {
		return nil
	}
	if d0 == d1 {
		return []float64{d0}
	}
	reverse := d1 < d0
	if reverse {
		d0, d1 = d1, d0
	}
	i1, i2, inc := tickSpec(d0, d1, float64(count))
	if !(i2 >= i1) {
		return nil
	}
	n := int(i2-i1) + 1
	ticks := make([]float64, n)
	for i := range ticks {
		var k float64
		if reverse {
			k = i2 - float64(i)
		} else {
			k = i1 + float64(i)
		}
		if inc < 0 {
			ticks[i] = k / -inc
		} else {
			ticks[i] = k * inc
		}
	}
	return ticks
}

// TickStep returns the distance between consecutive ticks of Ticks(d0, d1,
// count), or 0 when the domain is degenerate.
func TickStep(d0, d1 float64, count int) float64 {
	if count <= 0 || d0 == d1 {
		return 0
	}
	if d1 < d0 {
		d0, d1 = d1, d0
	}
	_, _, inc := tickSpec(d0, d1, float64(count))
	if inc < 0 {
		return 1 / -inc
	}
	return inc
}
