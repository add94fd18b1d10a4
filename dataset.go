package chart

// Dataset is the chart input: labels and their values, index aligned.
type Dataset struct {
	Categories []string
	Values     []float64
}

// Len is the number of usable points. Mismatched lengths are cut to the
// common prefix.
func (d Dataset) Len() int {
	return min(len(d.Categories), len(d.Values))
}

// Aligned returns a copy cut to the common prefix.
func (d Dataset) Aligned() Dataset {
	n := d.Len()
	out := Dataset{
		Categories: make([]string, n),
		Values:     make([]float64, n),
	}
	copy(out.Categories, d.Categories[:n])
	copy(out.Values, d.Values[:n])
	return out
}

func (d Dataset) Empty() bool {
	return d.Len() == 0
}

// Equal compares contents, including the parts beyond the common prefix.
func (d Dataset) Equal(o Dataset) bool {
	if len(d.Categories) != len(o.Categories) || len(d.Values) != len(o.Values) {
		return false
	}
	for i := range d.Categories {
		if d.Categories[i] != o.Categories[i] {
			return false
		}
	}
	for i := range d.Values {
		if d.Values[i] != o.Values[i] {
			return false
		}
	}
	return true
}
