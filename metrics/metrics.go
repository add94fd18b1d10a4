// Package metrics measures rendered text for chart layout.
//
// A Measurer that is not Ready (its font has not been loaded yet) must not be
// used for layout: charts defer geometry until it becomes ready.
package metrics

import (
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Size is the rendered extent of a string in pixels.
type Size struct {
	Width  float64
	Height float64
}

type Measurer interface {
	Measure(text string) Size
	Ready() bool
}

// FaceMeasurer measures text with an x/image font face.
type FaceMeasurer struct {
	face font.Face
}

func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	return &FaceMeasurer{face: face}
}

// Basic returns a measurer backed by the built-in 7x13 bitmap face. It is
// always ready and is the fallback when no font file is configured.
func Basic() *FaceMeasurer {
	return NewFaceMeasurer(basicfont.Face7x13)
}

func (m *FaceMeasurer) Ready() bool {
	return m != nil && m.face != nil
}

func (m *FaceMeasurer) Measure(text string) Size {
	if !m.Ready() {
		return Size{}
	}
	met := m.face.Metrics()
	return Size{
		Width:  toFloat(font.MeasureString(m.face, text)),
		Height: toFloat(met.Ascent + met.Descent),
	}
}

// Monospace measures every rune with the same advance. Useful when the real
// font is unknown but its size is.
type Monospace struct {
	CharWidth  float64
	LineHeight float64
}

func (m Monospace) Ready() bool { return m.CharWidth > 0 }

func (m Monospace) Measure(text string) Size {
	return Size{
		Width:  float64(utf8.RuneCountInString(text)) * m.CharWidth,
		Height: m.LineHeight,
	}
}

// MaxWidth returns the widest measured label.
func MaxWidth(m Measurer, labels []string) float64 {
	var w float64
	for _, l := range labels {
		if s := m.Measure(l); s.Width > w {
			w = s.Width
		}
	}
	return w
}

// MaxHeight returns the tallest measured label.
func MaxHeight(m Measurer, labels []string) float64 {
	var h float64
	for _, l := range labels {
		if s := m.Measure(l); s.Height > h {
			h = s.Height
		}
	}
	return h
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
