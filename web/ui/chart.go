//go:build wasm
// +build wasm

package ui

import (
	"syscall/js"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/render/svgchart"
)

var (
	// dirty is set when something outside the animations changed the frame.
	dirty bool
	// wasAnimating gives the last animation frame its paint.
	wasAnimating bool
)

func show(kind chart.Kind, data chart.Dataset) {
	current = chart.New(kind, data, options...)
	fit()
}

func fit() {
	win := js.Global()
	current.SetWindow(win.Get("innerWidth").Float(), win.Get("innerHeight").Float())
	current.Resize(chartBox.Get("clientWidth").Float(), 0)
	dirty = true
}

// touch takes an x relative to the chart element.
func touch(x float64) {
	f := current.Render()
	if f.Deferred {
		return
	}
	current.Scroll(chartBox.Get("scrollLeft").Float())
	if _, ok := current.Touch(x - f.ContentX()); ok {
		dirty = true
	}
}

// startLoop repaints on animation frames while anything moves and stays
// idle once the entrance and the tooltip fade have settled.
func startLoop() {
	var loop js.Func
	loop = js.FuncOf(func(this js.Value, args []js.Value) any {
		animating := current.Animating()
		if dirty || animating || wasAnimating {
			paint()
		}
		wasAnimating = animating
		js.Global().Call("requestAnimationFrame", loop)
		return nil
	})
	js.Global().Call("requestAnimationFrame", loop)
}

func paint() {
	img, err := svgchart.Bytes(current.Render())
	if err != nil {
		// fonts still loading, try again next frame
		return
	}
	dirty = false
	chartBox.Set("innerHTML", string(img))
}
