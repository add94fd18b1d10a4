//go:build wasm
// +build wasm

package ui

import (
	"strconv"
	"strings"
	"syscall/js"

	"github.com/tinywasm/chart"
)

var (
	current    *chart.Chart
	options    []any
	valueInput js.Value
	chartBox   js.Value
)

// Setup builds the page and starts the render loop.
func Setup(data chart.Dataset, opts ...any) {
	options = opts
	setupUI(data)
	show(chart.Bar, data)
	startLoop()
}

func setupUI(data chart.Dataset) {
	document := js.Global().Get("document")
	body := document.Get("body")
	body.Set("innerHTML", "")

	container := document.Call("createElement", "div")
	container.Set("className", "container")

	title := document.Call("createElement", "h1")
	title.Set("textContent", "tinywasm chart")
	container.Call("appendChild", title)

	form := document.Call("createElement", "div")
	form.Set("className", "form-section")

	label := document.Call("createElement", "label")
	label.Set("textContent", "Values:")
	form.Call("appendChild", label)

	valueInput = document.Call("createElement", "input")
	valueInput.Set("type", "text")
	valueInput.Set("value", formatValues(data.Values))
	form.Call("appendChild", valueInput)

	form.Call("appendChild", button("Bar", func() { show(chart.Bar, readData()) }))
	form.Call("appendChild", button("Line", func() { show(chart.Line, readData()) }))
	form.Call("appendChild", button("Update", func() { current.SetData(readData()) }))
	container.Call("appendChild", form)

	chartBox = document.Call("createElement", "div")
	chartBox.Set("className", "chart-container")
	chartBox.Set("id", "chart-container")
	chartBox.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		touch(args[0].Get("offsetX").Float())
		return nil
	}))
	container.Call("appendChild", chartBox)

	body.Call("appendChild", container)

	js.Global().Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) any {
		fit()
		return nil
	}))
	loadStyles()
}

func button(text string, onClick func()) js.Value {
	btn := js.Global().Get("document").Call("createElement", "button")
	btn.Set("textContent", text)
	btn.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		onClick()
		return nil
	}))
	return btn
}

func loadStyles() {
	document := js.Global().Get("document")
	if !document.Call("querySelector", "link[href='style.css']").IsNull() {
		return
	}
	link := document.Call("createElement", "link")
	link.Set("rel", "stylesheet")
	link.Set("href", "style.css")
	document.Get("head").Call("appendChild", link)
}

// readData keeps the categories of the chart on screen and takes the values
// from the input, one per category.
func readData() chart.Dataset {
	old := current.Data()
	d := chart.Dataset{Categories: old.Categories}
	for _, s := range strings.Split(valueInput.Get("value").String(), ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			current.Log("skipping value", s, err)
			continue
		}
		d.Values = append(d.Values, v)
	}
	return d
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
