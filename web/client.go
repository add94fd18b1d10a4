//go:build wasm

package main

import (
	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/web/ui"
)

func main() {
	sample := chart.Dataset{
		Categories: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		Values:     []float64{10, 50, 30, 45, 20, 60},
	}

	ui.Setup(sample, chart.Tooltip(true), chart.Legends("Sales", "Month"), chart.Radius(4))

	// Keep the program running
	select {}
}
