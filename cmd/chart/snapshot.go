//go:build !wasm

package main

import (
	"time"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/env"
)

// fadeHold is where in the tooltip fade a still image is taken, inside the
// fully opaque hold.
const fadeHold = 0.3

// snapshot renders the settled chart described by f. When touch is set the
// point nearest to it is selected and its tooltip shown.
func snapshot(f *DataFile, kindFlag string, touch *float64, logger env.Logger) (chart.Frame, error) {
	kind, err := f.Kind(kindFlag)
	if err != nil {
		return chart.Frame{}, err
	}
	opts, err := f.Options(logger)
	if err != nil {
		return chart.Frame{}, err
	}

	c := chart.New(kind, f.Dataset(), opts...)
	now := c.Settle(time.Now())
	if touch != nil {
		if _, ok := c.Touch(*touch); ok {
			c.Tick(now)
			fade := c.Config().TooltipFade
			c.Tick(now.Add(time.Duration(float64(fade) * fadeHold)))
		}
	}
	return c.Render(), nil
}
