//go:build !wasm
// +build !wasm

package chart

import "github.com/tinywasm/chart/anim"

// defaultScheduler returns a frame queue the host advances with Tick.
func defaultScheduler() (anim.Scheduler, *anim.FrameQueue) {
	q := &anim.FrameQueue{}
	return q, q
}
