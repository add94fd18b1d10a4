//go:build wasm
// +build wasm

package chart

import (
	"github.com/tinywasm/chart/anim"
	"github.com/tinywasm/chart/env"
)

// defaultScheduler drives animations with requestAnimationFrame.
func defaultScheduler() (anim.Scheduler, *anim.FrameQueue) {
	return env.AnimationFrames{}, nil
}
