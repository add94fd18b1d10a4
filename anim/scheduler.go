package anim

import "time"

// Scheduler runs fn on the next frame. The returned cancel drops fn if it
// has not run yet.
type Scheduler interface {
	Schedule(fn func(now time.Time)) (cancel func())
}

type frameEntry struct {
	fn        func(now time.Time)
	cancelled bool
}

// FrameQueue is a Scheduler driven by the host calling Frame once per
// frame. Callbacks scheduled while a frame runs wait for the next one.
type FrameQueue struct {
	pending []*frameEntry
}

func (q *FrameQueue) Schedule(fn func(now time.Time)) func() {
	e := &frameEntry{fn: fn}
	q.pending = append(q.pending, e)
	return func() { e.cancelled = true }
}

// Frame runs every callback that was pending when it was called.
func (q *FrameQueue) Frame(now time.Time) {
	run := q.pending
	q.pending = nil
	for _, e := range run {
		if !e.cancelled {
			e.fn(now)
		}
	}
}

// Pending returns the number of callbacks waiting for a frame.
func (q *FrameQueue) Pending() int {
	n := 0
	for _, e := range q.pending {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// Run calls Frame every interval until nothing is pending or max frames
// have run. It is meant for headless rendering.
func (q *FrameQueue) Run(start time.Time, interval time.Duration, max int) time.Time {
	now := start
	for i := 0; i < max && q.Pending() > 0; i++ {
		q.Frame(now)
		now = now.Add(interval)
	}
	return now
}
