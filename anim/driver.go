// Package anim drives a 0 to 1 progress value across frames.
package anim

import "time"

type State int

const (
	Idle State = iota
	Running
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Driver owns one progress value. Each Trigger starts a new run and
// supersedes the previous one: every frame callback carries the generation
// of the run that scheduled it and does nothing once a newer run exists.
type Driver struct {
	sched    Scheduler
	duration time.Duration
	ease     Easing

	gen      uint64
	state    State
	progress float64
	start    time.Time
	cancel   func()
	onSettle func()
}

// NewDriver returns an idle driver. A non-positive duration settles every
// run as soon as it is triggered.
func NewDriver(sched Scheduler, duration time.Duration, ease Easing) *Driver {
	if ease == nil {
		ease = EaseInOutExpo
	}
	return &Driver{sched: sched, duration: duration, ease: ease}
}

// OnSettle registers fn to run once per completed run.
func (d *Driver) OnSettle(fn func()) {
	d.onSettle = fn
}

func (d *Driver) Progress() float64 { return d.progress }

func (d *Driver) State() State { return d.state }

func (d *Driver) Generation() uint64 { return d.gen }

func (d *Driver) Duration() time.Duration { return d.duration }

// SetDuration applies to runs started after the call.
func (d *Driver) SetDuration(duration time.Duration) {
	d.duration = duration
}

// Trigger resets progress to 0 and schedules a new run on the next frame.
// With a non-positive duration the run settles at once, without a frame.
func (d *Driver) Trigger() {
	d.gen++
	gen := d.gen
	if d.cancel != nil {
		d.cancel()
	}
	d.state = Idle
	d.progress = 0
	if d.duration <= 0 {
		d.cancel = nil
		d.settle()
		return
	}
	d.cancel = d.sched.Schedule(func(now time.Time) { d.begin(gen, now) })
}

// Stop abandons the current run, leaving progress where it is. A running
// or pending driver goes back to Idle; a settled one stays settled.
func (d *Driver) Stop() {
	d.gen++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.state == Running {
		d.state = Idle
	}
}

func (d *Driver) begin(gen uint64, now time.Time) {
	if gen != d.gen {
		return
	}
	if d.duration <= 0 {
		d.settle()
		return
	}
	d.state = Running
	d.start = now
	d.progress = d.ease(0)
	d.cancel = d.sched.Schedule(func(now time.Time) { d.step(gen, now) })
}

func (d *Driver) step(gen uint64, now time.Time) {
	if gen != d.gen {
		return
	}
	t := float64(now.Sub(d.start)) / float64(d.duration)
	if t >= 1 {
		d.settle()
		return
	}
	d.progress = d.ease(t)
	d.cancel = d.sched.Schedule(func(now time.Time) { d.step(gen, now) })
}

func (d *Driver) settle() {
	d.state = Settled
	d.progress = 1
	d.cancel = nil
	if d.onSettle != nil {
		d.onSettle()
	}
}
