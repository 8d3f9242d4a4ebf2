// Package timing provides the cooperative timer primitives that drive
// all scene choreography: a Scheduler pumped from the game loop, a
// Sequencer for multi-phase scripted beats, and an Assembler for
// interval-driven element placement.
//
// Everything in this package is single-threaded by construction: timers
// only fire inside Advance, which a scene calls from its Update. There
// are no goroutines and no real clocks, so cancellation is synchronous
// and tests can drive time deterministically.
package timing

// Timer is a handle to a single pending callback registered with a
// Scheduler. Stopping a timer guarantees its callback will never fire.
type Timer struct {
	deadline float64
	seq      uint64
	fn       func()
	stopped  bool
	fired    bool
}

// Stop cancels the timer. It reports whether the call actually
// prevented the callback from firing (false if the timer already fired
// or was already stopped).
func (t *Timer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.fn = nil
	return true
}

// Scheduler is the timer primitive: schedule-after-delay plus cancel,
// advanced cooperatively with elapsed game time (seconds, matching the
// deltaTime the scene manager passes to Scene.Update).
//
// Callbacks fire in deadline order. A callback may register further
// timers; their delays are measured from the firing callback's own
// deadline, so chained schedules accumulate without drift.
type Scheduler struct {
	now    float64
	seq    uint64
	timers []*Timer
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After registers fn to run once delay seconds of Advance-time have
// elapsed. A non-positive delay fires on the next Advance call.
// The returned handle can be stopped at any point before it fires.
func (s *Scheduler) After(delay float64, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &Timer{
		deadline: s.now + delay,
		seq:      s.seq,
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt seconds, firing every due timer
// in deadline order. Ties break by registration order. A single large
// dt fires all deadlines it crosses, each observing its own deadline as
// the current time, so chained timers stay on schedule even when the
// loop hiccups.
func (s *Scheduler) Advance(dt float64) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.deadline
		next.fired = true
		fn := next.fn
		next.fn = nil
		if fn != nil {
			fn()
		}
	}
	s.now = target
	s.compact()
}

// Pending returns the number of live (not fired, not stopped) timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// nextDue picks the earliest live timer with deadline <= target, or nil.
func (s *Scheduler) nextDue(target float64) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.fired || t.stopped || t.deadline > target {
			continue
		}
		if best == nil || t.deadline < best.deadline ||
			(t.deadline == best.deadline && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// compact drops finished timers so long-lived schedulers don't grow.
func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live
}
