package timing

// Phase is one timed beat in a scripted sequence. Duration is how long
// the phase holds the stage before the next one advances, in seconds.
// Name is only used for logging and the verify tools.
type Phase struct {
	Name     string
	Duration float64
}

// TotalDuration returns the summed duration of a phase list.
func TotalDuration(phases []Phase) float64 {
	total := 0.0
	for _, p := range phases {
		total += p.Duration
	}
	return total
}

// Sequencer drives an ordered list of phases on a Scheduler.
//
// Start schedules every advance up front from cumulative durations, so
// the ordering guarantee (strictly increasing phase index, nothing
// skipped, nothing doubled) falls out of the Scheduler's deadline
// ordering instead of being re-derived per scene with chained timers.
//
// The owning scene must call Cancel before it is torn down; a stale
// advance must never fire behind a scene the viewer has already left.
type Sequencer struct {
	sched     *Scheduler
	timers    []*Timer
	cancelled bool
	completed bool
}

// NewSequencer creates a sequencer bound to the given scheduler.
func NewSequencer(sched *Scheduler) *Sequencer {
	return &Sequencer{sched: sched}
}

// Start schedules the whole sequence. onAdvance(0) fires after
// startDelay (immediately on the next pump when startDelay is 0), then
// onAdvance(i) after the cumulative duration of phases 0..i-1. After
// the last phase's duration elapses, onComplete fires exactly once.
//
// Start must only be called once per Sequencer; scenes that replay a
// sequence create a fresh one.
func (q *Sequencer) Start(phases []Phase, startDelay float64, onAdvance func(int), onComplete func()) {
	offset := startDelay
	for i := range phases {
		idx := i
		q.timers = append(q.timers, q.sched.After(offset, func() {
			// Defensive: Stop already prevents firing, but a cancelled
			// sequencer must never reach a callback even if the timer
			// handle was lost.
			if q.cancelled {
				return
			}
			onAdvance(idx)
		}))
		offset += phases[i].Duration
	}
	q.timers = append(q.timers, q.sched.After(offset, func() {
		if q.cancelled {
			return
		}
		q.completed = true
		if onComplete != nil {
			onComplete()
		}
	}))
}

// Cancel stops every pending advance. No callback is observed after
// Cancel returns. Calling it after completion (or twice) is a no-op.
func (q *Sequencer) Cancel() {
	q.cancelled = true
	for _, t := range q.timers {
		t.Stop()
	}
	q.timers = nil
}

// Completed reports whether onComplete has fired.
func (q *Sequencer) Completed() bool {
	return q.completed
}
