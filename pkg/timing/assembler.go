package timing

// Assembler plays an incremental construction animation: after a start
// delay it places one element per tick, in table order, until the
// declared element count is reached, then signals completion once.
//
// The assembler only tracks the placed-prefix length; the element table
// itself stays with the scene's layout config, which renders the prefix.
type Assembler struct {
	sched     *Scheduler
	timer     *Timer
	count     int
	placed    int
	tick      float64
	onTick    func(placed int)
	onDone    func()
	cancelled bool
	done      bool
}

// NewAssembler creates an assembler bound to the given scheduler.
func NewAssembler(sched *Scheduler) *Assembler {
	return &Assembler{sched: sched}
}

// Start begins the run: the first element is placed when startDelay
// elapses, each following element one tick later. onTick receives the
// new prefix length (1..count, strictly increasing); onDone fires
// exactly once, right after the last tick. A zero count skips straight
// to onDone after startDelay.
//
// Start must only be called once per Assembler.
func (a *Assembler) Start(count int, tick, startDelay float64, onTick func(placed int), onDone func()) {
	a.count = count
	a.tick = tick
	a.onTick = onTick
	a.onDone = onDone
	a.timer = a.sched.After(startDelay, a.step)
}

// step places the next element and chains the following tick. Delays
// chain from the firing deadline, so tick N lands at
// startDelay + N*tick regardless of how Advance is sliced.
func (a *Assembler) step() {
	if a.cancelled || a.done {
		return
	}
	if a.count == 0 {
		a.finish()
		return
	}
	a.placed++
	if a.onTick != nil {
		a.onTick(a.placed)
	}
	if a.placed >= a.count {
		a.finish()
		return
	}
	a.timer = a.sched.After(a.tick, a.step)
}

func (a *Assembler) finish() {
	a.done = true
	a.timer = nil
	if a.onDone != nil {
		a.onDone()
	}
}

// Cancel stops all future ticks. Elements already placed stay placed;
// progress is never rolled back within a run. Safe after completion.
func (a *Assembler) Cancel() {
	a.cancelled = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Placed returns the current placed-prefix length.
func (a *Assembler) Placed() int {
	return a.placed
}

// Done reports whether onDone has fired.
func (a *Assembler) Done() bool {
	return a.done
}
