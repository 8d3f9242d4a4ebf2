package timing

import "testing"

// advanceRecorder collects (index, time) pairs from sequencer callbacks.
type advanceRecorder struct {
	sched    *Scheduler
	indices  []int
	times    []float64
	complete int
	doneAt   float64
}

func newAdvanceRecorder(s *Scheduler) *advanceRecorder {
	return &advanceRecorder{sched: s}
}

func (r *advanceRecorder) onAdvance(i int) {
	r.indices = append(r.indices, i)
	r.times = append(r.times, r.sched.Now())
}

func (r *advanceRecorder) onComplete() {
	r.complete++
	r.doneAt = r.sched.Now()
}

func approx(t *testing.T, got, want float64, what string) {
	t.Helper()
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("%s at %.4f, want %.4f", what, got, want)
	}
}

// TestSequencerTimeline verifies the firing timeline for three phases:
// advance(0) at start, advance(1) at d0, advance(2) at d0+d1, and
// complete at d0+d1+d2, each exactly once and in order.
func TestSequencerTimeline(t *testing.T) {
	s := NewScheduler()
	r := newAdvanceRecorder(s)
	q := NewSequencer(s)
	phases := []Phase{
		{Name: "first", Duration: 0.5},
		{Name: "second", Duration: 0.3},
		{Name: "third", Duration: 0.7},
	}
	q.Start(phases, 0, r.onAdvance, r.onComplete)

	// Pump in small slices to cross each deadline separately.
	for i := 0; i < 40; i++ {
		s.Advance(0.05)
	}

	if len(r.indices) != 3 {
		t.Fatalf("got %d advances, want 3 (%v)", len(r.indices), r.indices)
	}
	for i, idx := range r.indices {
		if idx != i {
			t.Errorf("advance %d reported index %d", i, idx)
		}
	}
	approx(t, r.times[0], 0.0, "advance(0)")
	approx(t, r.times[1], 0.5, "advance(1)")
	approx(t, r.times[2], 0.8, "advance(2)")
	if r.complete != 1 {
		t.Fatalf("onComplete fired %d times, want 1", r.complete)
	}
	approx(t, r.doneAt, 1.5, "onComplete")
	if !q.Completed() {
		t.Error("Completed() = false after onComplete")
	}
}

// TestSequencerStartDelay verifies phase 0 waits for the configured
// initial delay.
func TestSequencerStartDelay(t *testing.T) {
	s := NewScheduler()
	r := newAdvanceRecorder(s)
	q := NewSequencer(s)
	q.Start([]Phase{{Duration: 0.2}}, 0.4, r.onAdvance, r.onComplete)

	s.Advance(0.3)
	if len(r.indices) != 0 {
		t.Fatal("advance(0) fired before the start delay elapsed")
	}
	s.Advance(0.2)
	if len(r.indices) != 1 {
		t.Fatal("advance(0) did not fire after the start delay")
	}
	approx(t, r.times[0], 0.4, "advance(0)")
	s.Advance(0.2)
	if r.complete != 1 {
		t.Fatalf("onComplete fired %d times, want 1", r.complete)
	}
	approx(t, r.doneAt, 0.6, "onComplete")
}

// TestSequencerSingleAdvanceBurst verifies that one oversized Advance
// still delivers every phase in strictly increasing order with nothing
// skipped or doubled.
func TestSequencerSingleAdvanceBurst(t *testing.T) {
	s := NewScheduler()
	r := newAdvanceRecorder(s)
	q := NewSequencer(s)
	phases := []Phase{{Duration: 0.1}, {Duration: 0.1}, {Duration: 0.1}, {Duration: 0.1}}
	q.Start(phases, 0, r.onAdvance, r.onComplete)

	s.Advance(5.0)

	if len(r.indices) != 4 {
		t.Fatalf("got %d advances, want 4", len(r.indices))
	}
	for i, idx := range r.indices {
		if idx != i {
			t.Errorf("advance %d reported index %d", i, idx)
		}
	}
	if r.complete != 1 {
		t.Errorf("onComplete fired %d times, want 1", r.complete)
	}
}

// TestSequencerCancelMidSequence verifies no callback is observed after
// Cancel returns.
func TestSequencerCancelMidSequence(t *testing.T) {
	s := NewScheduler()
	r := newAdvanceRecorder(s)
	q := NewSequencer(s)
	phases := []Phase{{Duration: 0.2}, {Duration: 0.2}, {Duration: 0.2}}
	q.Start(phases, 0, r.onAdvance, r.onComplete)

	s.Advance(0.25) // advance(0) and advance(1) have fired
	if len(r.indices) != 2 {
		t.Fatalf("precondition: got %d advances, want 2", len(r.indices))
	}

	q.Cancel()
	s.Advance(10)

	if len(r.indices) != 2 {
		t.Errorf("advance fired after Cancel: %v", r.indices)
	}
	if r.complete != 0 {
		t.Errorf("onComplete fired after Cancel")
	}
}

// TestSequencerCancelAfterComplete verifies Cancel after completion is
// a safe no-op.
func TestSequencerCancelAfterComplete(t *testing.T) {
	s := NewScheduler()
	r := newAdvanceRecorder(s)
	q := NewSequencer(s)
	q.Start([]Phase{{Duration: 0.1}}, 0, r.onAdvance, r.onComplete)

	s.Advance(1.0)
	if r.complete != 1 {
		t.Fatalf("precondition: onComplete fired %d times", r.complete)
	}

	q.Cancel()
	q.Cancel()
	if r.complete != 1 || len(r.indices) != 1 {
		t.Error("Cancel after completion changed observed callbacks")
	}
}

// TestSequencerEmptyPhaseList verifies a sequence with no phases still
// completes exactly once after the start delay.
func TestSequencerEmptyPhaseList(t *testing.T) {
	s := NewScheduler()
	r := newAdvanceRecorder(s)
	q := NewSequencer(s)
	q.Start(nil, 0.2, r.onAdvance, r.onComplete)

	s.Advance(1.0)
	if len(r.indices) != 0 {
		t.Errorf("advances fired for an empty sequence: %v", r.indices)
	}
	if r.complete != 1 {
		t.Errorf("onComplete fired %d times, want 1", r.complete)
	}
	approx(t, r.doneAt, 0.2, "onComplete")
}

// TestTotalDuration verifies cumulative duration math.
func TestTotalDuration(t *testing.T) {
	phases := []Phase{{Duration: 0.5}, {Duration: 0.25}, {Duration: 1.0}}
	if got := TotalDuration(phases); got != 1.75 {
		t.Errorf("TotalDuration() = %v, want 1.75", got)
	}
	if got := TotalDuration(nil); got != 0 {
		t.Errorf("TotalDuration(nil) = %v, want 0", got)
	}
}
