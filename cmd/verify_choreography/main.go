// Package main provides a headless choreography verification tool.
//
// It drives the timing scheduler over every scene's phase table and
// assembly table and prints the resulting timeline, so choreography
// changes in pkg/config can be reviewed without launching the game.
//
// Usage:
//
//	go run cmd/verify_choreography/main.go [flags]
//
// Flags:
//
//	--speed <factor>   Text speed to simulate, 0.5-2.0 (default: 1.0)
//	--reduced-motion   Simulate the reduced motion setting
//	--step <seconds>   Scheduler advance step (default: 1.0/60.0)
//
// Purpose:
//   - Review phase boundaries and total durations per scene
//   - Verify assembly tick cadence against the layout tables
//   - Check how motion settings stretch each timeline
package main

import (
	"flag"
	"fmt"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/timing"
)

var (
	speedFlag         = flag.Float64("speed", 1.0, "Text speed to simulate (0.5-2.0)")
	reducedMotionFlag = flag.Bool("reduced-motion", false, "Simulate the reduced motion setting")
	stepFlag          = flag.Float64("step", 1.0/60.0, "Scheduler advance step in seconds")
)

func main() {
	flag.Parse()

	factor := config.MotionFactor(*speedFlag, *reducedMotionFlag)
	fmt.Printf("motion factor: %.3f (speed=%.2f reducedMotion=%v)\n\n", factor, *speedFlag, *reducedMotionFlag)

	phaseTables := []struct {
		scene  string
		phases []timing.Phase
	}{
		{"Intro", config.IntroPhases},
		{"Bouquet", config.BouquetPhases},
		{"Letter", config.LetterPhases},
		{"MusicBox", config.MusicBoxPhases},
		{"Finale", config.FinalePhases},
	}
	for _, pt := range phaseTables {
		printSequence(pt.scene, config.ScaleDurations(pt.phases, factor), *stepFlag)
	}

	assemblies := []struct {
		scene string
		count int
		delay float64
		tick  float64
	}{
		{"Bouquet", len(config.BouquetTable), config.BouquetAssemblyDelay, config.BouquetAssemblyTick},
		{"Cake", len(config.CakeTable), config.CakeEntryDelay, config.CakeAssemblyTick},
		{"Starlight", len(config.StarlightTable), config.StarlightEntryDelay, config.StarlightAssemblyTick},
	}
	for _, a := range assemblies {
		printAssembly(a.scene, a.count, a.delay*factor, a.tick*factor, *stepFlag)
	}
}

// printSequence runs a phase table through a sequencer and prints when
// each phase begins and when the sequence completes.
func printSequence(scene string, phases []timing.Phase, step float64) {
	fmt.Printf("=== %s phases ===\n", scene)

	sched := timing.NewScheduler()
	seq := timing.NewSequencer(sched)
	seq.Start(phases, 0, func(index int) {
		fmt.Printf("  %7.3fs  phase %d %q begins\n", sched.Now(), index, phases[index].Name)
	}, func() {
		fmt.Printf("  %7.3fs  sequence complete\n", sched.Now())
	})

	total := timing.TotalDuration(phases)
	for !seq.Completed() {
		sched.Advance(step)
	}
	fmt.Printf("  total: %.3fs (table sum %.3fs)\n\n", sched.Now(), total)
}

// printAssembly runs an assembly animation and prints the tick cadence.
func printAssembly(scene string, count int, startDelay, tick, step float64) {
	fmt.Printf("=== %s assembly (%d elements, delay %.3fs, tick %.3fs) ===\n", scene, count, startDelay, tick)

	sched := timing.NewScheduler()
	asm := timing.NewAssembler(sched)
	var first, last float64
	asm.Start(count, tick, startDelay, func(placed int) {
		if placed == 1 {
			first = sched.Now()
		}
		last = sched.Now()
	}, func() {
		fmt.Printf("  first element %.3fs, last element %.3fs, done %.3fs\n\n",
			first, last, sched.Now())
	})

	for !asm.Done() {
		sched.Advance(step)
	}
}
