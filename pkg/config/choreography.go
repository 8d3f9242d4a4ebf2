package config

import "github.com/decker502/keepsake/pkg/timing"

// Scene choreography tables. Every staged animation beat in the
// experience takes its durations from here rather than from scattered
// per-scene timer math; scenes only decide what each beat looks like.
//
// Durations are seconds. Tables are ordered: phase i+1 starts when
// phase i's duration has elapsed.

// IntroPhases are the opening narrative beats shown before the menu.
var IntroPhases = []timing.Phase{
	{Name: "fade-in", Duration: 1.2},
	{Name: "greeting", Duration: 2.2},
	{Name: "promise", Duration: 2.2},
	{Name: "invite", Duration: 1.6},
}

// BouquetPhases run before the bouquet starts assembling.
var BouquetPhases = []timing.Phase{
	{Name: "dim", Duration: 0.8},
	{Name: "line-one", Duration: 1.8},
	{Name: "line-two", Duration: 1.8},
}

// LetterPhases reveal the letter one paragraph per beat.
var LetterPhases = []timing.Phase{
	{Name: "unfold", Duration: 1.0},
	{Name: "paragraph-1", Duration: 2.4},
	{Name: "paragraph-2", Duration: 2.4},
	{Name: "paragraph-3", Duration: 2.4},
	{Name: "signature", Duration: 1.4},
}

// MusicBoxPhases stage the music box winding up and playing.
var MusicBoxPhases = []timing.Phase{
	{Name: "lid-open", Duration: 1.0},
	{Name: "wind-up", Duration: 1.4},
	{Name: "first-turn", Duration: 2.0},
	{Name: "melody", Duration: 2.6},
}

// FinalePhases are the closing beats before the replay control appears.
var FinalePhases = []timing.Phase{
	{Name: "hush", Duration: 1.0},
	{Name: "thank-you", Duration: 2.4},
	{Name: "always", Duration: 2.4},
	{Name: "confetti", Duration: 2.0},
}

// Assembly pacing.
const (
	// BouquetAssemblyDelay 花束序列结束到第一支花枝放置的间隔（秒）
	BouquetAssemblyDelay = 0.5

	// BouquetAssemblyTick 花束相邻元素放置间隔（秒）
	BouquetAssemblyTick = 0.22

	// CakeEntryDelay 进入蛋糕场景到第一个元素放置的固定延迟（秒）
	// 蛋糕场景没有前置节拍序列，直接使用入场延迟
	CakeEntryDelay = 1.0

	// CakeAssemblyTick 蛋糕相邻元素放置间隔（秒）
	CakeAssemblyTick = 0.35

	// StarlightEntryDelay 进入星空场景到第一颗星点亮的固定延迟（秒）
	StarlightEntryDelay = 0.8

	// StarlightAssemblyTick 相邻星辰点亮间隔（秒）
	StarlightAssemblyTick = 0.45

	// RevealPromptDelay "继续"提示出现后的呼吸动画周期（秒）
	RevealPromptDelay = 1.6
)

// ScaleDurations returns a copy of phases with every duration
// multiplied by factor. Used for the reduced-motion and text-speed
// viewer settings; a factor of 1 returns an identical copy.
// Factors are clamped below so no phase collapses to zero.
func ScaleDurations(phases []timing.Phase, factor float64) []timing.Phase {
	if factor < 0.25 {
		factor = 0.25
	}
	scaled := make([]timing.Phase, len(phases))
	for i, p := range phases {
		scaled[i] = timing.Phase{Name: p.Name, Duration: p.Duration * factor}
	}
	return scaled
}

// MotionFactor derives the duration factor from the viewer settings.
// textSpeed divides beat durations; reduced motion halves them again.
func MotionFactor(textSpeed float64, reducedMotion bool) float64 {
	if textSpeed <= 0 {
		textSpeed = 1.0
	}
	factor := 1.0 / textSpeed
	if reducedMotion {
		factor *= 0.5
	}
	return factor
}
