package config

import (
	"testing"

	"github.com/decker502/keepsake/pkg/timing"
)

// TestPhaseTablesWellFormed 验证所有节拍表非空且时长为正
func TestPhaseTablesWellFormed(t *testing.T) {
	tables := map[string][]timing.Phase{
		"IntroPhases":    IntroPhases,
		"BouquetPhases":  BouquetPhases,
		"LetterPhases":   LetterPhases,
		"MusicBoxPhases": MusicBoxPhases,
		"FinalePhases":   FinalePhases,
	}
	for name, phases := range tables {
		if len(phases) == 0 {
			t.Errorf("%s is empty", name)
			continue
		}
		for i, p := range phases {
			if p.Duration <= 0 {
				t.Errorf("%s[%d] (%s) has non-positive duration %v", name, i, p.Name, p.Duration)
			}
			if p.Name == "" {
				t.Errorf("%s[%d] has no name", name, i)
			}
		}
	}
}

// TestScaleDurations 验证时长缩放不修改原表且按倍率缩放
func TestScaleDurations(t *testing.T) {
	original := []timing.Phase{{Name: "a", Duration: 2.0}, {Name: "b", Duration: 1.0}}
	scaled := ScaleDurations(original, 0.5)

	if original[0].Duration != 2.0 {
		t.Error("ScaleDurations modified the source table")
	}
	if scaled[0].Duration != 1.0 || scaled[1].Duration != 0.5 {
		t.Errorf("scaled durations = %v/%v, want 1.0/0.5", scaled[0].Duration, scaled[1].Duration)
	}
	if scaled[0].Name != "a" {
		t.Error("ScaleDurations dropped phase names")
	}

	// 过小的倍率被钳制，节拍不会塌缩为零
	clamped := ScaleDurations(original, 0.0)
	if clamped[0].Duration <= 0 {
		t.Errorf("clamped duration = %v, want > 0", clamped[0].Duration)
	}
}

// TestMotionFactor 验证动效倍率推导
func TestMotionFactor(t *testing.T) {
	tests := []struct {
		textSpeed     float64
		reducedMotion bool
		want          float64
	}{
		{1.0, false, 1.0},
		{2.0, false, 0.5},
		{0.5, false, 2.0},
		{1.0, true, 0.5},
		{0, false, 1.0}, // 非法输入回退到默认速度
	}
	for _, tt := range tests {
		got := MotionFactor(tt.textSpeed, tt.reducedMotion)
		if got != tt.want {
			t.Errorf("MotionFactor(%v, %v) = %v, want %v", tt.textSpeed, tt.reducedMotion, got, tt.want)
		}
	}
}
