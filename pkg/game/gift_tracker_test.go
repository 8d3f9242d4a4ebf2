package game

import "testing"

// TestNewGiftTracker 测试追踪器初始状态：所有礼物未开启
func TestNewGiftTracker(t *testing.T) {
	tracker := NewGiftTracker([]string{"bouquet", "letter", "cake"})

	if tracker.TotalCount() != 3 {
		t.Errorf("TotalCount() = %d, want 3", tracker.TotalCount())
	}
	if tracker.OpenedCount() != 0 {
		t.Errorf("OpenedCount() = %d, want 0", tracker.OpenedCount())
	}
	if tracker.AllOpened() {
		t.Error("AllOpened() = true for a fresh tracker")
	}
	for _, id := range []string{"bouquet", "letter", "cake"} {
		if tracker.IsOpened(id) {
			t.Errorf("IsOpened(%q) = true for a fresh tracker", id)
		}
	}
}

// TestGiftTrackerAllOpenedRequiresEveryGift 验证 AllOpened 仅在
// N 个不同礼物全部开启后才为 true，与调用顺序和重复调用无关
func TestGiftTrackerAllOpenedRequiresEveryGift(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	tracker := NewGiftTracker(ids)

	// 乱序开启前4个，其中夹杂重复调用
	order := []string{"c", "a", "e", "a", "d", "c"}
	for _, id := range order {
		tracker.MarkOpened(id)
		if tracker.AllOpened() {
			t.Fatalf("AllOpened() = true after opening %v", order)
		}
	}
	if tracker.OpenedCount() != 4 {
		t.Fatalf("OpenedCount() = %d, want 4", tracker.OpenedCount())
	}

	// 开启第5个（重复两次），AllOpened 变为 true 并保持
	tracker.MarkOpened("b")
	tracker.MarkOpened("b")
	if !tracker.AllOpened() {
		t.Error("AllOpened() = false after all five gifts opened")
	}
	if tracker.OpenedCount() != 5 {
		t.Errorf("OpenedCount() = %d, want 5", tracker.OpenedCount())
	}
}

// TestGiftTrackerIdempotent 验证重复开启与开启一次效果相同
func TestGiftTrackerIdempotent(t *testing.T) {
	tracker := NewGiftTracker([]string{"x", "y"})
	tracker.MarkOpened("x")
	opened := tracker.OpenedCount()
	tracker.MarkOpened("x")
	if tracker.OpenedCount() != opened {
		t.Errorf("OpenedCount changed after duplicate MarkOpened: %d -> %d", opened, tracker.OpenedCount())
	}
	if !tracker.IsOpened("x") || tracker.IsOpened("y") {
		t.Error("unexpected opened state after duplicate MarkOpened")
	}
}

// TestGiftTrackerGateSizeIsConfigurable 验证门禁大小跟随配置的礼物
// 集合（5个和12个都能工作，不存在硬编码的门禁常量）
func TestGiftTrackerGateSizeIsConfigurable(t *testing.T) {
	for _, size := range []int{1, 5, 12} {
		ids := make([]string, size)
		for i := range ids {
			ids[i] = string(rune('a' + i))
		}
		tracker := NewGiftTracker(ids)

		for i, id := range ids {
			if tracker.AllOpened() {
				t.Fatalf("size %d: AllOpened() = true after %d gifts", size, i)
			}
			tracker.MarkOpened(id)
		}
		if !tracker.AllOpened() {
			t.Errorf("size %d: AllOpened() = false after all gifts opened", size)
		}
	}
}

// TestGiftTrackerGiftIDsSorted 验证 GiftIDs 返回按字母顺序排序的列表
func TestGiftTrackerGiftIDsSorted(t *testing.T) {
	tracker := NewGiftTracker([]string{"letter", "bouquet", "cake"})
	ids := tracker.GiftIDs()
	want := []string{"bouquet", "cake", "letter"}
	if len(ids) != len(want) {
		t.Fatalf("GiftIDs() returned %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("GiftIDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

// TestGiftTrackerUnknownIDPanics 验证未配置的礼物ID触发 panic
// （封闭集合，运行期出现未知ID属于编程错误）
func TestGiftTrackerUnknownIDPanics(t *testing.T) {
	tracker := NewGiftTracker([]string{"bouquet"})
	defer func() {
		if recover() == nil {
			t.Error("MarkOpened with an unknown id did not panic")
		}
	}()
	tracker.MarkOpened("nonexistent")
}
