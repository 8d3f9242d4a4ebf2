package game

import (
	"log"
	"sort"
)

// GiftTracker 管理礼物的开启进度
// 负责追踪哪些礼物已经被打开，并提供"全部开启"的门禁判定
//
// 礼物集合在创建时固定（来自 gifts.yaml 清单），门禁大小因此是
// 配置参数而不是硬编码常量。标志只会从 false 变为 true，进程生命
// 周期内不会被清除。
type GiftTracker struct {
	opened map[string]bool
}

// NewGiftTracker 创建一个新的礼物追踪器
//
// 参数:
//   - giftIDs: 本次体验配置的全部礼物ID（封闭集合，至少一个）
//
// 所有礼物初始为未开启状态。
func NewGiftTracker(giftIDs []string) *GiftTracker {
	opened := make(map[string]bool, len(giftIDs))
	for _, id := range giftIDs {
		opened[id] = false
	}
	return &GiftTracker{opened: opened}
}

// MarkOpened 将指定礼物标记为已开启
//
// 幂等且单调：重复调用与调用一次效果相同，标志永不清除。
// 传入未配置的礼物ID属于编程错误，直接 panic（开发期快速失败）。
func (t *GiftTracker) MarkOpened(giftID string) {
	if _, ok := t.opened[giftID]; !ok {
		log.Panicf("[GiftTracker] unknown gift id: %q", giftID)
	}
	if !t.opened[giftID] {
		log.Printf("[GiftTracker] gift opened: %s (%d/%d)", giftID, t.countOpened()+1, len(t.opened))
	}
	t.opened[giftID] = true
}

// IsOpened 检查指定礼物是否已开启
func (t *GiftTracker) IsOpened(giftID string) bool {
	if _, ok := t.opened[giftID]; !ok {
		log.Panicf("[GiftTracker] unknown gift id: %q", giftID)
	}
	return t.opened[giftID]
}

// AllOpened 返回是否所有配置的礼物都已开启
// 这是菜单→终幕转场的唯一门禁条件
func (t *GiftTracker) AllOpened() bool {
	for _, opened := range t.opened {
		if !opened {
			return false
		}
	}
	return true
}

// OpenedCount 返回已开启的礼物数量
func (t *GiftTracker) OpenedCount() int {
	return t.countOpened()
}

// TotalCount 返回配置的礼物总数（门禁大小）
func (t *GiftTracker) TotalCount() int {
	return len(t.opened)
}

// GiftIDs 返回配置的全部礼物ID（按字母顺序排序，保证输出稳定）
func (t *GiftTracker) GiftIDs() []string {
	ids := make([]string, 0, len(t.opened))
	for id := range t.opened {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (t *GiftTracker) countOpened() int {
	n := 0
	for _, opened := range t.opened {
		if opened {
			n++
		}
	}
	return n
}
