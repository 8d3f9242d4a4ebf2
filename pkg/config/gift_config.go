package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GiftDef 单个礼物的清单条目
type GiftDef struct {
	ID    string `yaml:"id"`    // 礼物ID，如 "bouquet"
	Name  string `yaml:"name"`  // 菜单上显示的名称
	Scene string `yaml:"scene"` // 对应的场景名，如 "Bouquet"
	Hint  string `yaml:"hint"`  // 未开启时菜单上的提示语（可选）
}

// GiftManifest 礼物清单
//
// 清单决定门禁大小：终幕只有在清单里的每个礼物都被打开后才会解锁。
// 礼物数量是配置而不是常量（原型里出现过5个和12个两种规模）。
type GiftManifest struct {
	Gifts []GiftDef `yaml:"gifts"`
}

// LoadGiftManifest 从 YAML 数据解析礼物清单并校验
//
// 返回:
//   - *GiftManifest: 解析后的清单
//   - error: 解析失败或校验失败时返回错误
func LoadGiftManifest(data []byte) (*GiftManifest, error) {
	var manifest GiftManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse gift manifest: %w", err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gift manifest: %w", err)
	}
	return &manifest, nil
}

// Validate 校验清单的完整性
// 清单必须非空，礼物ID唯一，每个条目都带场景名
func (m *GiftManifest) Validate() error {
	if len(m.Gifts) == 0 {
		return fmt.Errorf("manifest declares no gifts")
	}
	seen := make(map[string]bool, len(m.Gifts))
	for i, gift := range m.Gifts {
		if gift.ID == "" {
			return fmt.Errorf("gift %d has an empty id", i)
		}
		if seen[gift.ID] {
			return fmt.Errorf("duplicate gift id: %q", gift.ID)
		}
		seen[gift.ID] = true
		if gift.Scene == "" {
			return fmt.Errorf("gift %q has no scene", gift.ID)
		}
		if gift.Name == "" {
			return fmt.Errorf("gift %q has no display name", gift.ID)
		}
	}
	return nil
}

// GiftIDs 返回清单中全部礼物ID（按清单顺序）
func (m *GiftManifest) GiftIDs() []string {
	ids := make([]string, len(m.Gifts))
	for i, gift := range m.Gifts {
		ids[i] = gift.ID
	}
	return ids
}

// Find 按ID查找礼物条目，找不到返回 nil
func (m *GiftManifest) Find(id string) *GiftDef {
	for i := range m.Gifts {
		if m.Gifts[i].ID == id {
			return &m.Gifts[i]
		}
	}
	return nil
}
