package config

// 装配动画的静态布局表
//
// 每个场景的装配表都是手工调校的字面量数据，完整地在编译期给出，
// 不在运行期计算。表的顺序即装配顺序：动画每个 tick 依次放置一个
// 元素，已放置的前缀整体渲染。

// CellOffset is one grid offset within an element's shape, in cell
// units relative to the element's anchor.
type CellOffset struct {
	DX int
	DY int
}

// AssemblyElement is one discrete visual unit placed during an
// incremental construction animation.
type AssemblyElement struct {
	// Key names the placement for logs and the verify tools.
	Key string
	// Kind picks the element's palette entry at render time.
	Kind string
	// Anchor is the element's position in pixels, relative to the
	// owning scene's assembly origin.
	Anchor Point
	// Cells is the element's shape as grid offsets from the anchor.
	Cells []CellOffset
}

// Keys returns the placement keys of a table in assembly order.
func Keys(table []AssemblyElement) []string {
	keys := make([]string, len(table))
	for i, e := range table {
		keys[i] = e.Key
	}
	return keys
}
