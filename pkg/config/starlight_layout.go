package config

// StarlightTable 星空装配表（9 颗星，按点亮顺序排列）
//
// 九颗星连成一个小小的心形星座。坐标相对画面中心，Y 向上为负。
// Cells 对星辰而言只有锚点一格；连线在渲染层按点亮顺序补画。
var StarlightTable = []AssemblyElement{
	{Key: "star-1", Kind: "star", Anchor: Point{X: 0, Y: 96}, Cells: []CellOffset{{0, 0}}},
	{Key: "star-2", Kind: "star", Anchor: Point{X: -72, Y: 30}, Cells: []CellOffset{{0, 0}}},
	{Key: "star-3", Kind: "star", Anchor: Point{X: -104, Y: -40}, Cells: []CellOffset{{0, 0}}},
	{Key: "star-4", Kind: "star", Anchor: Point{X: -64, Y: -96}, Cells: []CellOffset{{0, 0}}},
	{Key: "star-5", Kind: "star", Anchor: Point{X: 0, Y: -64}, Cells: []CellOffset{{0, 0}}},
	{Key: "star-6", Kind: "star", Anchor: Point{X: 64, Y: -96}, Cells: []CellOffset{{0, 0}}},
	{Key: "star-7", Kind: "star", Anchor: Point{X: 104, Y: -40}, Cells: []CellOffset{{0, 0}}},
	{Key: "star-8", Kind: "star", Anchor: Point{X: 72, Y: 30}, Cells: []CellOffset{{0, 0}}},
	{Key: "star-9", Kind: "star", Anchor: Point{X: 0, Y: 96}, Cells: []CellOffset{{0, 0}}},
}
