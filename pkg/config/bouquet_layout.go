package config

// BouquetCellSize 花束形状格子的边长（像素）
const BouquetCellSize = 14.0

// BouquetTable 花束装配表（23 个元素，按装配顺序排列）
//
// 坐标系：原点在丝带打结处，X 向右，Y 向上为负。
// 装配顺序：包装纸 → 花茎 → 叶片 → 玫瑰 → 花苞 → 满天星 → 丝带。
// 所有偏移都是对照最终画面逐个调出来的，不要用公式重排。
var BouquetTable = []AssemblyElement{
	// 包装纸（锥形三片）
	{Key: "wrap-left", Kind: "wrap", Anchor: Point{X: -52, Y: -10}, Cells: []CellOffset{
		{0, 0}, {1, -1}, {2, -2}, {3, -3}, {1, 0}, {2, -1}, {3, -2},
	}},
	{Key: "wrap-right", Kind: "wrap", Anchor: Point{X: 52, Y: -10}, Cells: []CellOffset{
		{0, 0}, {-1, -1}, {-2, -2}, {-3, -3}, {-1, 0}, {-2, -1}, {-3, -2},
	}},
	{Key: "wrap-front", Kind: "wrap", Anchor: Point{X: 0, Y: 6}, Cells: []CellOffset{
		{-2, 0}, {-1, 1}, {0, 1}, {1, 1}, {2, 0}, {-1, 0}, {0, 0}, {1, 0},
	}},

	// 花茎（三根，错开高度）
	{Key: "stem-center", Kind: "stem", Anchor: Point{X: 0, Y: -14}, Cells: []CellOffset{
		{0, 0}, {0, -1}, {0, -2}, {0, -3}, {0, -4},
	}},
	{Key: "stem-left", Kind: "stem", Anchor: Point{X: -22, Y: -12}, Cells: []CellOffset{
		{0, 0}, {0, -1}, {-1, -2}, {-1, -3},
	}},
	{Key: "stem-right", Kind: "stem", Anchor: Point{X: 22, Y: -12}, Cells: []CellOffset{
		{0, 0}, {0, -1}, {1, -2}, {1, -3},
	}},

	// 叶片（四片）
	{Key: "leaf-low-left", Kind: "leaf", Anchor: Point{X: -30, Y: -36}, Cells: []CellOffset{
		{0, 0}, {-1, 0}, {-1, -1},
	}},
	{Key: "leaf-low-right", Kind: "leaf", Anchor: Point{X: 30, Y: -36}, Cells: []CellOffset{
		{0, 0}, {1, 0}, {1, -1},
	}},
	{Key: "leaf-mid-left", Kind: "leaf", Anchor: Point{X: -16, Y: -52}, Cells: []CellOffset{
		{0, 0}, {-1, -1},
	}},
	{Key: "leaf-mid-right", Kind: "leaf", Anchor: Point{X: 16, Y: -52}, Cells: []CellOffset{
		{0, 0}, {1, -1},
	}},

	// 玫瑰（五朵，十字形花冠）
	{Key: "rose-center", Kind: "rose", Anchor: Point{X: 0, Y: -86}, Cells: []CellOffset{
		{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}},
	{Key: "rose-left", Kind: "rose", Anchor: Point{X: -34, Y: -72}, Cells: []CellOffset{
		{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}},
	{Key: "rose-right", Kind: "rose", Anchor: Point{X: 34, Y: -72}, Cells: []CellOffset{
		{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}},
	{Key: "rose-high-left", Kind: "rose", Anchor: Point{X: -18, Y: -98}, Cells: []CellOffset{
		{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}},
	{Key: "rose-high-right", Kind: "rose", Anchor: Point{X: 18, Y: -98}, Cells: []CellOffset{
		{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}},

	// 花苞（四枚，填补花冠间隙）
	{Key: "bud-left", Kind: "bud", Anchor: Point{X: -44, Y: -90}, Cells: []CellOffset{
		{0, 0}, {0, -1},
	}},
	{Key: "bud-right", Kind: "bud", Anchor: Point{X: 44, Y: -90}, Cells: []CellOffset{
		{0, 0}, {0, -1},
	}},
	{Key: "bud-top", Kind: "bud", Anchor: Point{X: 0, Y: -112}, Cells: []CellOffset{
		{0, 0}, {0, -1},
	}},
	{Key: "bud-mid", Kind: "bud", Anchor: Point{X: -8, Y: -70}, Cells: []CellOffset{
		{0, 0},
	}},

	// 满天星（三簇散点）
	{Key: "gyp-left", Kind: "gyp", Anchor: Point{X: -28, Y: -106}, Cells: []CellOffset{
		{0, 0}, {-1, -1}, {1, -1},
	}},
	{Key: "gyp-right", Kind: "gyp", Anchor: Point{X: 28, Y: -106}, Cells: []CellOffset{
		{0, 0}, {1, -1}, {-1, -1},
	}},
	{Key: "gyp-top", Kind: "gyp", Anchor: Point{X: 8, Y: -120}, Cells: []CellOffset{
		{0, 0}, {1, 0},
	}},

	// 丝带（最后打结）
	{Key: "ribbon-knot", Kind: "ribbon", Anchor: Point{X: 0, Y: 0}, Cells: []CellOffset{
		{0, 0}, {-1, 0}, {1, 0}, {-1, 1}, {1, 1},
	}},
	{Key: "ribbon-tails", Kind: "ribbon", Anchor: Point{X: 0, Y: 14}, Cells: []CellOffset{
		{-1, 0}, {-1, 1}, {-2, 2}, {1, 0}, {1, 1}, {2, 2},
	}},
}
