package config

// CakeCellSize 蛋糕形状格子的边长（像素）
const CakeCellSize = 16.0

// CakeTable 蛋糕装配表（12 个元素，自下而上）
// 坐标系：原点在托盘中心，X 向右，Y 向上为负。
var CakeTable = []AssemblyElement{
	{Key: "plate", Kind: "plate", Anchor: Point{X: 0, Y: 0}, Cells: []CellOffset{
		{-4, 0}, {-3, 0}, {-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
	}},

	// 底层（三块）
	{Key: "tier1-left", Kind: "sponge", Anchor: Point{X: -32, Y: -16}, Cells: []CellOffset{
		{0, 0}, {1, 0}, {0, -1}, {1, -1},
	}},
	{Key: "tier1-mid", Kind: "sponge", Anchor: Point{X: 0, Y: -16}, Cells: []CellOffset{
		{-1, 0}, {0, 0}, {1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}},
	{Key: "tier1-right", Kind: "sponge", Anchor: Point{X: 32, Y: -16}, Cells: []CellOffset{
		{-1, 0}, {0, 0}, {-1, -1}, {0, -1},
	}},

	// 中层（两块）
	{Key: "tier2-left", Kind: "sponge", Anchor: Point{X: -16, Y: -48}, Cells: []CellOffset{
		{0, 0}, {1, 0}, {0, -1}, {1, -1},
	}},
	{Key: "tier2-right", Kind: "sponge", Anchor: Point{X: 16, Y: -48}, Cells: []CellOffset{
		{-1, 0}, {0, 0}, {-1, -1}, {0, -1},
	}},

	// 顶层（一块）
	{Key: "tier3", Kind: "sponge", Anchor: Point{X: 0, Y: -80}, Cells: []CellOffset{
		{-1, 0}, {0, 0}, {-1, -1}, {0, -1},
	}},

	// 糖霜（两道）
	{Key: "icing-lower", Kind: "icing", Anchor: Point{X: 0, Y: -34}, Cells: []CellOffset{
		{-3, 0}, {-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0}, {3, 0},
	}},
	{Key: "icing-upper", Kind: "icing", Anchor: Point{X: 0, Y: -66}, Cells: []CellOffset{
		{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0},
	}},

	// 蜡烛（两支）和烛光
	{Key: "candle-left", Kind: "candle", Anchor: Point{X: -10, Y: -96}, Cells: []CellOffset{
		{0, 0}, {0, -1},
	}},
	{Key: "candle-right", Kind: "candle", Anchor: Point{X: 10, Y: -96}, Cells: []CellOffset{
		{0, 0}, {0, -1},
	}},
	{Key: "flames", Kind: "flame", Anchor: Point{X: 0, Y: -128}, Cells: []CellOffset{
		{-1, 0}, {1, 0},
	}},
}
