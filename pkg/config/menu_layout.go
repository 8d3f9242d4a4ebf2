package config

// 礼物菜单（枢纽场景）布局
//
// 五个礼物按钮围成一圈，终幕之门在下方居中。位置是对照 800x600
// 画面手工摆的。

// MenuSlot 菜单上一个礼物按钮的布局槽位
type MenuSlot struct {
	X float64 // 按钮中心 X 坐标
	Y float64 // 按钮中心 Y 坐标
}

// MenuGiftSlots 礼物按钮槽位，按清单顺序分配
// 清单礼物数超过槽位数属于配置错误（校验在 app 装配时进行）
var MenuGiftSlots = []MenuSlot{
	{X: 400, Y: 150},
	{X: 220, Y: 230},
	{X: 580, Y: 230},
	{X: 280, Y: 370},
	{X: 520, Y: 370},
}

const (
	// MenuGiftRadius 礼物按钮的点击半径（像素）
	MenuGiftRadius = 56.0

	// MenuFinaleDoorX 终幕之门中心 X 坐标
	MenuFinaleDoorX = 400.0

	// MenuFinaleDoorY 终幕之门中心 Y 坐标
	MenuFinaleDoorY = 500.0

	// MenuFinaleDoorWidth 终幕之门宽度
	MenuFinaleDoorWidth = 160.0

	// MenuFinaleDoorHeight 终幕之门高度
	MenuFinaleDoorHeight = 70.0

	// MenuTitleY 菜单标题基线 Y 坐标
	MenuTitleY = 64.0
)
