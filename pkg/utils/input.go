// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 输入统一层：指针点击、触摸和"激活"按键（回车/空格）在核心逻辑里
// 都归并为同一种 activate 事件。

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsActivateKeyJustPressed 检查"激活"按键是否刚刚按下
// 两个逻辑按键值：回车和空格，语义等同于点击当前默认控件
func IsActivateKeyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，用于悬停检测
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// InRect 检查点 (x, y) 是否落在以 (cx, cy) 为中心、w x h 的矩形内
func InRect(x, y int, cx, cy, w, h float64) bool {
	fx, fy := float64(x), float64(y)
	return fx >= cx-w/2 && fx <= cx+w/2 && fy >= cy-h/2 && fy <= cy+h/2
}

// InCircle 检查点 (x, y) 是否落在以 (cx, cy) 为圆心、半径 r 的圆内
func InCircle(x, y int, cx, cy, r float64) bool {
	dx := float64(x) - cx
	dy := float64(y) - cy
	return dx*dx+dy*dy <= r*r
}
