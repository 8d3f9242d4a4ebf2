package config

// 窗口与全局布局常量

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Keepsake · 给你的小礼物"
)

// Point represents a 2D coordinate point.
type Point struct {
	X float64
	Y float64
}
