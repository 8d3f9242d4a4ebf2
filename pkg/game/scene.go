package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one full-screen presentation state (intro, gift
// menu, a gift, the finale). Each scene has its own update and
// rendering logic and owns any choreography it starts.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，用于场景退出时释放资源
//
// 实现此接口的场景会在导航离开时被调用 Dispose()。
// 场景必须在 Dispose 中取消自己启动的所有定时任务（Sequencer/Assembler），
// 避免残留的回调在切换后继续修改已离开场景的状态。
type Disposable interface {
	// Dispose 取消场景拥有的所有未完成定时任务
	Dispose()
}
