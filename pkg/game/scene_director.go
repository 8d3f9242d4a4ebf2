package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的场景，避免 game 包与 scenes 包的循环依赖
// 对未知的 SceneID 必须 panic（封闭集合，运行期出现即为编程错误）
type SceneFactory func(id SceneID) Scene

// SceneDirector owns the scene graph: it holds the one current SceneID,
// routes goto requests, gates the menu→finale transition behind the
// GiftTracker, and guarantees the outgoing scene is disposed (all of
// its timers cancelled) before the next scene mounts.
type SceneDirector struct {
	current      SceneID
	currentScene Scene
	factory      SceneFactory
	tracker      *GiftTracker
	giftForScene map[SceneID]string
}

// NewSceneDirector creates a director around the given tracker. The
// director starts with no mounted scene; call GoTo with the entry
// scene after registering a factory.
func NewSceneDirector(tracker *GiftTracker) *SceneDirector {
	return &SceneDirector{
		tracker:      tracker,
		giftForScene: make(map[SceneID]string),
	}
}

// SetSceneFactory 设置场景工厂函数
func (d *SceneDirector) SetSceneFactory(factory SceneFactory) {
	d.factory = factory
}

// BindGiftScene associates a scene with a gift id: entering that scene
// marks the gift opened. Bindings come from the gift manifest.
func (d *SceneDirector) BindGiftScene(id SceneID, giftID string) {
	d.giftForScene[id] = giftID
}

// Tracker returns the director's gift tracker.
func (d *SceneDirector) Tracker() *GiftTracker {
	return d.tracker
}

// GoTo requests a transition to the target scene.
//
// Every transition is unconditional except Finale, which requires all
// gifts opened; a gated request that fails its guard is silently
// ignored (the menu never presents the finale door as actionable while
// locked, so this is belt-and-braces rather than an error path).
//
// Before the new scene mounts, the outgoing scene's Dispose runs so
// none of its pending timers can fire behind the transition. Entering
// a gift-bound scene marks its gift opened; re-entering an already
// opened scene is a no-op on the tracker.
func (d *SceneDirector) GoTo(target SceneID) {
	if target == SceneFinale && !d.tracker.AllOpened() {
		log.Printf("[SceneDirector] finale gate closed (%d/%d gifts), ignoring request",
			d.tracker.OpenedCount(), d.tracker.TotalCount())
		return
	}
	if d.factory == nil {
		log.Panicf("[SceneDirector] no scene factory registered")
	}

	if disposable, ok := d.currentScene.(Disposable); ok {
		disposable.Dispose()
	}

	scene := d.factory(target)
	if scene == nil {
		log.Panicf("[SceneDirector] factory returned nil scene for %s", target)
	}

	if giftID, ok := d.giftForScene[target]; ok {
		d.tracker.MarkOpened(giftID)
	}

	log.Printf("[SceneDirector] %s -> %s", d.current, target)
	d.current = target
	d.currentScene = scene
}

// Current returns the active SceneID.
func (d *SceneDirector) Current() SceneID {
	return d.current
}

// CurrentScene 返回当前活动的场景实例，没有则返回 nil
func (d *SceneDirector) CurrentScene() Scene {
	return d.currentScene
}

// Update updates the currently active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (d *SceneDirector) Update(deltaTime float64) {
	if d.currentScene != nil {
		d.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (d *SceneDirector) Draw(screen *ebiten.Image) {
	if d.currentScene != nil {
		d.currentScene.Draw(screen)
	}
}
