// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/embedded"
	"github.com/decker502/keepsake/pkg/game"
	"github.com/decker502/keepsake/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StartScene 指定启动场景名（如 "GiftMenu"），为空则从 Intro 开始。
	// 仅用于开发调试；门禁规则不受影响。
	StartScene string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	director                 *game.SceneDirector
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 打开 gdata 存储（失败时降级为仅内存设置）
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "keepsake",
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// 加载礼物清单
	manifestData, err := embedded.ReadFile("data/gifts.yaml")
	if err != nil {
		return nil, fmt.Errorf("礼物清单读取失败: %w", err)
	}
	manifest, err := config.LoadGiftManifest(manifestData)
	if err != nil {
		return nil, fmt.Errorf("礼物清单加载失败: %w", err)
	}
	log.Printf("[App] Loaded gift manifest: %d gifts", len(manifest.Gifts))

	// 叙事状态每次启动全新创建，不做持久化
	tracker := game.NewGiftTracker(manifest.GiftIDs())
	director := game.NewSceneDirector(tracker)
	director.SetSceneFactory(func(id game.SceneID) game.Scene {
		return scenes.NewScene(id, director, settings, manifest)
	})

	// 礼物清单里的场景名在这里完成一次性校验并绑定开启副作用
	for _, gift := range manifest.Gifts {
		sceneID, err := game.ParseSceneID(gift.Scene)
		if err != nil {
			return nil, fmt.Errorf("礼物 %q 的场景无效: %w", gift.ID, err)
		}
		director.BindGiftScene(sceneID, gift.ID)
	}

	// 确定启动场景
	startScene := game.SceneIntro
	if cfg.StartScene != "" {
		parsed, err := game.ParseSceneID(cfg.StartScene)
		if err != nil {
			return nil, fmt.Errorf("启动场景无效: %w", err)
		}
		startScene = parsed
		log.Printf("[App] StartScene override: %s", startScene)
	}
	director.GoTo(startScene)

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		director: director,
		settings: settings,
		verbose:  cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏，并持久化到设置
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(!isFullscreen)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.director.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.director.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetDirector 返回场景调度器
func (a *App) GetDirector() *game.SceneDirector {
	return a.director
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
