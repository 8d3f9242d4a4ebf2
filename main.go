//go:build !mobile

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/keepsake/pkg/app"
	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	startScene := flag.String("scene", "", "启动场景名（开发调试用，如 GiftMenu）")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	keepsakeApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		StartScene: *startScene,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	if err := ebiten.RunGame(keepsakeApp); err != nil {
		log.Fatalf("运行失败: %v", err)
	}
}
