// Ghost Pet - 桌面幽灵宠物
// 一只半透明的小幽灵在屏幕上漂来漂去，偶尔说话，偶尔吓你一跳
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ghost-pet/pkg/app"
	"github.com/decker502/ghost-pet/pkg/config"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	monitors := flag.String("monitors", "", "显示器名称过滤子串（覆盖配置文件中的 monitorFilter）")
	flag.Parse()

	ghostApp, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		MonitorFilter: *monitors,
	})
	if err != nil {
		log.Fatalf("[Main] Failed to initialize: %v", err)
	}

	// 无边框、鼠标穿透的透明窗口，不出现在任务栏
	ebiten.SetWindowTitle("Ghost Pet")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowSize(config.BaseWindowWidth, config.BaseWindowHeight)

	options := &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
		X11ClassName:      "ghost-pet",
		X11InstanceName:   "ghost-pet",
	}
	if err := ebiten.RunGameWithOptions(ghostApp, options); err != nil {
		log.Fatalf("[Main] Game exited with error: %v", err)
	}
}
