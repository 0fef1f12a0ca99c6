// 预览工具：在普通的不透明窗口里运行幽灵，便于调试动画
//
// 与正式入口的区别：窗口有边框、不透明、接收鼠标键盘，
// 可以用 S 键随时触发惊吓观察淡入淡出曲线。
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ghost-pet/pkg/app"
	"github.com/decker502/ghost-pet/pkg/config"
)

func main() {
	monitors := flag.String("monitors", "", "显示器名称过滤子串")
	flag.Parse()

	ghostApp, err := app.NewApp(app.Config{
		Verbose:       true,
		MonitorFilter: *monitors,
	})
	if err != nil {
		log.Fatalf("[Preview] Failed to initialize: %v", err)
	}

	ebiten.SetWindowTitle("Ghost Pet Preview (S = scare, Esc = quit)")
	ebiten.SetWindowSize(config.BaseWindowWidth*2, config.BaseWindowHeight*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(ghostApp); err != nil {
		log.Fatalf("[Preview] Game exited with error: %v", err)
	}
}
