// Package app 提供应用核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：打开 gdata 存储、加载设置、
// 枚举显示器并选定漫游区域、创建场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/ghost-pet/pkg/config"
	"github.com/decker502/ghost-pet/pkg/game"
	"github.com/decker502/ghost-pet/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// MonitorFilter 显示器名称过滤子串（命令行指定，覆盖本次运行的配置值）
	MonitorFilter string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	ghostScene      *scenes.GhostScene
	settingsManager *game.SettingsManager
	verbose         bool
}

// ebitenWindow 基于 Ebitengine 的窗口控制器实现
type ebitenWindow struct{}

func (ebitenWindow) SetPosition(x, y int) {
	ebiten.SetWindowPosition(x, y)
}

func (ebitenWindow) SetSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (ebitenWindow) SetAlwaysOnTop(onTop bool) {
	ebiten.SetWindowFloating(onTop)
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 打开 gdata 跨平台存储；失败时降级为仅内存设置，不影响启动
	gdataManager, err := gdata.Open(gdata.Config{AppName: "ghost-pet"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}
	settings := settingsManager.GetSettings()

	// 命令行的显示器过滤覆盖本次运行的配置值
	if cfg.MonitorFilter != "" {
		settings.MonitorFilter = cfg.MonitorFilter
		log.Printf("[App] Monitor filter from command line: %q", cfg.MonitorFilter)
	}

	// 枚举显示器并选定漫游区域（启动时执行一次）
	var monitors []game.MonitorInfo
	for _, m := range ebiten.AppendMonitors(nil) {
		w, h := m.Size()
		monitors = append(monitors, game.MonitorInfo{Name: m.Name(), Width: w, Height: h})
	}
	region := game.SelectRegion(monitors, settings.MonitorFilter)

	// 创建场景
	ghostScene, err := scenes.NewGhostScene(settings, region, ebitenWindow{}, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return nil, fmt.Errorf("failed to create ghost scene: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(ghostScene)

	log.Printf("[App] Ghost pet started")
	return &App{
		sceneManager:    sceneManager,
		ghostScene:      ghostScene,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 窗口通常处于鼠标穿透且不聚焦状态，按键只在取得焦点时可用
	// （预览工具场景下常用）
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		log.Printf("[App] Manual scare triggered")
		a.ghostScene.TriggerScare()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小：缩放 = 窗口尺寸 / 逻辑尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.BaseWindowWidth, config.BaseWindowHeight
}

// TriggerScare 手动触发惊吓（无视 scareEnabled 开关，供外部入口调用）
func (a *App) TriggerScare() {
	a.ghostScene.TriggerScare()
}

// ApplySettings 不重启地应用新设置并持久化
//
// 外部设置面板提交变更时调用。保存失败不影响动画，错误返回给调用方
// 展示给用户。
func (a *App) ApplySettings(newSettings *game.GhostSettings) error {
	a.ghostScene.ApplySettings(newSettings)
	if err := a.settingsManager.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
