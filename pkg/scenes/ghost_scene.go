package scenes

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ghost-pet/pkg/components"
	"github.com/decker502/ghost-pet/pkg/config"
	"github.com/decker502/ghost-pet/pkg/game"
	"github.com/decker502/ghost-pet/pkg/systems"
)

// WindowController 把场景与具体的窗口实现解耦
//
// 动画核心只通过此接口提交窗口操作，pkg/app 提供基于 Ebitengine 的实现，
// 测试中用假实现即可在无显示环境下驱动完整的 tick 逻辑。
type WindowController interface {
	// SetPosition 移动窗口到所在显示器坐标系中的指定位置
	SetPosition(x, y int)
	// SetSize 设置窗口尺寸（像素）
	SetSize(width, height int)
	// SetAlwaysOnTop 切换窗口置顶（惊吓时置顶，平时沉底）
	SetAlwaysOnTop(onTop bool)
}

// GhostScene 幽灵场景
//
// 持有全部组件状态并按固定顺序驱动各系统，是 tick 驱动器本体：
// 漂浮 → 漫游 → 说话 → 惊吓 → 表情 → 提交窗口位置。
// 单线程协作式，每 tick 是一次有界的同步状态更新，随后由 Ebitengine 重绘。
type GhostScene struct {
	settings *game.GhostSettings
	region   game.Region
	window   WindowController

	mode   components.ModeComponent
	float  components.FloatComponent
	wander components.WanderComponent
	speech components.SpeechComponent
	scare  components.ScareComponent
	expr   components.ExpressionComponent

	floatSystem  *systems.FloatSystem
	wanderSystem *systems.WanderSystem
	speechSystem *systems.SpeechSystem
	scareSystem  *systems.ScareSystem
	exprSystem   *systems.ExpressionSystem
	renderSystem *systems.RenderSystem

	onTop bool // 当前窗口置顶状态，仅在变化时提交
}

// NewGhostScene 创建幽灵场景
//
// 参数：
//   - settings: 当前设置（场景持有引用，ApplySettings 原地更新）
//   - region: 启动时选定的漫游区域
//   - window: 窗口控制器
//   - rng: 随机源，测试时注入固定种子
//
// 返回：
//   - *GhostScene: 场景实例
//   - error: 渲染系统初始化失败（字体解析）时返回错误
func NewGhostScene(settings *game.GhostSettings, region game.Region, window WindowController, rng *rand.Rand) (*GhostScene, error) {
	s := &GhostScene{
		settings: settings,
		region:   region,
		window:   window,
	}

	s.floatSystem = systems.NewFloatSystem(&s.float, &s.scare, settings)
	s.wanderSystem = systems.NewWanderSystem(&s.wander, &s.mode, region, settings, rng)
	s.speechSystem = systems.NewSpeechSystem(&s.speech, &s.mode, settings, rng)
	s.scareSystem = systems.NewScareSystem(&s.scare, &s.mode, &s.float, &s.wander, s.speechSystem, region, settings, rng)
	s.exprSystem = systems.NewExpressionSystem(&s.expr, rng)

	renderSystem, err := systems.NewRenderSystem()
	if err != nil {
		return nil, fmt.Errorf("failed to create render system: %w", err)
	}
	s.renderSystem = renderSystem

	s.commitWindowSize()
	s.commitWindowPosition()

	log.Printf("[GhostScene] Ready, region %.0fx%.0f, scale %.1f",
		region.Width(), region.Height(), settings.GhostScale)
	return s, nil
}

// Update 推进一个 tick
//
// deltaTime 是距上次更新的时间（秒）。
func (s *GhostScene) Update(deltaTime float64) {
	s.floatSystem.Update(deltaTime)
	s.wanderSystem.Update(deltaTime)
	s.speechSystem.Update(deltaTime)
	s.scareSystem.Update(deltaTime)
	s.exprSystem.Update(deltaTime)

	// 惊吓期间窗口置顶，其余时间沉底
	onTop := s.scare.Phase != components.ScareIdle
	if onTop != s.onTop {
		s.onTop = onTop
		s.window.SetAlwaysOnTop(onTop)
	}

	s.commitWindowPosition()
}

// Draw 渲染当前帧
func (s *GhostScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, &s.float, &s.wander, &s.speech, &s.expr, &s.mode)
}

// TriggerScare 手动触发惊吓（无视 scareEnabled 开关）
func (s *GhostScene) TriggerScare() {
	s.scareSystem.Trigger()
}

// Mode 返回当前模式（日志与外部工具用）
func (s *GhostScene) Mode() components.GhostMode {
	return s.mode.Current
}

// ApplySettings 不重启地应用一份新设置
//
// 外部设置面板提交变更时调用：原地覆盖共享的设置对象，
// 然后重建短语池、重置计时器并调整窗口尺寸。
func (s *GhostScene) ApplySettings(newSettings *game.GhostSettings) {
	*s.settings = *newSettings

	s.speechSystem.RebuildPool()
	s.speechSystem.ResetCountdown()
	s.scareSystem.RebuildPool()
	if s.scare.Phase == components.ScareIdle {
		s.scareSystem.ScheduleNext()
	}

	s.commitWindowSize()
	s.commitWindowPosition()
	log.Printf("[GhostScene] Settings applied live (scale %.1f, interval %.0fs, scare %v)",
		s.settings.GhostScale, s.settings.PhraseIntervalSeconds, s.settings.ScareEnabled)
}

// commitWindowSize 按当前缩放提交窗口尺寸
func (s *GhostScene) commitWindowSize() {
	scale := s.settings.GhostScale
	s.window.SetSize(
		int(math.Round(config.BaseWindowWidth*scale)),
		int(math.Round(config.BaseWindowHeight*scale)),
	)
}

// commitWindowPosition 把幽灵身体中心对齐到漫游位置并提交窗口坐标
//
// 上下漂浮通过窗口 Y 坐标实现，身体在窗口内的位置保持固定。
func (s *GhostScene) commitWindowPosition() {
	scale := s.settings.GhostScale
	wx := s.wander.CurrentX - (config.GhostOffsetX+config.GhostCenterX)*scale
	wy := s.wander.CurrentY - (config.GhostOffsetY+config.GhostCenterY)*scale + s.float.BobOffset
	s.window.SetPosition(int(math.Round(wx)), int(math.Round(wy)))
}
