package systems

import (
	"math"

	"github.com/decker502/ghost-pet/pkg/components"
	"github.com/decker502/ghost-pet/pkg/config"
	"github.com/decker502/ghost-pet/pkg/game"
	"github.com/decker502/ghost-pet/pkg/utils"
)

// 三路不透明度波的相位速率（弧度/秒）与权重
//
// 速率互不成整数比，叠加后的波形有效周期很长，闪烁不显周期性。
var (
	opacityRates   = [components.OpacityPhaseCount]float64{0.3, 0.7, 1.1}
	opacityWeights = [components.OpacityPhaseCount]float64{0.35, 0.25, 0.15}
)

// FloatSystem 漂浮动画系统
// 每 tick 推进漂浮相位、裙摆波浪相位和不透明度相位累加器，
// 并计算当前帧的漂浮偏移与闪烁不透明度
type FloatSystem struct {
	float    *components.FloatComponent
	scare    *components.ScareComponent
	settings *game.GhostSettings
}

// NewFloatSystem 创建漂浮动画系统
func NewFloatSystem(float *components.FloatComponent, scare *components.ScareComponent, settings *game.GhostSettings) *FloatSystem {
	return &FloatSystem{
		float:    float,
		scare:    scare,
		settings: settings,
	}
}

// Update 推进漂浮动画
//
// 参数：
//   - dt: 时间增量（秒）
func (s *FloatSystem) Update(dt float64) {
	f := s.float

	// 漂浮与裙摆相位单调递增，mod 2π 防止长时间运行后精度下降
	f.BobPhase = math.Mod(f.BobPhase+config.BobRate*dt, 2*math.Pi)
	f.BobOffset = math.Sin(f.BobPhase) * config.BobAmplitude
	f.HemWavePhase = math.Mod(f.HemWavePhase+config.HemWaveRate*dt, 2*math.Pi)

	// 不透明度相位各自按速率推进（受 opacitySpeed 倍率影响）
	sp := s.settings.OpacitySpeed
	for i := range f.OpacityPhases {
		f.OpacityPhases[i] += opacityRates[i] * sp * dt
	}

	// 惊吓期间不闪烁，不透明度由 ScareSystem 掌管
	if s.scare.Phase != components.ScareIdle {
		return
	}

	wave := 0.0
	for i := range f.OpacityPhases {
		wave += math.Sin(f.OpacityPhases[i]) * opacityWeights[i]
	}
	opacity := utils.Clamp(config.OpacityBase+wave, s.settings.OpacityMin, s.settings.OpacityMax)
	f.Opacity = utils.Clamp01(opacity)
}
