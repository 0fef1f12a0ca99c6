package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/ghost-pet/pkg/components"
	"github.com/decker502/ghost-pet/pkg/config"
	"github.com/decker502/ghost-pet/pkg/game"
)

// WanderSystem 漫游系统
// 周期性在区域内随机挑选目标点，并以恒定速度向目标移动；
// 位置每 tick 都被限制在区域内，确保任意设置下幽灵不会漂出屏幕
type WanderSystem struct {
	wander   *components.WanderComponent
	mode     *components.ModeComponent
	region   game.Region
	settings *game.GhostSettings
	rng      *rand.Rand
}

// NewWanderSystem 创建漫游系统
//
// 区域在启动时选定一次，运行期间不再变化（显示器热插拔不在范围内）。
func NewWanderSystem(wander *components.WanderComponent, mode *components.ModeComponent, region game.Region, settings *game.GhostSettings, rng *rand.Rand) *WanderSystem {
	s := &WanderSystem{
		wander:   wander,
		mode:     mode,
		region:   region,
		settings: settings,
		rng:      rng,
	}

	// 初始位置：区域中心；初始目标立即挑选，幽灵从第一帧起就在漂移
	wander.CurrentX = region.CenterX()
	wander.CurrentY = region.CenterY()
	wander.Direction = 1
	s.PickNewDestination()

	return s
}

// Region 返回漫游区域
func (s *WanderSystem) Region() game.Region {
	return s.region
}

// PickNewDestination 在区域内（留出边距）随机挑选新目标
func (s *WanderSystem) PickNewDestination() {
	w := s.wander

	// 边距不能超过区域的一半，否则随机范围为空
	marginX := math.Min(config.WanderMargin, s.region.Width()/2)
	marginY := math.Min(config.WanderMargin, s.region.Height()/2)

	w.TargetX = s.region.MinX + marginX + s.rng.Float64()*(s.region.Width()-2*marginX)
	w.TargetY = s.region.MinY + marginY + s.rng.Float64()*(s.region.Height()-2*marginY)
	w.Moving = true
	w.RepickCountdown = config.WanderRepickSeconds

	if w.TargetX >= w.CurrentX {
		w.Direction = 1
	} else {
		w.Direction = -1
	}
}

// Update 推进漫游移动
//
// 惊吓模式下位置定格，不移动也不重选目标。
//
// 参数：
//   - dt: 时间增量（秒）
func (s *WanderSystem) Update(dt float64) {
	if s.mode.Current == components.ModeScaring {
		return
	}

	w := s.wander

	// 周期性重选目标，避免长时间走同一条直线
	w.RepickCountdown -= dt
	if w.RepickCountdown <= 0 {
		s.PickNewDestination()
	}

	if w.Moving {
		speed := s.settings.Speed * config.WanderSpeedFactor * dt
		dx := w.TargetX - w.CurrentX
		dy := w.TargetY - w.CurrentY
		distance := math.Hypot(dx, dy)

		if distance <= speed {
			// 到达目标，立即挑选下一个，保持持续漂移
			w.CurrentX = w.TargetX
			w.CurrentY = w.TargetY
			s.PickNewDestination()
		} else {
			w.CurrentX += dx / distance * speed
			w.CurrentY += dy / distance * speed
		}
	}

	// 无论移动策略如何，位置始终不离开区域
	w.CurrentX, w.CurrentY = s.region.ClampPoint(w.CurrentX, w.CurrentY)
}
