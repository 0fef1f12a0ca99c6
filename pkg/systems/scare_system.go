package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/ghost-pet/pkg/components"
	"github.com/decker502/ghost-pet/pkg/config"
	"github.com/decker502/ghost-pet/pkg/game"
	"github.com/decker502/ghost-pet/pkg/utils"
)

// ScareSystem 惊吓系统
//
// 状态机：Idle → FadeIn → Holding → FadeOut → Idle。
// 周期路径受 scareEnabled 闸门控制；Trigger 手动路径无视闸门，
// "现在就吓一下"的请求必须总是生效。
// 惊吓一旦开始不可打断（进程退出除外），阶段转移严格单调。
type ScareSystem struct {
	scare    *components.ScareComponent
	mode     *components.ModeComponent
	float    *components.FloatComponent
	wander   *components.WanderComponent
	speech   *SpeechSystem
	queue    *game.PhraseQueue
	region   game.Region
	settings *game.GhostSettings
	rng      *rand.Rand
}

// NewScareSystem 创建惊吓系统
func NewScareSystem(
	scare *components.ScareComponent,
	mode *components.ModeComponent,
	float *components.FloatComponent,
	wander *components.WanderComponent,
	speech *SpeechSystem,
	region game.Region,
	settings *game.GhostSettings,
	rng *rand.Rand,
) *ScareSystem {
	s := &ScareSystem{
		scare:    scare,
		mode:     mode,
		float:    float,
		wander:   wander,
		speech:   speech,
		queue:    game.NewPhraseQueue(nil, rng),
		region:   region,
		settings: settings,
		rng:      rng,
	}
	s.RebuildPool()
	s.ScheduleNext()
	return s
}

// RebuildPool 根据当前设置重建惊吓短语池
// 空的自定义列表回退到内置 30 条惊吓短语
func (s *ScareSystem) RebuildPool() {
	pool := s.settings.CustomScarePhrases
	if len(pool) == 0 {
		pool = game.BuiltinScarePhrases
	}
	s.queue.SetPool(pool)
}

// ScheduleNext 在配置的间隔范围内随机安排下一次周期性惊吓
func (s *ScareSystem) ScheduleNext() {
	lo := s.settings.ScareMinSeconds
	hi := s.settings.ScareMaxSeconds
	if lo > hi {
		lo, hi = hi, lo
	}
	s.scare.Countdown = lo + s.rng.Float64()*(hi-lo)
}

// Trigger 立即开始惊吓（手动触发路径）
//
// 无视 scareEnabled 闸门；惊吓进行中重复触发被忽略（不可打断）。
func (s *ScareSystem) Trigger() {
	if s.scare.Phase != components.ScareIdle {
		return
	}
	s.begin()
}

// begin 进入 FadeIn 阶段
//
// 保存漫游位置后把幽灵定格到区域中心（此刻不透明度为 0，不会看到瞬移），
// 选一条惊吓语并常驻显示到惊吓结束。
func (s *ScareSystem) begin() {
	sc := s.scare
	w := s.wander

	sc.SavedX, sc.SavedY = w.CurrentX, w.CurrentY
	sc.SavedTargetX, sc.SavedTargetY = w.TargetX, w.TargetY
	w.CurrentX = s.region.CenterX()
	w.CurrentY = s.region.CenterY()

	sc.Phase = components.ScareFadeIn
	sc.Elapsed = 0
	s.mode.Current = components.ModeScaring
	s.float.Opacity = 0

	phrase := s.queue.Next()
	s.speech.Say(phrase)
	log.Printf("[ScareSystem] Scare started: %q", phrase)
}

// finish 回到 Idle 并恢复惊吓前的漫游轨迹
//
// 此刻不透明度为 0，位置恢复不会被看到；漫游从原位置向原目标继续。
func (s *ScareSystem) finish() {
	sc := s.scare
	w := s.wander

	w.CurrentX, w.CurrentY = sc.SavedX, sc.SavedY
	w.TargetX, w.TargetY = sc.SavedTargetX, sc.SavedTargetY

	sc.Phase = components.ScareIdle
	sc.Elapsed = 0
	s.mode.Current = components.ModeWandering
	s.speech.Dismiss()
	s.ScheduleNext()
	log.Printf("[ScareSystem] Scare finished, wandering resumes")
}

// Update 推进惊吓状态机
//
// 参数：
//   - dt: 时间增量（秒）
func (s *ScareSystem) Update(dt float64) {
	sc := s.scare

	switch sc.Phase {
	case components.ScareIdle:
		// 周期路径：仅在开关打开时倒计时
		if !s.settings.ScareEnabled {
			return
		}
		sc.Countdown -= dt
		if sc.Countdown <= 0 {
			s.begin()
		}

	case components.ScareFadeIn:
		sc.Elapsed += dt
		s.float.Opacity = utils.Clamp01(sc.Elapsed / config.ScareFadeInSeconds)
		if sc.Elapsed >= config.ScareFadeInSeconds {
			sc.Phase = components.ScareHolding
			sc.Elapsed = 0
		}

	case components.ScareHolding:
		sc.Elapsed += dt
		s.float.Opacity = 1.0
		if sc.Elapsed >= config.ScareHoldSeconds {
			sc.Phase = components.ScareFadeOut
			sc.Elapsed = 0
		}

	case components.ScareFadeOut:
		sc.Elapsed += dt
		s.float.Opacity = utils.Clamp01(1.0 - sc.Elapsed/config.ScareFadeOutSeconds)
		if sc.Elapsed >= config.ScareFadeOutSeconds {
			s.finish()
		}
	}
}
