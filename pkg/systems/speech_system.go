package systems

import (
	"math/rand"

	"github.com/decker502/ghost-pet/pkg/components"
	"github.com/decker502/ghost-pet/pkg/config"
	"github.com/decker502/ghost-pet/pkg/game"
)

// SpeechSystem 说话系统
// 驱动周期性说话倒计时、气泡生命周期和启动问候；
// 短语从无重复循环队列中抽取，自定义短语为空时回退到内置短语池
type SpeechSystem struct {
	speech   *components.SpeechComponent
	mode     *components.ModeComponent
	queue    *game.PhraseQueue
	settings *game.GhostSettings
	rng      *rand.Rand
}

// NewSpeechSystem 创建说话系统
func NewSpeechSystem(speech *components.SpeechComponent, mode *components.ModeComponent, settings *game.GhostSettings, rng *rand.Rand) *SpeechSystem {
	s := &SpeechSystem{
		speech:   speech,
		mode:     mode,
		queue:    game.NewPhraseQueue(nil, rng),
		settings: settings,
		rng:      rng,
	}
	s.RebuildPool()

	speech.SpeakCountdown = settings.PhraseIntervalSeconds
	speech.GreetingCountdown = config.GreetingDelaySeconds

	return s
}

// RebuildPool 根据当前设置重建短语池
//
// 自定义短语非空时覆盖内置短语池；空的自定义列表视为"没有覆盖"，
// 回退到内置 47 条短语，永远不会产生空队列。
// 设置变更（ApplySettings）时调用。
func (s *SpeechSystem) RebuildPool() {
	pool := s.settings.CustomPhrases
	if len(pool) == 0 {
		pool = game.BuiltinPhrases
	}
	s.queue.SetPool(pool)
}

// ResetCountdown 按当前设置重置说话倒计时（设置变更时调用）
func (s *SpeechSystem) ResetCountdown() {
	s.speech.SpeakCountdown = s.settings.PhraseIntervalSeconds
}

// Say 立即显示指定短语的气泡
//
// 气泡宽度按短语长度计算；非惊吓模式下进入 Speaking 模式。
// ScareSystem 在淡入时用它显示惊吓语（此时模式已是 Scaring，不改写）。
func (s *SpeechSystem) Say(phrase string) {
	sp := s.speech
	sp.Message = phrase
	sp.Width = float64(config.BubbleMinWidth)
	if w := float64(len(phrase)*10 + 40); w > sp.Width {
		sp.Width = w
	}
	sp.Active = true
	sp.Remaining = config.BubbleSeconds

	if s.mode.Current != components.ModeScaring {
		s.mode.Current = components.ModeSpeaking
	}
}

// Dismiss 立即隐藏气泡
func (s *SpeechSystem) Dismiss() {
	s.speech.Active = false
	s.speech.Message = ""
	if s.mode.Current == components.ModeSpeaking {
		s.mode.Current = components.ModeWandering
	}
}

// Update 推进说话节奏
//
// 参数：
//   - dt: 时间增量（秒）
func (s *SpeechSystem) Update(dt float64) {
	sp := s.speech

	// 启动问候：延迟固定时间后说一句固定的话
	if sp.GreetingCountdown > 0 {
		sp.GreetingCountdown -= dt
		if sp.GreetingCountdown <= 0 {
			s.Say(config.GreetingPhrase)
		}
	}

	// 气泡生命周期
	if sp.Active {
		sp.Remaining -= dt
		// 惊吓中的气泡由 ScareSystem 在淡出结束时关闭
		if sp.Remaining <= 0 && s.mode.Current != components.ModeScaring {
			s.Dismiss()
		}
	}

	// 惊吓模式下暂停周期性说话
	if s.mode.Current == components.ModeScaring {
		return
	}

	// 周期性说话倒计时
	sp.SpeakCountdown -= dt
	if sp.SpeakCountdown <= 0 {
		sp.SpeakCountdown = s.settings.PhraseIntervalSeconds
		// 概率闸门：不是每次触发都开口
		if s.rng.Float64() < s.settings.SpeakChance {
			s.Say(s.queue.Next())
		}
	}
}
