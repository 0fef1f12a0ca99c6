package components

// ScarePhase 惊吓状态机的阶段
type ScarePhase int

const (
	// ScareIdle 空闲：未在惊吓中
	ScareIdle ScarePhase = iota
	// ScareFadeIn 淡入：不透明度 0→1，窗口已置顶并定格
	ScareFadeIn
	// ScareHolding 保持：完全不透明，惊吓语可见
	ScareHolding
	// ScareFadeOut 淡出：不透明度 1→0，结束后回到空闲
	ScareFadeOut
)

// String 返回阶段的可读名称（日志用）
func (p ScarePhase) String() string {
	switch p {
	case ScareIdle:
		return "Idle"
	case ScareFadeIn:
		return "FadeIn"
	case ScareHolding:
		return "Holding"
	case ScareFadeOut:
		return "FadeOut"
	default:
		return "Unknown"
	}
}

// ScareComponent 惊吓组件
// 存储惊吓状态机的阶段和计时状态，供 ScareSystem 使用
// 注意：遵循 ECS 原则，组件仅存储数据，不包含方法
type ScareComponent struct {
	// Phase 当前阶段
	Phase ScarePhase

	// Elapsed 当前阶段已经过时间（秒）
	Elapsed float64

	// Countdown 距离下次周期性惊吓的倒计时（秒）
	// 仅在 scareEnabled 时递减；手动触发不受其影响
	Countdown float64

	// SavedX / SavedY 惊吓前保存的漫游位置，惊吓结束后从这里恢复漂移
	SavedX float64
	SavedY float64

	// SavedTargetX / SavedTargetY 惊吓前保存的漫游目标
	SavedTargetX float64
	SavedTargetY float64
}
