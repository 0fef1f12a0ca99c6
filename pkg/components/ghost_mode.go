package components

// GhostMode 幽灵当前的行为模式
type GhostMode int

const (
	// ModeWandering 漫游模式（默认）：在选定区域内漂移
	ModeWandering GhostMode = iota
	// ModeSpeaking 说话模式：气泡可见，继续漂移
	ModeSpeaking
	// ModeScaring 惊吓模式：置顶定格播放惊吓动画，不可打断
	ModeScaring
)

// String 返回模式的可读名称（日志用）
func (m GhostMode) String() string {
	switch m {
	case ModeWandering:
		return "Wandering"
	case ModeSpeaking:
		return "Speaking"
	case ModeScaring:
		return "Scaring"
	default:
		return "Unknown"
	}
}

// ModeComponent 模式组件
// 注意：遵循 ECS 原则，组件仅存储数据，不包含逻辑
type ModeComponent struct {
	// Current 当前模式，由 SpeechSystem / ScareSystem 切换
	Current GhostMode
}
