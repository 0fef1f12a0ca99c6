package components

// SpeechComponent 说话气泡组件
// 存储气泡内容和说话节奏的计时状态，供 SpeechSystem 使用
// 注意：遵循 ECS 原则，组件仅存储数据，不包含方法
type SpeechComponent struct {
	// Message 当前气泡文字
	Message string

	// Active 气泡是否可见
	Active bool

	// Width 气泡宽度（像素），= max(150, 10*len(Message)+40)
	Width float64

	// Remaining 气泡剩余显示时间（秒），归零时气泡消失
	Remaining float64

	// SpeakCountdown 距离下次周期性说话触发的倒计时（秒）
	SpeakCountdown float64

	// GreetingCountdown 启动问候倒计时（秒），小于零表示已问候
	GreetingCountdown float64
}
