package config

// 基础坐标系常量
//
// 幽灵在一个固定的 220x210 逻辑坐标系中绘制，缩放通过窗口尺寸实现
// （Layout 始终返回逻辑尺寸，Ebitengine 自动缩放到实际窗口大小）。
const (
	// BaseWindowWidth 逻辑窗口宽度（像素）
	BaseWindowWidth = 220
	// BaseWindowHeight 逻辑窗口高度（像素）
	BaseWindowHeight = 210

	// GhostOffsetX 幽灵绘制区域在窗口内的 X 偏移（(220-80)/2）
	GhostOffsetX = 70
	// GhostOffsetY 幽灵绘制区域在窗口内的 Y 偏移（上方留给气泡和尾巴）
	GhostOffsetY = 90

	// GhostAreaWidth 幽灵绘制区域宽度
	GhostAreaWidth = 80
	// GhostCenterX 幽灵身体中心在绘制区域内的 X 坐标
	GhostCenterX = 40
	// GhostCenterY 幽灵身体中心在绘制区域内的 Y 坐标
	GhostCenterY = 50
)

// 动画时序常量（秒），数值为手调结果
const (
	// BobRate 上下漂浮相位推进速率（弧度/秒）
	BobRate = 2.0
	// BobAmplitude 上下漂浮振幅（像素）
	BobAmplitude = 5.0
	// HemWaveRate 裙摆波浪相位推进速率（弧度/秒）
	HemWaveRate = 3.0
	// HemWaveAmplitude 裙摆波浪振幅（像素）
	HemWaveAmplitude = 4.0

	// OpacityBase 不透明度基准值，在此之上叠加三路正弦波
	OpacityBase = 0.55

	// WanderRepickSeconds 漫游目标重选周期（秒）
	WanderRepickSeconds = 5.0
	// WanderMargin 漫游目标距区域边缘的最小距离（像素）
	WanderMargin = 100.0
	// WanderSpeedFactor 配置 speed 每单位对应的移动速度（像素/秒）
	WanderSpeedFactor = 33.0

	// GreetingDelaySeconds 启动后首条问候语的延迟（秒）
	GreetingDelaySeconds = 1.0
	// BubbleSeconds 气泡显示时长（秒）
	BubbleSeconds = 3.0

	// ScareFadeInSeconds 惊吓淡入时长（秒）
	ScareFadeInSeconds = 1.5
	// ScareHoldSeconds 惊吓完全显示的保持时长（秒）
	ScareHoldSeconds = 2.0
	// ScareFadeOutSeconds 惊吓淡出时长（秒）
	ScareFadeOutSeconds = 5.0
)

// 气泡布局常量
const (
	// BubbleMinWidth 气泡最小宽度（像素）
	BubbleMinWidth = 150
	// BubbleHeight 气泡高度（像素）
	BubbleHeight = 60
	// BubbleTop 气泡顶部在窗口内的 Y 坐标
	BubbleTop = 5
	// BubbleMinAlpha 气泡可见时整帧透明度下限，保证文字在幽灵很淡时仍可读
	BubbleMinAlpha = 0.6
)

// GreetingPhrase 启动问候语
const GreetingPhrase = "Boo! I'm your new friend!"
