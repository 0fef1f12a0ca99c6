package components

// BlinkStyle 眨眼样式
type BlinkStyle int

const (
	// BlinkClosed 闭眼（两条横线）
	BlinkClosed BlinkStyle = iota
	// BlinkSquint 眯眼（>< 形）
	BlinkSquint
)

// MouthStyle 嘴巴表情
type MouthStyle int

const (
	// MouthNormal 默认微笑
	MouthNormal MouthStyle = iota
	// MouthO 惊讶的 O 形嘴（带抖动）
	MouthO
	// MouthHappy 大咧嘴笑
	MouthHappy
)

// ExpressionComponent 表情组件
// 存储眨眼、闪亮眼、嘴巴表情和小手臂的随机调度状态，供 ExpressionSystem 使用
// 注意：遵循 ECS 原则，组件仅存储数据，不包含方法
type ExpressionComponent struct {
	// 眨眼：每 3~7 秒一次，闭眼 150ms / 眯眼 300ms
	Blinking       bool
	BlinkStyle     BlinkStyle
	BlinkCountdown float64 // 距离下次眨眼的倒计时（秒）
	BlinkRemaining float64 // 当前眨眼剩余时长（秒）

	// 闪亮眼：每 20~40 秒一次，持续 2 秒
	SparkleActive    bool
	SparkleElapsed   float64 // 本次闪亮已持续时间（秒），渲染星形时作为动画时钟
	SparkleCountdown float64

	// 嘴巴表情：每 10~25 秒一次，O 形 1.5 秒 / 咧嘴 2 秒
	Mouth          MouthStyle
	MouthElapsed   float64
	MouthCountdown float64

	// 小手臂：每 15~35 秒伸出一次，持续 3 秒（0.4s 缓入 / 2.2s 保持 / 0.4s 缓出）
	ArmsActive    bool
	ArmsElapsed   float64
	ArmsCountdown float64
}
