package components

// OpacityPhaseCount 不透明度相位累加器数量
//
// 三路速率互不成整数比（0.3 / 0.7 / 1.1），叠加后的波形有效周期很长，
// 闪烁看起来不具有明显的周期性。
const OpacityPhaseCount = 3

// FloatComponent 漂浮动画组件
// 存储上下漂浮、裙摆波浪和不透明度闪烁的相位状态，供 FloatSystem 使用
// 注意：遵循 ECS 原则，组件仅存储数据，不包含方法
type FloatComponent struct {
	// BobPhase 上下漂浮相位（弧度，单调递增，mod 2π）
	BobPhase float64

	// BobOffset 当前帧的垂直漂浮偏移（像素），= sin(BobPhase) * BobAmplitude
	BobOffset float64

	// HemWavePhase 裙摆波浪相位（弧度），渲染系统据此计算四段波浪控制点
	HemWavePhase float64

	// OpacityPhases 不透明度相位累加器，每路以各自速率推进
	OpacityPhases [OpacityPhaseCount]float64

	// Opacity 当前显示的不透明度，始终处于 [0,1]；
	// 非惊吓期间由 FloatSystem 写入并限制在 [opacityMin, opacityMax]，
	// 惊吓期间由 ScareSystem 按淡入淡出曲线写入
	Opacity float64
}
