package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseInOutSine 正弦缓入缓出
// 特点：两端平滑，中段匀速（用于手臂伸出/收回）
// 公式：f(t) = (1 - cos(πt)) / 2
func EaseInOutSine(t float64) float64 {
	return (1 - math.Cos(t*math.Pi)) / 2
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将数值限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp 将数值限制在 [min, max] 范围内
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
