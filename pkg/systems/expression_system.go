package systems

import (
	"math/rand"

	"github.com/decker502/ghost-pet/pkg/components"
)

// 表情调度常量（秒），数值为手调结果
const (
	blinkMinInterval   = 3.0
	blinkMaxInterval   = 7.0
	blinkClosedSeconds = 0.15
	blinkSquintSeconds = 0.3

	sparkleMinInterval = 20.0
	sparkleMaxInterval = 40.0
	sparkleSeconds     = 2.0

	mouthMinInterval = 10.0
	mouthMaxInterval = 25.0
	mouthOSeconds    = 1.5
	mouthGrinSeconds = 2.0

	armsMinInterval = 15.0
	armsMaxInterval = 35.0
	// ArmsTotalSeconds 手臂动画总时长：0.4s 缓入 + 2.2s 保持 + 0.4s 缓出
	ArmsTotalSeconds   = 3.0
	ArmsEaseInSeconds  = 0.4
	ArmsEaseOutSeconds = 0.4
)

// ExpressionSystem 表情系统
// 按各自的随机周期调度眨眼、闪亮眼、嘴巴表情和小手臂动画，
// 这些都是纯装饰动画，与模式转移无关
type ExpressionSystem struct {
	expr *components.ExpressionComponent
	rng  *rand.Rand
}

// NewExpressionSystem 创建表情系统
func NewExpressionSystem(expr *components.ExpressionComponent, rng *rand.Rand) *ExpressionSystem {
	s := &ExpressionSystem{expr: expr, rng: rng}
	expr.BlinkCountdown = s.interval(blinkMinInterval, blinkMaxInterval)
	expr.SparkleCountdown = s.interval(sparkleMinInterval, sparkleMaxInterval)
	expr.MouthCountdown = s.interval(mouthMinInterval, mouthMaxInterval)
	expr.ArmsCountdown = s.interval(armsMinInterval, armsMaxInterval)
	return s
}

// interval 在 [lo, hi] 范围内取随机时长
func (s *ExpressionSystem) interval(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Update 推进表情调度
//
// 参数：
//   - dt: 时间增量（秒）
func (s *ExpressionSystem) Update(dt float64) {
	e := s.expr

	// 眨眼
	if e.Blinking {
		e.BlinkRemaining -= dt
		if e.BlinkRemaining <= 0 {
			e.Blinking = false
			e.BlinkCountdown = s.interval(blinkMinInterval, blinkMaxInterval)
		}
	} else {
		e.BlinkCountdown -= dt
		if e.BlinkCountdown <= 0 {
			e.Blinking = true
			// 闭眼出现的概率是眯眼的两倍
			if s.rng.Intn(3) == 2 {
				e.BlinkStyle = components.BlinkSquint
				e.BlinkRemaining = blinkSquintSeconds
			} else {
				e.BlinkStyle = components.BlinkClosed
				e.BlinkRemaining = blinkClosedSeconds
			}
		}
	}

	// 闪亮眼
	if e.SparkleActive {
		e.SparkleElapsed += dt
		if e.SparkleElapsed >= sparkleSeconds {
			e.SparkleActive = false
			e.SparkleCountdown = s.interval(sparkleMinInterval, sparkleMaxInterval)
		}
	} else {
		e.SparkleCountdown -= dt
		if e.SparkleCountdown <= 0 {
			e.SparkleActive = true
			e.SparkleElapsed = 0
		}
	}

	// 嘴巴表情
	if e.Mouth != components.MouthNormal {
		e.MouthElapsed += dt
		duration := mouthGrinSeconds
		if e.Mouth == components.MouthO {
			duration = mouthOSeconds
		}
		if e.MouthElapsed >= duration {
			e.Mouth = components.MouthNormal
			e.MouthCountdown = s.interval(mouthMinInterval, mouthMaxInterval)
		}
	} else {
		e.MouthCountdown -= dt
		if e.MouthCountdown <= 0 {
			if s.rng.Intn(2) == 0 {
				e.Mouth = components.MouthO
			} else {
				e.Mouth = components.MouthHappy
			}
			e.MouthElapsed = 0
		}
	}

	// 小手臂
	if e.ArmsActive {
		e.ArmsElapsed += dt
		if e.ArmsElapsed >= ArmsTotalSeconds {
			e.ArmsActive = false
			e.ArmsCountdown = s.interval(armsMinInterval, armsMaxInterval)
		}
	} else {
		e.ArmsCountdown -= dt
		if e.ArmsCountdown <= 0 {
			e.ArmsActive = true
			e.ArmsElapsed = 0
		}
	}
}
