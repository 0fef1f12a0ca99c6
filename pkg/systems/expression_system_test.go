package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/ghost-pet/pkg/components"
)

// TestExpressionSystemInitialCountdowns 测试各表情调度在构造时就已排期
func TestExpressionSystemInitialCountdowns(t *testing.T) {
	var expr components.ExpressionComponent
	NewExpressionSystem(&expr, rand.New(rand.NewSource(1)))

	if expr.BlinkCountdown < blinkMinInterval || expr.BlinkCountdown > blinkMaxInterval {
		t.Errorf("BlinkCountdown %v outside [%v, %v]", expr.BlinkCountdown, blinkMinInterval, blinkMaxInterval)
	}
	if expr.SparkleCountdown < sparkleMinInterval || expr.SparkleCountdown > sparkleMaxInterval {
		t.Errorf("SparkleCountdown %v outside [%v, %v]", expr.SparkleCountdown, sparkleMinInterval, sparkleMaxInterval)
	}
	if expr.MouthCountdown < mouthMinInterval || expr.MouthCountdown > mouthMaxInterval {
		t.Errorf("MouthCountdown %v outside [%v, %v]", expr.MouthCountdown, mouthMinInterval, mouthMaxInterval)
	}
	if expr.ArmsCountdown < armsMinInterval || expr.ArmsCountdown > armsMaxInterval {
		t.Errorf("ArmsCountdown %v outside [%v, %v]", expr.ArmsCountdown, armsMinInterval, armsMaxInterval)
	}
}

// TestExpressionSystemAllAnimationsFire 测试长时间运行后每种表情都出现过并都会结束
func TestExpressionSystemAllAnimationsFire(t *testing.T) {
	var expr components.ExpressionComponent
	s := NewExpressionSystem(&expr, rand.New(rand.NewSource(42)))

	blinks, sparkles, mouths, arms := 0, 0, 0, 0
	sawSquint, sawClosed, sawO, sawHappy := false, false, false, false

	dt := 1.0 / 60.0
	wasBlinking, wasSparkle, wasArms := false, false, false
	prevMouth := components.MouthNormal
	for i := 0; i < int(600.0/dt); i++ { // 模拟 10 分钟
		s.Update(dt)

		if expr.Blinking && !wasBlinking {
			blinks++
			switch expr.BlinkStyle {
			case components.BlinkSquint:
				sawSquint = true
			case components.BlinkClosed:
				sawClosed = true
			}
		}
		wasBlinking = expr.Blinking

		if expr.SparkleActive && !wasSparkle {
			sparkles++
		}
		wasSparkle = expr.SparkleActive

		if expr.Mouth != components.MouthNormal && prevMouth == components.MouthNormal {
			mouths++
			switch expr.Mouth {
			case components.MouthO:
				sawO = true
			case components.MouthHappy:
				sawHappy = true
			}
		}
		prevMouth = expr.Mouth

		if expr.ArmsActive && !wasArms {
			arms++
		}
		wasArms = expr.ArmsActive
	}

	// 10 分钟内：眨眼间隔 3~7s 约 85 次，闪亮眼 20~40s 约 20 次
	if blinks < 50 {
		t.Errorf("Blinks in 10min: got %d, want >= 50", blinks)
	}
	if sparkles < 5 {
		t.Errorf("Sparkles in 10min: got %d, want >= 5", sparkles)
	}
	if mouths < 10 {
		t.Errorf("Mouth expressions in 10min: got %d, want >= 10", mouths)
	}
	if arms < 5 {
		t.Errorf("Arm animations in 10min: got %d, want >= 5", arms)
	}

	if !sawClosed || !sawSquint {
		t.Errorf("Blink styles: closed=%v squint=%v, want both", sawClosed, sawSquint)
	}
	if !sawO || !sawHappy {
		t.Errorf("Mouth styles: O=%v happy=%v, want both", sawO, sawHappy)
	}
}

// TestExpressionSystemBlinkEnds 测试眨眼在固定时长后结束并重新排期
func TestExpressionSystemBlinkEnds(t *testing.T) {
	var expr components.ExpressionComponent
	s := NewExpressionSystem(&expr, rand.New(rand.NewSource(2)))

	// 直接触发眨眼
	expr.BlinkCountdown = 0
	s.Update(1.0 / 60.0)
	if !expr.Blinking {
		t.Fatal("Blink did not start with countdown at 0")
	}

	dt := 1.0 / 60.0
	for i := 0; i < int(blinkSquintSeconds/dt)+2; i++ {
		s.Update(dt)
	}

	if expr.Blinking {
		t.Error("Blink still active after its duration")
	}
	if expr.BlinkCountdown <= 0 {
		t.Error("Next blink not scheduled after blink ended")
	}
}
