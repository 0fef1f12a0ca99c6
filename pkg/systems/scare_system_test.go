package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/ghost-pet/pkg/components"
	"github.com/decker502/ghost-pet/pkg/config"
	"github.com/decker502/ghost-pet/pkg/game"
)

// scareTestRig 惊吓测试所需的组件与系统集合
type scareTestRig struct {
	scare  *components.ScareComponent
	mode   *components.ModeComponent
	float  *components.FloatComponent
	wander *components.WanderComponent
	speech *components.SpeechComponent
	region game.Region
	system *ScareSystem
}

// newScareTestRig 组装惊吓测试环境
func newScareTestRig(settings *game.GhostSettings, seed int64) *scareTestRig {
	rig := &scareTestRig{
		scare:  &components.ScareComponent{},
		mode:   &components.ModeComponent{},
		float:  &components.FloatComponent{},
		wander: &components.WanderComponent{},
		speech: &components.SpeechComponent{},
		region: game.Region{MinX: 0, MinY: 0, MaxX: 1920, MaxY: 1080},
	}
	rng := rand.New(rand.NewSource(seed))
	speechSystem := NewSpeechSystem(rig.speech, rig.mode, settings, rng)
	rig.speech.GreetingCountdown = 0
	rig.system = NewScareSystem(rig.scare, rig.mode, rig.float, rig.wander, speechSystem, rig.region, settings, rng)
	return rig
}

// TestScareSystemManualTrigger 测试手动触发走完整个状态机
func TestScareSystemManualTrigger(t *testing.T) {
	settings := game.DefaultSettings()
	settings.ScareEnabled = false // 手动路径无视开关
	rig := newScareTestRig(settings, 1)

	rig.wander.CurrentX, rig.wander.CurrentY = 100, 200
	rig.wander.TargetX, rig.wander.TargetY = 300, 400

	rig.system.Trigger()

	if rig.scare.Phase != components.ScareFadeIn {
		t.Fatalf("Phase after Trigger: got %v, want FadeIn", rig.scare.Phase)
	}
	if rig.mode.Current != components.ModeScaring {
		t.Errorf("Mode: got %v, want Scaring", rig.mode.Current)
	}
	if rig.float.Opacity != 0 {
		t.Errorf("Opacity at scare start: got %v, want 0", rig.float.Opacity)
	}
	if !rig.speech.Active {
		t.Error("Scare phrase bubble not shown")
	}
	if rig.wander.CurrentX != rig.region.CenterX() || rig.wander.CurrentY != rig.region.CenterY() {
		t.Errorf("Position: got (%v,%v), want region center", rig.wander.CurrentX, rig.wander.CurrentY)
	}

	dt := 1.0 / 60.0
	step := func(seconds float64) {
		for i := 0; i < int(seconds/dt)+1; i++ {
			rig.system.Update(dt)
		}
	}

	step(config.ScareFadeInSeconds)
	if rig.scare.Phase != components.ScareHolding {
		t.Fatalf("Phase after fade in: got %v, want Holding", rig.scare.Phase)
	}
	if rig.float.Opacity != 1.0 {
		t.Errorf("Opacity in hold: got %v, want 1.0", rig.float.Opacity)
	}

	step(config.ScareHoldSeconds)
	if rig.scare.Phase != components.ScareFadeOut {
		t.Fatalf("Phase after hold: got %v, want FadeOut", rig.scare.Phase)
	}

	step(config.ScareFadeOutSeconds)
	if rig.scare.Phase != components.ScareIdle {
		t.Fatalf("Phase after fade out: got %v, want Idle", rig.scare.Phase)
	}
	if rig.mode.Current != components.ModeWandering {
		t.Errorf("Mode after scare: got %v, want Wandering", rig.mode.Current)
	}
	if rig.speech.Active {
		t.Error("Bubble still active after scare finished")
	}

	// 惊吓前的漫游轨迹被恢复
	if rig.wander.CurrentX != 100 || rig.wander.CurrentY != 200 {
		t.Errorf("Restored position: got (%v,%v), want (100,200)", rig.wander.CurrentX, rig.wander.CurrentY)
	}
	if rig.wander.TargetX != 300 || rig.wander.TargetY != 400 {
		t.Errorf("Restored target: got (%v,%v), want (300,400)", rig.wander.TargetX, rig.wander.TargetY)
	}
}

// TestScareSystemFadeCurve 测试淡入淡出期间不透明度单调且在 [0,1] 内
func TestScareSystemFadeCurve(t *testing.T) {
	settings := game.DefaultSettings()
	rig := newScareTestRig(settings, 2)

	rig.system.Trigger()

	dt := 1.0 / 60.0
	prev := rig.float.Opacity
	for rig.scare.Phase == components.ScareFadeIn {
		rig.system.Update(dt)
		if rig.float.Opacity < prev-1e-9 {
			t.Fatalf("Fade in not monotonic: %v -> %v", prev, rig.float.Opacity)
		}
		if rig.float.Opacity < 0 || rig.float.Opacity > 1 {
			t.Fatalf("Fade in opacity %v outside [0,1]", rig.float.Opacity)
		}
		prev = rig.float.Opacity
	}

	for rig.scare.Phase == components.ScareHolding {
		rig.system.Update(dt)
	}

	prev = rig.float.Opacity
	for rig.scare.Phase == components.ScareFadeOut {
		rig.system.Update(dt)
		if rig.float.Opacity > prev+1e-9 {
			t.Fatalf("Fade out not monotonic: %v -> %v", prev, rig.float.Opacity)
		}
		prev = rig.float.Opacity
	}

	// 淡出终点不透明度为 0，位置恢复不会被看到
	if math.Abs(rig.float.Opacity) > 1e-9 {
		t.Errorf("Opacity at fade out end: got %v, want 0", rig.float.Opacity)
	}
}

// TestScareSystemNotInterruptible 测试惊吓进行中重复触发被忽略
func TestScareSystemNotInterruptible(t *testing.T) {
	rig := newScareTestRig(game.DefaultSettings(), 3)

	rig.system.Trigger()
	for i := 0; i < 30; i++ {
		rig.system.Update(1.0 / 60.0)
	}
	elapsed := rig.scare.Elapsed
	phrase := rig.speech.Message

	rig.system.Trigger() // 应被忽略

	if rig.scare.Phase != components.ScareFadeIn {
		t.Errorf("Phase after re-trigger: got %v, want still FadeIn", rig.scare.Phase)
	}
	if rig.scare.Elapsed != elapsed {
		t.Errorf("Elapsed reset by re-trigger: got %v, want %v", rig.scare.Elapsed, elapsed)
	}
	if rig.speech.Message != phrase {
		t.Errorf("Phrase changed by re-trigger: got %q, want %q", rig.speech.Message, phrase)
	}
}

// TestScareSystemDisabledPeriodic 测试开关关闭时周期路径永不触发
func TestScareSystemDisabledPeriodic(t *testing.T) {
	settings := game.DefaultSettings()
	settings.ScareEnabled = false
	settings.ScareMinSeconds = 0.5
	settings.ScareMaxSeconds = 0.5
	rig := newScareTestRig(settings, 4)

	countdown := rig.scare.Countdown
	dt := 1.0 / 60.0
	for i := 0; i < int(10.0/dt); i++ {
		rig.system.Update(dt)
		if rig.scare.Phase != components.ScareIdle {
			t.Fatal("Periodic scare fired while disabled")
		}
	}

	// 开关关闭时倒计时也不走（不会在重新打开的瞬间立即爆发）
	if rig.scare.Countdown != countdown {
		t.Errorf("Countdown advanced while disabled: got %v, want %v", rig.scare.Countdown, countdown)
	}
}

// TestScareSystemPeriodicFires 测试周期路径在配置间隔内触发
func TestScareSystemPeriodicFires(t *testing.T) {
	settings := game.DefaultSettings()
	settings.ScareMinSeconds = 0.5
	settings.ScareMaxSeconds = 1.0
	rig := newScareTestRig(settings, 5)

	dt := 1.0 / 60.0
	fired := false
	for i := 0; i < int(2.0/dt); i++ {
		rig.system.Update(dt)
		if rig.scare.Phase != components.ScareIdle {
			fired = true
			break
		}
	}
	if !fired {
		t.Fatal("Periodic scare did not fire within 2s with interval [0.5, 1.0]")
	}
}

// TestScareSystemScheduleRange 测试下一次惊吓被安排在配置范围内
func TestScareSystemScheduleRange(t *testing.T) {
	settings := game.DefaultSettings()
	settings.ScareMinSeconds = 300
	settings.ScareMaxSeconds = 600
	rig := newScareTestRig(settings, 6)

	for i := 0; i < 100; i++ {
		rig.system.ScheduleNext()
		if rig.scare.Countdown < 300 || rig.scare.Countdown > 600 {
			t.Fatalf("Countdown %v outside [300, 600]", rig.scare.Countdown)
		}
	}
}

// TestScareSystemCustomPhrases 测试自定义惊吓短语覆盖内置池
func TestScareSystemCustomPhrases(t *testing.T) {
	settings := game.DefaultSettings()
	settings.CustomScarePhrases = []string{"GOTCHA"}
	rig := newScareTestRig(settings, 7)

	rig.system.Trigger()

	if rig.speech.Message != "GOTCHA" {
		t.Errorf("Scare phrase: got %q, want %q", rig.speech.Message, "GOTCHA")
	}
}
