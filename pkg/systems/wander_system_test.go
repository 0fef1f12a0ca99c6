package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/ghost-pet/pkg/components"
	"github.com/decker502/ghost-pet/pkg/config"
	"github.com/decker502/ghost-pet/pkg/game"
)

func testRegion() game.Region {
	return game.Region{MinX: 0, MinY: 0, MaxX: 1920, MaxY: 1080}
}

// TestWanderSystemInitialState 测试初始位置在区域中心且立即开始移动
func TestWanderSystemInitialState(t *testing.T) {
	var wander components.WanderComponent
	var mode components.ModeComponent
	region := testRegion()

	NewWanderSystem(&wander, &mode, region, game.DefaultSettings(), rand.New(rand.NewSource(1)))

	if wander.CurrentX != region.CenterX() || wander.CurrentY != region.CenterY() {
		t.Errorf("Initial position: got (%v,%v), want center (%v,%v)",
			wander.CurrentX, wander.CurrentY, region.CenterX(), region.CenterY())
	}
	if !wander.Moving {
		t.Error("Moving: got false, want true after construction")
	}
	if wander.Direction != 1 && wander.Direction != -1 {
		t.Errorf("Direction: got %d, want 1 or -1", wander.Direction)
	}
}

// TestWanderSystemStaysInRegion 测试长时间漫游不会离开区域
func TestWanderSystemStaysInRegion(t *testing.T) {
	var wander components.WanderComponent
	var mode components.ModeComponent
	region := testRegion()
	settings := game.DefaultSettings()
	settings.Speed = 20.0 // 最高速度下也不能越界

	s := NewWanderSystem(&wander, &mode, region, settings, rand.New(rand.NewSource(7)))

	dt := 1.0 / 60.0
	for i := 0; i < 36000; i++ { // 模拟 10 分钟
		s.Update(dt)
		if !region.Contains(wander.CurrentX, wander.CurrentY) {
			t.Fatalf("Tick %d: position (%v,%v) left region", i, wander.CurrentX, wander.CurrentY)
		}
	}
}

// TestWanderSystemTargetMargin 测试目标点保留边距
func TestWanderSystemTargetMargin(t *testing.T) {
	var wander components.WanderComponent
	var mode components.ModeComponent
	region := testRegion()

	s := NewWanderSystem(&wander, &mode, region, game.DefaultSettings(), rand.New(rand.NewSource(3)))

	for i := 0; i < 200; i++ {
		s.PickNewDestination()
		if wander.TargetX < config.WanderMargin || wander.TargetX > region.Width()-config.WanderMargin {
			t.Fatalf("Pick %d: target X %v violates margin %v", i, wander.TargetX, config.WanderMargin)
		}
		if wander.TargetY < config.WanderMargin || wander.TargetY > region.Height()-config.WanderMargin {
			t.Fatalf("Pick %d: target Y %v violates margin %v", i, wander.TargetY, config.WanderMargin)
		}
	}
}

// TestWanderSystemTinyRegion 测试小于两倍边距的区域不会产生越界目标
func TestWanderSystemTinyRegion(t *testing.T) {
	var wander components.WanderComponent
	var mode components.ModeComponent
	region := game.Region{MinX: 0, MinY: 0, MaxX: 120, MaxY: 80}

	s := NewWanderSystem(&wander, &mode, region, game.DefaultSettings(), rand.New(rand.NewSource(5)))

	dt := 1.0 / 60.0
	for i := 0; i < 3600; i++ {
		s.Update(dt)
		if !region.Contains(wander.CurrentX, wander.CurrentY) {
			t.Fatalf("Tick %d: position (%v,%v) left tiny region", i, wander.CurrentX, wander.CurrentY)
		}
		if !region.Contains(wander.TargetX, wander.TargetY) {
			t.Fatalf("Tick %d: target (%v,%v) outside tiny region", i, wander.TargetX, wander.TargetY)
		}
	}
}

// TestWanderSystemFrozenDuringScare 测试惊吓模式下位置定格
func TestWanderSystemFrozenDuringScare(t *testing.T) {
	var wander components.WanderComponent
	var mode components.ModeComponent

	s := NewWanderSystem(&wander, &mode, testRegion(), game.DefaultSettings(), rand.New(rand.NewSource(1)))

	mode.Current = components.ModeScaring
	x, y := wander.CurrentX, wander.CurrentY
	for i := 0; i < 600; i++ {
		s.Update(1.0 / 60.0)
	}

	if wander.CurrentX != x || wander.CurrentY != y {
		t.Errorf("Position during scare: got (%v,%v), want frozen at (%v,%v)",
			wander.CurrentX, wander.CurrentY, x, y)
	}
}

// TestWanderSystemDirectionFollowsTarget 测试朝向跟随目标的水平方位
func TestWanderSystemDirectionFollowsTarget(t *testing.T) {
	var wander components.WanderComponent
	var mode components.ModeComponent

	s := NewWanderSystem(&wander, &mode, testRegion(), game.DefaultSettings(), rand.New(rand.NewSource(11)))

	for i := 0; i < 100; i++ {
		before := wander.CurrentX
		s.PickNewDestination()
		if wander.TargetX >= before && wander.Direction != 1 {
			t.Fatalf("Pick %d: target right of current but direction %d", i, wander.Direction)
		}
		if wander.TargetX < before && wander.Direction != -1 {
			t.Fatalf("Pick %d: target left of current but direction %d", i, wander.Direction)
		}
	}
}

// TestWanderSystemRepick 测试超时后重选目标
func TestWanderSystemRepick(t *testing.T) {
	var wander components.WanderComponent
	var mode components.ModeComponent
	settings := game.DefaultSettings()
	settings.Speed = 0.1 // 走得很慢，确保不会提前到达

	s := NewWanderSystem(&wander, &mode, testRegion(), settings, rand.New(rand.NewSource(2)))

	firstX, firstY := wander.TargetX, wander.TargetY
	dt := 1.0 / 60.0
	for i := 0; i < int(config.WanderRepickSeconds/dt)+2; i++ {
		s.Update(dt)
	}

	if wander.TargetX == firstX && wander.TargetY == firstY {
		t.Error("Target unchanged after repick timeout")
	}
}
