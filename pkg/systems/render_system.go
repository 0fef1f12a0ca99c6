package systems

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/ghost-pet/pkg/components"
	"github.com/decker502/ghost-pet/pkg/config"
	"github.com/decker502/ghost-pet/pkg/utils"
)

// 绘制三角形时使用的白色纹理源（Ebitengine vector 绘制的惯用法）
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// 调色板
var (
	colorBody      = color.RGBA{255, 255, 255, 230}
	colorOutline   = color.RGBA{180, 180, 200, 255}
	colorShadow    = color.RGBA{0, 0, 0, 40}
	colorBlush     = color.RGBA{255, 180, 180, 100}
	colorEye       = color.RGBA{40, 40, 40, 255}
	colorEyeShine  = color.RGBA{255, 255, 255, 255}
	colorSparkle   = color.RGBA{255, 255, 100, 255}
	colorSparkleDo = color.RGBA{255, 255, 200, 255}
	colorMouthLine = color.RGBA{80, 80, 80, 255}
	colorMouthFill = color.RGBA{220, 100, 100, 140}
	colorBubble    = color.RGBA{255, 255, 255, 240}
	colorBubbleOut = color.RGBA{200, 200, 200, 255}
	colorBubbleTxt = color.RGBA{60, 60, 60, 255}
)

// RenderSystem 渲染系统
//
// 纯粹是状态的函数：给定当前帧已提交的组件状态，在固定的 220x210
// 逻辑坐标系中绘制气泡和幽灵身体，先合成到离屏图像，再以当前帧
// 不透明度一次性叠加到屏幕上——整体透明度单次应用，身体和气泡之间
// 不会出现混合不一致。缩放由窗口尺寸对固定逻辑尺寸的比例实现。
//
// Draw 可以以任意频率调用（例如外部触发的重绘），与 Update 节奏无关。
type RenderSystem struct {
	offscreen *ebiten.Image
	face      *text.GoTextFace
}

// NewRenderSystem 创建渲染系统并加载气泡字体
func NewRenderSystem() (*RenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bubble font: %w", err)
	}

	return &RenderSystem{
		offscreen: ebiten.NewImage(config.BaseWindowWidth, config.BaseWindowHeight),
		face:      &text.GoTextFace{Source: source, Size: 13},
	}, nil
}

// Draw 渲染一帧
//
// 参数全部只读；本方法不修改任何组件状态。
func (s *RenderSystem) Draw(
	screen *ebiten.Image,
	float *components.FloatComponent,
	wander *components.WanderComponent,
	speech *components.SpeechComponent,
	expr *components.ExpressionComponent,
	mode *components.ModeComponent,
) {
	s.offscreen.Clear()

	if speech.Active && speech.Message != "" {
		s.drawBubble(s.offscreen, speech)
	}
	s.drawGhost(s.offscreen, float, wander, expr)

	// 整体不透明度单次应用；气泡可见时保证可读下限
	// （惊吓期间例外：淡出必须一路降到 0）
	alpha := float.Opacity
	if speech.Active && mode.Current != components.ModeScaring && alpha < config.BubbleMinAlpha {
		alpha = config.BubbleMinAlpha
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(utils.Clamp01(alpha)))
	screen.DrawImage(s.offscreen, op)
}

// drawBubble 绘制说话气泡（圆角矩形 + 指向幽灵的尾巴 + 自动换行文字）
func (s *RenderSystem) drawBubble(dst *ebiten.Image, speech *components.SpeechComponent) {
	bw := speech.Width
	if max := float64(config.BaseWindowWidth - 10); bw > max {
		bw = max
	}
	bh := float64(config.BubbleHeight)
	bx := (float64(config.BaseWindowWidth) - bw) / 2
	by := float64(config.BubbleTop)

	// 气泡主体
	rectX := float32(bx + 5)
	rectY := float32(by + 5)
	rectW := float32(bw - 10)
	rectH := float32(bh - 10)

	var p vector.Path
	appendRoundedRect(&p, rectX, rectY, rectW, rectH, 15)

	// 尾巴朝下指向幽灵
	tailX := float32(config.BaseWindowWidth / 2)
	tailTop := float32(by + bh)
	p.MoveTo(tailX-10, tailTop-5)
	p.LineTo(tailX, tailTop+10)
	p.LineTo(tailX+10, tailTop-5)
	p.Close()

	fillPath(dst, &p, colorBubble)
	strokePath(dst, &p, 2, colorBubbleOut)

	// 文字：按气泡内宽换行，水平垂直都居中
	lines := utils.WrapText(speech.Message, s.face, float64(rectW)-16)
	joined := strings.Join(lines, "\n")
	lineSpacing := s.face.Size * 1.3
	_, textH := text.Measure(joined, s.face, lineSpacing)

	top := &text.DrawOptions{}
	top.GeoM.Translate(float64(config.BaseWindowWidth)/2, float64(rectY)+(float64(rectH)-textH)/2)
	top.ColorScale.ScaleWithColor(colorBubbleTxt)
	top.PrimaryAlign = text.AlignCenter
	top.LineSpacing = lineSpacing
	text.Draw(dst, joined, s.face, top)
}

// drawGhost 绘制幽灵身体及所有装饰元素
//
// 绘制顺序：手臂 → 影子 → 身体 → 腮红 → 眼睛 → 嘴巴。
// 向左移动时整体水平镜像。
func (s *RenderSystem) drawGhost(
	dst *ebiten.Image,
	float *components.FloatComponent,
	wander *components.WanderComponent,
	expr *components.ExpressionComponent,
) {
	flipped := wander.Direction < 0

	// 幽灵区域局部坐标 (0..80) → 窗口坐标，向左移动时水平镜像
	gx := func(lx float64) float32 {
		if flipped {
			lx = config.GhostAreaWidth - lx
		}
		return float32(config.GhostOffsetX + lx)
	}
	gy := func(ly float64) float32 {
		return float32(config.GhostOffsetY + ly)
	}

	const cx = float64(config.GhostCenterX)
	const cy = float64(config.GhostCenterY)

	// --- 手臂（画在身体下层）---
	if expr.ArmsActive {
		s.drawArms(dst, expr, gx, gy, cx, cy)
	}

	// --- 身体轮廓（含摆动的裙摆）---
	body := s.buildBodyPath(float, gx, gy, cx, cy)

	// 影子：向右下偏移同一轮廓
	shadow := s.buildBodyPathOffset(float, gx, gy, cx, cy, 2, 3)
	fillPath(dst, &shadow, colorShadow)

	fillPath(dst, &body, colorBody)
	strokePath(dst, &body, 2, colorOutline)

	// --- 腮红 ---
	var blush vector.Path
	appendEllipse(&blush, gx(cx-22), gy(cy+9), 6, 4)
	appendEllipse(&blush, gx(cx+22), gy(cy+9), 6, 4)
	fillPath(dst, &blush, colorBlush)

	// --- 眼睛 ---
	s.drawEyes(dst, expr, gx, gy, cx, cy)

	// --- 嘴巴 ---
	s.drawMouth(dst, expr, gx, gy, cx, cy)
}

// buildBodyPath 构建身体轮廓路径
//
// 轮廓：两侧二次曲线收腰，
// 底部四段波浪按裙摆相位摆动。
func (s *RenderSystem) buildBodyPath(float *components.FloatComponent, gx func(float64) float32, gy func(float64) float32, cx, cy float64) vector.Path {
	return s.buildBodyPathOffset(float, gx, gy, cx, cy, 0, 0)
}

// buildBodyPathOffset 构建带偏移的身体轮廓路径（影子复用）
func (s *RenderSystem) buildBodyPathOffset(float *components.FloatComponent, gxf func(float64) float32, gyf func(float64) float32, cx, cy, dx, dy float64) vector.Path {
	px := func(lx float64) float32 { return gxf(lx) + float32(dx) }
	py := func(ly float64) float32 { return gyf(ly) + float32(dy) }

	wt := float.HemWavePhase
	w0 := math.Sin(wt) * config.HemWaveAmplitude
	w1 := math.Sin(wt+1.5) * config.HemWaveAmplitude
	w2 := math.Sin(wt+3.0) * config.HemWaveAmplitude
	w3 := math.Sin(wt+4.5) * config.HemWaveAmplitude

	waveY := cy + 45

	var p vector.Path
	p.MoveTo(px(cx-30), py(cy+45))
	p.QuadTo(px(cx-35), py(cy), px(cx-30), py(cy-25))
	p.QuadTo(px(cx-25), py(cy-40), px(cx), py(cy-42))
	p.QuadTo(px(cx+25), py(cy-40), px(cx+30), py(cy-25))
	p.QuadTo(px(cx+35), py(cy), px(cx+30), py(cy+45))
	p.QuadTo(px(cx+22), py(waveY+12+w0), px(cx+15), py(waveY+w0))
	p.QuadTo(px(cx+7), py(waveY-10+w1), px(cx), py(waveY+5+w1))
	p.QuadTo(px(cx-7), py(waveY+15+w2), px(cx-15), py(waveY+w2))
	p.QuadTo(px(cx-22), py(waveY-8+w3), px(cx-30), py(waveY+w3))
	p.Close()
	return p
}

// drawArms 绘制伸出的小手臂（椭圆形的小肉垫，带摆动）
func (s *RenderSystem) drawArms(dst *ebiten.Image, expr *components.ExpressionComponent, gx func(float64) float32, gy func(float64) float32, cx, cy float64) {
	at := expr.ArmsElapsed

	// 0.4s 缓入 / 2.2s 保持 / 0.4s 缓出
	var t float64
	switch {
	case at < ArmsEaseInSeconds:
		t = at / ArmsEaseInSeconds
	case at < ArmsTotalSeconds-ArmsEaseOutSeconds:
		t = 1.0
	default:
		t = math.Max(0, 1.0-(at-(ArmsTotalSeconds-ArmsEaseOutSeconds))/ArmsEaseOutSeconds)
	}
	extend := utils.EaseInOutSine(t)

	armReach := 14 * extend
	wiggle := math.Sin(at*4) * 2.5 * extend
	armY := cy + 10

	var arms vector.Path
	appendEllipse(&arms, gx(cx-28-armReach), gy(armY+wiggle), 7, 5)
	appendEllipse(&arms, gx(cx+28+armReach), gy(armY-wiggle), 7, 5)
	fillPath(dst, &arms, colorBody)
	strokePath(dst, &arms, 2, colorOutline)
}

// drawEyes 绘制眼睛（正常 / 闭眼 / 眯眼 / 闪亮）
func (s *RenderSystem) drawEyes(dst *ebiten.Image, expr *components.ExpressionComponent, gx func(float64) float32, gy func(float64) float32, cx, cy float64) {
	if expr.Blinking && expr.BlinkStyle == components.BlinkSquint {
		// 眯眼 (><)
		var p vector.Path
		p.MoveTo(gx(cx-15), gy(cy-5))
		p.LineTo(gx(cx-8), gy(cy))
		p.MoveTo(gx(cx-15), gy(cy+5))
		p.LineTo(gx(cx-8), gy(cy))
		p.MoveTo(gx(cx+15), gy(cy-5))
		p.LineTo(gx(cx+8), gy(cy))
		p.MoveTo(gx(cx+15), gy(cy+5))
		p.LineTo(gx(cx+8), gy(cy))
		strokePath(dst, &p, 2.5, colorEye)
		return
	}

	if expr.Blinking {
		// 闭眼：两条横线
		var p vector.Path
		p.MoveTo(gx(cx-15), gy(cy))
		p.LineTo(gx(cx-5), gy(cy))
		p.MoveTo(gx(cx+5), gy(cy))
		p.LineTo(gx(cx+15), gy(cy))
		strokePath(dst, &p, 2, colorEye)
		return
	}

	// 正常眼睛
	var eyes vector.Path
	appendEllipse(&eyes, gx(cx-10), gy(cy-1), 5, 7)
	appendEllipse(&eyes, gx(cx+10), gy(cy-1), 5, 7)
	fillPath(dst, &eyes, colorEye)

	// 高光
	var shine vector.Path
	appendEllipse(&shine, gx(cx-11), gy(cy-3), 2, 2)
	appendEllipse(&shine, gx(cx+9), gy(cy-3), 2, 2)
	fillPath(dst, &shine, colorEyeShine)

	if expr.SparkleActive {
		s.drawSparkles(dst, expr, gx, gy, cx, cy)
	}
}

// drawSparkles 绘制闪亮眼效果（四角星 + 随机闪烁的小光点）
func (s *RenderSystem) drawSparkles(dst *ebiten.Image, expr *components.ExpressionComponent, gx func(float64) float32, gy func(float64) float32, cx, cy float64) {
	st := expr.SparkleElapsed * 4

	var stars vector.Path
	for _, ex := range []float64{cx - 10, cx + 10} {
		ey := cy - 1
		sz := 6 + math.Sin(st)*2
		stars.MoveTo(gx(ex), gy(ey-sz))
		stars.LineTo(gx(ex+sz*0.3), gy(ey-sz*0.3))
		stars.LineTo(gx(ex+sz), gy(ey))
		stars.LineTo(gx(ex+sz*0.3), gy(ey+sz*0.3))
		stars.LineTo(gx(ex), gy(ey+sz))
		stars.LineTo(gx(ex-sz*0.3), gy(ey+sz*0.3))
		stars.LineTo(gx(ex-sz), gy(ey))
		stars.LineTo(gx(ex-sz*0.3), gy(ey-sz*0.3))
		stars.Close()
	}
	strokePath(dst, &stars, 1.5, colorSparkle)

	// 小光点按相位逐个亮起
	dotOffsets := [][2]float64{{-18, -10}, {18, -12}, {-14, 8}, {16, 6}}
	var dots vector.Path
	for i, d := range dotOffsets {
		a := math.Sin(st*1.5 + float64(i)*1.7)
		if a > 0 {
			r := float32(1 + a*1.5)
			appendEllipse(&dots, gx(cx+d[0]), gy(cy+d[1]), r, r)
		}
	}
	fillPath(dst, &dots, colorSparkleDo)
}

// drawMouth 绘制嘴巴（微笑 / 惊讶 O 形 / 大咧嘴）
func (s *RenderSystem) drawMouth(dst *ebiten.Image, expr *components.ExpressionComponent, gx func(float64) float32, gy func(float64) float32, cx, cy float64) {
	switch expr.Mouth {
	case components.MouthO:
		// 惊讶的 O 形嘴，带高频抖动
		mt := expr.MouthElapsed
		shakeX := math.Sin(mt*25) * 1.5
		shakeY := math.Cos(mt*30) * 1.0
		var p vector.Path
		appendEllipse(&p, gx(cx+shakeX), gy(cy+18+shakeY), 4, 5)
		fillPath(dst, &p, colorMouthFill)
		strokePath(dst, &p, 2, colorMouthLine)

	case components.MouthHappy:
		// 大咧嘴：平顶圆底
		var p vector.Path
		p.MoveTo(gx(cx-6), gy(cy+15))
		p.LineTo(gx(cx+6), gy(cy+15))
		p.QuadTo(gx(cx+8), gy(cy+22), gx(cx), gy(cy+24))
		p.QuadTo(gx(cx-8), gy(cy+22), gx(cx-6), gy(cy+15))
		p.Close()
		fillPath(dst, &p, colorMouthFill)
		strokePath(dst, &p, 2, colorMouthLine)

	default:
		// 默认微笑
		var p vector.Path
		p.MoveTo(gx(cx-5), gy(cy+15))
		p.QuadTo(gx(cx), gy(cy+20), gx(cx+5), gy(cy+15))
		strokePath(dst, &p, 2, colorMouthLine)
	}
}

// --- 路径绘制辅助 ---

// fillPath 以指定颜色填充路径
func fillPath(dst *ebiten.Image, p *vector.Path, clr color.RGBA) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	colorizeVertices(vs, clr)
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// strokePath 以指定颜色和线宽描边路径
func strokePath(dst *ebiten.Image, p *vector.Path, width float32, clr color.RGBA) {
	sop := &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, sop)
	colorizeVertices(vs, clr)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// colorizeVertices 把顶点指向白色纹理并染成目标颜色
func colorizeVertices(vs []ebiten.Vertex, clr color.RGBA) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r * a
		vs[i].ColorG = g * a
		vs[i].ColorB = b * a
		vs[i].ColorA = a
	}
}

// appendEllipse 用四段三次贝塞尔曲线把椭圆追加到路径
func appendEllipse(p *vector.Path, cx, cy, rx, ry float32) {
	// kappa: 三次曲线逼近四分之一圆弧的控制点系数
	const k = 0.5523
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ry*k, cx+rx*k, cy+ry, cx, cy+ry)
	p.CubicTo(cx-rx*k, cy+ry, cx-rx, cy+ry*k, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ry*k, cx-rx*k, cy-ry, cx, cy-ry)
	p.CubicTo(cx+rx*k, cy-ry, cx+rx, cy-ry*k, cx+rx, cy)
	p.Close()
}

// appendRoundedRect 把圆角矩形追加到路径
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	p.MoveTo(x+r, y)
	p.ArcTo(x+w, y, x+w, y+h, r)
	p.ArcTo(x+w, y+h, x, y+h, r)
	p.ArcTo(x, y+h, x, y, r)
	p.ArcTo(x, y, x+w, y, r)
	p.Close()
}
