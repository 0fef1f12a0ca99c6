package game

import (
	"log"
	"strings"
)

// MonitorInfo 一块可用显示器的描述
// 由平台适配层（pkg/app）从 Ebitengine 枚举填充，核心逻辑只依赖此结构，
// 便于在无显示环境下测试区域选择
type MonitorInfo struct {
	Name   string // 显示器名称（通常包含厂商标识）
	Width  int    // 宽度（像素）
	Height int    // 高度（像素）
}

// Region 幽灵允许漫游的屏幕区域（所选显示器的本地坐标系）
type Region struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Width 返回区域宽度
func (r Region) Width() float64 {
	return r.MaxX - r.MinX
}

// Height 返回区域高度
func (r Region) Height() float64 {
	return r.MaxY - r.MinY
}

// CenterX 返回区域中心 X 坐标
func (r Region) CenterX() float64 {
	return (r.MinX + r.MaxX) / 2
}

// CenterY 返回区域中心 Y 坐标
func (r Region) CenterY() float64 {
	return (r.MinY + r.MaxY) / 2
}

// Contains 判断点是否在区域内（闭区间）
func (r Region) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// ClampPoint 将点限制到区域内
func (r Region) ClampPoint(x, y float64) (float64, float64) {
	if x < r.MinX {
		x = r.MinX
	}
	if x > r.MaxX {
		x = r.MaxX
	}
	if y < r.MinY {
		y = r.MinY
	}
	if y > r.MaxY {
		y = r.MaxY
	}
	return x, y
}

// SelectRegion 根据名称过滤子串选择漫游区域
//
// 过滤规则（启动时执行一次，不逐帧重新评估）：
//   - filter 为空：使用主显示器（monitors 的第一个元素）
//   - filter 非空：大小写不敏感地匹配显示器名称，取第一个匹配项
//   - 没有任何匹配：回退到主显示器，保证幽灵永远不会落在所有屏幕之外
//
// 参数：
//   - monitors: 可用显示器列表，第一个元素约定为主显示器
//   - filter: 名称过滤子串
//
// 返回：
//   - Region: 所选显示器的本地坐标区域 (0,0)-(w,h)
func SelectRegion(monitors []MonitorInfo, filter string) Region {
	if len(monitors) == 0 {
		// 没有任何显示器信息（无头环境），给一个保守的默认区域
		log.Printf("[Monitor] No monitors reported, using fallback 1920x1080 region")
		return Region{MaxX: 1920, MaxY: 1080}
	}

	selected := monitors[0]
	if filter != "" {
		matched := false
		needle := strings.ToLower(filter)
		for _, m := range monitors {
			if strings.Contains(strings.ToLower(m.Name), needle) {
				selected = m
				matched = true
				break
			}
		}
		if !matched {
			log.Printf("[Monitor] No monitor matches filter %q, falling back to primary %q", filter, selected.Name)
		}
	}

	log.Printf("[Monitor] Wander region: %q %dx%d", selected.Name, selected.Width, selected.Height)
	return Region{
		MinX: 0,
		MinY: 0,
		MaxX: float64(selected.Width),
		MaxY: float64(selected.Height),
	}
}
