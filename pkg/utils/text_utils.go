package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// 短语池全部是英文，按单词断行；单个单词超宽时整词独占一行
// （气泡宽度随短语长度增长，实际不会出现超宽单词）。
//
// 参数:
//   - textStr: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
func WrapText(textStr string, face *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if MeasureTextWidth(textStr, face) <= maxWidth {
		return []string{textStr}
	}

	words := strings.Fields(textStr)
	if len(words) == 0 {
		return []string{textStr}
	}

	var lines []string
	currentLine := words[0]
	for _, word := range words[1:] {
		testLine := currentLine + " " + word
		if MeasureTextWidth(testLine, face) > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}
	lines = append(lines, currentLine)

	return lines
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, face *text.GoTextFace) float64 {
	if textStr == "" || face == nil {
		return 0
	}

	// 使用 Measure 方法测量文本尺寸
	width, _ := text.Measure(textStr, face, 0)
	return width
}
