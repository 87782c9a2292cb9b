package main

import (
	"github.com/charmbracelet/lipgloss"
)

// ============================================================================
// 对比颜色样式
// ============================================================================

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	messageText = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// markerStyle 列表中已选交易的颜色标记
func markerStyle(colorCode string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorCode))
}

// cardStyle 对比卡片样式，边框使用交易的识别颜色
func cardStyle(colorCode string, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorCode)).
		Padding(0, 1).
		Width(width)
}

// emptyCardStyle 空白卡片样式
func emptyCardStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Padding(0, 1).
		Width(width)
}

// selectionColors 编号到识别颜色的映射（只包含可解析的已选交易）
func selectionColors(entries []ComparedTrade) map[int]string {
	colors := make(map[int]string, len(entries))
	for _, e := range entries {
		colors[e.ID] = e.ColorCode
	}
	return colors
}
