package main

import (
	"fmt"
	"math"

	"github.com/jedib0t/go-pretty/v6/text"
)

// ============================================================================
// 盈亏格式化函数 - 支持多语言颜色方案
// 中文：红盈绿亏 | 英文：绿盈红亏
// ============================================================================

// profitColors 返回盈利和亏损对应的颜色
func (m *Model) profitColors() (gain, loss text.Color) {
	if m.language == English {
		return text.FgGreen, text.FgRed
	}
	return text.FgRed, text.FgGreen
}

// formatProfit 格式化盈亏金额（零值不着色）
func (m *Model) formatProfit(profit float64) string {
	if math.Abs(profit) < 0.005 {
		return fmt.Sprintf("%.2f", 0.0)
	}
	gain, loss := m.profitColors()
	if profit > 0 {
		return gain.Sprintf("+%.2f", profit)
	}
	return loss.Sprintf("%.2f", profit)
}

// formatPercent 格式化百分比（以50%为盈亏分界着色）
func (m *Model) formatPercent(rate float64) string {
	gain, loss := m.profitColors()
	switch {
	case rate > 50:
		return gain.Sprintf("%.2f%%", rate)
	case rate < 50:
		return loss.Sprintf("%.2f%%", rate)
	default:
		return fmt.Sprintf("%.2f%%", rate)
	}
}

// formatPrice 按配置小数位显示价格
func (m *Model) formatPrice(price float64) string {
	return fmt.Sprintf("%.*f", m.config.Display.DecimalPlaces, price)
}

// formatStatus 带颜色的状态文本
func (m *Model) formatStatus(status TradeStatus) string {
	gain, loss := m.profitColors()
	label := statusText(m, status)
	switch status {
	case StatusWinner:
		return gain.Sprint(label)
	case StatusLoser:
		return loss.Sprint(label)
	default:
		return text.FgHiBlack.Sprint(label)
	}
}

// ============================================================================
// 其他格式化函数
// ============================================================================

// formatDuration 持仓时长（分钟）格式化为 3d 4h / 2h 05m / 45m
func formatDuration(minutes float64) string {
	if minutes <= 0 {
		return "-"
	}
	total := int(math.Round(minutes))
	days := total / (24 * 60)
	hours := (total % (24 * 60)) / 60
	mins := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %02dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// formatRatio 盈亏比显示
func formatRatio(ratio float64) string {
	return fmt.Sprintf("1:%.2f", ratio)
}
