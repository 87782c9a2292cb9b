package main

import (
	"fmt"
	"math"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// ============================================================================
// 盈亏柱状图
// ============================================================================

// 图表最小尺寸
const (
	minChartWidth  = 20
	minChartHeight = 6
)

// profitBars 已选交易的盈亏柱数据，柱高为盈亏绝对值，颜色为交易识别色
func profitBars(entries []ComparedTrade) []barchart.BarData {
	bars := make([]barchart.BarData, 0, len(entries))
	for _, e := range entries {
		label := fmt.Sprintf("#%d", e.ID)
		sign := "+"
		if e.ProfitUSD < 0 {
			sign = "-"
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  sign + e.Symbol,
				Value: math.Abs(e.ProfitUSD),
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(e.ColorCode)),
			}},
		})
	}
	return bars
}

// renderProfitChart 渲染盈亏柱状图，空间不足或无数据时返回空字符串
func (m *Model) renderProfitChart(entries []ComparedTrade, width, height int) string {
	if len(entries) == 0 || width < minChartWidth || height < minChartHeight {
		return ""
	}

	logDebug("log.chart.creating", width, height, len(entries))

	chart := barchart.New(width, height)
	chart.PushAll(profitBars(entries))
	chart.Draw()

	return m.getText("chart.title") + "\n" + chart.View()
}
