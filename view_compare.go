package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ============================================================================
// 对比视图
// ============================================================================

// handleComparing 对比视图按键处理
func (m *Model) handleComparing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.state = TradeListing
	case "n", "right":
		m.navigate(true)
	case "p", "left":
		m.navigate(false)
	case "c":
		m.comparison.Clear()
		m.afterSelectionChange()
		m.logUserAction("debug.action.clear")
	default:
		m.handleViewKeys(msg.String())
	}
	return m, nil
}

// handleViewKeys 布局与图表同步相关的按键（列表和对比视图共用）
func (m *Model) handleViewKeys(key string) {
	switch key {
	case "v":
		m.comparison.SetViewMode(NextViewMode(m.comparison.ViewMode()))
	case "V":
		m.comparison.AutoAdjustViewMode()
	case "z":
		m.comparison.SetSyncZoom(!m.comparison.SyncZoom())
	case "t":
		m.comparison.SetSyncTimeframe(!m.comparison.SyncTimeframe())
	case "]":
		m.comparison.NextTimeframe(1)
	case "[":
		m.comparison.NextTimeframe(-1)
	default:
		return
	}
	m.logUserAction("debug.action.view", m.comparison.ViewMode(), m.comparison.Timeframe())
}

// viewComparing 对比视图
func (m *Model) viewComparing() string {
	entries := m.comparison.SelectedTrades()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.getText("compare.title")) + "\n")
	b.WriteString(m.syncSummary() + "\n\n")

	if len(entries) == 0 {
		b.WriteString(m.getText("compare.empty") + "\n")
		b.WriteString("\n" + helpStyle.Render(m.getText("compare.help")) + "\n")
		return b.String()
	}

	b.WriteString(m.renderGrid(entries) + "\n")

	stats := m.renderStats(m.comparison.Stats())
	chartWidth := max(m.termWidth-lipgloss.Width(stats)-4, 0)
	chart := m.renderProfitChart(entries, chartWidth, lipgloss.Height(stats))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats, "  ", chart) + "\n")

	if m.message != "" {
		b.WriteString("\n" + messageText.Render(m.message) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(m.getText("compare.help")) + "\n")
	b.WriteString(m.renderDebugPanel())
	return b.String()
}

// syncSummary 布局与图表同步设置
func (m *Model) syncSummary() string {
	onOff := func(on bool) string {
		if on {
			return m.getText("common.on")
		}
		return m.getText("common.off")
	}
	return dimStyle.Render(fmt.Sprintf(m.getText("compare.sync"),
		m.comparison.ViewMode(),
		onOff(m.comparison.SyncZoom()),
		onOff(m.comparison.SyncTimeframe()),
		m.comparison.Timeframe()))
}

// renderGrid 按布局排列对比卡片，超出布局容量的条目不显示
func (m *Model) renderGrid(entries []ComparedTrade) string {
	cols, rows := m.comparison.ViewMode().Grid()
	width := m.termWidth
	if width <= 0 {
		width = 120
	}
	cardWidth := max(width/cols-4, 24)

	var rowViews []string
	for r := 0; r < rows; r++ {
		var cards []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i < len(entries) {
				cards = append(cards, m.renderCard(entries[i], cardWidth))
			} else {
				cards = append(cards, emptyCardStyle(cardWidth).Render(dimStyle.Render(m.getText("compare.emptySlot"))))
			}
		}
		rowViews = append(rowViews, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rowViews...)
	if hidden := len(entries) - cols*rows; hidden > 0 {
		grid += "\n" + dimStyle.Render(fmt.Sprintf(m.getText("compare.hidden"), hidden))
	}
	return grid
}

// renderCard 单个交易的对比卡片
func (m *Model) renderCard(e ComparedTrade, width int) string {
	var b strings.Builder
	b.WriteString(markerStyle(e.ColorCode).Render(fmt.Sprintf("%d. #%d %s", e.ViewIndex+1, e.ID, e.Symbol)) + "\n")
	b.WriteString(m.formatStatus(e.Status))
	if e.Side != "" {
		b.WriteString("  " + e.Side)
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s → %s\n", m.formatPrice(e.OpenPrice), m.formatPrice(e.ClosePrice)))
	b.WriteString(fmt.Sprintf("%s: %s\n", m.getText("column.profit"), m.formatProfit(e.ProfitUSD)))
	b.WriteString(fmt.Sprintf("R:R %s\n", formatRatio(rewardRiskRatio(e.Trade))))
	b.WriteString(fmt.Sprintf("%s: %s\n", m.getText("column.duration"), formatDuration(e.Duration)))
	if !e.OpenTime.IsZero() {
		b.WriteString(tradeDate(e.OpenTime, m.comparison.Location()).Format("2006-01-02 15:04"))
	}
	return cardStyle(e.ColorCode, width).Render(b.String())
}

// renderStats 统计面板
func (m *Model) renderStats(stats *ComparisonStats) string {
	if stats == nil {
		return statsStyle.Render(m.getText("stats.none"))
	}

	lines := []string{
		titleStyle.Render(m.getText("stats.title")),
		fmt.Sprintf("%s: %d", m.getText("stats.count"), stats.SelectedCount),
		fmt.Sprintf("%s: %s", m.getText("stats.totalPnL"), m.formatProfit(stats.TotalPnL)),
		fmt.Sprintf("%s: %s", m.getText("stats.avgPnL"), m.formatProfit(stats.AvgPnL)),
		fmt.Sprintf("%s: %s", m.getText("stats.winRate"), m.formatPercent(stats.WinRate)),
		fmt.Sprintf("%s: %s", m.getText("stats.avgRR"), formatRatio(stats.AvgRR)),
		fmt.Sprintf("%s: %s", m.getText("stats.avgDuration"), formatDuration(stats.AvgDuration)),
		fmt.Sprintf("%s: #%d %s (%s)", m.getText("stats.best"), stats.BestTrade.ID, stats.BestTrade.Symbol, m.formatProfit(stats.BestTrade.ProfitUSD)),
		fmt.Sprintf("%s: #%d %s (%s)", m.getText("stats.worst"), stats.WorstTrade.ID, stats.WorstTrade.Symbol, m.formatProfit(stats.WorstTrade.ProfitUSD)),
	}
	return statsStyle.Render(strings.Join(lines, "\n"))
}
