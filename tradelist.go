package main

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 过滤列表缓存
// ============================================================================

// getFilteredTrades 过滤后的交易列表（带缓存，过滤条件或日志变化时失效）
func (m *Model) getFilteredTrades() []Trade {
	if m.isFilteredValid {
		return m.cachedFilteredTrades
	}
	m.cachedFilteredTrades = m.comparison.FilteredTrades()
	m.isFilteredValid = true
	return m.cachedFilteredTrades
}

// invalidateFilterCache 使缓存失效
func (m *Model) invalidateFilterCache() {
	m.isFilteredValid = false
	m.cachedFilteredTrades = nil
}

// updateFilters 更新过滤条件并重置光标
func (m *Model) updateFilters(opts ...FilterOption) {
	m.comparison.UpdateFilters(opts...)
	m.invalidateFilterCache()
	m.resetListCursor()
}

// tradeAtCursor 光标所在的交易
func (m *Model) tradeAtCursor() (Trade, bool) {
	filtered := m.getFilteredTrades()
	if m.listCursor < 0 || m.listCursor >= len(filtered) {
		return Trade{}, false
	}
	return filtered[m.listCursor], true
}

// ============================================================================
// 选择操作（界面层）
// ============================================================================

// afterSelectionChange 选择变化后的统一处理
func (m *Model) afterSelectionChange() {
	if m.config.Compare.AutoAdjustView {
		m.comparison.AutoAdjustViewMode()
	}
	m.message = ""
}

// toggleAtCursor 切换光标所在交易的选中状态
func (m *Model) toggleAtCursor() {
	trade, ok := m.tradeAtCursor()
	if !ok {
		return
	}
	before := m.comparison.SelectionSize()
	wasSelected := m.comparison.IsSelected(trade.ID)
	m.comparison.Toggle(trade.ID)
	m.afterSelectionChange()

	if !wasSelected && m.comparison.SelectionSize() == before {
		m.message = fmt.Sprintf(m.getText("compare.maxSelections"), m.comparison.Capacity())
		return
	}
	m.logUserAction("debug.action.toggle", trade.ID, trade.Symbol)
}

// selectVisible 用过滤后列表的前几条替换选择
func (m *Model) selectVisible() {
	filtered := m.getFilteredTrades()
	ids := make([]int, 0, len(filtered))
	for _, t := range filtered {
		ids = append(ids, t.ID)
	}
	m.comparison.SelectMany(ids)
	m.afterSelectionChange()
	m.logUserAction("debug.action.selectMany", m.comparison.SelectionSize())
}

// navigate 键盘导航，光标跟随最后一次选择变化
func (m *Model) navigate(forward bool) {
	before := m.comparison.SelectedIDs()
	if forward {
		m.comparison.NavigateNext()
	} else {
		m.comparison.NavigatePrev()
	}
	m.afterSelectionChange()

	after := m.comparison.SelectedIDs()
	for _, id := range after {
		if !slices.Contains(before, id) {
			m.moveCursorToTrade(id)
			break
		}
	}
	m.logUserAction("debug.action.navigate", len(after))
}

// cycleStatusFilter 状态过滤循环切换
func (m *Model) cycleStatusFilter() {
	current := m.comparison.Filters().Status
	next := StatusAll
	for i, status := range statusCycle {
		if status == current {
			next = statusCycle[(i+1)%len(statusCycle)]
			break
		}
	}
	m.updateFilters(WithStatus(next))
	m.logUserAction("debug.action.statusFilter", statusText(m, next))
}

// statusText 状态的本地化文本
func statusText(m *Model, status TradeStatus) string {
	switch status {
	case StatusWinner:
		return m.getText("status.winner")
	case StatusLoser:
		return m.getText("status.loser")
	case StatusBreakEven:
		return m.getText("status.breakEven")
	default:
		return m.getText("status.all")
	}
}

// filterSummary 当前过滤条件摘要
func (m *Model) filterSummary() string {
	f := m.comparison.Filters()
	symbols := "-"
	if len(f.Symbols) > 0 {
		symbols = strings.Join(f.Symbols, ",")
	}
	query := "-"
	if f.SearchQuery != "" {
		query = f.SearchQuery
	}
	return fmt.Sprintf(m.getText("filter.summary"),
		statusText(m, f.Status), symbols, formatDateRange(f.DateRange), query)
}

// ============================================================================
// 品种过滤选择界面
// ============================================================================

// enterSymbolSelect 进入品种选择界面
func (m *Model) enterSymbolSelect() {
	m.previousState = m.state
	m.state = SymbolSelect
	m.symbolCursor = 0
	m.symbolScrollPos = 0
	m.pendingSymbols = m.comparison.Filters().Symbols
}

// handleSymbolSelect 品种选择按键处理
func (m *Model) handleSymbolSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	symbols := availableSymbols(m.journal.Trades)

	switch msg.String() {
	case "esc", "q":
		m.state = m.previousState
	case "up", "k":
		if m.symbolCursor > 0 {
			m.symbolCursor--
		}
	case "down", "j":
		if m.symbolCursor < len(symbols)-1 {
			m.symbolCursor++
		}
	case " ":
		if m.symbolCursor < len(symbols) {
			m.pendingSymbols = toggleSymbol(m.pendingSymbols, symbols[m.symbolCursor])
		}
	case "c":
		m.pendingSymbols = nil
	case "enter":
		m.updateFilters(WithSymbols(m.pendingSymbols...))
		m.logUserAction("debug.action.symbolFilter", len(m.pendingSymbols))
		m.state = m.previousState
	}

	m.adjustSymbolScroll(len(symbols))
	return m, nil
}

// toggleSymbol 在品种列表中添加或移除
func toggleSymbol(symbols []string, symbol string) []string {
	if i := slices.Index(symbols, symbol); i >= 0 {
		return slices.Delete(slices.Clone(symbols), i, i+1)
	}
	return append(slices.Clone(symbols), symbol)
}

// adjustSymbolScroll 品种列表滚动
func (m *Model) adjustSymbolScroll(total int) {
	maxLines := m.config.Display.MaxLines
	if m.symbolCursor < m.symbolScrollPos {
		m.symbolScrollPos = m.symbolCursor
	}
	if m.symbolCursor >= m.symbolScrollPos+maxLines {
		m.symbolScrollPos = m.symbolCursor - maxLines + 1
	}
	if m.symbolScrollPos > max(total-maxLines, 0) {
		m.symbolScrollPos = max(total-maxLines, 0)
	}
}

// viewSymbolSelect 品种选择界面
func (m *Model) viewSymbolSelect() string {
	symbols := availableSymbols(m.journal.Trades)

	var b strings.Builder
	b.WriteString(m.getText("symbol.title") + "\n\n")

	if len(symbols) == 0 {
		b.WriteString(m.getText("symbol.empty") + "\n")
	}

	end := min(m.symbolScrollPos+m.config.Display.MaxLines, len(symbols))
	for i := m.symbolScrollPos; i < end; i++ {
		prefix := "  "
		if i == m.symbolCursor {
			prefix = "► "
		}
		mark := "[ ]"
		if slices.Contains(m.pendingSymbols, symbols[i]) {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, mark, symbols[i]))
	}

	b.WriteString("\n" + m.getText("symbol.help") + "\n")
	return b.String()
}
