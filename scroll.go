package main

// ============================================================================
// 交易列表滚动控制
// ============================================================================

// scrollListUp 光标上移
func (m *Model) scrollListUp() {
	if m.listCursor > 0 {
		m.listCursor--
	}
	m.adjustListScroll(len(m.getFilteredTrades()))
}

// scrollListDown 光标下移
func (m *Model) scrollListDown() {
	total := len(m.getFilteredTrades())
	if m.listCursor < total-1 {
		m.listCursor++
	}
	m.adjustListScroll(total)
}

// moveCursorToTrade 光标跳到指定交易（导航后跟随选择）
func (m *Model) moveCursorToTrade(id int) {
	filtered := m.getFilteredTrades()
	if i := indexOfTrade(filtered, id); i >= 0 {
		m.listCursor = i
		m.adjustListScroll(len(filtered))
	}
}

// resetListCursor 过滤条件变化后重置光标到第一行
func (m *Model) resetListCursor() {
	m.listCursor = 0
	m.listScrollPos = 0
}

// adjustListScroll 保证光标在可见窗口内
func (m *Model) adjustListScroll(total int) {
	maxLines := m.config.Display.MaxLines
	if maxLines <= 0 {
		maxLines = getDefaultConfig().Display.MaxLines
	}

	if total == 0 {
		m.listCursor = 0
		m.listScrollPos = 0
		return
	}
	if m.listCursor >= total {
		m.listCursor = total - 1
	}
	if total <= maxLines {
		m.listScrollPos = 0
		return
	}

	// 光标超出可见范围的上边界
	if m.listCursor < m.listScrollPos {
		m.listScrollPos = m.listCursor
	}
	// 光标超出可见范围的下边界
	if m.listCursor >= m.listScrollPos+maxLines {
		m.listScrollPos = m.listCursor - maxLines + 1
	}
	if m.listScrollPos > total-maxLines {
		m.listScrollPos = total - maxLines
	}
}

// visibleRange 当前可见窗口 [start, end)
func (m *Model) visibleRange(total int) (int, int) {
	maxLines := m.config.Display.MaxLines
	if maxLines <= 0 {
		maxLines = getDefaultConfig().Display.MaxLines
	}
	start := min(m.listScrollPos, max(total-1, 0))
	end := min(start+maxLines, total)
	return start, end
}
