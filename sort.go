package main

import (
	"sort"
)

// TradeSorter 交易排序接口
type TradeSorter interface {
	SortTrades(trades []Trade, field SortField, direction SortDirection)
}

// DefaultSorter 默认排序实现（稳定排序，相等元素保持日志顺序）
type DefaultSorter struct{}

// NewDefaultSorter 创建默认排序器
func NewDefaultSorter() *DefaultSorter {
	return &DefaultSorter{}
}

// SortTrades 排序交易列表
func (s *DefaultSorter) SortTrades(trades []Trade, field SortField, direction SortDirection) {
	sort.SliceStable(trades, func(i, j int) bool {
		a, b := &trades[i], &trades[j]
		if direction == SortDesc {
			a, b = b, a
		}

		switch field {
		case SortByID:
			return a.ID < b.ID
		case SortBySymbol:
			return a.Symbol < b.Symbol
		case SortByProfit:
			return a.ProfitUSD < b.ProfitUSD
		case SortByDuration:
			return a.Duration < b.Duration
		case SortByStatus:
			return a.Status < b.Status
		default:
			return a.OpenTime.Before(b.OpenTime)
		}
	})
}

// sortFieldKey 排序字段的 i18n 键名
func sortFieldKey(field SortField) string {
	switch field {
	case SortByID:
		return "sort.field.id"
	case SortBySymbol:
		return "sort.field.symbol"
	case SortByProfit:
		return "sort.field.profit"
	case SortByDuration:
		return "sort.field.duration"
	case SortByStatus:
		return "sort.field.status"
	default:
		return "sort.field.openTime"
	}
}

// nextSortField 排序字段循环切换
func nextSortField(current SortField) SortField {
	for i, field := range sortFieldCycle {
		if field == current {
			return sortFieldCycle[(i+1)%len(sortFieldCycle)]
		}
	}
	return SortByOpenTime
}

// applySort 对交易日志排序，导航和过滤都基于排序后的顺序
func (m *Model) applySort() {
	sorter := NewDefaultSorter()
	sorter.SortTrades(m.journal.Trades, m.sortField, m.sortDirection)
	m.isSorted = true
	m.invalidateFilterCache()
	m.logUserAction("debug.action.sort", m.getText(sortFieldKey(m.sortField)))
}
