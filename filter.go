package main

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// ============================================================================
// 过滤条件更新
// ============================================================================

// FilterOption 单个过滤字段的更新，未传入的字段保持原值
type FilterOption func(*TradeFilters)

// WithStatus 按状态过滤，StatusAll 或空值表示不限制
func WithStatus(status TradeStatus) FilterOption {
	return func(f *TradeFilters) {
		f.Status = status
	}
}

// WithSymbols 只保留列表中的品种，空列表表示不限制
func WithSymbols(symbols ...string) FilterOption {
	return func(f *TradeFilters) {
		f.Symbols = slices.Clone(symbols)
	}
}

// WithDateRange 按开仓日期过滤（首尾均包含）
func WithDateRange(start, end time.Time) FilterOption {
	return func(f *TradeFilters) {
		f.DateRange = &DateRange{Start: start, End: end}
	}
}

// WithoutDateRange 取消日期过滤
func WithoutDateRange() FilterOption {
	return func(f *TradeFilters) {
		f.DateRange = nil
	}
}

// WithSearchQuery 按品种或编号模糊搜索（不区分大小写）
func WithSearchQuery(query string) FilterOption {
	return func(f *TradeFilters) {
		f.SearchQuery = query
	}
}

// UpdateFilters 合并过滤条件
func (c *TradeComparison) UpdateFilters(opts ...FilterOption) {
	for _, opt := range opts {
		opt(&c.filters)
	}
}

// ResetFilters 恢复初始过滤条件
func (c *TradeComparison) ResetFilters() {
	c.filters = TradeFilters{Status: StatusAll}
}

// Filters 当前过滤条件的副本
func (c *TradeComparison) Filters() TradeFilters {
	f := c.filters
	f.Symbols = slices.Clone(c.filters.Symbols)
	if c.filters.DateRange != nil {
		dr := *c.filters.DateRange
		f.DateRange = &dr
	}
	return f
}

// ============================================================================
// 过滤计算
// ============================================================================

// FilteredTrades 依次应用状态、品种、日期、搜索过滤（全部为"与"关系），保持原始顺序
func (c *TradeComparison) FilteredTrades() []Trade {
	return applyFilters(c.source.Trades(), c.filters, c.location)
}

// applyFilters 过滤实现，便于界面层缓存复用
func applyFilters(trades []Trade, filters TradeFilters, loc *time.Location) []Trade {
	result := trades

	if filters.Status != "" && filters.Status != StatusAll {
		result = filterTrades(result, func(t *Trade) bool {
			return t.Status == filters.Status
		})
	}

	if len(filters.Symbols) > 0 {
		result = filterTrades(result, func(t *Trade) bool {
			return slices.Contains(filters.Symbols, t.Symbol)
		})
	}

	if filters.DateRange != nil {
		start := dayKey(filters.DateRange.Start)
		end := dayKey(filters.DateRange.End)
		result = filterTrades(result, func(t *Trade) bool {
			day := dayKey(tradeDate(t.OpenTime, loc))
			return day >= start && day <= end
		})
	}

	if filters.SearchQuery != "" {
		fold := cases.Fold()
		query := fold.String(filters.SearchQuery)
		result = filterTrades(result, func(t *Trade) bool {
			return strings.Contains(fold.String(t.Symbol), query) ||
				strings.Contains(strconv.Itoa(t.ID), query)
		})
	}

	return result
}

// filterTrades 返回满足条件的新切片，不修改输入
func filterTrades(trades []Trade, keep func(*Trade) bool) []Trade {
	out := make([]Trade, 0, len(trades))
	for i := range trades {
		if keep(&trades[i]) {
			out = append(out, trades[i])
		}
	}
	return out
}

// availableSymbols 交易列表中出现过的品种（按首次出现顺序）
func availableSymbols(trades []Trade) []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, t := range trades {
		if t.Symbol == "" || seen[t.Symbol] {
			continue
		}
		seen[t.Symbol] = true
		symbols = append(symbols, t.Symbol)
	}
	return symbols
}
