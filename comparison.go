package main

import "time"

// ============================================================================
// 交易数据来源
// ============================================================================

// TradeSource 外部持有的交易列表（可能随时变化，本模块只读）
type TradeSource interface {
	Trades() []Trade
}

// TradeSourceFunc 函数适配器
type TradeSourceFunc func() []Trade

// Trades 实现 TradeSource
func (f TradeSourceFunc) Trades() []Trade {
	return f()
}

// StaticTrades 固定交易列表
type StaticTrades []Trade

// Trades 实现 TradeSource
func (s StaticTrades) Trades() []Trade {
	return s
}

// ============================================================================
// TradeComparison 选择与过滤状态管理
// ============================================================================

// TradeComparison 管理对比视图的选择集合、过滤条件、布局以及派生视图。
// 所有派生视图（过滤列表、对比条目、统计）在每次读取时重新计算。
// 仅供单个界面会话在同一个 goroutine 中使用。
type TradeComparison struct {
	source   TradeSource
	selected *selectionSet
	filters  TradeFilters
	viewMode ViewMode
	location *time.Location
	warn     func(key string, args ...any)
	capacity int

	syncZoom      bool
	syncTimeframe bool
	timeframe     string
}

// ComparisonOption 构造选项
type ComparisonOption func(*TradeComparison)

// WithLocation 设置日期过滤使用的时区
func WithLocation(loc *time.Location) ComparisonOption {
	return func(c *TradeComparison) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithWarnFunc 设置非致命诊断信息的输出
func WithWarnFunc(fn func(key string, args ...any)) ComparisonOption {
	return func(c *TradeComparison) {
		if fn != nil {
			c.warn = fn
		}
	}
}

// WithViewMode 设置初始布局
func WithViewMode(mode ViewMode) ComparisonOption {
	return func(c *TradeComparison) {
		if mode.Valid() {
			c.viewMode = mode
		}
	}
}

// WithTimeframe 设置初始图表周期
func WithTimeframe(tf string) ComparisonOption {
	return func(c *TradeComparison) {
		if tf != "" {
			c.timeframe = tf
		}
	}
}

// NewTradeComparison 创建状态管理器
func NewTradeComparison(source TradeSource, opts ...ComparisonOption) *TradeComparison {
	if source == nil {
		source = StaticTrades(nil)
	}
	c := &TradeComparison{
		source:        source,
		selected:      newSelectionSet(),
		filters:       TradeFilters{Status: StatusAll},
		viewMode:      defaultViewMode,
		location:      time.Local,
		warn:          logWarn,
		capacity:      MaxSelections,
		syncTimeframe: true,
		timeframe:     defaultTimeframe,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ============================================================================
// 选择操作
// ============================================================================

// Toggle 切换交易的选中状态。已满时拒绝添加并输出警告，状态不变。
func (c *TradeComparison) Toggle(id int) {
	switch {
	case c.selected.has(id):
		c.selected.remove(id)
	case c.selected.size() < c.capacity:
		c.selected.add(id)
	default:
		c.warn("log.compare.maxSelections", c.capacity)
	}
}

// SelectMany 用输入序列的前 capacity 个编号替换当前选择
func (c *TradeComparison) SelectMany(ids []int) {
	c.selected.clear()
	if len(ids) > c.capacity {
		ids = ids[:c.capacity]
	}
	for _, id := range ids {
		c.selected.add(id)
	}
}

// Clear 清空选择
func (c *TradeComparison) Clear() {
	c.selected.clear()
}

// IsSelected 判断交易是否已选中
func (c *TradeComparison) IsSelected(id int) bool {
	return c.selected.has(id)
}

// SelectedIDs 当前选择的编号（按选择顺序，包含已失效的编号）
func (c *TradeComparison) SelectedIDs() []int {
	return c.selected.values()
}

// SelectionSize 当前选择数量
func (c *TradeComparison) SelectionSize() int {
	return c.selected.size()
}

// Location 日期过滤使用的时区
func (c *TradeComparison) Location() *time.Location {
	return c.location
}

// Capacity 最大选择数量
func (c *TradeComparison) Capacity() int {
	return c.capacity
}

// ============================================================================
// 键盘导航
// ============================================================================

// NavigateNext 在过滤后的列表中向后移动。
// 单选时替换为下一条；多选时以最后选中的交易为基准追加下一条（不替换）。
func (c *TradeComparison) NavigateNext() {
	filtered := c.FilteredTrades()
	if len(filtered) == 0 {
		return
	}

	ids := c.selected.values()
	if len(ids) == 0 {
		c.selected.add(filtered[0].ID)
		return
	}

	current := indexOfTrade(filtered, ids[len(ids)-1])
	next := filtered[(current+1)%len(filtered)]
	c.stepTo(next.ID, len(ids))
}

// NavigatePrev 在过滤后的列表中向前移动。
// 单选时替换为上一条；多选时以最先选中的交易为基准追加上一条（不替换）。
func (c *TradeComparison) NavigatePrev() {
	filtered := c.FilteredTrades()
	if len(filtered) == 0 {
		return
	}

	ids := c.selected.values()
	if len(ids) == 0 {
		c.selected.add(filtered[len(filtered)-1].ID)
		return
	}

	prevIndex := indexOfTrade(filtered, ids[0]) - 1
	if prevIndex < 0 {
		prevIndex = len(filtered) - 1
	}
	c.stepTo(filtered[prevIndex].ID, len(ids))
}

// stepTo 导航落点：单选替换，多选在容量允许时追加
func (c *TradeComparison) stepTo(id int, selectedCount int) {
	if selectedCount == 1 {
		c.selected.clear()
		c.selected.add(id)
		return
	}
	if c.selected.size() < c.capacity {
		c.selected.add(id)
	}
}

// indexOfTrade 查找编号在列表中的位置，不存在返回 -1
func indexOfTrade(trades []Trade, id int) int {
	for i := range trades {
		if trades[i].ID == id {
			return i
		}
	}
	return -1
}

// ============================================================================
// 对比条目
// ============================================================================

// SelectedTrades 按选择顺序解析对比条目。
// 颜色和位置取自编号在选择顺序中的位置；找不到对应交易的编号被跳过（仍保留在选择集合中）。
func (c *TradeComparison) SelectedTrades() []ComparedTrade {
	trades := c.source.Trades()
	ids := c.selected.values()

	result := make([]ComparedTrade, 0, len(ids))
	for pos, id := range ids {
		i := indexOfTrade(trades, id)
		if i < 0 {
			continue
		}
		result = append(result, ComparedTrade{
			Trade:      trades[i],
			IsSelected: true,
			ColorCode:  paletteColor(pos),
			ViewIndex:  pos,
		})
	}

	if len(result) > c.capacity {
		result = result[:c.capacity]
	}
	return result
}

// paletteColor 按位置循环取色
func paletteColor(pos int) string {
	return colorPalette[pos%len(colorPalette)]
}

// ============================================================================
// 布局
// ============================================================================

// ViewMode 当前布局
func (c *TradeComparison) ViewMode() ViewMode {
	return c.viewMode
}

// SetViewMode 直接设置布局，不校验与选择数量是否匹配
func (c *TradeComparison) SetViewMode(mode ViewMode) {
	c.viewMode = mode
}

// AutoAdjustViewMode 根据当前选择数量切换到对应布局，0 或超过 4 时保持不变
func (c *TradeComparison) AutoAdjustViewMode() {
	switch c.selected.size() {
	case 1:
		c.viewMode = ViewSingle
	case 2:
		c.viewMode = ViewPair
	case 3:
		c.viewMode = ViewTriple
	case 4:
		c.viewMode = ViewQuad
	}
}

// ============================================================================
// 图表同步设置
// ============================================================================

// SyncZoom 多图表缩放是否联动
func (c *TradeComparison) SyncZoom() bool { return c.syncZoom }

// SetSyncZoom 设置缩放联动
func (c *TradeComparison) SetSyncZoom(on bool) { c.syncZoom = on }

// SyncTimeframe 多图表周期是否联动
func (c *TradeComparison) SyncTimeframe() bool { return c.syncTimeframe }

// SetSyncTimeframe 设置周期联动
func (c *TradeComparison) SetSyncTimeframe(on bool) { c.syncTimeframe = on }

// Timeframe 当前图表周期
func (c *TradeComparison) Timeframe() string { return c.timeframe }

// SetTimeframe 设置图表周期
func (c *TradeComparison) SetTimeframe(tf string) { c.timeframe = tf }

// NextTimeframe 切换到下一个（step>0）或上一个（step<0）周期
func (c *TradeComparison) NextTimeframe(step int) {
	c.timeframe = cycleTimeframe(c.timeframe, step)
}

func cycleTimeframe(current string, step int) string {
	n := len(timeframeCycle)
	for i, tf := range timeframeCycle {
		if tf == current {
			return timeframeCycle[((i+step)%n+n)%n]
		}
	}
	return defaultTimeframe
}
