package main

import (
	"slices"
	"testing"
	"time"
)

// sequentialTrades 生成编号为 ids 的交易，开仓时间按天递增
func sequentialTrades(ids ...int) []Trade {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	trades := make([]Trade, 0, len(ids))
	for i, id := range ids {
		trades = append(trades, Trade{
			ID:         id,
			Symbol:     "BTCUSDT",
			Status:     StatusWinner,
			OpenPrice:  100,
			ClosePrice: 110,
			ProfitUSD:  10,
			OpenTime:   base.AddDate(0, 0, i),
			Duration:   60,
		})
	}
	return trades
}

// newTestComparison 创建使用固定列表、收集警告的管理器
func newTestComparison(trades []Trade) (*TradeComparison, *[]string) {
	var warnings []string
	c := NewTradeComparison(StaticTrades(trades),
		WithLocation(time.UTC),
		WithWarnFunc(func(key string, args ...any) {
			warnings = append(warnings, key)
		}),
	)
	return c, &warnings
}

func TestNewTradeComparisonDefaults(t *testing.T) {
	c, _ := newTestComparison(nil)

	if c.ViewMode() != ViewPair {
		t.Errorf("初始布局 = %s, expected %s", c.ViewMode(), ViewPair)
	}
	if c.Filters().Status != StatusAll {
		t.Errorf("初始状态过滤 = %q, expected %q", c.Filters().Status, StatusAll)
	}
	if c.SyncZoom() || !c.SyncTimeframe() || c.Timeframe() != "5m" {
		t.Errorf("初始同步设置 = zoom:%v timeframe:%v tf:%s, expected false/true/5m",
			c.SyncZoom(), c.SyncTimeframe(), c.Timeframe())
	}
	if c.SelectionSize() != 0 || c.Stats() != nil {
		t.Errorf("初始选择应为空且统计为nil")
	}
	if len(c.FilteredTrades()) != 0 || len(c.SelectedTrades()) != 0 {
		t.Errorf("空列表的派生视图应为空")
	}
}

func TestToggle(t *testing.T) {
	c, warnings := newTestComparison(sequentialTrades(1, 2, 3, 4, 5))

	c.Toggle(1)
	c.Toggle(2)
	c.Toggle(3)
	if got := c.SelectedIDs(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("选择顺序 = %v, expected [1 2 3]", got)
	}

	// 删除中间元素，其余保持顺序
	c.Toggle(2)
	if got := c.SelectedIDs(); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("删除后 = %v, expected [1 3]", got)
	}

	// 重新添加追加到末尾
	c.Toggle(2)
	if got := c.SelectedIDs(); !slices.Equal(got, []int{1, 3, 2}) {
		t.Errorf("重新添加后 = %v, expected [1 3 2]", got)
	}
	if len(*warnings) != 0 {
		t.Errorf("未超出容量时不应有警告: %v", *warnings)
	}
}

func TestToggleIsOwnInverse(t *testing.T) {
	tests := []struct {
		initial []int
		id      int
		desc    string
	}{
		{nil, 1, "空选择"},
		{[]int{1}, 1, "取消已选中"},
		{[]int{1, 2}, 3, "添加新交易"},
		{[]int{4, 2, 1}, 2, "三选中的中间元素"},
	}

	for _, tt := range tests {
		c, _ := newTestComparison(sequentialTrades(1, 2, 3, 4, 5))
		c.SelectMany(tt.initial)
		before := c.IsSelected(tt.id)

		c.Toggle(tt.id)
		c.Toggle(tt.id)

		if c.IsSelected(tt.id) != before {
			t.Errorf("%s: 切换两次后 IsSelected(%d) = %v, expected %v",
				tt.desc, tt.id, c.IsSelected(tt.id), before)
		}
	}
}

func TestToggleBeyondCapacity(t *testing.T) {
	c, warnings := newTestComparison(sequentialTrades(1, 2, 3, 4, 5))
	c.SelectMany([]int{1, 2, 3, 4})

	c.Toggle(5)

	if got := c.SelectedIDs(); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("超出容量后选择 = %v, expected [1 2 3 4]", got)
	}
	if c.IsSelected(5) {
		t.Errorf("超出容量的交易不应被选中")
	}
	if len(*warnings) != 1 || (*warnings)[0] != "log.compare.maxSelections" {
		t.Errorf("警告 = %v, expected [log.compare.maxSelections]", *warnings)
	}
}

func TestSelectMany(t *testing.T) {
	tests := []struct {
		input    []int
		expected []int
		desc     string
	}{
		{[]int{1, 2}, []int{1, 2}, "少于容量"},
		{[]int{5, 4, 3, 2, 1}, []int{5, 4, 3, 2}, "截断到容量"},
		{[]int{1, 1, 2, 2}, []int{1, 2}, "重复编号合并"},
		{[]int{3, 3, 3, 3, 4}, []int{3}, "截断在去重之前"},
		{nil, []int{}, "空输入清空选择"},
	}

	for _, tt := range tests {
		c, _ := newTestComparison(sequentialTrades(1, 2, 3, 4, 5))
		c.SelectMany([]int{9})
		c.SelectMany(tt.input)

		got := c.SelectedIDs()
		if !slices.Equal(got, tt.expected) {
			t.Errorf("%s: SelectMany(%v) = %v, expected %v", tt.desc, tt.input, got, tt.expected)
		}
		if c.SelectionSize() > MaxSelections {
			t.Errorf("%s: 选择数量 %d 超过容量", tt.desc, c.SelectionSize())
		}
	}
}

func TestClear(t *testing.T) {
	c, _ := newTestComparison(sequentialTrades(1, 2, 3))
	c.SelectMany([]int{1, 2, 3})
	c.Clear()

	if c.SelectionSize() != 0 || c.IsSelected(1) {
		t.Errorf("Clear 后选择应为空")
	}
	if c.Stats() != nil {
		t.Errorf("Clear 后统计应为 nil")
	}
}

func TestSelectedTradesPalette(t *testing.T) {
	trades := sequentialTrades(1, 2, 3, 4, 5)

	for size := 0; size <= MaxSelections; size++ {
		c, _ := newTestComparison(trades)
		ids := []int{5, 3, 1, 2}[:size]
		c.SelectMany(ids)

		entries := c.SelectedTrades()
		if len(entries) != min(size, MaxSelections) {
			t.Errorf("size=%d: len(SelectedTrades) = %d", size, len(entries))
		}
		for i, e := range entries {
			if e.ColorCode != colorPalette[i%len(colorPalette)] {
				t.Errorf("size=%d: 第%d条颜色 = %s, expected %s", size, i, e.ColorCode, colorPalette[i%len(colorPalette)])
			}
			if e.ViewIndex != i || !e.IsSelected || e.ID != ids[i] {
				t.Errorf("size=%d: 第%d条 = {id:%d idx:%d sel:%v}, expected {id:%d idx:%d sel:true}",
					size, i, e.ID, e.ViewIndex, e.IsSelected, ids[i], i)
			}
		}
	}
}

func TestSelectedTradesSkipsStaleIDs(t *testing.T) {
	trades := sequentialTrades(1, 2, 3)
	source := TradeSourceFunc(func() []Trade { return trades })
	c := NewTradeComparison(source, WithWarnFunc(func(string, ...any) {}))

	c.SelectMany([]int{1, 2, 3})

	// 外部列表变化：交易 1 被移除
	trades = trades[1:]

	entries := c.SelectedTrades()
	if len(entries) != 2 {
		t.Fatalf("失效编号应从对比条目中移除, got %d entries", len(entries))
	}
	if !c.IsSelected(1) || c.SelectionSize() != 3 {
		t.Errorf("失效编号应保留在选择集合中: ids=%v", c.SelectedIDs())
	}

	// 位置和颜色按选择顺序计算（包含失效编号）
	if entries[0].ID != 2 || entries[0].ViewIndex != 1 || entries[0].ColorCode != colorPalette[1] {
		t.Errorf("第一条 = {id:%d idx:%d color:%s}, expected {id:2 idx:1 color:%s}",
			entries[0].ID, entries[0].ViewIndex, entries[0].ColorCode, colorPalette[1])
	}

	// 只剩失效编号时统计为 nil
	trades = nil
	if c.Stats() != nil {
		t.Errorf("全部失效时统计应为 nil")
	}

	// 取消失效编号
	c.Toggle(1)
	if c.IsSelected(1) {
		t.Errorf("失效编号可以通过 Toggle 移除")
	}
}

// ============================================================================
// 导航
// ============================================================================

func TestNavigateNextScenario(t *testing.T) {
	c, _ := newTestComparison(sequentialTrades(1, 2, 3, 4, 5))

	c.NavigateNext()
	if got := c.SelectedIDs(); !slices.Equal(got, []int{1}) {
		t.Fatalf("空选择时 NavigateNext = %v, expected [1]", got)
	}

	// 单选：替换为下一条
	c.NavigateNext()
	if got := c.SelectedIDs(); !slices.Equal(got, []int{2}) {
		t.Errorf("单选时 NavigateNext = %v, expected [2]（替换而非追加）", got)
	}
}

func TestNavigateWrapsCircularly(t *testing.T) {
	tests := []struct {
		initial  []int
		forward  bool
		expected []int
		desc     string
	}{
		{[]int{5}, true, []int{1}, "最后一条向后回到第一条"},
		{[]int{1}, false, []int{5}, "第一条向前回到最后一条"},
		{nil, false, []int{5}, "空选择向前选中最后一条"},
		{[]int{3}, false, []int{2}, "单选向前替换"},
	}

	for _, tt := range tests {
		c, _ := newTestComparison(sequentialTrades(1, 2, 3, 4, 5))
		c.SelectMany(tt.initial)
		if tt.forward {
			c.NavigateNext()
		} else {
			c.NavigatePrev()
		}
		if got := c.SelectedIDs(); !slices.Equal(got, tt.expected) {
			t.Errorf("%s: %v -> %v, expected %v", tt.desc, tt.initial, got, tt.expected)
		}
	}
}

// 单选时替换、多选时追加：两种策略不同，导航行为必须保持这种不对称
func TestNavigateAsymmetricMultiSelection(t *testing.T) {
	tests := []struct {
		initial  []int
		forward  bool
		expected []int
		desc     string
	}{
		{[]int{2, 4}, true, []int{2, 4, 5}, "多选向后：以最后选中的交易为基准追加"},
		{[]int{2, 4}, false, []int{2, 4, 1}, "多选向前：以最先选中的交易为基准追加"},
		{[]int{4, 5}, true, []int{4, 5, 1}, "多选向后回绕"},
		{[]int{1, 3}, false, []int{1, 3, 5}, "多选向前回绕"},
		{[]int{3, 2}, true, []int{3, 2}, "相邻交易已选中时不变"},
		{[]int{1, 2, 3, 4}, true, []int{1, 2, 3, 4}, "已满时不追加也不替换"},
		{[]int{2, 3, 4, 5}, false, []int{2, 3, 4, 5}, "已满时向前不变"},
	}

	for _, tt := range tests {
		c, warnings := newTestComparison(sequentialTrades(1, 2, 3, 4, 5))
		c.SelectMany(tt.initial)
		if tt.forward {
			c.NavigateNext()
		} else {
			c.NavigatePrev()
		}
		if got := c.SelectedIDs(); !slices.Equal(got, tt.expected) {
			t.Errorf("%s: %v -> %v, expected %v", tt.desc, tt.initial, got, tt.expected)
		}
		if len(*warnings) != 0 {
			t.Errorf("%s: 导航不应输出容量警告", tt.desc)
		}
	}
}

func TestNavigateUsesFilteredList(t *testing.T) {
	trades := sequentialTrades(1, 2, 3, 4, 5)
	trades[0].Status = StatusLoser
	trades[2].Status = StatusLoser

	c, _ := newTestComparison(trades)
	c.UpdateFilters(WithStatus(StatusWinner)) // 过滤后 [2 4 5]

	c.NavigateNext()
	if got := c.SelectedIDs(); !slices.Equal(got, []int{2}) {
		t.Errorf("过滤后第一条 = %v, expected [2]", got)
	}
	c.NavigateNext()
	if got := c.SelectedIDs(); !slices.Equal(got, []int{4}) {
		t.Errorf("跳过被过滤的交易 = %v, expected [4]", got)
	}

	// 选中交易不在过滤列表中：向后从第一条开始，向前从最后一条开始
	c.SelectMany([]int{3})
	c.NavigateNext()
	if got := c.SelectedIDs(); !slices.Equal(got, []int{2}) {
		t.Errorf("基准不在列表时 NavigateNext = %v, expected [2]", got)
	}
	c.SelectMany([]int{3})
	c.NavigatePrev()
	if got := c.SelectedIDs(); !slices.Equal(got, []int{5}) {
		t.Errorf("基准不在列表时 NavigatePrev = %v, expected [5]", got)
	}
}

func TestNavigateEmptyFilteredListIsNoop(t *testing.T) {
	c, _ := newTestComparison(sequentialTrades(1, 2, 3))
	c.SelectMany([]int{2})
	c.UpdateFilters(WithSearchQuery("nothing-matches"))

	c.NavigateNext()
	c.NavigatePrev()

	if got := c.SelectedIDs(); !slices.Equal(got, []int{2}) {
		t.Errorf("过滤列表为空时导航应无效果, got %v", got)
	}
}

// ============================================================================
// 布局
// ============================================================================

func TestAutoAdjustViewMode(t *testing.T) {
	tests := []struct {
		ids      []int
		expected ViewMode
		desc     string
	}{
		{[]int{1}, ViewSingle, "1条 -> 1x1"},
		{[]int{1, 2}, ViewPair, "2条 -> 2x1"},
		{[]int{1, 2, 3}, ViewTriple, "3条 -> 3x1"},
		{[]int{1, 2, 3, 4}, ViewQuad, "4条 -> 2x2"},
		{nil, ViewTripleStacked, "0条保持不变"},
	}

	for _, tt := range tests {
		c, _ := newTestComparison(sequentialTrades(1, 2, 3, 4))
		c.SetViewMode(ViewTripleStacked)
		c.SelectMany(tt.ids)
		c.AutoAdjustViewMode()
		if c.ViewMode() != tt.expected {
			t.Errorf("%s: ViewMode = %s, expected %s", tt.desc, c.ViewMode(), tt.expected)
		}
	}
}

func TestSetViewModeDoesNotValidate(t *testing.T) {
	c, _ := newTestComparison(sequentialTrades(1, 2, 3))
	c.SelectMany([]int{1, 2, 3})
	c.SetViewMode(ViewSingle)

	if c.ViewMode() != ViewSingle {
		t.Errorf("SetViewMode 应直接覆盖, got %s", c.ViewMode())
	}
	if len(c.SelectedTrades()) != 3 {
		t.Errorf("布局不影响选择")
	}
}

func TestTimeframeCycle(t *testing.T) {
	c, _ := newTestComparison(nil)

	c.NextTimeframe(1)
	if c.Timeframe() != "15m" {
		t.Errorf("5m 下一个 = %s, expected 15m", c.Timeframe())
	}
	c.SetTimeframe("1m")
	c.NextTimeframe(-1)
	if c.Timeframe() != "1d" {
		t.Errorf("1m 上一个 = %s, expected 1d", c.Timeframe())
	}
	c.SetTimeframe("7m")
	c.NextTimeframe(1)
	if c.Timeframe() != defaultTimeframe {
		t.Errorf("未知周期应回到默认值, got %s", c.Timeframe())
	}
}
