package main

import (
	"math"
	"testing"
)

// statsFixture 构造只有盈亏和价格的交易
func statsFixture(profits ...float64) []Trade {
	trades := make([]Trade, 0, len(profits))
	for i, p := range profits {
		trades = append(trades, Trade{
			ID:         i + 1,
			Symbol:     "BTCUSDT",
			OpenPrice:  100,
			ClosePrice: 100 + p,
			ProfitUSD:  p,
			Duration:   float64(30 * (i + 1)),
		})
	}
	return trades
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStatsEmpty(t *testing.T) {
	c, _ := newTestComparison(statsFixture(10, -5))
	if c.Stats() != nil {
		t.Errorf("无选择时统计应为 nil")
	}

	// 只选中不存在的编号
	c.SelectMany([]int{99, 100})
	if c.Stats() != nil {
		t.Errorf("选中编号全部失效时统计应为 nil")
	}
}

func TestStatsWinRate(t *testing.T) {
	tests := []struct {
		profits  []float64
		expected float64
		desc     string
	}{
		{[]float64{10, -5, 0}, 100.0 / 3, "盈亏为0不算盈利"},
		{[]float64{10, 5, 0}, 200.0 / 3, "两条盈利一条为0"},
		{[]float64{10}, 100, "全部盈利"},
		{[]float64{-1, -2}, 0, "全部亏损"},
		{[]float64{1, -1, 1, -1}, 50, "一半盈利"},
	}

	for _, tt := range tests {
		trades := statsFixture(tt.profits...)
		c, _ := newTestComparison(trades)
		c.SelectMany(tradeIDs(trades))

		stats := c.Stats()
		if stats == nil {
			t.Fatalf("%s: 统计不应为 nil", tt.desc)
		}
		if !almostEqual(stats.WinRate, tt.expected) {
			t.Errorf("%s: WinRate = %v, expected %v", tt.desc, stats.WinRate, tt.expected)
		}
		if stats.SelectedCount != len(tt.profits) {
			t.Errorf("%s: SelectedCount = %d, expected %d", tt.desc, stats.SelectedCount, len(tt.profits))
		}
	}
}

func TestStatsTotals(t *testing.T) {
	trades := statsFixture(0.1, 0.2)
	c, _ := newTestComparison(trades)
	c.SelectMany([]int{1, 2})

	stats := c.Stats()
	// 使用十进制累加，0.1+0.2 不产生浮点误差
	if stats.TotalPnL != 0.3 {
		t.Errorf("TotalPnL = %v, expected 0.3", stats.TotalPnL)
	}
	if stats.AvgPnL != 0.15 {
		t.Errorf("AvgPnL = %v, expected 0.15", stats.AvgPnL)
	}
	if stats.AvgDuration != 45 {
		t.Errorf("AvgDuration = %v, expected 45", stats.AvgDuration)
	}
}

func TestStatsBestWorstTies(t *testing.T) {
	trades := statsFixture(5, -3, 5, -3)
	c, _ := newTestComparison(trades)
	c.SelectMany([]int{1, 2, 3, 4})

	stats := c.Stats()
	if stats.BestTrade.ID != 1 {
		t.Errorf("BestTrade = #%d, expected #1（相同盈亏取先出现的）", stats.BestTrade.ID)
	}
	if stats.WorstTrade.ID != 2 {
		t.Errorf("WorstTrade = #%d, expected #2（相同盈亏取先出现的）", stats.WorstTrade.ID)
	}

	// 顺序按选择顺序而非列表顺序
	c.SelectMany([]int{3, 1})
	if stats := c.Stats(); stats.BestTrade.ID != 3 {
		t.Errorf("按选择顺序 BestTrade = #%d, expected #3", stats.BestTrade.ID)
	}
}

func TestRewardRiskRatio(t *testing.T) {
	tests := []struct {
		trade    Trade
		expected float64
		desc     string
	}{
		{Trade{OpenPrice: 100, ClosePrice: 110, ProfitUSD: 20}, 2, "正常计算"},
		{Trade{OpenPrice: 110, ClosePrice: 100, ProfitUSD: -30}, 3, "亏损取绝对值"},
		{Trade{OpenPrice: 100, ClosePrice: 100.5, ProfitUSD: 2}, 2, "价差小于1时按1计算"},
		{Trade{OpenPrice: 100, ClosePrice: 100, ProfitUSD: 0}, 0, "价差为0"},
	}

	for _, tt := range tests {
		got := rewardRiskRatio(tt.trade)
		if !almostEqual(got, tt.expected) {
			t.Errorf("%s: rewardRiskRatio = %v, expected %v", tt.desc, got, tt.expected)
		}
	}
}

func TestStatsAvgRR(t *testing.T) {
	trades := []Trade{
		{ID: 1, OpenPrice: 100, ClosePrice: 100.5, ProfitUSD: 2},
		{ID: 2, OpenPrice: 100, ClosePrice: 104, ProfitUSD: -16},
	}
	c, _ := newTestComparison(trades)
	c.SelectMany([]int{1, 2})

	if got := c.Stats().AvgRR; !almostEqual(got, 3) {
		t.Errorf("AvgRR = %v, expected 3", got)
	}
}

func TestSumProfit(t *testing.T) {
	if got := sumProfit(statsFixture(0.1, 0.2, -0.3)); got != 0 {
		t.Errorf("sumProfit = %v, expected 0", got)
	}
	if got := sumProfit(nil); got != 0 {
		t.Errorf("sumProfit(nil) = %v, expected 0", got)
	}
}

// 数据来源可以直接提供 NaN 或 ±Inf，统计不能 panic，非有限值按 0 计入合计
func TestStatsNonFiniteValues(t *testing.T) {
	trades := []Trade{
		{ID: 1, ProfitUSD: 10, Duration: 30},
		{ID: 2, ProfitUSD: math.NaN(), Duration: math.Inf(1)},
		{ID: 3, ProfitUSD: math.Inf(-1), Duration: 60},
	}
	c, _ := newTestComparison(trades)
	c.SelectMany([]int{1, 2, 3})

	stats := c.Stats()
	if stats == nil {
		t.Fatalf("统计不应为 nil")
	}
	if stats.TotalPnL != 10 {
		t.Errorf("TotalPnL = %v, expected 10", stats.TotalPnL)
	}
	if stats.AvgDuration != 30 {
		t.Errorf("AvgDuration = %v, expected 30", stats.AvgDuration)
	}
	if got := sumProfit(trades); got != 10 {
		t.Errorf("sumProfit = %v, expected 10", got)
	}
}
