package main

import (
	"math"

	"github.com/shopspring/decimal"
)

// ============================================================================
// 对比统计
// ============================================================================

// Stats 计算已选交易的汇总统计，没有可用的对比条目时返回 nil
func (c *TradeComparison) Stats() *ComparisonStats {
	return computeStats(c.SelectedTrades())
}

// computeStats 统计实现
func computeStats(selected []ComparedTrade) *ComparisonStats {
	if len(selected) == 0 {
		return nil
	}

	n := decimal.NewFromInt(int64(len(selected)))
	totalPnL := decimal.Zero
	totalDuration := decimal.Zero
	totalRR := 0.0
	winners := 0

	best := selected[0].Trade
	worst := selected[0].Trade

	for _, t := range selected {
		totalPnL = totalPnL.Add(finiteDecimal(t.ProfitUSD))
		totalDuration = totalDuration.Add(finiteDecimal(t.Duration))
		totalRR += rewardRiskRatio(t.Trade)

		if t.ProfitUSD > 0 {
			winners++
		}
		// 严格大于/小于：相同盈亏时保留先出现的交易
		if t.ProfitUSD > best.ProfitUSD {
			best = t.Trade
		}
		if t.ProfitUSD < worst.ProfitUSD {
			worst = t.Trade
		}
	}

	return &ComparisonStats{
		SelectedCount: len(selected),
		TotalPnL:      totalPnL.InexactFloat64(),
		AvgPnL:        totalPnL.Div(n).InexactFloat64(),
		WinRate:       float64(winners) / float64(len(selected)) * 100,
		AvgRR:         totalRR / float64(len(selected)),
		AvgDuration:   totalDuration.Div(n).InexactFloat64(),
		BestTrade:     best,
		WorstTrade:    worst,
	}
}

// rewardRiskRatio 近似盈亏比：|盈亏| / max(|开仓价-平仓价|, 1)
func rewardRiskRatio(t Trade) float64 {
	risk := math.Max(math.Abs(t.OpenPrice-t.ClosePrice), 1)
	return math.Abs(t.ProfitUSD) / risk
}

// sumProfit 列表盈亏合计（用于列表汇总行）
func sumProfit(trades []Trade) float64 {
	total := decimal.Zero
	for _, t := range trades {
		total = total.Add(finiteDecimal(t.ProfitUSD))
	}
	return total.InexactFloat64()
}

// finiteDecimal 转换为十进制，NaN 和 ±Inf 按 0 计算（decimal.NewFromFloat 对它们会 panic）
func finiteDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
