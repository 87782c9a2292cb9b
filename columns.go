package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ColumnID - 列的唯一标识符
type ColumnID string

// 交易列表列ID常量
const (
	ColCursor     ColumnID = "cursor"
	ColMark       ColumnID = "mark"
	ColID         ColumnID = "id"
	ColSymbol     ColumnID = "symbol"
	ColStatus     ColumnID = "status"
	ColOpenTime   ColumnID = "open_time"
	ColOpenPrice  ColumnID = "open_price"
	ColClosePrice ColumnID = "close_price"
	ColProfit     ColumnID = "profit"
	ColDuration   ColumnID = "duration"
)

// ColumnMetadata - 列的元数据
type ColumnMetadata struct {
	ID        ColumnID   // 列ID
	I18nKey   string     // 国际化翻译键
	SortField *SortField // 关联的排序字段（nil表示不可排序）
}

// tradeColumns 交易列表列定义（按显示顺序）
var tradeColumns = makeTradeColumns()

// makeTradeColumns 创建交易列表列定义
func makeTradeColumns() []*ColumnMetadata {
	sortable := func(f SortField) *SortField { return &f }

	return []*ColumnMetadata{
		{ID: ColCursor},
		{ID: ColMark},
		{ID: ColID, I18nKey: "column.id", SortField: sortable(SortByID)},
		{ID: ColSymbol, I18nKey: "column.symbol", SortField: sortable(SortBySymbol)},
		{ID: ColStatus, I18nKey: "column.status", SortField: sortable(SortByStatus)},
		{ID: ColOpenTime, I18nKey: "column.openTime", SortField: sortable(SortByOpenTime)},
		{ID: ColOpenPrice, I18nKey: "column.openPrice"},
		{ID: ColClosePrice, I18nKey: "column.closePrice"},
		{ID: ColProfit, I18nKey: "column.profit", SortField: sortable(SortByProfit)},
		{ID: ColDuration, I18nKey: "column.duration", SortField: sortable(SortByDuration)},
	}
}

// GenerateTradeHeader - 生成表头（带排序指示）
func (m *Model) GenerateTradeHeader() table.Row {
	header := make(table.Row, len(tradeColumns))

	for i, col := range tradeColumns {
		if col.I18nKey == "" {
			header[i] = ""
			continue
		}
		header[i] = m.getText(col.I18nKey)

		if col.SortField != nil && m.isSorted && *col.SortField == m.sortField {
			indicator := "↑"
			if m.sortDirection == SortDesc {
				indicator = "↓"
			}
			header[i] = fmt.Sprintf("%s %s", header[i], indicator)
		}
	}

	return header
}

// GenerateTradeRow - 生成交易数据行
// colors: 已选交易的识别颜色，用于选择标记列
func (m *Model) GenerateTradeRow(trade *Trade, rowIndex int, colors map[int]string) table.Row {
	row := make(table.Row, len(tradeColumns))

	for i, col := range tradeColumns {
		switch col.ID {
		case ColCursor:
			if rowIndex == m.listCursor {
				row[i] = "►"
			} else {
				row[i] = ""
			}
		case ColMark:
			row[i] = selectionMark(trade.ID, m.comparison.IsSelected(trade.ID), colors)
		case ColID:
			row[i] = trade.ID
		case ColSymbol:
			row[i] = trade.Symbol
		case ColStatus:
			row[i] = m.formatStatus(trade.Status)
		case ColOpenTime:
			if trade.OpenTime.IsZero() {
				row[i] = "-"
			} else {
				row[i] = tradeDate(trade.OpenTime, m.comparison.Location()).Format("2006-01-02 15:04")
			}
		case ColOpenPrice:
			row[i] = m.formatPrice(trade.OpenPrice)
		case ColClosePrice:
			row[i] = m.formatPrice(trade.ClosePrice)
		case ColProfit:
			row[i] = m.formatProfit(trade.ProfitUSD)
		case ColDuration:
			row[i] = formatDuration(trade.Duration)
		default:
			row[i] = "-"
		}
	}

	return row
}

// GenerateTradeTotalRow - 生成合计行
func (m *Model) GenerateTradeTotalRow(trades []Trade) table.Row {
	row := make(table.Row, len(tradeColumns))
	for i, col := range tradeColumns {
		switch col.ID {
		case ColSymbol:
			row[i] = fmt.Sprintf(m.getText("list.total"), len(trades))
		case ColProfit:
			row[i] = m.formatProfit(sumProfit(trades))
		default:
			row[i] = ""
		}
	}
	return row
}

// selectionMark 选择标记：可解析的已选交易显示识别颜色的圆点
func selectionMark(id int, selected bool, colors map[int]string) string {
	if !selected {
		return "○"
	}
	if color, ok := colors[id]; ok {
		return markerStyle(color).Render("●")
	}
	return "●"
}
