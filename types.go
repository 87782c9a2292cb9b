package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Trade 交易记录（来自交易日志，只读）
type Trade struct {
	ID         int         `json:"id"`
	Symbol     string      `json:"symbol"`
	Status     TradeStatus `json:"status"`
	Side       string      `json:"side,omitempty"`
	Quantity   float64     `json:"quantity,omitempty"`
	OpenPrice  float64     `json:"open_price"`
	ClosePrice float64     `json:"close_price"`
	ProfitUSD  float64     `json:"profit_usd"`
	OpenTime   time.Time   `json:"open_time"`
	CloseTime  time.Time   `json:"close_time"`
	Duration   float64     `json:"duration"` // 持仓时长（分钟）
}

// TradeJournal 交易日志文件结构
type TradeJournal struct {
	Trades []Trade `json:"trades"`
}

// ComparedTrade 对比条目：交易记录 + 展示用元数据
type ComparedTrade struct {
	Trade
	IsSelected bool   `json:"is_selected"`
	ColorCode  string `json:"color_code"` // 对比网格中的识别颜色
	ViewIndex  int    `json:"view_index"` // 选择顺序中的位置（0-3）
}

// DateRange 日期区间（按日历日比较，首尾均包含）
type DateRange struct {
	Start time.Time
	End   time.Time
}

// TradeFilters 交易列表过滤条件，零值字段表示不限制
type TradeFilters struct {
	Status      TradeStatus
	Symbols     []string
	DateRange   *DateRange
	SearchQuery string
}

// ComparisonStats 已选交易的汇总统计
type ComparisonStats struct {
	SelectedCount int
	TotalPnL      float64
	AvgPnL        float64
	WinRate       float64 // 百分比
	AvgRR         float64 // 近似盈亏比
	AvgDuration   float64 // 分钟
	BestTrade     Trade
	WorstTrade    Trade
}

// Config 系统配置结构
type Config struct {
	System  SystemConfig  `yaml:"system"`  // 系统设置
	Display DisplayConfig `yaml:"display"` // 显示设置
	Compare CompareConfig `yaml:"compare"` // 对比设置
	Data    DataConfig    `yaml:"data"`    // 数据文件
}

// SystemConfig 系统设置
type SystemConfig struct {
	Language  string `yaml:"language"`   // 默认语言 "zh" 或 "en"
	DebugMode bool   `yaml:"debug_mode"` // 调试模式开关
}

// DisplayConfig 显示设置
type DisplayConfig struct {
	DecimalPlaces int    `yaml:"decimal_places"` // 价格显示小数位数
	TableStyle    string `yaml:"table_style"`    // 表格样式 "light", "bold", "rounded"
	MaxLines      int    `yaml:"max_lines"`      // 列表每页最大显示行数
	Timezone      string `yaml:"timezone"`       // 日期过滤使用的时区，空表示本地时区
}

// CompareConfig 对比设置
type CompareConfig struct {
	DefaultViewMode  string `yaml:"default_view_mode"` // 初始布局
	DefaultTimeframe string `yaml:"default_timeframe"` // 初始图表周期
	AutoAdjustView   bool   `yaml:"auto_adjust_view"`  // 选择变化后自动调整布局
}

// DataConfig 数据文件设置
type DataConfig struct {
	TradesFile string `yaml:"trades_file"` // 交易日志路径
	LogDir     string `yaml:"log_dir"`     // 日志目录
}

// TextMap 文本映射结构（用于i18n）
type TextMap map[string]string

// Model 应用程序主模型
type Model struct {
	state          AppState
	previousState  AppState // 进入输入界面前的状态
	message        string
	config         Config
	journal        TradeJournal
	comparison     *TradeComparison
	sessionID      string
	debugMode      bool
	language       Language
	debugLogs      []string // 调试日志存储
	debugScrollPos int      // debug日志滚动位置
	termWidth      int
	termHeight     int

	// For trade list cursor and scrolling
	listCursor    int // 过滤后列表当前选中行
	listScrollPos int // 列表首个可见行

	// For text inputs
	searchField textField // 搜索输入框
	dateField   textField // 日期区间输入框

	// For symbol filter selection
	symbolCursor    int
	pendingSymbols  []string // 选择界面中尚未应用的品种列表
	symbolScrollPos int

	// Performance optimization - cached filtered trades
	cachedFilteredTrades []Trade
	isFilteredValid      bool

	// For sorting
	sortField     SortField
	sortDirection SortDirection
	isSorted      bool
}

// tableStyles 配置中的表格样式名称映射
var tableStyles = map[string]table.Style{
	"light":   table.StyleLight,
	"bold":    table.StyleBold,
	"rounded": table.StyleRounded,
	"default": table.StyleDefault,
}

// journalReloadedMsg 交易日志重新加载消息
type journalReloadedMsg struct {
	Journal    TradeJournal
	Duplicates []int // 加载时跳过的重复编号
	Error      error
}
