package main

// 文件路径常量
const (
	configFile       = "cmd/conf/config.yml"
	defaultTradeFile = "data/trades.json"
	defaultLogDir    = "logs"
)

// MaxSelections 同时对比的最大交易数量
const MaxSelections = 4

// colorPalette 对比视图中用于区分交易的颜色（按选择顺序循环分配）
var colorPalette = []string{"#3b82f6", "#10b981", "#f59e0b", "#ef4444"}

// 语言常量
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// 应用状态常量
type AppState int

const (
	TradeListing   AppState = iota // 交易列表（主界面）
	Comparing                      // 对比视图
	SearchInput                    // 搜索输入
	SymbolSelect                   // 品种过滤选择
	DateRangeInput                 // 日期区间输入
)

// TradeStatus 交易结果状态
type TradeStatus string

const (
	StatusWinner    TradeStatus = "GANADOR"
	StatusLoser     TradeStatus = "PERDEDOR"
	StatusBreakEven TradeStatus = "BREAK_EVEN"
	StatusAll       TradeStatus = "ALL" // 仅用于过滤，表示不限制
)

// statusCycle 状态过滤切换顺序（Tab键）
var statusCycle = []TradeStatus{StatusAll, StatusWinner, StatusLoser, StatusBreakEven}

// ViewMode 对比网格布局（列x行）
type ViewMode string

const (
	ViewSingle        ViewMode = "1x1"
	ViewPair          ViewMode = "2x1"
	ViewTriple        ViewMode = "3x1"
	ViewQuad          ViewMode = "2x2"
	ViewPairStacked   ViewMode = "1x2"
	ViewTripleStacked ViewMode = "1x3"
)

// viewModeCycle 布局切换顺序（v键）
var viewModeCycle = []ViewMode{ViewSingle, ViewPair, ViewTriple, ViewQuad, ViewPairStacked, ViewTripleStacked}

// 默认对比设置
const (
	defaultViewMode  = ViewPair
	defaultTimeframe = "5m"
)

// timeframeCycle 图表周期切换顺序
var timeframeCycle = []string{"1m", "5m", "15m", "1h", "4h", "1d"}

// 排序字段枚举
type SortField int

const (
	SortByOpenTime SortField = iota // 开仓时间（日志原始顺序）
	SortByID                        // 编号
	SortBySymbol                    // 品种
	SortByProfit                    // 盈亏
	SortByDuration                  // 持仓时长
	SortByStatus                    // 状态
)

// sortFieldCycle 排序字段切换顺序（o键）
var sortFieldCycle = []SortField{SortByOpenTime, SortByID, SortBySymbol, SortByProfit, SortByDuration, SortByStatus}

// 排序方向枚举
type SortDirection int

const (
	SortAsc  SortDirection = iota // 升序
	SortDesc                      // 降序
)
