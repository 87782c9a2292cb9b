package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	config, configErr := loadConfig(configFile)
	if configErr != nil {
		fmt.Printf("Warning: %v\n", configErr)
	}

	sessionID := uuid.NewString()
	logLevel := LogInfo
	if config.System.DebugMode {
		logLevel = LogDebug
	}
	if err := InitLogger(config.Data.LogDir, logLevel, sessionID); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer globalLogger.Sync()

	if err := loadI18nFiles(i18nDir); err != nil {
		logErrorDirect("%v", err)
		fmt.Printf("Error: %v. Please ensure i18n/zh.json and i18n/en.json exist.\n", err)
		os.Exit(1)
	}

	m := newModel(config, sessionID)
	globalModel = m

	journal, duplicates, err := loadTradeJournal(config.Data.TradesFile)
	if err != nil {
		logWarn("log.journal.loadFail", err)
		m.message = fmt.Sprintf(m.getText("journal.loadFail"), config.Data.TradesFile)
	}
	warnDuplicateIDs(duplicates)
	m.journal = journal
	logInfo("log.app.start", sessionID, len(journal.Trades))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logErrorDirect("program exited: %v", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	logInfoDirect("session %s closed", sessionID)
}

// newModel 创建主模型及其对比状态管理器
func newModel(config Config, sessionID string) *Model {
	m := &Model{
		state:     TradeListing,
		config:    config,
		sessionID: sessionID,
		debugMode: config.System.DebugMode,
		language:  Language(config.System.Language),
		journal:   TradeJournal{Trades: []Trade{}},
	}

	location, err := loadDisplayLocation(config.Display.Timezone)
	if err != nil {
		logWarn("log.config.timezoneFail", config.Display.Timezone, err)
		location = nil
	}

	// 交易日志属于界面层，状态管理器每次读取时拿到最新列表
	source := TradeSourceFunc(func() []Trade { return m.journal.Trades })
	m.comparison = NewTradeComparison(source,
		WithLocation(location),
		WithViewMode(ViewMode(config.Compare.DefaultViewMode)),
		WithTimeframe(config.Compare.DefaultTimeframe),
	)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil
	case journalReloadedMsg:
		return m.handleJournalReloaded(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.debugMode {
			switch msg.String() {
			case "pgup":
				m.scrollDebugUp()
				return m, nil
			case "pgdown":
				m.scrollDebugDown()
				return m, nil
			}
		}
		switch m.state {
		case TradeListing:
			return m.handleTradeListing(msg)
		case Comparing:
			return m.handleComparing(msg)
		case SearchInput:
			return m.handleSearchInput(msg)
		case SymbolSelect:
			return m.handleSymbolSelect(msg)
		case DateRangeInput:
			return m.handleDateRangeInput(msg)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case TradeListing:
		return m.viewTradeListing()
	case Comparing:
		return m.viewComparing()
	case SearchInput:
		return m.viewTextInput("search.title", "search.help", &m.searchField)
	case SymbolSelect:
		return m.viewSymbolSelect()
	case DateRangeInput:
		return m.viewTextInput("dateRange.title", "dateRange.help", &m.dateField)
	}
	return ""
}

// ============================================================================
// 交易列表
// ============================================================================

func (m *Model) handleTradeListing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.scrollListUp()
	case "down", "j":
		m.scrollListDown()
	case " ":
		m.toggleAtCursor()
	case "n":
		m.navigate(true)
	case "p":
		m.navigate(false)
	case "a":
		m.selectVisible()
	case "c":
		m.comparison.Clear()
		m.afterSelectionChange()
		m.logUserAction("debug.action.clear")
	case "tab":
		m.cycleStatusFilter()
	case "/":
		m.previousState = m.state
		m.state = SearchInput
		m.searchField.set(m.comparison.Filters().SearchQuery)
	case "f":
		m.enterSymbolSelect()
	case "d":
		m.previousState = m.state
		m.state = DateRangeInput
		if dr := m.comparison.Filters().DateRange; dr != nil {
			m.dateField.set(dr.Start.Format(dateLayout) + " " + dr.End.Format(dateLayout))
		} else {
			m.dateField.reset()
		}
	case "x":
		m.comparison.ResetFilters()
		m.invalidateFilterCache()
		m.resetListCursor()
		m.logUserAction("debug.action.resetFilters")
	case "o":
		m.sortField = nextSortField(m.sortField)
		m.applySort()
	case "O":
		if m.sortDirection == SortAsc {
			m.sortDirection = SortDesc
		} else {
			m.sortDirection = SortAsc
		}
		m.applySort()
	case "enter":
		m.state = Comparing
		m.logUserAction("debug.action.compare", m.comparison.SelectionSize())
	case "r":
		m.message = m.getText("journal.reloading")
		return m, reloadJournalCmd(m.config.Data.TradesFile)
	case "l":
		m.toggleLanguage()
	case "D":
		m.debugMode = !m.debugMode
	default:
		m.handleViewKeys(msg.String())
	}
	return m, nil
}

// handleJournalReloaded 交易日志重新加载完成。已选但不再存在的编号保留在选择中，由派生视图忽略。
func (m *Model) handleJournalReloaded(msg journalReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Error != nil {
		logWarn("log.journal.loadFail", msg.Error)
		m.message = fmt.Sprintf(m.getText("journal.loadFail"), m.config.Data.TradesFile)
		return m, nil
	}

	warnDuplicateIDs(msg.Duplicates)
	m.journal = msg.Journal
	if m.isSorted {
		NewDefaultSorter().SortTrades(m.journal.Trades, m.sortField, m.sortDirection)
	}
	m.invalidateFilterCache()
	m.adjustListScroll(len(m.getFilteredTrades()))

	stale := len(m.comparison.SelectedIDs()) - len(m.comparison.SelectedTrades())
	m.message = fmt.Sprintf(m.getText("journal.reloaded"), len(m.journal.Trades))
	logInfo("log.journal.reloaded", len(m.journal.Trades), stale)
	return m, nil
}

func (m *Model) viewTradeListing() string {
	filtered := m.getFilteredTrades()
	entries := m.comparison.SelectedTrades()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.getText("app.title")) + "\n")
	b.WriteString(dimStyle.Render(m.filterSummary()) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(m.getText("list.selection"),
		m.comparison.SelectionSize(), m.comparison.Capacity(), m.comparison.ViewMode())) + "\n\n")

	if len(filtered) == 0 {
		b.WriteString(m.getText("list.empty") + "\n")
	} else {
		t := table.NewWriter()
		t.SetStyle(tableStyles[m.config.Display.TableStyle])
		t.AppendHeader(m.GenerateTradeHeader())

		colors := selectionColors(entries)
		start, end := m.visibleRange(len(filtered))
		for i := start; i < end; i++ {
			t.AppendRow(m.GenerateTradeRow(&filtered[i], i, colors))
		}
		t.AppendSeparator()
		t.AppendRow(m.GenerateTradeTotalRow(filtered))
		b.WriteString(t.Render() + "\n")

		if len(filtered) > end-start {
			b.WriteString(dimStyle.Render(fmt.Sprintf(m.getText("list.range"), start+1, end, len(filtered))) + "\n")
		}
	}

	if stats := m.comparison.Stats(); stats != nil {
		b.WriteString(fmt.Sprintf(m.getText("list.statsLine"),
			stats.SelectedCount, m.formatProfit(stats.TotalPnL), m.formatPercent(stats.WinRate)) + "\n")
	}

	if m.message != "" {
		b.WriteString("\n" + messageText.Render(m.message) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(m.getText("list.help")) + "\n")
	b.WriteString(m.renderDebugPanel())
	return b.String()
}

// ============================================================================
// 搜索和日期输入
// ============================================================================

func (m *Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = m.previousState
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.searchField.value)
		m.updateFilters(WithSearchQuery(query))
		m.logUserAction("debug.action.search", query)
		m.state = m.previousState
		return m, nil
	}
	m.searchField.handleKey(msg)
	return m, nil
}

func (m *Model) handleDateRangeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = m.previousState
		m.message = ""
		return m, nil
	case "enter":
		dr, err := parseDateRange(m.dateField.value, m.comparison.Location())
		if err != nil {
			m.message = fmt.Sprintf(m.getText("dateRange.invalid"), err)
			return m, nil
		}
		if dr == nil {
			m.updateFilters(WithoutDateRange())
		} else {
			m.updateFilters(WithDateRange(dr.Start, dr.End))
		}
		m.logUserAction("debug.action.dateRange", formatDateRange(dr))
		m.message = ""
		m.state = m.previousState
		return m, nil
	}
	m.dateField.handleKey(msg)
	return m, nil
}

// viewTextInput 通用单行输入界面
func (m *Model) viewTextInput(titleKey, helpKey string, field *textField) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.getText(titleKey)) + "\n\n")
	b.WriteString("> " + field.render() + "\n")
	if m.message != "" {
		b.WriteString("\n" + messageText.Render(m.message) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(m.getText(helpKey)) + "\n")
	return b.String()
}
