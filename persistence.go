package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// ============================================================================
// Trade journal 交易日志读取（只读，不写回）
// ============================================================================

// loadTradeJournal 从文件加载交易日志，返回被跳过的重复编号。
// 可能在 tea.Cmd 中执行，不能访问 Model（包括调试面板）。
func loadTradeJournal(path string) (TradeJournal, []int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TradeJournal{Trades: []Trade{}}, nil, fmt.Errorf("failed to read trade journal %s: %w", path, err)
	}

	var journal TradeJournal
	if err := json.Unmarshal(data, &journal); err != nil {
		return TradeJournal{Trades: []Trade{}}, nil, fmt.Errorf("failed to parse trade journal %s: %w", path, err)
	}
	if journal.Trades == nil {
		journal.Trades = []Trade{}
	}

	// 重复编号只保留第一条，避免选择集合与列表不一致
	seen := make(map[int]bool, len(journal.Trades))
	unique := journal.Trades[:0]
	var duplicates []int
	for _, t := range journal.Trades {
		if seen[t.ID] {
			duplicates = append(duplicates, t.ID)
			continue
		}
		seen[t.ID] = true
		unique = append(unique, t)
	}
	journal.Trades = unique

	return journal, duplicates, nil
}

// warnDuplicateIDs 记录被跳过的重复编号（在界面 goroutine 中调用）
func warnDuplicateIDs(ids []int) {
	for _, id := range ids {
		logWarn("log.journal.duplicateID", id)
	}
}

// reloadJournalCmd 异步重新加载交易日志
func reloadJournalCmd(path string) tea.Cmd {
	return func() tea.Msg {
		journal, duplicates, err := loadTradeJournal(path)
		return journalReloadedMsg{Journal: journal, Duplicates: duplicates, Error: err}
	}
}

// ============================================================================
// Config 配置文件持久化
// ============================================================================

// getDefaultConfig 获取默认配置
func getDefaultConfig() Config {
	return Config{
		System: SystemConfig{
			Language:  "en",  // 默认英文
			DebugMode: false, // 调试模式关闭
		},
		Display: DisplayConfig{
			DecimalPlaces: 2,       // 2位小数
			TableStyle:    "light", // 轻量表格样式
			MaxLines:      15,      // 默认每页显示15行
			Timezone:      "",      // 本地时区
		},
		Compare: CompareConfig{
			DefaultViewMode:  string(defaultViewMode),
			DefaultTimeframe: defaultTimeframe,
			AutoAdjustView:   false,
		},
		Data: DataConfig{
			TradesFile: defaultTradeFile,
			LogDir:     defaultLogDir,
		},
	}
}

// loadConfig 加载配置文件，文件不存在时写入默认配置
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		config := getDefaultConfig()
		if os.IsNotExist(err) {
			if saveErr := saveConfig(path, config); saveErr != nil {
				return config, saveErr
			}
			return config, nil
		}
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return getDefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return validateConfig(config), nil
}

// validateConfig 校验配置的合理性，非法值回退到默认值
func validateConfig(config Config) Config {
	defaults := getDefaultConfig()

	if config.System.Language != string(Chinese) && config.System.Language != string(English) {
		config.System.Language = defaults.System.Language
	}
	if config.Display.MaxLines <= 0 || config.Display.MaxLines > 50 {
		config.Display.MaxLines = defaults.Display.MaxLines
	}
	if config.Display.DecimalPlaces < 0 || config.Display.DecimalPlaces > 8 {
		config.Display.DecimalPlaces = defaults.Display.DecimalPlaces
	}
	if _, ok := tableStyles[config.Display.TableStyle]; !ok {
		config.Display.TableStyle = defaults.Display.TableStyle
	}
	if !ViewMode(config.Compare.DefaultViewMode).Valid() {
		config.Compare.DefaultViewMode = defaults.Compare.DefaultViewMode
	}
	if cycleTimeframe(config.Compare.DefaultTimeframe, 0) != config.Compare.DefaultTimeframe {
		config.Compare.DefaultTimeframe = defaults.Compare.DefaultTimeframe
	}
	if config.Data.TradesFile == "" {
		config.Data.TradesFile = defaults.Data.TradesFile
	}
	if config.Data.LogDir == "" {
		config.Data.LogDir = defaults.Data.LogDir
	}

	return config
}

// saveConfig 保存配置文件
func saveConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
