package main

import (
	"fmt"
	"strings"
	"time"
)

// ============================================================================
// 调试日志系统
// ============================================================================

// globalModel 全局模型引用，用于调试日志记录
var globalModel *Model

// maxDebugLogs 调试面板保留的最大日志条数
const maxDebugLogs = 500

// debugPrint 调试输出函数 - 支持 i18n key
func debugPrint(key string, args ...any) {
	if globalModel != nil && globalModel.debugMode {
		timestamp := time.Now().Format("15:04:05")
		format := getDebugText(key)
		logMsg := fmt.Sprintf("[%s] %s", timestamp, fmt.Sprintf(format, args...))
		globalModel.addDebugLog(logMsg)
	}
}

// addDebugLog 添加调试日志
func (m *Model) addDebugLog(msg string) {
	m.debugLogs = append(m.debugLogs, msg)
	if len(m.debugLogs) > maxDebugLogs {
		m.debugLogs = m.debugLogs[len(m.debugLogs)-maxDebugLogs:]
	}

	// 用户在查看历史日志时保持当前位置不动
	if m.debugScrollPos > 0 && m.debugScrollPos < len(m.debugLogs)-1 {
		m.debugScrollPos++
	}
}

// logUserAction 记录用户操作 - 支持 i18n key
func (m *Model) logUserAction(actionKey string, args ...any) {
	logDebug(actionKey, args...)
	if m.debugMode {
		timestamp := time.Now().Format("15:04:05")
		prefix := m.getText("debug.action.prefix")
		action := fmt.Sprintf(m.getText(actionKey), args...)
		m.addDebugLog(fmt.Sprintf("[%s] %s %s", timestamp, prefix, action))
	}
}

// ============================================================================
// 调试日志滚动控制
// ============================================================================

func (m *Model) scrollDebugUp() {
	if m.debugScrollPos < len(m.debugLogs)-1 {
		m.debugScrollPos++
	}
}

func (m *Model) scrollDebugDown() {
	if m.debugScrollPos > 0 {
		m.debugScrollPos--
	}
}

// ============================================================================
// 调试面板渲染
// ============================================================================

// renderDebugPanel 渲染调试面板
func (m *Model) renderDebugPanel() string {
	if !m.debugMode {
		return ""
	}

	maxDebugLines := 6

	if len(m.debugLogs) == 0 {
		return "\n" + m.getText("debug.panel.empty")
	}

	var b strings.Builder
	b.WriteString("\n" + strings.Repeat("=", 80) + "\n")

	totalLogs := len(m.debugLogs)
	currentPos := totalLogs - m.debugScrollPos
	b.WriteString(fmt.Sprintf(m.getText("debug.panel.title"), currentPos, totalLogs) + "\n")
	b.WriteString(strings.Repeat("-", 80) + "\n")

	endIndex := totalLogs - m.debugScrollPos
	startIndex := max(endIndex-maxDebugLines, 0)

	for i := startIndex; i < endIndex; i++ {
		prefix := ""
		if i == endIndex-1 && m.debugScrollPos == 0 {
			prefix = "→ " // 标记最新日志
		}
		b.WriteString(prefix + m.debugLogs[i] + "\n")
	}

	b.WriteString(strings.Repeat("=", 80))
	return b.String()
}
