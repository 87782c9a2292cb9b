package main

import "fmt"

// ============================================================================
// 日志函数 - 四个级别
// key: i18n 键名（如 "log.compare.maxSelections"）
// args: 格式化参数（替换 i18n 文本中的 %s, %d 等占位符）
// ============================================================================

func logDebug(key string, args ...any) {
	writeLog(LogDebug, key, args...)
}

func logInfo(key string, args ...any) {
	writeLog(LogInfo, key, args...)
}

// logWarn WARN 级别日志，同时写入调试面板
func logWarn(key string, args ...any) {
	writeLog(LogWarn, key, args...)
	debugPrint(key, args...)
}

func logError(key string, args ...any) {
	writeLog(LogError, key, args...)
	debugPrint(key, args...)
}

// writeLog 翻译 key 并写入日志文件
func writeLog(level LogLevel, key string, args ...any) {
	if globalLogger == nil {
		return
	}

	text := getLogText(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}

	globalLogger.Log(level, key, text)
}

// getLogText 获取 i18n 日志文本，找不到时返回 key 本身
func getLogText(key string) string {
	if globalModel != nil {
		return globalModel.getText(key)
	}
	return getDebugText(key)
}

// ============================================================================
// 简化日志函数 - 用于没有 i18n key 的直接消息
// ============================================================================

// logInfoDirect 直接记录 INFO 级别消息（无 key）
func logInfoDirect(format string, args ...any) {
	if globalLogger == nil {
		return
	}
	globalLogger.Log(LogInfo, "", fmt.Sprintf(format, args...))
}

// logErrorDirect 直接记录 ERROR 级别消息（无 key）
func logErrorDirect(format string, args ...any) {
	if globalLogger == nil {
		return
	}
	globalLogger.Log(LogError, "", fmt.Sprintf(format, args...))
}
