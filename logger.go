package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ============================================================================
// 日志级别定义
// ============================================================================

// LogLevel 日志级别
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

// ============================================================================
// Logger 结构
// ============================================================================

// Logger 封装 zap logger，按天自动轮转，每行带会话编号
type Logger struct {
	mu         sync.Mutex  // 保护 zap 实例和 currentDay
	zap        *zap.Logger // zap logger 实例
	file       *os.File    // 当前日志文件
	currentDay string      // 当前日志文件对应的日期 (YYYY-MM-DD)
	logDir     string      // 日志目录路径
	level      LogLevel    // 最低日志级别
	sessionID  string      // 界面会话编号
}

var globalLogger *Logger

// ============================================================================
// 初始化
// ============================================================================

// InitLogger 初始化全局日志系统
func InitLogger(logDir string, level LogLevel, sessionID string) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logger := &Logger{
		logDir:    logDir,
		level:     level,
		sessionID: sessionID,
	}
	if err := logger.rotateIfNeeded(time.Now()); err != nil {
		return err
	}

	globalLogger = logger
	return nil
}

// ============================================================================
// 日志轮转
// ============================================================================

// logFileName 指定日期的日志文件名
func logFileName(day string) string {
	return fmt.Sprintf("trade-compare-%s.log", day)
}

// rotateIfNeeded 跨天时切换到新的日志文件
func (l *Logger) rotateIfNeeded(now time.Time) error {
	today := now.Format("2006-01-02")

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentDay == today && l.zap != nil {
		return nil
	}

	logPath := filepath.Join(l.logDir, logFileName(today))
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// 关闭旧 logger（刷新缓冲区）
	if l.zap != nil {
		_ = l.zap.Sync()
	}
	if l.file != nil {
		_ = l.file.Close()
	}

	// 自定义格式：[2006-01-02 15:04:05][WARN][key][message] {"session": "..."}
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: bracketLevelEncoder,
		EncodeTime:  bracketTimeEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(file),
		levelToZapLevel(l.level),
	)

	l.zap = zap.New(core)
	if l.sessionID != "" {
		l.zap = l.zap.With(zap.String("session", l.sessionID))
	}
	l.file = file
	l.currentDay = today

	return nil
}

// ============================================================================
// 编码器
// ============================================================================

// bracketTimeEncoder 自定义时间编码器: [2006-01-02 15:04:05]
func bracketTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("2006-01-02 15:04:05") + "]")
}

// bracketLevelEncoder 自定义级别编码器: [DEBUG]
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// levelToZapLevel 将自定义 LogLevel 转换为 zapcore.Level
func levelToZapLevel(l LogLevel) zapcore.Level {
	switch l {
	case LogDebug:
		return zapcore.DebugLevel
	case LogInfo:
		return zapcore.InfoLevel
	case LogWarn:
		return zapcore.WarnLevel
	case LogError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ============================================================================
// 日志接口
// ============================================================================

// Log 统一日志接口
// pathKey: i18n 键名（作为日志标识符，便于过滤），为空时不输出
func (l *Logger) Log(level LogLevel, pathKey string, message string) {
	if err := l.rotateIfNeeded(time.Now()); err != nil && l.zap == nil {
		return
	}

	var formatted string
	if pathKey != "" {
		formatted = "[" + pathKey + "][" + message + "]"
	} else {
		formatted = "[" + message + "]"
	}

	switch level {
	case LogDebug:
		l.zap.Debug(formatted)
	case LogInfo:
		l.zap.Info(formatted)
	case LogWarn:
		l.zap.Warn(formatted)
	case LogError:
		l.zap.Error(formatted)
	}
}

// Sync 刷新缓冲区并关闭文件（应用退出时调用）
func (l *Logger) Sync() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.zap != nil {
		_ = l.zap.Sync()
	}
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
		l.zap = nil
		l.currentDay = ""
	}
}
