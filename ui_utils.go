package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 文本输入框
// ============================================================================

// textField 单行文本输入，光标按 rune 计数
type textField struct {
	value  string
	cursor int
}

// set 设置内容，光标移到末尾
func (f *textField) set(value string) {
	f.value = value
	f.cursor = len([]rune(value))
}

// reset 清空
func (f *textField) reset() {
	f.value = ""
	f.cursor = 0
}

// clampCursor 将光标限制在 [0, len] 内
func (f *textField) clampCursor(runes []rune) {
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor > len(runes) {
		f.cursor = len(runes)
	}
}

// insert 在光标位置插入字符串
func (f *textField) insert(s string) {
	runes := []rune(f.value)
	f.clampCursor(runes)
	ins := []rune(s)

	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:f.cursor]...)
	out = append(out, ins...)
	out = append(out, runes[f.cursor:]...)

	f.value = string(out)
	f.cursor += len(ins)
}

// backspace 删除光标前的字符
func (f *textField) backspace() {
	runes := []rune(f.value)
	f.clampCursor(runes)
	if f.cursor == 0 {
		return
	}
	f.value = string(append(runes[:f.cursor-1:f.cursor-1], runes[f.cursor:]...))
	f.cursor--
}

// deleteForward 删除光标处的字符（Delete键）
func (f *textField) deleteForward() {
	runes := []rune(f.value)
	f.clampCursor(runes)
	if f.cursor >= len(runes) {
		return
	}
	f.value = string(append(runes[:f.cursor:f.cursor], runes[f.cursor+1:]...))
}

// render 带光标的显示文本
func (f *textField) render() string {
	runes := []rune(f.value)
	cursor := min(max(f.cursor, 0), len(runes))
	return string(runes[:cursor]) + "│" + string(runes[cursor:])
}

// handleKey 处理光标移动和文本编辑按键，返回是否已处理
func (f *textField) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left", "ctrl+b":
		if f.cursor > 0 {
			f.cursor--
		}
		return true
	case "right", "ctrl+f":
		if f.cursor < len([]rune(f.value)) {
			f.cursor++
		}
		return true
	case "home", "ctrl+a":
		f.cursor = 0
		return true
	case "end", "ctrl+e":
		f.cursor = len([]rune(f.value))
		return true
	case "backspace":
		f.backspace()
		return true
	case "delete", "ctrl+d":
		f.deleteForward()
		return true
	}

	switch msg.Type {
	case tea.KeySpace:
		f.insert(" ")
		return true
	case tea.KeyRunes:
		f.insert(string(msg.Runes))
		return true
	}
	str := msg.String()
	if str != "" && !isControlKey(str) {
		f.insert(str)
		return true
	}
	return false
}

// ============================================================================
// 控制键检测
// ============================================================================

// controlKeyPrefixes 常见的控制键序列
var controlKeyPrefixes = []string{
	"ctrl+", "alt+", "shift+",
	"up", "down", "left", "right",
	"home", "end", "pgup", "pgdown",
	"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
	"insert", "delete", "tab", "enter", "backspace", "esc",
}

// isControlKey 检查是否为控制键
func isControlKey(str string) bool {
	if str == "" {
		return true
	}
	if len([]rune(str)) == 1 {
		r := []rune(str)[0]
		return r < 32 || r == 127
	}

	lower := strings.ToLower(str)
	for _, key := range controlKeyPrefixes {
		if strings.HasPrefix(lower, key) {
			return true
		}
	}
	return false
}
