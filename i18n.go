package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// i18nDir 语言文件目录
const i18nDir = "i18n"

// texts i18n 配置 - 存储各语言的文本映射
var texts map[Language]TextMap

// loadI18nFiles 加载 i18n 文件，至少成功加载一种语言才返回 nil
func loadI18nFiles(dir string) error {
	texts = make(map[Language]TextMap)

	for _, lang := range []Language{Chinese, English} {
		path := filepath.Join(dir, string(lang)+".json")
		langTexts, err := readTextMap(path)
		if err != nil {
			fmt.Printf("Warning: %v\n", err)
			continue
		}
		texts[lang] = langTexts
	}

	if len(texts) == 0 {
		return fmt.Errorf("no i18n files could be loaded from %s", dir)
	}
	return nil
}

// readTextMap 读取单个语言文件
func readTextMap(path string) (TextMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var m TextMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

// getText 获取本地化文本，找不到时依次回退到英文和 key 本身
func (m *Model) getText(key string) string {
	if text, exists := texts[m.language][key]; exists {
		return text
	}
	if text, exists := texts[English][key]; exists {
		return text
	}
	return key
}

// getDebugText 全局文本获取函数（globalModel 未初始化时使用英文）
func getDebugText(key string) string {
	if globalModel == nil {
		if text, exists := texts[English][key]; exists {
			return text
		}
		return key
	}
	return globalModel.getText(key)
}

// toggleLanguage 中英文切换
func (m *Model) toggleLanguage() {
	if m.language == Chinese {
		m.language = English
	} else {
		m.language = Chinese
	}
	m.config.System.Language = string(m.language)
}
