package main

import (
	"sort"
	"testing"
)

// 中英文语言文件的键必须一致
func TestI18nFilesHaveSameKeys(t *testing.T) {
	if err := loadI18nFiles(i18nDir); err != nil {
		t.Fatalf("loadI18nFiles: %v", err)
	}

	for _, pair := range [][2]Language{{Chinese, English}, {English, Chinese}} {
		var missing []string
		for key := range texts[pair[0]] {
			if _, ok := texts[pair[1]][key]; !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		if len(missing) > 0 {
			t.Errorf("%s 缺少 %d 个键: %v", pair[1], len(missing), missing)
		}
	}
}

func TestGetTextFallback(t *testing.T) {
	if err := loadI18nFiles(i18nDir); err != nil {
		t.Fatalf("loadI18nFiles: %v", err)
	}
	m := newTestModel(nil)
	m.language = Language("fr")

	if got := m.getText("app.title"); got != texts[English]["app.title"] {
		t.Errorf("未知语言应回退到英文: %q", got)
	}
	if got := m.getText("no.such.key"); got != "no.such.key" {
		t.Errorf("未知键应返回键本身: %q", got)
	}

	m.language = Chinese
	m.toggleLanguage()
	if m.language != English || m.config.System.Language != "en" {
		t.Errorf("toggleLanguage: %s", m.language)
	}
}
