package main

import (
	"strconv"
	"strings"
)

// Valid 是否为已知布局
func (v ViewMode) Valid() bool {
	for _, mode := range viewModeCycle {
		if mode == v {
			return true
		}
	}
	return false
}

// Grid 返回布局的列数和行数，未知布局按 1x1 处理
func (v ViewMode) Grid() (cols, rows int) {
	parts := strings.Split(string(v), "x")
	if len(parts) != 2 {
		return 1, 1
	}
	cols, errCols := strconv.Atoi(parts[0])
	rows, errRows := strconv.Atoi(parts[1])
	if errCols != nil || errRows != nil || cols < 1 || rows < 1 {
		return 1, 1
	}
	return cols, rows
}

// Capacity 布局可容纳的卡片数量
func (v ViewMode) Capacity() int {
	cols, rows := v.Grid()
	return cols * rows
}

// NextViewMode 布局循环切换
func NextViewMode(current ViewMode) ViewMode {
	for i, mode := range viewModeCycle {
		if mode == current {
			return viewModeCycle[(i+1)%len(viewModeCycle)]
		}
	}
	return defaultViewMode
}
