package main

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout 日期输入与显示格式
const dateLayout = "2006-01-02"

// loadDisplayLocation 加载配置中的时区，空字符串使用本地时区
func loadDisplayLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", name, err)
	}
	return location, nil
}

// tradeDate 将开仓时间转换到指定时区，用于日历日比较
func tradeDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

// dayKey 日历日比较键 YYYYMMDD（使用时间自身的时区）
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// parseDateRange 解析日期区间输入 "YYYY-MM-DD YYYY-MM-DD"
// 只输入一个日期时表示当天；空输入返回 nil 表示取消日期过滤
func parseDateRange(input string, loc *time.Location) (*DateRange, error) {
	fields := strings.Fields(strings.ReplaceAll(input, "~", " "))
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields) > 2 {
		return nil, fmt.Errorf("invalid date range: %q (expected YYYY-MM-DD YYYY-MM-DD)", input)
	}
	if loc == nil {
		loc = time.Local
	}

	start, err := time.ParseInLocation(dateLayout, fields[0], loc)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", fields[0], err)
	}
	end := start
	if len(fields) == 2 {
		end, err = time.ParseInLocation(dateLayout, fields[1], loc)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %s: %w", fields[1], err)
		}
	}
	if dayKey(end) < dayKey(start) {
		return nil, fmt.Errorf("invalid date range: end %s before start %s", fields[1], fields[0])
	}
	return &DateRange{Start: start, End: end}, nil
}

// formatDateRange 日期区间显示文本
func formatDateRange(dr *DateRange) string {
	if dr == nil {
		return "-"
	}
	return dr.Start.Format(dateLayout) + " ~ " + dr.End.Format(dateLayout)
}
