package utils

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// ParseClock 解析 HH:MM 时间字符串，返回当天内的分钟数
func ParseClock(clock string) (int, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// FormatClock 将当天内的分钟数格式化为 HH:MM
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SubtractMinutes 从 HH:MM 减去若干分钟，跨午夜回绕（模 1440，绝不为负）
func SubtractMinutes(clock string, minutes int) (string, error) {
	total, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return FormatClock(total - minutes), nil
}

// DateKey 返回日期的 YYYY-MM-DD 形式
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateKey 解析 YYYY-MM-DD 日期
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", key, err)
	}
	return t, nil
}
