package dto

import "RamadhanLantern/internal/model"

// DayData 单日记录及其派生得分
type DayData struct {
	Record model.DayRecord `json:"record"`
	Score  int             `json:"score"`
	Day    int             `json:"day,omitempty"` // 斋月第几天，窗口外为 0
}

// ProgressData 今日进度概览
type ProgressData struct {
	Date        string `json:"date"`
	Day         int    `json:"day,omitempty"`
	Score       int    `json:"score"`
	PrayersDone int    `json:"prayers_done"`
	Streak      int    `json:"streak"`
}

// DayStat 统计图表的单日行
type DayStat struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	Prayers int    `json:"prayers"`
	Pages   int    `json:"pages"`
	Fasted  bool   `json:"fasted"`
	Score   int    `json:"score"`
}

// StatsData 30 天窗口的聚合统计
type StatsData struct {
	TotalFasted   int       `json:"total_fasted"`
	TotalPages    int       `json:"total_pages"`
	AvgPrayers    string    `json:"avg_prayers"` // 一位小数，如 "3.4"
	Streak        int       `json:"streak"`
	HasData       bool      `json:"has_data"`
	Days          []DayStat `json:"days"`
}

// PrayerTimesData 时间表查询结果
type PrayerTimesData struct {
	model.PrayerData
	Date        string `json:"date"`
	LocationKey string `json:"location_key"`
	FromCache   bool   `json:"from_cache"`
	Stale       bool   `json:"stale"` // 回退到旧日期缓存时为 true
}

// ChatData 一轮对话的结果
type ChatData struct {
	Reply          model.ChatMessage `json:"reply"`
	UsedToday      int               `json:"used_today"`
	RemainingToday int               `json:"remaining_today"`
}

// ChatHistoryData 聊天历史，最多保留最近 20 条
type ChatHistoryData struct {
	Messages []model.ChatMessage `json:"messages"`
}

// SettingsData 当前设置
type SettingsData struct {
	DarkMode     bool   `json:"dark_mode"`
	LocationMode string `json:"location_mode"`
	City         string `json:"city"`
}

// NoteData 全局笔记
type NoteData struct {
	Text string `json:"text"`
}

// MotivationData 每日一句
type MotivationData struct {
	Date string `json:"date"`
	Text string `json:"text"`
}
