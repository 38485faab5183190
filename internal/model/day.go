package model

import "time"

// PrayerName 五个固定的每日礼拜名称，key 集合固定且完备
type PrayerName string

const (
	PrayerSubuh   PrayerName = "Subuh"
	PrayerDzuhur  PrayerName = "Dzuhur"
	PrayerAshar   PrayerName = "Ashar"
	PrayerMaghrib PrayerName = "Maghrib"
	PrayerIsya    PrayerName = "Isya"
)

// CanonicalPrayers 按一天内的先后顺序排列
var CanonicalPrayers = []PrayerName{
	PrayerSubuh,
	PrayerDzuhur,
	PrayerAshar,
	PrayerMaghrib,
	PrayerIsya,
}

// Reflection 每日自由文本反思，三个字段各自可选
type Reflection struct {
	Gratitude   string `json:"gratitude"`
	Improvement string `json:"improvement"`
	Highlight   string `json:"highlight"`
}

// DayRecord 单个日历日期的功课记录。
// 存储中缺失的记录等价于零值记录，评分与连续天数逻辑不区分
// "从未填写" 和 "显式清零"。
type DayRecord struct {
	Date           string              `json:"date"` // YYYY-MM-DD
	Fasted         bool                `json:"fasted"`
	Prayers        map[PrayerName]bool `json:"prayers"`
	NightPrayer    bool                `json:"night_prayer"`
	ScriptureDay   int                 `json:"scripture_day"`   // 页数
	ScriptureNight int                 `json:"scripture_night"` // 页数
	Reflection     Reflection          `json:"reflection"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"` // 仅作标记，不参与评分
}

// PrayersDone 返回已完成的礼拜数
func (r *DayRecord) PrayersDone() int {
	done := 0
	for _, name := range CanonicalPrayers {
		if r.Prayers[name] {
			done++
		}
	}
	return done
}

// AllPrayersDone 五个礼拜是否全部完成
func (r *DayRecord) AllPrayersDone() bool {
	return r.PrayersDone() == len(CanonicalPrayers)
}
