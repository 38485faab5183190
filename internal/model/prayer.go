package model

// TimingSet 一天的祷告时间表，HH:MM。
// Imsak 不来自上游，由 Subuh(Fajr) 时间减去固定偏移得出。
type TimingSet struct {
	Imsak   string `json:"Imsak"`
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// HijriMonth 回历月份
type HijriMonth struct {
	En     string `json:"en"`
	Ar     string `json:"ar"`
	Number int    `json:"number"`
}

// HijriDate 回历日期
type HijriDate struct {
	Day   string     `json:"day"`
	Month HijriMonth `json:"month"`
	Year  string     `json:"year"`
}

// PrayerData 一次时间表查询的完整结果，按 (日期, 位置) 缓存
type PrayerData struct {
	Timings TimingSet `json:"timings"`
	Hijri   HijriDate `json:"hijri"`
}

// NextPrayer 下一个待到来的观礼时刻
type NextPrayer struct {
	Name      string `json:"name"`
	Time      string `json:"time"`
	Countdown string `json:"countdown"`
}
