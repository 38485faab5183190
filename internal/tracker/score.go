package tracker

import (
	"math"

	"RamadhanLantern/internal/model"
)

// 每日得分的权重分配，合计 100：
// 五次礼拜 40，日间诵读 25，封斋 15，夜间礼拜 10，夜间诵读 10
const (
	prayersWeight        = 40.0
	scriptureDayWeight   = 25.0
	fastedWeight         = 15.0
	nightPrayerWeight    = 10.0
	scriptureNightWeight = 10.0

	scriptureDayTarget   = 8.0
	scriptureNightTarget = 4.0
)

// Score 计算单日记录的完成度分数，范围 [0, 100]。
// 诵读页数超出目标不加分，.5 按远离零方向舍入。
func Score(record model.DayRecord) int {
	prayers := float64(record.PrayersDone()) / 5.0 * prayersWeight

	dayPages := math.Min(float64(record.ScriptureDay)/scriptureDayTarget, 1.0) * scriptureDayWeight

	var fasted float64
	if record.Fasted {
		fasted = fastedWeight
	}

	var night float64
	if record.NightPrayer {
		night = nightPrayerWeight
	}

	nightPages := math.Min(float64(record.ScriptureNight)/scriptureNightTarget, 1.0) * scriptureNightWeight

	return int(math.Round(prayers + dayPages + fasted + night + nightPages))
}
