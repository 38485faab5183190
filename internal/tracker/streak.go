package tracker

import (
	"context"
	"time"

	"RamadhanLantern/utils"
)

// Streak 从 today 开始向过去逐日回溯，统计连续完成五次礼拜的天数。
// 今天未完成即为 0，最多回溯一个窗口长度。
func (r *Records) Streak(ctx context.Context, today time.Time) int {
	streak := 0
	cursor := today

	record := r.Load(ctx, utils.DateKey(cursor))
	for record.AllPrayersDone() && streak < WindowDays {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
		record = r.Load(ctx, utils.DateKey(cursor))
	}

	return streak
}
