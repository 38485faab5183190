package service

import (
	"context"
	"fmt"
	"time"

	"RamadhanLantern/internal/model"
	"RamadhanLantern/internal/model/dto"
	"RamadhanLantern/internal/tracker"
	"RamadhanLantern/pkg/errors"
	"RamadhanLantern/storage/kv"
	"RamadhanLantern/utils"
)

// DayService 管理每日功课记录的读写和聚合统计
type DayService struct {
	records *tracker.Records
	indexer *tracker.Indexer
	now     func() time.Time
}

func NewDayService(store kv.Store) *DayService {
	return &DayService{
		records: tracker.NewRecords(store),
		indexer: tracker.NewIndexer(store),
		now:     time.Now,
	}
}

// GetDay 返回指定日期的记录，缺失时返回零值记录
func (s *DayService) GetDay(ctx context.Context, date string) (*dto.DayData, error) {
	if _, err := utils.ParseDateKey(date); err != nil {
		return nil, errors.InvalidDate
	}

	record := s.records.Load(ctx, date)
	return s.dayData(ctx, record), nil
}

// Today 返回今天的记录
func (s *DayService) Today(ctx context.Context) (*dto.DayData, error) {
	return s.GetDay(ctx, utils.DateKey(s.now()))
}

// UpdateDay 合并更新指定日期的记录后整条覆盖写入。
// 只合并请求里出现的字段，未知的礼拜名直接忽略。
func (s *DayService) UpdateDay(ctx context.Context, date string, req *dto.UpdateDayRequest) (*dto.DayData, error) {
	if _, err := utils.ParseDateKey(date); err != nil {
		return nil, errors.InvalidDate
	}

	record := s.records.Load(ctx, date)

	if req.Fasted != nil {
		record.Fasted = *req.Fasted
	}
	for name, done := range req.Prayers {
		prayer := model.PrayerName(name)
		if _, known := record.Prayers[prayer]; known {
			record.Prayers[prayer] = done
		}
	}
	if req.NightPrayer != nil {
		record.NightPrayer = *req.NightPrayer
	}
	if req.ScriptureDay != nil {
		record.ScriptureDay = clampPages(*req.ScriptureDay)
	}
	if req.ScriptureNight != nil {
		record.ScriptureNight = clampPages(*req.ScriptureNight)
	}
	if req.Reflection != nil {
		if req.Reflection.Gratitude != nil {
			record.Reflection.Gratitude = *req.Reflection.Gratitude
		}
		if req.Reflection.Improvement != nil {
			record.Reflection.Improvement = *req.Reflection.Improvement
		}
		if req.Reflection.Highlight != nil {
			record.Reflection.Highlight = *req.Reflection.Highlight
		}
	}
	if req.Completed != nil {
		if *req.Completed {
			completedAt := s.now()
			record.CompletedAt = &completedAt
		} else {
			record.CompletedAt = nil
		}
	}

	if err := s.records.Store(ctx, record); err != nil {
		return nil, err
	}
	return s.dayData(ctx, record), nil
}

// Progress 返回今日进度概览
func (s *DayService) Progress(ctx context.Context) (*dto.ProgressData, error) {
	today := utils.DateKey(s.now())
	record := s.records.Load(ctx, today)
	day, _ := s.indexer.DayForDate(ctx, today)

	return &dto.ProgressData{
		Date:        today,
		Day:         day,
		Score:       tracker.Score(record),
		PrayersDone: record.PrayersDone(),
		Streak:      s.records.Streak(ctx, s.now()),
	}, nil
}

// DateForDay 把斋月第 N 天换算为日历日期
func (s *DayService) DateForDay(ctx context.Context, day int) (string, error) {
	return s.indexer.DateForDay(ctx, day)
}

// Stats 聚合整个窗口内有记录的日期。
// 平均礼拜数只对有记录的日期取均值，没有任何记录时 HasData 为 false。
func (s *DayService) Stats(ctx context.Context) (*dto.StatsData, error) {
	stored, err := s.records.StoredDates(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsData{
		Streak: s.records.Streak(ctx, s.now()),
		Days:   []dto.DayStat{},
	}

	totalPrayers := 0
	for day := 1; day <= tracker.WindowDays; day++ {
		date, err := s.indexer.DateForDay(ctx, day)
		if err != nil {
			// 起始日期未设置时没有可聚合的窗口
			break
		}
		if !stored[date] {
			continue
		}

		record := s.records.Load(ctx, date)
		pages := record.ScriptureDay + record.ScriptureNight

		stats.Days = append(stats.Days, dto.DayStat{
			Day:     day,
			Date:    date,
			Prayers: record.PrayersDone(),
			Pages:   pages,
			Fasted:  record.Fasted,
			Score:   tracker.Score(record),
		})

		totalPrayers += record.PrayersDone()
		stats.TotalPages += pages
		if record.Fasted {
			stats.TotalFasted++
		}
	}

	stats.HasData = len(stats.Days) > 0
	if stats.HasData {
		stats.AvgPrayers = fmt.Sprintf("%.1f", float64(totalPrayers)/float64(len(stats.Days)))
	} else {
		stats.AvgPrayers = "0.0"
	}
	return stats, nil
}

func (s *DayService) dayData(ctx context.Context, record model.DayRecord) *dto.DayData {
	day, _ := s.indexer.DayForDate(ctx, record.Date)
	return &dto.DayData{
		Record: record,
		Score:  tracker.Score(record),
		Day:    day,
	}
}

func clampPages(pages int) int {
	if pages < 0 {
		return 0
	}
	return pages
}
