package prayertimes

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"RamadhanLantern/internal/model"
	"RamadhanLantern/pkg/logger"
	"RamadhanLantern/utils"
)

// 一天内观礼时刻的固定顺序，Imsak 和日出也算在内
var displayOrder = []struct {
	Name string
	Pick func(model.TimingSet) string
}{
	{"Imsak", func(t model.TimingSet) string { return t.Imsak }},
	{"Subuh", func(t model.TimingSet) string { return t.Fajr }},
	{"Syuruq", func(t model.TimingSet) string { return t.Sunrise }},
	{"Dzuhur", func(t model.TimingSet) string { return t.Dhuhr }},
	{"Ashar", func(t model.TimingSet) string { return t.Asr }},
	{"Maghrib", func(t model.TimingSet) string { return t.Maghrib }},
	{"Isya", func(t model.TimingSet) string { return t.Isha }},
}

// ComputeNext 在给定时间表里找出 now 之后最近的观礼时刻。
// Isya 之后回绕到次日 Imsak，倒计时跨午夜计算。
func ComputeNext(timings model.TimingSet, now time.Time) (model.NextPrayer, bool) {
	nowMinutes := now.Hour()*60 + now.Minute()

	var entries []timedEntry
	for _, item := range displayOrder {
		clock := item.Pick(timings)
		minutes, err := utils.ParseClock(clock)
		if err != nil {
			continue
		}
		entries = append(entries, timedEntry{name: item.Name, minutes: minutes, clock: clock})
	}
	if len(entries) == 0 {
		return model.NextPrayer{}, false
	}

	for _, e := range entries {
		if e.minutes > nowMinutes {
			return model.NextPrayer{
				Name:      e.name,
				Time:      e.clock,
				Countdown: formatCountdown(e.minutes - nowMinutes),
			}, true
		}
	}

	// 今天已无剩余观礼，下一个是明天的第一项
	first := entries[0]
	return model.NextPrayer{
		Name:      first.name,
		Time:      first.clock,
		Countdown: formatCountdown(first.minutes + 24*60 - nowMinutes),
	}, true
}

type timedEntry struct {
	name    string
	minutes int
	clock   string
}

// formatCountdown 输出印尼语样式的倒计时，如 "1j 5m" 或 "5 menit"
func formatCountdown(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dj %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%d menit", minutes)
}

// RefreshNext 重新计算下一观礼时刻快照，由定时任务周期调用
func (s *Service) RefreshNext(ctx context.Context, loc Location, now time.Time) {
	result, err := s.GetOrFetch(ctx, utils.DateKey(now), loc)
	if err != nil {
		logger.Logger.Warn("Next prayer refresh skipped", zap.Error(err))
		return
	}

	next, ok := ComputeNext(result.Data.Timings, now)

	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.next = &next
	} else {
		s.next = nil
	}
}

// NextSnapshot 返回最近一次刷新得到的下一观礼时刻
func (s *Service) NextSnapshot() (model.NextPrayer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.next == nil {
		return model.NextPrayer{}, false
	}
	return *s.next, true
}
