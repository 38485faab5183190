package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RamadhanLantern/internal/model/dto"
	"RamadhanLantern/internal/tracker"
	"RamadhanLantern/storage/kv"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func newDayService(store kv.Store) *DayService {
	svc := NewDayService(store)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 5, 14, 0, 0, 0, time.Local)
	}
	return svc
}

func TestUpdateDay(t *testing.T) {
	ctx := context.Background()

	t.Run("merge only touches present fields", func(t *testing.T) {
		svc := newDayService(kv.NewMemoryStore())

		_, err := svc.UpdateDay(ctx, "2026-02-19", &dto.UpdateDayRequest{
			Fasted:       boolPtr(true),
			ScriptureDay: intPtr(4),
		})
		require.NoError(t, err)

		day, err := svc.UpdateDay(ctx, "2026-02-19", &dto.UpdateDayRequest{
			Prayers: map[string]bool{"Subuh": true, "Maghrib": true},
		})
		require.NoError(t, err)

		assert.True(t, day.Record.Fasted)
		assert.Equal(t, 4, day.Record.ScriptureDay)
		assert.Equal(t, 2, day.Record.PrayersDone())
	})

	t.Run("unknown prayer names are ignored", func(t *testing.T) {
		svc := newDayService(kv.NewMemoryStore())

		day, err := svc.UpdateDay(ctx, "2026-02-19", &dto.UpdateDayRequest{
			Prayers: map[string]bool{"Tahajud": true, "Subuh": true},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, day.Record.PrayersDone())
		assert.Len(t, day.Record.Prayers, 5)
	})

	t.Run("negative pages clamp to zero", func(t *testing.T) {
		svc := newDayService(kv.NewMemoryStore())

		day, err := svc.UpdateDay(ctx, "2026-02-19", &dto.UpdateDayRequest{
			ScriptureDay:   intPtr(-3),
			ScriptureNight: intPtr(-1),
		})
		require.NoError(t, err)
		assert.Equal(t, 0, day.Record.ScriptureDay)
		assert.Equal(t, 0, day.Record.ScriptureNight)
	})

	t.Run("completed flag stamps and clears", func(t *testing.T) {
		svc := newDayService(kv.NewMemoryStore())

		day, err := svc.UpdateDay(ctx, "2026-02-19", &dto.UpdateDayRequest{Completed: boolPtr(true)})
		require.NoError(t, err)
		assert.NotNil(t, day.Record.CompletedAt)

		day, err = svc.UpdateDay(ctx, "2026-02-19", &dto.UpdateDayRequest{Completed: boolPtr(false)})
		require.NoError(t, err)
		assert.Nil(t, day.Record.CompletedAt)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		svc := newDayService(kv.NewMemoryStore())
		_, err := svc.UpdateDay(ctx, "19-02-2026", &dto.UpdateDayRequest{})
		assert.Error(t, err)
	})

	t.Run("day index appears once the start date is set", func(t *testing.T) {
		store := kv.NewMemoryStore()
		svc := newDayService(store)
		require.NoError(t, tracker.NewIndexer(store).SetStartDate(ctx, "2026-02-19"))

		day, err := svc.GetDay(ctx, "2026-03-05")
		require.NoError(t, err)
		assert.Equal(t, 15, day.Day)

		outside, err := svc.GetDay(ctx, "2026-05-01")
		require.NoError(t, err)
		assert.Equal(t, 0, outside.Day)
	})
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := newDayService(store)
	require.NoError(t, tracker.NewIndexer(store).SetStartDate(ctx, "2026-02-19"))

	_, err := svc.UpdateDay(ctx, "2026-03-05", &dto.UpdateDayRequest{
		Fasted:  boolPtr(true),
		Prayers: map[string]bool{"Subuh": true, "Dzuhur": true, "Ashar": true},
	})
	require.NoError(t, err)

	progress, err := svc.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", progress.Date)
	assert.Equal(t, 15, progress.Day)
	assert.Equal(t, 3, progress.PrayersDone)
	// 3 次礼拜 24 + 封斋 15
	assert.Equal(t, 39, progress.Score)
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	t.Run("no start date yields empty stats", func(t *testing.T) {
		svc := newDayService(kv.NewMemoryStore())
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.False(t, stats.HasData)
		assert.Equal(t, "0.0", stats.AvgPrayers)
		assert.Empty(t, stats.Days)
	})

	t.Run("aggregates only recorded days", func(t *testing.T) {
		store := kv.NewMemoryStore()
		svc := newDayService(store)
		require.NoError(t, tracker.NewIndexer(store).SetStartDate(ctx, "2026-02-19"))

		_, err := svc.UpdateDay(ctx, "2026-02-19", &dto.UpdateDayRequest{
			Fasted:       boolPtr(true),
			Prayers:      map[string]bool{"Subuh": true, "Dzuhur": true},
			ScriptureDay: intPtr(6),
		})
		require.NoError(t, err)

		_, err = svc.UpdateDay(ctx, "2026-02-21", &dto.UpdateDayRequest{
			Prayers:        map[string]bool{"Subuh": true, "Dzuhur": true, "Ashar": true, "Maghrib": true, "Isya": true},
			ScriptureNight: intPtr(2),
		})
		require.NoError(t, err)

		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.True(t, stats.HasData)
		assert.Equal(t, 1, stats.TotalFasted)
		assert.Equal(t, 8, stats.TotalPages)
		assert.Equal(t, "3.5", stats.AvgPrayers)
		require.Len(t, stats.Days, 2)
		assert.Equal(t, 1, stats.Days[0].Day)
		assert.Equal(t, 3, stats.Days[1].Day)
	})
}
