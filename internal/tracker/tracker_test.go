package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RamadhanLantern/internal/model"
	"RamadhanLantern/storage/kv"
	"RamadhanLantern/utils"
)

func fullRecord(date string) model.DayRecord {
	record := DefaultRecord(date)
	for _, name := range model.CanonicalPrayers {
		record.Prayers[name] = true
	}
	record.Fasted = true
	record.NightPrayer = true
	record.ScriptureDay = 8
	record.ScriptureNight = 4
	return record
}

func TestScore(t *testing.T) {
	t.Run("empty record scores zero", func(t *testing.T) {
		assert.Equal(t, 0, Score(DefaultRecord("2026-02-19")))
	})

	t.Run("full record scores hundred", func(t *testing.T) {
		assert.Equal(t, 100, Score(fullRecord("2026-02-19")))
	})

	t.Run("pages beyond target do not add points", func(t *testing.T) {
		record := fullRecord("2026-02-19")
		record.ScriptureDay = 50
		record.ScriptureNight = 50
		assert.Equal(t, 100, Score(record))
	})

	t.Run("each prayer is worth eight points", func(t *testing.T) {
		record := DefaultRecord("2026-02-19")
		prev := Score(record)
		for _, name := range model.CanonicalPrayers {
			record.Prayers[name] = true
			got := Score(record)
			assert.Equal(t, prev+8, got)
			prev = got
		}
	})

	t.Run("half rounds away from zero", func(t *testing.T) {
		// 2 次礼拜 16 + 夜间礼拜 10 + 夜读 1 页 2.5 = 28.5
		record := DefaultRecord("2026-02-19")
		record.Prayers[model.PrayerSubuh] = true
		record.Prayers[model.PrayerDzuhur] = true
		record.NightPrayer = true
		record.ScriptureNight = 1
		assert.Equal(t, 29, Score(record))
	})
}

func TestRecordsLoadStore(t *testing.T) {
	ctx := context.Background()
	records := NewRecords(kv.NewMemoryStore())

	t.Run("absent record loads as default", func(t *testing.T) {
		record := records.Load(ctx, "2026-02-19")
		assert.Equal(t, "2026-02-19", record.Date)
		assert.False(t, record.Fasted)
		assert.Len(t, record.Prayers, 5)
		assert.Equal(t, 0, record.PrayersDone())
	})

	t.Run("store then load round-trips", func(t *testing.T) {
		want := fullRecord("2026-02-20")
		want.Reflection.Gratitude = "sehat dan sempat tarawih"
		require.NoError(t, records.Store(ctx, want))

		got := records.Load(ctx, "2026-02-20")
		assert.Equal(t, want.Prayers, got.Prayers)
		assert.Equal(t, want.ScriptureDay, got.ScriptureDay)
		assert.Equal(t, want.Reflection.Gratitude, got.Reflection.Gratitude)
	})

	t.Run("corrupt record treated as absent", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, dayKeyPrefix+"2026-02-21", "{not json"))

		record := NewRecords(store).Load(ctx, "2026-02-21")
		assert.Equal(t, DefaultRecord("2026-02-21"), record)
	})

	t.Run("store without date fails", func(t *testing.T) {
		assert.Error(t, records.Store(ctx, model.DayRecord{}))
	})
}

func TestIndexer(t *testing.T) {
	ctx := context.Background()

	t.Run("missing start date", func(t *testing.T) {
		indexer := NewIndexer(kv.NewMemoryStore())

		_, ok := indexer.StartDate(ctx)
		assert.False(t, ok)

		_, err := indexer.DateForDay(ctx, 1)
		assert.Error(t, err)

		_, ok = indexer.DayForDate(ctx, "2026-02-19")
		assert.False(t, ok)
	})

	t.Run("date for day", func(t *testing.T) {
		indexer := NewIndexer(kv.NewMemoryStore())
		require.NoError(t, indexer.SetStartDate(ctx, "2026-02-19"))

		date, err := indexer.DateForDay(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "2026-02-19", date)

		date, err = indexer.DateForDay(ctx, 15)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-05", date)

		date, err = indexer.DateForDay(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-20", date)
	})

	t.Run("day outside window", func(t *testing.T) {
		indexer := NewIndexer(kv.NewMemoryStore())
		require.NoError(t, indexer.SetStartDate(ctx, "2026-02-19"))

		for _, day := range []int{0, -1, 31} {
			_, err := indexer.DateForDay(ctx, day)
			assert.Error(t, err)
		}
	})

	t.Run("day for date round-trips", func(t *testing.T) {
		indexer := NewIndexer(kv.NewMemoryStore())
		require.NoError(t, indexer.SetStartDate(ctx, "2026-02-19"))

		for day := 1; day <= WindowDays; day++ {
			date, err := indexer.DateForDay(ctx, day)
			require.NoError(t, err)

			got, ok := indexer.DayForDate(ctx, date)
			require.True(t, ok)
			assert.Equal(t, day, got)
		}

		_, ok := indexer.DayForDate(ctx, "2026-02-18")
		assert.False(t, ok)
		_, ok = indexer.DayForDate(ctx, "2026-03-21")
		assert.False(t, ok)
	})

	t.Run("invalid start date rejected", func(t *testing.T) {
		indexer := NewIndexer(kv.NewMemoryStore())
		assert.Error(t, indexer.SetStartDate(ctx, "19-02-2026"))
	})
}

func TestStreak(t *testing.T) {
	ctx := context.Background()
	today, err := utils.ParseDateKey("2026-03-05")
	require.NoError(t, err)

	seed := func(t *testing.T, records *Records, days ...string) {
		t.Helper()
		for _, date := range days {
			require.NoError(t, records.Store(ctx, fullRecord(date)))
		}
	}

	t.Run("no records means no streak", func(t *testing.T) {
		records := NewRecords(kv.NewMemoryStore())
		assert.Equal(t, 0, records.Streak(ctx, today))
	})

	t.Run("counts back from today", func(t *testing.T) {
		records := NewRecords(kv.NewMemoryStore())
		seed(t, records, "2026-03-03", "2026-03-04", "2026-03-05")
		assert.Equal(t, 3, records.Streak(ctx, today))
	})

	t.Run("incomplete today resets the streak", func(t *testing.T) {
		records := NewRecords(kv.NewMemoryStore())
		seed(t, records, "2026-03-03", "2026-03-04")
		assert.Equal(t, 0, records.Streak(ctx, today))
	})

	t.Run("gap breaks the streak", func(t *testing.T) {
		records := NewRecords(kv.NewMemoryStore())
		seed(t, records, "2026-03-01", "2026-03-02", "2026-03-04", "2026-03-05")
		assert.Equal(t, 2, records.Streak(ctx, today))
	})

	t.Run("missing prayer breaks the streak", func(t *testing.T) {
		records := NewRecords(kv.NewMemoryStore())
		seed(t, records, "2026-03-04", "2026-03-05")

		partial := fullRecord("2026-03-03")
		partial.Prayers[model.PrayerIsya] = false
		require.NoError(t, records.Store(ctx, partial))

		assert.Equal(t, 2, records.Streak(ctx, today))
	})

	t.Run("streak caps at window length", func(t *testing.T) {
		records := NewRecords(kv.NewMemoryStore())
		cursor := today
		for i := 0; i < WindowDays+10; i++ {
			require.NoError(t, records.Store(ctx, fullRecord(utils.DateKey(cursor))))
			cursor = cursor.AddDate(0, 0, -1)
		}
		assert.Equal(t, WindowDays, records.Streak(ctx, today))
	})
}
