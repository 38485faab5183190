package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RamadhanLantern/internal/model"
	"RamadhanLantern/internal/prayertimes"
	"RamadhanLantern/storage/kv"
)

type stubFetcher struct {
	data model.PrayerData
	err  error
}

func (f *stubFetcher) Fetch(ctx context.Context, date string, loc prayertimes.Location) (model.PrayerData, error) {
	if f.err != nil {
		return model.PrayerData{}, f.err
	}
	return f.data, nil
}

func newPrayerService(store kv.Store, fetcher prayertimes.Fetcher) *PrayerService {
	svc := NewPrayerService(store, prayertimes.NewService(store, fetcher, 10))
	svc.now = func() time.Time {
		return time.Date(2026, 2, 19, 10, 0, 0, 0, time.Local)
	}
	return svc
}

func TestResolveLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit coordinates win", func(t *testing.T) {
		svc := newPrayerService(kv.NewMemoryStore(), &stubFetcher{})

		loc, err := svc.ResolveLocation(ctx, "-6.9", "107.6")
		require.NoError(t, err)
		assert.Equal(t, "-6.90_107.60", loc.Key())
	})

	t.Run("bad coordinates rejected", func(t *testing.T) {
		svc := newPrayerService(kv.NewMemoryStore(), &stubFetcher{})

		_, err := svc.ResolveLocation(ctx, "abc", "107.6")
		assert.Error(t, err)
		_, err = svc.ResolveLocation(ctx, "-95", "107.6")
		assert.Error(t, err)
	})

	t.Run("manual mode uses the saved city", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, locationModeKey, "manual"))
		require.NoError(t, store.Set(ctx, cityKey, "Surabaya"))
		svc := newPrayerService(store, &stubFetcher{})

		loc, err := svc.ResolveLocation(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, "Surabaya", loc.City)
	})

	t.Run("fallback coordinates when nothing is set", func(t *testing.T) {
		svc := newPrayerService(kv.NewMemoryStore(), &stubFetcher{})

		loc, err := svc.ResolveLocation(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, "-6.21_106.85", loc.Key())
	})
}

func TestPrayerTimes(t *testing.T) {
	ctx := context.Background()
	data := model.PrayerData{
		Timings: model.TimingSet{
			Fajr:    "04:38",
			Sunrise: "05:52",
			Dhuhr:   "12:07",
			Asr:     "15:18",
			Maghrib: "18:12",
			Isha:    "19:23",
		},
	}

	t.Run("defaults to today", func(t *testing.T) {
		svc := newPrayerService(kv.NewMemoryStore(), &stubFetcher{data: data})

		times, err := svc.Times(ctx, "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "2026-02-19", times.Date)
		assert.Equal(t, "04:28", times.Timings.Imsak)
		assert.False(t, times.FromCache)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		svc := newPrayerService(kv.NewMemoryStore(), &stubFetcher{data: data})
		_, err := svc.Times(ctx, "19/02/2026", "", "")
		assert.Error(t, err)
	})

	t.Run("next prayer computed on demand", func(t *testing.T) {
		svc := newPrayerService(kv.NewMemoryStore(), &stubFetcher{data: data})

		next, err := svc.Next(ctx)
		require.NoError(t, err)
		// now 是 10:00，下一项是 Dzuhur
		assert.Equal(t, "Dzuhur", next.Name)
		assert.Equal(t, "12:07", next.Time)
	})
}
