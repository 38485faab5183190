package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RamadhanLantern/internal/model"
	"RamadhanLantern/internal/prayertimes"
	"RamadhanLantern/storage/kv"
)

type countingFetcher struct {
	calls atomic.Int64
}

func (f *countingFetcher) Fetch(ctx context.Context, date string, loc prayertimes.Location) (model.PrayerData, error) {
	f.calls.Add(1)
	return model.PrayerData{
		Timings: model.TimingSet{
			Fajr:    "04:38",
			Sunrise: "05:52",
			Dhuhr:   "12:07",
			Asr:     "15:18",
			Maghrib: "18:12",
			Isha:    "23:59",
		},
	}, nil
}

func TestRefresherLifecycle(t *testing.T) {
	fetcher := &countingFetcher{}
	svc := prayertimes.NewService(kv.NewMemoryStore(), fetcher, 10)
	resolve := func(ctx context.Context) prayertimes.Location {
		return prayertimes.Location{City: "Jakarta"}
	}

	refresher := NewNextPrayerRefresher(svc, resolve, 10*time.Millisecond)
	refresher.Start(context.Background())

	require.Eventually(t, func() bool {
		_, ok := svc.NextSnapshot()
		return ok
	}, time.Second, 5*time.Millisecond)

	refresher.Stop()
	// Stop 幂等
	refresher.Stop()

	// 首次刷新拉上游，后续周期命中缓存
	assert.Equal(t, int64(1), fetcher.calls.Load())
}

func TestRefresherStartIsIdempotent(t *testing.T) {
	svc := prayertimes.NewService(kv.NewMemoryStore(), &countingFetcher{}, 10)
	resolve := func(ctx context.Context) prayertimes.Location {
		return prayertimes.Location{City: "Jakarta"}
	}

	refresher := NewNextPrayerRefresher(svc, resolve, time.Hour)
	ctx := context.Background()
	refresher.Start(ctx)
	refresher.Start(ctx)
	refresher.Stop()
}
