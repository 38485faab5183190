package prayertimes

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"RamadhanLantern/internal/model"
	"RamadhanLantern/pkg/errors"
	"RamadhanLantern/pkg/logger"
	"RamadhanLantern/storage/kv"
	"RamadhanLantern/utils"
)

// 时间表缓存 key：ramadhan_prayer_cache_{date}_{location}
const cacheKeyPrefix = "ramadhan_prayer_cache_"

// Result 一次时间表查询的结果及其来源
type Result struct {
	Data      model.PrayerData
	FromCache bool
	// Stale 表示上游不可达，返回的是同一位置较早日期的缓存
	Stale bool
}

// Service 提供带缓存的祷告时间表查询
type Service struct {
	store       kv.Store
	fetcher     Fetcher
	imsakOffset int

	mu   sync.RWMutex
	next *model.NextPrayer
}

func NewService(store kv.Store, fetcher Fetcher, imsakOffset int) *Service {
	return &Service{
		store:       store,
		fetcher:     fetcher,
		imsakOffset: imsakOffset,
	}
}

func cacheKey(date string, loc Location) string {
	return cacheKeyPrefix + date + "_" + loc.Key()
}

// GetOrFetch 先查缓存，未命中再调上游并回填。
// 缓存条目永不过期：同一 (日期, 位置) 的时间表是确定的。
// 上游失败时退回同一位置最近日期的缓存，彻底无缓存才返回错误。
func (s *Service) GetOrFetch(ctx context.Context, date string, loc Location) (Result, error) {
	key := cacheKey(date, loc)

	if raw, ok, err := s.store.Get(ctx, key); err == nil && ok {
		var data model.PrayerData
		if err := json.Unmarshal([]byte(raw), &data); err == nil {
			return Result{Data: data, FromCache: true}, nil
		}
		// 损坏的缓存条目当作未命中，重新拉取覆盖
		logger.Logger.Warn("Corrupt prayer cache entry, refetching", zap.String("key", key))
	}

	data, fetchErr := s.fetcher.Fetch(ctx, date, loc)
	if fetchErr == nil {
		s.deriveImsak(&data)

		if encoded, err := json.Marshal(data); err == nil {
			if err := s.store.Set(ctx, key, string(encoded)); err != nil {
				logger.Logger.Warn("Failed to cache prayer times", zap.String("key", key), zap.Error(err))
			}
		}
		return Result{Data: data}, nil
	}

	logger.Logger.Warn("Prayer times fetch failed, trying cached fallback",
		zap.String("date", date),
		zap.String("location", loc.Key()),
		zap.Error(fetchErr),
	)

	if fallback, ok := s.latestCached(ctx, loc); ok {
		return Result{Data: fallback, FromCache: true, Stale: true}, nil
	}

	return Result{}, errors.PrayerTimesUnavailable
}

// deriveImsak 用 Subuh 时间减固定偏移覆盖上游的 Imsak，跨午夜回绕
func (s *Service) deriveImsak(data *model.PrayerData) {
	imsak, err := utils.SubtractMinutes(data.Timings.Fajr, s.imsakOffset)
	if err != nil {
		logger.Logger.Warn("Cannot derive imsak from fajr", zap.String("fajr", data.Timings.Fajr), zap.Error(err))
		return
	}
	data.Timings.Imsak = imsak
}

// latestCached 返回同一位置下日期最新的缓存条目
func (s *Service) latestCached(ctx context.Context, loc Location) (model.PrayerData, bool) {
	keys, err := s.store.Keys(ctx, cacheKeyPrefix)
	if err != nil {
		return model.PrayerData{}, false
	}

	suffix := "_" + loc.Key()
	var candidates []string
	for _, key := range keys {
		if strings.HasSuffix(key, suffix) {
			candidates = append(candidates, key)
		}
	}
	if len(candidates) == 0 {
		return model.PrayerData{}, false
	}

	// key 中的日期是 YYYY-MM-DD，字典序即时间序
	sort.Strings(candidates)

	for i := len(candidates) - 1; i >= 0; i-- {
		raw, ok, err := s.store.Get(ctx, candidates[i])
		if err != nil || !ok {
			continue
		}
		var data model.PrayerData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			continue
		}
		return data, true
	}
	return model.PrayerData{}, false
}
