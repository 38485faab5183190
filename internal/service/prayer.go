package service

import (
	"context"
	"strconv"
	"time"

	"RamadhanLantern/config"
	"RamadhanLantern/internal/model"
	"RamadhanLantern/internal/model/dto"
	"RamadhanLantern/internal/prayertimes"
	"RamadhanLantern/pkg/errors"
	"RamadhanLantern/storage/kv"
	"RamadhanLantern/utils"
)

// PrayerService 在时间表缓存之上做位置解析和 DTO 组装
type PrayerService struct {
	store kv.Store
	times *prayertimes.Service
	now   func() time.Time
}

func NewPrayerService(store kv.Store, times *prayertimes.Service) *PrayerService {
	return &PrayerService{
		store: store,
		times: times,
		now:   time.Now,
	}
}

// Engine 暴露底层的时间表缓存，调度器刷新快照时使用
func (s *PrayerService) Engine() *prayertimes.Service {
	return s.times
}

// ResolveLocation 决定查询位置。
// 调用方传了坐标用坐标；否则手动模式且设置过城市用城市；都没有用默认坐标。
func (s *PrayerService) ResolveLocation(ctx context.Context, latStr, lngStr string) (prayertimes.Location, error) {
	if latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return prayertimes.Location{}, errors.InvalidLocation
		}
		return prayertimes.Location{Lat: lat, Lng: lng}, nil
	}

	mode, _, _ := s.store.Get(ctx, locationModeKey)
	if mode == "manual" {
		if city, ok, err := s.store.Get(ctx, cityKey); err == nil && ok && city != "" {
			return prayertimes.Location{City: city}, nil
		}
	}

	return prayertimes.Location{
		Lat: config.Cfg.PrayerFallbackLat,
		Lng: config.Cfg.PrayerFallbackLng,
	}, nil
}

// Times 返回指定日期的时间表，date 为空时取今天
func (s *PrayerService) Times(ctx context.Context, date, latStr, lngStr string) (*dto.PrayerTimesData, error) {
	if date == "" {
		date = utils.DateKey(s.now())
	} else if _, err := utils.ParseDateKey(date); err != nil {
		return nil, errors.InvalidDate
	}

	loc, err := s.ResolveLocation(ctx, latStr, lngStr)
	if err != nil {
		return nil, err
	}

	result, err := s.times.GetOrFetch(ctx, date, loc)
	if err != nil {
		return nil, err
	}

	return &dto.PrayerTimesData{
		PrayerData:  result.Data,
		Date:        date,
		LocationKey: loc.Key(),
		FromCache:   result.FromCache,
		Stale:       result.Stale,
	}, nil
}

// Next 返回下一观礼时刻。快照可用时直接返回，
// 否则现场取今日时间表计算一次。
func (s *PrayerService) Next(ctx context.Context) (*model.NextPrayer, error) {
	if next, ok := s.times.NextSnapshot(); ok {
		return &next, nil
	}

	loc, err := s.ResolveLocation(ctx, "", "")
	if err != nil {
		return nil, err
	}

	result, err := s.times.GetOrFetch(ctx, utils.DateKey(s.now()), loc)
	if err != nil {
		return nil, err
	}

	next, ok := prayertimes.ComputeNext(result.Data.Timings, s.now())
	if !ok {
		return nil, errors.PrayerTimesUnavailable
	}
	return &next, nil
}
