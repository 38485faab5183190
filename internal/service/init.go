package service

import (
	"sync"

	"RamadhanLantern/config"
	"RamadhanLantern/internal/assistant"
	"RamadhanLantern/internal/prayertimes"
	"RamadhanLantern/internal/tracker"
	"RamadhanLantern/storage"
)

// 各 service 的进程级单例，handler 层通过访问器获取

var (
	profileOnce sync.Once
	profileSvc  *ProfileService

	dayOnce sync.Once
	daySvc  *DayService

	settingsOnce sync.Once
	settingsSvc  *SettingsService

	prayerOnce sync.Once
	prayerSvc  *PrayerService

	assistantOnce sync.Once
	assistantSvc  *assistant.Service
)

func Profile() *ProfileService {
	profileOnce.Do(func() {
		profileSvc = NewProfileService(storage.KV())
	})
	return profileSvc
}

func Day() *DayService {
	dayOnce.Do(func() {
		daySvc = NewDayService(storage.KV())
	})
	return daySvc
}

func Settings() *SettingsService {
	settingsOnce.Do(func() {
		settingsSvc = NewSettingsService(storage.KV())
	})
	return settingsSvc
}

func Prayer() *PrayerService {
	prayerOnce.Do(func() {
		times := prayertimes.NewService(storage.KV(), prayertimes.NewAladhanClient(), config.Cfg.ImsakOffsetMinutes)
		prayerSvc = NewPrayerService(storage.KV(), times)
	})
	return prayerSvc
}

func Assistant() *assistant.Service {
	assistantOnce.Do(func() {
		store := storage.KV()
		assistantSvc = assistant.NewService(
			store,
			assistant.NewHTTPClient(),
			tracker.NewRecords(store),
			tracker.NewIndexer(store),
			config.Cfg.AssistantDailyLimit,
			config.Cfg.AssistantHistoryMax,
		)
	})
	return assistantSvc
}
