package tracker

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"RamadhanLantern/internal/model"
	"RamadhanLantern/pkg/logger"
	"RamadhanLantern/storage/kv"
)

// 存储 key 布局（与既有安装保持兼容）：
// ramadhan_day_{date}    每日功课记录
// ramadhan_start_date    斋月第一天的日历日期
const (
	dayKeyPrefix = "ramadhan_day_"
	startDateKey = "ramadhan_start_date"
)

// WindowDays 跟踪窗口固定为 30 个连续日历日。
// 真实的回历月长（29 或 30 天）刻意不做区分。
const WindowDays = 30

// Records 负责每日记录的读写，所有消费方通过它拿到统一的缺省值语义
type Records struct {
	store kv.Store
}

func NewRecords(store kv.Store) *Records {
	return &Records{store: store}
}

// DefaultRecord 返回指定日期的零值记录：所有布尔为 false，计数为 0，文本为空
func DefaultRecord(date string) model.DayRecord {
	prayers := make(map[model.PrayerName]bool, len(model.CanonicalPrayers))
	for _, name := range model.CanonicalPrayers {
		prayers[name] = false
	}

	return model.DayRecord{
		Date:    date,
		Prayers: prayers,
	}
}

// Load 返回指定日期的记录。
// 记录缺失或反序列化失败都视同缺失，返回零值记录，绝不向调用方抛解析错误。
func (r *Records) Load(ctx context.Context, date string) model.DayRecord {
	raw, ok, err := r.store.Get(ctx, dayKeyPrefix+date)
	if err != nil || !ok {
		if err != nil {
			logger.Logger.Warn("Failed to load day record, falling back to default",
				zap.String("date", date),
				zap.Error(err),
			)
		}
		return DefaultRecord(date)
	}

	var record model.DayRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		logger.Logger.Debug("Corrupt day record treated as absent",
			zap.String("date", date),
			zap.Error(err),
		)
		return DefaultRecord(date)
	}

	// 旧数据可能缺 prayers key，补齐保证 key 集合固定
	record.Date = date
	if record.Prayers == nil {
		record.Prayers = make(map[model.PrayerName]bool, len(model.CanonicalPrayers))
	}
	for _, name := range model.CanonicalPrayers {
		if _, exists := record.Prayers[name]; !exists {
			record.Prayers[name] = false
		}
	}

	return record
}

// StoredDates 返回存在记录的日期集合，用于区分 "缺省记录" 和 "真实记录"
func (r *Records) StoredDates(ctx context.Context) (map[string]bool, error) {
	keys, err := r.store.Keys(ctx, dayKeyPrefix)
	if err != nil {
		return nil, err
	}

	dates := make(map[string]bool, len(keys))
	for _, key := range keys {
		dates[key[len(dayKeyPrefix):]] = true
	}
	return dates, nil
}

// Store 以记录自身的日期为 key 整条覆盖写入，不做部分合并
func (r *Records) Store(ctx context.Context, record model.DayRecord) error {
	if record.Date == "" {
		return fmt.Errorf("day record has no date")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal day record: %w", err)
	}

	return r.store.Set(ctx, dayKeyPrefix+record.Date, string(data))
}
