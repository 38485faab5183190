package tracker

import (
	"context"

	"RamadhanLantern/pkg/errors"
	"RamadhanLantern/storage/kv"
	"RamadhanLantern/utils"
)

// Indexer 把日历日期和斋月第 N 天互相换算，起始日期持久化在 KV 中
type Indexer struct {
	store kv.Store
}

func NewIndexer(store kv.Store) *Indexer {
	return &Indexer{store: store}
}

// StartDate 返回已持久化的起始日期，未设置或无法解析时 ok 为 false
func (i *Indexer) StartDate(ctx context.Context) (string, bool) {
	raw, ok, err := i.store.Get(ctx, startDateKey)
	if err != nil || !ok {
		return "", false
	}
	if _, err := utils.ParseDateKey(raw); err != nil {
		return "", false
	}
	return raw, true
}

// SetStartDate 覆盖写入起始日期，日期必须是合法的 YYYY-MM-DD
func (i *Indexer) SetStartDate(ctx context.Context, date string) error {
	if _, err := utils.ParseDateKey(date); err != nil {
		return errors.InvalidDate
	}
	return i.store.Set(ctx, startDateKey, date)
}

// DateForDay 返回第 day 天对应的日历日期，day 取值 [1, 30]
func (i *Indexer) DateForDay(ctx context.Context, day int) (string, error) {
	if day < 1 || day > WindowDays {
		return "", errors.DayOutOfWindow
	}

	start, ok := i.StartDate(ctx)
	if !ok {
		return "", errors.StartDateMissing
	}

	t, err := utils.ParseDateKey(start)
	if err != nil {
		return "", errors.StartDateMissing
	}

	return utils.DateKey(t.AddDate(0, 0, day-1)), nil
}

// DayForDate 返回日历日期落在窗口内的第几天。
// 起始日期缺失或日期落在 30 天窗口之外时 ok 为 false。
func (i *Indexer) DayForDate(ctx context.Context, date string) (int, bool) {
	start, ok := i.StartDate(ctx)
	if !ok {
		return 0, false
	}

	startT, err := utils.ParseDateKey(start)
	if err != nil {
		return 0, false
	}
	dateT, err := utils.ParseDateKey(date)
	if err != nil {
		return 0, false
	}

	day := int(dateT.Sub(startT).Hours()/24) + 1
	if day < 1 || day > WindowDays {
		return 0, false
	}
	return day, true
}
