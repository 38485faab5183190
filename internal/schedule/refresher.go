package schedule

// 下一观礼时刻刷新器：周期性重算倒计时快照，供仪表盘直接读取

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"RamadhanLantern/internal/prayertimes"
	"RamadhanLantern/pkg/logger"
)

// LocationResolver 返回刷新时使用的查询位置
type LocationResolver func(ctx context.Context) prayertimes.Location

// NextPrayerRefresher 按固定间隔刷新下一观礼时刻快照，
// 显式 Start/Stop，停止后可安全重复调用 Stop。
type NextPrayerRefresher struct {
	service  *prayertimes.Service
	resolve  LocationResolver
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func NewNextPrayerRefresher(service *prayertimes.Service, resolve LocationResolver, interval time.Duration) *NextPrayerRefresher {
	return &NextPrayerRefresher{
		service:  service,
		resolve:  resolve,
		interval: interval,
	}
}

// Start 启动刷新循环，立即刷新一次后按间隔重复
func (r *NextPrayerRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.running = true

	go r.loop(runCtx)

	logger.Logger.Info("Next prayer refresher started",
		zap.Duration("interval", r.interval),
	)
}

// Stop 停止刷新循环并等待退出
func (r *NextPrayerRefresher) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	cancel := r.cancel
	done := r.done
	r.mu.Unlock()

	cancel()
	<-done

	logger.Logger.Info("Next prayer refresher stopped")
}

func (r *NextPrayerRefresher) loop(ctx context.Context) {
	defer close(r.done)

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *NextPrayerRefresher) refresh(ctx context.Context) {
	r.service.RefreshNext(ctx, r.resolve(ctx), time.Now())
}
