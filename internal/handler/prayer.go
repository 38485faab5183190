package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"RamadhanLantern/internal/service"
	"RamadhanLantern/pkg/response"
)

// GetPrayerTimes 获取时间表，缺省取今天
// GET /v1/prayer-times?date=&lat=&lng=
func GetPrayerTimes(ctx context.Context, c *app.RequestContext) {
	times, err := service.Prayer().Times(ctx,
		c.Query("date"),
		c.Query("lat"),
		c.Query("lng"),
	)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, times)
}

// GetNextPrayer 下一观礼时刻及倒计时
// GET /v1/prayer-times/next
func GetNextPrayer(ctx context.Context, c *app.RequestContext) {
	next, err := service.Prayer().Next(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, next)
}
