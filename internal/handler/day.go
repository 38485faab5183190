package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"RamadhanLantern/internal/model/dto"
	"RamadhanLantern/internal/service"
	"RamadhanLantern/pkg/errors"
	"RamadhanLantern/pkg/response"
)

// GetToday 获取今天的记录
// GET /v1/days/today
func GetToday(ctx context.Context, c *app.RequestContext) {
	day, err := service.Day().Today(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, day)
}

// GetDay 获取指定日期的记录
// GET /v1/days/:date
func GetDay(ctx context.Context, c *app.RequestContext) {
	day, err := service.Day().GetDay(ctx, c.Param("date"))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, day)
}

// UpdateDay 合并更新指定日期的记录
// PATCH /v1/days/:date
func UpdateDay(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateDayRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	day, err := service.Day().UpdateDay(ctx, c.Param("date"), &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, day)
}

// GetProgress 今日进度概览
// GET /v1/progress
func GetProgress(ctx context.Context, c *app.RequestContext) {
	progress, err := service.Day().Progress(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, progress)
}

// GetDateForDay 把斋月第 N 天换算为日历日期
// GET /v1/days/by-number/:number
func GetDateForDay(ctx context.Context, c *app.RequestContext) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		response.Error(ctx, c, errors.DayOutOfWindow)
		return
	}

	date, err := service.Day().DateForDay(ctx, number)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{
		"day":  number,
		"date": date,
	})
}

// GetStats 30 天窗口的聚合统计
// GET /v1/stats
func GetStats(ctx context.Context, c *app.RequestContext) {
	stats, err := service.Day().Stats(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, stats)
}
