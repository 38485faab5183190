package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"RamadhanLantern/internal/model/dto"
	"RamadhanLantern/internal/service"
	"RamadhanLantern/pkg/response"
)

// GetSettings 获取当前设置
// GET /v1/settings
func GetSettings(ctx context.Context, c *app.RequestContext) {
	settings, err := service.Settings().Get(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, settings)
}

// UpdateSettings 部分更新设置
// PATCH /v1/settings
func UpdateSettings(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateSettingsRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	settings, err := service.Settings().Update(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, settings)
}

// GetNote 获取全局笔记
// GET /v1/note
func GetNote(ctx context.Context, c *app.RequestContext) {
	note, err := service.Settings().Note(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, note)
}

// UpdateNote 覆盖写入全局笔记
// PUT /v1/note
func UpdateNote(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateNoteRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	note, err := service.Settings().UpdateNote(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, note)
}

// ResetAll 清空全部数据，需要确认短语
// POST /v1/reset
func ResetAll(ctx context.Context, c *app.RequestContext) {
	var req dto.ResetRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Settings().Reset(ctx, &req); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
