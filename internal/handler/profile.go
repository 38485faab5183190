package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"RamadhanLantern/internal/model/dto"
	"RamadhanLantern/internal/service"
	"RamadhanLantern/pkg/response"
)

// Onboard 建档并开启斋月窗口
// POST /v1/profile/onboard
func Onboard(ctx context.Context, c *app.RequestContext) {
	var req dto.OnboardRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	profile, err := service.Profile().Onboard(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, profile)
}

// GetProfile 获取资料
// GET /v1/profile
func GetProfile(ctx context.Context, c *app.RequestContext) {
	profile, err := service.Profile().Get(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, profile)
}

// UpdateProfile 部分更新资料
// PATCH /v1/profile
func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateProfileRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	profile, err := service.Profile().Update(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, profile)
}

// RemoveProfilePhoto 删除头像
// DELETE /v1/profile/photo
func RemoveProfilePhoto(ctx context.Context, c *app.RequestContext) {
	profile, err := service.Profile().RemovePhoto(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, profile)
}
