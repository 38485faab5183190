package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"RamadhanLantern/internal/model/dto"
	"RamadhanLantern/internal/service"
	"RamadhanLantern/pkg/response"
	"RamadhanLantern/utils"
)

// SendChat 发送一条消息给助手
// POST /v1/chat
func SendChat(ctx context.Context, c *app.RequestContext) {
	var req dto.ChatRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Assistant().Chat(ctx, req.Message)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.ChatData{
		Reply:          result.Reply,
		UsedToday:      result.Used,
		RemainingToday: result.Remaining,
	})
}

// GetChatHistory 获取聊天记录，空历史返回开场白
// GET /v1/chat/history
func GetChatHistory(ctx context.Context, c *app.RequestContext) {
	messages, used, err := service.Assistant().History(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	_, remaining := service.Assistant().UsageToday(ctx)
	response.SuccessWithMeta(ctx, c, dto.ChatHistoryData{Messages: messages}, map[string]interface{}{
		"used_today":      used,
		"remaining_today": remaining,
	})
}

// ClearChatHistory 清空聊天记录
// DELETE /v1/chat/history
func ClearChatHistory(ctx context.Context, c *app.RequestContext) {
	if err := service.Assistant().ClearHistory(ctx); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// GetMotivation 今日激励语
// GET /v1/motivation
func GetMotivation(ctx context.Context, c *app.RequestContext) {
	text, err := service.Assistant().Motivation(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.MotivationData{
		Date: utils.DateKey(time.Now()),
		Text: text,
	})
}
