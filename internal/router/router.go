package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"RamadhanLantern/config"
	"RamadhanLantern/internal/handler"
	"RamadhanLantern/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	h.Use(middleware.CORSMiddleware())
	if config.Cfg.TracingEnabled {
		h.Use(middleware.OpenTelemetryMiddleware())
	}

	v1 := h.Group("/v1")
	// 限流计数存 Redis，postgres 后端下没有可用的计数器
	if config.Cfg.RateLimitEnabled && config.Cfg.StorageBackend == "redis" {
		v1.Use(middleware.GeneralRateLimitMiddleware(config.Cfg.RateLimitRPS))
	}

	// 资料与建档
	profile := v1.Group("/profile")
	{
		profile.POST("/onboard", handler.Onboard)
		profile.GET("", handler.GetProfile)
		profile.PATCH("", handler.UpdateProfile)
		profile.DELETE("/photo", handler.RemoveProfilePhoto)
	}

	// 每日记录
	days := v1.Group("/days")
	{
		days.GET("/today", handler.GetToday)
		days.GET("/by-number/:number", handler.GetDateForDay)
		days.GET("/:date", handler.GetDay)
		days.PATCH("/:date", handler.UpdateDay)
	}

	v1.GET("/progress", handler.GetProgress)
	v1.GET("/stats", handler.GetStats)

	// 祷告时间
	prayerTimes := v1.Group("/prayer-times")
	{
		prayerTimes.GET("", handler.GetPrayerTimes)
		prayerTimes.GET("/next", handler.GetNextPrayer)
	}

	// AI 助手
	chat := v1.Group("/chat")
	if config.Cfg.RateLimitEnabled && config.Cfg.StorageBackend == "redis" {
		chat.Use(middleware.ChatRateLimitMiddleware())
	}
	{
		chat.POST("", handler.SendChat)
		chat.GET("/history", handler.GetChatHistory)
		chat.DELETE("/history", handler.ClearChatHistory)
	}

	v1.GET("/motivation", handler.GetMotivation)

	// 设置与工具
	v1.GET("/settings", handler.GetSettings)
	v1.PATCH("/settings", handler.UpdateSettings)
	v1.GET("/note", handler.GetNote)
	v1.PUT("/note", handler.UpdateNote)
	v1.POST("/reset", handler.ResetAll)
}
