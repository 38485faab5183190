package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	otelapi "go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"RamadhanLantern/config"
	"RamadhanLantern/internal/middleware"
	"RamadhanLantern/internal/prayertimes"
	"RamadhanLantern/internal/router"
	"RamadhanLantern/internal/schedule"
	"RamadhanLantern/internal/service"
	"RamadhanLantern/pkg/logger"
	"RamadhanLantern/pkg/otel"
	"RamadhanLantern/pkg/snowflake"
	"RamadhanLantern/storage"
)

func main() {
	// 日志部分
	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	// 初始化存储层，记得关闭外部连接
	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	// 链路追踪可选，关掉不影响主流程
	if config.Cfg.TracingEnabled {
		shutdown, err := otel.InitOpenTelemetry(ctx, otel.Config{
			ServiceName:  config.Cfg.ServiceName,
			Environment:  config.Cfg.Environment,
			OTLPEndpoint: config.Cfg.OTLPEndpoint,
		})
		if err != nil {
			logger.Logger.Warn("Failed to initialize OpenTelemetry, tracing disabled", zap.Error(err))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					logger.Logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
				}
			}()

			if err := middleware.InitMetrics(otelapi.Meter("hertz-server")); err != nil {
				logger.Logger.Warn("Failed to initialize HTTP metrics", zap.Error(err))
			}
		}
	}

	// 下一观礼时刻快照的后台刷新
	refresher := schedule.NewNextPrayerRefresher(
		service.Prayer().Engine(),
		func(ctx context.Context) prayertimes.Location {
			loc, err := service.Prayer().ResolveLocation(ctx, "", "")
			if err != nil {
				return prayertimes.Location{
					Lat: config.Cfg.PrayerFallbackLat,
					Lng: config.Cfg.PrayerFallbackLng,
				}
			}
			return loc
		},
		time.Duration(config.Cfg.NextPrayerRefreshSecs)*time.Second,
	)
	refresher.Start(ctx)
	defer refresher.Stop()

	logger.Logger.Info("Server starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ServerPort),
		zap.String("environment", config.Cfg.Environment),
	)

	addr := net.JoinHostPort(config.Cfg.ServerHost, config.Cfg.ServerPort)

	hertzOpts := []hertzconfig.Option{server.WithHostPorts(addr)}
	var tracerMw app.HandlerFunc
	if config.Cfg.TracingEnabled {
		tracerOpt, mw := middleware.NewServerTracerConfig()
		hertzOpts = append(hertzOpts, tracerOpt)
		tracerMw = mw
	}

	h := server.Default(hertzOpts...)
	if tracerMw != nil {
		h.Use(tracerMw)
	}

	router.Register(h)

	// 优雅关闭：在单独的 goroutine 中监听关闭信号并调用 Shutdown
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	logger.Logger.Info("Server shutting down gracefully")
}
