package middleware

import (
	"bytes"
	"context"
	"fmt"
	"runtime"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"RamadhanLantern/config"
	"RamadhanLantern/pkg/errors"
	"RamadhanLantern/pkg/logger"
	"RamadhanLantern/pkg/response"
)

// RecoverMiddleware 捕获 handler panic，记录日志并返回统一错误响应
func RecoverMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				handlePanic(ctx, c, err)
			}
		}()

		c.Next(ctx)
	}
}

func handlePanic(ctx context.Context, c *app.RequestContext, err interface{}) {
	stack := simpleStack()

	logger.Logger.Error("Panic recovered",
		zap.Any("panic", err),
		zap.String("method", string(c.Method())),
		zap.String("path", string(c.Path())),
		zap.String("client_ip", c.ClientIP()),
		zap.String("request_id", RequestIDFromContext(ctx)),
		zap.ByteString("stack", stack),
	)

	errDef := errors.Definition{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: "Terjadi kesalahan pada server, coba lagi nanti",
	}

	// 开发环境把 panic 详情带回响应
	if config.Cfg.IsProduction() {
		response.Error(ctx, c, errDef)
		return
	}
	response.ErrorWithDetails(ctx, c, errDef, map[string]interface{}{
		"panic": fmt.Sprintf("%v", err),
		"stack": string(stack),
	})
}

// simpleStack 当前 goroutine 的简化调用栈
func simpleStack() []byte {
	var buf bytes.Buffer
	buf.WriteString("goroutine panic:\n")

	skip := 3 // 跳过 runtime 和 recover 相关的帧
	for i := skip; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		buf.WriteString(fmt.Sprintf("  %s:%d\n    %s\n", file, line, fn.Name()))
	}

	return buf.Bytes()
}
