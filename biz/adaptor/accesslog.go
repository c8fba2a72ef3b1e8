package adaptor

import (
	"context"
	"time"

	"alpstech-server/biz/infrastructure/config"
	"alpstech-server/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// AccessLog 打点每个请求, 带请求id; 请求体不入日志
func AccessLog(config *config.Config) app.HandlerFunc {
	noLogPaths := config.Log.NoLogPaths
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		requestId := uuid.New().String()
		c.Response.Header.Set("X-Request-Id", requestId)

		c.Next(ctx)

		path := string(c.Path())
		if lo.Contains(noLogPaths, path) {
			return
		}
		log.CtxInfo(ctx, "[%s] %s %s %d %v",
			requestId, c.Method(), path, c.Response.StatusCode(), time.Since(start))
	}
}
