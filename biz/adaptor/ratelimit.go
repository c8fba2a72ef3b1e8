package adaptor

import (
	"context"

	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// RateLimit 按客户端IP的固定窗口限流
// redis不可用时放行
func RateLimit(rds *redis.Redis, windowSeconds, maxRequests int) app.HandlerFunc {
	l := limit.NewPeriodLimit(windowSeconds, maxRequests, rds, "limit:")
	return func(ctx context.Context, c *app.RequestContext) {
		code, err := l.TakeCtx(ctx, c.ClientIP())
		if err != nil {
			log.CtxInfo(ctx, "rate limit take fail, err=%v", err)
			c.Next(ctx)
			return
		}
		if code == limit.OverQuota {
			Fail(ctx, c, consts.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
