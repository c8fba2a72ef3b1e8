package adaptor

import (
	"context"
	"net/http"

	"alpstech-server/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const cacheKeyPrefix = "cache:"

const jsonContentType = "application/json; charset=utf-8"

// CacheKey 以完整请求路径(含query)为key
func CacheKey(requestURI string) string {
	return cacheKeyPrefix + requestURI
}

// CacheResponse 读穿缓存: 命中直接返回缓存JSON, 未命中执行后续handler并回填
// redis不可用时直接放行, 不影响请求
func CacheResponse(rds *redis.Redis, ttlSeconds int) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if rds == nil {
			c.Next(ctx)
			return
		}
		key := CacheKey(string(c.Request.URI().RequestURI()))
		cached, err := rds.GetCtx(ctx, key)
		if err == nil && cached != "" {
			c.Data(http.StatusOK, jsonContentType, []byte(cached))
			c.Abort()
			return
		}
		if err != nil {
			log.CtxInfo(ctx, "cache get fail, key=%s err=%v", key, err)
		}

		c.Next(ctx)

		if c.Response.StatusCode() == http.StatusOK {
			if err := rds.SetexCtx(ctx, key, string(c.Response.Body()), ttlSeconds); err != nil {
				log.CtxInfo(ctx, "cache set fail, key=%s err=%v", key, err)
			}
		}
	}
}

// ClearCache 写路由前置失效: 删除所有匹配模式的key
func ClearCache(rds *redis.Redis, patterns ...string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if rds == nil {
			c.Next(ctx)
			return
		}
		for _, pattern := range patterns {
			keys, err := rds.KeysCtx(ctx, pattern)
			if err != nil {
				log.CtxInfo(ctx, "cache clear fail, pattern=%s err=%v", pattern, err)
				continue
			}
			if len(keys) == 0 {
				continue
			}
			if _, err := rds.DelCtx(ctx, keys...); err != nil {
				log.CtxInfo(ctx, "cache del fail, pattern=%s err=%v", pattern, err)
			}
		}
		c.Next(ctx)
	}
}
