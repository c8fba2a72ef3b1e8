package adaptor

import (
	"context"
	"errors"
	"net/http"

	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
)

// SuccessEnvelope data始终出现, 删除类操作为null
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PostProcess 统一出口: 成功包装{success,data}, 失败映射Errno到HTTP状态
func PostProcess(ctx context.Context, c *app.RequestContext, data any, err error) {
	postProcess(ctx, c, data, err, http.StatusOK)
}

// PostProcessCreated 创建类操作成功返回201
func PostProcessCreated(ctx context.Context, c *app.RequestContext, data any, err error) {
	postProcess(ctx, c, data, err, http.StatusCreated)
}

func postProcess(ctx context.Context, c *app.RequestContext, data any, err error, okStatus int) {
	if err != nil {
		Fail(ctx, c, err)
		return
	}
	c.JSON(okStatus, SuccessEnvelope{Success: true, Data: data})
}

func Fail(ctx context.Context, c *app.RequestContext, err error) {
	status := HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		// 不透传未知错误详情
		log.CtxError(ctx, "unhandled error: %v", err)
		msg = "Internal Server Error"
	} else {
		log.CtxInfo(ctx, "request failed: %v", err)
	}
	c.JSON(status, ErrorEnvelope{Success: false, Message: msg})
}

// HTTPStatus Errno错误码到HTTP状态码
func HTTPStatus(err error) int {
	var en *consts.Errno
	if !errors.As(err, &en) {
		return http.StatusInternalServerError
	}
	switch en.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case consts.CodeNotAuthentication:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
