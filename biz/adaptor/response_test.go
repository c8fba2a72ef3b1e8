package adaptor

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"alpstech-server/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

// 删除类操作不携带数据, data必须是null而不是缺失或占位对象
func TestPostProcessNullData(t *testing.T) {
	c := app.NewContext(0)
	PostProcess(context.Background(), c, nil, nil)
	assert.Equal(t, http.StatusOK, c.Response.StatusCode())
	assert.JSONEq(t, `{"success":true,"data":null}`, string(c.Response.Body()))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing fields", consts.NewMissingFieldsError("title"), http.StatusBadRequest},
		{"invalid id", consts.ErrInvalidObjectId, http.StatusBadRequest},
		{"user exists", consts.ErrUserExists, http.StatusBadRequest},
		{"not found", consts.ErrCourseNotFound, http.StatusNotFound},
		{"not authenticated", consts.ErrNotAuthentication, http.StatusUnauthorized},
		{"forbidden", consts.ErrForbidden, http.StatusForbidden},
		{"rate limited", consts.ErrTooManyRequests, http.StatusTooManyRequests},
		{"upstream down", consts.ErrUpstream, http.StatusServiceUnavailable},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
