package service

import (
	"errors"
	"testing"

	"alpstech-server/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
)

func TestRequireKnownUser(t *testing.T) {
	// 存量用户正常通过
	assert.NoError(t, requireKnownUser(nil))

	// 已删除或从未注册的用户, 即便token有效也视为未认证
	assert.ErrorIs(t, requireKnownUser(consts.ErrNotFound), consts.ErrNotAuthentication)

	// 存储故障放行, 不把可用性问题变成401
	assert.NoError(t, requireKnownUser(errors.New("connection reset")))
}
