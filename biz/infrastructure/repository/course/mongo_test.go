package course

import (
	"errors"
	"testing"

	"alpstech-server/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/zeromicro/go-zero/core/stores/monc"
)

func TestWrapFindErr(t *testing.T) {
	assert.ErrorIs(t, wrapFindErr(monc.ErrNotFound), consts.ErrCourseNotFound)

	// 存储故障不能伪装成404
	upstream := errors.New("connection reset")
	assert.ErrorIs(t, wrapFindErr(upstream), upstream)
}
