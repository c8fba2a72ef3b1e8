package user

import (
	"errors"
	"testing"

	"alpstech-server/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
)

func TestWrapFindErr(t *testing.T) {
	assert.ErrorIs(t, wrapFindErr(monc.ErrNotFound), consts.ErrNotFound)

	// 存储故障不能伪装成404
	upstream := errors.New("connection reset")
	assert.ErrorIs(t, wrapFindErr(upstream), upstream)
}

func TestStudentsWithRefsPipeline(t *testing.T) {
	p := StudentsWithRefsPipeline()
	require.Len(t, p, 5)

	// 只统计学生
	assert.Equal(t, bson.M{consts.Role: consts.RoleStudent}, p[0]["$match"])

	for _, stage := range p[1:4] {
		assert.Contains(t, stage, "$lookup")
	}

	project := p[4]["$project"].(bson.M)
	assert.Contains(t, project, "name")
	assert.Contains(t, project, "email")
	assert.Contains(t, project, "enrolledCourses")
	assert.Contains(t, project, "results")
	// 密码不出现在列表结果里
	assert.NotContains(t, project, "password")
}
