package result

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
	assert.ErrorIs(t, wrapFindErr(monc.ErrNotFound), consts.ErrResultNotFound)

	// 存储故障不能伪装成404
	upstream := errors.New("connection reset")
	assert.ErrorIs(t, wrapFindErr(upstream), upstream)
}

func TestLatestWithRefsPipeline(t *testing.T) {
	p := LatestWithRefsPipeline(3)
	require.Len(t, p, 5)

	assert.Equal(t, bson.M{consts.Date: -1}, p[0]["$sort"])
	assert.Equal(t, int64(3), p[1]["$limit"])

	project := p[4]["$project"].(bson.M)
	assert.Contains(t, project, "score")
	assert.Contains(t, project, "grade")
	assert.Contains(t, project, "user.name")
	assert.Contains(t, project, "course.title")
}
