package enrollment

import (
	"testing"

	"alpstech-server/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRecentWithRefsPipeline(t *testing.T) {
	p := RecentWithRefsPipeline(5)
	require.Len(t, p, 5)

	assert.Equal(t, bson.M{consts.EnrollmentDate: -1}, p[0]["$sort"])
	assert.Equal(t, int64(5), p[1]["$limit"])

	userLookup := p[2]["$lookup"].(bson.M)
	assert.Equal(t, "users", userLookup["from"])
	assert.Equal(t, consts.UserId, userLookup["localField"])

	courseLookup := p[3]["$lookup"].(bson.M)
	assert.Equal(t, "courses", courseLookup["from"])

	project := p[4]["$project"].(bson.M)
	assert.Contains(t, project, "user.name")
	assert.Contains(t, project, "course.title")
}

func TestAllWithRefsPipeline(t *testing.T) {
	p := AllWithRefsPipeline()
	require.Len(t, p, 4)

	assert.Contains(t, p[0], "$lookup")
	assert.Contains(t, p[1], "$lookup")

	// 第一个project拍平数组, 第二个裁剪字段
	flatten := p[2]["$project"].(bson.M)
	assert.Contains(t, flatten, "student")
	assert.Contains(t, flatten, "course")

	final := p[3]["$project"].(bson.M)
	assert.Contains(t, final, "student.name")
	assert.Contains(t, final, "course.title")
	assert.NotContains(t, final, "student.password")
}
