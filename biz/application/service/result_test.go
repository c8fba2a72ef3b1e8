package service

import (
	"testing"
	"time"

	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingResultFields(t *testing.T) {
	assert.Empty(t, missingResultFields(&api.CreateResultReq{
		UserId: "u", CourseId: "c", StudentEmail: "s@x.y",
	}))
	assert.Equal(t, []string{"userId", "courseId", "studentEmail"},
		missingResultFields(&api.CreateResultReq{}))
}

func TestBuildResultUpdate(t *testing.T) {
	set, err := buildResultUpdate(&api.UpdateResultReq{Id: "x"})
	require.NoError(t, err)
	assert.Empty(t, set)

	score := 87.5
	grade := "B+"
	date := "2026-03-01T10:00:00Z"
	set, err = buildResultUpdate(&api.UpdateResultReq{
		Id: "x", Score: &score, Grade: &grade, Date: &date,
	})
	require.NoError(t, err)
	assert.Equal(t, score, set["score"])
	assert.Equal(t, grade, set["grade"])
	want, _ := time.Parse(time.RFC3339, date)
	assert.Equal(t, want, set[consts.Date])
	assert.NotContains(t, set, consts.CreatedAt)
}

func TestBuildResultUpdateBadDate(t *testing.T) {
	bad := "03/01/2026"
	_, err := buildResultUpdate(&api.UpdateResultReq{Id: "x", Date: &bad})
	require.Error(t, err)
}
