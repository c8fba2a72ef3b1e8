package service

import (
	"testing"

	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
)

func TestBuildCourseUpdate(t *testing.T) {
	assert.Empty(t, buildCourseUpdate(&api.UpdateCourseReq{Id: "x"}))

	title := "Go from Scratch"
	price := 49.9
	set := buildCourseUpdate(&api.UpdateCourseReq{Id: "x", Title: &title, Price: &price})
	assert.Len(t, set, 2)
	assert.Equal(t, title, set["title"])
	assert.Equal(t, price, set["price"])
	// 未携带的字段不进入$set
	assert.NotContains(t, set, "description")
	assert.NotContains(t, set, consts.CreatedAt)
}
