package service

import (
	"testing"

	"alpstech-server/biz/application/dto/api"

	"github.com/stretchr/testify/assert"
)

func TestMissingRegisterFields(t *testing.T) {
	assert.Empty(t, missingRegisterFields(&api.RegisterUserReq{
		Name: "Alice", Email: "a@b.c", Password: "pw",
	}))

	assert.Equal(t, []string{"name", "email", "password"},
		missingRegisterFields(&api.RegisterUserReq{}))

	assert.Equal(t, []string{"password"},
		missingRegisterFields(&api.RegisterUserReq{Name: "Alice", Email: "a@b.c"}))
}
