package consts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestNewMissingFieldsError(t *testing.T) {
	err := NewMissingFieldsError("name", "email")
	assert.Equal(t, "name, email required", err.Error())
	assert.Equal(t, codes.InvalidArgument, err.Code())
}

func TestErrnoGRPCStatus(t *testing.T) {
	st := ErrCourseNotFound.GRPCStatus()
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "course not found", st.Message())
}
