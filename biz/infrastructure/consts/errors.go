package consts

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

func (en *Errno) Code() codes.Code {
	return en.code
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// CodeNotAuthentication 未通过身份认证, 映射为 401
const CodeNotAuthentication = codes.Code(1000)

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(CodeNotAuthentication, errors.New("authentication required"))
	ErrUserExists        = NewErrno(codes.InvalidArgument, errors.New("user exists"))
	ErrUserNotFound      = NewErrno(codes.NotFound, errors.New("user not found"))
	ErrCourseNotFound    = NewErrno(codes.NotFound, errors.New("course not found"))
	ErrResultNotFound    = NewErrno(codes.NotFound, errors.New("result not found"))
	ErrAssignNotFound    = NewErrno(codes.NotFound, errors.New("assignment not found"))
	ErrPDFNotFound       = NewErrno(codes.NotFound, errors.New("pdf not found"))
	ErrOnlyPDF           = NewErrno(codes.InvalidArgument, errors.New("only pdf files are allowed"))
	ErrPDFRequired       = NewErrno(codes.InvalidArgument, errors.New("pdf file is required"))
	ErrTooManyRequests   = NewErrno(codes.ResourceExhausted, errors.New("too many requests, please try again later"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrUpstream        = NewErrno(codes.Unavailable, errors.New("database unavailable"))
)

// NewErrnoInvalidArgument 参数错误, 映射为 400
func NewErrnoInvalidArgument(err error) *Errno {
	return NewErrno(codes.InvalidArgument, err)
}

// NewMissingFieldsError 按字段列举缺失的必填参数
func NewMissingFieldsError(fields ...string) *Errno {
	return NewErrno(codes.InvalidArgument, fmt.Errorf("%s required", strings.Join(fields, ", ")))
}
