package service

import (
	"context"
	"errors"

	"alpstech-server/biz/adaptor"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/biz/infrastructure/repository/enrollment"
	"alpstech-server/biz/infrastructure/repository/result"
	"alpstech-server/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

type IStudentService interface {
	ListStudents(ctx context.Context) ([]*user.StudentWithRefs, error)
	ListEnrollments(ctx context.Context) ([]*enrollment.WithRefsRow, error)
	SelfResults(ctx context.Context) ([]*result.Result, error)
}

type StudentService struct {
	UserMapper       *user.MongoMapper
	EnrollmentMapper *enrollment.MongoMapper
	ResultMapper     *result.MongoMapper
}

var StudentServiceSet = wire.NewSet(
	wire.Struct(new(StudentService), "*"),
	wire.Bind(new(IStudentService), new(*StudentService)),
)

// ListStudents 学生列表, 带选课/成绩引用
func (s *StudentService) ListStudents(ctx context.Context) ([]*user.StudentWithRefs, error) {
	return s.UserMapper.FindStudentsWithRefs(ctx)
}

// ListEnrollments 全量报名记录, 关联学生与课程
func (s *StudentService) ListEnrollments(ctx context.Context) ([]*enrollment.WithRefsRow, error) {
	return s.EnrollmentMapper.FindAllWithRefs(ctx)
}

// SelfResults 学生查本人成绩, 身份取自token
// token里的邮箱必须对应存量用户, 用户已删除时按未认证处理
func (s *StudentService) SelfResults(ctx context.Context) ([]*result.Result, error) {
	meta, err := adaptor.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	_, lookupErr := s.UserMapper.FindOneByEmail(ctx, meta.GetEmail())
	if err := requireKnownUser(lookupErr); err != nil {
		return nil, err
	}
	return s.ResultMapper.FindByStudentEmail(ctx, meta.GetEmail())
}

// requireKnownUser 用户不存在视为无身份; 存储故障不拦截请求
func requireKnownUser(lookupErr error) error {
	if errors.Is(lookupErr, consts.ErrNotFound) {
		return consts.ErrNotAuthentication
	}
	return nil
}
