package service

import (
	"context"
	"errors"

	"alpstech-server/biz/adaptor"
	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/biz/infrastructure/repository/user"
	"alpstech-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Register(ctx context.Context, req *api.RegisterUserReq) (*api.RegisterUserResp, error)
	GetUserByEmail(ctx context.Context, req *api.GetUserReq) (*api.UserInfo, error)
	Enroll(ctx context.Context, req *api.EnrollReq) (*api.EnrollResp, error)
}

type UserService struct {
	UserMapper *user.MongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// Register 注册用户并签发token
// 邮箱唯一性依赖插入前的存在性检查, 并发注册下不保证(见文档)
func (s *UserService) Register(ctx context.Context, req *api.RegisterUserReq) (*api.RegisterUserResp, error) {
	if fields := missingRegisterFields(req); len(fields) > 0 {
		return nil, consts.NewMissingFieldsError(fields...)
	}

	existing, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, consts.ErrUserExists
	}
	if err != nil && !errors.Is(err, consts.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = consts.RoleStudent
	}
	u := &user.User{
		Name:            req.Name,
		Email:           req.Email,
		Password:        string(hashed),
		Role:            role,
		EnrolledCourses: []string{},
		Results:         []string{},
	}
	if err := s.UserMapper.Insert(ctx, u); err != nil {
		log.CtxError(ctx, "insert user fail, email=%s err=%v", req.Email, err)
		return nil, err
	}

	token, _, err := adaptor.GenerateJwtToken(u.Email)
	if err != nil {
		return nil, err
	}

	return &api.RegisterUserResp{
		Id:              u.ID.Hex(),
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		EnrolledCourses: u.EnrolledCourses,
		Results:         u.Results,
		CreatedAt:       u.CreatedAt,
		Token:           token,
	}, nil
}

// GetUserByEmail 按邮箱查询用户, 响应不含密码
func (s *UserService) GetUserByEmail(ctx context.Context, req *api.GetUserReq) (*api.UserInfo, error) {
	if req.Email == "" {
		return nil, consts.NewMissingFieldsError("email")
	}

	u, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &api.UserInfo{
		Id:              u.ID.Hex(),
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		EnrolledCourses: u.EnrolledCourses,
		Results:         u.Results,
		CreatedAt:       u.CreatedAt,
	}, nil
}

// Enroll 报名课程, $addToSet保证重复报名只保留一条
func (s *UserService) Enroll(ctx context.Context, req *api.EnrollReq) (*api.EnrollResp, error) {
	if req.CourseId == "" {
		return nil, consts.NewMissingFieldsError("courseId")
	}

	modified, err := s.UserMapper.AddEnrolledCourse(ctx, req.UserId, req.CourseId)
	if err != nil {
		return nil, err
	}
	return &api.EnrollResp{ModifiedCount: modified}, nil
}

func missingRegisterFields(req *api.RegisterUserReq) []string {
	var fields []string
	if req.Name == "" {
		fields = append(fields, "name")
	}
	if req.Email == "" {
		fields = append(fields, "email")
	}
	if req.Password == "" {
		fields = append(fields, "password")
	}
	return fields
}
