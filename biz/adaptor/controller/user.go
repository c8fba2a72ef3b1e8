package controller

import (
	"context"

	"alpstech-server/biz/adaptor"
	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// RegisterUser 注册用户
func RegisterUser(ctx context.Context, c *app.RequestContext) {
	var req api.RegisterUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	resp, err := p.UserService.Register(ctx, &req)
	adaptor.PostProcessCreated(ctx, c, resp, err)
}

// GetUser 按邮箱查询用户
func GetUser(ctx context.Context, c *app.RequestContext) {
	var req api.GetUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	resp, err := p.UserService.GetUserByEmail(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// EnrollCourse 报名课程
func EnrollCourse(ctx context.Context, c *app.RequestContext) {
	var req api.EnrollReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	resp, err := p.UserService.Enroll(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
