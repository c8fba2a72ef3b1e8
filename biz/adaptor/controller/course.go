package controller

import (
	"context"

	"alpstech-server/biz/adaptor"
	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/biz/infrastructure/util"
	"alpstech-server/biz/infrastructure/util/log"
	"alpstech-server/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListCourses 课程列表
func ListCourses(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.CourseService.ListCourses(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetCourse 课程详情
func GetCourse(ctx context.Context, c *app.RequestContext) {
	var req api.GetCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	resp, err := p.CourseService.GetCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// CreateCourse 新建课程
func CreateCourse(ctx context.Context, c *app.RequestContext) {
	var req api.CreateCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	log.CtxInfo(ctx, "create course req=%s", util.JSONF(&req))
	p := provider.Get()
	resp, err := p.CourseService.CreateCourse(ctx, &req)
	adaptor.PostProcessCreated(ctx, c, resp, err)
}

// UpdateCourse 更新课程
func UpdateCourse(ctx context.Context, c *app.RequestContext) {
	var req api.UpdateCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	log.CtxInfo(ctx, "update course req=%s", util.JSONF(&req))
	p := provider.Get()
	resp, err := p.CourseService.UpdateCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DeleteCourse 删除课程
func DeleteCourse(ctx context.Context, c *app.RequestContext) {
	var req api.DeleteCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	err := p.CourseService.DeleteCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, nil, err)
}
