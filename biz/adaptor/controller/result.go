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

// ListResults 成绩列表
func ListResults(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ResultService.ListResults(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetResult 成绩详情
func GetResult(ctx context.Context, c *app.RequestContext) {
	var req api.GetResultReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	resp, err := p.ResultService.GetResult(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// CreateResult 录入成绩
func CreateResult(ctx context.Context, c *app.RequestContext) {
	var req api.CreateResultReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	log.CtxInfo(ctx, "create result req=%s", util.JSONF(&req))
	p := provider.Get()
	resp, err := p.ResultService.CreateResult(ctx, &req)
	adaptor.PostProcessCreated(ctx, c, resp, err)
}

// UpdateResult 更新成绩
func UpdateResult(ctx context.Context, c *app.RequestContext) {
	var req api.UpdateResultReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	resp, err := p.ResultService.UpdateResult(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DeleteResult 删除成绩
func DeleteResult(ctx context.Context, c *app.RequestContext) {
	var req api.DeleteResultReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	err := p.ResultService.DeleteResult(ctx, &req)
	adaptor.PostProcess(ctx, c, nil, err)
}

// SelfResults 学生查询本人成绩
func SelfResults(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.StudentService.SelfResults(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}
