package controller

import (
	"context"

	"alpstech-server/biz/adaptor"
	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// DashboardStats 看板统计
func DashboardStats(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.DashboardService.Stats(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}

// RecentEnrollments 最近报名
func RecentEnrollments(ctx context.Context, c *app.RequestContext) {
	var req api.DashboardWidgetReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	resp, err := p.DashboardService.RecentEnrollments(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// LatestResults 最新成绩
func LatestResults(ctx context.Context, c *app.RequestContext) {
	var req api.DashboardWidgetReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	resp, err := p.DashboardService.LatestResults(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
