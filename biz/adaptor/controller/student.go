package controller

import (
	"context"

	"alpstech-server/biz/adaptor"
	"alpstech-server/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListStudents 学生列表
func ListStudents(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.StudentService.ListStudents(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListEnrollments 报名列表
func ListEnrollments(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.StudentService.ListEnrollments(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}
