package controller

import (
	"context"

	"alpstech-server/biz/adaptor"
	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/provider"

	"github.com/cloudwego/hertz/pkg/app"
	hertzconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateAssignment 上传作业PDF
func CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req api.CreateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	file, err := c.FormFile("pdf")
	if err != nil {
		adaptor.Fail(ctx, c, consts.ErrPDFRequired)
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.CreateAssignment(ctx, &req, file)
	adaptor.PostProcessCreated(ctx, c, resp, err)
}

// ListAssignments 课程作业列表
func ListAssignments(ctx context.Context, c *app.RequestContext) {
	var req api.ListAssignmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.ListAssignments(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetAssignmentPDF 返回PDF原文件
func GetAssignmentPDF(ctx context.Context, c *app.RequestContext) {
	var req api.GetAssignmentPDFReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.NewErrnoInvalidArgument(err))
		return
	}
	p := provider.Get()
	path, err := p.AssignmentService.AssignmentPDFPath(ctx, &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	c.Response.Header.Set("Content-Type", consts.PDFContentType)
	c.SetStatusCode(hertzconsts.StatusOK)
	c.File(path)
}
