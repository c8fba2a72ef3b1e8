package service

import (
	"context"

	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/biz/infrastructure/repository/course"
	"alpstech-server/biz/infrastructure/repository/enrollment"
	"alpstech-server/biz/infrastructure/repository/result"
	"alpstech-server/biz/infrastructure/repository/user"

	"github.com/google/wire"
	"github.com/spf13/cast"
	"github.com/zeromicro/go-zero/core/mr"
)

type IDashboardService interface {
	Stats(ctx context.Context) (*api.DashboardStats, error)
	RecentEnrollments(ctx context.Context, req *api.DashboardWidgetReq) ([]*enrollment.RecentRow, error)
	LatestResults(ctx context.Context, req *api.DashboardWidgetReq) ([]*result.LatestRow, error)
}

type DashboardService struct {
	CourseMapper     *course.MongoMapper
	UserMapper       *user.MongoMapper
	ResultMapper     *result.MongoMapper
	EnrollmentMapper *enrollment.MongoMapper
}

var DashboardServiceSet = wire.NewSet(
	wire.Struct(new(DashboardService), "*"),
	wire.Bind(new(IDashboardService), new(*DashboardService)),
)

// Stats 四项计数并发执行, 任一失败整体失败
func (s *DashboardService) Stats(ctx context.Context) (*api.DashboardStats, error) {
	var stats api.DashboardStats
	err := mr.Finish(
		func() error {
			n, err := s.CourseMapper.Count(ctx)
			stats.TotalCourses = n
			return err
		},
		func() error {
			n, err := s.UserMapper.CountStudents(ctx)
			stats.TotalStudents = n
			return err
		},
		func() error {
			n, err := s.ResultMapper.Count(ctx)
			stats.TotalResults = n
			return err
		},
		func() error {
			n, err := s.CourseMapper.CountByEnrollmentStatus(ctx, consts.EnrollmentOpen)
			stats.OpenEnrollments = n
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *DashboardService) RecentEnrollments(ctx context.Context, req *api.DashboardWidgetReq) ([]*enrollment.RecentRow, error) {
	return s.EnrollmentMapper.FindRecentWithRefs(ctx, widgetLimit(req.Limit))
}

func (s *DashboardService) LatestResults(ctx context.Context, req *api.DashboardWidgetReq) ([]*result.LatestRow, error) {
	return s.ResultMapper.FindLatestWithRefs(ctx, widgetLimit(req.Limit))
}

// widgetLimit 非法或缺省的limit回落到默认条数
func widgetLimit(raw string) int64 {
	if n := cast.ToInt64(raw); n > 0 {
		return n
	}
	return consts.DashboardLimit
}
