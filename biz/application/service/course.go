package service

import (
	"context"
	"errors"

	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/biz/infrastructure/repository/course"
	"alpstech-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
)

type ICourseService interface {
	ListCourses(ctx context.Context) ([]*course.Course, error)
	GetCourse(ctx context.Context, req *api.GetCourseReq) (*course.Course, error)
	CreateCourse(ctx context.Context, req *api.CreateCourseReq) (*course.Course, error)
	UpdateCourse(ctx context.Context, req *api.UpdateCourseReq) (*course.Course, error)
	DeleteCourse(ctx context.Context, req *api.DeleteCourseReq) error
}

type CourseService struct {
	CourseMapper *course.MongoMapper
}

var CourseServiceSet = wire.NewSet(
	wire.Struct(new(CourseService), "*"),
	wire.Bind(new(ICourseService), new(*CourseService)),
)

func (s *CourseService) ListCourses(ctx context.Context) ([]*course.Course, error) {
	courses, err := s.CourseMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "list courses fail, err=%v", err)
		return nil, err
	}
	if courses == nil {
		courses = make([]*course.Course, 0)
	}
	return courses, nil
}

func (s *CourseService) GetCourse(ctx context.Context, req *api.GetCourseReq) (*course.Course, error) {
	return s.CourseMapper.FindOne(ctx, req.Id)
}

func (s *CourseService) CreateCourse(ctx context.Context, req *api.CreateCourseReq) (*course.Course, error) {
	if req.Title == "" {
		return nil, consts.NewMissingFieldsError("title")
	}

	c := new(course.Course)
	if err := copier.Copy(c, req); err != nil {
		return nil, err
	}
	if err := s.CourseMapper.Insert(ctx, c); err != nil {
		log.CtxError(ctx, "insert course fail, err=%v", err)
		return nil, err
	}
	return c, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, req *api.UpdateCourseReq) (*course.Course, error) {
	set := buildCourseUpdate(req)
	if len(set) == 0 {
		return nil, consts.NewErrnoInvalidArgument(errors.New("no fields to update"))
	}
	return s.CourseMapper.Update(ctx, req.Id, set)
}

func (s *CourseService) DeleteCourse(ctx context.Context, req *api.DeleteCourseReq) error {
	return s.CourseMapper.Delete(ctx, req.Id)
}

// buildCourseUpdate 只携带传入的字段, createdAt永不进入$set
func buildCourseUpdate(req *api.UpdateCourseReq) bson.M {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Instructor != nil {
		set["instructor"] = *req.Instructor
	}
	if req.Duration != nil {
		set["duration"] = *req.Duration
	}
	if req.Level != nil {
		set["level"] = *req.Level
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Image != nil {
		set["image"] = *req.Image
	}
	if req.EnrollmentStatus != nil {
		set[consts.EnrollmentStatus] = *req.EnrollmentStatus
	}
	return set
}
