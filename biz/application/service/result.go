package service

import (
	"context"
	"errors"
	"time"

	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/biz/infrastructure/repository/result"
	"alpstech-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IResultService interface {
	ListResults(ctx context.Context) ([]*result.Result, error)
	GetResult(ctx context.Context, req *api.GetResultReq) (*result.Result, error)
	CreateResult(ctx context.Context, req *api.CreateResultReq) (*result.Result, error)
	UpdateResult(ctx context.Context, req *api.UpdateResultReq) (*result.Result, error)
	DeleteResult(ctx context.Context, req *api.DeleteResultReq) error
}

type ResultService struct {
	ResultMapper *result.MongoMapper
}

var ResultServiceSet = wire.NewSet(
	wire.Struct(new(ResultService), "*"),
	wire.Bind(new(IResultService), new(*ResultService)),
)

func (s *ResultService) ListResults(ctx context.Context) ([]*result.Result, error) {
	return s.ResultMapper.FindAll(ctx)
}

func (s *ResultService) GetResult(ctx context.Context, req *api.GetResultReq) (*result.Result, error) {
	return s.ResultMapper.FindOne(ctx, req.Id)
}

// CreateResult 录入成绩, userId/courseId必须是合法的ObjectId
func (s *ResultService) CreateResult(ctx context.Context, req *api.CreateResultReq) (*result.Result, error) {
	if fields := missingResultFields(req); len(fields) > 0 {
		return nil, consts.NewMissingFieldsError(fields...)
	}

	userId, err := primitive.ObjectIDFromHex(req.UserId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	courseId, err := primitive.ObjectIDFromHex(req.CourseId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}

	r := &result.Result{
		UserId:       userId,
		CourseId:     courseId,
		StudentEmail: req.StudentEmail,
		Score:        req.Score,
		MaxScore:     req.MaxScore,
		Grade:        req.Grade,
	}
	if req.Date != "" {
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return nil, consts.NewErrnoInvalidArgument(errors.New("date must be RFC3339"))
		}
		r.Date = date
	}
	if err := s.ResultMapper.Insert(ctx, r); err != nil {
		log.CtxError(ctx, "insert result fail, err=%v", err)
		return nil, err
	}
	return r, nil
}

func (s *ResultService) UpdateResult(ctx context.Context, req *api.UpdateResultReq) (*result.Result, error) {
	set, err := buildResultUpdate(req)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, consts.NewErrnoInvalidArgument(errors.New("no fields to update"))
	}
	return s.ResultMapper.Update(ctx, req.Id, set)
}

func (s *ResultService) DeleteResult(ctx context.Context, req *api.DeleteResultReq) error {
	return s.ResultMapper.Delete(ctx, req.Id)
}

func missingResultFields(req *api.CreateResultReq) []string {
	var fields []string
	if req.UserId == "" {
		fields = append(fields, "userId")
	}
	if req.CourseId == "" {
		fields = append(fields, "courseId")
	}
	if req.StudentEmail == "" {
		fields = append(fields, "studentEmail")
	}
	return fields
}

func buildResultUpdate(req *api.UpdateResultReq) (bson.M, error) {
	set := bson.M{}
	if req.StudentEmail != nil {
		set[consts.StudentEmail] = *req.StudentEmail
	}
	if req.Score != nil {
		set["score"] = *req.Score
	}
	if req.MaxScore != nil {
		set["maxScore"] = *req.MaxScore
	}
	if req.Grade != nil {
		set["grade"] = *req.Grade
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return nil, consts.NewErrnoInvalidArgument(errors.New("date must be RFC3339"))
		}
		set[consts.Date] = date
	}
	return set, nil
}
