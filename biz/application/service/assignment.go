package service

import (
	"context"
	"mime/multipart"

	"alpstech-server/biz/application/dto/api"
	"alpstech-server/biz/infrastructure/consts"
	"alpstech-server/biz/infrastructure/repository/assignment"
	"alpstech-server/biz/infrastructure/storage"
	"alpstech-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IAssignmentService interface {
	CreateAssignment(ctx context.Context, req *api.CreateAssignmentReq, file *multipart.FileHeader) (*assignment.Assignment, error)
	ListAssignments(ctx context.Context, req *api.ListAssignmentsReq) ([]*assignment.Assignment, error)
	AssignmentPDFPath(ctx context.Context, req *api.GetAssignmentPDFReq) (string, error)
}

type AssignmentService struct {
	AssignmentMapper *assignment.MongoMapper
	Storage          *storage.LocalStorage
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

// CreateAssignment 上传PDF并落库, 只存文件名不存路径
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *api.CreateAssignmentReq, file *multipart.FileHeader) (*assignment.Assignment, error) {
	courseId, err := primitive.ObjectIDFromHex(req.CourseId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}

	name, err := s.Storage.SavePDF(file)
	if err != nil {
		return nil, err
	}

	a := &assignment.Assignment{
		CourseId:    courseId,
		Title:       req.Title,
		Description: req.Description,
		PdfPath:     name,
	}
	if err := s.AssignmentMapper.Insert(ctx, a); err != nil {
		log.CtxError(ctx, "insert assignment fail, course=%s err=%v", req.CourseId, err)
		return nil, err
	}
	return a, nil
}

func (s *AssignmentService) ListAssignments(ctx context.Context, req *api.ListAssignmentsReq) ([]*assignment.Assignment, error) {
	return s.AssignmentMapper.FindByCourseId(ctx, req.CourseId)
}

// AssignmentPDFPath 返回磁盘路径, 文件缺失时视作不存在
func (s *AssignmentService) AssignmentPDFPath(ctx context.Context, req *api.GetAssignmentPDFReq) (string, error) {
	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return "", err
	}
	return s.Storage.Path(a.PdfPath)
}
