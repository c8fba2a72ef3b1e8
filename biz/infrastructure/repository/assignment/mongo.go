package assignment

import (
	"context"
	"errors"
	"time"

	"alpstech-server/biz/infrastructure/config"
	"alpstech-server/biz/infrastructure/consts"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixAssignmentCacheKey = "cache:assignment"
	AssignmentCollectionName = "assignments"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, AssignmentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, assignment *Assignment) error {
	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
		assignment.CreatedAt = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, assignment)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var a Assignment
	err = m.conn.FindOneNoCache(ctx, &a, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &a, nil
}

// wrapFindErr 只有真正查不到才报404, 存储故障原样上抛
func wrapFindErr(err error) error {
	if errors.Is(err, monc.ErrNotFound) {
		return consts.ErrAssignNotFound
	}
	return err
}

// FindByCourseId 某课程的作业列表, 按创建时间倒序
func (m *MongoMapper) FindByCourseId(ctx context.Context, courseId string) ([]*Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(courseId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	assignments := make([]*Assignment, 0)
	err = m.conn.Find(ctx, &assignments, bson.M{consts.CourseId: oid}, &options.FindOptions{
		Sort: bson.M{consts.CreatedAt: -1},
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
