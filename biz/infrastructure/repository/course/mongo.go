package course

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
	prefixCourseCacheKey = "cache:course"
	CourseCollectionName = "courses"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CourseCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, course *Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
		course.CreatedAt = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, course)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Course
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &c, nil
}

// wrapFindErr 只有真正查不到才报404, 存储故障原样上抛
func wrapFindErr(err error) error {
	if errors.Is(err, monc.ErrNotFound) {
		return consts.ErrCourseNotFound
	}
	return err
}

// FindAll 按创建时间倒序
func (m *MongoMapper) FindAll(ctx context.Context) ([]*Course, error) {
	var courses []*Course
	err := m.conn.Find(ctx, &courses, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.CreatedAt: -1},
	})
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// Update 部分更新, 显式检查MatchedCount后回读全文档
func (m *MongoMapper) Update(ctx context.Context, id string, set bson.M) (*Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, consts.ErrCourseNotFound
	}

	var c Course
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{consts.ID: oid})
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &c, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	deleted, err := m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return consts.ErrCourseNotFound
	}
	return nil
}

func (m *MongoMapper) Count(ctx context.Context) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{})
}

func (m *MongoMapper) CountByEnrollmentStatus(ctx context.Context, status string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.EnrollmentStatus: status})
}
