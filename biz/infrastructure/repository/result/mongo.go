package result

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
	prefixResultCacheKey = "cache:result"
	ResultCollectionName = "results"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ResultCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, result *Result) error {
	if result.ID.IsZero() {
		result.ID = primitive.NewObjectID()
		result.CreatedAt = time.Now()
	}
	if result.Date.IsZero() {
		result.Date = result.CreatedAt
	}
	_, err := m.conn.InsertOneNoCache(ctx, result)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Result, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var r Result
	err = m.conn.FindOneNoCache(ctx, &r, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &r, nil
}

// wrapFindErr 只有真正查不到才报404, 存储故障原样上抛
func wrapFindErr(err error) error {
	if errors.Is(err, monc.ErrNotFound) {
		return consts.ErrResultNotFound
	}
	return err
}

// FindAll 按成绩日期倒序
func (m *MongoMapper) FindAll(ctx context.Context) ([]*Result, error) {
	var results []*Result
	err := m.conn.Find(ctx, &results, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.Date: -1},
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// FindByStudentEmail 学生本人成绩, 无记录时返回空切片
func (m *MongoMapper) FindByStudentEmail(ctx context.Context, email string) ([]*Result, error) {
	results := make([]*Result, 0)
	err := m.conn.Find(ctx, &results, bson.M{consts.StudentEmail: email}, &options.FindOptions{
		Sort: bson.M{consts.Date: -1},
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Update 部分更新, 显式检查MatchedCount后回读全文档
func (m *MongoMapper) Update(ctx context.Context, id string, set bson.M) (*Result, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, consts.ErrResultNotFound
	}

	var r Result
	err = m.conn.FindOneNoCache(ctx, &r, bson.M{consts.ID: oid})
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &r, nil
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
		return consts.ErrResultNotFound
	}
	return nil
}

func (m *MongoMapper) Count(ctx context.Context) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{})
}

// FindLatestWithRefs 最新成绩: sort -> limit -> lookup -> project
func (m *MongoMapper) FindLatestWithRefs(ctx context.Context, limit int64) ([]*LatestRow, error) {
	var rows []*LatestRow
	err := m.conn.Aggregate(ctx, &rows, LatestWithRefsPipeline(limit))
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func LatestWithRefsPipeline(limit int64) []bson.M {
	return []bson.M{
		{"$sort": bson.M{consts.Date: -1}},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   consts.UserId,
			"foreignField": consts.ID,
			"as":           "user",
		}},
		{"$lookup": bson.M{
			"from":         "courses",
			"localField":   consts.CourseId,
			"foreignField": consts.ID,
			"as":           "course",
		}},
		{"$project": bson.M{
			consts.ID:      1,
			"score":        1,
			"maxScore":     1,
			"grade":        1,
			consts.Date:    1,
			"user.name":    1,
			"course.title": 1,
		}},
	}
}
