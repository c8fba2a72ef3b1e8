package enrollment

import (
	"context"

	"alpstech-server/biz/infrastructure/config"
	"alpstech-server/biz/infrastructure/consts"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	prefixEnrollmentCacheKey = "cache:enrollment"
	EnrollmentCollectionName = "enrollments"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, EnrollmentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

// FindRecentWithRefs 最近报名: sort -> limit -> lookup -> project
func (m *MongoMapper) FindRecentWithRefs(ctx context.Context, limit int64) ([]*RecentRow, error) {
	var rows []*RecentRow
	err := m.conn.Aggregate(ctx, &rows, RecentWithRefsPipeline(limit))
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindAllWithRefs 管理端报名列表, 拍平学生与课程引用
func (m *MongoMapper) FindAllWithRefs(ctx context.Context) ([]*WithRefsRow, error) {
	var rows []*WithRefsRow
	err := m.conn.Aggregate(ctx, &rows, AllWithRefsPipeline())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func RecentWithRefsPipeline(limit int64) []bson.M {
	return []bson.M{
		{"$sort": bson.M{consts.EnrollmentDate: -1}},
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
			consts.ID:             1,
			consts.EnrollmentDate: 1,
			"user.name":           1,
			"course.title":        1,
		}},
	}
}

func AllWithRefsPipeline() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   consts.UserId,
			"foreignField": consts.ID,
			"as":           "student",
		}},
		{"$lookup": bson.M{
			"from":         "courses",
			"localField":   consts.CourseId,
			"foreignField": consts.ID,
			"as":           "course",
		}},
		{"$project": bson.M{
			consts.ID:             1,
			consts.EnrollmentDate: 1,
			"student":             bson.M{"$arrayElemAt": bson.A{"$student", 0}},
			"course":              bson.M{"$arrayElemAt": bson.A{"$course", 0}},
		}},
		{"$project": bson.M{
			consts.ID:             1,
			consts.EnrollmentDate: 1,
			"student.name":        1,
			"student._id":         1,
			"course.title":        1,
			"course._id":          1,
		}},
	}
}
