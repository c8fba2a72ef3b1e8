package user

import (
	"context"
	"errors"
	"time"

	"alpstech-server/biz/infrastructure/config"
	"alpstech-server/biz/infrastructure/consts"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	prefixUserCacheKey = "cache:user"
	UserCollectionName = "users"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, UserCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, user *User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
		user.CreatedAt = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, user)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var u User
	err = m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &u, nil
}

// wrapFindErr 只有真正查不到才报404, 存储故障原样上抛
func wrapFindErr(err error) error {
	if errors.Is(err, monc.ErrNotFound) {
		return consts.ErrNotFound
	}
	return err
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.Email: email,
	})
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &u, nil
}

// AddEnrolledCourse $addToSet保证集合语义, 重复报名不产生新条目
func (m *MongoMapper) AddEnrolledCourse(ctx context.Context, userId, courseId string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$addToSet": bson.M{consts.EnrolledCourses: courseId},
	})
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, consts.ErrUserNotFound
	}
	return res.ModifiedCount, nil
}

func (m *MongoMapper) CountStudents(ctx context.Context) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.Role: consts.RoleStudent})
}

// FindStudentsWithRefs 学生列表: 关联enrollments/courses/results后裁剪字段
func (m *MongoMapper) FindStudentsWithRefs(ctx context.Context) ([]*StudentWithRefs, error) {
	var rows []*StudentWithRefs
	err := m.conn.Aggregate(ctx, &rows, StudentsWithRefsPipeline())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// StudentsWithRefsPipeline match -> lookup x3 -> project($map裁剪关联文档)
func StudentsWithRefsPipeline() []bson.M {
	return []bson.M{
		{"$match": bson.M{consts.Role: consts.RoleStudent}},
		{"$lookup": bson.M{
			"from":         "enrollments",
			"localField":   consts.ID,
			"foreignField": consts.UserId,
			"as":           "enrollments",
		}},
		{"$lookup": bson.M{
			"from":         "courses",
			"localField":   "enrollments.courseId",
			"foreignField": consts.ID,
			"as":           "enrolledCourses",
		}},
		{"$lookup": bson.M{
			"from":         "results",
			"localField":   consts.ID,
			"foreignField": consts.UserId,
			"as":           "results",
		}},
		{"$project": bson.M{
			consts.ID: 1,
			"name":    1,
			"email":   1,
			"enrolledCourses": bson.M{"$map": bson.M{
				"input": "$enrolledCourses",
				"as":    "course",
				"in":    bson.M{"_id": "$$course._id", "title": "$$course.title"},
			}},
			"results": bson.M{"$map": bson.M{
				"input": "$results",
				"as":    "result",
				"in": bson.M{
					"_id":      "$$result._id",
					"score":    "$$result.score",
					"grade":    "$$result.grade",
					"courseId": "$$result.courseId",
				},
			}},
		}},
	}
}
