package enrollment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment 报名记录, 仅由看板与管理端视图查询
type Enrollment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserId         primitive.ObjectID `bson:"userId" json:"userId"`
	CourseId       primitive.ObjectID `bson:"courseId" json:"courseId"`
	EnrollmentDate time.Time          `bson:"enrollmentDate" json:"enrollmentDate"`
}

// RecentRow 最近报名聚合行, user/course为$lookup结果数组
type RecentRow struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	EnrollmentDate time.Time          `bson:"enrollmentDate" json:"enrollmentDate"`
	User           []UserRef          `bson:"user" json:"user"`
	Course         []CourseRef        `bson:"course" json:"course"`
}

type UserRef struct {
	Name string `bson:"name" json:"name"`
}

type CourseRef struct {
	Title string `bson:"title" json:"title"`
}

// WithRefsRow 管理端报名列表聚合行, 关联文档已被$arrayElemAt拍平
type WithRefsRow struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	EnrollmentDate time.Time          `bson:"enrollmentDate" json:"enrollmentDate"`
	Student        StudentRef         `bson:"student" json:"student"`
	Course         TitledCourseRef    `bson:"course" json:"course"`
}

type StudentRef struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

type TitledCourseRef struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Title string             `bson:"title" json:"title"`
}
