package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"`
	Role            string             `bson:"role" json:"role"`
	EnrolledCourses []string           `bson:"enrolledCourses" json:"enrolledCourses"`
	Results         []string           `bson:"results" json:"results"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// StudentWithRefs 学生列表聚合行: 关联报名课程与成绩
type StudentWithRefs struct {
	ID              primitive.ObjectID `bson:"_id" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	EnrolledCourses []CourseRef        `bson:"enrolledCourses" json:"enrolledCourses"`
	Results         []ResultRef        `bson:"results" json:"results"`
}

type CourseRef struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Title string             `bson:"title" json:"title"`
}

type ResultRef struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Score    float64            `bson:"score" json:"score"`
	Grade    string             `bson:"grade" json:"grade"`
	CourseId primitive.ObjectID `bson:"courseId" json:"courseId"`
}
