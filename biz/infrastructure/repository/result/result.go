package result

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Result struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserId       primitive.ObjectID `bson:"userId" json:"userId"`
	CourseId     primitive.ObjectID `bson:"courseId" json:"courseId"`
	StudentEmail string             `bson:"studentEmail" json:"studentEmail"`
	Score        float64            `bson:"score" json:"score"`
	MaxScore     float64            `bson:"maxScore" json:"maxScore"`
	Grade        string             `bson:"grade" json:"grade"`
	Date         time.Time          `bson:"date" json:"date"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// LatestRow 最新成绩聚合行, user/course为$lookup结果数组
type LatestRow struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Score    float64            `bson:"score" json:"score"`
	MaxScore float64            `bson:"maxScore" json:"maxScore"`
	Grade    string             `bson:"grade" json:"grade"`
	Date     time.Time          `bson:"date" json:"date"`
	User     []UserRef          `bson:"user" json:"user"`
	Course   []CourseRef        `bson:"course" json:"course"`
}

type UserRef struct {
	Name string `bson:"name" json:"name"`
}

type CourseRef struct {
	Title string `bson:"title" json:"title"`
}
