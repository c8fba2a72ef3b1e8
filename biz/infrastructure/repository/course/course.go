package course

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Course struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	Instructor       string             `bson:"instructor" json:"instructor"`
	Duration         string             `bson:"duration" json:"duration"`
	Level            string             `bson:"level" json:"level"`
	Price            float64            `bson:"price" json:"price"`
	Image            string             `bson:"image" json:"image"`
	EnrollmentStatus string             `bson:"enrollmentStatus" json:"enrollmentStatus"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}
