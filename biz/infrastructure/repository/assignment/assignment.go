package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CourseId    primitive.ObjectID `bson:"courseId" json:"courseId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	PdfPath     string             `bson:"pdfPath" json:"pdfPath"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
