package api

type GetCourseReq struct {
	Id string `path:"id"`
}

type CreateCourseReq struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Instructor       string  `json:"instructor"`
	Duration         string  `json:"duration"`
	Level            string  `json:"level"`
	Price            float64 `json:"price"`
	Image            string  `json:"image"`
	EnrollmentStatus string  `json:"enrollmentStatus"`
}

// UpdateCourseReq 指针字段表示是否携带, 未携带的字段不进入$set
type UpdateCourseReq struct {
	Id               string   `path:"id"`
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	Instructor       *string  `json:"instructor"`
	Duration         *string  `json:"duration"`
	Level            *string  `json:"level"`
	Price            *float64 `json:"price"`
	Image            *string  `json:"image"`
	EnrollmentStatus *string  `json:"enrollmentStatus"`
}

type DeleteCourseReq struct {
	Id string `path:"id"`
}
