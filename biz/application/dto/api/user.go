package api

import "time"

type RegisterUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterUserResp struct {
	Id              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	EnrolledCourses []string  `json:"enrolledCourses"`
	Results         []string  `json:"results"`
	CreatedAt       time.Time `json:"createdAt"`
	Token           string    `json:"token"`
}

type GetUserReq struct {
	Email string `query:"email"`
}

type UserInfo struct {
	Id              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	EnrolledCourses []string  `json:"enrolledCourses"`
	Results         []string  `json:"results"`
	CreatedAt       time.Time `json:"createdAt"`
}

type EnrollReq struct {
	UserId   string `path:"userId"`
	CourseId string `json:"courseId"`
}

type EnrollResp struct {
	ModifiedCount int64 `json:"modifiedCount"`
}
