package api

type GetResultReq struct {
	Id string `path:"id"`
}

type CreateResultReq struct {
	UserId       string  `json:"userId"`
	CourseId     string  `json:"courseId"`
	StudentEmail string  `json:"studentEmail"`
	Score        float64 `json:"score"`
	MaxScore     float64 `json:"maxScore"`
	Grade        string  `json:"grade"`
	Date         string  `json:"date"` // RFC3339, 缺省为当前时间
}

// UpdateResultReq 指针字段表示是否携带, 未携带的字段不进入$set
type UpdateResultReq struct {
	Id           string   `path:"id"`
	StudentEmail *string  `json:"studentEmail"`
	Score        *float64 `json:"score"`
	MaxScore     *float64 `json:"maxScore"`
	Grade        *string  `json:"grade"`
	Date         *string  `json:"date"`
}

type DeleteResultReq struct {
	Id string `path:"id"`
}
