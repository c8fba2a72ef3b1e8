package api

type CreateAssignmentReq struct {
	CourseId    string `path:"id"`
	Title       string `form:"title"`
	Description string `form:"description"`
}

type ListAssignmentsReq struct {
	CourseId string `path:"id"`
}

type GetAssignmentPDFReq struct {
	Id string `path:"id"`
}
