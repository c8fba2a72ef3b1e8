package api

// DashboardStats 看板统计
type DashboardStats struct {
	TotalCourses    int64 `json:"totalCourses"`
	TotalStudents   int64 `json:"totalStudents"`
	TotalResults    int64 `json:"totalResults"`
	OpenEnrollments int64 `json:"openEnrollments"`
}

// DashboardWidgetReq 看板组件条数, 缺省为5
type DashboardWidgetReq struct {
	Limit string `query:"limit"`
}
