package consts

// 仪表盘组件默认条数
var DashboardLimit int64 = 5

// 数据库相关
const (
	ID               = "_id"
	UserId           = "userId"
	CourseId         = "courseId"
	Email            = "email"
	Role             = "role"
	CreatedAt        = "createdAt"
	Date             = "date"
	EnrollmentDate   = "enrollmentDate"
	EnrolledCourses  = "enrolledCourses"
	EnrollmentStatus = "enrollmentStatus"
	StudentEmail     = "studentEmail"
)

// 角色
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// 课程报名状态
const (
	EnrollmentOpen       = "open"
	EnrollmentInProgress = "in progress"
	EnrollmentClosed     = "closed"
)

// 默认值
const (
	DefaultAccessExpire = 7 * 24 * 3600 // token有效期7天
	PDFContentType      = "application/pdf"
)
