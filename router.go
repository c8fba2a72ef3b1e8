package main

import (
	"alpstech-server/biz/adaptor"
	handler "alpstech-server/biz/adaptor/controller"
	"alpstech-server/biz/infrastructure/config"
	"alpstech-server/biz/infrastructure/redis"

	"github.com/cloudwego/hertz/pkg/app/server"
)

const courseCacheTTL = 300

var courseCachePatterns = []string{
	"cache:/api/courses*",
	"cache:/api/admin/courses*",
}

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	c := config.GetConfig()
	rds := redis.GetRedis(c)

	r.GET("/ping", handler.Ping)

	api := r.Group("/api")
	if rds != nil {
		api.Use(adaptor.RateLimit(rds, c.RateLimit.WindowSeconds, c.RateLimit.MaxRequests))
	}
	{
		users := api.Group("/users")
		{
			users.POST("", handler.RegisterUser)
			users.GET("", handler.GetUser)
			users.PATCH("/:userId/enroll", handler.EnrollCourse)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", adaptor.CacheResponse(rds, courseCacheTTL), handler.ListCourses)
			courses.GET("/:id", adaptor.CacheResponse(rds, courseCacheTTL), handler.GetCourse)
			courses.GET("/:id/assignments", handler.ListAssignments)
		}

		api.GET("/assignments/:id/pdf", handler.GetAssignmentPDF)

		student := api.Group("/student")
		{
			student.GET("/results", handler.SelfResults)
		}

		admin := api.Group("/admin")
		{
			adminCourses := admin.Group("/courses")
			{
				adminCourses.GET("", adaptor.CacheResponse(rds, courseCacheTTL), handler.ListCourses)
				adminCourses.GET("/:id", adaptor.CacheResponse(rds, courseCacheTTL), handler.GetCourse)
				adminCourses.POST("", adaptor.ClearCache(rds, courseCachePatterns...), handler.CreateCourse)
				adminCourses.PATCH("/:id", adaptor.ClearCache(rds, courseCachePatterns...), handler.UpdateCourse)
				adminCourses.DELETE("/:id", adaptor.ClearCache(rds, courseCachePatterns...), handler.DeleteCourse)
				adminCourses.POST("/:id/assignments", handler.CreateAssignment)
			}

			adminResults := admin.Group("/results")
			{
				adminResults.GET("", handler.ListResults)
				adminResults.GET("/:id", handler.GetResult)
				adminResults.POST("", handler.CreateResult)
				adminResults.PATCH("/:id", handler.UpdateResult)
				adminResults.DELETE("/:id", handler.DeleteResult)
			}

			adminStudents := admin.Group("/students")
			{
				adminStudents.GET("", handler.ListStudents)
				adminStudents.GET("/enrollments", handler.ListEnrollments)
			}

			dashboard := admin.Group("/dashboard")
			{
				dashboard.GET("/stats", handler.DashboardStats)
				dashboard.GET("/recent-enrollments", handler.RecentEnrollments)
				dashboard.GET("/latest-results", handler.LatestResults)
			}
		}
	}
}
