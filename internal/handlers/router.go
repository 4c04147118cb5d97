package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hirenest/job-portal-api/internal/auth"
)

// RegisterRoutes mounts the API route table. Paths mirror the resources:
// /api/v1/{user,company,job,application}.
func RegisterRoutes(r *gin.Engine, secret string, users *UserHandler, companies *CompanyHandler, jobs *JobHandler, applications *ApplicationHandler) {
	authRequired := auth.RequireAuth(secret)

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		user := api.Group("/user")
		{
			user.POST("/register", users.Register)
			user.POST("/login", users.Login)
			user.GET("/logout", users.Logout)
			user.PATCH("/profile/update", authRequired, users.UpdateProfile)
		}

		company := api.Group("/company", authRequired)
		{
			company.POST("/register", companies.Register)
			company.GET("/get", companies.List)
			company.GET("/get/:id", companies.Get)
			company.PATCH("/update/:id", companies.Update)
		}

		job := api.Group("/job", authRequired)
		{
			job.POST("/post", jobs.Post)
			job.GET("/get", jobs.List)
			job.GET("/get/:id", jobs.Get)
			job.GET("/get-admin-jobs", jobs.AdminJobs)
			job.PATCH("/update/:id", jobs.Update)
			job.DELETE("/delete/:id", jobs.Delete)
		}

		application := api.Group("/application", authRequired)
		{
			application.POST("/apply/:id", applications.Apply)
			application.GET("/get", applications.MyApplications)
			application.GET("/applicants/:jobId", applications.Applicants)
			application.PATCH("/update-status/:applicationId", applications.UpdateStatus)
		}
	}
}
