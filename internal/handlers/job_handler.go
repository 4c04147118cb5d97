package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenest/job-portal-api/internal/apperr"
	"github.com/hirenest/job-portal-api/internal/auth"
	"github.com/hirenest/job-portal-api/internal/dtos"
	"github.com/hirenest/job-portal-api/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// Post is POST /job/post.
func (h *JobHandler) Post(c *gin.Context) {
	var req dtos.PostJobRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperr.ValidationFailed("All fields are required"))
		return
	}

	job, err := h.Jobs.Post(&req, auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully",
		"success": true,
		"job":     job,
	})
}

// Update is PATCH /job/update/:id; owner-only, full replace.
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		fail(c, apperr.ValidationFailed("Job ID is required"))
		return
	}

	var req dtos.PostJobRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperr.ValidationFailed("All fields are required"))
		return
	}

	job, err := h.Jobs.Update(id, &req, auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated successfully",
		"success": true,
		"job":     job,
	})
}

// Delete is DELETE /job/delete/:id; owner-only.
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		fail(c, apperr.ValidationFailed("Job ID is required"))
		return
	}

	if err := h.Jobs.Delete(id, auth.UserID(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully", "success": true})
}

// List is GET /job/get?keyword=; the empty keyword matches all jobs.
func (h *JobHandler) List(c *gin.Context) {
	keyword := c.DefaultQuery("keyword", "")

	jobs, err := h.Jobs.List(keyword)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Jobs retrieved successfully",
		"success": true,
		"jobs":    jobs,
	})
}

// Get is GET /job/get/:id with company and applications expanded.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		fail(c, apperr.ValidationFailed("Job ID is required"))
		return
	}

	job, err := h.Jobs.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job retrieved successfully",
		"success": true,
		"job":     job,
	})
}

// AdminJobs is GET /job/get-admin-jobs: jobs posted by the requester.
func (h *JobHandler) AdminJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListByCreator(auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Jobs retrieved successfully",
		"success": true,
		"jobs":    jobs,
	})
}
