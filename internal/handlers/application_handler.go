package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenest/job-portal-api/internal/apperr"
	"github.com/hirenest/job-portal-api/internal/auth"
	"github.com/hirenest/job-portal-api/internal/dtos"
	"github.com/hirenest/job-portal-api/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Apply is POST /application/apply/:id.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := idParam(c, "id")
	if !ok {
		fail(c, apperr.ValidationFailed("Job ID is required"))
		return
	}

	if _, err := h.Applications.Apply(jobID, auth.UserID(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully", "success": true})
}

// MyApplications is GET /application/get: the requester's applications
// newest-first with jobs and companies expanded.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	applications, err := h.Applications.ListByApplicant(auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Applied jobs retrieved successfully",
		"success":      true,
		"applications": applications,
	})
}

// Applicants is GET /application/applicants/:jobId.
func (h *ApplicationHandler) Applicants(c *gin.Context) {
	jobID, ok := idParam(c, "jobId")
	if !ok {
		fail(c, apperr.ValidationFailed("Job ID is required"))
		return
	}

	job, err := h.Applications.Applicants(jobID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Applicants retrieved successfully",
		"success": true,
		"job":     job,
	})
}

// UpdateStatus is PATCH /application/update-status/:applicationId.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, ok := idParam(c, "applicationId")
	if !ok {
		fail(c, apperr.ValidationFailed("Application ID and status are required"))
		return
	}

	var req dtos.UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperr.ValidationFailed("Application ID and status are required"))
		return
	}

	if _, err := h.Applications.UpdateStatus(applicationID, req.Status); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application status updated successfully", "success": true})
}
