package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hirenest/job-portal-api/internal/apperr"
	"github.com/hirenest/job-portal-api/internal/dtos"
	"github.com/hirenest/job-portal-api/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Post creates a job with creatorID as owner. Requirements arrive as a
// list or a comma-separated string and are normalized either way.
func (s *JobService) Post(req *dtos.PostJobRequest, creatorID uint) (*models.Job, error) {
	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements.Normalized(),
		JobType:         req.JobType,
		Position:        req.Position,
		ExperienceLevel: req.ExperienceLevel,
		Salary:          req.Salary,
		Location:        req.Location,
		CompanyID:       req.CompanyID,
		CreatedByID:     creatorID,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, apperr.Internal("Error posting job", err)
	}
	return job, nil
}

// Update replaces every mutable field. Only the creator may update.
func (s *JobService) Update(id uint, req *dtos.PostJobRequest, requesterID uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Job not found")
		}
		return nil, apperr.Internal("Error updating job", err)
	}
	if job.CreatedByID != requesterID {
		return nil, apperr.Forbidden("You are not allowed to update this job")
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Requirements = req.Requirements.Normalized()
	job.JobType = req.JobType
	job.Position = req.Position
	job.ExperienceLevel = req.ExperienceLevel
	job.Salary = req.Salary
	job.Location = req.Location
	job.CompanyID = req.CompanyID

	if err := s.DB.Save(&job).Error; err != nil {
		return nil, apperr.Internal("Error updating job", err)
	}
	return &job, nil
}

// Delete permanently removes the job. Only the creator may delete.
func (s *JobService) Delete(id, requesterID uint) error {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Job not found")
		}
		return apperr.Internal("Error deleting job", err)
	}
	if job.CreatedByID != requesterID {
		return apperr.Forbidden("You are not allowed to delete this job")
	}
	if err := s.DB.Delete(&job).Error; err != nil {
		return apperr.Internal("Error deleting job", err)
	}
	return nil
}

// List matches the keyword case-insensitively against title, description
// or location; the empty keyword matches everything.
func (s *JobService) List(keyword string) ([]models.Job, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	jobs := []models.Job{}
	err := s.DB.Preload("Company").
		Where("lower(title) LIKE ? OR lower(description) LIKE ? OR lower(location) LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Internal("Error retrieving jobs", err)
	}
	return jobs, nil
}

// Get expands the company and the applications with their applicants.
func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Company").
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Applications.Applicant").
		First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Job not found")
		}
		return nil, apperr.Internal("Error retrieving job", err)
	}
	return &job, nil
}

// ListByCreator returns the jobs posted by the requester.
func (s *JobService) ListByCreator(creatorID uint) ([]models.Job, error) {
	jobs := []models.Job{}
	err := s.DB.Preload("Company").
		Where("created_by_id = ?", creatorID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Internal("Error retrieving jobs", err)
	}
	return jobs, nil
}
