package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hirenest/job-portal-api/internal/apperr"
	"github.com/hirenest/job-portal-api/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply creates a pending application. One application per (applicant, job)
// pair, enforced by an existence check.
func (s *ApplicationService) Apply(jobID, applicantID uint) (*models.Application, error) {
	var count int64
	err := s.DB.Model(&models.Application{}).
		Where("applicant_id = ? AND job_id = ?", applicantID, jobID).
		Count(&count).Error
	if err != nil {
		return nil, apperr.Internal("Error applying for job", err)
	}
	if count > 0 {
		return nil, apperr.Duplicate("You have already applied for this job")
	}

	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Job not found")
		}
		return nil, apperr.Internal("Error applying for job", err)
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.StatusPending,
	}
	if err := s.DB.Create(application).Error; err != nil {
		return nil, apperr.Internal("Error applying for job", err)
	}
	return application, nil
}

// ListByApplicant returns the requester's applications newest-first, each
// with its job and the job's company.
func (s *ApplicationService) ListByApplicant(applicantID uint) ([]models.Application, error) {
	applications := []models.Application{}
	err := s.DB.Preload("Job").Preload("Job.Company").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperr.Internal("Error retrieving applied jobs", err)
	}
	return applications, nil
}

// Applicants returns the job with its applications and their applicants.
func (s *ApplicationService) Applicants(jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Applications", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).
		Preload("Applications.Applicant").
		First(&job, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Job not found")
		}
		return nil, apperr.Internal("Error retrieving applicants", err)
	}
	return &job, nil
}

// UpdateStatus overwrites the status unconditionally; recognized values are
// pending/accepted/rejected but the write is not gated on them.
func (s *ApplicationService) UpdateStatus(applicationID uint, status string) (*models.Application, error) {
	var application models.Application
	if err := s.DB.First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Application not found")
		}
		return nil, apperr.Internal("Error updating application status", err)
	}

	application.Status = status
	if err := s.DB.Save(&application).Error; err != nil {
		return nil, apperr.Internal("Error updating application status", err)
	}
	return &application, nil
}
