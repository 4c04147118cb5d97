package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hirenest/job-portal-api/internal/apperr"
	"github.com/hirenest/job-portal-api/internal/dtos"
	"github.com/hirenest/job-portal-api/internal/models"
	"github.com/hirenest/job-portal-api/internal/storage"
)

type CompanyService struct {
	DB       *gorm.DB
	Uploader storage.Uploader
}

func NewCompanyService(db *gorm.DB, uploader storage.Uploader) *CompanyService {
	return &CompanyService{DB: db, Uploader: uploader}
}

// Register creates a company owned by ownerID. The logo is mandatory at
// registration; updates may keep the existing one.
func (s *CompanyService) Register(req *dtos.RegisterCompanyRequest, logo storage.UploadedFile, ownerID uint) (*models.Company, error) {
	var count int64
	if err := s.DB.Model(&models.Company{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		return nil, apperr.Internal("Error registering company", err)
	}
	if count > 0 {
		return nil, apperr.Conflict("Company already exists")
	}

	logoURL, err := s.Uploader.Upload(logo)
	if err != nil {
		return nil, apperr.Internal("Error registering company", err)
	}

	company := models.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		Logo:        logoURL,
		UserID:      ownerID,
	}
	if err := s.DB.Create(&company).Error; err != nil {
		return nil, apperr.Internal("Error registering company", err)
	}
	return &company, nil
}

// ListByOwner returns the requester's companies; an empty list is fine.
func (s *CompanyService) ListByOwner(ownerID uint) ([]models.Company, error) {
	companies := []models.Company{}
	if err := s.DB.Where("user_id = ?", ownerID).Find(&companies).Error; err != nil {
		return nil, apperr.Internal("Error retrieving companies", err)
	}
	return companies, nil
}

func (s *CompanyService) Get(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.DB.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Company not found")
		}
		return nil, apperr.Internal("Error retrieving company", err)
	}
	return &company, nil
}

// Update replaces the text fields; the logo is only replaced when a new
// file was uploaded. There is intentionally no ownership check here.
func (s *CompanyService) Update(id uint, req *dtos.UpdateCompanyRequest, logo *storage.UploadedFile) (*models.Company, error) {
	var company models.Company
	if err := s.DB.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Company not found")
		}
		return nil, apperr.Internal("Error updating company", err)
	}

	company.Name = req.Name
	company.Description = req.Description
	company.Website = req.Website
	company.Location = req.Location

	if logo != nil {
		logoURL, err := s.Uploader.Upload(*logo)
		if err != nil {
			return nil, apperr.Internal("Error updating company", err)
		}
		company.Logo = logoURL
	}

	if err := s.DB.Save(&company).Error; err != nil {
		return nil, apperr.Internal("Error updating company", err)
	}
	return &company, nil
}
