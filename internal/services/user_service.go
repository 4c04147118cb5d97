package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hirenest/job-portal-api/internal/apperr"
	"github.com/hirenest/job-portal-api/internal/dtos"
	"github.com/hirenest/job-portal-api/internal/models"
	"github.com/hirenest/job-portal-api/internal/storage"
)

type UserService struct {
	DB       *gorm.DB
	Uploader storage.Uploader
}

func NewUserService(db *gorm.DB, uploader storage.Uploader) *UserService {
	return &UserService{DB: db, Uploader: uploader}
}

// Register creates the account. No session is issued here; the client logs
// in afterwards.
func (s *UserService) Register(req *dtos.RegisterRequest, photo *storage.UploadedFile) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return apperr.Internal("Error registering user", err)
	}
	if count > 0 {
		return apperr.Conflict("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal("Error registering user", err)
	}

	user := models.User{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    string(hash),
		Role:        req.Role,
	}

	if photo != nil {
		url, err := s.Uploader.Upload(*photo)
		if err != nil {
			return apperr.Internal("Error registering user", err)
		}
		user.Profile.ProfilePhoto = url
	}

	if err := s.DB.Create(&user).Error; err != nil {
		return apperr.Internal("Error registering user", err)
	}
	return nil
}

// Login verifies credentials and the requested role. The not-found and
// bad-password messages are identical on purpose.
func (s *UserService) Login(email, password, role string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Incorrect email or password")
		}
		return nil, apperr.Internal("Error logging in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Incorrect email or password")
	}

	if user.Role != role {
		return nil, apperr.Unauthorized("Role mismatch")
	}
	return &user, nil
}

// UpdateProfile applies only the fields that were sent.
func (s *UserService) UpdateProfile(userID uint, req *dtos.UpdateProfileRequest, resume, photo *storage.UploadedFile) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Error updating profile", err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Bio != nil {
		user.Profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		skills := []string{}
		for _, skill := range strings.Split(*req.Skills, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				skills = append(skills, skill)
			}
		}
		user.Profile.Skills = skills
	}

	if resume != nil {
		url, err := s.Uploader.Upload(*resume)
		if err != nil {
			return nil, apperr.Internal("Error updating profile", err)
		}
		user.Profile.Resume = url
		user.Profile.ResumeOriginalName = resume.Name
	}
	if photo != nil {
		url, err := s.Uploader.Upload(*photo)
		if err != nil {
			return nil, apperr.Internal("Error updating profile", err)
		}
		user.Profile.ProfilePhoto = url
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return nil, apperr.Internal("Error updating profile", err)
	}
	return &user, nil
}
