package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hirenest/job-portal-api/internal/dtos"
	"github.com/hirenest/job-portal-api/internal/models"
	"github.com/hirenest/job-portal-api/internal/storage"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Company{}, &models.Job{}, &models.Application{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// fakeUploader records uploads and hands back predictable URLs.
type fakeUploader struct {
	uploads []storage.UploadedFile
}

func (f *fakeUploader) Upload(file storage.UploadedFile) (string, error) {
	f.uploads = append(f.uploads, file)
	return "https://assets.test/" + file.Name, nil
}

func registerReq(email, role string) *dtos.RegisterRequest {
	return &dtos.RegisterRequest{
		FullName:    "Test User",
		Email:       email,
		PhoneNumber: "1234567890",
		Password:    "secret123",
		Role:        role,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	svc := NewUserService(db, &fakeUploader{})
	if err := svc.Register(registerReq(email, role), nil); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("load seeded user: %v", err)
	}
	return user
}

func seedCompany(t *testing.T, db *gorm.DB, name string, ownerID uint) models.Company {
	t.Helper()
	svc := NewCompanyService(db, &fakeUploader{})
	company, err := svc.Register(&dtos.RegisterCompanyRequest{
		Name:        name,
		Description: "We build things",
		Website:     "https://example.com",
		Location:    "Berlin",
	}, storage.UploadedFile{Name: "logo.png", ContentType: "image/png", Data: []byte("png")}, ownerID)
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return *company
}

func postJobReq(companyID uint, title string) *dtos.PostJobRequest {
	return &dtos.PostJobRequest{
		Title:           title,
		Description:     "Build and ship features",
		Requirements:    dtos.StringList{"Go", "SQL"},
		JobType:         "full-time",
		Position:        2,
		CompanyID:       companyID,
		Location:        "Berlin",
		Salary:          90000,
		ExperienceLevel: 3,
	}
}

func seedJob(t *testing.T, db *gorm.DB, companyID, creatorID uint, title string) models.Job {
	t.Helper()
	svc := NewJobService(db)
	job, err := svc.Post(postJobReq(companyID, title), creatorID)
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return *job
}
