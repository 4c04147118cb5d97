package models

import (
	"time"
)

// User roles
const (
	RoleApplicant = "applicant"
	RoleRecruiter = "recruiter"
)

// Application statuses. updateStatus writes whatever the client sends, so
// these are the recognized values, not an enforced enum.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Profile is embedded in User, like the nested profile document it replaces.
type Profile struct {
	Bio                string   `json:"bio"`
	Skills             []string `gorm:"serializer:json" json:"skills"`
	Resume             string   `json:"resume"`
	ResumeOriginalName string   `json:"resumeOriginalName"`
	ProfilePhoto       string   `json:"profilePhoto"`
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName    string `gorm:"not null" json:"fullName"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"not null" json:"phoneNumber"`
	// bcrypt hash, never serialized
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`

	Profile Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
}

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`

	// Owning user
	UserID uint `gorm:"not null" json:"userId"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title           string   `gorm:"not null" json:"title"`
	Description     string   `gorm:"type:text" json:"description"`
	Requirements    []string `gorm:"serializer:json" json:"requirements"`
	JobType         string   `json:"jobType"`
	Position        int      `json:"position"`
	ExperienceLevel int      `json:"experienceLevel"`
	Salary          float64  `json:"salary"`
	Location        string   `json:"location"`

	CompanyID uint    `gorm:"not null" json:"companyId"`
	Company   Company `json:"company"`

	CreatedByID uint `gorm:"not null" json:"created_by"`

	// Derived from Application.JobID, filled by Preload where a read
	// wants the applicant list. Never written directly.
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID uint `gorm:"not null" json:"jobId"`
	Job   Job  `json:"job,omitzero"`

	ApplicantID uint `gorm:"not null" json:"applicantId"`
	Applicant   User `gorm:"foreignKey:ApplicantID" json:"applicant,omitzero"`

	Status string `gorm:"default:'pending'" json:"status"`
}
