package services

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/hirenest/job-portal-api/internal/dtos"
	"github.com/hirenest/job-portal-api/internal/models"
)

func TestPostJobNormalizesRequirements(t *testing.T) {
	db := setupTestDB(t)
	recruiter := seedUser(t, db, "hr@acme.com", models.RoleRecruiter)
	company := seedCompany(t, db, "Acme", recruiter.ID)

	svc := NewJobService(db)
	req := postJobReq(company.ID, "Backend Engineer")
	// comma-separated string arrives as a single element
	req.Requirements = dtos.StringList{" Go , gRPC,  Postgres "}
	job, err := svc.Post(req, recruiter.ID)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	want := []string{"Go", "gRPC", "Postgres"}
	if len(job.Requirements) != len(want) {
		t.Fatalf("expected %d requirements, got %v", len(want), job.Requirements)
	}
	for i, r := range want {
		if job.Requirements[i] != r {
			t.Fatalf("requirement %d: expected %q, got %q", i, r, job.Requirements[i])
		}
	}
	if job.CreatedByID != recruiter.ID {
		t.Fatalf("expected creator %d, got %d", recruiter.ID, job.CreatedByID)
	}
}

func TestUpdateJobOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "hr@acme.com", models.RoleRecruiter)
	stranger := seedUser(t, db, "hr@globex.com", models.RoleRecruiter)
	company := seedCompany(t, db, "Acme", owner.ID)
	job := seedJob(t, db, company.ID, owner.ID, "Backend Engineer")

	svc := NewJobService(db)
	req := postJobReq(company.ID, "Senior Backend Engineer")

	_, err := svc.Update(job.ID, req, stranger.ID)
	assertStatus(t, err, http.StatusForbidden)

	updated, err := svc.Update(job.ID, req, owner.ID)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != "Senior Backend Engineer" {
		t.Fatalf("title not replaced: %q", updated.Title)
	}
}

func TestDeleteJobOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "hr@acme.com", models.RoleRecruiter)
	stranger := seedUser(t, db, "hr@globex.com", models.RoleRecruiter)
	company := seedCompany(t, db, "Acme", owner.ID)
	job := seedJob(t, db, company.ID, owner.ID, "Backend Engineer")

	svc := NewJobService(db)
	assertStatus(t, svc.Delete(job.ID, stranger.ID), http.StatusForbidden)

	if err := svc.Delete(job.ID, owner.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	err := db.First(&models.Job{}, job.ID).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("job still present after delete: %v", err)
	}

	assertStatus(t, svc.Delete(job.ID, owner.ID), http.StatusNotFound)
}

func TestListJobsKeyword(t *testing.T) {
	db := setupTestDB(t)
	recruiter := seedUser(t, db, "hr@acme.com", models.RoleRecruiter)
	company := seedCompany(t, db, "Acme", recruiter.ID)

	svc := NewJobService(db)
	seedJob(t, db, company.ID, recruiter.ID, "Backend Engineer")
	seedJob(t, db, company.ID, recruiter.ID, "Product Designer")
	remote := postJobReq(company.ID, "Support Agent")
	remote.Location = "Engineering Hub, Remote"
	if _, err := svc.Post(remote, recruiter.ID); err != nil {
		t.Fatalf("post: %v", err)
	}

	// case-insensitive, matches title OR location
	jobs, err := svc.List("ENGINEER")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(jobs))
	}
	for _, job := range jobs {
		if job.Company.Name != "Acme" {
			t.Fatalf("company not expanded: %+v", job.Company)
		}
	}

	jobs, err = svc.List("")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("empty keyword should match all, got %d", len(jobs))
	}

	jobs, err = svc.List("blockchain")
	if err != nil {
		t.Fatalf("list none: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected no matches, got %d", len(jobs))
	}
}

func TestListJobsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	recruiter := seedUser(t, db, "hr@acme.com", models.RoleRecruiter)
	company := seedCompany(t, db, "Acme", recruiter.ID)

	older := seedJob(t, db, company.ID, recruiter.ID, "Old Role")
	newer := seedJob(t, db, company.ID, recruiter.ID, "New Role")
	if err := db.Model(&models.Job{}).Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	jobs, err := NewJobService(db).List("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 2 || jobs[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %+v", jobs)
	}
}

func TestGetJobExpandsApplications(t *testing.T) {
	db := setupTestDB(t)
	recruiter := seedUser(t, db, "hr@acme.com", models.RoleRecruiter)
	applicant := seedUser(t, db, "jane@example.com", models.RoleApplicant)
	company := seedCompany(t, db, "Acme", recruiter.ID)
	job := seedJob(t, db, company.ID, recruiter.ID, "Backend Engineer")

	if _, err := NewApplicationService(db).Apply(job.ID, applicant.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}

	got, err := NewJobService(db).Get(job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Company.Name != "Acme" {
		t.Fatalf("company not expanded: %+v", got.Company)
	}
	if len(got.Applications) != 1 {
		t.Fatalf("expected 1 application, got %d", len(got.Applications))
	}
	if got.Applications[0].Applicant.Email != "jane@example.com" {
		t.Fatalf("applicant not expanded: %+v", got.Applications[0].Applicant)
	}
}

func TestListJobsByCreator(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "hr@acme.com", models.RoleRecruiter)
	other := seedUser(t, db, "hr@globex.com", models.RoleRecruiter)
	company := seedCompany(t, db, "Acme", owner.ID)
	seedJob(t, db, company.ID, owner.ID, "Backend Engineer")
	seedJob(t, db, company.ID, other.ID, "Frontend Engineer")

	jobs, err := NewJobService(db).ListByCreator(owner.ID)
	if err != nil {
		t.Fatalf("list by creator: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Backend Engineer" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
}
