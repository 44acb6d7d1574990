package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"alfredoptarigan/job-portal/internal/models"
)

func intPtr(v int) *int { return &v }

func seedUser(t *testing.T, store *memStore, role models.UserRole, complete bool) models.User {
	t.Helper()

	u := models.User{
		ID:    uuid.New(),
		Name:  "User " + string(role),
		Email: uuid.NewString() + "@example.com",
		Role:  role,
	}
	if complete {
		u.Resume = "/uploads/resume.pdf"
		u.ResumeName = "resume.pdf"
		u.TotalExperienceYears = intPtr(3)
		u.Skills = pq.StringArray{"go", "sql"}
		u.Location = "Jakarta"
	}
	store.data.users[u.ID] = u
	return u
}

func seedCompany(t *testing.T, store *memStore, owner models.User) models.Company {
	t.Helper()

	c := models.Company{
		ID:      uuid.New(),
		Name:    "Company " + uuid.NewString()[:8],
		Email:   uuid.NewString() + "@corp.example.com",
		OwnerID: owner.ID,
	}
	store.data.companies[c.ID] = c
	return c
}

func seedJob(t *testing.T, store *memStore, company models.Company, creator models.User, deadline time.Time) models.Job {
	t.Helper()

	j := models.Job{
		ID:        uuid.New(),
		Title:     "Backend Engineer",
		Status:    models.JobStatusOpen,
		Deadline:  deadline,
		CompanyID: company.ID,
		CreatedBy: creator.ID,
		CreatedAt: time.Now(),
	}
	store.data.jobs[j.ID] = j
	return j
}

func validJobRequest() models.JobRequest {
	return models.JobRequest{
		Title:              "Senior Go Engineer",
		Description:        "Build and operate the hiring platform services.",
		Location:           "Remote",
		Category:           "Engineering",
		JobType:            "Full-time",
		WorkMode:           "Remote",
		Salary:             120000,
		Openings:           2,
		ExperienceRequired: 4,
		Skills:             []string{"go", "postgres"},
		Deadline:           time.Now().Add(7 * 24 * time.Hour),
	}
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected %s error, got nil", want)
	}
	if got := KindOf(err); got != want {
		t.Fatalf("Expected %s error, got %s (%v)", want, got, err)
	}
}

func notificationsFor(store *memStore, userID uuid.UUID) []models.Notification {
	var out []models.Notification
	for _, n := range store.data.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
