package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/job-portal/internal/models"
)

type jobFixture struct {
	store     *memStore
	jobs      JobService
	companies CompanyService
	apps      ApplicationService
	recruiter models.User
	seeker    models.User
	company   models.Company
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()

	store := newMemStore()
	recruiter := seedUser(t, store, models.RoleRecruiter, false)
	seeker := seedUser(t, store, models.RoleUser, true)
	validator := NewInputValidator()

	return &jobFixture{
		store:     store,
		jobs:      NewJobService(store, validator, 20),
		companies: NewCompanyService(store, validator),
		apps:      NewApplicationService(store, true),
		recruiter: recruiter,
		seeker:    seeker,
		company:   seedCompany(t, store, recruiter),
	}
}

func (f *jobFixture) create(t *testing.T) *models.Job {
	t.Helper()

	job, err := f.jobs.Create(context.Background(), f.recruiter.ID, models.CreateJobRequest{
		JobRequest: validJobRequest(),
		CompanyID:  f.company.ID,
	})
	if err != nil {
		t.Fatalf("Expected job creation to succeed, got %v", err)
	}
	return job
}

func TestCreateJobAddsToCompanyOpenJobs(t *testing.T) {
	f := newJobFixture(t)
	job := f.create(t)

	if job.CreatedBy != f.recruiter.ID {
		t.Errorf("Expected creator %s, got %s", f.recruiter.ID, job.CreatedBy)
	}
	if job.Status != models.JobStatusOpen {
		t.Errorf("Expected default status Open, got %s", job.Status)
	}

	partition, err := f.companies.Jobs(context.Background(), f.company.ID)
	if err != nil {
		t.Fatalf("Expected company jobs, got %v", err)
	}
	if len(partition.OpenJobs) != 1 || partition.OpenJobs[0] != job.ID {
		t.Errorf("Expected open jobs [%s], got %v", job.ID, partition.OpenJobs)
	}
	if len(partition.ClosedJobs) != 0 {
		t.Errorf("Expected no closed jobs, got %v", partition.ClosedJobs)
	}
}

func TestCreateJobAuthorization(t *testing.T) {
	f := newJobFixture(t)
	otherRecruiter := seedUser(t, f.store, models.RoleRecruiter, false)

	tests := []struct {
		name   string
		caller uuid.UUID
		expect ErrorKind
	}{
		{"job seeker", f.seeker.ID, KindForbidden},
		{"recruiter of another company", otherRecruiter.ID, KindForbidden},
		{"unknown user", uuid.New(), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.jobs.Create(context.Background(), tt.caller, models.CreateJobRequest{
				JobRequest: validJobRequest(),
				CompanyID:  f.company.ID,
			})
			assertKind(t, err, tt.expect)
		})
	}

	if len(f.store.data.jobs) != 0 {
		t.Errorf("Expected no jobs, got %d", len(f.store.data.jobs))
	}
}

func TestCreateJobValidation(t *testing.T) {
	f := newJobFixture(t)

	tests := []struct {
		name    string
		mutate  func(r *models.JobRequest)
		message string
	}{
		{"short title", func(r *models.JobRequest) { r.Title = "Go" }, "title must be at least 3 characters"},
		{"unknown job type", func(r *models.JobRequest) { r.JobType = "Gig" }, "job_type must be one of"},
		{"non-positive salary", func(r *models.JobRequest) { r.Salary = 0 }, "salary must be greater than 0"},
		{"no skills", func(r *models.JobRequest) { r.Skills = nil }, "skills is required"},
		{"unknown status", func(r *models.JobRequest) { r.Status = "Paused" }, "status must be one of [Open, Closed, On Hold]"},
		{"past deadline", func(r *models.JobRequest) { r.Deadline = time.Now().Add(-time.Hour) }, "deadline must be in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validJobRequest()
			tt.mutate(&req)

			_, err := f.jobs.Create(context.Background(), f.recruiter.ID, models.CreateJobRequest{JobRequest: req, CompanyID: f.company.ID})
			assertKind(t, err, KindUnprocessable)
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected message containing %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestCreateJobOnHoldStatusAccepted(t *testing.T) {
	f := newJobFixture(t)

	req := validJobRequest()
	req.Status = models.JobStatusOnHold

	job, err := f.jobs.Create(context.Background(), f.recruiter.ID, models.CreateJobRequest{JobRequest: req, CompanyID: f.company.ID})
	if err != nil {
		t.Fatalf("Expected On Hold job to be created, got %v", err)
	}
	if job.Status != models.JobStatusOnHold {
		t.Errorf("Expected status On Hold, got %s", job.Status)
	}
}

func TestUpdateJob(t *testing.T) {
	f := newJobFixture(t)
	job := f.create(t)

	req := validJobRequest()
	req.Title = "Staff Go Engineer"
	req.Status = models.JobStatusClosed

	updated, err := f.jobs.Update(context.Background(), f.recruiter.ID, job.ID, req)
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}
	if updated.Title != "Staff Go Engineer" {
		t.Errorf("Expected new title, got %s", updated.Title)
	}

	partition, _ := f.companies.Jobs(context.Background(), f.company.ID)
	if len(partition.OpenJobs) != 1 {
		t.Errorf("Expected status change to leave the job in open jobs, got %v", partition.OpenJobs)
	}

	colleague := seedUser(t, f.store, models.RoleRecruiter, false)
	_, err = f.jobs.Update(context.Background(), colleague.ID, job.ID, req)
	assertKind(t, err, KindForbidden)

	req.Deadline = time.Now().Add(-time.Minute)
	_, err = f.jobs.Update(context.Background(), f.recruiter.ID, job.ID, req)
	assertKind(t, err, KindUnprocessable)
}

func TestDeleteJobSoftDeletes(t *testing.T) {
	f := newJobFixture(t)
	job := f.create(t)
	ctx := context.Background()

	colleague := seedUser(t, f.store, models.RoleRecruiter, false)
	assertKind(t, f.jobs.Delete(ctx, colleague.ID, job.ID), KindForbidden)

	if err := f.jobs.Delete(ctx, f.recruiter.ID, job.ID); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}

	assertKind(t, f.jobs.Delete(ctx, f.recruiter.ID, job.ID), KindConflict)
	assertKind(t, f.jobs.Delete(ctx, f.recruiter.ID, uuid.New()), KindNotFound)

	partition, _ := f.companies.Jobs(ctx, f.company.ID)
	if len(partition.OpenJobs) != 0 || len(partition.ClosedJobs) != 1 || partition.ClosedJobs[0] != job.ID {
		t.Errorf("Expected job moved to closed jobs, got open=%v closed=%v", partition.OpenJobs, partition.ClosedJobs)
	}

	list, err := f.jobs.List(ctx, models.JobFilter{})
	if err != nil {
		t.Fatalf("Expected list to succeed, got %v", err)
	}
	if list.Total != 0 || len(list.Jobs) != 0 {
		t.Errorf("Expected deleted job to be excluded, got %d", list.Total)
	}

	_, err = f.jobs.Get(ctx, job.ID)
	assertKind(t, err, KindNotFound)

	_, err = f.apps.Apply(ctx, ApplyInput{JobID: job.ID, ApplicantID: f.seeker.ID})
	assertKind(t, err, KindNotFound)
}

func TestListJobsPagination(t *testing.T) {
	f := newJobFixture(t)
	for i := 0; i < 3; i++ {
		f.create(t)
	}

	list, err := f.jobs.List(context.Background(), models.JobFilter{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("Expected list to succeed, got %v", err)
	}
	if list.Total != 3 {
		t.Errorf("Expected total 3, got %d", list.Total)
	}
	if len(list.Jobs) != 1 {
		t.Errorf("Expected 1 job on page 2, got %d", len(list.Jobs))
	}

	list, _ = f.jobs.List(context.Background(), models.JobFilter{Limit: 1000})
	if list.Limit != maxJobsPageLimit || list.Page != 1 {
		t.Errorf("Expected page 1 with capped limit, got page %d limit %d", list.Page, list.Limit)
	}
}

func TestSaveJob(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()

	expired := seedJob(t, f.store, f.company, f.recruiter, time.Now().Add(-time.Hour))
	if err := f.jobs.Save(ctx, f.seeker.ID, expired.ID); err != nil {
		t.Fatalf("Expected saving an expired job to succeed, got %v", err)
	}
	assertKind(t, f.jobs.Save(ctx, f.seeker.ID, expired.ID), KindConflict)

	if n := len(notificationsFor(f.store, f.recruiter.ID)); n != 0 {
		t.Errorf("Expected no notifications for a save, got %d", n)
	}

	saved, err := f.jobs.ListSaved(ctx, f.seeker.ID)
	if err != nil {
		t.Fatalf("Expected saved jobs, got %v", err)
	}
	if len(saved) != 1 || saved[0].ID != expired.ID {
		t.Errorf("Expected saved jobs [%s], got %+v", expired.ID, saved)
	}

	if err := f.jobs.Unsave(ctx, f.seeker.ID, expired.ID); err != nil {
		t.Fatalf("Expected unsave to succeed, got %v", err)
	}
	assertKind(t, f.jobs.Unsave(ctx, f.seeker.ID, expired.ID), KindNotFound)
}

func TestSaveDeletedJobIsNotFound(t *testing.T) {
	f := newJobFixture(t)
	job := f.create(t)

	if err := f.jobs.Delete(context.Background(), f.recruiter.ID, job.ID); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}

	assertKind(t, f.jobs.Save(context.Background(), f.seeker.ID, job.ID), KindNotFound)
}
