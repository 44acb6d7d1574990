package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/repositories"
)

type ApplyInput struct {
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Source      models.ApplicationSource
}

type ListApplicationsInput struct {
	JobID    uuid.UUID
	CallerID uuid.UUID
}

type UpdateStatusInput struct {
	ApplicationID uuid.UUID
	Status        models.ApplicationStatus
	CallerID      uuid.UUID
}

type ApplicationService interface {
	Apply(ctx context.Context, in ApplyInput) (*models.Application, error)
	ListForJob(ctx context.Context, in ListApplicationsInput) ([]models.ApplicationView, error)
	UpdateStatus(ctx context.Context, in UpdateStatusInput) (*models.Application, error)
	ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.AppliedJob, error)
}

type applicationService struct {
	store                repositories.Store
	enforceListOwnership bool
	now                  func() time.Time
}

func NewApplicationService(store repositories.Store, enforceListOwnership bool) ApplicationService {
	return &applicationService{
		store:                store,
		enforceListOwnership: enforceListOwnership,
		now:                  time.Now,
	}
}

// Apply checks, in order: job exists and is active, deadline not passed,
// applicant exists, no earlier application, complete profile. The
// application insert and the recruiter notification commit together.
func (s *applicationService) Apply(ctx context.Context, in ApplyInput) (*models.Application, error) {
	source := in.Source
	if source == "" {
		source = models.SourceWebsite
	}
	if !validSource(source) {
		return nil, Unprocessable("source must be one of [Website Referral LinkedIn Other]")
	}

	var created *models.Application
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		job, err := tx.Jobs().FindActiveByID(in.JobID)
		if err != nil {
			return notFoundOr(err, "job not found", "failed to load job")
		}

		now := s.now()
		if !job.AcceptsApplicationsAt(now) {
			return Conflict("the application deadline has passed for this job")
		}

		applicant, err := tx.Users().FindByID(in.ApplicantID)
		if err != nil {
			return notFoundOr(err, "user not found", "failed to load user")
		}

		exists, err := tx.Applications().Exists(job.ID, applicant.ID)
		if err != nil {
			return Internal("failed to check existing applications", err)
		}
		if exists {
			return Conflict("you have already applied to this job")
		}

		if missing := applicant.MissingProfileFields(); len(missing) > 0 {
			return Unprocessable("please complete your profile before applying, missing: %s", strings.Join(missing, ", "))
		}

		app := &models.Application{
			ID:              uuid.New(),
			JobID:           job.ID,
			ApplicantID:     applicant.ID,
			Status:          models.ApplicationProcessing,
			Source:          source,
			ApplicationDate: now,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.Applications().Create(app); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return Conflict("you have already applied to this job")
			}
			return Internal("failed to create application", err)
		}

		recruiter, err := tx.Users().FindByID(job.CreatedBy)
		if err != nil {
			return notFoundOr(err, "job creator not found", "failed to load job creator")
		}

		message := fmt.Sprintf("%s applied for %s", applicant.Name, job.Title)
		if err := notify(tx, recruiter.ID, models.NotificationNewApplication, message, jobManagementPath(job.ID)); err != nil {
			return Internal("failed to notify recruiter", err)
		}

		created = app
		return nil
	})
	if err != nil {
		return nil, passThrough("failed to apply to job", err)
	}

	log.Info().
		Str("application_id", created.ID.String()).
		Str("job_id", created.JobID.String()).
		Str("applicant_id", created.ApplicantID.String()).
		Msg("application created")

	return created, nil
}

// ListForJob fails with NotFound when the job has no applications.
func (s *applicationService) ListForJob(ctx context.Context, in ListApplicationsInput) ([]models.ApplicationView, error) {
	store := s.store.WithContext(ctx)

	job, err := store.Jobs().FindActiveByID(in.JobID)
	if err != nil {
		return nil, notFoundOr(err, "job not found", "failed to load job")
	}

	if s.enforceListOwnership {
		if err := ensureOwner(job.CreatedBy, in.CallerID, "view applications of this job"); err != nil {
			return nil, err
		}
	}

	apps, err := store.Applications().FindByJob(job.ID)
	if err != nil {
		return nil, Internal("failed to load applications", err)
	}
	if len(apps) == 0 {
		return nil, NotFound("no applications found for this job")
	}

	views := make([]models.ApplicationView, 0, len(apps))
	for i := range apps {
		views = append(views, models.ApplicationView{
			ID:              apps[i].ID,
			JobID:           apps[i].JobID,
			Status:          apps[i].Status,
			Source:          apps[i].Source,
			ApplicationDate: apps[i].ApplicationDate,
			Applicant:       apps[i].Applicant.Summary(),
		})
	}
	return views, nil
}

// UpdateStatus moves a processing application to accepted or rejected. Both
// are terminal: repeating the current status or changing a decided
// application is a Conflict. The write is conditional on the stored status
// still being processing, so racing updates produce one notification.
func (s *applicationService) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*models.Application, error) {
	if in.Status != models.ApplicationAccepted && in.Status != models.ApplicationRejected {
		return nil, Unprocessable("status must be one of [accepted rejected]")
	}

	var updated *models.Application
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		app, err := tx.Applications().FindByID(in.ApplicationID)
		if err != nil {
			return notFoundOr(err, "application not found", "failed to load application")
		}

		job, err := tx.Jobs().FindByID(app.JobID)
		if err != nil {
			return notFoundOr(err, "job not found", "failed to load job")
		}

		if err := ensureOwner(job.CreatedBy, in.CallerID, "update this application"); err != nil {
			return err
		}

		if app.Status == in.Status {
			return Conflict("application is already %s, no update required", in.Status)
		}
		if app.Status != models.ApplicationProcessing {
			return Conflict("application has already been %s and can no longer change", app.Status)
		}

		changed, err := tx.Applications().UpdateStatusFrom(app.ID, models.ApplicationProcessing, in.Status)
		if err != nil {
			return Internal("failed to update application status", err)
		}
		if !changed {
			return Conflict("application status changed concurrently, no update applied")
		}

		message := fmt.Sprintf("Your application for %s has been %s", job.Title, in.Status)
		if err := notify(tx, app.ApplicantID, models.NotificationApplicationStatus, message, applicantProfilePath()); err != nil {
			return Internal("failed to notify applicant", err)
		}

		app.Status = in.Status
		updated = app
		return nil
	})
	if err != nil {
		return nil, passThrough("failed to update application status", err)
	}

	log.Info().
		Str("application_id", updated.ID.String()).
		Str("status", string(updated.Status)).
		Msg("application status changed")

	return updated, nil
}

func (s *applicationService) ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.AppliedJob, error) {
	apps, err := s.store.WithContext(ctx).Applications().FindByApplicant(applicantID)
	if err != nil {
		return nil, Internal("failed to load applications", err)
	}

	applied := make([]models.AppliedJob, 0, len(apps))
	for i := range apps {
		applied = append(applied, models.AppliedJob{
			ApplicationID:   apps[i].ID,
			Status:          apps[i].Status,
			ApplicationDate: apps[i].ApplicationDate,
			Job:             apps[i].Job,
		})
	}
	return applied, nil
}

func validSource(source models.ApplicationSource) bool {
	switch source {
	case models.SourceWebsite, models.SourceReferral, models.SourceLinkedIn, models.SourceOther:
		return true
	}
	return false
}

// notFoundOr maps repositories.ErrNotFound to a NotFound with msg and any
// other failure to Internal.
func notFoundOr(err error, msg, internalMsg string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return NotFound("%s", msg)
	}
	return Internal(internalMsg, err)
}
