package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/repositories"
)

const (
	defaultJobsPageLimit = 20
	maxJobsPageLimit     = 100
)

type JobService interface {
	Create(ctx context.Context, callerID uuid.UUID, req models.CreateJobRequest) (*models.Job, error)
	Update(ctx context.Context, callerID, jobID uuid.UUID, req models.JobRequest) (*models.Job, error)
	Delete(ctx context.Context, callerID, jobID uuid.UUID) error
	Get(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
	List(ctx context.Context, filter models.JobFilter) (*models.JobListResponse, error)
	Save(ctx context.Context, userID, jobID uuid.UUID) error
	Unsave(ctx context.Context, userID, jobID uuid.UUID) error
	ListSaved(ctx context.Context, userID uuid.UUID) ([]models.Job, error)
}

type jobService struct {
	store     repositories.Store
	validator InputValidator
	pageLimit int
	now       func() time.Time
}

func NewJobService(store repositories.Store, validator InputValidator, pageLimit int) JobService {
	if pageLimit <= 0 || pageLimit > maxJobsPageLimit {
		pageLimit = defaultJobsPageLimit
	}
	return &jobService{
		store:     store,
		validator: validator,
		pageLimit: pageLimit,
		now:       time.Now,
	}
}

func (s *jobService) Create(ctx context.Context, callerID uuid.UUID, req models.CreateJobRequest) (*models.Job, error) {
	if err := s.validateJob(req.JobRequest); err != nil {
		return nil, err
	}
	if req.CompanyID == uuid.Nil {
		return nil, Unprocessable("company_id is required")
	}

	var created *models.Job
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		caller, err := tx.Users().FindByID(callerID)
		if err != nil {
			return notFoundOr(err, "user not found", "failed to load user")
		}
		if !caller.IsRecruiter() {
			return Forbidden("only recruiters can post jobs")
		}

		company, err := tx.Companies().FindByID(req.CompanyID)
		if err != nil {
			return notFoundOr(err, "company not found", "failed to load company")
		}
		if err := ensureOwner(company.OwnerID, callerID, "post jobs for this company"); err != nil {
			return err
		}

		now := s.now()
		job := &models.Job{
			ID:        uuid.New(),
			CompanyID: company.ID,
			CreatedBy: callerID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		applyJobRequest(job, req.JobRequest)

		if err := tx.Jobs().Create(job); err != nil {
			return Internal("failed to create job", err)
		}
		created = job
		return nil
	})
	if err != nil {
		return nil, passThrough("failed to create job", err)
	}

	log.Info().
		Str("job_id", created.ID.String()).
		Str("company_id", created.CompanyID.String()).
		Msg("job created")

	return created, nil
}

// Update replaces the job fields. Open/closed classification is left alone.
func (s *jobService) Update(ctx context.Context, callerID, jobID uuid.UUID, req models.JobRequest) (*models.Job, error) {
	if err := s.validateJob(req); err != nil {
		return nil, err
	}

	store := s.store.WithContext(ctx)

	job, err := store.Jobs().FindActiveByID(jobID)
	if err != nil {
		return nil, notFoundOr(err, "job not found", "failed to load job")
	}
	if err := ensureOwner(job.CreatedBy, callerID, "update this job"); err != nil {
		return nil, err
	}

	applyJobRequest(job, req)
	if err := store.Jobs().Update(job); err != nil {
		return nil, notFoundOr(err, "job not found", "failed to update job")
	}
	job.UpdatedAt = s.now()

	log.Info().Str("job_id", job.ID.String()).Msg("job updated")
	return job, nil
}

// Delete soft-deletes the job, which moves it from the company's open jobs
// to its closed jobs.
func (s *jobService) Delete(ctx context.Context, callerID, jobID uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		job, err := tx.Jobs().FindByID(jobID)
		if err != nil {
			return notFoundOr(err, "job not found", "failed to load job")
		}
		if err := ensureOwner(job.CreatedBy, callerID, "delete this job"); err != nil {
			return err
		}
		if job.IsDeleted {
			return Conflict("job is already deleted")
		}

		if err := tx.Jobs().SoftDelete(job.ID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return Conflict("job is already deleted")
			}
			return Internal("failed to delete job", err)
		}
		return nil
	})
	if err != nil {
		return passThrough("failed to delete job", err)
	}

	log.Info().Str("job_id", jobID.String()).Msg("job deleted")
	return nil
}

func (s *jobService) Get(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	job, err := s.store.WithContext(ctx).Jobs().FindActiveByID(jobID)
	if err != nil {
		return nil, notFoundOr(err, "job not found", "failed to load job")
	}
	return job, nil
}

func (s *jobService) List(ctx context.Context, filter models.JobFilter) (*models.JobListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = s.pageLimit
	}
	if filter.Limit > maxJobsPageLimit {
		filter.Limit = maxJobsPageLimit
	}

	jobs, total, err := s.store.WithContext(ctx).Jobs().FindActive(filter)
	if err != nil {
		return nil, Internal("failed to list jobs", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	return &models.JobListResponse{
		Jobs:  jobs,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Save bookmarks an active job. Deadlines are not checked.
func (s *jobService) Save(ctx context.Context, userID, jobID uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if _, err := tx.Users().FindByID(userID); err != nil {
			return notFoundOr(err, "user not found", "failed to load user")
		}
		if _, err := tx.Jobs().FindActiveByID(jobID); err != nil {
			return notFoundOr(err, "job not found", "failed to load job")
		}

		exists, err := tx.SavedJobs().Exists(userID, jobID)
		if err != nil {
			return Internal("failed to check saved jobs", err)
		}
		if exists {
			return Conflict("job is already saved")
		}

		saved := &models.SavedJob{UserID: userID, JobID: jobID, CreatedAt: s.now()}
		if err := tx.SavedJobs().Create(saved); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return Conflict("job is already saved")
			}
			return Internal("failed to save job", err)
		}
		return nil
	})
	return passThroughNil("failed to save job", err)
}

func (s *jobService) Unsave(ctx context.Context, userID, jobID uuid.UUID) error {
	if err := s.store.WithContext(ctx).SavedJobs().Delete(userID, jobID); err != nil {
		return notFoundOr(err, "saved job not found", "failed to remove saved job")
	}
	return nil
}

// ListSaved returns the active saved jobs, most recently saved first.
func (s *jobService) ListSaved(ctx context.Context, userID uuid.UUID) ([]models.Job, error) {
	store := s.store.WithContext(ctx)

	ids, err := store.SavedJobs().FindJobIDsByUser(userID)
	if err != nil {
		return nil, Internal("failed to load saved jobs", err)
	}

	jobs, err := store.Jobs().FindActiveByIDs(ids)
	if err != nil {
		return nil, Internal("failed to load saved jobs", err)
	}

	byID := make(map[uuid.UUID]models.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	ordered := make([]models.Job, 0, len(jobs))
	for _, id := range ids {
		if j, ok := byID[id]; ok {
			ordered = append(ordered, j)
		}
	}
	return ordered, nil
}

func (s *jobService) validateJob(req models.JobRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return err
	}
	if !req.Deadline.After(s.now()) {
		return Unprocessable("deadline must be in the future")
	}
	return nil
}

func applyJobRequest(job *models.Job, req models.JobRequest) {
	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location
	job.Category = req.Category
	job.JobType = req.JobType
	job.WorkMode = req.WorkMode
	job.Salary = req.Salary
	job.Openings = req.Openings
	job.ExperienceRequired = req.ExperienceRequired
	job.Skills = pq.StringArray(req.Skills)
	job.Status = req.Status
	if job.Status == "" {
		job.Status = models.JobStatusOpen
	}
	job.Deadline = req.Deadline
}

func passThroughNil(message string, err error) error {
	if err == nil {
		return nil
	}
	return passThrough(message, err)
}
