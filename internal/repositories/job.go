package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/job-portal/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	// FindByID returns the job even when soft-deleted.
	FindByID(id uuid.UUID) (*models.Job, error)
	// FindActiveByID treats soft-deleted jobs as missing.
	FindActiveByID(id uuid.UUID) (*models.Job, error)
	FindActiveByIDs(ids []uuid.UUID) ([]models.Job, error)
	FindActive(filter models.JobFilter) ([]models.Job, int64, error)
	FindByCompany(companyID uuid.UUID) ([]models.Job, error)
	Update(job *models.Job) error
	SoftDelete(id uuid.UUID) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Omit(clause.Associations).Create(job).Error; err != nil {
		return wrapError(err, "job")
	}
	return nil
}

func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		return nil, wrapError(err, "job")
	}
	return &job, nil
}

func (r *jobRepository) FindActiveByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&job).Error; err != nil {
		return nil, wrapError(err, "job")
	}
	return &job, nil
}

func (r *jobRepository) FindActiveByIDs(ids []uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	if len(ids) == 0 {
		return jobs, nil
	}
	if err := r.db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) FindActive(filter models.JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{}).Where("is_deleted = ?", false)

	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		like := "%" + kw + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", like, like)
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		query = query.Where("location ILIKE ?", "%"+loc+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.WorkMode != "" {
		query = query.Where("work_mode = ?", filter.WorkMode)
	}
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	var jobs []models.Job
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find jobs: %w", err)
	}

	return jobs, total, nil
}

func (r *jobRepository) FindByCompany(companyID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find company jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) Update(job *models.Job) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ? AND is_deleted = ?", job.ID, false).
		Updates(map[string]interface{}{
			"title":               job.Title,
			"description":         job.Description,
			"location":            job.Location,
			"category":            job.Category,
			"job_type":            job.JobType,
			"work_mode":           job.WorkMode,
			"salary":              job.Salary,
			"openings":            job.Openings,
			"experience_required": job.ExperienceRequired,
			"skills":              job.Skills,
			"status":              job.Status,
			"deadline":            job.Deadline,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("job not found: %w", ErrNotFound)
	}

	return nil
}

// SoftDelete flags an active job as deleted. A job that is missing or already
// deleted yields ErrNotFound.
func (r *jobRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("job not found: %w", ErrNotFound)
	}

	return nil
}
