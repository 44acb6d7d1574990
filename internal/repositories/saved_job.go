package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/job-portal/internal/models"
)

type SavedJobRepository interface {
	Create(saved *models.SavedJob) error
	Exists(userID, jobID uuid.UUID) (bool, error)
	Delete(userID, jobID uuid.UUID) error
	FindJobIDsByUser(userID uuid.UUID) ([]uuid.UUID, error)
}

type savedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

func (r *savedJobRepository) Create(saved *models.SavedJob) error {
	if err := r.db.Omit(clause.Associations).Create(saved).Error; err != nil {
		return wrapError(err, "saved job")
	}
	return nil
}

func (r *savedJobRepository) Exists(userID, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count saved jobs: %w", err)
	}
	return count > 0, nil
}

func (r *savedJobRepository) Delete(userID, jobID uuid.UUID) error {
	result := r.db.
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.SavedJob{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete saved job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("saved job not found: %w", ErrNotFound)
	}
	return nil
}

func (r *savedJobRepository) FindJobIDsByUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.SavedJob{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find saved jobs: %w", err)
	}
	return ids, nil
}
