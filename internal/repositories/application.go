package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/job-portal/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uuid.UUID) (*models.Application, error)
	Exists(jobID, applicantID uuid.UUID) (bool, error)
	FindByJob(jobID uuid.UUID) ([]models.Application, error)
	FindByApplicant(applicantID uuid.UUID) ([]models.Application, error)
	// UpdateStatusFrom writes to only while the stored status is still from
	// and reports whether a row changed.
	UpdateStatusFrom(id uuid.UUID, from, to models.ApplicationStatus) (bool, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Omit(clause.Associations).Create(app).Error; err != nil {
		return wrapError(err, "application")
	}
	return nil
}

func (r *applicationRepository) FindByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		return nil, wrapError(err, "application")
	}
	return &app, nil
}

func (r *applicationRepository) Exists(jobID, applicantID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count applications: %w", err)
	}
	return count > 0, nil
}

func (r *applicationRepository) FindByJob(jobID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("application_date ASC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}
	return apps, nil
}

func (r *applicationRepository) FindByApplicant(applicantID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("application_date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}
	return apps, nil
}

func (r *applicationRepository) UpdateStatusFrom(id uuid.UUID, from, to models.ApplicationStatus) (bool, error) {
	result := r.db.Model(&models.Application{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to update status: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
