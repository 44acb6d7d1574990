package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/job-portal/internal/models"
)

type CompanyRepository interface {
	Create(company *models.Company) error
	FindByID(id uuid.UUID) (*models.Company, error)
	FindByOwner(ownerID uuid.UUID) ([]models.Company, error)
	ExistsByNameOrEmail(name, email string, exclude *uuid.UUID) (bool, error)
	Update(company *models.Company) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *models.Company) error {
	if err := r.db.Omit(clause.Associations).Create(company).Error; err != nil {
		return wrapError(err, "company")
	}
	return nil
}

func (r *companyRepository) FindByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.Where("id = ?", id).First(&company).Error; err != nil {
		return nil, wrapError(err, "company")
	}
	return &company, nil
}

func (r *companyRepository) FindByOwner(ownerID uuid.UUID) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find companies: %w", err)
	}
	return companies, nil
}

// ExistsByNameOrEmail ignores the company with id exclude, if given.
func (r *companyRepository) ExistsByNameOrEmail(name, email string, exclude *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Company{}).Where("(name = ? OR email = ?)", name, email)
	if exclude != nil {
		query = query.Where("id <> ?", *exclude)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count companies: %w", err)
	}
	return count > 0, nil
}

func (r *companyRepository) Update(company *models.Company) error {
	result := r.db.Model(&models.Company{}).
		Where("id = ?", company.ID).
		Updates(map[string]interface{}{
			"name":        company.Name,
			"email":       company.Email,
			"description": company.Description,
			"website":     company.Website,
			"location":    company.Location,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return wrapError(result.Error, "company")
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("company not found: %w", ErrNotFound)
	}

	return nil
}
