package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/job-portal/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	Update(user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapError(err, "user")
	}
	return nil
}

func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, wrapError(err, "user")
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}

// Update saves the profile columns. Role and email are never written here.
func (r *userRepository) Update(user *models.User) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":                   user.Name,
			"phone":                  user.Phone,
			"bio":                    user.Bio,
			"resume":                 user.Resume,
			"resume_name":            user.ResumeName,
			"total_experience_years": user.TotalExperienceYears,
			"skills":                 user.Skills,
			"location":               user.Location,
			"updated_at":             time.Now(),
		})

	if result.Error != nil {
		return wrapError(result.Error, "user")
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found: %w", ErrNotFound)
	}

	return nil
}
