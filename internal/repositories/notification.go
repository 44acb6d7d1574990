package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/job-portal/internal/models"
)

type NotificationRepository interface {
	Append(notification *models.Notification) error
	FindByUser(userID uuid.UUID) ([]models.Notification, error)
	MarkAllSeen(userID uuid.UUID) (int64, error)
	DeleteSeen(userID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Append(notification *models.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to append notification: %w", err)
	}
	return nil
}

// FindByUser returns the inbox newest first.
func (r *notificationRepository) FindByUser(userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepository) MarkAllSeen(userID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND seen = ?", userID, false).
		Update("seen", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications as seen: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *notificationRepository) DeleteSeen(userID uuid.UUID) (int64, error) {
	result := r.db.
		Where("user_id = ? AND seen = ?", userID, true).
		Delete(&models.Notification{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete seen notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}
