package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/repositories"
)

type NotificationService interface {
	Inbox(ctx context.Context, userID uuid.UUID) (*models.Inbox, error)
	MarkAllSeen(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteSeen(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationService struct {
	store repositories.Store
}

func NewNotificationService(store repositories.Store) NotificationService {
	return &notificationService{store: store}
}

func (s *notificationService) Inbox(ctx context.Context, userID uuid.UUID) (*models.Inbox, error) {
	all, err := s.store.WithContext(ctx).Notifications().FindByUser(userID)
	if err != nil {
		return nil, Internal("failed to load notifications", err)
	}

	inbox := &models.Inbox{
		UnSeen: []models.Notification{},
		Seen:   []models.Notification{},
	}
	for _, n := range all {
		if n.Seen {
			inbox.Seen = append(inbox.Seen, n)
		} else {
			inbox.UnSeen = append(inbox.UnSeen, n)
		}
	}
	return inbox, nil
}

func (s *notificationService) MarkAllSeen(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.store.WithContext(ctx).Notifications().MarkAllSeen(userID)
	if err != nil {
		return 0, Internal("failed to mark notifications as seen", err)
	}
	log.Debug().Str("user_id", userID.String()).Int64("count", n).Msg("notifications marked as seen")
	return n, nil
}

func (s *notificationService) DeleteSeen(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.store.WithContext(ctx).Notifications().DeleteSeen(userID)
	if err != nil {
		return 0, Internal("failed to delete seen notifications", err)
	}
	log.Debug().Str("user_id", userID.String()).Int64("count", n).Msg("seen notifications deleted")
	return n, nil
}

// notify appends to the target user's unseen notifications through the given
// store, so callers running a transaction keep the append inside it.
func notify(store repositories.Store, userID uuid.UUID, kind, message, onClickPath string) error {
	n := &models.Notification{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        kind,
		Message:     message,
		OnClickPath: onClickPath,
		CreatedAt:   time.Now(),
	}
	if err := store.Notifications().Append(n); err != nil {
		return fmt.Errorf("notify %s: %w", userID, err)
	}
	return nil
}

func jobManagementPath(jobID uuid.UUID) string {
	return fmt.Sprintf("/recruiter/jobs/%s/applications", jobID)
}

func applicantProfilePath() string {
	return "/profile"
}
