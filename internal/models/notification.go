package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationNewApplication    = "newApplication"
	NotificationApplicationStatus = "application-status"
)

// Notification is one entry of a user's append-only inbox. Seen entries are
// only produced by the bulk "mark all as seen" operation.
type Notification struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_seen" json:"-"`
	Type        string    `gorm:"type:text;not null" json:"type"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	OnClickPath string    `gorm:"type:text" json:"on_click_path"`
	Seen        bool      `gorm:"not null;default:false;index:idx_notifications_user_seen" json:"-"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

type Inbox struct {
	UnSeen []Notification `json:"unseen_notifications"`
	Seen   []Notification `json:"seen_notifications"`
}
