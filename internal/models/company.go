package models

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	Email       string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Website     string    `gorm:"type:text" json:"website,omitempty"`
	Location    string    `gorm:"type:text" json:"location,omitempty"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Company) TableName() string {
	return "companies"
}

// CompanyJobs partitions every job of a company: deleted jobs are closed,
// the rest are open.
type CompanyJobs struct {
	CompanyID  uuid.UUID   `json:"company_id"`
	OpenJobs   []uuid.UUID `json:"open_jobs"`
	ClosedJobs []uuid.UUID `json:"closed_jobs"`
}
