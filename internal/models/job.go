package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JobStatus is informational only. Whether a job accepts applications is
// decided by its deadline.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
	JobStatusOnHold JobStatus = "On Hold"
)

type Job struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title              string         `gorm:"type:text;not null" json:"title"`
	Description        string         `gorm:"type:text" json:"description"`
	Location           string         `gorm:"type:text" json:"location"`
	Category           string         `gorm:"type:text" json:"category"`
	JobType            string         `gorm:"type:text" json:"job_type"`
	WorkMode           string         `gorm:"type:text" json:"work_mode"`
	Salary             int64          `json:"salary"`
	Openings           int            `json:"openings"`
	ExperienceRequired int            `json:"experience_required"`
	Skills             pq.StringArray `gorm:"type:text[]" json:"skills"`
	Status             JobStatus      `gorm:"type:text;not null;default:'Open'" json:"status"`
	Deadline           time.Time      `gorm:"not null" json:"deadline"`
	CompanyID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"company_id"`
	CreatedBy          uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	IsDeleted          bool           `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Company      Company       `gorm:"foreignKey:CompanyID" json:"-"`
	Creator      User          `gorm:"foreignKey:CreatedBy" json:"-"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

// AcceptsApplicationsAt reports whether now is not past the deadline.
func (j *Job) AcceptsApplicationsAt(now time.Time) bool {
	return !now.After(j.Deadline)
}

// JobFilter narrows the active job listing.
type JobFilter struct {
	Keyword   string
	Location  string
	JobType   string
	WorkMode  string
	CompanyID *uuid.UUID
	Page      int
	Limit     int
}

// SavedJob bookmarks a job for a user.
type SavedJob struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	JobID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"job_id"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Job Job `gorm:"foreignKey:JobID" json:"-"`
}

func (SavedJob) TableName() string {
	return "saved_jobs"
}
