package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationProcessing ApplicationStatus = "processing"
	ApplicationAccepted   ApplicationStatus = "accepted"
	ApplicationRejected   ApplicationStatus = "rejected"
)

type ApplicationSource string

const (
	SourceWebsite  ApplicationSource = "Website"
	SourceReferral ApplicationSource = "Referral"
	SourceLinkedIn ApplicationSource = "LinkedIn"
	SourceOther    ApplicationSource = "Other"
)

// Application links one applicant to one job. The (job_id, applicant_id)
// pair is unique.
type Application struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID           uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	ApplicantID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant;index" json:"applicant_id"`
	Status          ApplicationStatus `gorm:"type:text;not null;default:'processing'" json:"status"`
	Source          ApplicationSource `gorm:"type:text;not null;default:'Website'" json:"source"`
	ApplicationDate time.Time         `gorm:"not null" json:"application_date"`
	CreatedAt       time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Job       Job  `gorm:"foreignKey:JobID" json:"-"`
	Applicant User `gorm:"foreignKey:ApplicantID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
