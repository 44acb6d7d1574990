package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleRecruiter UserRole = "recruiter"
)

// User is a job seeker or recruiter. Role is set once at registration.
type User struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name                 string         `gorm:"type:text;not null" json:"name"`
	Email                string         `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Role                 UserRole       `gorm:"type:text;not null;default:'user'" json:"role"`
	Phone                string         `gorm:"type:text" json:"phone,omitempty"`
	Bio                  string         `gorm:"type:text" json:"bio,omitempty"`
	Resume               string         `gorm:"type:text" json:"resume,omitempty"`
	ResumeName           string         `gorm:"type:text" json:"resume_name,omitempty"`
	TotalExperienceYears *int           `json:"total_experience_years,omitempty"`
	Skills               pq.StringArray `gorm:"type:text[]" json:"skills"`
	Location             string         `gorm:"type:text" json:"location,omitempty"`
	CreatedAt            time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsRecruiter() bool {
	return u.Role == RoleRecruiter
}

// MissingProfileFields lists the profile fields that must be filled in
// before the user may apply to a job, in a stable order.
func (u *User) MissingProfileFields() []string {
	var missing []string
	if u.Resume == "" {
		missing = append(missing, "resume")
	}
	if u.ResumeName == "" {
		missing = append(missing, "resume_name")
	}
	if u.TotalExperienceYears == nil {
		missing = append(missing, "total_experience_years")
	}
	if len(u.Skills) == 0 {
		missing = append(missing, "skills")
	}
	if u.Location == "" {
		missing = append(missing, "location")
	}
	return missing
}

// ApplicantSummary is the applicant view shown to recruiters. It carries no
// credentials, notifications or job lists.
type ApplicantSummary struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone,omitempty"`
	Bio                  string    `json:"bio,omitempty"`
	Resume               string    `json:"resume"`
	ResumeName           string    `json:"resume_name"`
	TotalExperienceYears *int      `json:"total_experience_years"`
	Skills               []string  `json:"skills"`
	Location             string    `json:"location"`
}

func (u *User) Summary() ApplicantSummary {
	return ApplicantSummary{
		ID:                   u.ID,
		Name:                 u.Name,
		Email:                u.Email,
		Phone:                u.Phone,
		Bio:                  u.Bio,
		Resume:               u.Resume,
		ResumeName:           u.ResumeName,
		TotalExperienceYears: u.TotalExperienceYears,
		Skills:               []string(u.Skills),
		Location:             u.Location,
	}
}
