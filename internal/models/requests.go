package models

import (
	"time"

	"github.com/google/uuid"
)

type RegisterUserRequest struct {
	Name  string   `json:"name" validate:"required,min=2,max=100"`
	Email string   `json:"email" validate:"required,email,max=320"`
	Role  UserRole `json:"role" validate:"required,oneof=user recruiter"`
}

// UpdateProfileRequest replaces the editable profile fields. Role is not
// editable.
type UpdateProfileRequest struct {
	Name                 string   `json:"name" validate:"required,min=2,max=100"`
	Phone                string   `json:"phone" validate:"omitempty,max=20"`
	Bio                  string   `json:"bio" validate:"omitempty,max=1000"`
	Resume               string   `json:"resume" validate:"omitempty,max=2048"`
	ResumeName           string   `json:"resume_name" validate:"omitempty,max=255"`
	TotalExperienceYears *int     `json:"total_experience_years" validate:"omitempty,gte=0,lte=60"`
	Skills               []string `json:"skills" validate:"omitempty,max=50,dive,required,max=50"`
	Location             string   `json:"location" validate:"omitempty,max=100"`
}

type CompanyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email,max=320"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Website     string `json:"website" validate:"omitempty,url"`
	Location    string `json:"location" validate:"omitempty,max=100"`
}

// JobRequest carries every job field validated on create and update.
type JobRequest struct {
	Title              string    `json:"title" validate:"required,min=3,max=100"`
	Description        string    `json:"description" validate:"required,min=10,max=5000"`
	Location           string    `json:"location" validate:"required,min=2,max=100"`
	Category           string    `json:"category" validate:"required,max=50"`
	JobType            string    `json:"job_type" validate:"required,oneof=Full-time Part-time Internship Contract"`
	WorkMode           string    `json:"work_mode" validate:"required,oneof=Remote On-site Hybrid"`
	Salary             int64     `json:"salary" validate:"gt=0"`
	Openings           int       `json:"openings" validate:"gt=0,lte=1000"`
	ExperienceRequired int       `json:"experience_required" validate:"gte=0,lte=50"`
	Skills             []string  `json:"skills" validate:"required,min=1,max=50,dive,required,max=50"`
	Status             JobStatus `json:"status" validate:"omitempty,jobstatus"`
	Deadline           time.Time `json:"deadline" validate:"required"`
}

type CreateJobRequest struct {
	JobRequest
	CompanyID uuid.UUID `json:"company_id"`
}

type ApplyRequest struct {
	Source ApplicationSource `json:"source"`
}

type UpdateApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status"`
}

// ApplicationView is an application with its applicant denormalized.
type ApplicationView struct {
	ID              uuid.UUID         `json:"id"`
	JobID           uuid.UUID         `json:"job_id"`
	Status          ApplicationStatus `json:"status"`
	Source          ApplicationSource `json:"source"`
	ApplicationDate time.Time         `json:"application_date"`
	Applicant       ApplicantSummary  `json:"applicant"`
}

// AppliedJob is an application seen from the applicant side.
type AppliedJob struct {
	ApplicationID   uuid.UUID         `json:"application_id"`
	Status          ApplicationStatus `json:"status"`
	ApplicationDate time.Time         `json:"application_date"`
	Job             Job               `json:"job"`
}

type JobListResponse struct {
	Jobs  []Job `json:"jobs"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type UploadResponse struct {
	Resume     string `json:"resume"`
	ResumeName string `json:"resume_name"`
	PageCount  int    `json:"page_count"`
}
