package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"alfredoptarigan/job-portal/internal/config"
	"alfredoptarigan/job-portal/internal/logger"
	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/repositories"
	"alfredoptarigan/job-portal/internal/services"
)

// Seeds a recruiter, a company with one open job and an applicant with a
// complete profile, then walks the application through to accepted.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log.Info().Msg("🚀 Starting demo seed...")

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize database")
	}

	store := repositories.NewStore(db)
	validator := services.NewInputValidator()

	users := services.NewUserService(store, validator, services.NewStorageService(cfg.Storage.UploadPath), services.NewPDFParserService(), cfg.Storage.MaxFileSize)
	companies := services.NewCompanyService(store, validator)
	jobs := services.NewJobService(store, validator, cfg.Application.JobsPageLimit)
	applications := services.NewApplicationService(store, cfg.Application.EnforceListOwnership)
	notifications := services.NewNotificationService(store)

	ctx := context.Background()

	recruiter, err := users.Register(ctx, models.RegisterUserRequest{
		Name:  "Rina Recruiter",
		Email: "recruiter@demo.example.com",
		Role:  models.RoleRecruiter,
	})
	if services.KindOf(err) == services.KindConflict {
		log.Info().Msg("⚠️  Demo data already present, nothing to do")
		return
	}
	exitOnError(err, "register recruiter")
	log.Info().Str("user_id", recruiter.ID.String()).Msg("   ✅ Recruiter registered")

	company, err := companies.Create(ctx, recruiter.ID, models.CompanyRequest{
		Name:     "Demo Labs",
		Email:    "hello@demo.example.com",
		Website:  "https://demo.example.com",
		Location: "Jakarta",
	})
	exitOnError(err, "create company")
	log.Info().Str("company_id", company.ID.String()).Msg("   ✅ Company created")

	job, err := jobs.Create(ctx, recruiter.ID, models.CreateJobRequest{
		CompanyID: company.ID,
		JobRequest: models.JobRequest{
			Title:              "Backend Engineer",
			Description:        "Design and run the APIs behind the hiring platform.",
			Location:           "Jakarta",
			Category:           "Engineering",
			JobType:            "Full-time",
			WorkMode:           "Hybrid",
			Salary:             25000000,
			Openings:           2,
			ExperienceRequired: 2,
			Skills:             []string{"go", "postgresql", "docker"},
			Deadline:           time.Now().AddDate(0, 1, 0),
		},
	})
	exitOnError(err, "create job")
	log.Info().Str("job_id", job.ID.String()).Msg("   ✅ Job posted")

	applicant, err := users.Register(ctx, models.RegisterUserRequest{
		Name:  "Adi Applicant",
		Email: "applicant@demo.example.com",
		Role:  models.RoleUser,
	})
	exitOnError(err, "register applicant")

	years := 3
	_, err = users.UpdateProfile(ctx, applicant.ID, models.UpdateProfileRequest{
		Name:                 applicant.Name,
		Resume:               "/uploads/demo_resume.pdf",
		ResumeName:           "adi_resume.pdf",
		TotalExperienceYears: &years,
		Skills:               []string{"go", "postgresql"},
		Location:             "Bandung",
	})
	exitOnError(err, "complete applicant profile")
	log.Info().Str("user_id", applicant.ID.String()).Msg("   ✅ Applicant profile completed")

	app, err := applications.Apply(ctx, services.ApplyInput{JobID: job.ID, ApplicantID: applicant.ID, Source: models.SourceLinkedIn})
	exitOnError(err, "apply")
	log.Info().Str("application_id", app.ID.String()).Msg("   ✅ Application submitted")

	_, err = applications.UpdateStatus(ctx, services.UpdateStatusInput{ApplicationID: app.ID, Status: models.ApplicationAccepted, CallerID: recruiter.ID})
	exitOnError(err, "accept application")
	log.Info().Msg("   ✅ Application accepted")

	recruiterInbox, err := notifications.Inbox(ctx, recruiter.ID)
	exitOnError(err, "load recruiter inbox")
	applicantInbox, err := notifications.Inbox(ctx, applicant.ID)
	exitOnError(err, "load applicant inbox")

	log.Info().Msg(strings.Repeat("=", 60))
	log.Info().
		Int("recruiter_unseen", len(recruiterInbox.UnSeen)).
		Int("applicant_unseen", len(applicantInbox.UnSeen)).
		Msg("📊 Seed summary")
	log.Info().Msg(strings.Repeat("=", 60))

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func exitOnError(err error, step string) {
	if err == nil {
		return
	}
	log.Error().Err(err).Str("step", step).Msg("❌ Seed failed")
	os.Exit(1)
}
