package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	User         *UserHandler
	Upload       *UploadHandler
	Company      *CompanyHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	Notification *NotificationHandler
}

// RegisterRoutes mounts the API under router. Everything except health and
// registration goes through auth.
func RegisterRoutes(router fiber.Router, h Handlers, auth fiber.Handler) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	router.Post("/users", h.User.HandleRegister)

	me := router.Group("/users/me", auth)
	me.Get("/", h.User.HandleMe)
	me.Put("/", h.User.HandleUpdateProfile)
	me.Post("/resume", h.Upload.HandleResumeUpload)
	me.Get("/applications", h.Application.HandleListMine)
	me.Get("/saved-jobs", h.Job.HandleListSaved)
	me.Get("/notifications", h.Notification.HandleInbox)
	me.Patch("/notifications/seen", h.Notification.HandleMarkAllSeen)
	me.Delete("/notifications/seen", h.Notification.HandleDeleteSeen)

	companies := router.Group("/companies", auth)
	companies.Post("/", h.Company.HandleCreate)
	companies.Get("/mine", h.Company.HandleListMine)
	companies.Get("/:id", h.Company.HandleGet)
	companies.Put("/:id", h.Company.HandleUpdate)
	companies.Get("/:id/jobs", h.Company.HandleJobs)

	jobs := router.Group("/jobs", auth)
	jobs.Post("/", h.Job.HandleCreate)
	jobs.Get("/", h.Job.HandleList)
	jobs.Get("/:id", h.Job.HandleGet)
	jobs.Put("/:id", h.Job.HandleUpdate)
	jobs.Delete("/:id", h.Job.HandleDelete)
	jobs.Post("/:id/save", h.Job.HandleSave)
	jobs.Delete("/:id/save", h.Job.HandleUnsave)
	jobs.Post("/:id/apply", h.Application.HandleApply)
	jobs.Get("/:id/applications", h.Application.HandleListForJob)

	applications := router.Group("/applications", auth)
	applications.Patch("/:id/status", h.Application.HandleUpdateStatus)
}
