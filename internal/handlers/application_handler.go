package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/services"
)

type ApplicationHandler struct {
	applicationService services.ApplicationService
}

func NewApplicationHandler(applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// HandleApply handles POST /jobs/:id/apply
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.ApplyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	app, err := h.applicationService.Apply(c.UserContext(), services.ApplyInput{
		JobID:       jobID,
		ApplicantID: currentUserID(c),
		Source:      req.Source,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Application submitted successfully",
		"data":    app,
	})
}

// HandleListForJob handles GET /jobs/:id/applications
func (h *ApplicationHandler) HandleListForJob(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	views, err := h.applicationService.ListForJob(c.UserContext(), services.ListApplicationsInput{
		JobID:    jobID,
		CallerID: currentUserID(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": views,
	})
}

// HandleUpdateStatus handles PATCH /applications/:id/status
func (h *ApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	appID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	app, err := h.applicationService.UpdateStatus(c.UserContext(), services.UpdateStatusInput{
		ApplicationID: appID,
		Status:        req.Status,
		CallerID:      currentUserID(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Application status updated",
		"data":    app,
	})
}

// HandleListMine handles GET /users/me/applications
func (h *ApplicationHandler) HandleListMine(c *fiber.Ctx) error {
	applied, err := h.applicationService.ListForApplicant(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": applied,
	})
}
