package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/services"
)

type JobHandler struct {
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// HandleCreate handles POST /jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	job, err := h.jobService.Create(c.UserContext(), currentUserID(c), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job created successfully",
		"data":    job,
	})
}

// HandleList handles GET /jobs
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	filter := models.JobFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
		WorkMode: c.Query("work_mode"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 0),
	}

	if raw := c.Query("company_id"); raw != "" {
		companyID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid company_id format",
			})
		}
		filter.CompanyID = &companyID
	}

	result, err := h.jobService.List(c.UserContext(), filter)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// HandleGet handles GET /jobs/:id
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	job, err := h.jobService.Get(c.UserContext(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": job,
	})
}

// HandleUpdate handles PUT /jobs/:id
func (h *JobHandler) HandleUpdate(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	job, err := h.jobService.Update(c.UserContext(), currentUserID(c), jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Job updated successfully",
		"data":    job,
	})
}

// HandleDelete handles DELETE /jobs/:id
func (h *JobHandler) HandleDelete(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.jobService.Delete(c.UserContext(), currentUserID(c), jobID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Job deleted successfully",
	})
}

// HandleSave handles POST /jobs/:id/save
func (h *JobHandler) HandleSave(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.jobService.Save(c.UserContext(), currentUserID(c), jobID); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job saved successfully",
	})
}

// HandleUnsave handles DELETE /jobs/:id/save
func (h *JobHandler) HandleUnsave(c *fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.jobService.Unsave(c.UserContext(), currentUserID(c), jobID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Job removed from saved jobs",
	})
}

// HandleListSaved handles GET /users/me/saved-jobs
func (h *JobHandler) HandleListSaved(c *fiber.Ctx) error {
	jobs, err := h.jobService.ListSaved(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": jobs,
	})
}
