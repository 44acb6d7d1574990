package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-portal/internal/models"
	"alfredoptarigan/job-portal/internal/services"
)

type CompanyHandler struct {
	companyService services.CompanyService
}

func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// HandleCreate handles POST /companies
func (h *CompanyHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	company, err := h.companyService.Create(c.UserContext(), currentUserID(c), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Company created successfully",
		"data":    company,
	})
}

func (h *CompanyHandler) HandleUpdate(c *fiber.Ctx) error {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	company, err := h.companyService.Update(c.UserContext(), currentUserID(c), companyID, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Company updated successfully",
		"data":    company,
	})
}

func (h *CompanyHandler) HandleGet(c *fiber.Ctx) error {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	company, err := h.companyService.Get(c.UserContext(), companyID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": company,
	})
}

func (h *CompanyHandler) HandleListMine(c *fiber.Ctx) error {
	companies, err := h.companyService.ListMine(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": companies,
	})
}

// HandleJobs handles GET /companies/:id/jobs
func (h *CompanyHandler) HandleJobs(c *fiber.Ctx) error {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	jobs, err := h.companyService.Jobs(c.UserContext(), companyID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": jobs,
	})
}
