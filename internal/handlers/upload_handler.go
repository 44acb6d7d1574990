package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-portal/internal/services"
)

type UploadHandler struct {
	userService services.UserService
	maxFileSize int64
}

func NewUploadHandler(userService services.UserService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		userService: userService,
		maxFileSize: maxFileSize,
	}
}

// HandleResumeUpload handles POST /users/me/resume with a multipart "resume"
// field holding a PDF.
func (h *UploadHandler) HandleResumeUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files, exists := form.File["resume"]
	if !exists || len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume uploaded. Please upload 'resume' as a PDF file.",
		})
	}

	resume := files[0]
	if resume.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume file too large",
		})
	}

	uploaded, err := h.userService.UploadResume(c.UserContext(), currentUserID(c), resume)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Resume uploaded successfully",
		"data":    uploaded,
	})
}
