package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-portal/internal/services"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) HandleInbox(c *fiber.Ctx) error {
	inbox, err := h.notificationService.Inbox(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": inbox,
	})
}

func (h *NotificationHandler) HandleMarkAllSeen(c *fiber.Ctx) error {
	n, err := h.notificationService.MarkAllSeen(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Notifications marked as seen",
		"count":   n,
	})
}

func (h *NotificationHandler) HandleDeleteSeen(c *fiber.Ctx) error {
	n, err := h.notificationService.DeleteSeen(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Seen notifications deleted",
		"count":   n,
	})
}
