package delivery

import (
	"edusphere/config"
	"edusphere/domain"
	"edusphere/middleware"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type notifHandler struct {
	uc domain.NotificationUseCase
}

func NewNotificationHandler(app *fiber.App, uc domain.NotificationUseCase) {
	handler := &notifHandler{
		uc: uc,
	}

	group := app.Group("/notification")
	group.Get("/mine", middleware.AuthRequired(), handler.GetMyNotifications)
	group.Get("/unread-count", middleware.AuthRequired(), handler.GetUnreadCount)
	group.Put("/read/:id", middleware.AuthRequired(), handler.MarkAsRead)
	group.Put("/read-all", middleware.AuthRequired(), handler.MarkAllAsRead)
	group.Delete("/rm/:id", middleware.AuthRequired(), handler.DeleteNotification)
	group.Post("/system", middleware.AuthRequired(), middleware.RoleRequired("super_admin", "principal"), handler.CreateSystemNotification)
	group.Post("/assignment", middleware.AuthRequired(), middleware.RoleRequired("teacher", "principal"), handler.NotifyAssignmentPosted)
	group.Post("/grade", middleware.AuthRequired(), middleware.RoleRequired("teacher", "principal"), handler.NotifyGradePosted)
	group.Post("/attendance", middleware.AuthRequired(), middleware.RoleRequired("teacher", "principal"), handler.NotifyAttendanceMarked)
	group.Post("/notice", middleware.AuthRequired(), middleware.RoleRequired("teacher", "principal"), handler.NotifyNoticePublished)
	group.Delete("/cleanup/:days", middleware.AuthRequired(), middleware.RoleRequired("super_admin"), handler.CleanupOldNotifications)
}

// GetMyNotifications returns the caller's notifications. An optional
// RFC3339 `after` query narrows the result to records created since
// that instant, so clients can refresh incrementally.
func (nh *notifHandler) GetMyNotifications(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var datas *[]domain.Notification
	var err error
	if after := c.Query("after"); after != "" {
		parsedAfter, parseErr := time.Parse(time.RFC3339, after)
		if parseErr != nil {
			config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "GetMyNotifications")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid after timestamp, expected RFC3339",
			})
		}
		datas, err = nh.uc.GetByRecipientSince(c.Context(), userToken.UserID, parsedAfter)
	} else {
		datas, err = nh.uc.GetByRecipient(c.Context(), userToken.UserID)
	}
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetMyNotifications")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get notifications",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetMyNotifications")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved notifications",
		"data":    datas,
	})
}

func (nh *notifHandler) GetUnreadCount(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	count, err := nh.uc.GetUnreadCount(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetUnreadCount")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get unread count",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetUnreadCount")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Successfully retrieved unread count",
		"data":    fiber.Map{"unread_count": count},
	})
}

func (nh *notifHandler) MarkAsRead(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	if err := nh.uc.MarkAsRead(c.Context(), *userToken, id); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "MarkAsRead")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to mark notification as read",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "MarkAsRead")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notification marked as read",
	})
}

func (nh *notifHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	if err := nh.uc.MarkAllAsRead(c.Context(), userToken.UserID); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "MarkAllAsRead")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to mark all notifications as read",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "MarkAllAsRead")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "All notifications marked as read",
	})
}

func (nh *notifHandler) DeleteNotification(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	if err := nh.uc.DeleteNotification(c.Context(), *userToken, id); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "DeleteNotification")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete notification",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "DeleteNotification")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notification deleted",
	})
}

func (nh *notifHandler) CreateSystemNotification(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var payload struct {
		RecipientUserIDs []string          `json:"recipient_user_ids"`
		Title            string            `json:"title"`
		Message          string            `json:"message"`
		Category         string            `json:"category"`
		Metadata         map[string]string `json:"metadata"`
	}
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "CreateSystemNotification")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if payload.Category == "" {
		payload.Category = domain.CategoryInfo
	}

	datas, err := nh.uc.CreateForMany(c.Context(), payload.RecipientUserIDs, payload.Title, payload.Message, payload.Category, payload.Metadata)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "CreateSystemNotification")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fan out notification",
			"data":    datas,
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusCreated, "CreateSystemNotification")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Notification fanned out successfully",
		"data":    datas,
	})
}

func (nh *notifHandler) NotifyAssignmentPosted(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var payload struct {
		StudentIDs []string `json:"student_ids"`
		domain.AssignmentPosted
	}
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "NotifyAssignmentPosted")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := nh.uc.NotifyAssignmentPosted(c.Context(), payload.StudentIDs, payload.AssignmentPosted); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "NotifyAssignmentPosted")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send assignment notifications",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusCreated, "NotifyAssignmentPosted")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Assignment notifications sent",
	})
}

func (nh *notifHandler) NotifyGradePosted(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var payload struct {
		StudentID string `json:"student_id"`
		domain.GradePosted
	}
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "NotifyGradePosted")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := nh.uc.NotifyGradePosted(c.Context(), payload.StudentID, payload.GradePosted); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "NotifyGradePosted")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send grade notification",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusCreated, "NotifyGradePosted")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Grade notification sent",
	})
}

func (nh *notifHandler) NotifyAttendanceMarked(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var payload struct {
		StudentID string `json:"student_id"`
		domain.AttendanceMarked
	}
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "NotifyAttendanceMarked")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := nh.uc.NotifyAttendanceMarked(c.Context(), payload.StudentID, payload.AttendanceMarked); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "NotifyAttendanceMarked")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send attendance notification",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusCreated, "NotifyAttendanceMarked")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Attendance notification sent",
	})
}

func (nh *notifHandler) NotifyNoticePublished(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var payload struct {
		RecipientUserIDs []string `json:"recipient_user_ids"`
		domain.NoticePublished
	}
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "NotifyNoticePublished")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := nh.uc.NotifyNoticePublished(c.Context(), payload.RecipientUserIDs, payload.NoticePublished); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "NotifyNoticePublished")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send notice notifications",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusCreated, "NotifyNoticePublished")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Notice notifications sent",
	})
}

func (nh *notifHandler) CleanupOldNotifications(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	days := c.Params("days")

	convertedDays, err := strconv.Atoi(days)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "CleanupOldNotifications")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Converter failure on days",
		})
	}

	removed, err := nh.uc.CleanupOldNotifications(c.Context(), convertedDays)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "CleanupOldNotifications")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to clean up notifications",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "CleanupOldNotifications")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Old notifications cleaned up",
		"data":    fiber.Map{"removed": removed},
	})
}
