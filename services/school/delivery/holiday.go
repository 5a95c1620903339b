package delivery

import (
	"edusphere/config"
	"edusphere/domain"
	"edusphere/middleware"

	"github.com/gofiber/fiber/v2"
)

type holidayHandler struct {
	uc domain.HolidayUseCase
}

func NewHolidayHandler(app *fiber.App, uc domain.HolidayUseCase) {
	handler := &holidayHandler{
		uc: uc,
	}

	group := app.Group("/holiday")
	group.Post("/insert", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.CreateHoliday)
	group.Get("/school/:school_id", middleware.AuthRequired(), handler.GetSchoolHolidays)
	group.Put("/modify/:id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.UpdateHoliday)
	group.Delete("/rm/:id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.DeleteHoliday)
	group.Post("/resend/:id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.ResendNotifications)
}

func (hh *holidayHandler) CreateHoliday(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var holiday domain.Holiday
	if err := c.BodyParser(&holiday); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "CreateHoliday")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if userToken.SchoolID != nil {
		holiday.SchoolID = *userToken.SchoolID
	}

	if err := hh.uc.CreateHoliday(c.Context(), *userToken, &holiday); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "CreateHoliday")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to create holiday",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusCreated, "CreateHoliday")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Holiday added and notifications sent",
		"data":    holiday,
	})
}

func (hh *holidayHandler) GetSchoolHolidays(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	schoolID := c.Params("school_id")

	datas, err := hh.uc.GetSchoolHolidays(c.Context(), schoolID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetSchoolHolidays")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get school holidays",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetSchoolHolidays")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "School holidays retrieved successfully",
		"data":    datas,
	})
}

func (hh *holidayHandler) UpdateHoliday(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	var holiday domain.Holiday
	if err := c.BodyParser(&holiday); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "UpdateHoliday")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	holiday.ID = id

	if err := hh.uc.UpdateHoliday(c.Context(), *userToken, &holiday); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "UpdateHoliday")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to update holiday",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "UpdateHoliday")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Holiday updated successfully",
		"data":    holiday,
	})
}

func (hh *holidayHandler) DeleteHoliday(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	if err := hh.uc.DeleteHoliday(c.Context(), *userToken, id); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "DeleteHoliday")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to delete holiday",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "DeleteHoliday")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Holiday deleted and cancellation notifications sent",
	})
}

func (hh *holidayHandler) ResendNotifications(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	if err := hh.uc.ResendNotifications(c.Context(), *userToken, id); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "ResendNotifications")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to resend holiday notifications",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "ResendNotifications")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Holiday notifications sent",
	})
}
