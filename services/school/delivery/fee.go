package delivery

import (
	"edusphere/config"
	"edusphere/domain"
	"edusphere/middleware"

	"github.com/gofiber/fiber/v2"
)

type feeHandler struct {
	uc domain.FeeUseCase
}

func NewFeeHandler(app *fiber.App, uc domain.FeeUseCase) {
	handler := &feeHandler{
		uc: uc,
	}

	group := app.Group("/fee")
	group.Post("/insert", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.CreateFee)
	group.Get("/school/:school_id", middleware.AuthRequired(), middleware.RoleRequired("principal", "super_admin"), handler.GetSchoolFees)
	group.Get("/student/:student_id", middleware.AuthRequired(), handler.GetStudentFees)
	group.Put("/modify/:id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.UpdateFee)
	group.Delete("/rm/:id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.DeleteFee)
	group.Put("/mark-paid/:id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.MarkPaid)
	group.Put("/mark-overdue/:id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.MarkOverdue)
	group.Get("/stats/school/:school_id", middleware.AuthRequired(), middleware.RoleRequired("principal", "super_admin"), handler.AggregateSchool)
	group.Get("/stats/student/:student_id", middleware.AuthRequired(), handler.AggregateStudent)
}

func (fh *feeHandler) CreateFee(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var fee domain.Fee
	if err := c.BodyParser(&fee); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "CreateFee")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := fh.uc.CreateFee(c.Context(), *userToken, &fee); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "CreateFee")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to create fee",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusCreated, "CreateFee")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Fee created successfully",
		"data":    fee,
	})
}

func (fh *feeHandler) GetSchoolFees(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	schoolID := c.Params("school_id")

	datas, err := fh.uc.GetSchoolFees(c.Context(), schoolID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetSchoolFees")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get school fees",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetSchoolFees")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "School fees retrieved successfully",
		"data":    datas,
	})
}

func (fh *feeHandler) GetStudentFees(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	studentID := c.Params("student_id")

	// A student can only read their own records.
	if userToken.Role == domain.RoleStudent && userToken.UserID != studentID {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusForbidden, "GetStudentFees")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Access denied",
		})
	}

	datas, err := fh.uc.GetStudentFees(c.Context(), studentID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetStudentFees")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get student fees",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetStudentFees")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student fees retrieved successfully",
		"data":    datas,
	})
}

func (fh *feeHandler) UpdateFee(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	var fee domain.Fee
	if err := c.BodyParser(&fee); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "UpdateFee")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	fee.ID = id

	if err := fh.uc.UpdateFee(c.Context(), *userToken, &fee); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "UpdateFee")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to update fee",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "UpdateFee")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Fee updated successfully",
		"data":    fee,
	})
}

func (fh *feeHandler) DeleteFee(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	if err := fh.uc.DeleteFee(c.Context(), *userToken, id); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "DeleteFee")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete fee",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "DeleteFee")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Fee deleted successfully",
	})
}

func (fh *feeHandler) MarkPaid(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	fee, err := fh.uc.MarkPaid(c.Context(), *userToken, id)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "MarkPaid")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to mark fee as paid",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "MarkPaid")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Fee marked as paid",
		"data":    fee,
	})
}

func (fh *feeHandler) MarkOverdue(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	fee, err := fh.uc.MarkOverdue(c.Context(), *userToken, id)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "MarkOverdue")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to mark fee as overdue",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "MarkOverdue")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Fee marked as overdue",
		"data":    fee,
	})
}

func (fh *feeHandler) AggregateSchool(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	schoolID := c.Params("school_id")

	summary, err := fh.uc.AggregateSchool(c.Context(), schoolID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "AggregateSchool")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to aggregate school fees",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "AggregateSchool")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "School fee summary retrieved successfully",
		"data":    summary,
	})
}

func (fh *feeHandler) AggregateStudent(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	studentID := c.Params("student_id")

	if userToken.Role == domain.RoleStudent && userToken.UserID != studentID {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusForbidden, "AggregateStudent")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Access denied",
		})
	}

	summary, err := fh.uc.AggregateStudent(c.Context(), studentID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "AggregateStudent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to aggregate student fees",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "AggregateStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student fee summary retrieved successfully",
		"data":    summary,
	})
}
