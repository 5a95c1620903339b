package delivery

import (
	"edusphere/config"
	"edusphere/domain"
	"edusphere/middleware"

	"github.com/gofiber/fiber/v2"
)

type schoolHandler struct {
	uc domain.SchoolUseCase
}

func NewSchoolHandler(app *fiber.App, uc domain.SchoolUseCase) {
	handler := &schoolHandler{
		uc: uc,
	}

	group := app.Group("/school")
	group.Post("/insert", middleware.AuthRequired(), middleware.RoleRequired("super_admin"), handler.CreateSchool)
	group.Get("/get/:id", middleware.AuthRequired(), handler.GetSchool)
	group.Get("/get_all", middleware.AuthRequired(), middleware.RoleRequired("super_admin"), handler.GetAllSchools)
}

func (sh *schoolHandler) CreateSchool(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var school domain.School
	if err := c.BodyParser(&school); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "CreateSchool")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := sh.uc.CreateSchool(c.Context(), *userToken, &school); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "CreateSchool")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to create school",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusCreated, "CreateSchool")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "School created successfully",
		"data":    school,
	})
}

func (sh *schoolHandler) GetSchool(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	school, err := sh.uc.GetSchool(c.Context(), id)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetSchool")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get school",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetSchool")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "School retrieved successfully",
		"data":    school,
	})
}

func (sh *schoolHandler) GetAllSchools(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	datas, err := sh.uc.GetAllSchools(c.Context(), *userToken)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetAllSchools")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get schools",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetAllSchools")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Schools retrieved successfully",
		"data":    datas,
	})
}
