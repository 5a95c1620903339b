package delivery

import (
	"edusphere/config"
	"edusphere/domain"
	"edusphere/middleware"

	"github.com/gofiber/fiber/v2"
)

type userHandler struct {
	uc domain.UserUseCase
}

func NewUserHandler(app *fiber.App, uc domain.UserUseCase) {
	handler := &userHandler{
		uc: uc,
	}

	group := app.Group("/user")
	group.Get("/me", middleware.AuthRequired(), handler.GetMe)
	group.Post("/create", middleware.AuthRequired(), middleware.RoleRequired("super_admin", "principal"), handler.CreateUser)
	group.Get("/school/:school_id", middleware.AuthRequired(), middleware.RoleRequired("super_admin", "principal", "teacher"), handler.GetSchoolUsers)
	group.Get("/school/:school_id/students", middleware.AuthRequired(), middleware.RoleRequired("super_admin", "principal", "teacher"), handler.GetSchoolStudents)
}

func (uh *userHandler) GetMe(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	user, err := uh.uc.GetUser(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusNotFound, "GetMe")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetMe")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User retrieved successfully",
		"data":    user,
	})
}

func (uh *userHandler) CreateUser(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var payload domain.CreateUserPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "CreateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	user, err := uh.uc.CreateUser(c.Context(), *userToken, &payload)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "CreateUser")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to create user",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusCreated, "CreateUser")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	})
}

func (uh *userHandler) GetSchoolUsers(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	schoolID := c.Params("school_id")

	datas, err := uh.uc.GetSchoolUsers(c.Context(), schoolID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetSchoolUsers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get school users",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetSchoolUsers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "School users retrieved successfully",
		"data":    datas,
	})
}

func (uh *userHandler) GetSchoolStudents(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	schoolID := c.Params("school_id")

	datas, err := uh.uc.GetSchoolStudents(c.Context(), schoolID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetSchoolStudents")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get school students",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetSchoolStudents")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "School students retrieved successfully",
		"data":    datas,
	})
}
