package delivery

import (
	"edusphere/config"
	"edusphere/domain"
	"edusphere/middleware"

	"github.com/gofiber/fiber/v2"
)

type certificateHandler struct {
	uc domain.CertificateUseCase
}

func NewCertificateHandler(app *fiber.App, uc domain.CertificateUseCase) {
	handler := &certificateHandler{
		uc: uc,
	}

	group := app.Group("/certificate")
	group.Post("/request", middleware.AuthRequired(), middleware.RoleRequired("student"), handler.RequestCertificate)
	group.Get("/school/:school_id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.GetSchoolRequests)
	group.Get("/mine", middleware.AuthRequired(), middleware.RoleRequired("student"), handler.GetMyRequests)
	group.Put("/approve/:id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.ApproveRequest)
	group.Put("/reject/:id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.RejectRequest)
	group.Post("/generate/:id", middleware.AuthRequired(), middleware.RoleRequired("principal"), handler.GenerateCertificate)
}

func (ch *certificateHandler) RequestCertificate(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var request domain.CertificateRequest
	if err := c.BodyParser(&request); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "RequestCertificate")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := ch.uc.RequestCertificate(c.Context(), *userToken, &request); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "RequestCertificate")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to submit certificate request",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusCreated, "RequestCertificate")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Certificate request submitted",
		"data":    request,
	})
}

func (ch *certificateHandler) GetSchoolRequests(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	schoolID := c.Params("school_id")

	datas, err := ch.uc.GetSchoolRequests(c.Context(), schoolID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetSchoolRequests")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get certificate requests",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetSchoolRequests")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Certificate requests retrieved successfully",
		"data":    datas,
	})
}

func (ch *certificateHandler) GetMyRequests(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	datas, err := ch.uc.GetStudentRequests(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GetMyRequests")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get certificate requests",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GetMyRequests")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Certificate requests retrieved successfully",
		"data":    datas,
	})
}

func (ch *certificateHandler) ApproveRequest(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	request, err := ch.uc.ApproveRequest(c.Context(), *userToken, id)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "ApproveRequest")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to approve certificate request",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "ApproveRequest")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Certificate request approved",
		"data":    request,
	})
}

func (ch *certificateHandler) RejectRequest(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	var payload struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusBadRequest, "RejectRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	request, err := ch.uc.RejectRequest(c.Context(), *userToken, id, payload.Reason)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "RejectRequest")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to reject certificate request",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "RejectRequest")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Certificate request rejected",
		"data":    request,
	})
}

func (ch *certificateHandler) GenerateCertificate(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	generated, err := ch.uc.GenerateCertificate(c.Context(), *userToken, id)
	if err != nil {
		config.PrintLogInfo(&userToken.UserID, fiber.StatusInternalServerError, "GenerateCertificate")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
			"message": "Failed to generate certificate",
		})
	}

	config.PrintLogInfo(&userToken.UserID, fiber.StatusOK, "GenerateCertificate")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Certificate generated successfully",
		"data":    generated,
	})
}
