package delivery

import (
	"edusphere/config"
	"edusphere/domain"
	"edusphere/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authHandler struct {
	db       *gorm.DB
	userRepo domain.UserRepo
}

func NewUserAuthHandler(app *fiber.App, db *gorm.DB, userRepo domain.UserRepo) {
	handler := &authHandler{
		db:       db,
		userRepo: userRepo,
	}

	route := app.Group("/login")
	route.Post("/user", handler.Login)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	var user domain.User
	err := h.db.Table("users").Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid email or password",
		})
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid email or password",
		})
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role, user.SchoolID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate token",
		})
	}

	if err := h.userRepo.RecordLogin(c.Context(), user.ID, time.Now()); err != nil {
		config.GetLogrusInstance().Errorf("could not record login for user %s: %v", user.ID, err)
	}

	return c.Status(fiber.StatusOK).JSON(domain.LoginResponse{
		Token:    token,
		Role:     user.Role,
		SchoolID: user.SchoolID,
	})
}
