package domain

import (
	"github.com/golang-jwt/jwt/v4"
)

type LoginRequest struct {
	Email    string `json:"email" valid:"required~Email is required"`
	Password string `json:"password" valid:"required~Password is required"`
}

type LoginResponse struct {
	Token    string  `json:"token"`
	Role     string  `json:"role"`
	SchoolID *string `json:"school_id,omitempty"`
}

type Claims struct {
	UserID   string  `json:"user_id"`
	Role     string  `json:"role"`
	SchoolID *string `json:"school_id,omitempty"`
	jwt.RegisteredClaims
}
