package domain

import (
	"context"
	"time"
)

type School struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" valid:"required~Name is required"`
	PrincipalID string    `json:"principal_id"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email" valid:"email~Invalid email format,optional"`
	CreatedAt   time.Time `json:"created_at"`
}

type SchoolRepo interface {
	Insert(ctx context.Context, school *School) error
	GetByID(ctx context.Context, id string) (*School, error)
	GetAll(ctx context.Context) (*[]School, error)
}

type SchoolUseCase interface {
	CreateSchool(ctx context.Context, actor Claims, school *School) error
	GetSchool(ctx context.Context, id string) (*School, error)
	GetAllSchools(ctx context.Context, actor Claims) (*[]School, error)
}
