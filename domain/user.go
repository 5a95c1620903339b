package domain

import (
	"context"
	"time"
)

const (
	RoleSuperAdmin = "super_admin"
	RolePrincipal  = "principal"
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
)

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name" valid:"required~Name is required"`
	Email        string     `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password     string     `json:"-"`
	Role         string     `json:"role" valid:"required~Role is required,in(super_admin|principal|teacher|student)~Invalid role"`
	SchoolID     *string    `json:"school_id,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	ClassID      *string    `json:"class_id,omitempty"`
	RollNumber   *string    `json:"roll_number,omitempty"`
	IsFirstLogin bool       `json:"is_first_login"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type CreateUserPayload struct {
	Name       string  `json:"name" valid:"required~Name is required"`
	Email      string  `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password   string  `json:"password" valid:"required~Password is required"`
	Role       string  `json:"role" valid:"required~Role is required,in(super_admin|principal|teacher|student)~Invalid role"`
	SchoolID   *string `json:"school_id,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	ClassID    *string `json:"class_id,omitempty"`
	RollNumber *string `json:"roll_number,omitempty"`
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	GetSchoolUsers(ctx context.Context, schoolID string) (*[]User, error)
	GetSchoolUsersByRole(ctx context.Context, schoolID, role string) (*[]User, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
}

type UserUseCase interface {
	CreateUser(ctx context.Context, actor Claims, payload *CreateUserPayload) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	GetSchoolUsers(ctx context.Context, schoolID string) (*[]User, error)
	GetSchoolStudents(ctx context.Context, schoolID string) (*[]User, error)
	ResolveNotificationRecipients(ctx context.Context, schoolID string) ([]string, error)
}
