package domain

import (
	"context"
	"time"
)

const (
	HolidayTypeNational  = "national"
	HolidayTypeReligious = "religious"
	HolidayTypeSchool    = "school"
	HolidayTypeEmergency = "emergency"
)

type Holiday struct {
	ID               string    `json:"id"`
	SchoolID         string    `json:"school_id" valid:"required~School ID is required"`
	Title            string    `json:"title" valid:"required~Title is required"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	Type             string    `json:"type" valid:"required~Type is required,in(national|religious|school|emergency)~Invalid holiday type"`
	IsRecurring      bool      `json:"is_recurring"`
	NotificationSent bool      `json:"notification_sent"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
}

type HolidayRepo interface {
	Insert(ctx context.Context, holiday *Holiday) error
	GetByID(ctx context.Context, id string) (*Holiday, error)
	GetBySchool(ctx context.Context, schoolID string) (*[]Holiday, error)
	Update(ctx context.Context, holiday *Holiday) error
	SetNotificationSent(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type HolidayUseCase interface {
	CreateHoliday(ctx context.Context, actor Claims, holiday *Holiday) error
	GetSchoolHolidays(ctx context.Context, schoolID string) (*[]Holiday, error)
	UpdateHoliday(ctx context.Context, actor Claims, holiday *Holiday) error
	DeleteHoliday(ctx context.Context, actor Claims, id string) error
	ResendNotifications(ctx context.Context, actor Claims, id string) error
}
