package domain

import (
	"context"
	"time"
)

const (
	FeeStatusPending = "pending"
	FeeStatusPaid    = "paid"
	FeeStatusOverdue = "overdue"
)

type Fee struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id" valid:"required~Student ID is required"`
	SchoolID    string     `json:"school_id" valid:"required~School ID is required"`
	Amount      float64    `json:"amount"`
	DueDate     time.Time  `json:"due_date"`
	Status      string     `json:"status" valid:"in(pending|paid|overdue)~Invalid fee status"`
	PaidDate    *time.Time `json:"paid_date,omitempty"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

type StudentFeeSummary struct {
	StudentID         string  `json:"student_id"`
	StudentName       string  `json:"student_name,omitempty"`
	StudentEmail      string  `json:"student_email,omitempty"`
	TotalFees         float64 `json:"total_fees"`
	PaidFees          float64 `json:"paid_fees"`
	PendingFees       float64 `json:"pending_fees"`
	OverdueAmount     float64 `json:"overdue_amount"`
	PaymentPercentage float64 `json:"payment_percentage"`
	TotalRecords      int     `json:"total_records"`
	PaidRecords       int     `json:"paid_records"`
	PendingRecords    int     `json:"pending_records"`
	OverdueRecords    int     `json:"overdue_records"`
}

type MonthlyCollection struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type SchoolFeeSummary struct {
	TotalAmount       float64             `json:"total_amount"`
	CollectedAmount   float64             `json:"collected_amount"`
	PendingAmount     float64             `json:"pending_amount"`
	OverdueAmount     float64             `json:"overdue_amount"`
	TotalRecords      int                 `json:"total_records"`
	PaidRecords       int                 `json:"paid_records"`
	PendingRecords    int                 `json:"pending_records"`
	OverdueRecords    int                 `json:"overdue_records"`
	CollectionRate    float64             `json:"collection_rate"`
	MonthlyCollection []MonthlyCollection `json:"monthly_collection"`
	PerStudent        []StudentFeeSummary `json:"per_student"`
	Coverage          float64             `json:"coverage"`
}

type FeeRepo interface {
	Insert(ctx context.Context, fee *Fee) error
	GetByID(ctx context.Context, id string) (*Fee, error)
	GetBySchool(ctx context.Context, schoolID string) (*[]Fee, error)
	GetByStudent(ctx context.Context, studentID string) (*[]Fee, error)
	Update(ctx context.Context, fee *Fee) error
	Delete(ctx context.Context, id string) error
}

type FeeUseCase interface {
	CreateFee(ctx context.Context, actor Claims, fee *Fee) error
	GetSchoolFees(ctx context.Context, schoolID string) (*[]Fee, error)
	GetStudentFees(ctx context.Context, studentID string) (*[]Fee, error)
	UpdateFee(ctx context.Context, actor Claims, fee *Fee) error
	DeleteFee(ctx context.Context, actor Claims, id string) error
	MarkPaid(ctx context.Context, actor Claims, id string) (*Fee, error)
	MarkOverdue(ctx context.Context, actor Claims, id string) (*Fee, error)
	AggregateSchool(ctx context.Context, schoolID string) (*SchoolFeeSummary, error)
	AggregateStudent(ctx context.Context, studentID string) (*StudentFeeSummary, error)
}
