package usecase

import (
	"context"
	"edusphere/domain"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

type feeUC struct {
	feeRepo  domain.FeeRepo
	userRepo domain.UserRepo
	TimeOut  time.Duration
}

func NewFeeUseCase(feeRepo domain.FeeRepo, userRepo domain.UserRepo, timeOut time.Duration) domain.FeeUseCase {
	return &feeUC{
		feeRepo:  feeRepo,
		userRepo: userRepo,
		TimeOut:  timeOut,
	}
}

func (fUC *feeUC) CreateFee(ctx context.Context, actor domain.Claims, fee *domain.Fee) error {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	if fee.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if fee.DueDate.IsZero() {
		return fmt.Errorf("due date is required")
	}

	fee.ID = uuid.NewString()
	fee.CreatedAt = time.Now()
	if fee.Status == "" {
		fee.Status = domain.FeeStatusPending
	}
	if fee.Status != domain.FeeStatusPaid {
		fee.PaidDate = nil
	}

	if _, err := govalidator.ValidateStruct(fee); err != nil {
		return err
	}

	return fUC.feeRepo.Insert(ctx, fee)
}

func (fUC *feeUC) GetSchoolFees(ctx context.Context, schoolID string) (*[]domain.Fee, error) {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	return fUC.feeRepo.GetBySchool(ctx, schoolID)
}

func (fUC *feeUC) GetStudentFees(ctx context.Context, studentID string) (*[]domain.Fee, error) {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	return fUC.feeRepo.GetByStudent(ctx, studentID)
}

func (fUC *feeUC) UpdateFee(ctx context.Context, actor domain.Claims, fee *domain.Fee) error {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	if fee.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}

	existing, err := fUC.feeRepo.GetByID(ctx, fee.ID)
	if err != nil {
		return err
	}

	// an edit that omits status keeps the record's current one
	if fee.Status == "" {
		fee.Status = existing.Status
	}

	// paid_date is present iff the record is paid
	if fee.Status == domain.FeeStatusPaid && fee.PaidDate == nil {
		now := time.Now()
		fee.PaidDate = &now
	}
	if fee.Status != domain.FeeStatusPaid {
		fee.PaidDate = nil
	}

	fee.StudentID = existing.StudentID
	fee.SchoolID = existing.SchoolID
	fee.CreatedAt = existing.CreatedAt

	if _, err := govalidator.ValidateStruct(fee); err != nil {
		return err
	}

	return fUC.feeRepo.Update(ctx, fee)
}

func (fUC *feeUC) DeleteFee(ctx context.Context, actor domain.Claims, id string) error {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	return fUC.feeRepo.Delete(ctx, id)
}

func (fUC *feeUC) MarkPaid(ctx context.Context, actor domain.Claims, id string) (*domain.Fee, error) {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	fee, err := fUC.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fee.Status == domain.FeeStatusPaid {
		return fee, nil
	}

	now := time.Now()
	fee.Status = domain.FeeStatusPaid
	fee.PaidDate = &now

	if err := fUC.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

// MarkOverdue flips a pending record to overdue. The transition is only
// ever taken on an explicit request, never by a clock.
func (fUC *feeUC) MarkOverdue(ctx context.Context, actor domain.Claims, id string) (*domain.Fee, error) {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	fee, err := fUC.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fee.Status == domain.FeeStatusPaid {
		return nil, fmt.Errorf("a paid fee cannot be marked overdue")
	}

	fee.Status = domain.FeeStatusOverdue
	fee.PaidDate = nil

	if err := fUC.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

func (fUC *feeUC) AggregateSchool(ctx context.Context, schoolID string) (*domain.SchoolFeeSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	fees, err := fUC.feeRepo.GetBySchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	roster, err := fUC.userRepo.GetSchoolUsersByRole(ctx, schoolID, domain.RoleStudent)
	if err != nil {
		return nil, err
	}

	summary := AggregateSchoolFees(*fees, *roster, time.Now())
	return &summary, nil
}

func (fUC *feeUC) AggregateStudent(ctx context.Context, studentID string) (*domain.StudentFeeSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, fUC.TimeOut)
	defer cancel()

	fees, err := fUC.feeRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	summary := AggregateStudentFees(studentID, *fees)
	return &summary, nil
}
