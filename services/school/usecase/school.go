package usecase

import (
	"context"
	"edusphere/domain"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

type schoolUC struct {
	schoolRepo domain.SchoolRepo
	TimeOut    time.Duration
}

func NewSchoolUseCase(repo domain.SchoolRepo, timeOut time.Duration) domain.SchoolUseCase {
	return &schoolUC{
		schoolRepo: repo,
		TimeOut:    timeOut,
	}
}

func (sUC *schoolUC) CreateSchool(ctx context.Context, actor domain.Claims, school *domain.School) error {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	if actor.Role != domain.RoleSuperAdmin {
		return fmt.Errorf("only a super admin can create schools")
	}

	school.ID = uuid.NewString()
	school.CreatedAt = time.Now()

	if _, err := govalidator.ValidateStruct(school); err != nil {
		return err
	}

	return sUC.schoolRepo.Insert(ctx, school)
}

func (sUC *schoolUC) GetSchool(ctx context.Context, id string) (*domain.School, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.schoolRepo.GetByID(ctx, id)
}

func (sUC *schoolUC) GetAllSchools(ctx context.Context, actor domain.Claims) (*[]domain.School, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	if actor.Role != domain.RoleSuperAdmin {
		return nil, fmt.Errorf("only a super admin can list all schools")
	}

	return sUC.schoolRepo.GetAll(ctx)
}
