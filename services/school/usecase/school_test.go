package usecase

import (
	"context"
	"edusphere/domain"
	"edusphere/storage/inmem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSchoolUC(t *testing.T) domain.SchoolUseCase {
	t.Helper()
	return NewSchoolUseCase(inmem.NewSchoolStore(), 5*time.Second)
}

func TestCreateSchool(t *testing.T) {
	uc := setupSchoolUC(t)
	ctx := context.Background()

	school := &domain.School{
		Name:  "Greenfield High",
		Email: "office@greenfield.example.com",
	}
	require.NoError(t, uc.CreateSchool(ctx, superAdminClaims(), school))
	assert.NotEmpty(t, school.ID)

	got, err := uc.GetSchool(ctx, school.ID)
	require.NoError(t, err)
	assert.Equal(t, "Greenfield High", got.Name)
}

func TestCreateSchoolEmailOptional(t *testing.T) {
	uc := setupSchoolUC(t)
	ctx := context.Background()

	noEmail := &domain.School{Name: "Riverside Academy"}
	assert.NoError(t, uc.CreateSchool(ctx, superAdminClaims(), noEmail))

	badEmail := &domain.School{Name: "Hillside School", Email: "not-an-email"}
	assert.Error(t, uc.CreateSchool(ctx, superAdminClaims(), badEmail))
}

func TestCreateSchoolSuperAdminOnly(t *testing.T) {
	uc := setupSchoolUC(t)
	ctx := context.Background()

	err := uc.CreateSchool(ctx, principalReviewer(), &domain.School{Name: "Rogue School"})
	assert.Error(t, err)

	_, err = uc.GetAllSchools(ctx, principalReviewer())
	assert.Error(t, err)

	schools, err := uc.GetAllSchools(ctx, superAdminClaims())
	require.NoError(t, err)
	assert.Empty(t, *schools)
}
