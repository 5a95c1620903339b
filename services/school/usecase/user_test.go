package usecase

import (
	"context"
	"edusphere/domain"
	"edusphere/storage/inmem"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupUserUC(t *testing.T) (domain.UserUseCase, *inmem.UserStore, domain.NotificationUseCase) {
	t.Helper()
	userStore := inmem.NewUserStore()
	notifUC := NewNotificationUseCase(inmem.NewNotificationStore(), 5*time.Second)
	uc := NewUserUseCase(userStore, inmem.NewSchoolStore(), notifUC, 5*time.Second)
	return uc, userStore, notifUC
}

func superAdminClaims() domain.Claims {
	return domain.Claims{UserID: "root", Role: domain.RoleSuperAdmin}
}

func userPayload(email, role string, schoolID *string) *domain.CreateUserPayload {
	return &domain.CreateUserPayload{
		Name:     "Asha",
		Email:    email,
		Password: "initial-secret",
		Role:     role,
		SchoolID: schoolID,
	}
}

func TestCreateUserHashesPasswordAndWelcomes(t *testing.T) {
	uc, _, notifUC := setupUserUC(t)
	ctx := context.Background()

	schoolID := "school-1"
	user, err := uc.CreateUser(ctx, superAdminClaims(), userPayload("asha@example.com", domain.RoleStudent, &schoolID))
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.True(t, user.IsFirstLogin)
	assert.NotEqual(t, "initial-secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("initial-secret")))

	notifications, err := notifUC.GetByRecipient(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, *notifications, 1)
	assert.Equal(t, "Welcome to EduSphere, Asha!", (*notifications)[0].Title)
}

func TestCreateUserRoleGate(t *testing.T) {
	uc, _, _ := setupUserUC(t)
	ctx := context.Background()

	schoolID := "school-1"
	for _, role := range []string{domain.RoleTeacher, domain.RoleStudent} {
		actor := domain.Claims{UserID: "u1", Role: role, SchoolID: &schoolID}
		_, err := uc.CreateUser(ctx, actor, userPayload("new@example.com", domain.RoleStudent, &schoolID))
		assert.Error(t, err, "role %s must not create users", role)
	}
}

func TestPrincipalScopedToOwnSchool(t *testing.T) {
	uc, _, _ := setupUserUC(t)
	ctx := context.Background()

	own := "school-1"
	other := "school-2"
	principal := domain.Claims{UserID: "p1", Role: domain.RolePrincipal, SchoolID: &own}

	_, err := uc.CreateUser(ctx, principal, userPayload("a@example.com", domain.RoleStudent, &other))
	assert.Error(t, err)

	_, err = uc.CreateUser(ctx, principal, userPayload("b@example.com", domain.RoleStudent, nil))
	assert.Error(t, err)

	user, err := uc.CreateUser(ctx, principal, userPayload("c@example.com", domain.RoleStudent, &own))
	require.NoError(t, err)
	require.NotNil(t, user.SchoolID)
	assert.Equal(t, own, *user.SchoolID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	uc, _, _ := setupUserUC(t)
	ctx := context.Background()

	schoolID := "school-1"
	_, err := uc.CreateUser(ctx, superAdminClaims(), userPayload("dup@example.com", domain.RoleTeacher, &schoolID))
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, superAdminClaims(), userPayload("dup@example.com", domain.RoleStudent, &schoolID))
	assert.Error(t, err)
}

func TestCreateUserPayloadValidation(t *testing.T) {
	uc, _, _ := setupUserUC(t)
	ctx := context.Background()

	schoolID := "school-1"
	_, err := uc.CreateUser(ctx, superAdminClaims(), userPayload("not-an-email", domain.RoleStudent, &schoolID))
	assert.Error(t, err)

	_, err = uc.CreateUser(ctx, superAdminClaims(), userPayload("ok@example.com", "janitor", &schoolID))
	assert.Error(t, err)

	payload := userPayload("ok@example.com", domain.RoleStudent, &schoolID)
	payload.Password = ""
	_, err = uc.CreateUser(ctx, superAdminClaims(), payload)
	assert.Error(t, err)
}

func TestResolveNotificationRecipients(t *testing.T) {
	uc, userStore, _ := setupUserUC(t)
	ctx := context.Background()

	schoolID := "school-1"
	otherSchool := "school-2"
	seed := []domain.User{
		{ID: "t1", Name: "Tomas", Email: "t1@example.com", Role: domain.RoleTeacher, SchoolID: &schoolID},
		{ID: "s1", Name: "Sana", Email: "s1@example.com", Role: domain.RoleStudent, SchoolID: &schoolID},
		{ID: "sa1", Name: "Root", Email: "sa1@example.com", Role: domain.RoleSuperAdmin, SchoolID: &schoolID},
		{ID: "x1", Name: "Xav", Email: "x1@example.com", Role: domain.RoleStudent, SchoolID: &otherSchool},
		{ID: "g1", Name: "Gia", Email: "g1@example.com", Role: domain.RoleSuperAdmin},
	}
	for i := range seed {
		require.NoError(t, userStore.CreateUser(ctx, &seed[i]))
	}

	recipients, err := uc.ResolveNotificationRecipients(ctx, schoolID)
	require.NoError(t, err)

	sort.Strings(recipients)
	assert.Equal(t, []string{"s1", "t1"}, recipients)
}

func TestGetUser(t *testing.T) {
	uc, _, _ := setupUserUC(t)
	ctx := context.Background()

	schoolID := "school-1"
	created, err := uc.CreateUser(ctx, superAdminClaims(), userPayload("asha@example.com", domain.RoleStudent, &schoolID))
	require.NoError(t, err)

	user, err := uc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)

	_, err = uc.GetUser(ctx, "does-not-exist")
	assert.Error(t, err)
}

func TestRecordLogin(t *testing.T) {
	uc, userStore, _ := setupUserUC(t)
	ctx := context.Background()

	schoolID := "school-1"
	created, err := uc.CreateUser(ctx, superAdminClaims(), userPayload("asha@example.com", domain.RoleStudent, &schoolID))
	require.NoError(t, err)
	require.True(t, created.IsFirstLogin)

	at := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	require.NoError(t, userStore.RecordLogin(ctx, created.ID, at))

	user, err := uc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, user.IsFirstLogin)
	require.NotNil(t, user.LastLogin)
	assert.True(t, at.Equal(*user.LastLogin))
}

func TestGetSchoolStudents(t *testing.T) {
	uc, userStore, _ := setupUserUC(t)
	ctx := context.Background()

	schoolID := "school-1"
	seed := []domain.User{
		{ID: "t1", Name: "Tomas", Email: "t1@example.com", Role: domain.RoleTeacher, SchoolID: &schoolID},
		{ID: "s1", Name: "Sana", Email: "s1@example.com", Role: domain.RoleStudent, SchoolID: &schoolID},
	}
	for i := range seed {
		require.NoError(t, userStore.CreateUser(ctx, &seed[i]))
	}

	students, err := uc.GetSchoolStudents(ctx, schoolID)
	require.NoError(t, err)
	require.Len(t, *students, 1)
	assert.Equal(t, "s1", (*students)[0].ID)
}
