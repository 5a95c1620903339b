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

const holidayTestSchool = "school-1"

type holidayTestEnv struct {
	holidayUC    domain.HolidayUseCase
	notifUC      domain.NotificationUseCase
	holidayStore *inmem.HolidayStore
}

// setupHolidayEnv seeds one school with a principal, a teacher, a student
// and a super admin. The super admin belongs to the school but must never
// receive holiday fan-outs.
func setupHolidayEnv(t *testing.T) holidayTestEnv {
	t.Helper()

	schoolID := holidayTestSchool
	userStore := inmem.NewUserStore()
	seed := []domain.User{
		{ID: "p1", Name: "Priya", Email: "priya@example.com", Role: domain.RolePrincipal, SchoolID: &schoolID},
		{ID: "t1", Name: "Tomas", Email: "tomas@example.com", Role: domain.RoleTeacher, SchoolID: &schoolID},
		{ID: "s1", Name: "Sana", Email: "sana@example.com", Role: domain.RoleStudent, SchoolID: &schoolID},
		{ID: "sa1", Name: "Root", Email: "root@example.com", Role: domain.RoleSuperAdmin, SchoolID: &schoolID},
	}
	for i := range seed {
		require.NoError(t, userStore.CreateUser(context.Background(), &seed[i]))
	}

	notifUC := NewNotificationUseCase(inmem.NewNotificationStore(), 5*time.Second)
	userUC := NewUserUseCase(userStore, inmem.NewSchoolStore(), notifUC, 5*time.Second)
	holidayStore := inmem.NewHolidayStore()

	return holidayTestEnv{
		holidayUC:    NewHolidayUseCase(holidayStore, userUC, notifUC, 5*time.Second),
		notifUC:      notifUC,
		holidayStore: holidayStore,
	}
}

func principalClaims() domain.Claims {
	schoolID := holidayTestSchool
	return domain.Claims{UserID: "p1", Role: domain.RolePrincipal, SchoolID: &schoolID}
}

// titlesFor collects the notification titles a user has received. Fan-out
// order across recipients is not guaranteed, so assertions compare per-user
// title sets rather than global ordering.
func titlesFor(t *testing.T, notifUC domain.NotificationUseCase, userID string) map[string]int {
	t.Helper()

	notifications, err := notifUC.GetByRecipient(context.Background(), userID)
	require.NoError(t, err)

	titles := map[string]int{}
	for _, n := range *notifications {
		titles[n.Title]++
	}
	return titles
}

func TestCreateHolidayFansOutToSchool(t *testing.T) {
	env := setupHolidayEnv(t)
	ctx := context.Background()

	holiday := &domain.Holiday{
		SchoolID:    holidayTestSchool,
		Title:       "Diwali",
		Description: "School closed for the festival.",
		Date:        time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC),
		Type:        domain.HolidayTypeReligious,
	}
	require.NoError(t, env.holidayUC.CreateHoliday(ctx, principalClaims(), holiday))
	assert.NotEmpty(t, holiday.ID)
	assert.Equal(t, "p1", holiday.CreatedBy)
	assert.True(t, holiday.NotificationSent)

	stored, err := env.holidayStore.GetByID(ctx, holiday.ID)
	require.NoError(t, err)
	assert.True(t, stored.NotificationSent)

	for _, userID := range []string{"p1", "t1", "s1"} {
		titles := titlesFor(t, env.notifUC, userID)
		assert.Equal(t, 1, titles["Holiday Announced: Diwali"], "user %s", userID)
	}
	assert.Empty(t, titlesFor(t, env.notifUC, "sa1"), "super admin must not be notified")

	notifications, err := env.notifUC.GetByRecipient(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, *notifications, 1)
	assert.Equal(t, domain.CategoryInfo, (*notifications)[0].Category)
	assert.Equal(t, "Religious Holiday on 08/11/2026. School closed for the festival.", (*notifications)[0].Message)
}

func TestCreateHolidayRequiresTitleAndDate(t *testing.T) {
	env := setupHolidayEnv(t)

	err := env.holidayUC.CreateHoliday(context.Background(), principalClaims(), &domain.Holiday{
		SchoolID: holidayTestSchool,
		Type:     domain.HolidayTypeSchool,
		Date:     time.Now(),
	})
	assert.Error(t, err)

	err = env.holidayUC.CreateHoliday(context.Background(), principalClaims(), &domain.Holiday{
		SchoolID: holidayTestSchool,
		Title:    "Founders Day",
		Type:     domain.HolidayTypeSchool,
	})
	assert.Error(t, err)
}

func TestUpdateHolidayFansOutOnlyOnRealChange(t *testing.T) {
	env := setupHolidayEnv(t)
	ctx := context.Background()

	holiday := &domain.Holiday{
		SchoolID: holidayTestSchool,
		Title:    "Sports Day",
		Date:     time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Type:     domain.HolidayTypeSchool,
	}
	require.NoError(t, env.holidayUC.CreateHoliday(ctx, principalClaims(), holiday))

	// editing only the description is not worth a second fan-out
	unchanged := *holiday
	unchanged.Description = "Track events all morning."
	require.NoError(t, env.holidayUC.UpdateHoliday(ctx, principalClaims(), &unchanged))

	titles := titlesFor(t, env.notifUC, "s1")
	assert.Equal(t, 0, titles["Holiday Updated: Sports Day"])

	moved := unchanged
	moved.Date = time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.holidayUC.UpdateHoliday(ctx, principalClaims(), &moved))

	for _, userID := range []string{"p1", "t1", "s1"} {
		titles := titlesFor(t, env.notifUC, userID)
		assert.Equal(t, 1, titles["Holiday Updated: Sports Day"], "user %s", userID)
	}
	assert.Empty(t, titlesFor(t, env.notifUC, "sa1"))

	stored, err := env.holidayStore.GetByID(ctx, holiday.ID)
	require.NoError(t, err)
	assert.True(t, stored.Date.Equal(moved.Date))
	assert.True(t, stored.NotificationSent, "update must not reset the sent flag")
}

func TestDeleteHolidayFansOutCancellation(t *testing.T) {
	env := setupHolidayEnv(t)
	ctx := context.Background()

	holiday := &domain.Holiday{
		SchoolID: holidayTestSchool,
		Title:    "Winter Break",
		Date:     time.Date(2026, 12, 21, 0, 0, 0, 0, time.UTC),
		Type:     domain.HolidayTypeSchool,
	}
	require.NoError(t, env.holidayUC.CreateHoliday(ctx, principalClaims(), holiday))
	require.NoError(t, env.holidayUC.DeleteHoliday(ctx, principalClaims(), holiday.ID))

	_, err := env.holidayStore.GetByID(ctx, holiday.ID)
	assert.Error(t, err)

	// the cancellation reaches exactly the recipients of the announcement
	for _, userID := range []string{"p1", "t1", "s1"} {
		titles := titlesFor(t, env.notifUC, userID)
		assert.Equal(t, 1, titles["Holiday Announced: Winter Break"], "user %s", userID)
		assert.Equal(t, 1, titles["Holiday Cancelled: Winter Break"], "user %s", userID)
	}
	assert.Empty(t, titlesFor(t, env.notifUC, "sa1"))

	notifications, err := env.notifUC.GetByRecipient(ctx, "t1")
	require.NoError(t, err)
	for _, n := range *notifications {
		if n.Title == "Holiday Cancelled: Winter Break" {
			assert.Equal(t, domain.CategoryError, n.Category)
			assert.Contains(t, n.Message, "21/12/2026")
		}
	}
}

func TestResendNotifications(t *testing.T) {
	env := setupHolidayEnv(t)
	ctx := context.Background()

	holiday := &domain.Holiday{
		ID:       "h-unsent",
		SchoolID: holidayTestSchool,
		Title:    "Eid",
		Date:     time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Type:     domain.HolidayTypeReligious,
	}
	require.NoError(t, env.holidayStore.Insert(ctx, holiday))

	require.NoError(t, env.holidayUC.ResendNotifications(ctx, principalClaims(), "h-unsent"))

	titles := titlesFor(t, env.notifUC, "s1")
	assert.Equal(t, 1, titles["Holiday Announced: Eid"])

	stored, err := env.holidayStore.GetByID(ctx, "h-unsent")
	require.NoError(t, err)
	assert.True(t, stored.NotificationSent)

	// the flag guards against double delivery
	err = env.holidayUC.ResendNotifications(ctx, principalClaims(), "h-unsent")
	assert.Error(t, err)
	assert.Equal(t, 1, titlesFor(t, env.notifUC, "s1")["Holiday Announced: Eid"])
}

func TestGetSchoolHolidaysSortedByDate(t *testing.T) {
	env := setupHolidayEnv(t)
	ctx := context.Background()

	later := &domain.Holiday{
		SchoolID: holidayTestSchool, Title: "Summer Break",
		Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Type: domain.HolidayTypeSchool,
	}
	earlier := &domain.Holiday{
		SchoolID: holidayTestSchool, Title: "Republic Day",
		Date: time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC), Type: domain.HolidayTypeNational,
	}
	require.NoError(t, env.holidayUC.CreateHoliday(ctx, principalClaims(), later))
	require.NoError(t, env.holidayUC.CreateHoliday(ctx, principalClaims(), earlier))

	holidays, err := env.holidayUC.GetSchoolHolidays(ctx, holidayTestSchool)
	require.NoError(t, err)
	require.Len(t, *holidays, 2)
	assert.Equal(t, "Republic Day", (*holidays)[0].Title)
	assert.Equal(t, "Summer Break", (*holidays)[1].Title)
}
