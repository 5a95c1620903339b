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

func setupNotifUC(t *testing.T) (domain.NotificationUseCase, *inmem.NotificationStore) {
	t.Helper()
	store := inmem.NewNotificationStore()
	return NewNotificationUseCase(store, 5*time.Second), store
}

func TestCreateNotificationAndUnreadCount(t *testing.T) {
	uc, _ := setupNotifUC(t)
	ctx := context.Background()

	n, err := uc.CreateNotification(ctx, "u1", "Hello", "A message", domain.CategoryInfo, nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.Read)
	assert.False(t, n.CreatedAt.IsZero())

	count, err := uc.GetUnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, uc.MarkAsRead(ctx, studentClaims("u1"), n.ID))
	count, err = uc.GetUnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// marking twice is idempotent, the count does not go negative
	require.NoError(t, uc.MarkAsRead(ctx, studentClaims("u1"), n.ID))
	count, err = uc.GetUnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMarkAsReadMissingIDIsNoOp(t *testing.T) {
	uc, _ := setupNotifUC(t)

	assert.NoError(t, uc.MarkAsRead(context.Background(), studentClaims("u1"), "does-not-exist"))
	assert.NoError(t, uc.DeleteNotification(context.Background(), studentClaims("u1"), "does-not-exist"))
}

func TestMarkAsReadAndDeleteRespectOwnership(t *testing.T) {
	uc, _ := setupNotifUC(t)
	ctx := context.Background()

	n, err := uc.CreateNotification(ctx, "alice", "Hello", "A message", domain.CategoryInfo, nil, nil)
	require.NoError(t, err)

	assert.Error(t, uc.MarkAsRead(ctx, studentClaims("bob"), n.ID))
	assert.Error(t, uc.DeleteNotification(ctx, studentClaims("bob"), n.ID))

	// the record is untouched and still unread for its owner
	count, err := uc.GetUnreadCount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, uc.MarkAsRead(ctx, studentClaims("alice"), n.ID))
	require.NoError(t, uc.DeleteNotification(ctx, studentClaims("alice"), n.ID))

	notifications, err := uc.GetByRecipient(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, *notifications)
}

func TestCreateForMany(t *testing.T) {
	uc, _ := setupNotifUC(t)
	ctx := context.Background()

	created, err := uc.CreateForMany(ctx, []string{"u1", "u2", "u3"}, "Title", "Body", domain.CategoryInfo, nil)
	require.NoError(t, err)
	require.Len(t, *created, 3)

	seen := map[string]bool{}
	for _, n := range *created {
		assert.False(t, seen[n.ID], "ids must be distinct")
		seen[n.ID] = true
		assert.Equal(t, "Title", n.Title)
		assert.Equal(t, "Body", n.Message)
		assert.Equal(t, domain.CategoryInfo, n.Category)
	}

	for _, recipient := range []string{"u1", "u2", "u3"} {
		count, err := uc.GetUnreadCount(ctx, recipient)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	}
}

func TestMarkAllAsRead(t *testing.T) {
	uc, _ := setupNotifUC(t)
	ctx := context.Background()

	_, err := uc.CreateForMany(ctx, []string{"u1", "u1", "u2"}, "T", "M", domain.CategoryNotice, nil)
	require.NoError(t, err)

	require.NoError(t, uc.MarkAllAsRead(ctx, "u1"))

	count, err := uc.GetUnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// the other recipient is untouched
	count, err = uc.GetUnreadCount(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLetterGradeBanding(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89, "A"},
		{80, "A"},
		{79, "B"},
		{70, "B"},
		{69, "C"},
		{60, "C"},
		{59, "D"},
		{0, "D"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterGrade(tt.percentage), "percentage %d", tt.percentage)
	}
}

func TestNotifyGradePostedMessage(t *testing.T) {
	uc, _ := setupNotifUC(t)
	ctx := context.Background()

	err := uc.NotifyGradePosted(ctx, "s1", domain.GradePosted{
		GradeID:     "g1",
		SubjectName: "Mathematics",
		ExamType:    "midterm",
		Marks:       80,
		MaxMarks:    100,
	})
	require.NoError(t, err)

	notifications, err := uc.GetByRecipient(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, *notifications, 1)

	n := (*notifications)[0]
	assert.Equal(t, domain.CategoryGrade, n.Category)
	assert.Equal(t, "New Grade Posted", n.Title)
	assert.Equal(t, "Your midterm grade for Mathematics: 80/100 (80% - A)", n.Message)
	require.NotNil(t, n.ActionReference)
	assert.Equal(t, "/grades/g1", *n.ActionReference)
}

func TestNotifyGradePostedInvalidMaxMarks(t *testing.T) {
	uc, _ := setupNotifUC(t)

	err := uc.NotifyGradePosted(context.Background(), "s1", domain.GradePosted{MaxMarks: 0})
	assert.Error(t, err)
}

func TestNotifyAttendanceMarked(t *testing.T) {
	uc, _ := setupNotifUC(t)
	ctx := context.Background()

	err := uc.NotifyAttendanceMarked(ctx, "s1", domain.AttendanceMarked{
		Date:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Status:    "absent",
		ClassName: "10-A",
	})
	require.NoError(t, err)

	notifications, err := uc.GetByRecipient(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, *notifications, 1)
	assert.Equal(t, "Your attendance for 09/03/2026 has been marked as absent in 10-A", (*notifications)[0].Message)

	err = uc.NotifyAttendanceMarked(ctx, "s1", domain.AttendanceMarked{Status: "vanished"})
	assert.Error(t, err)
}

func TestNotifyNoticePublished(t *testing.T) {
	uc, _ := setupNotifUC(t)
	ctx := context.Background()

	err := uc.NotifyNoticePublished(ctx, []string{"u1", "u2"}, domain.NoticePublished{
		NoticeID: "nt1",
		Title:    "Exam Schedule",
		Priority: "high",
	})
	require.NoError(t, err)

	notifications, err := uc.GetByRecipient(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, *notifications, 1)
	assert.Equal(t, "New Notice: Exam Schedule", (*notifications)[0].Title)
	assert.Equal(t, domain.CategoryNotice, (*notifications)[0].Category)
	assert.Contains(t, (*notifications)[0].Message, "high priority")

	err = uc.NotifyNoticePublished(ctx, []string{"u1"}, domain.NoticePublished{Priority: "urgent"})
	assert.Error(t, err)
}

func TestNotifyCertificateStatusCategories(t *testing.T) {
	uc, _ := setupNotifUC(t)
	ctx := context.Background()

	reason := "missing documents"
	tests := []struct {
		status       string
		reason       *string
		wantCategory string
	}{
		{domain.CertificateStatusApproved, nil, domain.CategoryInfo},
		{domain.CertificateStatusRejected, &reason, domain.CategoryError},
		{domain.CertificateStatusGenerated, nil, domain.CategorySuccess},
	}

	for i, tt := range tests {
		recipient := string(rune('a' + i))
		err := uc.NotifyCertificateStatus(ctx, recipient, "bonafide", tt.status, "c1", tt.reason)
		require.NoError(t, err)

		notifications, err := uc.GetByRecipient(ctx, recipient)
		require.NoError(t, err)
		require.Len(t, *notifications, 1)
		assert.Equal(t, tt.wantCategory, (*notifications)[0].Category)
	}

	assert.Error(t, uc.NotifyCertificateStatus(ctx, "x", "bonafide", "pending", "c1", nil))
}

func TestNotifyWelcomePerRole(t *testing.T) {
	uc, _ := setupNotifUC(t)
	ctx := context.Background()

	require.NoError(t, uc.NotifyWelcome(ctx, "u1", "Alice", domain.RoleStudent))

	notifications, err := uc.GetByRecipient(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, *notifications, 1)
	assert.Equal(t, "Welcome to EduSphere, Alice!", (*notifications)[0].Title)
	assert.Equal(t, domain.CategorySuccess, (*notifications)[0].Category)
	assert.Contains(t, (*notifications)[0].Message, "assignments")
}

func TestCleanupOldNotificationsBoundary(t *testing.T) {
	store := inmem.NewNotificationStore()
	uc := NewNotificationUseCase(store, 5*time.Second)
	ctx := context.Background()

	now := time.Now()
	old := domain.Notification{
		ID: "old", RecipientUserID: "u1", Title: "t", Message: "m",
		Category: domain.CategoryInfo, CreatedAt: now.AddDate(0, 0, -31),
	}
	fresh := domain.Notification{
		ID: "fresh", RecipientUserID: "u1", Title: "t", Message: "m",
		Category: domain.CategoryInfo, CreatedAt: now.AddDate(0, 0, -1),
	}
	require.NoError(t, store.Insert(ctx, &old))
	require.NoError(t, store.Insert(ctx, &fresh))

	removed, err := uc.CleanupOldNotifications(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	notifications, err := uc.GetByRecipient(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, *notifications, 1)
	assert.Equal(t, "fresh", (*notifications)[0].ID)
}

func TestCleanupExactBoundaryIsRemoved(t *testing.T) {
	store := inmem.NewNotificationStore()
	ctx := context.Background()

	cutoff := time.Now().AddDate(0, 0, -30)
	boundary := domain.Notification{
		ID: "boundary", RecipientUserID: "u1", Title: "t", Message: "m",
		Category: domain.CategoryInfo, CreatedAt: cutoff,
	}
	require.NoError(t, store.Insert(ctx, &boundary))

	removed, err := store.DeleteOlderThan(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestGetByRecipientSince(t *testing.T) {
	store := inmem.NewNotificationStore()
	uc := NewNotificationUseCase(store, 5*time.Second)
	ctx := context.Background()

	now := time.Now()
	earlier := domain.Notification{
		ID: "n1", RecipientUserID: "u1", Title: "t", Message: "m",
		Category: domain.CategoryInfo, CreatedAt: now.Add(-2 * time.Hour),
	}
	later := domain.Notification{
		ID: "n2", RecipientUserID: "u1", Title: "t", Message: "m",
		Category: domain.CategoryInfo, CreatedAt: now,
	}
	require.NoError(t, store.Insert(ctx, &earlier))
	require.NoError(t, store.Insert(ctx, &later))

	notifications, err := uc.GetByRecipientSince(ctx, "u1", now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, *notifications, 1)
	assert.Equal(t, "n2", (*notifications)[0].ID)

	// a cursor at the newest record returns nothing new
	notifications, err = uc.GetByRecipientSince(ctx, "u1", now)
	require.NoError(t, err)
	assert.Empty(t, *notifications)
}

func TestCleanupNegativeDaysRejected(t *testing.T) {
	uc, _ := setupNotifUC(t)

	_, err := uc.CleanupOldNotifications(context.Background(), -1)
	assert.Error(t, err)
}

func TestCreateNotificationValidation(t *testing.T) {
	uc, _ := setupNotifUC(t)
	ctx := context.Background()

	_, err := uc.CreateNotification(ctx, "", "t", "m", domain.CategoryInfo, nil, nil)
	assert.Error(t, err)

	_, err = uc.CreateNotification(ctx, "u1", "", "m", domain.CategoryInfo, nil, nil)
	assert.Error(t, err)

	_, err = uc.CreateNotification(ctx, "u1", "t", "m", "shouting", nil, nil)
	assert.Error(t, err)

	// nothing was persisted by the rejected creates
	count, err := uc.GetUnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
