package usecase

import (
	"context"
	"edusphere/domain"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

type notificationUC struct {
	notifRepo domain.NotificationRepo
	TimeOut   time.Duration
}

func NewNotificationUseCase(repo domain.NotificationRepo, timeOut time.Duration) domain.NotificationUseCase {
	return &notificationUC{
		notifRepo: repo,
		TimeOut:   timeOut,
	}
}

func (nUC *notificationUC) CreateNotification(ctx context.Context, recipientUserID, title, message, category string, actionReference *string, metadata map[string]string) (*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	if recipientUserID == "" {
		return nil, fmt.Errorf("recipient user id is required")
	}

	notification := &domain.Notification{
		ID:              uuid.NewString(),
		RecipientUserID: recipientUserID,
		Title:           title,
		Message:         message,
		Category:        category,
		Read:            false,
		CreatedAt:       time.Now(),
		ActionReference: actionReference,
		Metadata:        metadata,
	}

	if _, err := govalidator.ValidateStruct(notification); err != nil {
		return nil, err
	}

	if err := nUC.notifRepo.Insert(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// CreateForMany fans one message out to every recipient, one record each.
// Recipients are written sequentially with no transaction around the set;
// a failure partway leaves the earlier recipients notified.
func (nUC *notificationUC) CreateForMany(ctx context.Context, recipientUserIDs []string, title, message, category string, metadata map[string]string) (*[]domain.Notification, error) {
	var created []domain.Notification
	for _, recipientUserID := range recipientUserIDs {
		notification, err := nUC.CreateNotification(ctx, recipientUserID, title, message, category, nil, metadata)
		if err != nil {
			return &created, fmt.Errorf("fan-out stopped at recipient %s: %v", recipientUserID, err)
		}
		created = append(created, *notification)
	}
	return &created, nil
}

func (nUC *notificationUC) NotifyAssignmentPosted(ctx context.Context, studentIDs []string, payload domain.AssignmentPosted) error {
	metadata := map[string]string{
		"assignment_id": payload.AssignmentID,
		"subject_name":  payload.SubjectName,
		"class_name":    payload.ClassName,
	}

	message := fmt.Sprintf("%s has been assigned for %s. Due: %s",
		payload.Title, payload.SubjectName, payload.DueDate.Format("02/01/2006"))

	_, err := nUC.CreateForMany(ctx, studentIDs, "New Assignment Posted", message, domain.CategoryAssignment, metadata)
	return err
}

// LetterGrade maps a score percentage to its report-card letter.
// Band floors are inclusive: 90 is an A+, 80 an A, 70 a B, 60 a C.
func LetterGrade(percentage int) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	default:
		return "D"
	}
}

func (nUC *notificationUC) NotifyGradePosted(ctx context.Context, studentID string, payload domain.GradePosted) error {
	if payload.MaxMarks <= 0 {
		return fmt.Errorf("max marks must be positive")
	}

	percentage := int(float64(payload.Marks)/float64(payload.MaxMarks)*100 + 0.5)
	grade := LetterGrade(percentage)

	message := fmt.Sprintf("Your %s grade for %s: %d/%d (%d%% - %s)",
		payload.ExamType, payload.SubjectName, payload.Marks, payload.MaxMarks, percentage, grade)

	actionReference := fmt.Sprintf("/grades/%s", payload.GradeID)
	metadata := map[string]string{
		"grade_id":     payload.GradeID,
		"subject_name": payload.SubjectName,
	}

	_, err := nUC.CreateNotification(ctx, studentID, "New Grade Posted", message, domain.CategoryGrade, &actionReference, metadata)
	return err
}

func (nUC *notificationUC) NotifyAttendanceMarked(ctx context.Context, studentID string, payload domain.AttendanceMarked) error {
	statusMessages := map[string]string{
		"present": "marked as present",
		"absent":  "marked as absent",
		"late":    "marked as late",
	}

	wording, ok := statusMessages[payload.Status]
	if !ok {
		return fmt.Errorf("invalid attendance status: %s", payload.Status)
	}

	message := fmt.Sprintf("Your attendance for %s has been %s in %s",
		payload.Date.Format("02/01/2006"), wording, payload.ClassName)

	metadata := map[string]string{
		"class_name": payload.ClassName,
	}

	_, err := nUC.CreateNotification(ctx, studentID, "Attendance Updated", message, domain.CategoryAttendance, nil, metadata)
	return err
}

func (nUC *notificationUC) NotifyNoticePublished(ctx context.Context, recipientUserIDs []string, payload domain.NoticePublished) error {
	if payload.Priority != "low" && payload.Priority != "medium" && payload.Priority != "high" {
		return fmt.Errorf("invalid notice priority: %s", payload.Priority)
	}

	title := fmt.Sprintf("New Notice: %s", payload.Title)
	message := fmt.Sprintf("A new %s priority notice has been posted.", payload.Priority)
	metadata := map[string]string{
		"notice_id": payload.NoticeID,
	}

	_, err := nUC.CreateForMany(ctx, recipientUserIDs, title, message, domain.CategoryNotice, metadata)
	return err
}

func (nUC *notificationUC) NotifyCertificateStatus(ctx context.Context, studentID, certificateType, status, certificateID string, rejectionReason *string) error {
	var message, category string

	switch status {
	case domain.CertificateStatusApproved:
		message = "Your certificate request has been approved and is being processed."
		category = domain.CategoryInfo
	case domain.CertificateStatusRejected:
		message = "Your certificate request has been rejected."
		if rejectionReason != nil && *rejectionReason != "" {
			message = fmt.Sprintf("Your certificate request has been rejected. Reason: %s", *rejectionReason)
		}
		category = domain.CategoryError
	case domain.CertificateStatusGenerated:
		message = "Your certificate is ready for download!"
		category = domain.CategorySuccess
	default:
		return fmt.Errorf("invalid certificate status: %s", status)
	}

	title := fmt.Sprintf("Certificate %s%s", strings.ToUpper(status[:1]), status[1:])
	actionReference := fmt.Sprintf("/certificates/%s", certificateID)
	metadata := map[string]string{
		"certificate_type": certificateType,
	}

	_, err := nUC.CreateNotification(ctx, studentID, title, message, category, &actionReference, metadata)
	return err
}

func (nUC *notificationUC) NotifyWelcome(ctx context.Context, userID, userName, role string) error {
	roleMessages := map[string]string{
		domain.RoleStudent:    "Welcome to EduSphere! You can now view your assignments, grades, and school notices.",
		domain.RoleTeacher:    "Welcome to EduSphere! You can now manage your classes, create assignments, and track student progress.",
		domain.RolePrincipal:  "Welcome to EduSphere! You have full access to manage your school, teachers, students, and notices.",
		domain.RoleSuperAdmin: "Welcome to EduSphere! You have administrative access to manage all schools and users.",
	}

	message, ok := roleMessages[role]
	if !ok {
		message = "Welcome to EduSphere!"
	}

	title := fmt.Sprintf("Welcome to EduSphere, %s!", userName)

	_, err := nUC.CreateNotification(ctx, userID, title, message, domain.CategorySuccess, nil, nil)
	return err
}

func (nUC *notificationUC) GetByRecipient(ctx context.Context, recipientUserID string) (*[]domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	return nUC.notifRepo.GetByRecipient(ctx, recipientUserID)
}

// GetByRecipientSince lets clients refresh incrementally instead of
// re-pulling the whole list on a fixed poll.
func (nUC *notificationUC) GetByRecipientSince(ctx context.Context, recipientUserID string, after time.Time) (*[]domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	return nUC.notifRepo.GetByRecipientSince(ctx, recipientUserID, after)
}

func (nUC *notificationUC) GetUnreadCount(ctx context.Context, recipientUserID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	return nUC.notifRepo.CountUnread(ctx, recipientUserID)
}

// MarkAsRead flips the read flag on one of the actor's own
// notifications. A missing id is a no-op; someone else's record is
// refused.
func (nUC *notificationUC) MarkAsRead(ctx context.Context, actor domain.Claims, id string) error {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	notification, err := nUC.notifRepo.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "notification not found" {
			return nil
		}
		return err
	}

	if notification.RecipientUserID != actor.UserID {
		return fmt.Errorf("notification belongs to another user")
	}

	return nUC.notifRepo.MarkRead(ctx, id)
}

func (nUC *notificationUC) MarkAllAsRead(ctx context.Context, recipientUserID string) error {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	return nUC.notifRepo.MarkAllRead(ctx, recipientUserID)
}

func (nUC *notificationUC) DeleteNotification(ctx context.Context, actor domain.Claims, id string) error {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	notification, err := nUC.notifRepo.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "notification not found" {
			return nil
		}
		return err
	}

	if notification.RecipientUserID != actor.UserID {
		return fmt.Errorf("notification belongs to another user")
	}

	return nUC.notifRepo.Delete(ctx, id)
}

// CleanupOldNotifications removes every record created daysToKeep days ago
// or earlier. A record sitting exactly on the boundary is removed.
func (nUC *notificationUC) CleanupOldNotifications(ctx context.Context, daysToKeep int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	if daysToKeep < 0 {
		return 0, fmt.Errorf("days to keep must not be negative")
	}

	cutoff := time.Now().AddDate(0, 0, -daysToKeep)
	return nUC.notifRepo.DeleteOlderThan(ctx, cutoff)
}
