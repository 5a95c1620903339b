package domain

import (
	"context"
	"time"
)

const (
	CategoryInfo       = "info"
	CategorySuccess    = "success"
	CategoryWarning    = "warning"
	CategoryError      = "error"
	CategoryAssignment = "assignment"
	CategoryGrade      = "grade"
	CategoryAttendance = "attendance"
	CategoryNotice     = "notice"
)

type Notification struct {
	ID              string            `json:"id"`
	RecipientUserID string            `json:"recipient_user_id"`
	Title           string            `json:"title" valid:"required~Title is required"`
	Message         string            `json:"message" valid:"required~Message is required"`
	Category        string            `json:"category" valid:"required~Category is required,in(info|success|warning|error|assignment|grade|attendance|notice)~Invalid category"`
	Read            bool              `json:"read"`
	CreatedAt       time.Time         `json:"created_at"`
	ActionReference *string           `json:"action_reference,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type AssignmentPosted struct {
	AssignmentID string    `json:"assignment_id"`
	Title        string    `json:"title"`
	SubjectName  string    `json:"subject_name"`
	ClassName    string    `json:"class_name"`
	DueDate      time.Time `json:"due_date"`
}

type GradePosted struct {
	GradeID     string `json:"grade_id"`
	SubjectName string `json:"subject_name"`
	ExamType    string `json:"exam_type"`
	Marks       int    `json:"marks"`
	MaxMarks    int    `json:"max_marks"`
}

type AttendanceMarked struct {
	Date      time.Time `json:"date"`
	Status    string    `json:"status" valid:"in(present|absent|late)~Invalid attendance status"`
	ClassName string    `json:"class_name"`
}

type NoticePublished struct {
	NoticeID string `json:"notice_id"`
	Title    string `json:"title"`
	Priority string `json:"priority" valid:"in(low|medium|high)~Invalid priority"`
}

type NotificationRepo interface {
	Insert(ctx context.Context, notification *Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)
	GetByRecipient(ctx context.Context, recipientUserID string) (*[]Notification, error)
	GetByRecipientSince(ctx context.Context, recipientUserID string, after time.Time) (*[]Notification, error)
	CountUnread(ctx context.Context, recipientUserID string) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, recipientUserID string) error
	Delete(ctx context.Context, id string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type NotificationUseCase interface {
	CreateNotification(ctx context.Context, recipientUserID, title, message, category string, actionReference *string, metadata map[string]string) (*Notification, error)
	CreateForMany(ctx context.Context, recipientUserIDs []string, title, message, category string, metadata map[string]string) (*[]Notification, error)
	NotifyAssignmentPosted(ctx context.Context, studentIDs []string, payload AssignmentPosted) error
	NotifyGradePosted(ctx context.Context, studentID string, payload GradePosted) error
	NotifyAttendanceMarked(ctx context.Context, studentID string, payload AttendanceMarked) error
	NotifyNoticePublished(ctx context.Context, recipientUserIDs []string, payload NoticePublished) error
	NotifyCertificateStatus(ctx context.Context, studentID, certificateType, status, certificateID string, rejectionReason *string) error
	NotifyWelcome(ctx context.Context, userID, userName, role string) error
	GetByRecipient(ctx context.Context, recipientUserID string) (*[]Notification, error)
	GetByRecipientSince(ctx context.Context, recipientUserID string, after time.Time) (*[]Notification, error)
	GetUnreadCount(ctx context.Context, recipientUserID string) (int, error)
	MarkAsRead(ctx context.Context, actor Claims, id string) error
	MarkAllAsRead(ctx context.Context, recipientUserID string) error
	DeleteNotification(ctx context.Context, actor Claims, id string) error
	CleanupOldNotifications(ctx context.Context, daysToKeep int) (int, error)
}
