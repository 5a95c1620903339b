package repository

import (
	"context"
	"edusphere/domain"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(database *pgxpool.Pool) domain.NotificationRepo {
	return &notificationRepository{
		db: database,
	}
}

func (nr *notificationRepository) Insert(ctx context.Context, notification *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_user_id, title, message, category, read, created_at, action_reference, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := nr.db.Exec(ctx, query,
		notification.ID, notification.RecipientUserID, notification.Title, notification.Message,
		notification.Category, notification.Read, notification.CreatedAt, notification.ActionReference, notification.Metadata)
	if err != nil {
		return fmt.Errorf("could not insert notification: %v", err)
	}

	return nil
}

func (nr *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `
		SELECT id, recipient_user_id, title, message, category, read, created_at, action_reference, metadata
		FROM notifications
		WHERE id = $1;
	`

	var n domain.Notification
	err := nr.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.RecipientUserID, &n.Title, &n.Message, &n.Category, &n.Read, &n.CreatedAt, &n.ActionReference, &n.Metadata)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return nil, fmt.Errorf("notification not found")
		}
		return nil, fmt.Errorf("could not get notification: %v", err)
	}

	return &n, nil
}

func (nr *notificationRepository) GetByRecipient(ctx context.Context, recipientUserID string) (*[]domain.Notification, error) {
	query := `
		SELECT id, recipient_user_id, title, message, category, read, created_at, action_reference, metadata
		FROM notifications
		WHERE recipient_user_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := nr.db.Query(ctx, query, recipientUserID)
	if err != nil {
		return nil, fmt.Errorf("could not get notifications: %v", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.RecipientUserID, &n.Title, &n.Message, &n.Category, &n.Read, &n.CreatedAt, &n.ActionReference, &n.Metadata)
		if err != nil {
			return nil, fmt.Errorf("could not scan notification: %v", err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &notifications, nil
}

// GetByRecipientSince serves incremental refresh: only records created
// after the caller's last seen timestamp come back.
func (nr *notificationRepository) GetByRecipientSince(ctx context.Context, recipientUserID string, after time.Time) (*[]domain.Notification, error) {
	query := `
		SELECT id, recipient_user_id, title, message, category, read, created_at, action_reference, metadata
		FROM notifications
		WHERE recipient_user_id = $1 AND created_at > $2
		ORDER BY created_at DESC;
	`

	rows, err := nr.db.Query(ctx, query, recipientUserID, after)
	if err != nil {
		return nil, fmt.Errorf("could not get notifications: %v", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.RecipientUserID, &n.Title, &n.Message, &n.Category, &n.Read, &n.CreatedAt, &n.ActionReference, &n.Metadata)
		if err != nil {
			return nil, fmt.Errorf("could not scan notification: %v", err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &notifications, nil
}

func (nr *notificationRepository) CountUnread(ctx context.Context, recipientUserID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM notifications
		WHERE recipient_user_id = $1 AND read = FALSE;
	`

	var count int
	err := nr.db.QueryRow(ctx, query, recipientUserID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("could not count unread notifications: %v", err)
	}

	return count, nil
}

// MarkRead is a no-op when the id does not exist.
func (nr *notificationRepository) MarkRead(ctx context.Context, id string) error {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1;
	`

	_, err := nr.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not mark notification as read: %v", err)
	}

	return nil
}

func (nr *notificationRepository) MarkAllRead(ctx context.Context, recipientUserID string) error {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE recipient_user_id = $1 AND read = FALSE;
	`

	_, err := nr.db.Exec(ctx, query, recipientUserID)
	if err != nil {
		return fmt.Errorf("could not mark all notifications as read: %v", err)
	}

	return nil
}

func (nr *notificationRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1;
	`

	_, err := nr.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not delete notification: %v", err)
	}

	return nil
}

func (nr *notificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	query := `
		DELETE FROM notifications
		WHERE created_at <= $1;
	`

	tag, err := nr.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("could not delete old notifications: %v", err)
	}

	return int(tag.RowsAffected()), nil
}
