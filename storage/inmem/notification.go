// Package inmem provides map-backed implementations of the domain
// repositories, keyed by record id. Used by the usecase tests and as a
// local mode without Postgres.
package inmem

import (
	"context"
	"edusphere/domain"
	"fmt"
	"sort"
	"sync"
	"time"
)

type NotificationStore struct {
	mu      sync.RWMutex
	records map[string]domain.Notification
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{
		records: make(map[string]domain.Notification),
	}
}

var _ domain.NotificationRepo = (*NotificationStore)(nil)

func (s *NotificationStore) Insert(ctx context.Context, notification *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[notification.ID]; ok {
		return fmt.Errorf("notification already exists with ID: %s", notification.ID)
	}
	s.records[notification.ID] = *notification
	return nil
}

func (s *NotificationStore) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("notification not found")
	}
	return &n, nil
}

func (s *NotificationStore) GetByRecipient(ctx context.Context, recipientUserID string) (*[]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var notifications []domain.Notification
	for _, n := range s.records {
		if n.RecipientUserID == recipientUserID {
			notifications = append(notifications, n)
		}
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return &notifications, nil
}

func (s *NotificationStore) GetByRecipientSince(ctx context.Context, recipientUserID string, after time.Time) (*[]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var notifications []domain.Notification
	for _, n := range s.records {
		if n.RecipientUserID == recipientUserID && n.CreatedAt.After(after) {
			notifications = append(notifications, n)
		}
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return &notifications, nil
}

func (s *NotificationStore) CountUnread(ctx context.Context, recipientUserID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, n := range s.records {
		if n.RecipientUserID == recipientUserID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *NotificationStore) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.records[id]
	if !ok {
		return nil
	}
	n.Read = true
	s.records[id] = n
	return nil
}

func (s *NotificationStore) MarkAllRead(ctx context.Context, recipientUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, n := range s.records {
		if n.RecipientUserID == recipientUserID && !n.Read {
			n.Read = true
			s.records[id] = n
		}
	}
	return nil
}

func (s *NotificationStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)
	return nil
}

func (s *NotificationStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for id, n := range s.records {
		if !n.CreatedAt.After(cutoff) {
			delete(s.records, id)
			removed++
		}
	}
	return removed, nil
}
