package inmem

import (
	"context"
	"edusphere/domain"
	"fmt"
	"sync"
	"time"
)

type UserStore struct {
	mu      sync.RWMutex
	records map[string]domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		records: make(map[string]domain.User),
	}
}

var _ domain.UserRepo = (*UserStore)(nil)

func (s *UserStore) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.Email == user.Email {
			return fmt.Errorf("user already exists with ID: %s", existing.ID)
		}
	}
	s.records[user.ID] = *user
	return nil
}

func (s *UserStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return &user, nil
}

func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.records {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, fmt.Errorf("could not find user: no rows in result set")
}

func (s *UserStore) GetSchoolUsers(ctx context.Context, schoolID string) (*[]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []domain.User
	for _, user := range s.records {
		if user.SchoolID != nil && *user.SchoolID == schoolID {
			users = append(users, user)
		}
	}
	return &users, nil
}

func (s *UserStore) GetSchoolUsersByRole(ctx context.Context, schoolID, role string) (*[]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []domain.User
	for _, user := range s.records {
		if user.SchoolID != nil && *user.SchoolID == schoolID && user.Role == role {
			users = append(users, user)
		}
	}
	return &users, nil
}

func (s *UserStore) RecordLogin(ctx context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.records[id]
	if !ok {
		return nil
	}
	user.LastLogin = &at
	user.IsFirstLogin = false
	s.records[id] = user
	return nil
}
