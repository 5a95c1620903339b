package inmem

import (
	"context"
	"edusphere/domain"
	"fmt"
	"sort"
	"sync"
)

type FeeStore struct {
	mu      sync.RWMutex
	records map[string]domain.Fee
}

func NewFeeStore() *FeeStore {
	return &FeeStore{
		records: make(map[string]domain.Fee),
	}
}

var _ domain.FeeRepo = (*FeeStore)(nil)

func (s *FeeStore) Insert(ctx context.Context, fee *domain.Fee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[fee.ID]; ok {
		return fmt.Errorf("fee already exists with ID: %s", fee.ID)
	}
	s.records[fee.ID] = *fee
	return nil
}

func (s *FeeStore) GetByID(ctx context.Context, id string) (*domain.Fee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fee, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("fee not found")
	}
	return &fee, nil
}

func (s *FeeStore) GetBySchool(ctx context.Context, schoolID string) (*[]domain.Fee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var fees []domain.Fee
	for _, fee := range s.records {
		if fee.SchoolID == schoolID {
			fees = append(fees, fee)
		}
	}

	sort.Slice(fees, func(i, j int) bool {
		return fees[i].CreatedAt.After(fees[j].CreatedAt)
	})

	return &fees, nil
}

func (s *FeeStore) GetByStudent(ctx context.Context, studentID string) (*[]domain.Fee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var fees []domain.Fee
	for _, fee := range s.records {
		if fee.StudentID == studentID {
			fees = append(fees, fee)
		}
	}

	sort.Slice(fees, func(i, j int) bool {
		return fees[i].CreatedAt.After(fees[j].CreatedAt)
	})

	return &fees, nil
}

func (s *FeeStore) Update(ctx context.Context, fee *domain.Fee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[fee.ID]; !ok {
		return fmt.Errorf("fee not found")
	}
	s.records[fee.ID] = *fee
	return nil
}

func (s *FeeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)
	return nil
}
