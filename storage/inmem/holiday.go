package inmem

import (
	"context"
	"edusphere/domain"
	"fmt"
	"sort"
	"sync"
)

type HolidayStore struct {
	mu      sync.RWMutex
	records map[string]domain.Holiday
}

func NewHolidayStore() *HolidayStore {
	return &HolidayStore{
		records: make(map[string]domain.Holiday),
	}
}

var _ domain.HolidayRepo = (*HolidayStore)(nil)

func (s *HolidayStore) Insert(ctx context.Context, holiday *domain.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[holiday.ID]; ok {
		return fmt.Errorf("holiday already exists with ID: %s", holiday.ID)
	}
	s.records[holiday.ID] = *holiday
	return nil
}

func (s *HolidayStore) GetByID(ctx context.Context, id string) (*domain.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	holiday, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("holiday not found")
	}
	return &holiday, nil
}

func (s *HolidayStore) GetBySchool(ctx context.Context, schoolID string) (*[]domain.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var holidays []domain.Holiday
	for _, holiday := range s.records {
		if holiday.SchoolID == schoolID {
			holidays = append(holidays, holiday)
		}
	}

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	return &holidays, nil
}

func (s *HolidayStore) Update(ctx context.Context, holiday *domain.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[holiday.ID]
	if !ok {
		return fmt.Errorf("holiday not found")
	}

	// the flag is only ever written through SetNotificationSent
	holiday.NotificationSent = existing.NotificationSent
	s.records[holiday.ID] = *holiday
	return nil
}

func (s *HolidayStore) SetNotificationSent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	holiday, ok := s.records[id]
	if !ok {
		return fmt.Errorf("holiday not found")
	}
	holiday.NotificationSent = true
	s.records[id] = holiday
	return nil
}

func (s *HolidayStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)
	return nil
}
