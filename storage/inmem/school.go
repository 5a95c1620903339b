package inmem

import (
	"context"
	"edusphere/domain"
	"fmt"
	"sort"
	"sync"
)

type SchoolStore struct {
	mu      sync.RWMutex
	records map[string]domain.School
}

func NewSchoolStore() *SchoolStore {
	return &SchoolStore{
		records: make(map[string]domain.School),
	}
}

var _ domain.SchoolRepo = (*SchoolStore)(nil)

func (s *SchoolStore) Insert(ctx context.Context, school *domain.School) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[school.ID]; ok {
		return fmt.Errorf("school already exists with ID: %s", school.ID)
	}
	s.records[school.ID] = *school
	return nil
}

func (s *SchoolStore) GetByID(ctx context.Context, id string) (*domain.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	school, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("school not found")
	}
	return &school, nil
}

func (s *SchoolStore) GetAll(ctx context.Context) (*[]domain.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var schools []domain.School
	for _, school := range s.records {
		schools = append(schools, school)
	}

	sort.Slice(schools, func(i, j int) bool {
		return schools[i].CreatedAt.After(schools[j].CreatedAt)
	})

	return &schools, nil
}
