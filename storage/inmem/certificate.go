package inmem

import (
	"context"
	"edusphere/domain"
	"fmt"
	"sort"
	"sync"
)

type CertificateStore struct {
	mu      sync.RWMutex
	records map[string]domain.CertificateRequest
}

func NewCertificateStore() *CertificateStore {
	return &CertificateStore{
		records: make(map[string]domain.CertificateRequest),
	}
}

var _ domain.CertificateRepo = (*CertificateStore)(nil)

func (s *CertificateStore) Insert(ctx context.Context, request *domain.CertificateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[request.ID]; ok {
		return fmt.Errorf("certificate request already exists with ID: %s", request.ID)
	}
	s.records[request.ID] = *request
	return nil
}

func (s *CertificateStore) GetByID(ctx context.Context, id string) (*domain.CertificateRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("certificate request not found")
	}
	return &request, nil
}

func (s *CertificateStore) GetBySchool(ctx context.Context, schoolID string) (*[]domain.CertificateRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var requests []domain.CertificateRequest
	for _, request := range s.records {
		if request.SchoolID == schoolID {
			requests = append(requests, request)
		}
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].RequestedAt.After(requests[j].RequestedAt)
	})

	return &requests, nil
}

func (s *CertificateStore) GetByStudent(ctx context.Context, studentID string) (*[]domain.CertificateRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var requests []domain.CertificateRequest
	for _, request := range s.records {
		if request.StudentID == studentID {
			requests = append(requests, request)
		}
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].RequestedAt.After(requests[j].RequestedAt)
	})

	return &requests, nil
}

func (s *CertificateStore) Update(ctx context.Context, request *domain.CertificateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[request.ID]; !ok {
		return fmt.Errorf("certificate request not found")
	}
	s.records[request.ID] = *request
	return nil
}

func (s *CertificateStore) CountGeneratedInYear(ctx context.Context, schoolID string, year int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, request := range s.records {
		if request.SchoolID != schoolID || request.Status != domain.CertificateStatusGenerated {
			continue
		}
		if request.ReviewedAt != nil && request.ReviewedAt.Year() == year {
			count++
		}
	}
	return count, nil
}
