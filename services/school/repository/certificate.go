package repository

import (
	"context"
	"edusphere/domain"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type certificateRepository struct {
	db *pgxpool.Pool
}

func NewCertificateRepository(database *pgxpool.Pool) domain.CertificateRepo {
	return &certificateRepository{
		db: database,
	}
}

func (cr *certificateRepository) Insert(ctx context.Context, request *domain.CertificateRequest) error {
	query := `
		INSERT INTO certificate_requests (id, student_id, school_id, certificate_type, purpose, additional_details, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := cr.db.Exec(ctx, query,
		request.ID, request.StudentID, request.SchoolID, request.CertificateType,
		request.Purpose, request.AdditionalDetails, request.Status, request.RequestedAt)
	if err != nil {
		return fmt.Errorf("could not insert certificate request: %v", err)
	}

	return nil
}

func (cr *certificateRepository) GetByID(ctx context.Context, id string) (*domain.CertificateRequest, error) {
	query := `
		SELECT id, student_id, school_id, certificate_type, purpose, additional_details, status, requested_at, reviewed_at, reviewed_by, rejection_reason, certificate_number
		FROM certificate_requests
		WHERE id = $1;
	`

	var request domain.CertificateRequest
	err := cr.db.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.StudentID, &request.SchoolID, &request.CertificateType,
		&request.Purpose, &request.AdditionalDetails, &request.Status, &request.RequestedAt,
		&request.ReviewedAt, &request.ReviewedBy, &request.RejectionReason, &request.CertificateNumber)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return nil, fmt.Errorf("certificate request not found")
		}
		return nil, fmt.Errorf("could not get certificate request: %v", err)
	}

	return &request, nil
}

func (cr *certificateRepository) GetBySchool(ctx context.Context, schoolID string) (*[]domain.CertificateRequest, error) {
	query := `
		SELECT id, student_id, school_id, certificate_type, purpose, additional_details, status, requested_at, reviewed_at, reviewed_by, rejection_reason, certificate_number
		FROM certificate_requests
		WHERE school_id = $1
		ORDER BY requested_at DESC;
	`

	return cr.queryRequests(ctx, query, schoolID)
}

func (cr *certificateRepository) GetByStudent(ctx context.Context, studentID string) (*[]domain.CertificateRequest, error) {
	query := `
		SELECT id, student_id, school_id, certificate_type, purpose, additional_details, status, requested_at, reviewed_at, reviewed_by, rejection_reason, certificate_number
		FROM certificate_requests
		WHERE student_id = $1
		ORDER BY requested_at DESC;
	`

	return cr.queryRequests(ctx, query, studentID)
}

func (cr *certificateRepository) queryRequests(ctx context.Context, query string, arg interface{}) (*[]domain.CertificateRequest, error) {
	rows, err := cr.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("could not get certificate requests: %v", err)
	}
	defer rows.Close()

	var requests []domain.CertificateRequest
	for rows.Next() {
		var request domain.CertificateRequest
		err := rows.Scan(&request.ID, &request.StudentID, &request.SchoolID, &request.CertificateType,
			&request.Purpose, &request.AdditionalDetails, &request.Status, &request.RequestedAt,
			&request.ReviewedAt, &request.ReviewedBy, &request.RejectionReason, &request.CertificateNumber)
		if err != nil {
			return nil, fmt.Errorf("could not scan certificate request: %v", err)
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &requests, nil
}

func (cr *certificateRepository) Update(ctx context.Context, request *domain.CertificateRequest) error {
	query := `
		UPDATE certificate_requests
		SET status = $1, reviewed_at = $2, reviewed_by = $3, rejection_reason = $4, certificate_number = $5
		WHERE id = $6;
	`

	_, err := cr.db.Exec(ctx, query,
		request.Status, request.ReviewedAt, request.ReviewedBy, request.RejectionReason, request.CertificateNumber, request.ID)
	if err != nil {
		return fmt.Errorf("could not update certificate request: %v", err)
	}

	return nil
}

func (cr *certificateRepository) CountGeneratedInYear(ctx context.Context, schoolID string, year int) (int, error) {
	query := `
		SELECT COUNT(*) FROM certificate_requests
		WHERE school_id = $1 AND status = 'generated' AND EXTRACT(YEAR FROM reviewed_at) = $2;
	`

	var count int
	err := cr.db.QueryRow(ctx, query, schoolID, year).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("could not count generated certificates: %v", err)
	}

	return count, nil
}
