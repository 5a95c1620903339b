package repository

import (
	"context"
	"edusphere/domain"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type feeRepository struct {
	db *pgxpool.Pool
}

func NewFeeRepository(database *pgxpool.Pool) domain.FeeRepo {
	return &feeRepository{
		db: database,
	}
}

func (fr *feeRepository) Insert(ctx context.Context, fee *domain.Fee) error {
	query := `
		INSERT INTO fees (id, student_id, school_id, amount, due_date, status, paid_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := fr.db.Exec(ctx, query,
		fee.ID, fee.StudentID, fee.SchoolID, fee.Amount, fee.DueDate, fee.Status, fee.PaidDate, fee.Description, fee.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert fee: %v", err)
	}

	return nil
}

func (fr *feeRepository) GetByID(ctx context.Context, id string) (*domain.Fee, error) {
	query := `
		SELECT id, student_id, school_id, amount, due_date, status, paid_date, description, created_at
		FROM fees
		WHERE id = $1;
	`

	var fee domain.Fee
	err := fr.db.QueryRow(ctx, query, id).Scan(
		&fee.ID, &fee.StudentID, &fee.SchoolID, &fee.Amount, &fee.DueDate, &fee.Status, &fee.PaidDate, &fee.Description, &fee.CreatedAt)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return nil, fmt.Errorf("fee not found")
		}
		return nil, fmt.Errorf("could not get fee: %v", err)
	}

	return &fee, nil
}

func (fr *feeRepository) GetBySchool(ctx context.Context, schoolID string) (*[]domain.Fee, error) {
	query := `
		SELECT id, student_id, school_id, amount, due_date, status, paid_date, description, created_at
		FROM fees
		WHERE school_id = $1
		ORDER BY created_at DESC;
	`

	return fr.queryFees(ctx, query, schoolID)
}

func (fr *feeRepository) GetByStudent(ctx context.Context, studentID string) (*[]domain.Fee, error) {
	query := `
		SELECT id, student_id, school_id, amount, due_date, status, paid_date, description, created_at
		FROM fees
		WHERE student_id = $1
		ORDER BY created_at DESC;
	`

	return fr.queryFees(ctx, query, studentID)
}

func (fr *feeRepository) queryFees(ctx context.Context, query string, arg interface{}) (*[]domain.Fee, error) {
	rows, err := fr.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("could not get fees: %v", err)
	}
	defer rows.Close()

	var fees []domain.Fee
	for rows.Next() {
		var fee domain.Fee
		err := rows.Scan(&fee.ID, &fee.StudentID, &fee.SchoolID, &fee.Amount, &fee.DueDate, &fee.Status, &fee.PaidDate, &fee.Description, &fee.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("could not scan fee: %v", err)
		}
		fees = append(fees, fee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &fees, nil
}

func (fr *feeRepository) Update(ctx context.Context, fee *domain.Fee) error {
	query := `
		UPDATE fees
		SET amount = $1, due_date = $2, status = $3, paid_date = $4, description = $5
		WHERE id = $6;
	`

	_, err := fr.db.Exec(ctx, query, fee.Amount, fee.DueDate, fee.Status, fee.PaidDate, fee.Description, fee.ID)
	if err != nil {
		return fmt.Errorf("could not update fee: %v", err)
	}

	return nil
}

func (fr *feeRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM fees
		WHERE id = $1;
	`

	_, err := fr.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not delete fee: %v", err)
	}

	return nil
}
