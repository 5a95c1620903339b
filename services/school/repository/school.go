package repository

import (
	"context"
	"edusphere/domain"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type schoolRepository struct {
	db *pgxpool.Pool
}

func NewSchoolRepository(database *pgxpool.Pool) domain.SchoolRepo {
	return &schoolRepository{
		db: database,
	}
}

func (sr *schoolRepository) Insert(ctx context.Context, school *domain.School) error {
	query := `
		INSERT INTO schools (id, name, principal_id, address, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := sr.db.Exec(ctx, query,
		school.ID, school.Name, school.PrincipalID, school.Address, school.Phone, school.Email, school.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert school: %v", err)
	}

	return nil
}

func (sr *schoolRepository) GetByID(ctx context.Context, id string) (*domain.School, error) {
	query := `
		SELECT id, name, principal_id, address, phone, email, created_at
		FROM schools
		WHERE id = $1;
	`

	var school domain.School
	err := sr.db.QueryRow(ctx, query, id).Scan(
		&school.ID, &school.Name, &school.PrincipalID, &school.Address, &school.Phone, &school.Email, &school.CreatedAt)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return nil, fmt.Errorf("school not found")
		}
		return nil, fmt.Errorf("could not get school: %v", err)
	}

	return &school, nil
}

func (sr *schoolRepository) GetAll(ctx context.Context) (*[]domain.School, error) {
	query := `
		SELECT id, name, principal_id, address, phone, email, created_at
		FROM schools
		ORDER BY created_at DESC;
	`

	rows, err := sr.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not get schools: %v", err)
	}
	defer rows.Close()

	var schools []domain.School
	for rows.Next() {
		var school domain.School
		err := rows.Scan(&school.ID, &school.Name, &school.PrincipalID, &school.Address, &school.Phone, &school.Email, &school.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("could not scan school: %v", err)
		}
		schools = append(schools, school)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &schools, nil
}
