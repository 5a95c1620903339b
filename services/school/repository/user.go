package repository

import (
	"context"
	"edusphere/domain"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(database *pgxpool.Pool) domain.UserRepo {
	return &userRepository{
		db: database,
	}
}

func (ur *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	duplicateCheckQuery := `
		SELECT id FROM users
		WHERE email = $1;
	`
	var existingID string

	err := ur.db.QueryRow(ctx, duplicateCheckQuery, user.Email).Scan(&existingID)
	if err != nil && err.Error() != "no rows in result set" {
		return fmt.Errorf("could not check for duplicate user: %v", err)
	}

	if existingID != "" {
		return fmt.Errorf("user already exists with ID: %s", existingID)
	}

	insertQuery := `
		INSERT INTO users (id, name, email, password, role, school_id, phone, class_id, roll_number, is_first_login, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err = ur.db.Exec(ctx, insertQuery,
		user.ID, user.Name, user.Email, user.Password, user.Role, user.SchoolID,
		user.Phone, user.ClassID, user.RollNumber, user.IsFirstLogin, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert user: %v", err)
	}

	return nil
}

func (ur *userRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password, role, school_id, phone, class_id, roll_number, is_first_login, created_at, last_login
		FROM users
		WHERE id = $1;
	`

	var user domain.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.SchoolID,
		&user.Phone, &user.ClassID, &user.RollNumber, &user.IsFirstLogin, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("could not get user: %v", err)
	}

	return &user, nil
}

func (ur *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password, role, school_id, phone, class_id, roll_number, is_first_login, created_at, last_login
		FROM users
		WHERE email = $1;
	`

	var user domain.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.SchoolID,
		&user.Phone, &user.ClassID, &user.RollNumber, &user.IsFirstLogin, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}

func (ur *userRepository) GetSchoolUsers(ctx context.Context, schoolID string) (*[]domain.User, error) {
	query := `
		SELECT id, name, email, password, role, school_id, phone, class_id, roll_number, is_first_login, created_at, last_login
		FROM users
		WHERE school_id = $1;
	`

	return ur.queryUsers(ctx, query, schoolID)
}

func (ur *userRepository) GetSchoolUsersByRole(ctx context.Context, schoolID, role string) (*[]domain.User, error) {
	query := `
		SELECT id, name, email, password, role, school_id, phone, class_id, roll_number, is_first_login, created_at, last_login
		FROM users
		WHERE school_id = $1 AND role = $2;
	`

	return ur.queryUsers(ctx, query, schoolID, role)
}

func (ur *userRepository) queryUsers(ctx context.Context, query string, args ...interface{}) (*[]domain.User, error) {
	rows, err := ur.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not get users: %v", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.SchoolID,
			&user.Phone, &user.ClassID, &user.RollNumber, &user.IsFirstLogin, &user.CreatedAt, &user.LastLogin)
		if err != nil {
			return nil, fmt.Errorf("could not scan user: %v", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &users, nil
}

func (ur *userRepository) RecordLogin(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE users
		SET last_login = $1, is_first_login = FALSE
		WHERE id = $2;
	`

	_, err := ur.db.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("could not record login: %v", err)
	}

	return nil
}
