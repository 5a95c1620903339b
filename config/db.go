package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var sqlDB *sql.DB

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens the migration connection and runs the schema migrations.
func BootDB() (*sql.DB, error) {
	url := GetDatabaseURL()
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if sqlDB == nil {
		sqlDB = db
	}

	err = autoMigrate(sqlDB)
	if err != nil {
		return sqlDB, err
	}

	return sqlDB, nil
}

// BootPool opens the pgx pool used by the repositories.
func BootPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// BootGorm opens the gorm handle used by the login path.
func BootGorm() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(GetDatabaseURL()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}
	return db, nil
}

func autoMigrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS schools (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	principal_id UUID,
	address TEXT NOT NULL DEFAULT '',
	phone VARCHAR(20) NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name VARCHAR(150) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL,
	school_id UUID,
	phone VARCHAR(20),
	class_id UUID,
	roll_number VARCHAR(20),
	is_first_login BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	last_login TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS notifications (
	id UUID PRIMARY KEY,
	recipient_user_id UUID NOT NULL,
	title TEXT NOT NULL,
	message TEXT NOT NULL,
	category VARCHAR(20) NOT NULL,
	read BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	action_reference TEXT,
	metadata JSONB
	);
	CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications (recipient_user_id, read);

	CREATE TABLE IF NOT EXISTS fees (
	id UUID PRIMARY KEY,
	student_id UUID NOT NULL,
	school_id UUID NOT NULL,
	amount NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
	due_date DATE NOT NULL,
	status VARCHAR(10) NOT NULL DEFAULT 'pending',
	paid_date DATE,
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_fees_school ON fees (school_id);
	CREATE INDEX IF NOT EXISTS idx_fees_student ON fees (student_id);

	CREATE TABLE IF NOT EXISTS holidays (
	id UUID PRIMARY KEY,
	school_id UUID NOT NULL,
	title VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	date DATE NOT NULL,
	type VARCHAR(20) NOT NULL,
	is_recurring BOOLEAN NOT NULL DEFAULT FALSE,
	notification_sent BOOLEAN NOT NULL DEFAULT FALSE,
	created_by UUID NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_holidays_school ON holidays (school_id);

	CREATE TABLE IF NOT EXISTS certificate_requests (
	id UUID PRIMARY KEY,
	student_id UUID NOT NULL,
	school_id UUID NOT NULL,
	certificate_type VARCHAR(20) NOT NULL,
	purpose TEXT NOT NULL,
	additional_details TEXT,
	status VARCHAR(10) NOT NULL DEFAULT 'pending',
	requested_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	reviewed_at TIMESTAMPTZ,
	reviewed_by UUID,
	rejection_reason TEXT,
	certificate_number VARCHAR(30)
	);
	CREATE INDEX IF NOT EXISTS idx_certificate_requests_school ON certificate_requests (school_id);
	`
	_, err := db.Exec(query)
	if err != nil {
		fmt.Printf("Error executing migration query: %v\n", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
