package repository

import (
	"context"
	"edusphere/domain"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type holidayRepository struct {
	db *pgxpool.Pool
}

func NewHolidayRepository(database *pgxpool.Pool) domain.HolidayRepo {
	return &holidayRepository{
		db: database,
	}
}

func (hr *holidayRepository) Insert(ctx context.Context, holiday *domain.Holiday) error {
	query := `
		INSERT INTO holidays (id, school_id, title, description, date, type, is_recurring, notification_sent, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := hr.db.Exec(ctx, query,
		holiday.ID, holiday.SchoolID, holiday.Title, holiday.Description, holiday.Date,
		holiday.Type, holiday.IsRecurring, holiday.NotificationSent, holiday.CreatedBy, holiday.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert holiday: %v", err)
	}

	return nil
}

func (hr *holidayRepository) GetByID(ctx context.Context, id string) (*domain.Holiday, error) {
	query := `
		SELECT id, school_id, title, description, date, type, is_recurring, notification_sent, created_by, created_at
		FROM holidays
		WHERE id = $1;
	`

	var holiday domain.Holiday
	err := hr.db.QueryRow(ctx, query, id).Scan(
		&holiday.ID, &holiday.SchoolID, &holiday.Title, &holiday.Description, &holiday.Date,
		&holiday.Type, &holiday.IsRecurring, &holiday.NotificationSent, &holiday.CreatedBy, &holiday.CreatedAt)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return nil, fmt.Errorf("holiday not found")
		}
		return nil, fmt.Errorf("could not get holiday: %v", err)
	}

	return &holiday, nil
}

func (hr *holidayRepository) GetBySchool(ctx context.Context, schoolID string) (*[]domain.Holiday, error) {
	query := `
		SELECT id, school_id, title, description, date, type, is_recurring, notification_sent, created_by, created_at
		FROM holidays
		WHERE school_id = $1
		ORDER BY date ASC;
	`

	rows, err := hr.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("could not get holidays: %v", err)
	}
	defer rows.Close()

	var holidays []domain.Holiday
	for rows.Next() {
		var holiday domain.Holiday
		err := rows.Scan(&holiday.ID, &holiday.SchoolID, &holiday.Title, &holiday.Description, &holiday.Date,
			&holiday.Type, &holiday.IsRecurring, &holiday.NotificationSent, &holiday.CreatedBy, &holiday.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("could not scan holiday: %v", err)
		}
		holidays = append(holidays, holiday)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &holidays, nil
}

func (hr *holidayRepository) Update(ctx context.Context, holiday *domain.Holiday) error {
	query := `
		UPDATE holidays
		SET title = $1, description = $2, date = $3, type = $4, is_recurring = $5
		WHERE id = $6;
	`

	_, err := hr.db.Exec(ctx, query, holiday.Title, holiday.Description, holiday.Date, holiday.Type, holiday.IsRecurring, holiday.ID)
	if err != nil {
		return fmt.Errorf("could not update holiday: %v", err)
	}

	return nil
}

func (hr *holidayRepository) SetNotificationSent(ctx context.Context, id string) error {
	query := `
		UPDATE holidays
		SET notification_sent = TRUE
		WHERE id = $1;
	`

	_, err := hr.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not set notification sent flag: %v", err)
	}

	return nil
}

func (hr *holidayRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM holidays
		WHERE id = $1;
	`

	_, err := hr.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not delete holiday: %v", err)
	}

	return nil
}
