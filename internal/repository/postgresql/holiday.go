package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/teamready/readiness-backend-go/internal/domain/holiday"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, company_id, date, name)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, h.ID, h.CompanyID, h.Date, h.Name).Scan(&h.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepository) GetByID(ctx context.Context, id string, companyID string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, date, name, created_at
		FROM holidays
		WHERE id = $1 AND company_id = $2
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&h.ID, &h.CompanyID, &h.Date, &h.Name, &h.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday by ID: %w", err)
	}

	return h, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM holidays WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// ExistsOnDate implements holiday.HolidayRepository.
func (r *holidayRepository) ExistsOnDate(ctx context.Context, companyID string, dateLocal string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM holidays WHERE company_id = $1 AND date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, companyID, dateLocal).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}

// ListDatesInRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListDatesInRange(ctx context.Context, companyID string, startDate, endDate string) (map[string]struct{}, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date
		FROM holidays
		WHERE company_id = $1 AND date >= $2 AND date <= $3
	`

	rows, err := q.Query(ctx, query, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query holiday dates: %w", err)
	}
	defer rows.Close()

	dates := make(map[string]struct{})
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan holiday date: %w", err)
		}
		dates[d] = struct{}{}
	}

	return dates, nil
}

// ListByCompany implements holiday.HolidayRepository.
func (r *holidayRepository) ListByCompany(ctx context.Context, companyID string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, date, name, created_at
		FROM holidays
		WHERE company_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}
