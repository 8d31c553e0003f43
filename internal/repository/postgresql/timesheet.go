package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/timesheet"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timesheet.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `
	id, user_id, task, project_id, start_time, end_time,
	duration_seconds, date, is_running, status, created_at
`

func scanTimeEntry(row pgx.Row) (timesheet.TimeEntry, error) {
	var e timesheet.TimeEntry
	var durationSeconds *int64

	err := row.Scan(
		&e.ID, &e.UserID, &e.Task, &e.ProjectID, &e.StartTime, &e.EndTime,
		&durationSeconds, &e.Date, &e.IsRunning, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		return timesheet.TimeEntry{}, err
	}

	if durationSeconds != nil {
		d := time.Duration(*durationSeconds) * time.Second
		e.Duration = &d
	}
	return e, nil
}

// Create implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, e timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (id, user_id, task, project_id, start_time, date, is_running, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.UserID, e.Task, e.ProjectID, e.StartTime, e.Date, e.IsRunning, e.Status,
	).Scan(&e.CreatedAt)
	if err != nil {
		return timesheet.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return e, nil
}

// GetByID implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id = $1`

	e, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}
	return e, nil
}

// GetRunning implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) GetRunning(ctx context.Context, userID string) (*timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE user_id = $1 AND is_running
		ORDER BY start_time DESC
		LIMIT 1
	`

	e, err := scanTimeEntry(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get running time entry: %w", err)
	}
	return &e, nil
}

// StopRunning implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) StopRunning(ctx context.Context, userID string, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET end_time = $1,
		    duration_seconds = GREATEST(0, EXTRACT(EPOCH FROM ($1 - start_time))::bigint),
		    is_running = FALSE,
		    status = $2
		WHERE user_id = $3 AND is_running
	`

	tag, err := q.Exec(ctx, query, end, timesheet.StatusCompleted, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to stop running time entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Update implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) Update(ctx context.Context, e timesheet.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	var durationSeconds *int64
	if e.Duration != nil {
		s := int64(e.Duration.Seconds())
		durationSeconds = &s
	}

	query := `
		UPDATE time_entries
		SET end_time = $1,
		    duration_seconds = $2,
		    is_running = $3,
		    status = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, e.EndTime, durationSeconds, e.IsRunning, e.Status, e.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	return nil
}

// List implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) List(ctx context.Context, userID string, filter timesheet.Filter) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE user_id = $1`
	args := []interface{}{userID}
	argIdx := 2

	if filter.Date != nil && *filter.Date != "" {
		query += fmt.Sprintf(" AND date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.ProjectID != nil && *filter.ProjectID != "" {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)
		args = append(args, *filter.ProjectID)
		argIdx++
	}
	if filter.IsRunning != nil {
		query += fmt.Sprintf(" AND is_running = $%d", argIdx)
		args = append(args, *filter.IsRunning)
		argIdx++
	}
	query += " ORDER BY start_time DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}
	return nil
}
