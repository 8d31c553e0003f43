package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.date, a.start_time, a.end_time,
	a.total_break_seconds, a.total_work_seconds, a.status,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var breakSeconds int64
	var workSeconds *int64

	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.StartTime, &att.EndTime,
		&breakSeconds, &workSeconds, &att.Status,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	att.TotalBreakTime = time.Duration(breakSeconds) * time.Second
	if workSeconds != nil {
		d := time.Duration(*workSeconds) * time.Second
		att.TotalWorkTime = &d
	}
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, user_id, date, start_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.UserID, att.Date, att.StartTime, att.Status,
	).Scan(&att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrDayAlreadyStarted
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, u.full_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	var breakSeconds int64
	var workSeconds *int64
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.UserID, &att.Date, &att.StartTime, &att.EndTime,
		&breakSeconds, &workSeconds, &att.Status,
		&att.CreatedAt, &att.UpdatedAt,
		&att.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}
	att.TotalBreakTime = time.Duration(breakSeconds) * time.Second
	if workSeconds != nil {
		d := time.Duration(*workSeconds) * time.Second
		att.TotalWorkTime = &d
	}

	if err := r.loadBreaks(ctx, &att); err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

func (r *attendanceRepository) getByUserAndDate(ctx context.Context, userID string, date time.Time, forUpdate bool) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1 AND a.date = $2
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	if err := r.loadBreaks(ctx, &att); err != nil {
		return nil, err
	}
	return &att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	return r.getByUserAndDate(ctx, userID, date, false)
}

// GetByUserAndDateForUpdate implements attendance.AttendanceRepository.
// The row lock serializes concurrent transitions on the same (user, date).
func (r *attendanceRepository) GetByUserAndDateForUpdate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	return r.getByUserAndDate(ctx, userID, date, true)
}

func (r *attendanceRepository) loadBreaks(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_id, break_start, break_end, created_at
		FROM attendance_breaks
		WHERE attendance_id = $1
		ORDER BY break_start
	`

	rows, err := q.Query(ctx, query, att.ID)
	if err != nil {
		return fmt.Errorf("failed to query breaks: %w", err)
	}
	defer rows.Close()

	att.Breaks = att.Breaks[:0]
	for rows.Next() {
		var br attendance.Break
		if err := rows.Scan(&br.ID, &br.AttendanceID, &br.BreakStart, &br.BreakEnd, &br.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan break: %w", err)
		}
		att.Breaks = append(att.Breaks, br)
	}
	return rows.Err()
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	var workSeconds *int64
	if att.TotalWorkTime != nil {
		s := int64(att.TotalWorkTime.Seconds())
		workSeconds = &s
	}

	query := `
		UPDATE attendances
		SET end_time = $1,
		    total_break_seconds = $2,
		    total_work_seconds = $3,
		    status = $4,
		    updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.EndTime,
		int64(att.TotalBreakTime.Seconds()),
		workSeconds,
		att.Status,
		att.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.user_id = ANY($1)"
	args := []interface{}{filter.UserIDs}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`, u.full_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY a.date DESC, u.full_name
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var breakSeconds int64
		var workSeconds *int64
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.StartTime, &att.EndTime,
			&breakSeconds, &workSeconds, &att.Status,
			&att.CreatedAt, &att.UpdatedAt,
			&att.UserName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		att.TotalBreakTime = time.Duration(breakSeconds) * time.Second
		if workSeconds != nil {
			d := time.Duration(*workSeconds) * time.Second
			att.TotalWorkTime = &d
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range attendances {
		if err := r.loadBreaks(ctx, &attendances[i]); err != nil {
			return nil, 0, err
		}
	}

	return attendances, total, nil
}

// StatusByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) StatusByUserAndDate(ctx context.Context, userIDs []string, date time.Time) (map[string]attendance.Status, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, status
		FROM attendances
		WHERE user_id = ANY($1) AND date = $2
	`

	rows, err := q.Query(ctx, query, userIDs, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance statuses: %w", err)
	}
	defer rows.Close()

	statuses := make(map[string]attendance.Status)
	for rows.Next() {
		var userID string
		var status attendance.Status
		if err := rows.Scan(&userID, &status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance status: %w", err)
		}
		statuses[userID] = status
	}
	return statuses, rows.Err()
}

// CreateBreak implements attendance.AttendanceRepository.
func (r *attendanceRepository) CreateBreak(ctx context.Context, br attendance.Break) (attendance.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_breaks (id, attendance_id, break_start)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, br.ID, br.AttendanceID, br.BreakStart).Scan(&br.CreatedAt)
	if err != nil {
		return attendance.Break{}, fmt.Errorf("failed to create break: %w", err)
	}

	return br, nil
}

// CloseBreak implements attendance.AttendanceRepository. The conditional
// WHERE break_end IS NULL makes close idempotent under races: only one
// of two concurrent closes can win the single open row.
func (r *attendanceRepository) CloseBreak(ctx context.Context, attendanceID string, end time.Time) (attendance.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_breaks
		SET break_end = $1
		WHERE attendance_id = $2 AND break_end IS NULL
		RETURNING id, attendance_id, break_start, break_end, created_at
	`

	var br attendance.Break
	err := q.QueryRow(ctx, query, end, attendanceID).Scan(
		&br.ID, &br.AttendanceID, &br.BreakStart, &br.BreakEnd, &br.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Break{}, attendance.ErrNoActiveBreak
		}
		return attendance.Break{}, fmt.Errorf("failed to close break: %w", err)
	}

	return br, nil
}
