package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	l.id, l.user_id, l.type, l.start_date, l.end_date, l.reason,
	l.status, l.admin_comment, l.applied_at, l.reviewed_at, l.updated_at
`

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, user_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING applied_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.ID, l.UserID, l.Type, l.StartDate, l.EndDate, l.Reason, l.Status,
	).Scan(&l.AppliedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, u.full_name
		FROM leaves l
		LEFT JOIN users u ON u.id = l.user_id
		WHERE l.id = $1
	`

	var l leave.Leave
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.UserID, &l.Type, &l.StartDate, &l.EndDate, &l.Reason,
		&l.Status, &l.AdminComment, &l.AppliedAt, &l.ReviewedAt, &l.UpdatedAt,
		&l.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave by ID: %w", err)
	}

	return l, nil
}

// ListByUsers implements leave.LeaveRepository.
func (r *leaveRepository) ListByUsers(ctx context.Context, userIDs []string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, u.full_name
		FROM leaves l
		LEFT JOIN users u ON u.id = l.user_id
	`
	var args []interface{}
	if len(userIDs) > 0 {
		query += " WHERE l.user_id = ANY($1)"
		args = append(args, userIDs)
	}
	query += " ORDER BY l.applied_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		err := rows.Scan(
			&l.ID, &l.UserID, &l.Type, &l.StartDate, &l.EndDate, &l.Reason,
			&l.Status, &l.AdminComment, &l.AppliedAt, &l.ReviewedAt, &l.UpdatedAt,
			&l.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// Update implements leave.LeaveRepository.
func (r *leaveRepository) Update(ctx context.Context, l leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET type = $1,
		    start_date = $2,
		    end_date = $3,
		    reason = $4,
		    status = $5,
		    admin_comment = $6,
		    reviewed_at = $7,
		    updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		l.Type, l.StartDate, l.EndDate, l.Reason,
		l.Status, l.AdminComment, l.ReviewedAt, l.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update leave: %w", err)
	}

	return nil
}
