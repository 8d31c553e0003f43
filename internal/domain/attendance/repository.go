package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records and
// their breaks. Mutating methods are expected to run inside a
// transaction started by the service layer.
type AttendanceRepository interface {
	// Create inserts a new attendance record. The (user_id, date)
	// unique constraint backstops concurrent StartDay calls.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves an attendance record with its breaks
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate retrieves the record for a user on a calendar
	// day, breaks included. Returns nil when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// GetByUserAndDateForUpdate is GetByUserAndDate with a row lock,
	// serializing concurrent transitions on the same (user, date).
	GetByUserAndDateForUpdate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// Update persists end_time, status and the derived totals
	Update(ctx context.Context, att Attendance) error

	// List retrieves records for the given user IDs, newest Date first
	List(ctx context.Context, filter Filter) ([]Attendance, int64, error)

	// StatusByUserAndDate batch-fetches the day's status per user ID.
	// Users without a record are absent from the returned map.
	StatusByUserAndDate(ctx context.Context, userIDs []string, date time.Time) (map[string]Status, error)

	// CreateBreak inserts a new break for an attendance record
	CreateBreak(ctx context.Context, br Break) (Break, error)

	// CloseBreak sets break_end on the open break of an attendance
	// record, conditionally (WHERE break_end IS NULL). Returns the
	// closed break, or ErrNoActiveBreak when none was open.
	CloseBreak(ctx context.Context, attendanceID string, end time.Time) (Break, error)
}
