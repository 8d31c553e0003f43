package timesheet

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access for time entries.
type TimeEntryRepository interface {
	// Create inserts a new time entry
	Create(ctx context.Context, e TimeEntry) (TimeEntry, error)

	// GetByID retrieves a time entry by ID
	GetByID(ctx context.Context, id string) (TimeEntry, error)

	// GetRunning retrieves the user's running entry, nil when none
	GetRunning(ctx context.Context, userID string) (*TimeEntry, error)

	// StopRunning closes every running entry of the user at the given
	// instant (WHERE is_running), returning how many were closed.
	StopRunning(ctx context.Context, userID string, end time.Time) (int64, error)

	// Update persists end_time, duration, is_running and status
	Update(ctx context.Context, e TimeEntry) error

	// List retrieves the user's entries, newest start first
	List(ctx context.Context, userID string, filter Filter) ([]TimeEntry, error)

	// Delete removes an entry
	Delete(ctx context.Context, id string) error
}
