package leave

import "context"

// LeaveRepository defines data access for leave requests.
type LeaveRepository interface {
	// Create inserts a new leave request
	Create(ctx context.Context, l Leave) (Leave, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (Leave, error)

	// ListByUsers retrieves leave requests for the given user IDs,
	// newest application first. Empty userIDs means all users.
	ListByUsers(ctx context.Context, userIDs []string) ([]Leave, error)

	// Update persists mutable fields (dates, reason, status, comment,
	// reviewed_at)
	Update(ctx context.Context, l Leave) error
}
