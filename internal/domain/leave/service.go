package leave

import "context"

// LeaveService defines the leave request workflow. Approval triggers the
// attendance termination path for every covered day.
type LeaveService interface {
	// Apply creates a pending leave request for the caller
	Apply(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error)

	// List returns leave requests visible to the viewer (admins and
	// team leads see all, employees only their own)
	List(ctx context.Context, viewerID string) ([]LeaveResponse, error)

	// Get returns a single request if visible to the viewer
	Get(ctx context.Context, viewerID string, id string) (LeaveResponse, error)

	// Edit updates a still-pending request; applicant only
	Edit(ctx context.Context, viewerID string, id string, req UpdateLeaveRequest) (LeaveResponse, error)

	// Approve approves a pending request and force-terminates any open
	// attendance for the covered dates
	Approve(ctx context.Context, reviewerID string, id string, comment string) (LeaveResponse, error)

	// Reject rejects a pending request
	Reject(ctx context.Context, reviewerID string, id string, comment string) (LeaveResponse, error)
}
