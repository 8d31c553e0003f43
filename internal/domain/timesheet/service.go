package timesheet

import "context"

// TimesheetService defines the start/stop timer workflow. Entries are
// strictly owner-scoped.
type TimesheetService interface {
	// StartTimer stops any running timer, then starts a new one
	StartTimer(ctx context.Context, userID string, req StartTimerRequest) (TimerStateResponse, error)

	// StopTimer closes the running timer; end must be strictly after
	// start
	StopTimer(ctx context.Context, userID string, req StopTimerRequest) (TimeEntryResponse, error)

	// CurrentTimer returns the running-timer projection; never fails
	// when nothing is running
	CurrentTimer(ctx context.Context, userID string) (TimerStateResponse, error)

	// List returns the caller's entries
	List(ctx context.Context, userID string, filter Filter) ([]TimeEntryResponse, error)

	// Delete removes one of the caller's entries
	Delete(ctx context.Context, userID string, id string) error
}
