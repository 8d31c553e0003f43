package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrNoRunningTimer   = errors.New("no timer is currently running")
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrInvalidOrdering  = errors.New("end time must be after start time")
	ErrNotEntryOwner    = errors.New("time entry belongs to another user")
)
