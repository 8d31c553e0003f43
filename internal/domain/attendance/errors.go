package attendance

import "errors"

// Attendance domain errors. All are state-precondition violations raised
// before any mutation; none is fatal.
var (
	ErrDayAlreadyStarted   = errors.New("you have already started your work day today")
	ErrDayNotStarted       = errors.New("you have not started your work day today")
	ErrDayAlreadyEnded     = errors.New("you have already ended your work day today")
	ErrBreakAlreadyRunning = errors.New("you already have an active break")
	ErrNoActiveBreak       = errors.New("you do not have an active break to end")
	ErrBreakStillRunning   = errors.New("you must end your current break before ending the work day")
	ErrInvalidOrdering     = errors.New("timestamp must be strictly after the preceding event")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrFutureTimestamp    = errors.New("timestamp cannot be in the future")
)
