package attendance

import (
	"context"
	"time"
)

// AttendanceService drives the per-user per-day state machine:
// offline -> present -> break -> present -> offline, with leave approval
// able to force-terminate an open day.
type AttendanceService interface {
	// StartDay opens the attendance record for the caller's day
	StartDay(ctx context.Context, userID string, ts time.Time) (AttendanceResponse, error)

	// StartBreak opens a break on today's record
	StartBreak(ctx context.Context, userID string, ts time.Time) (AttendanceResponse, error)

	// EndBreak closes the running break and recomputes break totals
	EndBreak(ctx context.Context, userID string, ts time.Time) (AttendanceResponse, error)

	// EndDay closes the record and computes the work total
	EndDay(ctx context.Context, userID string, ts time.Time) (AttendanceResponse, error)

	// GetStatus returns the caller's today projection; never fails on
	// a missing record
	GetStatus(ctx context.Context, userID string) (StatusResponse, error)

	// TeamStatus returns today's status for every user visible to the
	// viewer (admin: everyone; others: their teams' rosters)
	TeamStatus(ctx context.Context, viewerID string) ([]TeamMemberStatus, error)

	// List returns attendance records visible to the viewer
	List(ctx context.Context, viewerID string, filter Filter) (ListAttendanceResponse, error)

	// Get returns a single record if visible to the viewer
	Get(ctx context.Context, viewerID string, id string) (AttendanceResponse, error)

	// ForceTerminate closes any open break and open day for (userID,
	// date) and forces the status. Used by leave approval; absence of
	// a record is not an error and creates nothing.
	ForceTerminate(ctx context.Context, userID string, date time.Time, at time.Time, status Status) error
}
