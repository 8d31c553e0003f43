package attendance

import "time"

type Status string

const (
	StatusOffline Status = "offline"
	StatusPresent Status = "present"
	StatusBreak   Status = "break"
	StatusLeave   Status = "leave"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

// Attendance is the single per-user-per-day record of a work day.
// (user_id, date) is unique; the day transitions offline -> present ->
// break -> present -> offline, with leave approval able to force-close it.
type Attendance struct {
	ID             string
	UserID         string
	Date           time.Time // calendar day, midnight in the app timezone
	StartTime      time.Time
	EndTime        *time.Time
	TotalBreakTime time.Duration
	TotalWorkTime  *time.Duration
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / joins
	UserName *string
	Breaks   []Break
}

// Break is one timed interval of non-work inside an Attendance.
// At most one break per attendance may be open (BreakEnd == nil).
type Break struct {
	ID           string
	AttendanceID string
	BreakStart   time.Time
	BreakEnd     *time.Time
	CreatedAt    time.Time
}

// Closed reports whether the break has ended.
func (b Break) Closed() bool {
	return b.BreakEnd != nil
}

// Duration returns the span of a closed break, zero while running.
func (b Break) Duration() time.Duration {
	if b.BreakEnd == nil {
		return 0
	}
	return b.BreakEnd.Sub(b.BreakStart)
}

// OpenBreak returns the running break, if any.
func (a Attendance) OpenBreak() *Break {
	for i := range a.Breaks {
		if a.Breaks[i].BreakEnd == nil {
			return &a.Breaks[i]
		}
	}
	return nil
}

// ClosedBreakTotal sums the spans of all closed breaks. Aggregates are
// always recomputed from the full set rather than accumulated, so the
// result stays consistent under back-filled or concurrently edited data.
func (a Attendance) ClosedBreakTotal() time.Duration {
	var total time.Duration
	for _, b := range a.Breaks {
		if b.Closed() {
			total += b.Duration()
		}
	}
	return total
}

// Ended reports whether the day has been closed.
func (a Attendance) Ended() bool {
	return a.EndTime != nil
}
