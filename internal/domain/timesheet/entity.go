package timesheet

import "time"

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// TimeEntry tracks time spent on a task, optionally tied to a project.
// At most one entry per user may be running at a time; starting a new
// timer stops the previous one.
type TimeEntry struct {
	ID        string
	UserID    string
	Task      string
	ProjectID *string
	StartTime time.Time
	EndTime   *time.Time
	Duration  *time.Duration
	Date      time.Time // calendar day of StartTime
	IsRunning bool
	Status    Status
	CreatedAt time.Time
}

// ElapsedMinutes returns whole elapsed minutes: live for a running
// timer, from the stored duration otherwise.
func (e TimeEntry) ElapsedMinutes(now time.Time) int {
	if e.IsRunning {
		return int(now.Sub(e.StartTime).Minutes())
	}
	if e.Duration != nil {
		return int(e.Duration.Minutes())
	}
	return 0
}
