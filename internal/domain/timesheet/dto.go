package timesheet

import (
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/pkg/timeutil"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type StartTimerRequest struct {
	Task      string  `json:"task"`
	ProjectID *string `json:"project_id,omitempty"`
	StartTime string  `json:"start_time"`

	parsed time.Time
}

func (r *StartTimerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Task) {
		errs = append(errs, validator.ValidationError{Field: "task", Message: "is required"})
	}
	t, ok := validator.IsValidDateTime(r.StartTime)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be an RFC3339 timestamp"})
	}
	r.parsed = t

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *StartTimerRequest) Time() time.Time {
	return r.parsed
}

type StopTimerRequest struct {
	EndTime string `json:"end_time"`

	parsed time.Time
}

func (r *StopTimerRequest) Validate() error {
	t, ok := validator.IsValidDateTime(r.EndTime)
	if !ok {
		return validator.ValidationErrors{{Field: "end_time", Message: "must be an RFC3339 timestamp"}}
	}
	r.parsed = t
	return nil
}

func (r *StopTimerRequest) Time() time.Time {
	return r.parsed
}

type Filter struct {
	Date      *string
	ProjectID *string
	IsRunning *bool
}

type TimeEntryResponse struct {
	ID        string  `json:"id"`
	Task      string  `json:"task"`
	ProjectID *string `json:"project_id,omitempty"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time,omitempty"`
	Duration  string  `json:"duration"`
	Date      string  `json:"date"`
	IsRunning bool    `json:"is_running"`
	Status    string  `json:"status"`
}

// TimerStateResponse is the current-timer projection; IsRunning=false
// with zero fields when nothing is running.
type TimerStateResponse struct {
	IsRunning      bool    `json:"is_running"`
	Task           *string `json:"task,omitempty"`
	ProjectID      *string `json:"project_id,omitempty"`
	StartTime      *string `json:"start_time,omitempty"`
	ElapsedMinutes int     `json:"elapsed_minutes"`
}

// ToResponse maps a TimeEntry to its API representation.
func ToResponse(e TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:        e.ID,
		Task:      e.Task,
		ProjectID: e.ProjectID,
		StartTime: e.StartTime.Format(time.RFC3339),
		Duration:  timeutil.FormatHMSPtr(e.Duration),
		Date:      e.Date.Format("2006-01-02"),
		IsRunning: e.IsRunning,
		Status:    string(e.Status),
	}
	if e.EndTime != nil {
		end := e.EndTime.Format(time.RFC3339)
		resp.EndTime = &end
	}
	return resp
}

// ToTimerState builds the running-timer projection.
func ToTimerState(e *TimeEntry, now time.Time) TimerStateResponse {
	if e == nil {
		return TimerStateResponse{}
	}
	start := e.StartTime.Format(time.RFC3339)
	return TimerStateResponse{
		IsRunning:      true,
		Task:           &e.Task,
		ProjectID:      e.ProjectID,
		StartTime:      &start,
		ElapsedMinutes: e.ElapsedMinutes(now),
	}
}
