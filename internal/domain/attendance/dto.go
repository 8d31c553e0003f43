package attendance

import (
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/pkg/timeutil"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// TimestampRequest carries the client-supplied instant for a state
// transition. Timestamps are exchanged as RFC3339 strings.
type TimestampRequest struct {
	Timestamp string `json:"timestamp"`

	parsed time.Time
}

func (r *TimestampRequest) Validate() error {
	t, ok := validator.IsValidDateTime(r.Timestamp)
	if !ok {
		return validator.ValidationErrors{{Field: "timestamp", Message: "must be an RFC3339 timestamp"}}
	}
	r.parsed = t
	return nil
}

// Time returns the parsed timestamp. Validate must have succeeded.
func (r *TimestampRequest) Time() time.Time {
	return r.parsed
}

type Filter struct {
	UserIDs   []string
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
}

func (f Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BreakResponse struct {
	ID         string  `json:"id"`
	BreakStart string  `json:"break_start"`
	BreakEnd   *string `json:"break_end,omitempty"`
	Duration   string  `json:"duration"`
}

type AttendanceResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	UserName       *string         `json:"user_name,omitempty"`
	Date           string          `json:"date"`
	Status         string          `json:"status"`
	StartTime      string          `json:"start_time"`
	EndTime        *string         `json:"end_time,omitempty"`
	TotalBreakTime string          `json:"total_break_time"`
	TotalWorkTime  string          `json:"total_work_time"`
	BreaksTaken    int             `json:"breaks_taken"`
	Breaks         []BreakResponse `json:"breaks"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// StatusResponse is the per-user "today" projection. A missing record
// maps to the zero projection, never an error.
type StatusResponse struct {
	DayStarted   bool           `json:"day_started"`
	DayEnded     bool           `json:"day_ended"`
	OnBreak      bool           `json:"on_break"`
	Status       string         `json:"status"`
	StartTime    *string        `json:"start_time,omitempty"`
	EndTime      *string        `json:"end_time,omitempty"`
	CurrentBreak *BreakResponse `json:"current_break,omitempty"`
	BreaksTaken  int            `json:"breaks_taken"`
}

type TeamMemberStatus struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
}

func toBreakResponse(b Break) BreakResponse {
	resp := BreakResponse{
		ID:         b.ID,
		BreakStart: b.BreakStart.Format(time.RFC3339),
		Duration:   timeutil.FormatHMS(b.Duration()),
	}
	if b.BreakEnd != nil {
		end := b.BreakEnd.Format(time.RFC3339)
		resp.BreakEnd = &end
	}
	return resp
}

// ToResponse maps an Attendance entity to its API representation.
func ToResponse(att Attendance) AttendanceResponse {
	breaks := make([]BreakResponse, 0, len(att.Breaks))
	for _, b := range att.Breaks {
		breaks = append(breaks, toBreakResponse(b))
	}

	resp := AttendanceResponse{
		ID:             att.ID,
		UserID:         att.UserID,
		UserName:       att.UserName,
		Date:           att.Date.Format("2006-01-02"),
		Status:         string(att.Status),
		StartTime:      att.StartTime.Format(time.RFC3339),
		TotalBreakTime: timeutil.FormatHMS(att.TotalBreakTime),
		TotalWorkTime:  timeutil.FormatHMSPtr(att.TotalWorkTime),
		BreaksTaken:    len(att.Breaks),
		Breaks:         breaks,
	}
	if att.EndTime != nil {
		end := att.EndTime.Format(time.RFC3339)
		resp.EndTime = &end
	}
	return resp
}

// ToStatusResponse builds the today projection for a possibly missing
// record.
func ToStatusResponse(att *Attendance) StatusResponse {
	if att == nil {
		return StatusResponse{Status: string(StatusOffline)}
	}

	resp := StatusResponse{
		DayStarted:  true,
		DayEnded:    att.Ended(),
		Status:      string(att.Status),
		BreaksTaken: len(att.Breaks),
	}
	start := att.StartTime.Format(time.RFC3339)
	resp.StartTime = &start
	if att.EndTime != nil {
		end := att.EndTime.Format(time.RFC3339)
		resp.EndTime = &end
	}
	if open := att.OpenBreak(); open != nil {
		resp.OnBreak = true
		br := toBreakResponse(*open)
		resp.CurrentBreak = &br
	}
	return resp
}
