package timesheet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/domain/timesheet"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/timeutil"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
)

type TimesheetServiceImpl struct {
	db *database.DB
	timesheet.TimeEntryRepository

	loc *time.Location
	now func() time.Time
}

func NewTimesheetService(db *database.DB, entryRepo timesheet.TimeEntryRepository, loc *time.Location) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:                  db,
		TimeEntryRepository: entryRepo,
		loc:                 loc,
		now:                 time.Now,
	}
}

// StartTimer implements timesheet.TimesheetService. Any running timer is
// stopped at the new start instant before the new one begins, so a user
// never has two running entries.
func (s *TimesheetServiceImpl) StartTimer(ctx context.Context, userID string, req timesheet.StartTimerRequest) (timesheet.TimerStateResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimerStateResponse{}, err
	}
	start := req.Time()

	var created timesheet.TimeEntry
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.TimeEntryRepository.StopRunning(ctx, userID, start); err != nil {
			return err
		}

		var err error
		created, err = s.TimeEntryRepository.Create(ctx, timesheet.TimeEntry{
			ID:        uuid.NewString(),
			UserID:    userID,
			Task:      req.Task,
			ProjectID: req.ProjectID,
			StartTime: start,
			Date:      timeutil.DayStart(start.In(s.loc)),
			IsRunning: true,
			Status:    timesheet.StatusInProgress,
		})
		return err
	})
	if err != nil {
		return timesheet.TimerStateResponse{}, err
	}

	return timesheet.ToTimerState(&created, s.now()), nil
}

// StopTimer implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) StopTimer(ctx context.Context, userID string, req timesheet.StopTimerRequest) (timesheet.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}
	end := req.Time()

	var stopped timesheet.TimeEntry
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		running, err := s.TimeEntryRepository.GetRunning(ctx, userID)
		if err != nil {
			return err
		}
		if running == nil {
			return timesheet.ErrNoRunningTimer
		}
		if !end.After(running.StartTime) {
			return timesheet.ErrInvalidOrdering
		}

		duration := end.Sub(running.StartTime)
		running.EndTime = &end
		running.Duration = &duration
		running.IsRunning = false
		running.Status = timesheet.StatusCompleted

		if err := s.TimeEntryRepository.Update(ctx, *running); err != nil {
			return err
		}
		stopped = *running
		return nil
	})
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	return timesheet.ToResponse(stopped), nil
}

// CurrentTimer implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CurrentTimer(ctx context.Context, userID string) (timesheet.TimerStateResponse, error) {
	running, err := s.TimeEntryRepository.GetRunning(ctx, userID)
	if err != nil {
		return timesheet.TimerStateResponse{}, err
	}
	return timesheet.ToTimerState(running, s.now()), nil
}

// List implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) List(ctx context.Context, userID string, filter timesheet.Filter) ([]timesheet.TimeEntryResponse, error) {
	entries, err := s.TimeEntryRepository.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]timesheet.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, timesheet.ToResponse(e))
	}
	return responses, nil
}

// Delete implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Delete(ctx context.Context, userID string, id string) error {
	e, err := s.TimeEntryRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.UserID != userID {
		return timesheet.ErrNotEntryOwner
	}
	return s.TimeEntryRepository.Delete(ctx, id)
}
