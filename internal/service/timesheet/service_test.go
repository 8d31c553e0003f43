package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/workpulse-backend-go/internal/domain/timesheet"
)

type memTimeEntryRepo struct {
	entries map[string]timesheet.TimeEntry
}

func newMemTimeEntryRepo() *memTimeEntryRepo {
	return &memTimeEntryRepo{entries: make(map[string]timesheet.TimeEntry)}
}

func (m *memTimeEntryRepo) Create(_ context.Context, e timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	m.entries[e.ID] = e
	return e, nil
}

func (m *memTimeEntryRepo) GetByID(_ context.Context, id string) (timesheet.TimeEntry, error) {
	e, ok := m.entries[id]
	if !ok {
		return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
	}
	return e, nil
}

func (m *memTimeEntryRepo) GetRunning(_ context.Context, userID string) (*timesheet.TimeEntry, error) {
	for _, e := range m.entries {
		if e.UserID == userID && e.IsRunning {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

func (m *memTimeEntryRepo) StopRunning(_ context.Context, userID string, end time.Time) (int64, error) {
	var stopped int64
	for id, e := range m.entries {
		if e.UserID == userID && e.IsRunning {
			duration := end.Sub(e.StartTime)
			if duration < 0 {
				duration = 0
			}
			e.EndTime = &end
			e.Duration = &duration
			e.IsRunning = false
			e.Status = timesheet.StatusCompleted
			m.entries[id] = e
			stopped++
		}
	}
	return stopped, nil
}

func (m *memTimeEntryRepo) Update(_ context.Context, e timesheet.TimeEntry) error {
	if _, ok := m.entries[e.ID]; !ok {
		return timesheet.ErrEntryNotFound
	}
	m.entries[e.ID] = e
	return nil
}

func (m *memTimeEntryRepo) List(_ context.Context, userID string, _ timesheet.Filter) ([]timesheet.TimeEntry, error) {
	var result []timesheet.TimeEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *memTimeEntryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.entries[id]; !ok {
		return timesheet.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func newTestService(repo timesheet.TimeEntryRepository, now time.Time) *TimesheetServiceImpl {
	return &TimesheetServiceImpl{
		TimeEntryRepository: repo,
		loc:                 time.UTC,
		now:                 func() time.Time { return now },
	}
}

func ts(hour, minute int) string {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC).Format(time.RFC3339)
}

func TestStartStopTimer(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemTimeEntryRepo(), time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC))
	userID := uuid.NewString()

	state, err := svc.StartTimer(ctx, userID, timesheet.StartTimerRequest{
		Task:      "write report",
		StartTime: ts(9, 0),
	})
	require.NoError(t, err)
	assert.True(t, state.IsRunning)
	assert.Equal(t, 120, state.ElapsedMinutes)

	entry, err := svc.StopTimer(ctx, userID, timesheet.StopTimerRequest{EndTime: ts(10, 30)})
	require.NoError(t, err)
	assert.False(t, entry.IsRunning)
	assert.Equal(t, "01:30:00", entry.Duration)
	assert.Equal(t, "completed", entry.Status)
}

func TestStartTimerStopsPrevious(t *testing.T) {
	ctx := context.Background()
	repo := newMemTimeEntryRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	userID := uuid.NewString()

	_, err := svc.StartTimer(ctx, userID, timesheet.StartTimerRequest{Task: "first", StartTime: ts(9, 0)})
	require.NoError(t, err)

	_, err = svc.StartTimer(ctx, userID, timesheet.StartTimerRequest{Task: "second", StartTime: ts(10, 0)})
	require.NoError(t, err)

	running, err := repo.GetRunning(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, running)
	assert.Equal(t, "second", running.Task)

	entries, err := svc.List(ctx, userID, timesheet.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		if e.Task == "first" {
			assert.False(t, e.IsRunning)
			assert.Equal(t, "01:00:00", e.Duration)
		}
	}
}

func TestStopWithoutRunningTimer(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemTimeEntryRepo(), time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))

	_, err := svc.StopTimer(ctx, uuid.NewString(), timesheet.StopTimerRequest{EndTime: ts(10, 0)})
	assert.ErrorIs(t, err, timesheet.ErrNoRunningTimer)
}

func TestStopBeforeStartRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemTimeEntryRepo(), time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	userID := uuid.NewString()

	_, err := svc.StartTimer(ctx, userID, timesheet.StartTimerRequest{Task: "work", StartTime: ts(10, 0)})
	require.NoError(t, err)

	_, err = svc.StopTimer(ctx, userID, timesheet.StopTimerRequest{EndTime: ts(10, 0)})
	assert.ErrorIs(t, err, timesheet.ErrInvalidOrdering)
}

func TestCurrentTimerWhenIdle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemTimeEntryRepo(), time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))

	state, err := svc.CurrentTimer(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, state.IsRunning)
	assert.Nil(t, state.Task)
}

func TestDeleteOwnerOnly(t *testing.T) {
	ctx := context.Background()
	repo := newMemTimeEntryRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	owner := uuid.NewString()

	_, err := svc.StartTimer(ctx, owner, timesheet.StartTimerRequest{Task: "work", StartTime: ts(9, 0)})
	require.NoError(t, err)

	var entryID string
	for id := range repo.entries {
		entryID = id
	}

	err = svc.Delete(ctx, uuid.NewString(), entryID)
	assert.ErrorIs(t, err, timesheet.ErrNotEntryOwner)

	err = svc.Delete(ctx, owner, entryID)
	assert.NoError(t, err)
}
