package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/team"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
)

type memAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
	breaks  map[string][]attendance.Break
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{
		records: make(map[string]attendance.Attendance),
		breaks:  make(map[string][]attendance.Break),
	}
}

func (m *memAttendanceRepo) withBreaks(att attendance.Attendance) attendance.Attendance {
	att.Breaks = append([]attendance.Break(nil), m.breaks[att.ID]...)
	return att
}

func (m *memAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.records {
		if existing.UserID == att.UserID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrDayAlreadyStarted
		}
	}
	m.records[att.ID] = att
	return att, nil
}

func (m *memAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	att, ok := m.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return m.withBreaks(att), nil
}

func (m *memAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, att := range m.records {
		if att.UserID == userID && att.Date.Equal(date) {
			loaded := m.withBreaks(att)
			return &loaded, nil
		}
	}
	return nil, nil
}

func (m *memAttendanceRepo) GetByUserAndDateForUpdate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	return m.GetByUserAndDate(ctx, userID, date)
}

func (m *memAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	att.Breaks = nil
	m.records[att.ID] = att
	return nil
}

func (m *memAttendanceRepo) List(_ context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []attendance.Attendance
	for _, att := range m.records {
		for _, id := range filter.UserIDs {
			if att.UserID == id {
				result = append(result, m.withBreaks(att))
				break
			}
		}
	}
	return result, int64(len(result)), nil
}

func (m *memAttendanceRepo) StatusByUserAndDate(_ context.Context, userIDs []string, date time.Time) (map[string]attendance.Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	statuses := make(map[string]attendance.Status)
	for _, att := range m.records {
		if !att.Date.Equal(date) {
			continue
		}
		for _, id := range userIDs {
			if att.UserID == id {
				statuses[id] = att.Status
			}
		}
	}
	return statuses, nil
}

func (m *memAttendanceRepo) CreateBreak(_ context.Context, br attendance.Break) (attendance.Break, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.breaks[br.AttendanceID] = append(m.breaks[br.AttendanceID], br)
	return br, nil
}

func (m *memAttendanceRepo) CloseBreak(_ context.Context, attendanceID string, end time.Time) (attendance.Break, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	breaks := m.breaks[attendanceID]
	for i := range breaks {
		if breaks[i].BreakEnd == nil {
			breaks[i].BreakEnd = &end
			return breaks[i], nil
		}
	}
	return attendance.Break{}, attendance.ErrNoActiveBreak
}

type memUserRepo struct {
	users map[string]user.User
}

func (m *memUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	m.users[u.ID] = u
	return u, nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memUserRepo) List(_ context.Context) ([]user.User, error) {
	var users []user.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *memUserRepo) ListByIDs(_ context.Context, ids []string) ([]user.User, error) {
	var users []user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *memUserRepo) Update(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

type memTeamRepo struct {
	team.TeamRepository
	visible map[string][]string
}

func (m *memTeamRepo) VisibleUserIDs(_ context.Context, viewerID string) ([]string, error) {
	return m.visible[viewerID], nil
}

func newTestService(repo attendance.AttendanceRepository, userRepo user.UserRepository, teamRepo team.TeamRepository, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		TeamRepository:       teamRepo,
		UserRepository:       userRepo,
		loc:                  time.UTC,
		lateHour:             9,
		lateMinute:           15,
		now:                  func() time.Time { return now },
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestFullWorkDay(t *testing.T) {
	ctx := context.Background()
	repo := newMemAttendanceRepo()
	svc := newTestService(repo, nil, nil, at(18, 0))
	userID := uuid.NewString()

	started, err := svc.StartDay(ctx, userID, at(9, 0))
	require.NoError(t, err)
	assert.Equal(t, "present", started.Status)
	assert.Equal(t, "2026-03-02", started.Date)

	_, err = svc.StartBreak(ctx, userID, at(12, 0))
	require.NoError(t, err)

	afterBreak, err := svc.EndBreak(ctx, userID, at(12, 30))
	require.NoError(t, err)
	assert.Equal(t, "present", afterBreak.Status)
	assert.Equal(t, "00:30:00", afterBreak.TotalBreakTime)

	ended, err := svc.EndDay(ctx, userID, at(17, 0))
	require.NoError(t, err)
	assert.Equal(t, "offline", ended.Status)
	assert.Equal(t, "00:30:00", ended.TotalBreakTime)
	assert.Equal(t, "07:30:00", ended.TotalWorkTime)
	assert.Equal(t, 1, ended.BreaksTaken)
	require.NotNil(t, ended.EndTime)
}

func TestStartDayTwice(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemAttendanceRepo(), nil, nil, at(18, 0))
	userID := uuid.NewString()

	_, err := svc.StartDay(ctx, userID, at(9, 0))
	require.NoError(t, err)

	_, err = svc.StartDay(ctx, userID, at(10, 0))
	assert.ErrorIs(t, err, attendance.ErrDayAlreadyStarted)
}

func TestLateArrival(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemAttendanceRepo(), nil, nil, at(18, 0))
	userID := uuid.NewString()

	started, err := svc.StartDay(ctx, userID, at(9, 30))
	require.NoError(t, err)
	assert.Equal(t, "late", started.Status)

	// The late classification survives the break cycle.
	_, err = svc.StartBreak(ctx, userID, at(12, 0))
	require.NoError(t, err)
	afterBreak, err := svc.EndBreak(ctx, userID, at(12, 15))
	require.NoError(t, err)
	assert.Equal(t, "late", afterBreak.Status)
}

func TestBreakPreconditions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemAttendanceRepo(), nil, nil, at(18, 0))
	userID := uuid.NewString()

	_, err := svc.StartBreak(ctx, userID, at(12, 0))
	assert.ErrorIs(t, err, attendance.ErrDayNotStarted)

	_, err = svc.EndBreak(ctx, userID, at(12, 0))
	assert.ErrorIs(t, err, attendance.ErrDayNotStarted)

	_, err = svc.StartDay(ctx, userID, at(9, 0))
	require.NoError(t, err)

	_, err = svc.EndBreak(ctx, userID, at(12, 0))
	assert.ErrorIs(t, err, attendance.ErrNoActiveBreak)

	_, err = svc.StartBreak(ctx, userID, at(12, 0))
	require.NoError(t, err)

	_, err = svc.StartBreak(ctx, userID, at(12, 5))
	assert.ErrorIs(t, err, attendance.ErrBreakAlreadyRunning)

	_, err = svc.EndDay(ctx, userID, at(17, 0))
	assert.ErrorIs(t, err, attendance.ErrBreakStillRunning)
}

func TestEndDayPreconditions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemAttendanceRepo(), nil, nil, at(18, 0))
	userID := uuid.NewString()

	_, err := svc.EndDay(ctx, userID, at(17, 0))
	assert.ErrorIs(t, err, attendance.ErrDayNotStarted)

	_, err = svc.StartDay(ctx, userID, at(9, 0))
	require.NoError(t, err)

	_, err = svc.EndDay(ctx, userID, at(17, 0))
	require.NoError(t, err)

	_, err = svc.EndDay(ctx, userID, at(17, 30))
	assert.ErrorIs(t, err, attendance.ErrDayAlreadyEnded)

	_, err = svc.StartBreak(ctx, userID, at(17, 30))
	assert.ErrorIs(t, err, attendance.ErrDayAlreadyEnded)
}

func TestStrictOrdering(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemAttendanceRepo(), nil, nil, at(18, 0))
	userID := uuid.NewString()

	_, err := svc.StartDay(ctx, userID, at(9, 0))
	require.NoError(t, err)

	// Equal to the start instant is rejected, not just earlier.
	_, err = svc.StartBreak(ctx, userID, at(9, 0))
	assert.ErrorIs(t, err, attendance.ErrInvalidOrdering)

	_, err = svc.EndDay(ctx, userID, at(8, 0))
	assert.ErrorIs(t, err, attendance.ErrInvalidOrdering)

	_, err = svc.StartBreak(ctx, userID, at(12, 0))
	require.NoError(t, err)

	_, err = svc.EndBreak(ctx, userID, at(12, 0))
	assert.ErrorIs(t, err, attendance.ErrInvalidOrdering)

	_, err = svc.EndBreak(ctx, userID, at(12, 30))
	require.NoError(t, err)

	// A later break must start after the previous one ended, and the
	// day cannot end at that same instant either.
	_, err = svc.StartBreak(ctx, userID, at(12, 30))
	assert.ErrorIs(t, err, attendance.ErrInvalidOrdering)

	_, err = svc.EndDay(ctx, userID, at(12, 30))
	assert.ErrorIs(t, err, attendance.ErrInvalidOrdering)
}

func TestMultipleBreaksAggregate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemAttendanceRepo(), nil, nil, at(19, 0))
	userID := uuid.NewString()

	_, err := svc.StartDay(ctx, userID, at(9, 0))
	require.NoError(t, err)

	_, err = svc.StartBreak(ctx, userID, at(11, 0))
	require.NoError(t, err)
	_, err = svc.EndBreak(ctx, userID, at(11, 15))
	require.NoError(t, err)

	_, err = svc.StartBreak(ctx, userID, at(13, 0))
	require.NoError(t, err)
	_, err = svc.EndBreak(ctx, userID, at(13, 45))
	require.NoError(t, err)

	ended, err := svc.EndDay(ctx, userID, at(18, 0))
	require.NoError(t, err)
	assert.Equal(t, "01:00:00", ended.TotalBreakTime)
	assert.Equal(t, "08:00:00", ended.TotalWorkTime)
	assert.Equal(t, 2, ended.BreaksTaken)
}

func TestFutureTimestampRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemAttendanceRepo(), nil, nil, at(9, 0))
	userID := uuid.NewString()

	_, err := svc.StartDay(ctx, userID, at(10, 0))
	assert.ErrorIs(t, err, attendance.ErrFutureTimestamp)
}

func TestGetStatusProjection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemAttendanceRepo(), nil, nil, at(12, 15))
	userID := uuid.NewString()

	status, err := svc.GetStatus(ctx, userID)
	require.NoError(t, err)
	assert.False(t, status.DayStarted)
	assert.Equal(t, "offline", status.Status)

	_, err = svc.StartDay(ctx, userID, at(9, 0))
	require.NoError(t, err)
	_, err = svc.StartBreak(ctx, userID, at(12, 0))
	require.NoError(t, err)

	status, err = svc.GetStatus(ctx, userID)
	require.NoError(t, err)
	assert.True(t, status.DayStarted)
	assert.True(t, status.OnBreak)
	assert.Equal(t, "break", status.Status)
	require.NotNil(t, status.CurrentBreak)
}

func TestForceTerminateClosesOpenDay(t *testing.T) {
	ctx := context.Background()
	repo := newMemAttendanceRepo()
	svc := newTestService(repo, nil, nil, at(15, 0))
	userID := uuid.NewString()

	_, err := svc.StartDay(ctx, userID, at(9, 0))
	require.NoError(t, err)
	_, err = svc.StartBreak(ctx, userID, at(12, 0))
	require.NoError(t, err)

	day := at(0, 0)
	err = svc.ForceTerminate(ctx, userID, day, at(14, 0), attendance.StatusLeave)
	require.NoError(t, err)

	att, err := repo.GetByUserAndDate(ctx, userID, day)
	require.NoError(t, err)
	require.NotNil(t, att)
	assert.Equal(t, attendance.StatusLeave, att.Status)
	require.NotNil(t, att.EndTime)
	assert.Nil(t, att.OpenBreak())
	// Break ran 12:00-14:00, work is 09:00-14:00 minus the break.
	assert.Equal(t, 2*time.Hour, att.TotalBreakTime)
	require.NotNil(t, att.TotalWorkTime)
	assert.Equal(t, 3*time.Hour, *att.TotalWorkTime)
}

func TestForceTerminateMissingRecordIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemAttendanceRepo(), nil, nil, at(15, 0))

	err := svc.ForceTerminate(ctx, uuid.NewString(), at(0, 0), at(14, 0), attendance.StatusLeave)
	assert.NoError(t, err)
}

func TestTeamStatus(t *testing.T) {
	ctx := context.Background()
	repo := newMemAttendanceRepo()

	leadID := uuid.NewString()
	memberID := uuid.NewString()
	users := &memUserRepo{users: map[string]user.User{
		leadID:   {ID: leadID, FullName: "Dana Lead", Role: user.RoleTeamLead},
		memberID: {ID: memberID, FullName: "Evan Member", Role: user.RoleEmployee},
	}}
	teams := &memTeamRepo{visible: map[string][]string{
		leadID: {leadID, memberID},
	}}

	svc := newTestService(repo, users, teams, at(12, 0))

	_, err := svc.StartDay(ctx, memberID, at(9, 0))
	require.NoError(t, err)

	statuses, err := svc.TeamStatus(ctx, leadID)
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	byID := make(map[string]string)
	for _, s := range statuses {
		byID[s.UserID] = s.Status
	}
	assert.Equal(t, "offline", byID[leadID])
	assert.Equal(t, "present", byID[memberID])
}
