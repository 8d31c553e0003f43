package leave

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
)

type memLeaveRepo struct {
	leaves map[string]leave.Leave
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{leaves: make(map[string]leave.Leave)}
}

func (m *memLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	l.AppliedAt = time.Now()
	m.leaves[l.ID] = l
	return l, nil
}

func (m *memLeaveRepo) GetByID(_ context.Context, id string) (leave.Leave, error) {
	l, ok := m.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (m *memLeaveRepo) ListByUsers(_ context.Context, userIDs []string) ([]leave.Leave, error) {
	var result []leave.Leave
	for _, l := range m.leaves {
		if len(userIDs) == 0 {
			result = append(result, l)
			continue
		}
		for _, id := range userIDs {
			if l.UserID == id {
				result = append(result, l)
				break
			}
		}
	}
	return result, nil
}

func (m *memLeaveRepo) Update(_ context.Context, l leave.Leave) error {
	if _, ok := m.leaves[l.ID]; !ok {
		return leave.ErrLeaveNotFound
	}
	m.leaves[l.ID] = l
	return nil
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

type terminationCall struct {
	UserID string
	Date   time.Time
	Status attendance.Status
}

// fakeAttendanceService records ForceTerminate calls.
type fakeAttendanceService struct {
	attendance.AttendanceService
	calls []terminationCall
}

func (f *fakeAttendanceService) ForceTerminate(_ context.Context, userID string, date time.Time, _ time.Time, status attendance.Status) error {
	f.calls = append(f.calls, terminationCall{UserID: userID, Date: date, Status: status})
	return nil
}

type testEnv struct {
	svc        *LeaveServiceImpl
	leaves     *memLeaveRepo
	users      *memUserRepo
	att        *fakeAttendanceService
	adminID    string
	leadID     string
	employeeID string
}

func newTestEnv() *testEnv {
	adminID := uuid.NewString()
	leadID := uuid.NewString()
	employeeID := uuid.NewString()

	users := &memUserRepo{users: map[string]user.User{
		adminID:    {ID: adminID, Email: "admin@example.com", FullName: "Ava Admin", Role: user.RoleAdmin},
		leadID:     {ID: leadID, Email: "lead@example.com", FullName: "Liam Lead", Role: user.RoleTeamLead},
		employeeID: {ID: employeeID, Email: "emp@example.com", FullName: "Elle Employee", Role: user.RoleEmployee},
	}}
	leaves := newMemLeaveRepo()
	att := &fakeAttendanceService{}

	svc := &LeaveServiceImpl{
		LeaveRepository:   leaves,
		UserRepository:    users,
		attendanceService: att,
		now:               time.Now,
	}

	return &testEnv{svc: svc, leaves: leaves, users: users, att: att, adminID: adminID, leadID: leadID, employeeID: employeeID}
}

func apply(t *testing.T, env *testEnv, userID string) leave.LeaveResponse {
	t.Helper()
	resp, err := env.svc.Apply(context.Background(), userID, leave.CreateLeaveRequest{
		Type:      "casual",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Reason:    "family trip",
	})
	require.NoError(t, err)
	return resp
}

func TestApplyCreatesPendingRequest(t *testing.T) {
	env := newTestEnv()
	resp := apply(t, env, env.employeeID)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, resp.TotalDays)
}

func TestApplyRestrictedToStaffRoles(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Apply(context.Background(), env.adminID, leave.CreateLeaveRequest{
		Type:      "casual",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Reason:    "family trip",
	})
	assert.ErrorIs(t, err, leave.ErrNotAllowedToApply)

	// Team leads file their own requests like employees do.
	resp := apply(t, env, env.leadID)
	assert.Equal(t, "pending", resp.Status)
}

func TestApproveTerminatesCoveredDays(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	resp := apply(t, env, env.employeeID)

	approved, err := env.svc.Approve(ctx, env.leadID, resp.ID, "enjoy")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ReviewedAt)
	require.NotNil(t, approved.AdminComment)
	assert.Equal(t, "enjoy", *approved.AdminComment)

	// One termination per covered calendar day, all forced to leave.
	require.Len(t, env.att.calls, 3)
	for i, call := range env.att.calls {
		assert.Equal(t, env.employeeID, call.UserID)
		assert.Equal(t, attendance.StatusLeave, call.Status)
		assert.Equal(t, time.Date(2026, 3, 2+i, 0, 0, 0, 0, time.UTC), call.Date)
	}
}

func TestRejectDoesNotTouchAttendance(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	resp := apply(t, env, env.employeeID)

	rejected, err := env.svc.Reject(ctx, env.adminID, resp.ID, "busy period")
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	assert.Empty(t, env.att.calls)
}

func TestReviewTwiceRejected(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	resp := apply(t, env, env.employeeID)

	_, err := env.svc.Approve(ctx, env.adminID, resp.ID, "")
	require.NoError(t, err)

	_, err = env.svc.Reject(ctx, env.adminID, resp.ID, "")
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestApprovalPermissions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// An employee cannot review at all.
	resp := apply(t, env, env.leadID)
	_, err := env.svc.Approve(ctx, env.employeeID, resp.ID, "")
	assert.ErrorIs(t, err, leave.ErrApprovalNotPermitted)

	// A team lead cannot review another lead's request, an admin can.
	_, err = env.svc.Approve(ctx, env.leadID, resp.ID, "")
	assert.ErrorIs(t, err, leave.ErrApprovalNotPermitted)

	_, err = env.svc.Approve(ctx, env.adminID, resp.ID, "")
	assert.NoError(t, err)
}

func TestSelfApprovalRejected(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	resp := apply(t, env, env.leadID)

	_, err := env.svc.Approve(ctx, env.leadID, resp.ID, "")
	assert.ErrorIs(t, err, leave.ErrApprovalNotPermitted)
}

func TestEditPendingOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	resp := apply(t, env, env.employeeID)

	newReason := "medical appointment"
	edited, err := env.svc.Edit(ctx, env.employeeID, resp.ID, leave.UpdateLeaveRequest{Reason: &newReason})
	require.NoError(t, err)
	assert.Equal(t, newReason, edited.Reason)

	// Only the applicant may edit.
	_, err = env.svc.Edit(ctx, env.leadID, resp.ID, leave.UpdateLeaveRequest{Reason: &newReason})
	assert.ErrorIs(t, err, leave.ErrEditNotPermitted)

	_, err = env.svc.Approve(ctx, env.adminID, resp.ID, "")
	require.NoError(t, err)

	_, err = env.svc.Edit(ctx, env.employeeID, resp.ID, leave.UpdateLeaveRequest{Reason: &newReason})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestEditInvalidRangeRejected(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	resp := apply(t, env, env.employeeID)

	badEnd := "2026-03-01"
	_, err := env.svc.Edit(ctx, env.employeeID, resp.ID, leave.UpdateLeaveRequest{EndDate: &badEnd})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestListVisibility(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	apply(t, env, env.employeeID)
	apply(t, env, env.leadID)

	// Employees see only their own requests.
	own, err := env.svc.List(ctx, env.employeeID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, env.employeeID, own[0].UserID)

	// Leads and admins see everything.
	all, err := env.svc.List(ctx, env.leadID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
