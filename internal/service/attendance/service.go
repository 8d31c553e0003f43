package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/config"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/team"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/timeutil"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
)

// clockSkewGrace tolerates small client clock drift before a timestamp
// is rejected as being in the future.
const clockSkewGrace = 5 * time.Minute

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	team.TeamRepository
	user.UserRepository

	loc        *time.Location
	lateHour   int
	lateMinute int
	now        func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	teamRepo team.TeamRepository,
	userRepo user.UserRepository,
	cfg *config.Config,
) attendance.AttendanceService {
	var h, m int
	fmt.Sscanf(cfg.Attendance.LateThreshold, "%d:%d", &h, &m)

	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		TeamRepository:       teamRepo,
		UserRepository:       userRepo,
		loc:                  cfg.Location(),
		lateHour:             h,
		lateMinute:           m,
		now:                  time.Now,
	}
}

func (a *AttendanceServiceImpl) checkTimestamp(ts time.Time) error {
	if ts.After(a.now().Add(clockSkewGrace)) {
		return attendance.ErrFutureTimestamp
	}
	return nil
}

// arrivalStatus classifies a start-of-day instant against the late
// threshold in the application timezone.
func (a *AttendanceServiceImpl) arrivalStatus(start time.Time) attendance.Status {
	local := start.In(a.loc)
	threshold := time.Date(local.Year(), local.Month(), local.Day(), a.lateHour, a.lateMinute, 0, 0, a.loc)
	if local.After(threshold) {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// lastEvent returns the most recent recorded instant of the day: the
// start time or the latest closed break end. New transitions must be
// strictly after it, so ending the day at the exact instant a break
// ended is rejected too.
func lastEvent(att *attendance.Attendance) time.Time {
	last := att.StartTime
	for _, b := range att.Breaks {
		if b.BreakEnd != nil && b.BreakEnd.After(last) {
			last = *b.BreakEnd
		}
	}
	return last
}

// StartDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) StartDay(ctx context.Context, userID string, ts time.Time) (attendance.AttendanceResponse, error) {
	if err := a.checkTimestamp(ts); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := timeutil.DayStart(ts.In(a.loc))

	var created attendance.Attendance
	err := postgresql.WithTransaction(ctx, a.db, func(ctx context.Context) error {
		existing, err := a.AttendanceRepository.GetByUserAndDateForUpdate(ctx, userID, date)
		if err != nil {
			return err
		}
		if existing != nil {
			return attendance.ErrDayAlreadyStarted
		}

		created, err = a.AttendanceRepository.Create(ctx, attendance.Attendance{
			ID:        uuid.NewString(),
			UserID:    userID,
			Date:      date,
			StartTime: ts,
			Status:    a.arrivalStatus(ts),
		})
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// StartBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) StartBreak(ctx context.Context, userID string, ts time.Time) (attendance.AttendanceResponse, error) {
	if err := a.checkTimestamp(ts); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := timeutil.DayStart(ts.In(a.loc))

	var result attendance.Attendance
	err := postgresql.WithTransaction(ctx, a.db, func(ctx context.Context) error {
		att, err := a.AttendanceRepository.GetByUserAndDateForUpdate(ctx, userID, date)
		if err != nil {
			return err
		}
		if att == nil {
			return attendance.ErrDayNotStarted
		}
		if att.Ended() {
			return attendance.ErrDayAlreadyEnded
		}
		if att.OpenBreak() != nil {
			return attendance.ErrBreakAlreadyRunning
		}
		if !ts.After(lastEvent(att)) {
			return attendance.ErrInvalidOrdering
		}

		br, err := a.AttendanceRepository.CreateBreak(ctx, attendance.Break{
			ID:           uuid.NewString(),
			AttendanceID: att.ID,
			BreakStart:   ts,
		})
		if err != nil {
			return err
		}

		att.Status = attendance.StatusBreak
		if err := a.AttendanceRepository.Update(ctx, *att); err != nil {
			return err
		}

		att.Breaks = append(att.Breaks, br)
		result = *att
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(result), nil
}

// EndBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) EndBreak(ctx context.Context, userID string, ts time.Time) (attendance.AttendanceResponse, error) {
	if err := a.checkTimestamp(ts); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := timeutil.DayStart(ts.In(a.loc))

	var result attendance.Attendance
	err := postgresql.WithTransaction(ctx, a.db, func(ctx context.Context) error {
		att, err := a.AttendanceRepository.GetByUserAndDateForUpdate(ctx, userID, date)
		if err != nil {
			return err
		}
		if att == nil {
			return attendance.ErrDayNotStarted
		}
		if att.Ended() {
			return attendance.ErrDayAlreadyEnded
		}
		open := att.OpenBreak()
		if open == nil {
			return attendance.ErrNoActiveBreak
		}
		if !ts.After(open.BreakStart) {
			return attendance.ErrInvalidOrdering
		}

		closed, err := a.AttendanceRepository.CloseBreak(ctx, att.ID, ts)
		if err != nil {
			return err
		}
		*open = closed

		// Recompute from the full closed set rather than accumulating.
		att.TotalBreakTime = att.ClosedBreakTotal()
		att.Status = a.arrivalStatus(att.StartTime)
		if err := a.AttendanceRepository.Update(ctx, *att); err != nil {
			return err
		}

		result = *att
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(result), nil
}

// EndDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) EndDay(ctx context.Context, userID string, ts time.Time) (attendance.AttendanceResponse, error) {
	if err := a.checkTimestamp(ts); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := timeutil.DayStart(ts.In(a.loc))

	var result attendance.Attendance
	err := postgresql.WithTransaction(ctx, a.db, func(ctx context.Context) error {
		att, err := a.AttendanceRepository.GetByUserAndDateForUpdate(ctx, userID, date)
		if err != nil {
			return err
		}
		if att == nil {
			return attendance.ErrDayNotStarted
		}
		if att.Ended() {
			return attendance.ErrDayAlreadyEnded
		}
		if att.OpenBreak() != nil {
			return attendance.ErrBreakStillRunning
		}
		if !ts.After(lastEvent(att)) {
			return attendance.ErrInvalidOrdering
		}

		att.EndTime = &ts
		att.TotalBreakTime = att.ClosedBreakTotal()
		work := ts.Sub(att.StartTime) - att.TotalBreakTime
		if work < 0 {
			work = 0
		}
		att.TotalWorkTime = &work
		att.Status = attendance.StatusOffline

		if err := a.AttendanceRepository.Update(ctx, *att); err != nil {
			return err
		}

		result = *att
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(result), nil
}

// GetStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetStatus(ctx context.Context, userID string) (attendance.StatusResponse, error) {
	today := timeutil.DayStart(a.now().In(a.loc))

	att, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	return attendance.ToStatusResponse(att), nil
}

// visibleUserIDs resolves the viewer's scope: admins see everyone,
// everyone else sees the rosters of their own teams.
func (a *AttendanceServiceImpl) visibleUserIDs(ctx context.Context, viewerID string) ([]string, error) {
	viewer, err := a.UserRepository.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	if viewer.IsAdmin() {
		users, err := a.UserRepository.List(ctx)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		return ids, nil
	}

	return a.TeamRepository.VisibleUserIDs(ctx, viewerID)
}

// TeamStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TeamStatus(ctx context.Context, viewerID string) ([]attendance.TeamMemberStatus, error) {
	ids, err := a.visibleUserIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	users, err := a.UserRepository.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	today := timeutil.DayStart(a.now().In(a.loc))
	statuses, err := a.AttendanceRepository.StatusByUserAndDate(ctx, ids, today)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.TeamMemberStatus, 0, len(users))
	for _, u := range users {
		status, ok := statuses[u.ID]
		if !ok {
			status = attendance.StatusOffline
		}
		result = append(result, attendance.TeamMemberStatus{
			UserID: u.ID,
			Name:   u.FullName,
			Status: string(status),
		})
	}
	return result, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, viewerID string, filter attendance.Filter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	visible, err := a.visibleUserIDs(ctx, viewerID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if len(filter.UserIDs) == 0 {
		filter.UserIDs = visible
	} else {
		visibleSet := make(map[string]struct{}, len(visible))
		for _, id := range visible {
			visibleSet[id] = struct{}{}
		}
		scoped := filter.UserIDs[:0]
		for _, id := range filter.UserIDs {
			if _, ok := visibleSet[id]; ok {
				scoped = append(scoped, id)
			}
		}
		filter.UserIDs = scoped
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.ToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, viewerID string, id string) (attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.UserID != viewerID {
		visible, err := a.visibleUserIDs(ctx, viewerID)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		found := false
		for _, vid := range visible {
			if vid == att.UserID {
				found = true
				break
			}
		}
		if !found {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
	}

	return attendance.ToResponse(att), nil
}

// ForceTerminate implements attendance.AttendanceService. It runs
// against the caller's context so that a surrounding transaction (leave
// approval) covers it; a missing record is a no-op.
func (a *AttendanceServiceImpl) ForceTerminate(ctx context.Context, userID string, date time.Time, at time.Time, status attendance.Status) error {
	// date is a calendar day; keep its components rather than shifting
	// the instant into the app timezone.
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, a.loc)

	att, err := a.AttendanceRepository.GetByUserAndDateForUpdate(ctx, userID, day)
	if err != nil {
		return err
	}
	if att == nil {
		return nil
	}

	if open := att.OpenBreak(); open != nil {
		closed, err := a.AttendanceRepository.CloseBreak(ctx, att.ID, at)
		if err != nil {
			return err
		}
		*open = closed
	}

	att.TotalBreakTime = att.ClosedBreakTotal()
	if !att.Ended() {
		att.EndTime = &at
		work := at.Sub(att.StartTime) - att.TotalBreakTime
		if work < 0 {
			work = 0
		}
		att.TotalWorkTime = &work
	}
	att.Status = status

	return a.AttendanceRepository.Update(ctx, *att)
}
