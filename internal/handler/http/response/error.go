package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/domain/team"
	"github.com/workpulse/workpulse-backend-go/internal/domain/timesheet"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. State-precondition
// violations of the attendance machine map to 409; ordering and future
// timestamps to 400.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Users
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance state machine
	case errors.Is(err, attendance.ErrDayAlreadyStarted),
		errors.Is(err, attendance.ErrDayNotStarted),
		errors.Is(err, attendance.ErrDayAlreadyEnded),
		errors.Is(err, attendance.ErrBreakAlreadyRunning),
		errors.Is(err, attendance.ErrNoActiveBreak),
		errors.Is(err, attendance.ErrBreakStillRunning):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrInvalidOrdering),
		errors.Is(err, attendance.ErrFutureTimestamp):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrApprovalNotPermitted),
		errors.Is(err, leave.ErrEditNotPermitted),
		errors.Is(err, leave.ErrNotAllowedToApply):
		Forbidden(w, err.Error())

	// Teams, projects, tasks
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, team.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, team.ErrNotTeamMember):
		Forbidden(w, err.Error())

	// Timesheet
	case errors.Is(err, timesheet.ErrNoRunningTimer):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timesheet.ErrInvalidOrdering):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timesheet.ErrNotEntryOwner):
		Forbidden(w, err.Error())

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
