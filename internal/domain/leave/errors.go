package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrNotAllowedToApply     = errors.New("you are not allowed to apply for leave")
	ErrApprovalNotPermitted  = errors.New("you are not allowed to approve or reject this leave request")
	ErrEditNotPermitted      = errors.New("only the applicant can edit a pending leave request")
	ErrInvalidDateRange      = errors.New("end date cannot be before start date")
)
