package team

import "errors"

// Team domain errors
var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNotTeamMember   = errors.New("user is not a member of this team")
)
