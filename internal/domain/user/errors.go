package user

import "errors"

// User domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid user role")
	ErrInvalidDesignation     = errors.New("invalid designation")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
