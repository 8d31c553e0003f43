package user

import (
	"context"
	"io"
)

// UserService defines account management. Creation is admin-only;
// profile updates are self-service.
type UserService interface {
	// Create registers a new account; actor must be an admin
	Create(ctx context.Context, actorID string, req CreateUserRequest) (UserResponse, error)

	// List returns all accounts
	List(ctx context.Context) ([]UserResponse, error)

	// Get returns a single account
	Get(ctx context.Context, id string) (UserResponse, error)

	// UpdateProfile updates the caller's own profile fields
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)

	// UploadProfilePicture stores the image and updates the caller's
	// profile picture URL
	UploadProfilePicture(ctx context.Context, userID string, filename string, file io.Reader) (UserResponse, error)
}
