package auth

import "context"

// AuthService issues and refreshes JWT token pairs.
type AuthService interface {
	// Login verifies credentials and returns an access/refresh pair
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new pair
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
}
