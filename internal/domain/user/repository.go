package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves all users ordered by creation time
	List(ctx context.Context) ([]User, error)

	// ListByIDs retrieves the users with the given IDs
	ListByIDs(ctx context.Context, ids []string) ([]User, error)

	// Update updates mutable profile fields
	Update(ctx context.Context, u User) error
}
