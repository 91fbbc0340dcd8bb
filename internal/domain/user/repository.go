package user

import "context"

// Repository defines the interface for user data access.
// Create provisions the user together with their default categories and
// account in a single atomic unit; implementations must return ErrEmailTaken
// when the email is already registered.
type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
