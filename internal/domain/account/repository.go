package account

import "context"

// Repository defines the interface for account data access
// This interface is defined in the domain layer, but implemented in the infrastructure layer
type Repository interface {
	// Create creates a new account
	Create(ctx context.Context, params CreateParams) (*Account, error)

	// GetForUser retrieves an account by ID, scoped to its owner.
	// Returns ErrAccountNotFound when the account does not exist or
	// belongs to another user; this is the ownership predicate every
	// caller relies on.
	GetForUser(ctx context.Context, id, userID string) (*Account, error)

	// ListByUserID retrieves all accounts for a user, highest balance first
	ListByUserID(ctx context.Context, userID string) ([]*Account, error)
}
