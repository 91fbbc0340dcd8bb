package category

import "context"

// Repository defines the interface for category data access
type Repository interface {
	// GetForUser retrieves a category by ID, scoped to its owner.
	// Returns ErrCategoryNotFound when the category does not exist or
	// belongs to another user.
	GetForUser(ctx context.Context, id, userID string) (*Category, error)

	// ListByUserID retrieves the user's categories ordered by name.
	// typeFilter narrows to INCOME or EXPENSE when non-empty.
	ListByUserID(ctx context.Context, userID, typeFilter string) ([]*Category, error)
}
