package transaction

import (
	"context"
	"time"
)

// Repository defines the interface for transaction data access
type Repository interface {
	// Create inserts the transaction and applies its signed amount to the
	// owning account's balance. Implementations must perform both writes in
	// one atomic unit, with the balance change applied as an atomic
	// increment at the storage layer so concurrent creations never lose
	// updates.
	Create(ctx context.Context, params CreateTransactionParams) (*Transaction, error)

	// List returns a page of the user's transactions matching the filter,
	// newest first, with category and account display fields loaded.
	List(ctx context.Context, userID string, filter ListFilter, limit, offset int) ([]*Transaction, error)

	// Count returns the number of the user's transactions matching the filter
	Count(ctx context.Context, userID string, filter ListFilter) (int64, error)

	// TotalsSince sums the user's INCOME and EXPENSE amounts with date >= since
	TotalsSince(ctx context.Context, userID string, since time.Time) (*Totals, error)

	// SpendingByCategorySince groups the user's EXPENSE transactions with
	// date >= since by category, resolving category name and color.
	SpendingByCategorySince(ctx context.Context, userID string, since time.Time) ([]*CategorySpending, error)

	// ListRecent returns the user's newest transactions regardless of period
	ListRecent(ctx context.Context, userID string, limit int) ([]*Transaction, error)
}
