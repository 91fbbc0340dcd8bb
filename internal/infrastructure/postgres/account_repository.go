package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/domain/account"
)

// AccountRepository implements the account.Repository interface for PostgreSQL
type AccountRepository struct {
	db *DB
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, params account.CreateParams) (*account.Account, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO accounts (id, user_id, name, type, balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, type, balance, created_at, updated_at
	`

	var acc account.Account
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.UserID, params.Name, params.Type, params.Balance,
	).Scan(&acc.ID, &acc.UserID, &acc.Name, &acc.Type, &acc.Balance, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &acc, nil
}

// GetForUser retrieves an account by ID scoped to its owner. The user_id
// predicate in the WHERE clause is the ownership check: rows belonging to
// other users are indistinguishable from missing rows.
func (r *AccountRepository) GetForUser(ctx context.Context, id, userID string) (*account.Account, error) {
	query := `
		SELECT id, user_id, name, type, balance, created_at, updated_at
		FROM accounts
		WHERE id = $1 AND user_id = $2
	`

	var acc account.Account
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&acc.ID, &acc.UserID, &acc.Name, &acc.Type, &acc.Balance, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, account.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &acc, nil
}

// ListByUserID retrieves all accounts for a user, highest balance first
func (r *AccountRepository) ListByUserID(ctx context.Context, userID string) ([]*account.Account, error) {
	query := `
		SELECT id, user_id, name, type, balance, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY balance DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account
	for rows.Next() {
		var acc account.Account
		err := rows.Scan(&acc.ID, &acc.UserID, &acc.Name, &acc.Type, &acc.Balance, &acc.CreatedAt, &acc.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}
