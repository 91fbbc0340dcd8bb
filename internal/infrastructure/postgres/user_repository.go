package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/domain/account"
	"fintrack/internal/domain/category"
	"fintrack/internal/domain/user"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// UserRepository implements the user.Repository interface for PostgreSQL
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user row and provisions the default categories and the
// "Main Account" in one database transaction, so a half-registered user can
// never be observed. Returns user.ErrEmailTaken on a duplicate email.
func (r *UserRepository) Create(ctx context.Context, params user.CreateUserParams) (*user.User, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var u user.User
	var name sql.NullString

	err := r.db.WithTx(ctx, "db.RegisterUser", func(tx *sql.Tx) error {
		query := `
			INSERT INTO users (id, email, name, password_hash)
			VALUES ($1, $2, $3, $4)
			RETURNING id, email, name, password_hash, created_at, updated_at
		`

		err := tx.QueryRowContext(
			ctx, query,
			params.ID, params.Email, params.Name, params.PasswordHash,
		).Scan(&u.ID, &u.Email, &name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
				return user.ErrEmailTaken
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		for _, seed := range category.Defaults() {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO categories (id, user_id, name, type, color) VALUES ($1, $2, $3, $4, $5)`,
				uuid.New().String(), u.ID, seed.Name, seed.Type, seed.Color,
			)
			if err != nil {
				return fmt.Errorf("failed to seed category %q: %w", seed.Name, err)
			}
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO accounts (id, user_id, name, type, balance) VALUES ($1, $2, $3, $4, 0)`,
			uuid.New().String(), u.ID, account.DefaultAccountName, account.DefaultAccountType,
		)
		if err != nil {
			return fmt.Errorf("failed to create default account: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if name.Valid {
		u.Name = &name.String
	}

	return &u, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	query := `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) scanUser(row *tracedRow) (*user.User, error) {
	var u user.User
	var name sql.NullString

	err := row.Scan(&u.ID, &u.Email, &name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if name.Valid {
		u.Name = &name.String
	}

	return &u, nil
}
