package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/domain/category"
)

// CategoryRepository implements the category.Repository interface for PostgreSQL
type CategoryRepository struct {
	db *DB
}

// NewCategoryRepository creates a new PostgreSQL category repository
func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetForUser retrieves a category by ID scoped to its owner
func (r *CategoryRepository) GetForUser(ctx context.Context, id, userID string) (*category.Category, error) {
	query := `
		SELECT id, user_id, name, type, color, created_at
		FROM categories
		WHERE id = $1 AND user_id = $2
	`

	var cat category.Category
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&cat.ID, &cat.UserID, &cat.Name, &cat.Type, &cat.Color, &cat.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, category.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &cat, nil
}

// ListByUserID retrieves the user's categories ordered by name, optionally
// narrowed to one type.
func (r *CategoryRepository) ListByUserID(ctx context.Context, userID, typeFilter string) ([]*category.Category, error) {
	query := `
		SELECT id, user_id, name, type, color, created_at
		FROM categories
		WHERE user_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, userID, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		var cat category.Category
		err := rows.Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.Type, &cat.Color, &cat.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &cat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
