package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/domain/account"
	"fintrack/internal/domain/category"
	"fintrack/internal/domain/transaction"
)

// TransactionRepository implements the transaction.Repository interface for PostgreSQL
type TransactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new PostgreSQL transaction repository
func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// transactionColumns is the joined projection shared by all reads: the
// transaction row plus the category and account display fields.
const transactionColumns = `
	t.id, t.user_id, t.account_id, t.category_id, t.amount, t.type, t.description, t.date, t.created_at,
	c.id, c.name, c.type, c.color,
	a.id, a.name, a.type, a.balance
`

const transactionJoins = `
	FROM transactions t
	LEFT JOIN categories c ON c.id = t.category_id
	JOIN accounts a ON a.id = t.account_id
`

// Create inserts the transaction and applies its signed amount to the owning
// account inside one database transaction. The balance change is an atomic
// in-place increment (balance = balance + delta), so concurrent creations
// against the same account serialize at the row and no update is lost.
func (r *TransactionRepository) Create(ctx context.Context, params transaction.CreateTransactionParams) (*transaction.Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	err := r.db.WithTx(ctx, "db.CreateTransaction", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (id, user_id, account_id, category_id, amount, type, description, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			params.ID, params.UserID, params.AccountID, params.CategoryID,
			params.Amount, params.Type, params.Description, params.Date,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE accounts
			SET balance = balance + $1, updated_at = now()
			WHERE id = $2 AND user_id = $3
		`, params.SignedAmount(), params.AccountID, params.UserID)
		if err != nil {
			return fmt.Errorf("failed to update account balance: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return account.ErrAccountNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.getByID(ctx, params.ID)
}

func (r *TransactionRepository) getByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + transactionJoins + ` WHERE t.id = $1`

	tr, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %s not found after create", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tr, nil
}

// List returns a page of the user's transactions matching the filter, newest first
func (r *TransactionRepository) List(ctx context.Context, userID string, filter transaction.ListFilter, limit, offset int) ([]*transaction.Transaction, error) {
	where, args := buildFilter(userID, filter)

	query := `SELECT ` + transactionColumns + transactionJoins + `
		WHERE ` + where + `
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// Count returns the number of the user's transactions matching the filter
func (r *TransactionRepository) Count(ctx context.Context, userID string, filter transaction.ListFilter) (int64, error) {
	where, args := buildFilter(userID, filter)

	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions t WHERE `+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// TotalsSince sums the user's INCOME and EXPENSE amounts with date >= since
func (r *TransactionRepository) TotalsSince(ctx context.Context, userID string, since time.Time) (*transaction.Totals, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0)
		FROM transactions
		WHERE user_id = $1 AND date >= $2
	`

	var totals transaction.Totals
	err := r.db.QueryRowContext(ctx, query, userID, since).Scan(&totals.TotalIncome, &totals.TotalExpenses)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return &totals, nil
}

// SpendingByCategorySince groups the user's EXPENSE transactions with
// date >= since by category. Uncategorized spending gets the fallback
// name and color.
func (r *TransactionRepository) SpendingByCategorySince(ctx context.Context, userID string, since time.Time) ([]*transaction.CategorySpending, error) {
	query := `
		SELECT t.category_id, c.name, c.color, SUM(t.amount), COUNT(*)
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.type = 'EXPENSE' AND t.date >= $2
		GROUP BY t.category_id, c.name, c.color
		ORDER BY SUM(t.amount) DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to group spending by category: %w", err)
	}
	defer rows.Close()

	var spending []*transaction.CategorySpending
	for rows.Next() {
		var cs transaction.CategorySpending
		var categoryID, name, color sql.NullString

		if err := rows.Scan(&categoryID, &name, &color, &cs.Amount, &cs.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category spending: %w", err)
		}

		if categoryID.Valid {
			cs.CategoryID = &categoryID.String
		}
		cs.CategoryName = "Uncategorized"
		if name.Valid {
			cs.CategoryName = name.String
		}
		cs.CategoryColor = category.UncategorizedColor
		if color.Valid {
			cs.CategoryColor = color.String
		}

		spending = append(spending, &cs)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category spending: %w", err)
	}

	return spending, nil
}

// ListRecent returns the user's newest transactions regardless of period
func (r *TransactionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + transactionJoins + `
		WHERE t.user_id = $1
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// buildFilter assembles the WHERE clause for List/Count. All conditions are
// ANDed; the user_id predicate is always present.
func buildFilter(userID string, filter transaction.ListFilter) (string, []any) {
	conditions := []string{"t.user_id = $1"}
	args := []any{userID}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Type != "" {
		add("t.type = $%d", filter.Type)
	}
	if filter.CategoryID != "" {
		add("t.category_id = $%d", filter.CategoryID)
	}
	if filter.AccountID != "" {
		add("t.account_id = $%d", filter.AccountID)
	}
	if filter.StartDate != nil {
		add("t.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("t.date <= $%d", *filter.EndDate)
	}

	return strings.Join(conditions, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*transaction.Transaction, error) {
	var tr transaction.Transaction
	var categoryID, description sql.NullString
	var catID, catName, catType, catColor sql.NullString
	var acc account.Account

	err := row.Scan(
		&tr.ID, &tr.UserID, &tr.AccountID, &categoryID, &tr.Amount, &tr.Type,
		&description, &tr.Date, &tr.CreatedAt,
		&catID, &catName, &catType, &catColor,
		&acc.ID, &acc.Name, &acc.Type, &acc.Balance,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		tr.CategoryID = &categoryID.String
	}
	if description.Valid {
		tr.Description = &description.String
	}
	if catID.Valid {
		tr.Category = &category.Category{
			ID:     catID.String,
			UserID: tr.UserID,
			Name:   catName.String,
			Type:   catType.String,
			Color:  catColor.String,
		}
	}
	acc.UserID = tr.UserID
	tr.Account = &acc

	return &tr, nil
}

func collectTransactions(rows *sql.Rows) ([]*transaction.Transaction, error) {
	var transactions []*transaction.Transaction
	for rows.Next() {
		tr, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}
