package transaction

import (
	"errors"
	"time"

	"fintrack/internal/domain/account"
	"fintrack/internal/domain/category"
)

// Transaction types
const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// Domain errors
var (
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrInvalidType    = errors.New("type must be INCOME or EXPENSE")
	ErrMissingAccount = errors.New("account is required")
)

// Transaction is a single dated money movement. Records are immutable once
// created; there is no update or delete.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	AccountID   string    `json:"accountId"`
	CategoryID  *string   `json:"categoryId"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`

	// Eagerly loaded display fields, nil when not joined
	Category *category.Category `json:"category"`
	Account  *account.Account   `json:"account"`
}

type CreateTransactionParams struct {
	ID          string
	UserID      string
	AccountID   string
	CategoryID  *string
	Amount      float64
	Type        string
	Description *string
	Date        time.Time
}

// Validate validates the create parameters
func (p CreateTransactionParams) Validate() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !IsValidType(p.Type) {
		return ErrInvalidType
	}
	if p.AccountID == "" {
		return ErrMissingAccount
	}
	return nil
}

// SignedAmount returns the balance delta this transaction applies to its
// account: positive for INCOME, negative for EXPENSE.
func (p CreateTransactionParams) SignedAmount() float64 {
	if p.Type == TypeIncome {
		return p.Amount
	}
	return -p.Amount
}

// IsValidType checks if the provided transaction type is valid.
func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// ListFilter narrows transaction listings. Zero-value fields are ignored;
// all supplied filters compose with AND.
type ListFilter struct {
	Type       string
	CategoryID string
	AccountID  string
	StartDate  *time.Time
	EndDate    *time.Time
}

// Totals holds period-scoped income/expense sums for one user.
type Totals struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
}

// CategorySpending is one row of the per-category expense breakdown.
// CategoryID is nil for uncategorized spending.
type CategorySpending struct {
	CategoryID    *string `json:"categoryId"`
	CategoryName  string  `json:"categoryName"`
	CategoryColor string  `json:"categoryColor"`
	Amount        float64 `json:"amount"`
	Count         int64   `json:"count"`
}
