package category

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidType      = errors.New("invalid category type")
)

// Category types
const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// UncategorizedColor is the fill used for spending that has no category.
const UncategorizedColor = "#6B7280"

type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// Seed describes a category provisioned for every new user.
type Seed struct {
	Name  string
	Type  string
	Color string
}

// Defaults returns the categories seeded at registration:
// six EXPENSE and three INCOME, with fixed display colors.
func Defaults() []Seed {
	return []Seed{
		{Name: "Food & Dining", Type: TypeExpense, Color: "#EF4444"},
		{Name: "Transportation", Type: TypeExpense, Color: "#F59E0B"},
		{Name: "Shopping", Type: TypeExpense, Color: "#8B5CF6"},
		{Name: "Entertainment", Type: TypeExpense, Color: "#EC4899"},
		{Name: "Bills & Utilities", Type: TypeExpense, Color: "#06B6D4"},
		{Name: "Healthcare", Type: TypeExpense, Color: "#10B981"},
		{Name: "Salary", Type: TypeIncome, Color: "#22C55E"},
		{Name: "Freelance", Type: TypeIncome, Color: "#84CC16"},
		{Name: "Investment", Type: TypeIncome, Color: "#F97316"},
	}
}

// IsValidType checks if the provided category type is valid.
func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}
