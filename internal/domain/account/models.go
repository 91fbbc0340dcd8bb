package account

import (
	"errors"
	"time"
)

// Allowed account types for validation
var accountTypes = map[string]struct{}{
	"CHECKING":    {},
	"SAVINGS":     {},
	"CREDIT_CARD": {},
	"CASH":        {},
	"INVESTMENT":  {},
}

// Domain errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidInput       = errors.New("invalid input")
)

// Default account provisioned at registration.
const (
	DefaultAccountName = "Main Account"
	DefaultAccountType = "CHECKING"
)

// Account represents a user's named money container. Balance is a
// denormalized aggregate: it must equal the signed sum of all transactions
// referencing the account (INCOME adds, EXPENSE subtracts) and is maintained
// incrementally by the transaction repository.
type Account struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateParams contains parameters for creating a new account
type CreateParams struct {
	ID      string
	UserID  string
	Name    string
	Type    string
	Balance float64
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.ID == "" {
		return errors.New("account ID is required")
	}
	if p.UserID == "" {
		return errors.New("valid user ID is required")
	}
	if p.Name == "" {
		return errors.New("account name is required")
	}
	if !IsValidType(p.Type) {
		return ErrInvalidAccountType
	}
	return nil
}

// IsValidType checks if the provided account type is valid.
func IsValidType(t string) bool {
	_, ok := accountTypes[t]
	return ok
}
