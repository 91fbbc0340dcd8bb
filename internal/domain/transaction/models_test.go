package transaction

import (
	"testing"
	"time"
)

func TestCreateTransactionParams_Validate(t *testing.T) {
	valid := CreateTransactionParams{
		ID:        "txn-1",
		UserID:    "user-1",
		AccountID: "acc-1",
		Amount:    42.50,
		Type:      TypeExpense,
		Date:      time.Now(),
	}

	tests := []struct {
		name    string
		mutate  func(p *CreateTransactionParams)
		errType error
	}{
		{
			name:   "valid params",
			mutate: func(p *CreateTransactionParams) {},
		},
		{
			name:    "zero amount",
			mutate:  func(p *CreateTransactionParams) { p.Amount = 0 },
			errType: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(p *CreateTransactionParams) { p.Amount = -10 },
			errType: ErrInvalidAmount,
		},
		{
			name:    "invalid type",
			mutate:  func(p *CreateTransactionParams) { p.Type = "TRANSFER" },
			errType: ErrInvalidType,
		},
		{
			name:    "missing account",
			mutate:  func(p *CreateTransactionParams) { p.AccountID = "" },
			errType: ErrMissingAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)

			err := params.Validate()
			if tt.errType == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err != tt.errType {
				t.Errorf("Validate() error = %v, want %v", err, tt.errType)
			}
		})
	}
}

func TestCreateTransactionParams_SignedAmount(t *testing.T) {
	income := CreateTransactionParams{Amount: 100, Type: TypeIncome}
	if got := income.SignedAmount(); got != 100 {
		t.Errorf("SignedAmount() for INCOME = %v, want 100", got)
	}

	expense := CreateTransactionParams{Amount: 100, Type: TypeExpense}
	if got := expense.SignedAmount(); got != -100 {
		t.Errorf("SignedAmount() for EXPENSE = %v, want -100", got)
	}
}

func TestIsValidType(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"INCOME", true},
		{"EXPENSE", true},
		{"expense", false},
		{"TRANSFER", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := IsValidType(tt.input)
			if got != tt.want {
				t.Errorf("IsValidType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
