package http

import (
	"context"
	"net/http"
	"time"

	"fintrack/internal/domain/account"
	"fintrack/internal/domain/category"
	"fintrack/internal/domain/transaction"
	"fintrack/internal/domain/user"
	"fintrack/internal/shared/middleware"
)

// MockUserRepo implements user.Repository for testing
type MockUserRepo struct {
	CreateFunc     func(ctx context.Context, params user.CreateUserParams) (*user.User, error)
	GetByIDFunc    func(ctx context.Context, id string) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, params user.CreateUserParams) (*user.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, user.ErrUserNotFound
}

// MockAccountRepo implements account.Repository for testing
type MockAccountRepo struct {
	CreateFunc       func(ctx context.Context, params account.CreateParams) (*account.Account, error)
	GetForUserFunc   func(ctx context.Context, id, userID string) (*account.Account, error)
	ListByUserIDFunc func(ctx context.Context, userID string) ([]*account.Account, error)
}

func (m *MockAccountRepo) Create(ctx context.Context, params account.CreateParams) (*account.Account, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockAccountRepo) GetForUser(ctx context.Context, id, userID string) (*account.Account, error) {
	if m.GetForUserFunc != nil {
		return m.GetForUserFunc(ctx, id, userID)
	}
	return nil, account.ErrAccountNotFound
}

func (m *MockAccountRepo) ListByUserID(ctx context.Context, userID string) ([]*account.Account, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

// MockCategoryRepo implements category.Repository for testing
type MockCategoryRepo struct {
	GetForUserFunc   func(ctx context.Context, id, userID string) (*category.Category, error)
	ListByUserIDFunc func(ctx context.Context, userID, typeFilter string) ([]*category.Category, error)
}

func (m *MockCategoryRepo) GetForUser(ctx context.Context, id, userID string) (*category.Category, error) {
	if m.GetForUserFunc != nil {
		return m.GetForUserFunc(ctx, id, userID)
	}
	return nil, category.ErrCategoryNotFound
}

func (m *MockCategoryRepo) ListByUserID(ctx context.Context, userID, typeFilter string) ([]*category.Category, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, typeFilter)
	}
	return nil, nil
}

// MockTransactionRepo implements transaction.Repository for testing
type MockTransactionRepo struct {
	CreateFunc                  func(ctx context.Context, params transaction.CreateTransactionParams) (*transaction.Transaction, error)
	ListFunc                    func(ctx context.Context, userID string, filter transaction.ListFilter, limit, offset int) ([]*transaction.Transaction, error)
	CountFunc                   func(ctx context.Context, userID string, filter transaction.ListFilter) (int64, error)
	TotalsSinceFunc             func(ctx context.Context, userID string, since time.Time) (*transaction.Totals, error)
	SpendingByCategorySinceFunc func(ctx context.Context, userID string, since time.Time) ([]*transaction.CategorySpending, error)
	ListRecentFunc              func(ctx context.Context, userID string, limit int) ([]*transaction.Transaction, error)
}

func (m *MockTransactionRepo) Create(ctx context.Context, params transaction.CreateTransactionParams) (*transaction.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockTransactionRepo) List(ctx context.Context, userID string, filter transaction.ListFilter, limit, offset int) ([]*transaction.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter, limit, offset)
	}
	return nil, nil
}

func (m *MockTransactionRepo) Count(ctx context.Context, userID string, filter transaction.ListFilter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, userID, filter)
	}
	return 0, nil
}

func (m *MockTransactionRepo) TotalsSince(ctx context.Context, userID string, since time.Time) (*transaction.Totals, error) {
	if m.TotalsSinceFunc != nil {
		return m.TotalsSinceFunc(ctx, userID, since)
	}
	return &transaction.Totals{}, nil
}

func (m *MockTransactionRepo) SpendingByCategorySince(ctx context.Context, userID string, since time.Time) ([]*transaction.CategorySpending, error) {
	if m.SpendingByCategorySinceFunc != nil {
		return m.SpendingByCategorySinceFunc(ctx, userID, since)
	}
	return nil, nil
}

func (m *MockTransactionRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*transaction.Transaction, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, userID, limit)
	}
	return nil, nil
}

// withUser attaches an authenticated user ID to the request context.
func withUser(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}
